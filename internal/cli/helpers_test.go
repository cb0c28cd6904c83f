package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

// newTestStore returns a path for a store that does not exist yet.
func newTestStore(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "data.db")
}

func run(t *testing.T, dbPath string, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(append([]string{"--db", dbPath}, args...), &stdout, &stderr, "test")
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

// mustRun runs a command that is expected to exit 0.
func mustRun(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	res := run(t, dbPath, args...)
	if res.code != 0 {
		t.Fatalf("%v exited %d: %s", args, res.code, res.stderr)
	}
	return res.stdout
}
