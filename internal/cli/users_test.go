package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCmd_Empty(t *testing.T) {
	db := newTestStore(t)

	out := mustRun(t, db, "users")

	assert.Equal(t, "No users found\n", out)
}

func TestNewUserCmd(t *testing.T) {
	db := newTestStore(t)

	assert.Equal(t, "User 1 created\n", mustRun(t, db, "new-user", "--name", "Ann", "--lastname", "Lee"))
	assert.Equal(t, "User 2 created\n", mustRun(t, db, "newUser", "--name", "Siobhan", "--lastname", "O'Brien"))

	out := mustRun(t, db, "users")
	assert.Contains(t, out, "There are 2 users")
	assert.Contains(t, out, "Ann")
	assert.Contains(t, out, "O'Brien")
}

func TestNewUserCmd_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no flags", args: []string{"new-user"}, want: "--name is required"},
		{name: "missing lastname", args: []string{"new-user", "--name", "Ann"}, want: "--lastname is required"},
		{name: "blank name", args: []string{"new-user", "--name", "  ", "--lastname", "Lee"}, want: "--name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestStore(t)

			res := run(t, db, tt.args...)

			assert.Equal(t, exitValidation, res.code)
			assert.Contains(t, res.stderr, tt.want)
			assert.Empty(t, res.stdout)
			assert.Equal(t, "No users found\n", mustRun(t, db, "users"))
		})
	}
}

func TestSearchUserCmd(t *testing.T) {
	db := newTestStore(t)
	mustRun(t, db, "new-user", "--name", "Ann", "--lastname", "Lee")

	assert.Equal(t, "User 1 - Ann - Lee\n", mustRun(t, db, "search-user", "1"))

	res := run(t, db, "search-user", "99")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "User not found\n", res.stdout)
}

func TestSearchUserCmd_InvalidID(t *testing.T) {
	db := newTestStore(t)

	for _, args := range [][]string{
		{"search-user"},
		{"search-user", "abc"},
		{"search-user", "0"},
		{"search-user", "1", "2"},
	} {
		res := run(t, db, args...)
		assert.Equal(t, exitValidation, res.code, "args %v", args)
		assert.NotEmpty(t, res.stderr, "args %v", args)
	}
}

func TestDeleteUserCmd(t *testing.T) {
	db := newTestStore(t)
	mustRun(t, db, "new-user", "--name", "Ann", "--lastname", "Lee")

	assert.Equal(t, "User 1 deleted\n", mustRun(t, db, "delete-user", "1"))
	assert.Equal(t, "User not found\n", mustRun(t, db, "delete-user", "1"))
	assert.Equal(t, "No users found\n", mustRun(t, db, "users"))
}

func TestUpdateUserCmd_Partial(t *testing.T) {
	db := newTestStore(t)
	mustRun(t, db, "new-user", "--name", "Ann", "--lastname", "Lee")

	assert.Equal(t, "User 1 updated\n", mustRun(t, db, "update-user", "1", "--name", "Anna"))
	assert.Equal(t, "User 1 - Anna - Lee\n", mustRun(t, db, "search-user", "1"))

	mustRun(t, db, "update-user", "1", "--lastname", "Park")
	assert.Equal(t, "User 1 - Anna - Park\n", mustRun(t, db, "search-user", "1"))
}

func TestUpdateUserCmd_NotFound(t *testing.T) {
	db := newTestStore(t)

	res := run(t, db, "update-user", "5", "--name", "Ghost")

	require.Equal(t, 0, res.code)
	assert.Equal(t, "User not found\n", res.stdout)
}

func TestUnknownFlag_IsValidationError(t *testing.T) {
	db := newTestStore(t)

	res := run(t, db, "new-user", "--nickname", "x")

	assert.Equal(t, exitValidation, res.code)
	assert.Contains(t, res.stderr, "unknown flag")
}
