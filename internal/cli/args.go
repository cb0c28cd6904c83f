package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mrlokans/petsctl/internal/database"
)

// idArg validates that exactly one positional argument, a positive integer
// identity, was given.
func idArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return ValidationError(fmt.Sprintf("%s is required", name), fmt.Sprintf("Usage: %s", cmd.UseLine()))
		}
		if len(args) > 1 {
			return ValidationError(fmt.Sprintf("expected a single %s, got %d arguments", name, len(args)), fmt.Sprintf("Usage: %s", cmd.UseLine()))
		}
		_, err := parseID(name, args[0])
		return err
	}
}

func parseID(name, raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || id == 0 {
		return 0, ValidationError(fmt.Sprintf("%s must be a positive integer, got %q", name, raw), "")
	}
	return uint(id), nil
}

// requireString returns the value of a string flag that must be present and
// not blank.
func requireString(cmd *cobra.Command, flag string) (string, error) {
	value, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", err
	}
	if !cmd.Flags().Changed(flag) || strings.TrimSpace(value) == "" {
		return "", ValidationError(fmt.Sprintf("--%s is required", flag), fmt.Sprintf("Usage: %s", cmd.UseLine()))
	}
	return value, nil
}

// requireSet checks that a non-string flag was given on the command line.
func requireSet(cmd *cobra.Command, flag string) error {
	if !cmd.Flags().Changed(flag) {
		return ValidationError(fmt.Sprintf("--%s is required", flag), fmt.Sprintf("Usage: %s", cmd.UseLine()))
	}
	return nil
}

// optionalString returns the flag value when it was given and is not blank,
// otherwise fallback.
func optionalString(cmd *cobra.Command, flag, fallback string) string {
	value, err := cmd.Flags().GetString(flag)
	if err != nil || !cmd.Flags().Changed(flag) || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// lookup fetches a row by identity. A missing row prints "<entity> not found"
// and returns nil with no error.
func lookup[T any](w io.Writer, command, entity string, get func(uint) (*T, error), id uint) (*T, error) {
	row, err := get(id)
	if errors.Is(err, database.ErrNotFound) {
		fmt.Fprintf(w, "%s not found\n", entity)
		return nil, nil
	}
	if err != nil {
		return nil, storeFailure(command, err)
	}
	return row, nil
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func itoa[N ~int | ~uint](n N) string {
	return fmt.Sprint(n)
}
