// Package cli implements the petsctl command tree.
//
// Each invocation runs exactly one command. The root command loads the
// configuration, makes sure the store exists and wires the repositories
// before the subcommand runs.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrlokans/petsctl/internal/config"
	"github.com/mrlokans/petsctl/internal/database"
	"github.com/mrlokans/petsctl/internal/database/categories"
	"github.com/mrlokans/petsctl/internal/database/pets"
	"github.com/mrlokans/petsctl/internal/database/snapshot"
	"github.com/mrlokans/petsctl/internal/database/users"
)

// app carries what a single invocation needs. It is filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg        *config.Config
	db         *database.Database
	users      *users.Repository
	pets       *pets.Repository
	categories *categories.Repository
	snapshots  *snapshot.Reader
}

func (a *app) init(cfg *config.Config) error {
	a.cfg = cfg
	a.db = database.NewDatabase(cfg.Database.Path, database.WithSQLLogging(cfg.Log.SQL))
	if err := a.db.EnsureSchema(); err != nil {
		return CommandError{
			Message:    fmt.Sprintf("failed to initialize store at %s", cfg.Database.Path),
			Cause:      err,
			Suggestion: "Check that the directory is writable or pass another path with --db.",
			ExitCode:   exitFailure,
		}
	}
	a.users = users.NewRepository(a.db)
	a.pets = pets.NewRepository(a.db)
	a.categories = categories.NewRepository(a.db)
	a.snapshots = snapshot.NewReader(a.db)
	return nil
}

// NewRootCmd constructs the root command with all subcommands attached.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}
	var (
		dbPath  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:     "petsctl",
		Short:   "petsctl - manage users, their pets and pet categories",
		Long:    "petsctl keeps users, pets and pet categories in a local SQLite file and exports them to spreadsheet, PDF and markdown.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			cfg := config.NewConfig()
			if cmd.Flags().Changed("db") {
				cfg.Database.Path = dbPath
			}
			if verbose {
				cfg.Log.SQL = true
			}
			return a.init(cfg)
		},
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDatabasePath, "Path to the store file (env DATABASE_PATH)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every SQL statement to stderr")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return ValidationError(err.Error(), fmt.Sprintf("Run '%s --help' for usage.", c.CommandPath()))
	})

	cmd.AddCommand(
		newUsersCmd(a),
		newNewUserCmd(a),
		newSearchUserCmd(a),
		newDeleteUserCmd(a),
		newUpdateUserCmd(a),

		newUserPetsCmd(a),
		newPetListCmd(a),
		newSearchPetCmd(a),
		newNewPetCmd(a),
		newUpdatePetCmd(a),
		newDeletePetCmd(a),

		newCategoriesCmd(a),
		newNewCategoryCmd(a),
		newSearchCategoryCmd(a),
		newUpdateCategoryCmd(a),
		newDeleteCategoryCmd(a),
		newPetsByCategoryCmd(a),

		newExportSpreadsheetCmd(a),
		newExportDocumentCmd(a),
		newExportMarkdownCmd(a),
	)
	return cmd
}

// Run executes args against a fresh command tree and returns the exit code.
func Run(args []string, stdout, stderr io.Writer, version string) int {
	cmd := NewRootCmd(version)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return reportError(stderr, err)
	}
	return 0
}

// Execute runs the CLI entrypoint.
func Execute(version string) {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr, version))
}
