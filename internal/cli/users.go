package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrlokans/petsctl/internal/entities"
)

func newUsersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			list, err := a.users.ListUsers()
			if err != nil {
				return storeFailure("users", err)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "No users found")
				return nil
			}

			fmt.Fprintf(out, "There are %d users\n", len(list))
			rows := make([][]string, 0, len(list))
			for _, user := range list {
				rows = append(rows, []string{itoa(user.ID), user.Name, user.Lastname})
			}
			renderTable(out, []string{"ID", "Name", "Lastname"}, rows)
			return nil
		},
	}
}

func newNewUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new-user --name <name> --lastname <lastname>",
		Aliases: []string{"newUser"},
		Short:   "Create a user",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := requireString(cmd, "name")
			if err != nil {
				return err
			}
			lastname, err := requireString(cmd, "lastname")
			if err != nil {
				return err
			}

			user, err := a.users.CreateUser(name, lastname)
			if err != nil {
				return storeFailure("new-user", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %d created\n", user.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Name of the user (required)")
	cmd.Flags().String("lastname", "", "Lastname of the user (required)")
	return cmd
}

func newSearchUserCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "search-user <id>",
		Aliases: []string{"searchUser"},
		Short:   "Show a user by ID",
		Args:    idArg("user ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("user ID", args[0])
			out := cmd.OutOrStdout()

			user, err := lookup(out, "search-user", "User", a.users.GetUser, id)
			if err != nil || user == nil {
				return err
			}
			fmt.Fprintf(out, "User %d - %s - %s\n", user.ID, user.Name, user.Lastname)
			return nil
		},
	}
}

func newDeleteUserCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-user <id>",
		Aliases: []string{"deleteUser"},
		Short:   "Delete a user by ID",
		Long:    "Delete a user by ID. Pets owned by the user are kept but no longer appear in joined listings.",
		Args:    idArg("user ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("user ID", args[0])
			out := cmd.OutOrStdout()

			user, err := lookup(out, "delete-user", "User", a.users.GetUser, id)
			if err != nil || user == nil {
				return err
			}
			if err := a.users.DeleteUser(user.ID); err != nil {
				return storeFailure("delete-user", err)
			}
			fmt.Fprintf(out, "User %d deleted\n", user.ID)
			return nil
		},
	}
}

func newUpdateUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update-user <id> [--name <name>] [--lastname <lastname>]",
		Aliases: []string{"updateUser"},
		Short:   "Update a user; omitted fields keep their value",
		Args:    idArg("user ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("user ID", args[0])
			out := cmd.OutOrStdout()

			// Read-modify-write without isolation; a concurrent update may be lost.
			user, err := lookup(out, "update-user", "User", a.users.GetUser, id)
			if err != nil || user == nil {
				return err
			}
			updated := entities.User{
				ID:       user.ID,
				Name:     optionalString(cmd, "name", user.Name),
				Lastname: optionalString(cmd, "lastname", user.Lastname),
			}
			if err := a.users.UpdateUser(updated.ID, updated.Name, updated.Lastname); err != nil {
				return storeFailure("update-user", err)
			}
			fmt.Fprintf(out, "User %d updated\n", updated.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name of the user")
	cmd.Flags().String("lastname", "", "New lastname of the user")
	return cmd
}
