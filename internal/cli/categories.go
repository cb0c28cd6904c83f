package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"categorys"},
		Short:   "List all pet categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			list, err := a.categories.ListCategories()
			if err != nil {
				return storeFailure("categories", err)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "No categories found")
				return nil
			}

			fmt.Fprintf(out, "There are %d categories\n", len(list))
			rows := make([][]string, 0, len(list))
			for _, category := range list {
				rows = append(rows, []string{itoa(category.ID), category.Name})
			}
			renderTable(out, []string{"ID", "Category name"}, rows)
			return nil
		},
	}
}

func newNewCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new-category --name <name>",
		Aliases: []string{"newCategory"},
		Short:   "Create a pet category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := requireString(cmd, "name")
			if err != nil {
				return err
			}

			category, err := a.categories.CreateCategory(name)
			if err != nil {
				return storeFailure("new-category", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %d created\n", category.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "Name of the category (required)")
	return cmd
}

func newSearchCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "search-category <id>",
		Aliases: []string{"searchCategory"},
		Short:   "Show a category by ID",
		Args:    idArg("category ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("category ID", args[0])
			out := cmd.OutOrStdout()

			category, err := lookup(out, "search-category", "Category", a.categories.GetCategory, id)
			if err != nil || category == nil {
				return err
			}
			fmt.Fprintf(out, "Category %d - %s\n", category.ID, category.Name)
			return nil
		},
	}
}

func newUpdateCategoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update-category <id> [--name <name>]",
		Aliases: []string{"updateCategory"},
		Short:   "Rename a category",
		Args:    idArg("category ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("category ID", args[0])
			out := cmd.OutOrStdout()

			category, err := lookup(out, "update-category", "Category", a.categories.GetCategory, id)
			if err != nil || category == nil {
				return err
			}
			name := optionalString(cmd, "name", category.Name)
			if err := a.categories.UpdateCategory(category.ID, name); err != nil {
				return storeFailure("update-category", err)
			}
			fmt.Fprintf(out, "Category %d updated\n", category.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "New name of the category")
	return cmd
}

func newDeleteCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-category <id>",
		Aliases: []string{"deleteCategory"},
		Short:   "Delete a category by ID",
		Long:    "Delete a category by ID. Pets in the category are kept but no longer appear in joined listings.",
		Args:    idArg("category ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("category ID", args[0])
			out := cmd.OutOrStdout()

			category, err := lookup(out, "delete-category", "Category", a.categories.GetCategory, id)
			if err != nil || category == nil {
				return err
			}
			if err := a.categories.DeleteCategory(category.ID); err != nil {
				return storeFailure("delete-category", err)
			}
			fmt.Fprintf(out, "Category %s deleted\n", category.Name)
			return nil
		},
	}
}

func newPetsByCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "pets-by-category <id>",
		Aliases: []string{"petsCategory"},
		Short:   "List the pets in a category",
		Args:    idArg("category ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("category ID", args[0])
			out := cmd.OutOrStdout()

			category, err := lookup(out, "pets-by-category", "Category", a.categories.GetCategory, id)
			if err != nil || category == nil {
				return err
			}
			views, err := a.pets.PetsByCategory(category.ID)
			if err != nil {
				return storeFailure("pets-by-category", err)
			}

			fmt.Fprintf(out, "There are %d pets in category %s\n", len(views), category.Name)
			if len(views) == 0 {
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{itoa(view.ID), view.Name, view.Sex, view.Owner, itoa(view.Age)})
			}
			renderTable(out, []string{"ID", "Name", "Sex", "Owner", "Age"}, rows)
			return nil
		},
	}
}
