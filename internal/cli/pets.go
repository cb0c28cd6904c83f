package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrlokans/petsctl/internal/entities"
)

func newUserPetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pets <userId>",
		Short: "List the pets of a user",
		Args:  idArg("user ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("user ID", args[0])
			out := cmd.OutOrStdout()

			user, err := lookup(out, "pets", "User", a.users.GetUser, id)
			if err != nil || user == nil {
				return err
			}
			views, err := a.pets.PetsByUser(user.ID)
			if err != nil {
				return storeFailure("pets", err)
			}
			if len(views) == 0 {
				fmt.Fprintf(out, "%s has no pets\n", user.FullName())
				return nil
			}

			fmt.Fprintf(out, "Pets of %s\n", user.FullName())
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{itoa(view.ID), view.Category, view.Name, view.Sex, itoa(view.Age)})
			}
			renderTable(out, []string{"ID", "Category", "Name", "Sex", "Age"}, rows)
			return nil
		},
	}
}

func newPetListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "pet-list",
		Aliases: []string{"petList"},
		Short:   "List all pets with their category and owner",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			views, err := a.pets.ListPets()
			if err != nil {
				return storeFailure("pet-list", err)
			}
			if len(views) == 0 {
				fmt.Fprintln(out, "No pets found")
				return nil
			}

			fmt.Fprintf(out, "There are %d pets\n", len(views))
			rows := make([][]string, 0, len(views))
			for _, view := range views {
				rows = append(rows, []string{itoa(view.ID), view.Category, view.Name, view.Sex, view.Owner, itoa(view.Age)})
			}
			renderTable(out, []string{"ID", "Category", "Name", "Sex", "Owner", "Age"}, rows)
			return nil
		},
	}
}

func newSearchPetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "search-pet <id>",
		Aliases: []string{"searchPet"},
		Short:   "Show a pet by ID",
		Args:    idArg("pet ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("pet ID", args[0])
			out := cmd.OutOrStdout()

			pet, err := lookup(out, "search-pet", "Pet", a.pets.GetPet, id)
			if err != nil || pet == nil {
				return err
			}
			fmt.Fprintf(out, "Pet %d - %s - %s - %d (category %d, owner %d)\n",
				pet.ID, pet.Name, pet.Sex, pet.Age, pet.CategoryID, pet.OwnerID)
			return nil
		},
	}
}

// ownerAndCategory looks up both references of a pet before it is written.
// It returns ok=false after printing a "not found" message if either is
// missing.
func (a *app) ownerAndCategory(out io.Writer, command string, ownerID, categoryID uint) (*entities.User, *entities.Category, bool, error) {
	owner, err := lookup(out, command, "User", a.users.GetUser, ownerID)
	if err != nil || owner == nil {
		return nil, nil, false, err
	}
	category, err := lookup(out, command, "Category", a.categories.GetCategory, categoryID)
	if err != nil || category == nil {
		return nil, nil, false, err
	}
	return owner, category, true, nil
}

func newNewPetCmd(a *app) *cobra.Command {
	var (
		categoryID uint
		age        int
	)
	cmd := &cobra.Command{
		Use:     "new-pet <userId> --category <id> --name <name> --sex <sex> --age <age>",
		Aliases: []string{"newPet"},
		Short:   "Create a pet for a user",
		Args:    idArg("user ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, _ := parseID("user ID", args[0])
			if err := requireSet(cmd, "category"); err != nil {
				return err
			}
			name, err := requireString(cmd, "name")
			if err != nil {
				return err
			}
			sex, err := requireString(cmd, "sex")
			if err != nil {
				return err
			}
			if err := requireSet(cmd, "age"); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			owner, _, ok, err := a.ownerAndCategory(out, "new-pet", ownerID, categoryID)
			if err != nil || !ok {
				return err
			}

			if _, err := a.pets.CreatePet(owner.ID, categoryID, name, sex, age); err != nil {
				return storeFailure("new-pet", err)
			}
			fmt.Fprintf(out, "Pet %s created for %s\n", name, owner.FullName())
			return nil
		},
	}
	cmd.Flags().UintVar(&categoryID, "category", 0, "Category ID of the pet (required)")
	cmd.Flags().String("name", "", "Name of the pet (required)")
	cmd.Flags().String("sex", "", "Sex of the pet (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Age of the pet (required)")
	return cmd
}

func newUpdatePetCmd(a *app) *cobra.Command {
	var (
		categoryID uint
		ownerID    uint
		age        int
	)
	cmd := &cobra.Command{
		Use:     "update-pet <id> [--category <id>] [--name <name>] [--sex <sex>] [--owner <id>] [--age <age>]",
		Aliases: []string{"updatePet"},
		Short:   "Update a pet; omitted fields keep their value",
		Args:    idArg("pet ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("pet ID", args[0])
			out := cmd.OutOrStdout()

			// Read-modify-write without isolation; a concurrent update may be lost.
			pet, err := lookup(out, "update-pet", "Pet", a.pets.GetPet, id)
			if err != nil || pet == nil {
				return err
			}

			updated := *pet
			updated.Name = optionalString(cmd, "name", pet.Name)
			updated.Sex = optionalString(cmd, "sex", pet.Sex)
			if cmd.Flags().Changed("category") {
				updated.CategoryID = categoryID
			}
			if cmd.Flags().Changed("owner") {
				updated.OwnerID = ownerID
			}
			if cmd.Flags().Changed("age") {
				updated.Age = age
			}

			if updated.OwnerID != pet.OwnerID {
				if owner, err := lookup(out, "update-pet", "User", a.users.GetUser, updated.OwnerID); err != nil || owner == nil {
					return err
				}
			}
			if updated.CategoryID != pet.CategoryID {
				if category, err := lookup(out, "update-pet", "Category", a.categories.GetCategory, updated.CategoryID); err != nil || category == nil {
					return err
				}
			}

			if err := a.pets.UpdatePet(updated.ID, updated.CategoryID, updated.Name, updated.Sex, updated.OwnerID, updated.Age); err != nil {
				return storeFailure("update-pet", err)
			}
			fmt.Fprintf(out, "Pet %s updated\n", updated.Name)
			return nil
		},
	}
	cmd.Flags().UintVar(&categoryID, "category", 0, "New category ID")
	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("sex", "", "New sex")
	cmd.Flags().UintVar(&ownerID, "owner", 0, "New owner user ID")
	cmd.Flags().IntVar(&age, "age", 0, "New age")
	return cmd
}

func newDeletePetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-pet <id>",
		Aliases: []string{"deletePet"},
		Short:   "Delete a pet by ID",
		Args:    idArg("pet ID"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID("pet ID", args[0])
			out := cmd.OutOrStdout()

			pet, err := lookup(out, "delete-pet", "Pet", a.pets.GetPet, id)
			if err != nil || pet == nil {
				return err
			}
			if err := a.pets.DeletePet(pet.ID); err != nil {
				return storeFailure("delete-pet", err)
			}
			fmt.Fprintf(out, "Pet %s deleted\n", pet.Name)
			return nil
		},
	}
}
