// Category commands: list, add, rename, delete.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		categories := db.Categories().GetAll()
		if flagJSON {
			return printJSON(categories)
		}
		for _, c := range categories {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var categoryName string

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a category",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		if _, err := currentUser(db); err != nil {
			return err
		}

		updated, err := db.Categories().Add(types.Category{Name: categoryName})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created category: %s\n", updated[len(updated)-1].ID)
		return nil
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <id>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		actor, err := requireAdmin(db)
		if err != nil {
			return err
		}

		if _, err := db.Categories().Rename(actor, args[0], categoryName); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Renamed")
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an unreferenced category",
	Long: `Delete removes a category. The delete is refused while any entry
still references the category; reassign or delete those entries first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		actor, err := requireAdmin(db)
		if err != nil {
			return err
		}

		updated, err := db.Categories().Delete(actor, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s (%d remaining)\n", args[0], len(updated))
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryName, "name", "", "category name (required)")
	_ = categoryAddCmd.MarkFlagRequired("name")
	categoryRenameCmd.Flags().StringVar(&categoryName, "name", "", "new category name (required)")
	_ = categoryRenameCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
