// Entry show command prints one entry in full.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/kb"
)

var entryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a knowledge entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryShow,
}

func runEntryShow(cmd *cobra.Command, args []string) error {
	db, closer, err := openDatabase()
	if err != nil {
		return err
	}
	defer closer()

	for _, e := range db.Entries().GetAll() {
		if e.ID != args[0] {
			continue
		}
		if flagJSON {
			return printJSON(e)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Title:    %s\n", e.Title)
		fmt.Fprintf(cmd.OutOrStdout(), "Category: %s\n", db.Categories().NameOf(e.CategoryID))
		fmt.Fprintf(cmd.OutOrStdout(), "Author:   %s\n", e.AuthorName)
		fmt.Fprintf(cmd.OutOrStdout(), "Created:  %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(cmd.OutOrStdout(), "Views:    %d\n\n", e.Views)
		fmt.Fprintln(cmd.OutOrStdout(), kb.StripTags(e.Content))
		return nil
	}
	return fmt.Errorf("entry %s not found", args[0])
}
