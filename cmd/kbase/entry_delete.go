// Entry delete command. Deletion is two-phase: the intent is staged,
// then confirmed interactively or with --yes; answering no cancels with
// no effect on the store.
package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a knowledge entry",
	Long: `Delete removes an entry after confirmation. Administrator only.

Example:
  kbase entry delete 101
  kbase entry delete 101 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runEntryDelete,
}

func init() {
	entryDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "skip the confirmation prompt")
}

func runEntryDelete(cmd *cobra.Command, args []string) error {
	db, closer, err := openDatabase()
	if err != nil {
		return err
	}
	defer closer()

	actor, err := requireAdmin(db)
	if err != nil {
		return err
	}

	pending, err := db.Entries().StageDelete(actor, args[0])
	if err != nil {
		return err
	}

	if !deleteYes {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete entry %s? This cannot be undone. [y/N]: ", pending.ID())
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			pending.Cancel()
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	updated, err := pending.Confirm()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s (%d remaining)\n", pending.ID(), len(updated))
	return nil
}
