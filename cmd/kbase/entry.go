// Entry parent command.
package main

import "github.com/spf13/cobra"

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage knowledge entries",
}

func init() {
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryListCmd)
	entryCmd.AddCommand(entryShowCmd)
	entryCmd.AddCommand(entryDeleteCmd)
}
