// Version command for the kbase CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/kb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the kbase version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("kbase", kb.Version)
	},
}
