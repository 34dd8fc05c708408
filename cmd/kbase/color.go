package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Show or change the header color",
}

var colorGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current header color",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		color := db.Settings().HeaderColor()
		if flagJSON {
			return printJSON(map[string]string{"headerColor": color})
		}
		fmt.Fprintln(cmd.OutOrStdout(), color)
		return nil
	},
}

var colorSetCmd = &cobra.Command{
	Use:   "set <hex>",
	Short: "Set the header color",
	Long: `Set stores a new header color, e.g. "#EC0000". An empty value
resets to the default.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closer, err := openDatabase()
		if err != nil {
			return err
		}
		defer closer()

		if _, err := requireAdmin(db); err != nil {
			return err
		}

		if err := db.Settings().SetHeaderColor(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Header color set to %s\n", db.Settings().HeaderColor())
		return nil
	},
}

func init() {
	colorCmd.AddCommand(colorGetCmd)
	colorCmd.AddCommand(colorSetCmd)
}
