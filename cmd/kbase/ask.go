package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Draft entry content for a question with AI",
	Long: `Ask sends a question or entry title to the AI helper and prints the
drafted HTML content. Requires GEMINI_API_KEY in the environment or a
.env file; without it a fixed notice is printed instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assistant := newAssistant(cmd.Context())
		question := args[0]
		for _, a := range args[1:] {
			question += " " + a
		}
		fmt.Fprintln(cmd.OutOrStdout(), assistant.Generate(cmd.Context(), question))
		return nil
	},
}
