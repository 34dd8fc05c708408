// Entry add command creates a new knowledge entry.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/types"
)

var (
	entryTitle        string
	entryContent      string
	entryCategoryID   string
	entryCategoryName string
	entryAuthor       string
	entryUseAI        bool
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new knowledge entry",
	Long: `Add creates a knowledge entry in an existing category, or in a new
category created inline with --category-name. Administrator only.

With --ai and no --content, the entry body is drafted by the AI
assistant from the title; generation is best-effort and falls back to a
placeholder message when the service is unavailable.

Example:
  kbase entry add --title "Reset MFA token" --content "<p>...</p>" --category 4
  kbase entry add --title "Reset MFA token" --ai --category-name "Identity"`,
	Args: cobra.NoArgs,
	RunE: runEntryAdd,
}

func init() {
	entryAddCmd.Flags().StringVar(&entryTitle, "title", "", "entry title (required)")
	entryAddCmd.Flags().StringVar(&entryContent, "content", "", "entry body as HTML markup")
	entryAddCmd.Flags().StringVar(&entryCategoryID, "category", "", "ID of an existing category")
	entryAddCmd.Flags().StringVar(&entryCategoryName, "category-name", "", "create a new category with this name")
	entryAddCmd.Flags().StringVar(&entryAuthor, "author", "", "author name (default: session user)")
	entryAddCmd.Flags().BoolVar(&entryUseAI, "ai", false, "draft the body with the AI assistant when --content is empty")
	_ = entryAddCmd.MarkFlagRequired("title")
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	db, closer, err := openDatabase()
	if err != nil {
		return err
	}
	defer closer()

	actor, err := requireAdmin(db)
	if err != nil {
		return err
	}

	categoryID := entryCategoryID
	if categoryID == "" && entryCategoryName != "" {
		// Inline category creation, same flow the create form offers.
		updated, err := db.Categories().Add(types.Category{Name: entryCategoryName})
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		categoryID = updated[len(updated)-1].ID
	}

	content := entryContent
	if content == "" && entryUseAI {
		content = newAssistant(cmd.Context()).Generate(cmd.Context(), entryTitle)
	}

	updated, err := db.Entries().Add(actor, types.Entry{
		Title:      entryTitle,
		Content:    content,
		CategoryID: categoryID,
		AuthorName: entryAuthor,
	})
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	created := updated[0]
	if flagJSON {
		return printJSON(created)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created entry: %s\n", created.ID)
	return nil
}
