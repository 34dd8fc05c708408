// Entry list command with the search/filter pipeline and optional AI
// summary of the visible subset.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opsdesk/kbase/pkg/kb"
)

var (
	listSearch    string
	listCategory  string
	listWithin    int
	listSummarize bool
)

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge entries, newest first",
	Long: `List shows the entry collection after running the filter pipeline:
text search (title or tag-stripped content), category, and recency
window, in that order.

Example:
  kbase entry list
  kbase entry list --search vpn --within 30
  kbase entry list --category 1 --summarize`,
	Args: cobra.NoArgs,
	RunE: runEntryList,
}

func init() {
	entryListCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive text search")
	entryListCmd.Flags().StringVar(&listCategory, "category", "", "filter by category ID")
	entryListCmd.Flags().IntVar(&listWithin, "within", 0, "only entries created in the last N days (7 or 30)")
	entryListCmd.Flags().BoolVar(&listSummarize, "summarize", false, "append an AI summary of the visible entries")
}

func runEntryList(cmd *cobra.Command, args []string) error {
	window := kb.WindowAll
	switch listWithin {
	case 0:
	case 7:
		window = kb.WindowWeek
	case 30:
		window = kb.WindowMonth
	default:
		return fmt.Errorf("unsupported window %d: use 7 or 30", listWithin)
	}

	db, closer, err := openDatabase()
	if err != nil {
		return err
	}
	defer closer()

	view := kb.NewView()
	var summary kb.SummaryCache
	summary.Bind(view)

	view.SetEntries(db.Entries().GetAll())
	view.SetFilter(kb.Filter{
		Query:      listSearch,
		CategoryID: listCategory,
		Window:     window,
	})
	visible := view.Visible()

	if listSummarize {
		titles := make([]string, 0, len(visible))
		for _, e := range visible {
			titles = append(titles, e.Title)
		}
		summary.Set(newAssistant(cmd.Context()).Summarize(cmd.Context(), titles))
	}

	if flagJSON {
		out := struct {
			Entries any    `json:"entries"`
			Summary string `json:"summary,omitempty"`
		}{visible, summary.Text()}
		return printJSON(out)
	}

	if len(visible) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries found")
	}
	for _, e := range visible {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-40s  %-24s  %s\n",
			e.ID, truncate(e.Title, 40), db.Categories().NameOf(e.CategoryID), e.CreatedAt.Format("2006-01-02"))
	}
	if s := summary.Text(); s != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nSummary: %s\n", s)
	}
	return nil
}

// truncate shortens s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-3])) + "..."
}
