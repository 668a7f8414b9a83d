package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"pod-dashboard/internal/dashboard"
	"pod-dashboard/internal/store"
	"pod-dashboard/pkg/api"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

func newTrendsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Fetch the latest trends and print the listing aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := opts.build()
			if err != nil {
				return err
			}
			defer deps.Close()

			deps.Trends.FetchTrends(cmd.Context())
			return printTrendReport(cmd.OutOrStdout(), deps.Trends.Snapshot())
		},
	}
}

func newTrendCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trend <id>",
		Short: "Print one trend as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid trend id %q: %w", args[0], err)
			}

			deps, err := opts.build()
			if err != nil {
				return err
			}
			defer deps.Close()

			trend, err := deps.Client.Trends().Get(cmd.Context(), id)
			if api.IsNotFound(err) {
				return fmt.Errorf("trend %d not found", id)
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), trend)
		},
	}
}

func newImportTrendCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import-trend <file.json>",
		Short: "Create a trend from a JSON payload file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var payload api.TrendCreate
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			deps, err := opts.build()
			if err != nil {
				return err
			}
			defer deps.Close()

			created, err := deps.Client.Trends().Create(cmd.Context(), payload)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created trend %d (%s)\n", created.ID, created.Niche)
			return nil
		},
	}
}

// printTrendReport writes the same aggregates the listing page shows,
// followed by one row per trend. A failed fetch is reported as an error after
// whatever data the store still holds.
func printTrendReport(w io.Writer, st store.State) error {
	sum := dashboard.Summarize(st.Trends)

	fmt.Fprintln(w, headerStyle.Render("=== Trend Analysis ==="))
	fmt.Fprintf(w, "Total Trends: %d\n", sum.Total)
	fmt.Fprintf(w, "Avg Score:    %s\n", dashboard.Fixed(sum.AverageScore, 1))
	fmt.Fprintf(w, "High Demand:  %d\n", sum.HighDemand)
	fmt.Fprintf(w, "Profitable:   %d\n", sum.Profitable)

	if len(st.Trends) > 0 {
		rows := make([][]string, 0, len(st.Trends))
		for _, t := range st.Trends {
			rows = append(rows, []string{
				strconv.FormatInt(t.ID, 10),
				t.Niche,
				t.Category,
				dashboard.Fixed(t.OverallScore, 0),
				dashboard.Fixed(t.DemandScore, 0),
				dashboard.Fixed(t.GrowthScore, 0),
				dashboard.Fixed(t.CompetitionScore, 0),
				dashboard.Fixed(t.ProfitabilityScore, 0),
				dashboard.Price(t.AvgPrice),
				dashboard.Number(t.TotalReviews),
			})
		}
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "Niche", "Category", "Score", "Demand", "Growth", "Competition", "Profit", "Avg Price", "Reviews").
			Rows(rows...)
		fmt.Fprintln(w, tbl.Render())
	} else {
		fmt.Fprintln(w, "No trends available")
	}

	if st.Error != "" {
		return fmt.Errorf("fetch failed: %s", st.Error)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
