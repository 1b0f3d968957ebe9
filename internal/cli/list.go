package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-navfilter/pkg/navigator"
)

func newListCommand(a *app) *cobra.Command {
	var (
		query string
		kinds bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured filters and their current summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if kinds {
				for _, kind := range navigator.NewRegistry().Kinds() {
					if _, err := fmt.Fprintln(out, kind); err != nil {
						return err
					}
				}
				return nil
			}

			agg, err := a.aggregator(query)
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "LABEL", "KIND", "PROPERTY", "CHOICES", "SUMMARY")
			for _, f := range agg.Filters() {
				def := f.Definition
				choices := "-"
				if !f.Remote() {
					choices = strconv.Itoa(len(def.Choices))
				}
				t.Row(def.Name, def.DisplayLabel(), def.Kind, def.QueryProperty(), choices, f.Controller.RenderSummary())
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "navigator query to summarise, e.g. severities=MAJOR,MINOR")
	cmd.Flags().BoolVar(&kinds, "kinds", false, "list registered filter kinds instead")
	return cmd
}
