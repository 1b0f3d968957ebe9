package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-navfilter/pkg/navigator"
	"github.com/goliatone/go-navfilter/pkg/renderers/tui"
)

func newPickCommand(a *app) *cobra.Command {
	var (
		format string
		query  string
		plain  bool
	)
	cmd := &cobra.Command{
		Use:   "pick <filter>",
		Short: "Interactively choose values for one filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := a.aggregator(query)
			if err != nil {
				return err
			}
			f, ok := agg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("cli: unknown filter %q", args[0])
			}

			opts := []tui.Option{
				tui.WithOutputFormat(tui.ParseOutputFormat(format)),
				tui.WithOutput(cmd.OutOrStdout()),
				tui.WithLogger(a.logger),
			}
			if a.driver != nil {
				opts = append(opts, tui.WithPromptDriver(a.driver))
			}
			if plain {
				opts = append(opts, tui.WithTheme(tui.PlainTheme()))
			}

			a.logger.Debug("pick started", "filter", f.Definition.Name, "remote", f.Remote())
			payload, err := tui.New(opts...).Run(cmd.Context(), f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(tui.OutputFormatJSON), "result format: json, query or pretty")
	cmd.Flags().StringVar(&query, "query", "", "current navigator query to restore, e.g. severities=MAJOR")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable colors")
	return cmd
}

// aggregator builds every configured filter and restores them from a raw
// navigator query string.
func (a *app) aggregator(rawQuery string) (*navigator.Aggregator, error) {
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	agg, err := store.Build(navigator.NewRegistry(), a.deps())
	if err != nil {
		return nil, err
	}
	if rawQuery != "" {
		values, err := url.ParseQuery(rawQuery)
		if err != nil {
			return nil, fmt.Errorf("cli: parse query: %w", err)
		}
		agg.Restore(values)
	}
	return agg, nil
}
