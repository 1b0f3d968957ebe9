package cli

import (
	"context"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-navfilter/pkg/config"
	"github.com/goliatone/go-navfilter/pkg/navigator"
	"github.com/goliatone/go-navfilter/pkg/renderers/tui"
	"github.com/goliatone/go-navfilter/pkg/suggest"
)

//go:embed defaults/filters.yaml
var defaultsFS embed.FS

// Option customises the command tree, mainly for tests.
type Option func(*app)

// WithPromptDriver replaces the terminal driver used by pick.
func WithPromptDriver(driver tui.PromptDriver) Option {
	return func(a *app) {
		a.driver = driver
	}
}

// WithHTTPClient replaces the client used by remote filters.
func WithHTTPClient(client *http.Client) Option {
	return func(a *app) {
		a.httpClient = client
	}
}

type app struct {
	v          *viper.Viper
	settings   Settings
	logger     *slog.Logger
	driver     tui.PromptDriver
	httpClient *http.Client
}

// NewRootCommand builds the navfilter command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{v: newViper()}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	root := &cobra.Command{
		Use:   "navfilter",
		Short: "Search, pick and serve navigator filter values",
		Long: `navfilter drives the filters of an issue navigator from the terminal.
Static filters are narrowed locally; project, assignee and reporter filters
search a paged suggestion endpoint as you type.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "settings file (default ./navfilter.yaml)")
	flags.String("base-url", "", "base URL of the suggestion endpoints")
	flags.StringP("filters", "f", "", "filter definitions file (JSON or YAML)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	_ = a.v.BindPFlag(keyConfig, flags.Lookup("config"))
	_ = a.v.BindPFlag(keyBaseURL, flags.Lookup("base-url"))
	_ = a.v.BindPFlag(keyFilters, flags.Lookup("filters"))
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(keyLogFormat, flags.Lookup("log-format"))

	root.AddCommand(
		newPickCommand(a),
		newListCommand(a),
		newServeCommand(a),
	)
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string, opts ...Option) error {
	root := NewRootCommand(opts...)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) init(stderr io.Writer) error {
	if err := readConfig(a.v); err != nil {
		return fmt.Errorf("cli: read settings: %w", err)
	}
	a.settings = settingsFrom(a.v)
	logger, err := newLogger(stderr, a.settings.LogLevel, a.settings.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// store loads the filter definitions from --filters, or the built-in set.
func (a *app) store() (*config.Store, error) {
	if a.settings.Filters != "" {
		return config.LoadFile(a.settings.Filters)
	}
	sub, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return nil, err
	}
	return config.LoadFS(sub)
}

func (a *app) deps() navigator.Deps {
	return navigator.Deps{
		BaseURL:    a.settings.BaseURL,
		HTTPClient: a.httpClient,
		Logger:     a.logger,
		ClientOptions: []suggest.OptionFn{
			suggest.WithPageSize(a.settings.PageSize),
			suggest.WithTimeout(a.settings.Timeout),
		},
	}
}
