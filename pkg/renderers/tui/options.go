package tui

import (
	"io"
	"log/slog"
)

// OutputFormat controls how the final selection is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits {"filter", "property", "value", "summary"}.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatQuery emits property=id1,id2 as a URL query.
	OutputFormatQuery OutputFormat = "query"
	// OutputFormatPrettyText emits "Label: summary".
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag value to a format. Unknown values fall back
// to JSON.
func ParseOutputFormat(raw string) OutputFormat {
	switch OutputFormat(raw) {
	case OutputFormatQuery, OutputFormatPrettyText:
		return OutputFormat(raw)
	default:
		return OutputFormatJSON
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithTheme overrides the styles used to draw the panel.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithOutput sets where the default survey driver prints panel views.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithLogger sets the logger handed to panels.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPageSize caps how many rows survey shows per page.
func WithPageSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.pageSize = size
		}
	}
}
