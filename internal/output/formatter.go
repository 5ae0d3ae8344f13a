package output

import (
	"fmt"
	"io"

	"github.com/spiffcs/punchcard/internal/resolve"
)

// Format represents the output format
type Format string

const (
	FormatText     Format = "text"
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// DefaultTimeLayout is used when no layout is configured.
const DefaultTimeLayout = "2006-01-02 15:04"

// Formatter defines the interface for output formatters
type Formatter interface {
	Format(results []resolve.Result, w io.Writer) error
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be text, table, json, yaml or markdown)", s)
	}
}

// NewFormatter creates a formatter for the specified format. timeLayout
// applies to the human-oriented formats.
func NewFormatter(format Format, timeLayout string) Formatter {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatTable:
		return &TableFormatter{TimeLayout: timeLayout}
	case FormatMarkdown:
		return &MarkdownFormatter{TimeLayout: timeLayout}
	default:
		return &TextFormatter{TimeLayout: timeLayout}
	}
}

func formatTarget(r resolve.Result, layout string) string {
	if r.Target == nil {
		return ""
	}
	return r.Target.Format(layout)
}
