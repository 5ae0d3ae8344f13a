package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/spiffcs/punchcard/internal/resolve"
)

// MarkdownFormatter formats output as a Markdown table
type MarkdownFormatter struct {
	TimeLayout string
}

// Format outputs results as Markdown
func (f *MarkdownFormatter) Format(results []resolve.Result, w io.Writer) error {
	fmt.Fprintln(w, "| Input | Direction | Offset | Hours | Target |")
	fmt.Fprintln(w, "|-------|-----------|--------|-------|--------|")

	for _, r := range results {
		if r.Failed() {
			fmt.Fprintf(w, "| `%s` | | **error:** %s | | |\n", escapePipes(r.Input), escapePipes(r.Error))
			continue
		}
		fmt.Fprintf(w, "| `%s` | %s | %s | %s | %s |\n",
			escapePipes(r.Input), r.Direction, r.Offset, r.Hours, formatTarget(r, f.TimeLayout))
	}

	return nil
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
