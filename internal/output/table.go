package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spiffcs/punchcard/internal/resolve"
)

// TableFormatter formats output as a bordered terminal table
type TableFormatter struct {
	TimeLayout string
}

// Format outputs results as a table
func (f *TableFormatter) Format(results []resolve.Result, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Input", "Direction", "Offset", "Hours", "Target")

	for _, r := range results {
		if r.Failed() {
			table.Append([]string{r.Input, "-", r.Error, "-", "-"})
			continue
		}
		table.Append([]string{r.Input, r.Direction, r.Offset, r.Hours, formatTarget(r, f.TimeLayout)})
	}

	table.Render()
	return nil
}
