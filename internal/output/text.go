package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spiffcs/punchcard/internal/resolve"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// TextFormatter writes one aligned, colored line per result.
type TextFormatter struct {
	TimeLayout string
}

// displayWidth returns the visible width of a string in terminal columns,
// ignoring ANSI escape sequences.
func displayWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// padRight pads a string with spaces to reach the target visible width
func padRight(s string, targetWidth int) string {
	w := displayWidth(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

func directionArrow(r resolve.Result) string {
	switch r.Direction {
	case "backward":
		return color.YellowString("←")
	default:
		return color.GreenString("→")
	}
}

// Format outputs results as aligned text
func (f *TextFormatter) Format(results []resolve.Result, w io.Writer) error {
	if len(results) == 0 {
		fmt.Fprintln(w, "No expressions given.")
		return nil
	}

	inputWidth, offsetWidth, hoursWidth := 0, 0, 0
	for _, r := range results {
		inputWidth = max(inputWidth, displayWidth(r.Input))
		if !r.Failed() {
			offsetWidth = max(offsetWidth, displayWidth(r.Offset))
			hoursWidth = max(hoursWidth, displayWidth(r.Hours))
		}
	}

	for _, r := range results {
		input := padRight(r.Input, inputWidth)
		if r.Failed() {
			fmt.Fprintf(w, "%s  %s %s\n", input, color.RedString("✗"), color.RedString(r.Error))
			continue
		}
		fmt.Fprintf(w, "%s  %s %s  %s  %s\n",
			input,
			directionArrow(r),
			padRight(r.Offset, offsetWidth),
			color.New(color.Faint).Sprint(padRight(r.Hours, hoursWidth)),
			color.CyanString(formatTarget(r, f.TimeLayout)),
		)
	}

	return nil
}
