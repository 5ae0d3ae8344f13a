package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spiffcs/punchcard/internal/resolve"
	"gopkg.in/yaml.v3"
)

func sampleResults() []resolve.Result {
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	return []resolve.Result{
		resolve.One("in 1h 30m", base),
		resolve.One("15m ago", base),
		resolve.One("1x", base),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"table", FormatTable, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"markdown", FormatMarkdown, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextFormatter(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	if err := NewFormatter(FormatText, "").Format(sampleResults(), &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "in 1h 30m") || !strings.Contains(lines[0], "2024-01-15 13:30") {
		t.Errorf("unexpected forward line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "15m ago") || !strings.Contains(lines[1], "2024-01-15 11:45") {
		t.Errorf("unexpected backward line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "unknown unit") {
		t.Errorf("expected error line, got %q", lines[2])
	}
	if !strings.HasPrefix(lines[2], "1x       ") {
		t.Errorf("expected input column to be padded, got %q", lines[2])
	}
}

func TestTextFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Format(nil, &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if !strings.Contains(buf.String(), "No expressions") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := displayWidth("\x1b[31mred\x1b[0m"); got != 3 {
		t.Errorf("displayWidth() = %d, want 3", got)
	}
	if got := displayWidth("日本"); got != 4 {
		t.Errorf("displayWidth() = %d, want 4", got)
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Errorf("padRight() = %q, want %q", got, "ab  ")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatJSON, "").Format(sampleResults(), &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Failed != 1 {
		t.Errorf("expected 1 failure, got %d", out.Failed)
	}
	if out.Results[1].Direction != "backward" || out.Results[1].Offset != "15m ago" {
		t.Errorf("unexpected result: %+v", out.Results[1])
	}
	if out.Results[2].Target != nil {
		t.Errorf("expected failed result to have no target")
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewFormatter(FormatYAML, "").Format(sampleResults(), &buf); err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var out map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if out["failed"] != 1 {
		t.Errorf("expected failed=1, got %v", out["failed"])
	}
}

func TestTableAndMarkdownFormatters(t *testing.T) {
	for _, format := range []Format{FormatTable, FormatMarkdown} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewFormatter(format, "15:04").Format(sampleResults(), &buf); err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			out := buf.String()
			for _, want := range []string{"in 1h 30m", "15m ago", "11:45", "unknown unit"} {
				if !strings.Contains(out, want) {
					t.Errorf("expected %q in output:\n%s", want, out)
				}
			}
		})
	}
}
