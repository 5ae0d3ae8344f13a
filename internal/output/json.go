package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spiffcs/punchcard/internal/resolve"
	"gopkg.in/yaml.v3"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// JSONOutput wraps the results with a failure count
type JSONOutput struct {
	Results []resolve.Result `json:"results" yaml:"results"`
	Failed  int              `json:"failed" yaml:"failed"`
}

// Format outputs results as JSON
func (f *JSONFormatter) Format(results []resolve.Result, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(newOutput(results))
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// Format outputs results as YAML
func (f *YAMLFormatter) Format(results []resolve.Result, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newOutput(results)); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

func newOutput(results []resolve.Result) JSONOutput {
	if results == nil {
		results = []resolve.Result{}
	}
	return JSONOutput{
		Results: results,
		Failed:  resolve.CountFailed(results),
	}
}
