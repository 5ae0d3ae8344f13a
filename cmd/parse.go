package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spiffcs/punchcard/internal/log"
	"github.com/spiffcs/punchcard/internal/output"
	"github.com/spiffcs/punchcard/internal/resolve"
)

// NewCmdParse creates the parse command.
func NewCmdParse(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [expr...]",
		Short: "Parse offset expressions",
		Long: `Parse one or more offset expressions and show their direction,
normalized form and the timestamp they resolve to.

Each argument is a separate expression, so quote multi-word offsets:
  punchcard parse "in 1h 30m" "15m ago"

Use -f to read one expression per line from a file ("-" for stdin).
Blank lines and lines starting with # are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	addParseFlags(cmd, opts)

	return cmd
}

// addParseFlags adds parse-specific flags to a command.
func addParseFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (text, table, json, yaml, markdown)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read expressions from file, one per line (- for stdin)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Base time for offsets (RFC3339, 2006-01-02 15:04, or HH:MM; default now)")
	cmd.Flags().StringVar(&opts.TimeLayout, "time-layout", "", "Go time layout for printed timestamps")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "Number of concurrent workers (default from config)")

	// Profiling flags (hidden)
	cmd.Flags().StringVar(&opts.CPUProfile, "cpuprofile", "", "Write CPU profile to file")
	cmd.Flags().StringVar(&opts.MemProfile, "memprofile", "", "Write memory profile to file")
	cmd.Flags().StringVar(&opts.Trace, "trace", "", "Write execution trace to file")
	_ = cmd.Flags().MarkHidden("cpuprofile")
	_ = cmd.Flags().MarkHidden("memprofile")
	_ = cmd.Flags().MarkHidden("trace")
}

func runParse(cmd *cobra.Command, args []string, opts *Options) error {
	profiler := NewProfiler(ProfileOptions{
		CPU:   opts.CPUProfile,
		Mem:   opts.MemProfile,
		Trace: opts.Trace,
	})
	if err := profiler.Start(); err != nil {
		return err
	}
	defer profiler.Stop()

	format, err := output.ParseFormat(opts.outputFormat())
	if err != nil {
		return err
	}

	base, err := opts.base()
	if err != nil {
		return err
	}

	inputs := args
	if opts.File != "" {
		lines, err := readExpressions(cmd, opts.File)
		if err != nil {
			return err
		}
		inputs = append(inputs, lines...)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no expressions given")
	}

	log.Info("resolving offsets", "count", len(inputs), "base", base, "workers", opts.workers())

	results, err := resolve.All(cmd.Context(), inputs, base, opts.workers())
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(format, opts.timeLayout())
	if err := formatter.Format(results, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if failed := resolve.CountFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d expressions failed to parse", failed, len(results))
	}
	return nil
}

// readExpressions reads one expression per line, skipping blanks and comments.
func readExpressions(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debug("read expressions", "path", path, "count", len(lines))
	return lines, nil
}
