package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/clock"
	"github.com/spiffcs/punchcard/internal/log"
	"github.com/spiffcs/punchcard/internal/tui"
)

// NewCmdClock creates the clock command.
func NewCmdClock(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock [in|out|toggle] <project>",
		Short: "Clock in or out of a project",
		Long: `Build a clock operation for a project and print the time it takes
effect. The type defaults to toggle.

The offset comes from --offset, otherwise from an interactive prompt when
running in a terminal, otherwise from default_offset in the config.
  punchcard clock in website --offset "15m ago"
  punchcard clock out website`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClock(cmd, args, opts)
		},
	}

	cmd.Flags().Var(newOffsetFlag(&opts.Offset), "offset", "Shift the clock time (e.g. \"15m ago\", \"in 5m\")")
	cmd.Flags().Var(newPromptFlag(opts), "prompt", "Prompt for an offset when none is given (default: auto-detect)")
	cmd.Flags().Lookup("prompt").NoOptDefVal = "true"
	cmd.Flags().StringVar(&opts.TimeLayout, "time-layout", "", "Go time layout for the printed timestamp")

	return cmd
}

func runClock(cmd *cobra.Command, args []string, opts *Options) error {
	op := clock.Operation{Project: args[len(args)-1]}
	if len(args) == 2 {
		t, err := clock.ParseType(args[0])
		if err != nil {
			return err
		}
		op.Type = t
	}
	if err := op.Validate(); err != nil {
		return err
	}

	offset, err := resolveOffset(op, opts)
	if err != nil {
		return err
	}
	op.Offset = offset

	now := opts.now()
	effective := op.Effective(now)
	log.Info("clock operation", "type", op.Type, "project", op.Project, "effective", effective)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s at %s", op.Type, color.New(color.Bold).Sprint(op.Project), effective.Format(opts.timeLayout()))
	if op.Offset != nil && !op.Offset.IsZero() {
		fmt.Fprintf(out, " %s", color.New(color.Faint).Sprintf("(%s)", op.Offset.FriendlyString()))
	}
	fmt.Fprintln(out)
	return nil
}

// resolveOffset picks the offset from the flag, the prompt or the config,
// in that order.
func resolveOffset(op clock.Operation, opts *Options) (*biduration.BiDuration, error) {
	if opts.Offset != nil {
		log.Debug("offset from flag", "offset", opts.Offset.FriendlyString())
		return opts.Offset, nil
	}

	if shouldPrompt(opts) {
		log.Debug("prompting for offset")
		b, err := tui.PromptOffset(fmt.Sprintf("%s %s: offset from now", op.Type, op.Project))
		if errors.Is(err, tui.ErrCancelled) {
			return nil, errors.New("cancelled")
		}
		return b, err
	}

	if opts.config.DefaultOffset != nil {
		log.Debug("offset from config", "offset", opts.config.DefaultOffset.FriendlyString())
	}
	return opts.config.DefaultOffset, nil
}
