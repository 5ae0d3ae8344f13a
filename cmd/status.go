package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/clock"
	"github.com/spiffcs/punchcard/internal/log"
)

// NewCmdStatus creates the status command.
func NewCmdStatus(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how long ago a clock time was",
		Long: `Show the time elapsed since a timestamp in hours and minutes,
the way a running clock is displayed.
  punchcard status --since 09:00
  punchcard status --since 09:00 --offset "15m ago"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Since, "since", "s", "", "Clock time (RFC3339, 2006-01-02 15:04, or HH:MM)")
	cmd.Flags().Var(newOffsetFlag(&opts.Offset), "offset", "Shift the clock time before measuring")
	cmd.Flags().StringVar(&opts.TimeLayout, "time-layout", "", "Go time layout for the printed timestamp")
	_ = cmd.MarkFlagRequired("since")

	return cmd
}

func runStatus(cmd *cobra.Command, opts *Options) error {
	now := opts.now()
	since, err := clock.ParseWhen(opts.Since, now)
	if err != nil {
		return err
	}
	if opts.Offset != nil {
		since = opts.Offset.AddTo(since)
	}

	elapsed := clock.Elapsed(since, now)
	log.Debug("elapsed", "since", since, "now", now, "elapsed", elapsed.Duration())

	fmt.Fprintln(cmd.OutOrStdout(), statusLine(elapsed, since.Format(opts.timeLayout())))
	return nil
}

func statusLine(elapsed biduration.BiDuration, at string) string {
	if elapsed.Direction() == biduration.Backward {
		return fmt.Sprintf("%s until %s", elapsed.FriendlyHoursString(), at)
	}
	return fmt.Sprintf("%s since %s", elapsed.FriendlyHoursString(), at)
}
