package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/log"
)

// NewCmdAt creates the at command.
func NewCmdAt(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "at <expr...>",
		Short: "Print the timestamp an offset points at",
		Long: `Print only the timestamp an offset resolves to. All arguments are
joined into one expression, so quoting is optional:
  punchcard at 15m ago
  punchcard at in 2h --from 09:00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAt(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Base time for the offset (RFC3339, 2006-01-02 15:04, or HH:MM; default now)")
	cmd.Flags().StringVar(&opts.TimeLayout, "time-layout", "", "Go time layout for the printed timestamp")

	return cmd
}

func runAt(cmd *cobra.Command, args []string, opts *Options) error {
	base, err := opts.base()
	if err != nil {
		return err
	}

	b, err := biduration.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	target := b.AddTo(base)
	log.Info("resolved offset", "offset", b.FriendlyString(), "base", base, "target", target)

	fmt.Fprintln(cmd.OutOrStdout(), target.Format(opts.timeLayout()))
	return nil
}
