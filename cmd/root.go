package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spiffcs/punchcard/config"
	"github.com/spiffcs/punchcard/internal/log"
	"github.com/spiffcs/punchcard/internal/tui"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	return newRootCmd(NewOptions())
}

func newRootCmd(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "punchcard",
		Short: "Relative time offsets for clocking in and out",
		Long: `A CLI tool for working with signed, human-readable time offsets
such as "in 1h 30m" or "15m ago", and for computing the timestamps
they point at.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.File == "" {
				return cmd.Help()
			}
			return runParse(cmd, args, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().StringVar(&opts.Color, "color", "", "Color output (auto, always, never)")

	// Add parse flags to root command so `punchcard <expr>` and `punchcard parse <expr>` work identically
	addParseFlags(rootCmd, opts)

	// Register subcommands
	rootCmd.AddCommand(NewCmdParse(opts))
	rootCmd.AddCommand(NewCmdAt(opts))
	rootCmd.AddCommand(NewCmdClock(opts))
	rootCmd.AddCommand(NewCmdStatus(opts))
	rootCmd.AddCommand(NewCmdConfig(opts))
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// setup initializes logging, loads config and applies the color mode.
func setup(cmd *cobra.Command, opts *Options) error {
	log.Initialize(opts.Verbosity, cmd.ErrOrStderr())

	if opts.config == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		opts.config = cfg
	}

	mode := opts.Color
	if mode == "" {
		mode = opts.config.Color
	}
	return applyColorMode(mode)
}

func applyColorMode(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		color.NoColor = os.Getenv("NO_COLOR") != "" || !tui.IsTerminal()
	default:
		return fmt.Errorf("invalid color mode: %s (must be auto, always or never)", mode)
	}
	log.Debug("color mode", "mode", mode, "enabled", !color.NoColor)
	return nil
}
