package cmd

import (
	"fmt"

	"github.com/spiffcs/punchcard/internal/biduration"
	"github.com/spiffcs/punchcard/internal/log"
	"github.com/spiffcs/punchcard/internal/tui"
)

// promptFlag implements pflag.Value for the tri-state prompt flag.
type promptFlag struct {
	opts *Options
}

// newPromptFlag creates a new promptFlag with the given options.
func newPromptFlag(opts *Options) *promptFlag {
	return &promptFlag{opts: opts}
}

func (f *promptFlag) String() string {
	if f.opts.Prompt == nil {
		return "auto"
	}
	if *f.opts.Prompt {
		return "true"
	}
	return "false"
}

func (f *promptFlag) Set(s string) error {
	switch s {
	case "true", "1", "yes":
		v := true
		f.opts.Prompt = &v
	case "false", "0", "no":
		v := false
		f.opts.Prompt = &v
	case "auto":
		f.opts.Prompt = nil
	default:
		return fmt.Errorf("invalid value %q: use true, false, or auto", s)
	}
	return nil
}

func (f *promptFlag) Type() string {
	return "bool"
}

func (f *promptFlag) IsBoolFlag() bool {
	return true
}

// shouldPrompt determines whether to ask for an offset interactively.
func shouldPrompt(opts *Options) bool {
	if opts.Prompt != nil {
		return *opts.Prompt
	}
	// Debug logs would draw over the prompt
	if log.IsDebug() {
		return false
	}
	return tui.ShouldPrompt()
}

// offsetFlag implements pflag.Value for an optional offset. The target
// stays nil until the flag is set.
type offsetFlag struct {
	target **biduration.BiDuration
}

func newOffsetFlag(target **biduration.BiDuration) *offsetFlag {
	return &offsetFlag{target: target}
}

func (f *offsetFlag) String() string {
	if *f.target == nil {
		return ""
	}
	return (*f.target).FriendlyString()
}

func (f *offsetFlag) Set(s string) error {
	b, err := biduration.Parse(s)
	if err != nil {
		return err
	}
	*f.target = &b
	return nil
}

func (f *offsetFlag) Type() string {
	return "offset"
}
