// Package cobraflags runs the options of a cmdflags registry as the flags
// of a cobra command.
//
// Cobra's own flag parsing is disabled for such commands: the arguments are
// handed to cmdflags.Registry.Parse, and whatever is left after option
// processing is passed on to the command's RunFunc.
package cobraflags

import (
	"errors"
	"fmt"

	"github.com/janert/cmdflags"
	"github.com/spf13/cobra"
)

// RunFunc is called with the arguments left over after option processing.
type RunFunc func(cmd *cobra.Command, args []string) error

// NewCommand returns a cobra command whose options are those of reg. A
// handler returning cmdflags.ErrStop ends the command successfully without
// calling run; any other handler error is returned by the command. A nil
// run accepts and ignores leftover arguments.
func NewCommand(use, short string, reg *cmdflags.Registry, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		SilenceUsage:       true,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		argv := append([]string{cmd.CommandPath()}, args...)

		index, err := reg.Parse(argv)
		switch {
		case errors.Is(err, cmdflags.ErrStop):
			return nil
		case err != nil:
			return err
		}

		if run == nil {
			return nil
		}
		return run(cmd, argv[index:])
	}

	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		if cmd.Short != "" {
			fmt.Fprintf(out, "%s\n\n", cmd.Short)
		}
		fmt.Fprintf(out, "Usage:\n  %s [module] [options] [arguments]\n\nOptions:\n",
			cmd.CommandPath())
		if _, err := reg.WriteHelp(out, true); err != nil {
			cmd.PrintErrln(err)
		}
	})

	return cmd
}
