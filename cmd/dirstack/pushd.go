// File: cmd/dirstack/pushd.go
// Brief: CLI command wiring and implementation for 'pushd'.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPushdCommand(a *app) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "pushd <directory>",
		Short: "Save the current directory and change to <directory>",
		Long: "pushd records the current working directory on the stack and changes to <directory>.\n" +
			"If the change fails the saved entry is dropped again unless --keep-on-failure is set.\n" +
			"<directory> is used exactly as given; arguments that are not dirstack flags (such as -x)\n" +
			"are taken as the directory, and everything after -- is never read as a flag.",
		// Directory names may start with "-"; flags are split out in PersistentPreRunE.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		Example: `  # Move to /tmp, remembering where we came from
  dirstack pushd /tmp

  # Move into a directory whose name looks like a flag
  dirstack pushd -- --help`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			positional, err := parsePushdArgs(cmd, args)
			if err != nil {
				return err
			}
			if err := exactArgs(1)(cmd, positional); err != nil {
				return err
			}
			target = positional[0]
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.dispatcher.Pushd(target); err != nil {
				return err
			}
			return a.printStack(cmd.OutOrStdout())
		},
	}
	decorateCommandHelp(cmd, "Pushd Flags")
	return cmd
}

// parsePushdArgs applies the recognised flags in args and returns the rest.
// It reports pflag.ErrHelp when --help was given.
func parsePushdArgs(cmd *cobra.Command, args []string) ([]string, error) {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.AddFlagSet(cmd.InheritedFlags())
	fs.AddFlagSet(cmd.LocalFlags())
	flagArgs, positional := splitFlagArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, usageErrorFor(cmd, err)
	}
	if help, err := fs.GetBool("help"); err == nil && help {
		return nil, pflag.ErrHelp
	}
	return positional, nil
}
