// File: cmd/dirstack/popd.go
// Brief: CLI command wiring and implementation for 'popd'.

package main

import (
	"github.com/spf13/cobra"
)

func newPopdCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popd",
		Short: "Return to the most recently saved directory",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.dispatcher.Popd(); err != nil {
				return err
			}
			return a.printStack(cmd.OutOrStdout())
		},
	}
	decorateCommandHelp(cmd, "Popd Flags")
	return cmd
}
