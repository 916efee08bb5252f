// File: cmd/dirstack/args.go
// Brief: Positional argument validation shared by the subcommands.

package main

import (
	"fmt"
	"strings"

	"github.com/example/dirstack/internal/navigator"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exactArgs is cobra.ExactArgs reporting a navigator.UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == n {
			return nil
		}
		noun := "arguments"
		if n == 1 {
			noun = "argument"
		}
		return &navigator.UsageError{
			Command: cmd.Name(),
			Reason:  fmt.Sprintf("expected %d %s, got %d", n, noun, len(args)),
			Usage:   cmd.UseLine(),
		}
	}
}

func usageErrorFor(cmd *cobra.Command, err error) error {
	return &navigator.UsageError{Command: commandName(cmd), Reason: err.Error(), Usage: cmd.UseLine()}
}

// splitFlagArgs separates the arguments naming a flag of fs (with their
// values) from everything else. Unknown dash-prefixed words stay positional,
// and every argument after "--" is positional.
func splitFlagArgs(fs *pflag.FlagSet, args []string) (flagArgs, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		f := lookupFlagArg(fs, arg)
		if f == nil {
			positional = append(positional, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if !strings.Contains(arg, "=") && f.NoOptDefVal == "" && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, positional
}

func lookupFlagArg(fs *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, _ := strings.Cut(arg[2:], "=")
		return fs.Lookup(name)
	case strings.HasPrefix(arg, "-") && len(arg) == 2:
		return fs.ShorthandLookup(arg[1:])
	default:
		return nil
	}
}
