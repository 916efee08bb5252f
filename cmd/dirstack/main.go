// main.go bootstraps dirstack: it builds the root Cobra command, runs it with a signal-aware context, and maps errors to exit codes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/dirstack/internal/config"
	"github.com/example/dirstack/internal/logging"
	"github.com/example/dirstack/internal/navigator"
	"github.com/example/dirstack/internal/ui"
	"github.com/example/dirstack/internal/version"
	"github.com/example/dirstack/internal/workdir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// execute runs one invocation and returns its exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand(workdir.OS{})
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		handleError(stderr, err)
		return 1
	}
	return 0
}

// app carries the state shared by the subcommands of one invocation.
type app struct {
	settings   *config.Settings
	workdir    workdir.Workdir
	dispatcher *navigator.Dispatcher
	colorize   bool
}

func newRootCommand(wd workdir.Workdir) *cobra.Command {
	a := &app{settings: config.NewSettings(), workdir: wd}
	cmd := &cobra.Command{
		Use:   "dirstack <command>",
		Short: "Save and restore working directories with pushd/popd",
		Long: "dirstack keeps a stack of visited directories for the lifetime of one invocation.\n" +
			"The stack starts empty on every run and is never written to disk.",
		Version:       version.Get().String(),
		Args:          rootArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return &navigator.UsageError{Reason: "missing command", Usage: rootUsage(cmd)}
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetFlagErrorFunc(usageErrorFor)
	a.settings.BindFlags(cmd.PersistentFlags())
	cmd.Example = `  # Remember the current directory and move to /tmp
  dirstack pushd /tmp

  # Return to the most recently saved directory
  dirstack popd`
	cmd.AddCommand(newPushdCommand(a), newPopdCommand(a))
	decorateCommandHelp(cmd, "Flags")
	return cmd
}

// setup resolves the global settings and builds the dispatcher.
func (a *app) setup(cmd *cobra.Command) error {
	v, err := config.NewViper(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	if err := a.settings.Resolve(v); err != nil {
		return usageErrorFor(cmd, err)
	}
	log, err := logging.New(cmd.ErrOrStderr(), a.settings.LogLevel)
	if err != nil {
		return err
	}
	colorize, err := ui.ColorEnabled(a.settings.ColorMode, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.colorize = colorize
	a.dispatcher = navigator.New(a.workdir,
		navigator.WithLogger(log.WithName("navigator")),
		navigator.WithKeepOnFailure(a.settings.KeepOnFailure),
	)
	log.V(1).Info("resolved settings", "logLevel", a.settings.LogLevel, "color", a.settings.ColorMode, "keepOnFailure", a.settings.KeepOnFailure)
	return nil
}

func (a *app) printStack(w io.Writer) error {
	return ui.PrintStack(w, a.dispatcher.Stack().All(), a.colorize)
}

func rootArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return &navigator.UsageError{Reason: fmt.Sprintf("unknown command %q", args[0]), Usage: rootUsage(cmd)}
}

func rootUsage(cmd *cobra.Command) string {
	name := cmd.Root().Name()
	return fmt.Sprintf("%s pushd <directory> | %s popd", name, name)
}

func commandName(cmd *cobra.Command) string {
	if cmd == nil || !cmd.HasParent() {
		return ""
	}
	return cmd.Name()
}

func handleError(w io.Writer, err error) {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return
	}
	message := err.Error()
	var usageErr *navigator.UsageError
	var envErr *navigator.EnvironmentError
	switch {
	case errors.As(err, &usageErr):
		if usageErr.Usage != "" {
			message = fmt.Sprintf("%s\nUsage: %s", err, usageErr.Usage)
		}
	case errors.Is(err, navigator.ErrEmptyStack):
		message = fmt.Sprintf("%s\nHint: the stack starts empty on every run; nothing is kept between invocations.", err)
	case errors.As(err, &envErr):
		message = fmt.Sprintf("%s\nHint: the current directory may have been removed; cd to an existing directory and retry.", err)
	}
	fmt.Fprintf(w, "Error: %s\n", message)
}
