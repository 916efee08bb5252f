// File: cmd/dirstack/help_template.go
// Brief: CLI command wiring and implementation for 'help template'.

// help_template.go customizes Cobra's help/usage templates so dirstack commands share concise flag sections.
package main

import (
	"fmt"
	"strings"

	"github.com/example/dirstack/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	localFlagsHeadingKey = "localFlagsHeading"
	localUsageKey        = "localFlagUsages"
	inheritedUsageKey    = "inheritedFlagUsages"

	defaultHelpWidth = 100
)

const commandHelpTemplate = `{{with or .Long .Short}}{{. | trimTrailingWhitespaces}}{{end}}

Usage:
  {{.UseLine}}

{{if .HasAvailableSubCommands}}Commands:
{{range .Commands}}{{if .IsAvailableCommand}}  {{rpad .Name .NamePadding}} {{.Short}}
{{end}}{{end}}
{{end}}
{{- if .HasExample}}Examples:
{{.Example}}

{{end}}
{{- if .HasAvailableLocalFlags}}{{index .Annotations "localFlagsHeading"}}:
{{with index .Annotations "localFlagUsages"}}{{.}}{{else}}{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}

{{end}}
{{- if .HasAvailableInheritedFlags}}Global Flags:
{{with index .Annotations "inheritedFlagUsages"}}{{.}}{{else}}{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
{{end}}`

func decorateCommandHelp(cmd *cobra.Command, heading string) {
	if strings.TrimSpace(heading) == "" {
		heading = fmt.Sprintf("%s Flags", titleCase(cmd.Name()))
	}
	cmd.SetHelpTemplate(commandHelpTemplate)
	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.Annotations == nil {
			cmd.Annotations = make(map[string]string)
		}
		cmd.Annotations[localFlagsHeadingKey] = heading
		width := defaultHelpWidth
		if cols, ok := ui.TerminalWidth(cmd.OutOrStdout()); ok && cols > 0 && cols < width {
			width = cols
		}
		if usages := formatFlagUsages(cmd.LocalFlags(), width); usages != "" {
			cmd.Annotations[localUsageKey] = usages
		} else {
			delete(cmd.Annotations, localUsageKey)
		}
		if inherited := formatFlagUsages(cmd.InheritedFlags(), width); inherited != "" {
			cmd.Annotations[inheritedUsageKey] = inherited
		} else {
			delete(cmd.Annotations, inheritedUsageKey)
		}
		defaultHelp(cmd, args)
	})
}

func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func formatFlagUsages(fs *pflag.FlagSet, width int) string {
	if fs == nil || !fs.HasAvailableFlags() {
		return ""
	}
	usages := fs.FlagUsagesWrapped(width)
	usages = strings.ReplaceAll(usages, "\t", "  ")
	return strings.TrimRight(usages, "\n")
}
