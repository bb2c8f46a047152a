package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fabkit-dev/fabkit/cmd/contract"
	"github.com/fabkit-dev/fabkit/cmd/version"
	"github.com/fabkit-dev/fabkit/internal/constants"
	"github.com/fabkit-dev/fabkit/internal/logger"
	"github.com/fabkit-dev/fabkit/internal/runtime"
	"github.com/fabkit-dev/fabkit/internal/settings"
	"github.com/fabkit-dev/fabkit/update"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = newRootCommand()

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootLogger := createLogger()
	rootViper := createViper()
	runtimeContext := runtime.NewContext(rootLogger, rootViper)

	// A RunE makes PersistentPreRunE execute for bare group commands too
	helpRunE := func(cmd *cobra.Command, args []string) error {
		err := cmd.Help()
		if err != nil {
			return fmt.Errorf("fail to show help: %w", err)
		}
		return nil
	}

	rootCmd := &cobra.Command{
		Use:               "fabkit",
		Short:             "Hyperledger Fabric smart contract toolkit",
		Long:              `A command line tool for scaffolding Hyperledger Fabric smart contract projects.`,
		DisableAutoGenTag: true,
		RunE:              helpRunE,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log := runtimeContext.Logger
			v := runtimeContext.Viper

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if verbose := v.GetBool(settings.Flags.Verbose.Name); verbose {
				newLogger := log.Level(zerolog.DebugLevel)
				runtimeContext.Logger = &newLogger
			}

			if isLoadSettings(cmd) {
				if err := runtimeContext.AttachSettings(); err != nil {
					return err
				}
			}

			return nil
		},

		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if isCheckForUpdates(cmd) {
				update.NewChecker(runtimeContext.Logger).Check(cmd.Context(), version.Version)
			}
		},
	}

	cobra.AddTemplateFunc("wrappedFlagUsages", func(fs *pflag.FlagSet) string {
		// 100 = wrap width
		return strings.TrimRight(fs.FlagUsagesWrapped(100), "\n")
	})

	cobra.AddTemplateFunc("hasUngrouped", func(c *cobra.Command) bool {
		for _, cmd := range c.Commands() {
			if cmd.IsAvailableCommand() && !cmd.Hidden && cmd.GroupID == "" {
				return true
			}
		}
		return false
	})

	rootCmd.SetHelpTemplate(`
{{- with (or .Long .Short)}}{{.}}{{end}}

Usage:
{{- if .Runnable}}
  {{.UseLine}}
{{- else if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]
{{- end}}

{{- if .HasAvailableSubCommands}}

Available Commands:
  {{- $groupsUsed := false -}}
  {{- $firstGroup := true -}}

  {{- range $grp := .Groups}}
    {{- $has := false -}}
    {{- range $.Commands}}
      {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID $grp.ID))}}
        {{- $has = true}}
      {{- end}}
    {{- end}}
    
    {{- if $has}}
      {{- $groupsUsed = true -}}
      {{- if $firstGroup}}{{- $firstGroup = false -}}{{else}}

{{- end}}

  {{printf "%s:" $grp.Title}}
      {{- range $.Commands}}
        {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID $grp.ID))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
        {{- end}}
      {{- end}}
    {{- end}}
  {{- end}}

  {{- if $groupsUsed }}
    {{- if hasUngrouped .}}

  Other:
      {{- range .Commands}}
        {{- if (and (not .Hidden) (.IsAvailableCommand) (eq .GroupID ""))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
        {{- end}}
      {{- end}}
    {{- end}}
  {{- else }}
    {{- range .Commands}}
      {{- if (and (not .Hidden) (.IsAvailableCommand))}}
    {{rpad .Name .NamePadding}}  {{.Short}}
      {{- end}}
    {{- end}}
  {{- end }}
{{- end }}

{{- if .HasExample}}

Examples:
{{.Example}}
{{- end }}

{{- $local := (.LocalFlags.FlagUsagesWrapped 100 | trimTrailingWhitespaces) -}}
{{- if $local }}

Flags:
{{$local}}
{{- end }}

{{- $inherited := (.InheritedFlags.FlagUsagesWrapped 100 | trimTrailingWhitespaces) -}}
{{- if $inherited }}

Global Flags:
{{$inherited}}
{{- end }}

{{- if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{- end }}

Tip: New here? Run:
  $ fabkit contract new
    to create your first smart contract project.
`)

	rootCmd.PersistentFlags().StringP(
		settings.Flags.CliEnvFile.Name,
		settings.Flags.CliEnvFile.Short,
		constants.DefaultEnvFileName,
		fmt.Sprintf("Path to %s file with FABKIT_* settings", constants.DefaultEnvFileName),
	)

	rootCmd.PersistentFlags().StringP(
		settings.Flags.Config.Name,
		settings.Flags.Config.Short,
		"",
		fmt.Sprintf("Path to the config file (default ~/%s/%s)", constants.DefaultConfigDirName, constants.DefaultConfigFileName),
	)

	rootCmd.PersistentFlags().BoolP(
		settings.Flags.Verbose.Name,
		settings.Flags.Verbose.Short,
		false,
		"Run command in VERBOSE mode",
	)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	contractCmd := contract.New(runtimeContext)
	versionCmd := version.New(runtimeContext)

	contractCmd.RunE = helpRunE

	rootCmd.AddGroup(&cobra.Group{ID: "contract", Title: "Smart Contracts"})
	contractCmd.GroupID = "contract"

	rootCmd.AddCommand(
		contractCmd,
		versionCmd,
	)

	return rootCmd
}

func isLoadSettings(cmd *cobra.Command) bool {
	// Commands that never read user settings
	var excludedCommands = map[string]struct{}{
		"version":    {},
		"bash":       {},
		"fish":       {},
		"powershell": {},
		"zsh":        {},
		"help":       {},
		"fabkit":     {},
		"contract":   {},
	}

	_, exists := excludedCommands[cmd.Name()]
	return !exists
}

func isCheckForUpdates(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "bash", "fish", "powershell", "zsh", "help":
		return false
	}
	return true
}

func createLogger() *zerolog.Logger {
	return logger.NewConsoleLogger()
}

func createViper() *viper.Viper {
	return viper.New() //nolint:forbidigo
}
