package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/siyuan-infoblox/import-group-ordering/pkg/config"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/errors"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/linter"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/ordering"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/report"
	"github.com/siyuan-infoblox/import-group-ordering/pkg/version"
)

const (
	UseDescription   = "igo [flags] PATH..."
	ShortDescription = "Import group ordering - check the order of JavaScript and TypeScript imports"
	LongDescription  = `igo checks that the imports of JavaScript and TypeScript files are grouped
and ordered:

1. Library imports (no leading dot), e.g. 'react'
2. Non-local imports escaping the current directory, most distant first, e.g. '../../config'
3. Local imports inside the current directory, e.g. './button'

Groups must be separated by an empty line. Imports must not start with a
superfluous './' before '..' and must not end with '/index'.

PATH can be a source file or a directory. Directories are searched recursively,
skipping node_modules and hidden directories. Settings are read from the nearest
.importorder.toml or tslint.json, then from IGO_* environment variables, then
from flags.`
)

var (
	configPath  string
	format      string
	colorMode   string
	showSource  bool
	jobs        int
	envFile     string
	showVersion bool
	buildVer    string
)

// checks holds the value of every check flag by option key
var checks = map[string]*bool{}

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (.toml or tslint.json) used for every file instead of the nearest one")
	flags.StringVar(&format, "format", string(report.FormatText), "Output format: text or json")
	flags.StringVar(&colorMode, "color", "auto", "Colorize output: auto, on or off")
	flags.BoolVar(&showSource, "show-source", false, "Print the offending line under each violation")
	flags.IntVar(&jobs, "jobs", 0, "Number of files linted in parallel (default: number of CPUs)")
	flags.StringVar(&envFile, "env-file", "", "Load IGO_* variables from this file")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	for _, key := range ordering.OptionKeys {
		checks[key] = flags.Bool(key, true, fmt.Sprintf("Enable the %s check (env %s)", key, config.EnvName(key)))
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need path arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

// flagOverrides returns the checks explicitly set on the command line
func flagOverrides(cmd *cobra.Command) config.Overrides {
	overrides := config.Overrides{}
	for key, value := range checks {
		if cmd.Flags().Changed(key) {
			overrides[key] = *value
		}
	}
	return overrides
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return !color.NoColor && term.IsTerminal(int(os.Stdout.Fd())), nil
	}
	return false, fmt.Errorf(errors.ErrMsgUnknownColor, mode)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get(buildVer).String())
		return nil
	}

	outFormat, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	colored, err := useColor(colorMode)
	if err != nil {
		return err
	}

	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return err
		}
	}
	envOverrides, err := config.OSEnv()
	if err != nil {
		return err
	}

	l, err := linter.New(linter.LinterConfig{
		ConfigPath: configPath,
		Overrides:  envOverrides.Merge(flagOverrides(cmd)),
		Jobs:       jobs,
		Report: report.Options{
			Format:     outFormat,
			Color:      colored,
			ShowSource: showSource,
		},
		Out: cmd.OutOrStdout(),
		Log: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	return l.ProcessPaths(cmd.Context(), args...)
}

func Execute(moduleVersion string) error {
	buildVer = moduleVersion
	return rootCmd.Execute()
}
