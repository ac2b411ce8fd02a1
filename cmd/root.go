// Package cmd provides the root command and CLI setup for amalgam.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	"amalgam.dev/pkg/amalgam/internal/controller"
	"amalgam.dev/pkg/amalgam/internal/domain"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var manifestStore adapter.ManifestStore
var watcher adapter.Watcher
var amalgamator domain.Amalgamator
var workflow domain.Workflow
var ui controller.UI

// outputFlag is the artifact base path shared by merge, check and watch.
var outputFlag string

// excludeNames is a root-level flag listing bare file names to skip.
var excludeNames []string

var manifestFlag string
var headerExtFlag string
var sourceExtFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	manifestStore = adapter.NewManifestStore()
	watcher = adapter.NewFSNotifyWatcher()
	amalgamator = domain.NewAmalgamator(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		manifestStore,
		watcher,
		ui,
		amalgamator,
	)
}

const inputsHelp = `Inputs are header (.h, .hpp) and source (.cpp, .cc, .cxx) files or
directories. Directories are walked for inputs and also serve as search
roots for quoted includes. Explicit files are merged before walked ones.`

const rootLongDescription = `amalgam merges the headers and sources of a C/C++ project into one header
and one source file, inlining every local #include exactly once.

` + inputsHelp

const mergeLongDescription = `Merge the inputs into <output>.h and <output>.cpp.

` + inputsHelp

const listLongDescription = `List the headers and sources the inputs resolve to, without merging.

` + inputsHelp

const checkLongDescription = `Merge the inputs in memory and compare with the committed artifacts.
Exits non-zero and prints a unified diff when they differ.

` + inputsHelp

const watchLongDescription = `Merge the inputs, then merge again whenever one of them changes.

` + inputsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "amalgam",
		Short:        "C/C++ source amalgamation tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFlag, outputFlagName, "o",
			viper.GetString(outputConfigKey),
			"base path of the merged artifacts, without extension",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludeNames, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "skip files with this name or name glob during directory walks (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&manifestFlag, manifestFlagName, viper.GetString(manifestConfigKey), "write a YAML manifest of the merge to this path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(manifestFlagName), manifestConfigKey)

	cmd.PersistentFlags().StringVar(&headerExtFlag, headerExtFlagName, viper.GetString(headerExtConfigKey), "extension of the merged header")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(headerExtFlagName), headerExtConfigKey)

	cmd.PersistentFlags().StringVar(&sourceExtFlag, sourceExtFlagName, viper.GetString(sourceExtConfigKey), "extension of the merged source")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(sourceExtFlagName), sourceExtConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// inputPaths returns the positional inputs, falling back to paths.inputs.
func inputPaths(args []string) []m.Path {
	if len(args) > 0 {
		return parsePaths(args)
	}

	return parsePaths(viper.GetStringSlice(inputsConfigKey))
}

func mergeArgsFromConfig(args []string) domain.MergeArgs {
	return domain.MergeArgs{
		Inputs:    inputPaths(args),
		Exclude:   viper.GetStringSlice(excludeConfigKey),
		Output:    m.Path(viper.GetString(outputConfigKey)),
		HeaderExt: viper.GetString(headerExtConfigKey),
		SourceExt: viper.GetString(sourceExtConfigKey),
		Manifest:  m.Path(viper.GetString(manifestConfigKey)),
	}
}

func debounceFromConfig() time.Duration {
	return time.Duration(viper.GetInt(debounceConfigKey)) * time.Millisecond
}
