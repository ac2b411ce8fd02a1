package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [inputs...]",
		Short: "Generate a default amalgam.yaml configuration file",
		Long: `Create an amalgam.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.

Inputs given here are stored under paths.inputs, so later merge, check and
watch runs can omit them. The current --output, --exclude, --manifest and
extension flags are stored as well.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := newProjectConfig(args).SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			slog.Info("wrote config file", "path", targetPath, "inputs", args)
			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
}

// newProjectConfig snapshots the effective settings into a standalone viper
// instance, with inputs replacing paths.inputs when given.
func newProjectConfig(inputs []string) *viper.Viper {
	cfg := viper.New()

	for _, key := range []string{
		configVersionKey,
		inputsConfigKey,
		excludeConfigKey,
		outputConfigKey,
		headerExtConfigKey,
		sourceExtConfigKey,
		manifestConfigKey,
		debounceConfigKey,
		logFilenameKey,
		logLevelKey,
		logVerboseKey,
		logMaxSizeKey,
		logMaxBackupsKey,
		logMaxAgeKey,
		logCompressKey,
	} {
		cfg.Set(key, viper.Get(key))
	}

	if len(inputs) > 0 {
		cfg.Set(inputsConfigKey, inputs)
	}

	return cfg
}

func init() {
	rootCmd.AddCommand(initCmd)
}
