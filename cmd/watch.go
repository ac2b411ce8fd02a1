package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"amalgam.dev/pkg/amalgam/internal/domain"
)

var debounceFlag int

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [inputs...]",
		Short: "Re-merge whenever an input changes",
		Long:  watchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				MergeArgs: mergeArgsFromConfig(args),
				Debounce:  debounceFromConfig(),
			})
		},
	}

	configureWatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func configureWatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&debounceFlag, debounceFlagName, viper.GetInt(debounceConfigKey), "milliseconds to wait for changes to settle before merging")
	bindFlagToConfig(cmd.Flags().Lookup(debounceFlagName), debounceConfigKey)
}
