package cmd

import (
	"github.com/spf13/cobra"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [inputs...]",
		Short: "Merge inputs into one header and one source",
		Long:  mergeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(cmd.Context(), mergeArgsFromConfig(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
