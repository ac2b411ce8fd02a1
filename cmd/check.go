package cmd

import (
	"github.com/spf13/cobra"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [inputs...]",
		Short: "Verify the merged artifacts are up to date",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), mergeArgsFromConfig(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
