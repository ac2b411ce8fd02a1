package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"amalgam.dev/pkg/amalgam/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [inputs...]",
		Short: "List classified headers and sources",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Inputs:  inputPaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
