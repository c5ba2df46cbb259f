package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the candidate pool and the trained count tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args, func() error {
			m, err := loadModel()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
