package cmd

import (
	"github.com/spf13/cobra"

	"compilerpaths/common"
	"compilerpaths/report"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the compilerpaths version",
		Run: func(*cobra.Command, []string) {
			report.DisplayInfoMessage("compilerpaths Version", common.ToolVersion)
		},
	}
}
