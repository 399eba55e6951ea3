package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cicchiello/pi-nas/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pinas version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pinas v%s\n", version.String())
		fmt.Println("NAS enclosure panel generator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
