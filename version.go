package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "输出 cvgen 版本",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cvgen %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
