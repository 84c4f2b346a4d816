// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the herb-atlas version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("herb-atlas %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
