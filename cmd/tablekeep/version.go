// Version command for the tablekeep CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tablekeep/pkg/tablekeep"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tablekeep version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tablekeep", tablekeep.Version)
	},
}
