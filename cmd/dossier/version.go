// Version command for the dossier CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/pkg/dossier"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dossier version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dossier", dossier.Version)
	},
}
