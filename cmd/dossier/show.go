// Show command retrieves a case by ID.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <case-id>",
	Short: "Show a case record as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}

		c, err := st.LoadCase(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitCodeFor(err))
		}

		return printJSON(c)
	},
}
