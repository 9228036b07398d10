// Note commands for the dossier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes on cases",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <case-id> <text>",
	Short: "Add a note to a case",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		caseID := args[0]
		text := args[1]

		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "note add:", err)
			os.Exit(exitSysError)
		}

		c, err := st.LoadCase(caseID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "note add:", err)
			os.Exit(exitCodeFor(err))
		}

		if err := st.AppendNote(c, text); err != nil {
			fmt.Fprintln(os.Stderr, "note add:", err)
			os.Exit(exitCodeFor(err))
		}

		fmt.Printf("Added note to %s\n", caseID)
		return nil
	},
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
}
