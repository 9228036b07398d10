// List command enumerates cases in the results directory.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		cases, err := st.ListCases()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			return printJSON(cases)
		}

		if len(cases) == 0 {
			fmt.Println("No cases found.")
			return nil
		}
		for _, c := range cases {
			fmt.Printf("%s  %s  %s\n", c.CaseID, c.CreatedAt.Format("2006-01-02 15:04:05"), summarize(c.Identifiers))
		}
		return nil
	},
}

// summarize joins the non-empty identifiers for one-line case listings.
func summarize(ids types.Identifiers) string {
	var parts []string
	for _, v := range []string{ids.Name, ids.Email, ids.Phone, ids.Location} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}
