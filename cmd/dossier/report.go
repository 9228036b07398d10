// Report command renders a case summary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/internal/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <case-id>",
	Short: "Generate a case report",
	Long: `Report renders the case summary: known identifiers, every recorded
investigation with its links and metadata, and all notes, in insertion
order. Use --json for a machine-readable report and --out to write it to
a file instead of stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "report:", err)
			os.Exit(exitSysError)
		}

		c, err := st.LoadCase(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, "report:", err)
			os.Exit(exitCodeFor(err))
		}

		var out []byte
		if flagJSON {
			out, err = report.JSON(c)
			if err != nil {
				fmt.Fprintln(os.Stderr, "report:", err)
				os.Exit(exitSysError)
			}
			out = append(out, '\n')
		} else {
			out = []byte(report.Text(c))
		}

		if reportOut != "" {
			if err := os.WriteFile(reportOut, out, 0o644); err != nil {
				fmt.Fprintln(os.Stderr, "report:", err)
				os.Exit(exitSysError)
			}
			fmt.Printf("Report written to %s\n", reportOut)
			return nil
		}

		fmt.Print(string(out))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "write the report to this file instead of stdout")
}
