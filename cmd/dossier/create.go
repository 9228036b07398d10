// Create command for the dossier CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

var (
	createName     string
	createEmail    string
	createPhone    string
	createLocation string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new investigation case",
	Long: `Create a new case from the known target identifiers. At least one of
--name, --email, or --phone is required; --location is supplementary.

Example:
  dossier create --name "Jane Doe" --email jane.doe@gmail.com --location Delhi`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitSysError)
		}

		c, err := st.CreateCase(types.Identifiers{
			Name:     createName,
			Email:    createEmail,
			Phone:    createPhone,
			Location: createLocation,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "create:", err)
			os.Exit(exitCodeFor(err))
		}

		if flagJSON {
			return printJSON(c)
		}
		fmt.Printf("Created case: %s\n", c.CaseID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "target full name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "target email address")
	createCmd.Flags().StringVar(&createPhone, "phone", "", "target phone number")
	createCmd.Flags().StringVar(&createLocation, "location", "", "target location")
}
