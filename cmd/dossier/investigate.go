// Investigate commands run the normalize/link-generate pipeline for one
// identifier and record the result on a case.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/internal/investigate"
	"github.com/mesh-intelligence/dossier/internal/store"
	"github.com/mesh-intelligence/dossier/pkg/types"
)

var (
	investigateCaseID string
	investigateOpen   bool
)

var investigateCmd = &cobra.Command{
	Use:   "investigate",
	Short: "Run an investigation against a case",
	Long: `Investigate normalizes an identifier, generates its search links, and
appends the result to the case. The identifier comes from the positional
argument when given, otherwise from the case's known identifiers.

Example:
  dossier investigate email --case <case-id>
  dossier investigate phone --case <case-id> "+91 98765 43210"
  dossier investigate all --case <case-id>`,
}

var investigateEmailCmd = &cobra.Command{
	Use:   "email [address]",
	Short: "Run an email investigation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInvestigate(types.KindEmail),
}

var investigatePhoneCmd = &cobra.Command{
	Use:   "phone [number]",
	Short: "Run a phone investigation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInvestigate(types.KindPhone),
}

var investigateNameCmd = &cobra.Command{
	Use:   "name [full name]",
	Short: "Run a name investigation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInvestigate(types.KindName),
}

var investigateAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every investigation the case has an identifier for",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, c := loadInvestigationTarget()

		ran := 0
		for _, kind := range types.Kinds {
			raw := c.IdentifierFor(kind)
			if raw == "" {
				continue
			}
			if err := runOne(st, c, kind, raw); err != nil {
				fmt.Fprintf(os.Stderr, "investigate %s: %v\n", kind, err)
				os.Exit(exitCodeFor(err))
			}
			ran++
		}

		if ran == 0 {
			fmt.Fprintln(os.Stderr, "investigate all: case has no identifiers to investigate")
			os.Exit(exitUserError)
		}
		return nil
	},
}

// runInvestigate builds the RunE handler for a single identifier kind.
func runInvestigate(kind string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st, c := loadInvestigationTarget()

		raw := c.IdentifierFor(kind)
		if len(args) == 1 {
			raw = args[0]
		}
		if raw == "" {
			fmt.Fprintf(os.Stderr, "investigate %s: no %s known for case %s (pass one as an argument)\n", kind, kind, c.CaseID)
			os.Exit(exitUserError)
		}

		if err := runOne(st, c, kind, raw); err != nil {
			fmt.Fprintf(os.Stderr, "investigate %s: %v\n", kind, err)
			os.Exit(exitCodeFor(err))
		}
		return nil
	}
}

// loadInvestigationTarget opens the store and loads the case named by the
// required --case flag. Exits on failure.
func loadInvestigationTarget() (*store.Store, *types.Case) {
	st, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "investigate:", err)
		os.Exit(exitSysError)
	}

	c, err := st.LoadCase(investigateCaseID)
	if err != nil {
		fmt.Fprintln(os.Stderr, "investigate:", err)
		os.Exit(exitCodeFor(err))
	}
	return st, c
}

// runOne runs the pipeline for one identifier and records the result.
func runOne(st *store.Store, c *types.Case, kind, raw string) error {
	inv, err := investigate.Run(kind, raw, c.Identifiers.Location)
	if err != nil {
		return err
	}
	if err := st.AppendInvestigation(c, inv); err != nil {
		return err
	}

	if flagJSON {
		if err := printJSON(inv); err != nil {
			return err
		}
	} else {
		fmt.Printf("Recorded %s investigation %s (%d links)\n", inv.Kind, inv.InvestigationID, len(inv.Links))
		keys := make([]string, 0, len(inv.Metadata))
		for key := range inv.Metadata {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fmt.Printf("  %s: %s\n", key, inv.Metadata[key])
		}
	}

	if investigateOpen {
		openLinks(inv.Links)
	}
	return nil
}

func init() {
	investigateCmd.PersistentFlags().StringVar(&investigateCaseID, "case", "", "case ID to record the investigation on (required)")
	investigateCmd.PersistentFlags().BoolVar(&investigateOpen, "open", false, "open generated links in the browser")
	investigateCmd.MarkPersistentFlagRequired("case")

	investigateCmd.AddCommand(investigateEmailCmd)
	investigateCmd.AddCommand(investigatePhoneCmd)
	investigateCmd.AddCommand(investigateNameCmd)
	investigateCmd.AddCommand(investigateAllCmd)
}
