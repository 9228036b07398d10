// Shared helpers for dossier CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/mesh-intelligence/dossier/internal/store"
	"github.com/mesh-intelligence/dossier/pkg/types"
)

// openStore resolves the results directory and opens a case store over it.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve results dir: %w", err)
	}
	return store.Open(dataDir)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// openLinks opens every generated link in the user's browser. Failures are
// reported per link and do not stop the rest.
func openLinks(links []types.Link) {
	for _, l := range links {
		fmt.Printf("Opening %s...\n", l.Label)
		if err := browser.OpenURL(l.URL); err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", l.Label, err)
		}
	}
}

// isUserError reports whether the error is caused by user input rather
// than the system: malformed identifiers, empty cases, unknown case IDs.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrInvalidIdentifier) ||
		errors.Is(err, types.ErrInvalidKind) ||
		errors.Is(err, types.ErrNoIdentifiers) ||
		errors.Is(err, types.ErrInvalidContent) ||
		errors.Is(err, types.ErrNotFound)
}

// exitCodeFor maps an error to the CLI exit code.
func exitCodeFor(err error) int {
	if isUserError(err) {
		return exitUserError
	}
	return exitSysError
}
