// Package report renders a case into a human-readable summary or a JSON
// document. Rendering is pure; writing the result anywhere is the
// caller's concern.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

const rule = "=================================================="

// timeLayout matches the timestamp format the original case files used.
const timeLayout = "2006-01-02 15:04:05"

// Text renders the full case summary: known identifiers, every
// investigation with its normalized value, metadata, and links, and all
// notes, in insertion order.
func Text(c *types.Case) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\nCASE REPORT: %s\n%s\n", rule, c.CaseID, rule)
	fmt.Fprintf(&b, "Created: %s\n", c.CreatedAt.Format(timeLayout))

	b.WriteString("\nTARGET INFORMATION:\n")
	writeIdentifier(&b, "Name", c.Identifiers.Name)
	writeIdentifier(&b, "Email", c.Identifiers.Email)
	writeIdentifier(&b, "Phone", c.Identifiers.Phone)
	writeIdentifier(&b, "Location", c.Identifiers.Location)

	if len(c.Investigations) > 0 {
		b.WriteString("\nINVESTIGATIONS:\n")
		for i, inv := range c.Investigations {
			fmt.Fprintf(&b, "\n%d. %s investigation (%s)\n", i+1, inv.Kind, inv.CreatedAt.Format(timeLayout))
			fmt.Fprintf(&b, "   Input: %s\n", inv.Input)
			fmt.Fprintf(&b, "   Normalized: %s\n", inv.Normalized)
			for _, key := range sortedKeys(inv.Metadata) {
				fmt.Fprintf(&b, "   - %s: %s\n", key, inv.Metadata[key])
			}
			b.WriteString("   Links:\n")
			for _, link := range inv.Links {
				fmt.Fprintf(&b, "   - %s: %s\n", link.Label, link.URL)
			}
		}
	}

	if len(c.Notes) > 0 {
		b.WriteString("\nCASE NOTES:\n")
		for i, note := range c.Notes {
			fmt.Fprintf(&b, "%d. %s: %s\n", i+1, note.CreatedAt.Format(timeLayout), note.Content)
		}
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// JSON renders the case as an indented JSON document.
func JSON(c *types.Case) ([]byte, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal case %s: %w", c.CaseID, err)
	}
	return out, nil
}

// writeIdentifier prints one target field, skipping empty values.
func writeIdentifier(b *strings.Builder, label, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", label, value)
	}
}

// sortedKeys returns the metadata keys in a stable order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
