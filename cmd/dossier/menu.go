// Menu command runs the interactive numbered loop the tool is usually
// driven through: create a case, run investigations, add notes, generate
// a report. Errors are printed and the loop continues.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/dossier/internal/investigate"
	"github.com/mesh-intelligence/dossier/internal/report"
	"github.com/mesh-intelligence/dossier/internal/store"
	"github.com/mesh-intelligence/dossier/pkg/types"
)

const menuBanner = `
==================================================
DOSSIER - MAIN MENU
==================================================
1. Create New Case
2. Email Investigation
3. Phone Investigation
4. Name Investigation
5. Run All Investigations
6. Add Note to Case
7. Generate Case Report
8. Exit`

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive investigation menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			fmt.Fprintln(os.Stderr, "menu:", err)
			os.Exit(exitSysError)
		}
		return runMenu(st, os.Stdin)
	},
}

// menuSession holds the state of one interactive run: the store, the input
// scanner, and the case being worked on.
type menuSession struct {
	st      *store.Store
	scanner *bufio.Scanner
	current *types.Case
}

// runMenu drives the numbered menu loop until the user exits or input
// runs out. Every error is reported and the loop continues.
func runMenu(st *store.Store, in io.Reader) error {
	s := &menuSession{
		st:      st,
		scanner: bufio.NewScanner(in),
	}

	for {
		fmt.Println(menuBanner)
		choice, ok := s.prompt("\nEnter your choice (1-8): ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.createCase()
		case "2":
			s.investigateKind(types.KindEmail)
		case "3":
			s.investigateKind(types.KindPhone)
		case "4":
			s.investigateKind(types.KindName)
		case "5":
			s.investigateAll()
		case "6":
			s.addNote()
		case "7":
			s.generateReport()
		case "8":
			fmt.Println("\n[+] Exiting. Goodbye!")
			return nil
		default:
			fmt.Println("[!] Invalid choice. Please try again.")
		}
	}
}

// prompt prints a label and reads one trimmed line. ok is false on EOF.
func (s *menuSession) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func (s *menuSession) createCase() {
	fmt.Println("\nEnter known information about the target (leave blank if unknown):")
	name, _ := s.prompt("Full Name: ")
	email, _ := s.prompt("Email Address: ")
	phone, _ := s.prompt("Phone Number: ")
	location, _ := s.prompt("Location: ")

	c, err := s.st.CreateCase(types.Identifiers{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Location: location,
	})
	if err != nil {
		fmt.Println("[!] Error:", err)
		return
	}

	s.current = c
	fmt.Printf("\n[+] Case created with ID: %s\n", c.CaseID)
}

// requireCase makes sure a case is selected before any mutation.
func (s *menuSession) requireCase() bool {
	if s.current == nil {
		fmt.Println("[!] Create a case first (option 1).")
		return false
	}
	return true
}

// investigateKind runs one investigation, prompting for the identifier
// when the case does not already know it. A newly supplied identifier is
// recorded on the case.
func (s *menuSession) investigateKind(kind string) {
	if !s.requireCase() {
		return
	}

	raw := s.current.IdentifierFor(kind)
	if raw == "" {
		var ok bool
		raw, ok = s.prompt(fmt.Sprintf("\nEnter %s to investigate: ", kind))
		if !ok || raw == "" {
			return
		}
		s.recordIdentifier(kind, raw)
	}

	s.runInvestigation(kind, raw)
}

func (s *menuSession) investigateAll() {
	if !s.requireCase() {
		return
	}

	ran := false
	for _, kind := range types.Kinds {
		if raw := s.current.IdentifierFor(kind); raw != "" {
			s.runInvestigation(kind, raw)
			ran = true
		}
	}
	if !ran {
		fmt.Println("[!] The case has no identifiers to investigate.")
	}
}

// recordIdentifier stores a newly supplied identifier on the case so
// later runs can reuse it.
func (s *menuSession) recordIdentifier(kind, raw string) {
	switch kind {
	case types.KindEmail:
		s.current.Identifiers.Email = raw
	case types.KindPhone:
		s.current.Identifiers.Phone = raw
	case types.KindName:
		s.current.Identifiers.Name = raw
	}
	if err := s.st.SaveCase(s.current); err != nil {
		fmt.Println("[!] Error:", err)
	}
}

func (s *menuSession) runInvestigation(kind, raw string) {
	fmt.Printf("\n[+] Running %s investigation for: %s\n", kind, raw)

	inv, err := investigate.Run(kind, raw, s.current.Identifiers.Location)
	if err != nil {
		fmt.Println("[!] Error:", err)
		return
	}
	if err := s.st.AppendInvestigation(s.current, inv); err != nil {
		fmt.Println("[!] Error:", err)
		return
	}

	fmt.Printf("[+] Recorded investigation %s\n", inv.InvestigationID)
	for _, link := range inv.Links {
		fmt.Printf("- %s: %s\n", link.Label, link.URL)
	}

	if answer, ok := s.prompt("\n[?] Open search URLs in your browser? (y/n): "); ok && strings.EqualFold(answer, "y") {
		openLinks(inv.Links)
	}
}

func (s *menuSession) addNote() {
	if !s.requireCase() {
		return
	}

	note, ok := s.prompt("\nEnter your note: ")
	if !ok || note == "" {
		return
	}
	if err := s.st.AppendNote(s.current, note); err != nil {
		fmt.Println("[!] Error:", err)
		return
	}
	fmt.Println("[+] Note added to the case")
}

func (s *menuSession) generateReport() {
	if !s.requireCase() {
		return
	}
	fmt.Print(report.Text(s.current))
}
