// Package main provides the dossier CLI: a local-first skip-tracing case
// tool that turns an email address, phone number, or full name into a set
// of search links and a JSON case record.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
