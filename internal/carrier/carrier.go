// Package carrier guesses the mobile carrier and telecom circle for an
// Indian phone number from a static prefix table. Lookups never fail: an
// unknown prefix reports ok=false and callers fall back to the
// first-digit carrier guess.
package carrier

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed prefixes.yaml
var prefixesYAML []byte

// Info is the carrier guess for a number prefix.
type Info struct {
	Carrier string `yaml:"carrier"`
	Circle  string `yaml:"circle"`
}

// Table maps number prefixes to carrier info.
type Table struct {
	prefixes map[string]Info
	maxLen   int
}

// tableYAML mirrors the prefixes.yaml file format.
type tableYAML struct {
	Prefixes map[string]Info `yaml:"prefixes"`
}

// Load parses a prefix table from YAML data.
func Load(data []byte) (*Table, error) {
	var raw tableYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse prefix table: %w", err)
	}
	t := &Table{prefixes: raw.Prefixes}
	for p := range raw.Prefixes {
		if len(p) > t.maxLen {
			t.maxLen = len(p)
		}
	}
	return t, nil
}

// defaultTable is parsed from the embedded sample table at startup.
var defaultTable = func() *Table {
	t, err := Load(prefixesYAML)
	if err != nil {
		panic(fmt.Sprintf("carrier: embedded prefixes.yaml is malformed: %v", err))
	}
	return t
}()

// Default returns the table built from the embedded sample data.
func Default() *Table {
	return defaultTable
}

// Lookup returns the carrier info for the longest prefix of number present
// in the table. ok is false when no prefix matches.
func (t *Table) Lookup(number string) (Info, bool) {
	longest := t.maxLen
	if longest > len(number) {
		longest = len(number)
	}
	for n := longest; n > 0; n-- {
		if info, ok := t.prefixes[number[:n]]; ok {
			return info, true
		}
	}
	return Info{}, false
}

// likelyCarriers maps the leading digit of a mobile number to the carriers
// historically allocated that range.
var likelyCarriers = map[byte][]string{
	'6': {"Jio"},
	'7': {"Idea", "Aircel", "Jio"},
	'8': {"Airtel", "Vodafone", "Reliance"},
	'9': {"Airtel", "Vodafone", "Idea", "BSNL", "MTNL"},
}

// PossibleCarriers returns the carriers plausible for the number's leading
// digit. Used when Lookup finds no prefix match.
func PossibleCarriers(number string) []string {
	if number == "" {
		return nil
	}
	return likelyCarriers[number[0]]
}
