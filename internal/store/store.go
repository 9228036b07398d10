// Package store persists cases as flat JSON files in a results directory.
// One file per case (<case_id>.json), one file per investigation run.
// Every mutation writes through to disk. Single-process, single-user:
// concurrent external writers are undefined behavior.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

// Store is a JSON-backed case store rooted at a results directory.
type Store struct {
	dataDir string
}

// Open ensures the results directory exists and returns a store over it.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// DataDir returns the results directory this store writes to.
func (s *Store) DataDir() string {
	return s.dataDir
}

// casePath returns the file path for a case ID.
func (s *Store) casePath(caseID string) string {
	return filepath.Join(s.dataDir, caseID+".json")
}

// investigationPath returns the file path for an investigation record.
func (s *Store) investigationPath(inv types.Investigation) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s_%s.json", inv.Kind, inv.InvestigationID))
}

// CreateCase builds a new case for the given identifiers, assigns it a
// UUID v7 case ID, and persists it. Returns ErrNoIdentifiers when name,
// email, and phone are all empty.
func (s *Store) CreateCase(ids types.Identifiers) (*types.Case, error) {
	c, err := types.NewCase(ids)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate case ID: %w", err)
	}
	c.CaseID = id.String()

	if err := s.SaveCase(c); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveCase writes the case to <case_id>.json atomically.
func (s *Store) SaveCase(c *types.Case) error {
	if c.CaseID == "" {
		return fmt.Errorf("save case: %w: empty case ID", types.ErrInvalidIdentifier)
	}
	return writeJSON(s.casePath(c.CaseID), c)
}

// LoadCase reads the case with the given ID.
// Returns ErrNotFound when no file matches the ID.
func (s *Store) LoadCase(caseID string) (*types.Case, error) {
	data, err := os.ReadFile(s.casePath(caseID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("read case %s: %w", caseID, err)
	}

	var c types.Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse case %s: %w", caseID, err)
	}
	return &c, nil
}

// ListCases returns every case in the results directory, ordered by
// creation time. Files that are not case records (investigation files,
// malformed JSON) are skipped.
func (s *Store) ListCases() ([]*types.Case, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("read results dir: %w", err)
	}

	var cases []*types.Case
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dataDir, entry.Name()))
		if err != nil {
			continue
		}
		var c types.Case
		if err := json.Unmarshal(data, &c); err != nil || c.CaseID == "" {
			// Not a case record.
			continue
		}
		cases = append(cases, &c)
	}

	sort.Slice(cases, func(i, j int) bool {
		return cases[i].CreatedAt.Before(cases[j].CreatedAt)
	})
	return cases, nil
}

// AppendInvestigation appends the result to the case, writes the
// standalone investigation record, and persists the case write-through.
func (s *Store) AppendInvestigation(c *types.Case, inv types.Investigation) error {
	if err := c.AppendInvestigation(inv); err != nil {
		return err
	}
	if err := writeJSON(s.investigationPath(inv), inv); err != nil {
		return err
	}
	return s.SaveCase(c)
}

// AppendNote appends a note to the case and persists it write-through.
func (s *Store) AppendNote(c *types.Case, content string) error {
	if err := c.AppendNote(content); err != nil {
		return err
	}
	return s.SaveCase(c)
}

// writeJSON atomically writes v as indented JSON using the temp-file,
// fsync, rename pattern.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".json-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
