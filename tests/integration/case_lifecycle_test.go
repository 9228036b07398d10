// Integration tests for the full case lifecycle: create a case, run
// investigations across every identifier kind, add notes, reload from
// disk, and render the report.
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dossier/internal/investigate"
	"github.com/mesh-intelligence/dossier/internal/report"
	"github.com/mesh-intelligence/dossier/internal/store"
	"github.com/mesh-intelligence/dossier/pkg/types"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	return st
}

func TestCaseLifecycle_FullInvestigation(t *testing.T) {
	st := newStore(t)

	c, err := st.CreateCase(types.Identifiers{
		Name:     "Jane Doe",
		Email:    "Jane.Doe@Gmail.com",
		Phone:    "+91 70218 43210",
		Location: "Delhi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.CaseID)

	// One investigation per identifier kind.
	for _, kind := range types.Kinds {
		inv, err := investigate.Run(kind, c.IdentifierFor(kind), c.Identifiers.Location)
		require.NoError(t, err, kind)
		require.NoError(t, st.AppendInvestigation(c, inv))
	}
	require.NoError(t, st.AppendNote(c, "initial sweep complete"))

	// Reload from disk and verify everything survived, in order.
	got, err := st.LoadCase(c.CaseID)
	require.NoError(t, err)
	require.Len(t, got.Investigations, 3)
	assert.Equal(t, types.KindEmail, got.Investigations[0].Kind)
	assert.Equal(t, "jane.doe@gmail.com", got.Investigations[0].Normalized)
	assert.Equal(t, types.KindPhone, got.Investigations[1].Kind)
	assert.Equal(t, "7021843210", got.Investigations[1].Normalized)
	assert.Equal(t, "Jio", got.Investigations[1].Metadata["carrier"])
	assert.Equal(t, types.KindName, got.Investigations[2].Kind)
	require.Len(t, got.Notes, 1)

	assert.Equal(t, c, got, "in-memory case and persisted case must match")
}

func TestCaseLifecycle_InvestigationRecordFiles(t *testing.T) {
	st := newStore(t)

	c, err := st.CreateCase(types.Identifiers{Email: "jane.doe@gmail.com"})
	require.NoError(t, err)

	inv, err := investigate.Email(c.Identifiers.Email)
	require.NoError(t, err)
	require.NoError(t, st.AppendInvestigation(c, inv))

	// The standalone record mirrors what the case holds.
	data, err := os.ReadFile(filepath.Join(st.DataDir(), "email_"+inv.InvestigationID+".json"))
	require.NoError(t, err)

	var record types.Investigation
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, inv.InvestigationID, record.InvestigationID)
	assert.Equal(t, inv.Normalized, record.Normalized)
	assert.Equal(t, inv.Links, record.Links)
}

func TestCaseLifecycle_ReportAfterReload(t *testing.T) {
	st := newStore(t)

	c, err := st.CreateCase(types.Identifiers{Phone: "9876543210"})
	require.NoError(t, err)

	inv, err := investigate.Phone(c.Identifiers.Phone)
	require.NoError(t, err)
	require.NoError(t, st.AppendInvestigation(c, inv))
	require.NoError(t, st.AppendNote(c, "unknown carrier, widen the search"))

	got, err := st.LoadCase(c.CaseID)
	require.NoError(t, err)

	text := report.Text(got)
	assert.Contains(t, text, "CASE REPORT: "+c.CaseID)
	assert.Contains(t, text, "Phone: 9876543210")
	assert.Contains(t, text, "carrier: Unknown")
	assert.Contains(t, text, "unknown carrier, widen the search")

	jsonOut, err := report.JSON(got)
	require.NoError(t, err)
	var decoded types.Case
	require.NoError(t, json.Unmarshal(jsonOut, &decoded))
	assert.Equal(t, c.CaseID, decoded.CaseID)
}

func TestCaseLifecycle_SeparateCasesDoNotInterfere(t *testing.T) {
	st := newStore(t)

	first, err := st.CreateCase(types.Identifiers{Name: "Jane Doe"})
	require.NoError(t, err)
	second, err := st.CreateCase(types.Identifiers{Name: "John Roe"})
	require.NoError(t, err)

	require.NoError(t, st.AppendNote(first, "only on the first case"))

	gotSecond, err := st.LoadCase(second.CaseID)
	require.NoError(t, err)
	assert.Empty(t, gotSecond.Notes)

	cases, err := st.ListCases()
	require.NoError(t, err)
	assert.Len(t, cases, 2)
}
