package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

func sampleCase(t *testing.T) *types.Case {
	t.Helper()
	c, err := types.NewCase(types.Identifiers{
		Name:     "Jane Doe",
		Email:    "jane.doe@gmail.com",
		Location: "Delhi",
	})
	require.NoError(t, err)
	c.CaseID = "0199c0de-0000-7000-8000-000000000001"

	require.NoError(t, c.AppendInvestigation(types.Investigation{
		InvestigationID: "inv-1",
		Kind:            types.KindEmail,
		Input:           "Jane.Doe@gmail.com",
		Normalized:      "jane.doe@gmail.com",
		Links: []types.Link{
			{Label: "Google Search", URL: "https://www.google.com/search?q=%22jane.doe%40gmail.com%22"},
		},
		Metadata:  map[string]string{"provider": "Google", "domain": "gmail.com"},
		CreatedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, c.AppendNote("first note"))
	require.NoError(t, c.AppendNote("second note"))
	return c
}

func TestText(t *testing.T) {
	out := Text(sampleCase(t))

	assert.Contains(t, out, "CASE REPORT: 0199c0de-0000-7000-8000-000000000001")
	assert.Contains(t, out, "TARGET INFORMATION:")
	assert.Contains(t, out, "Name: Jane Doe")
	assert.Contains(t, out, "Location: Delhi")
	assert.NotContains(t, out, "Phone:")

	assert.Contains(t, out, "1. email investigation (2026-08-29 10:00:00)")
	assert.Contains(t, out, "Normalized: jane.doe@gmail.com")
	assert.Contains(t, out, "- provider: Google")
	assert.Contains(t, out, "- Google Search: https://www.google.com/search?q=%22jane.doe%40gmail.com%22")

	assert.Contains(t, out, "CASE NOTES:")
	// Notes keep insertion order.
	assert.Less(t, strings.Index(out, "first note"), strings.Index(out, "second note"))
}

func TestTextEmptySections(t *testing.T) {
	c, err := types.NewCase(types.Identifiers{Phone: "9876543210"})
	require.NoError(t, err)
	c.CaseID = "case-1"

	out := Text(c)
	assert.NotContains(t, out, "INVESTIGATIONS:")
	assert.NotContains(t, out, "CASE NOTES:")
}

func TestJSON(t *testing.T) {
	c := sampleCase(t)

	out, err := JSON(c)
	require.NoError(t, err)

	var decoded types.Case
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, c.CaseID, decoded.CaseID)
	require.Len(t, decoded.Investigations, 1)
	assert.Equal(t, "jane.doe@gmail.com", decoded.Investigations[0].Normalized)
	assert.Len(t, decoded.Notes, 2)
}
