package investigate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

func TestEmail(t *testing.T) {
	inv, err := Email("Jane.Doe@Gmail.com")
	require.NoError(t, err)

	assert.NotEmpty(t, inv.InvestigationID)
	assert.Equal(t, types.KindEmail, inv.Kind)
	assert.Equal(t, "Jane.Doe@Gmail.com", inv.Input)
	assert.Equal(t, "jane.doe@gmail.com", inv.Normalized)
	assert.False(t, inv.CreatedAt.IsZero())

	assert.Equal(t, "jane.doe", inv.Metadata["username"])
	assert.Equal(t, "gmail.com", inv.Metadata["domain"])
	assert.Equal(t, "Google", inv.Metadata["provider"])
	assert.Equal(t, "Personal Email Provider", inv.Metadata["domain_type"])
	assert.Equal(t, "firstname.lastname", inv.Metadata["username_pattern"])

	var labels []string
	for _, l := range inv.Links {
		labels = append(labels, l.Label)
	}
	assert.Contains(t, labels, "Google Search")
}

func TestEmailCompanyDomain(t *testing.T) {
	inv, err := Email("jdoe1985@initech.example")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", inv.Metadata["provider"])
	assert.Equal(t, "Possibly Company/Organization Domain", inv.Metadata["domain_type"])
	assert.Equal(t, "name+number (possibly name+birthyear)", inv.Metadata["username_pattern"])
}

func TestEmailInvalid(t *testing.T) {
	_, err := Email("not-an-email")
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)
}

func TestPhoneKnownPrefix(t *testing.T) {
	inv, err := Phone("+91 70218 43210")
	require.NoError(t, err)

	assert.Equal(t, types.KindPhone, inv.Kind)
	assert.Equal(t, "7021843210", inv.Normalized)
	assert.Equal(t, "Jio", inv.Metadata["carrier"])
	assert.Equal(t, "Delhi", inv.Metadata["circle"])
	assert.Equal(t, "+917021843210", inv.Metadata["full_number"])
	assert.NotContains(t, inv.Metadata, "possible_carriers")
}

func TestPhoneUnknownPrefix(t *testing.T) {
	inv, err := Phone("9876543210")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", inv.Metadata["carrier"])
	assert.Equal(t, "Unknown", inv.Metadata["circle"])
	assert.Contains(t, inv.Metadata["possible_carriers"], "Airtel")
}

func TestPhoneInvalid(t *testing.T) {
	_, err := Phone("12345")
	assert.ErrorIs(t, err, types.ErrInvalidIdentifier)
}

func TestName(t *testing.T) {
	inv, err := Name("Jane Marie Doe", "Delhi")
	require.NoError(t, err)

	assert.Equal(t, types.KindName, inv.Kind)
	assert.Equal(t, "Jane Marie Doe", inv.Normalized)
	assert.Equal(t, "Jane", inv.Metadata["first_name"])
	assert.Equal(t, "Marie", inv.Metadata["middle_name"])
	assert.Equal(t, "Doe", inv.Metadata["last_name"])
	assert.Equal(t, "Delhi", inv.Metadata["location"])

	var labels []string
	for _, l := range inv.Links {
		labels = append(labels, l.Label)
	}
	assert.Contains(t, labels, "Google Search (with location)")
}

func TestRun(t *testing.T) {
	for _, kind := range types.Kinds {
		raw := map[string]string{
			types.KindEmail: "jane.doe@gmail.com",
			types.KindPhone: "9876543210",
			types.KindName:  "Jane Doe",
		}[kind]

		inv, err := Run(kind, raw, "")
		require.NoError(t, err, kind)
		assert.Equal(t, kind, inv.Kind)
	}

	_, err := Run("dns", "example.com", "")
	assert.ErrorIs(t, err, types.ErrInvalidKind)
}
