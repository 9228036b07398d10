package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCase(t *testing.T) {
	tests := []struct {
		name    string
		ids     Identifiers
		wantErr error
	}{
		{
			name:    "all identifiers empty rejected",
			ids:     Identifiers{},
			wantErr: ErrNoIdentifiers,
		},
		{
			name:    "location alone is not an identifier",
			ids:     Identifiers{Location: "Delhi"},
			wantErr: ErrNoIdentifiers,
		},
		{
			name: "name alone succeeds",
			ids:  Identifiers{Name: "Jane Doe"},
		},
		{
			name: "email alone succeeds",
			ids:  Identifiers{Email: "jane.doe@gmail.com"},
		},
		{
			name: "phone alone succeeds",
			ids:  Identifiers{Phone: "9876543210"},
		},
		{
			name: "all identifiers succeed",
			ids: Identifiers{
				Name:     "Jane Doe",
				Email:    "jane.doe@gmail.com",
				Phone:    "9876543210",
				Location: "Delhi",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCase(tt.ids)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ids, c.Identifiers)
			assert.False(t, c.CreatedAt.IsZero(), "CreatedAt must be set")
			assert.Empty(t, c.Investigations)
			assert.Empty(t, c.Notes)
		})
	}
}

func TestCaseAppendInvestigation(t *testing.T) {
	c, err := NewCase(Identifiers{Email: "jane.doe@gmail.com"})
	require.NoError(t, err)

	err = c.AppendInvestigation(Investigation{Kind: "dns"})
	assert.ErrorIs(t, err, ErrInvalidKind)
	assert.Empty(t, c.Investigations)

	first := Investigation{Kind: KindEmail, Normalized: "jane.doe@gmail.com"}
	second := Investigation{Kind: KindPhone, Normalized: "9876543210"}
	require.NoError(t, c.AppendInvestigation(first))
	require.NoError(t, c.AppendInvestigation(second))

	// Insertion order is preserved.
	require.Len(t, c.Investigations, 2)
	assert.Equal(t, KindEmail, c.Investigations[0].Kind)
	assert.Equal(t, KindPhone, c.Investigations[1].Kind)
}

func TestCaseAppendNote(t *testing.T) {
	c, err := NewCase(Identifiers{Name: "Jane Doe"})
	require.NoError(t, err)

	assert.ErrorIs(t, c.AppendNote(""), ErrInvalidContent)

	require.NoError(t, c.AppendNote("subject seen in Mumbai"))
	require.NoError(t, c.AppendNote("confirmed employer"))

	require.Len(t, c.Notes, 2)
	assert.Equal(t, "subject seen in Mumbai", c.Notes[0].Content)
	assert.Equal(t, "confirmed employer", c.Notes[1].Content)
	assert.False(t, c.Notes[0].CreatedAt.IsZero())
}

func TestCaseIdentifierFor(t *testing.T) {
	c := &Case{Identifiers: Identifiers{
		Name:  "Jane Doe",
		Email: "jane.doe@gmail.com",
	}}

	assert.Equal(t, "jane.doe@gmail.com", c.IdentifierFor(KindEmail))
	assert.Equal(t, "Jane Doe", c.IdentifierFor(KindName))
	assert.Equal(t, "", c.IdentifierFor(KindPhone))
	assert.Equal(t, "", c.IdentifierFor("dns"))
}

func TestValidKind(t *testing.T) {
	for _, kind := range Kinds {
		assert.True(t, ValidKind(kind), kind)
	}
	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("dns"))
}
