package parser

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/pdf-csv/internal/models"
	"fjacquet/pdf-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	id      string
	aliases []string
	marker  string
}

func (s *stubParser) ID() string        { return s.id }
func (s *stubParser) Aliases() []string { return s.aliases }
func (s *stubParser) CanHandle(text string) bool {
	return s.marker != "" && strings.Contains(text, s.marker)
}
func (s *stubParser) Extract(text string) ([]models.Fragment, error) { return nil, nil }

func TestRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubParser{id: "santander", aliases: []string{"banco_santander"}}))

	p, ok := r.Get("santander")
	assert.True(t, ok)
	assert.Equal(t, "santander", p.ID())

	p, ok = r.Get("BANCO_SANTANDER")
	assert.True(t, ok)
	assert.Equal(t, "santander", p.ID())

	_, ok = r.Get("unknown_bank")
	assert.False(t, ok)
}

func TestRegisterDuplicateID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubParser{id: "bbva"}))

	err := r.Register(&stubParser{id: "bbva"})
	require.Error(t, err)

	var regErr *parsererror.RegistrationError
	require.True(t, errors.As(err, &regErr))
	assert.Equal(t, "bbva", regErr.Conflict)
}

func TestRegisterAliasCollidesWithID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubParser{id: "galicia"}))

	err := r.Register(&stubParser{id: "other", aliases: []string{"galicia"}})
	require.Error(t, err)
}

func TestSniffFollowsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubParser{id: "first", marker: "shared"}))
	require.NoError(t, r.Register(&stubParser{id: "second", marker: "shared"}))

	p, ok := r.Sniff("text with shared marker")
	require.True(t, ok)
	assert.Equal(t, "first", p.ID())

	_, ok = r.Sniff("nothing recognizable")
	assert.False(t, ok)
}

func TestFallback(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubParser{id: "generic_spanish"}))
	require.NoError(t, r.Register(&stubParser{id: "generic_english"}))

	tests := []struct {
		hint     string
		expected string
		found    bool
	}{
		{"banco de españa", "generic_spanish", true},
		{"some spanish bank", "generic_spanish", true},
		{"spain_savings", "generic_spanish", true},
		{"first national", "generic_english", true},
		{"", "", false},
		{"unknown", "", false},
	}

	for _, tc := range tests {
		p, ok := r.Fallback(tc.hint)
		assert.Equal(t, tc.found, ok, "hint %q", tc.hint)
		if tc.found {
			assert.Equal(t, tc.expected, p.ID(), "hint %q", tc.hint)
		}
	}
}

func TestIDs(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubParser{id: "a"}))
	require.NoError(t, r.Register(&stubParser{id: "b", aliases: []string{"b2"}}))

	assert.Equal(t, []string{"a", "b"}, r.IDs())
}
