package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/domain"
)

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-06-01":                "2024-06-01T00:00:00.000Z",
		"2024-06-01T10:20":          "2024-06-01T10:20:00.000Z",
		"2024-06-01T10:20:30":       "2024-06-01T10:20:30.000Z",
		"2024-06-01T10:20:30.5Z":    "2024-06-01T10:20:30.500Z",
		"2024-06-01T10:20:30-05:00": "2024-06-01T15:20:30.000Z",
		"06/01/2024":                "2024-06-01T00:00:00.000Z",
		" 2024-06-01 ":              "2024-06-01T00:00:00.000Z",
	}
	for in, want := range cases {
		got, err := normalizeDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "mañana", "2024-13-01", "31/12/2024"} {
		_, err := normalizeDate(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}
