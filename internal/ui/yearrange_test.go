package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		name string
		spec string
		from *int
		to   *int
	}{
		{"empty clears", "", nil, nil},
		{"whitespace clears", "   ", nil, nil},
		{"full range", "1990-2005", intp(1990), intp(2005)},
		{"open upper", "1990-", intp(1990), nil},
		{"open lower", "-2005", nil, intp(2005)},
		{"bare year", "1990", intp(1990), intp(1990)},
		{"spaces around dash", " 1990 - 2005 ", intp(1990), intp(2005)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := parseYearRange(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestParseYearRangeErrors(t *testing.T) {
	for _, spec := range []string{"abc", "19x0-2000", "1990-20x5", "2005-1990"} {
		t.Run(spec, func(t *testing.T) {
			_, _, err := parseYearRange(spec)
			assert.Error(t, err)
		})
	}
}

func TestYearSpecString(t *testing.T) {
	assert.Equal(t, "", yearSpecString(nil, nil))
	assert.Equal(t, "1990-2005", yearSpecString(intp(1990), intp(2005)))
	assert.Equal(t, "1990-", yearSpecString(intp(1990), nil))
	assert.Equal(t, "-2005", yearSpecString(nil, intp(2005)))
	assert.Equal(t, "1990", yearSpecString(intp(1990), intp(1990)))
}
