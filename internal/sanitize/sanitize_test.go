package sanitize_test

import (
	"math"
	"testing"

	"github.com/sheik32/Sistema-de-inventario-seguro/internal/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		max   int
		want  string
	}{
		{"nil input", nil, 100, ""},
		{"trims whitespace", "  Tornillo  ", 100, "Tornillo"},
		{"truncates to max runes", "abcdefgh", 4, "abcd"},
		{"strips control characters", "abc\x00\x1Fdef", 100, "abcdef"},
		{"keeps newline tab and carriage return", "a\nb\tc\rd", 100, "a\nb\tc\rd"},
		{"strips DEL", "abc\x7F", 100, "abc"},
		{"trims whitespace exposed by stripping", "ab \x01", 100, "ab"},
		{"trims whitespace exposed by truncation", "ab cdef", 3, "ab"},
		{"stringifies numbers", 42, 100, "42"},
		{"unbounded when max is zero", "abcdef", 0, "abcdef"},
		{"multibyte runes counted as one", "ññññ", 2, "ññ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Text(tt.input, tt.max))
		})
	}
}

func TestTextIdempotent(t *testing.T) {
	inputs := []string{"  hola  ", "abc\x01def", "Tornillo TRN-01", "ñandú\x7F", "ab \x01", "ab cdef gh"}
	for _, in := range inputs {
		for _, max := range []int{0, 4, 50} {
			once := sanitize.Text(in, max)
			assert.Equal(t, once, sanitize.Text(once, max), "sanitizing twice must be a no-op")
		}
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		min   float64
		max   float64
		def   float64
		want  float64
	}{
		{"nil yields default", nil, 0, 100, 7, 7},
		{"empty string yields default", "", 0, 100, 7, 7},
		{"non numeric yields default", "abc", 0, 100, 7, 7},
		{"parses string", "42.5", 0, 100, 0, 42.5},
		{"clamps below min", -3, 0, 100, 0, 0},
		{"clamps above max", 1000, 0, 100, 0, 100},
		{"passes through in range", 55.25, 0, 100, 0, 55.25},
		{"integer input", int64(12), 0, 100, 0, 12},
		{"unbounded max", 1e9, 0, math.Inf(1), 0, 1e9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitize.Number(tt.input, tt.min, tt.max, tt.def))
		})
	}
}

func TestNumberClampingLaw(t *testing.T) {
	// Every finite input lands inside [min, max].
	for _, v := range []float64{-1e12, -1, 0, 0.009, 0.01, 500, 999999.99, 1e12} {
		got := sanitize.Number(v, 0.01, 999999.99, 0)
		assert.GreaterOrEqual(t, got, 0.01)
		assert.LessOrEqual(t, got, 999999.99)
	}
}

func TestEscapeForDisplay(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;x&lt;/b&gt;", sanitize.EscapeForDisplay("<b>x</b>"))
	assert.Equal(t, "a &amp; b", sanitize.EscapeForDisplay("a & b"))
}
