package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces become dashes", in: "Dynamic Programming", want: "dynamic-programming"},
		{name: "already normalized", in: "dynamic-programming", want: "dynamic-programming"},
		{name: "surrounding whitespace", in: "  Graphs  ", want: "graphs"},
		{name: "diacritics are stripped", in: "Árboles Binarios", want: "arboles-binarios"},
		{name: "punctuation collapses", in: "C++ / STL", want: "c-stl"},
		{name: "digits are kept", in: "2-SAT", want: "2-sat"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalization must be idempotent")
		})
	}
}

func TestNormalizer_NormalizeTag(t *testing.T) {
	assert.Equal(t, "number-theory", NewNormalizer().NormalizeTag("Number Theory"))
}
