package engine

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
		{
			name: "lowercases",
			in:   "When Is The MIDTERM",
			want: "when is the midterm",
		},
		{
			name: "strips punctuation",
			in:   "when's the mid-term, exactly?",
			want: "when s the mid term exactly",
		},
		{
			name: "collapses whitespace",
			in:   "  exam   dates \t please ",
			want: "exam dates please",
		},
		{
			name: "digits survive",
			in:   "unit 3 notes!",
			want: "unit 3 notes",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "punctuation only",
			in:   "?!...",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"When Is The MIDTERM?",
		"  lots   of\tspace  ",
		"",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}
