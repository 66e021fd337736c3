package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/wordbook/internal/word"
)

func TestJoinList(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "empty", values: nil, want: ""},
		{name: "single", values: []string{"a"}, want: "a"},
		{name: "several", values: []string{"a", "b c"}, want: "a;b c"},
		{name: "separator in value", values: []string{"one; two", "three"}, want: `one\; two;three`},
		{name: "backslash in value", values: []string{`C:\path`}, want: `C:\\path`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinList(tt.values))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "whitespace only", in: "  ", want: []string{}},
		{name: "trims values", in: " a ; b ", want: []string{"a", "b"}},
		{name: "drops empty values", in: "a;;b;", want: []string{"a", "b"}},
		{name: "escaped separator", in: `one\; two;three`, want: []string{"one; two", "three"}},
		{name: "escaped backslash", in: `C:\\path`, want: []string{`C:\path`}},
		{name: "trailing backslash is kept", in: `a\`, want: []string{`a\`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in))
		})
	}
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"word", "definition", "pronunciation", "examples", "categories", "notes"}, Header())
	assert.Equal(t, []string{"word", "definition"}, requiredNames())

	f := word.Fields{
		Word:          "run",
		Definition:    "to move fast",
		Pronunciation: "rʌn",
		Examples:      []string{"I run; you walk", "run!"},
		Categories:    []string{"verb"},
		Notes:         "irregular",
	}
	cells := Flatten(f)
	assert.Equal(t, []string{"run", "to move fast", "rʌn", `I run\; you walk;run!`, "verb", "irregular"}, cells)

	var got word.Fields
	for i, c := range Fields {
		c.Set(&got, cells[i])
	}
	assert.Equal(t, f, got)
}
