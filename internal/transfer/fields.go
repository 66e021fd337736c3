// Package transfer imports words into a dictionary and exports them in
// interchange formats.
package transfer

import (
	"strings"

	"github.com/at-ishikawa/wordbook/internal/word"
)

// ListSeparator joins the values of a multi-valued field in flat formats.
// A literal separator or backslash inside a value is escaped with a backslash.
const ListSeparator = ";"

// Field describes one column of the flat (tabular) formats.
type Field struct {
	Name     string
	Required bool
	Multi    bool

	get func(word.Fields) string
	set func(*word.Fields, string)
}

// Get returns the cell value of the field in f.
func (c Field) Get(f word.Fields) string {
	return c.get(f)
}

// Set stores a cell value into f.
func (c Field) Set(f *word.Fields, value string) {
	c.set(f, value)
}

// Fields is the column mapping shared by every flat format, in output order.
var Fields = []Field{
	{
		Name:     "word",
		Required: true,
		get:      func(f word.Fields) string { return f.Word },
		set:      func(f *word.Fields, v string) { f.Word = v },
	},
	{
		Name:     "definition",
		Required: true,
		get:      func(f word.Fields) string { return f.Definition },
		set:      func(f *word.Fields, v string) { f.Definition = v },
	},
	{
		Name: "pronunciation",
		get:  func(f word.Fields) string { return f.Pronunciation },
		set:  func(f *word.Fields, v string) { f.Pronunciation = v },
	},
	{
		Name:  "examples",
		Multi: true,
		get:   func(f word.Fields) string { return JoinList(f.Examples) },
		set:   func(f *word.Fields, v string) { f.Examples = SplitList(v) },
	},
	{
		Name:  "categories",
		Multi: true,
		get:   func(f word.Fields) string { return JoinList(f.Categories) },
		set:   func(f *word.Fields, v string) { f.Categories = SplitList(v) },
	},
	{
		Name: "notes",
		get:  func(f word.Fields) string { return f.Notes },
		set:  func(f *word.Fields, v string) { f.Notes = v },
	},
}

// Header returns the column names of Fields.
func Header() []string {
	names := make([]string, len(Fields))
	for i, c := range Fields {
		names[i] = c.Name
	}
	return names
}

func requiredNames() []string {
	var names []string
	for _, c := range Fields {
		if c.Required {
			names = append(names, c.Name)
		}
	}
	return names
}

// Flatten returns the cells of f in Header order.
func Flatten(f word.Fields) []string {
	cells := make([]string, len(Fields))
	for i, c := range Fields {
		cells[i] = c.Get(f)
	}
	return cells
}

var listEscaper = strings.NewReplacer(`\`, `\\`, ListSeparator, `\`+ListSeparator)

// JoinList joins values with ListSeparator.
func JoinList(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = listEscaper.Replace(v)
	}
	return strings.Join(escaped, ListSeparator)
}

// SplitList is the inverse of JoinList. Values are trimmed and empty values dropped.
func SplitList(s string) []string {
	values := []string{}
	var current strings.Builder
	flush := func() {
		if v := strings.TrimSpace(current.String()); v != "" {
			values = append(values, v)
		}
		current.Reset()
	}

	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case string(r) == ListSeparator:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	if escaped {
		current.WriteRune('\\')
	}
	flush()
	return values
}
