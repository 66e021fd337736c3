// Package word stores the entries of a dictionary and searches them.
package word

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type Word struct {
	ID            string     `db:"id" json:"id" yaml:"id"`
	DictionaryID  string     `db:"dictionary_id" json:"dictionary_id" yaml:"dictionary_id"`
	Word          string     `db:"word" json:"word" yaml:"word"`
	Definition    string     `db:"definition" json:"definition" yaml:"definition"`
	Pronunciation string     `db:"pronunciation" json:"pronunciation" yaml:"pronunciation"`
	Examples      StringList `db:"examples" json:"examples" yaml:"examples"`
	Categories    StringList `db:"categories" json:"categories" yaml:"categories"`
	Notes         string     `db:"notes" json:"notes" yaml:"notes"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at" yaml:"updated_at"`
}

// Fields are the user-editable values of a word.
type Fields struct {
	Word          string   `json:"word" yaml:"word" validate:"required,max=100"`
	Definition    string   `json:"definition" yaml:"definition" validate:"required,max=1000"`
	Pronunciation string   `json:"pronunciation" yaml:"pronunciation" validate:"max=100"`
	Examples      []string `json:"examples" yaml:"examples"`
	Categories    []string `json:"categories" yaml:"categories"`
	Notes         string   `json:"notes" yaml:"notes" validate:"max=500"`
}

// Patch holds the fields to change; nil fields are left as they are.
type Patch struct {
	Word          *string   `json:"word" validate:"omitnil,min=1,max=100"`
	Definition    *string   `json:"definition" validate:"omitnil,min=1,max=1000"`
	Pronunciation *string   `json:"pronunciation" validate:"omitnil,max=100"`
	Examples      *[]string `json:"examples"`
	Categories    *[]string `json:"categories"`
	Notes         *string   `json:"notes" validate:"omitnil,max=500"`
}

type SearchType string

const (
	SearchWord       SearchType = "word"
	SearchDefinition SearchType = "definition"
	SearchBoth       SearchType = "both"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchWord, SearchDefinition, SearchBoth:
		return true
	}
	return false
}

type Page struct {
	Skip  int
	Limit int
}

func DefaultPage() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

// New builds a word of dictionaryID from already normalized fields.
func New(dictionaryID string, f Fields, now time.Time) *Word {
	return &Word{
		ID:            uuid.NewString(),
		DictionaryID:  dictionaryID,
		Word:          f.Word,
		Definition:    f.Definition,
		Pronunciation: f.Pronunciation,
		Examples:      StringList(f.Examples),
		Categories:    StringList(f.Categories),
		Notes:         f.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Fields returns the user-editable values of w.
func (w *Word) Fields() Fields {
	return Fields{
		Word:          w.Word,
		Definition:    w.Definition,
		Pronunciation: w.Pronunciation,
		Examples:      append([]string{}, w.Examples...),
		Categories:    append([]string{}, w.Categories...),
		Notes:         w.Notes,
	}
}

// Normalize lowercases the headword, trims every value, drops empty examples,
// and de-duplicates categories keeping the first occurrence.
func Normalize(f Fields) Fields {
	return Fields{
		Word:          NormalizeWord(f.Word),
		Definition:    strings.TrimSpace(f.Definition),
		Pronunciation: strings.TrimSpace(f.Pronunciation),
		Examples:      normalizeExamples(f.Examples),
		Categories:    normalizeCategories(f.Categories),
		Notes:         strings.TrimSpace(f.Notes),
	}
}

func NormalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeExamples(examples []string) []string {
	out := make([]string, 0, len(examples))
	for _, e := range examples {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func normalizeCategories(categories []string) []string {
	out := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// StringList is a list of strings stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("encode string list: %w", err)
	}
	return string(b), nil
}

// MarshalJSON encodes a nil list as an empty array.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	*l = values
	return nil
}
