package word

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Fields
		want Fields
	}{
		{
			name: "trims and lowercases the headword",
			in:   Fields{Word: "  Hola ", Definition: " hello ", Pronunciation: " /ˈo.la/ ", Notes: " informal "},
			want: Fields{Word: "hola", Definition: "hello", Pronunciation: "/ˈo.la/", Examples: []string{}, Categories: []string{}, Notes: "informal"},
		},
		{
			name: "drops empty examples and keeps their order",
			in:   Fields{Word: "run", Definition: "move fast", Examples: []string{" I run. ", "", "  ", "She runs."}},
			want: Fields{Word: "run", Definition: "move fast", Examples: []string{"I run.", "She runs."}, Categories: []string{}},
		},
		{
			name: "de-duplicates categories keeping the first occurrence",
			in:   Fields{Word: "run", Definition: "move fast", Categories: []string{"verb", " sport", "verb ", "", "sport"}},
			want: Fields{Word: "run", Definition: "move fast", Examples: []string{}, Categories: []string{"verb", "sport"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestStringList(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		tests := []struct {
			name string
			in   StringList
			want string
		}{
			{name: "nil", in: nil, want: "[]"},
			{name: "values", in: StringList{"a", "b;c"}, want: `["a","b;c"]`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := tt.in.Value()
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("json", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Empty  StringList `json:"empty"`
			Values StringList `json:"values"`
		}{Values: StringList{"a"}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"empty":[],"values":["a"]}`, string(b))
	})

	t.Run("scan", func(t *testing.T) {
		tests := []struct {
			name    string
			src     any
			want    StringList
			wantErr bool
		}{
			{name: "bytes", src: []byte(`["x","y"]`), want: StringList{"x", "y"}},
			{name: "string", src: `["x"]`, want: StringList{"x"}},
			{name: "nil", src: nil, want: StringList{}},
			{name: "empty", src: "", want: StringList{}},
			{name: "json null", src: "null", want: StringList{}},
			{name: "invalid json", src: "[", wantErr: true},
			{name: "unsupported type", src: 42, wantErr: true},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var got StringList
				err := got.Scan(tt.src)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})
}

func TestSearchType_Valid(t *testing.T) {
	assert.True(t, SearchWord.Valid())
	assert.True(t, SearchDefinition.Valid())
	assert.True(t, SearchBoth.Valid())
	assert.False(t, SearchType("notes").Valid())
	assert.False(t, SearchType("").Valid())
}

func TestWord_Fields(t *testing.T) {
	w := &Word{Word: "hola", Definition: "hello", Examples: StringList{"¡Hola!"}, Categories: nil}
	got := w.Fields()

	assert.Equal(t, Fields{Word: "hola", Definition: "hello", Examples: []string{"¡Hola!"}, Categories: []string{}}, got)
	got.Examples[0] = "changed"
	assert.Equal(t, "¡Hola!", w.Examples[0])
}
