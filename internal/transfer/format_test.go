package transfer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/word"
)

func testDocument() Document {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return Document{
		Dictionary: &dictionary.Dictionary{ID: "d1", Name: "Spanish", Description: "basics"},
		Words: []word.Word{
			*word.New("d1", word.Fields{Word: "hola", Definition: "hello"}, now),
			*word.New("d1", word.Fields{
				Word:          "correr",
				Definition:    "to run, to jog",
				Pronunciation: "koˈreɾ",
				Examples:      []string{"Yo corro; tú caminas", `a \ b`},
				Categories:    []string{"verb", "sport"},
				Notes:         "regular -er verb\nsecond line",
			}, now),
		},
	}
}

func fieldsOf(words []word.Word) []word.Fields {
	out := make([]word.Fields, len(words))
	for i, w := range words {
		out[i] = w.Fields()
	}
	return out
}

func TestCodec_RoundTrip(t *testing.T) {
	for _, format := range importFormats {
		t.Run(string(format), func(t *testing.T) {
			doc := testDocument()
			codec := codecs[format]

			data, err := codec.Encode(doc)
			require.NoError(t, err)
			records, err := codec.Decode(data)
			require.NoError(t, err)

			got := make([]word.Fields, len(records))
			for i, rec := range records {
				require.NoError(t, rec.Err)
				got[i] = word.Normalize(rec.Fields)
			}
			if diff := cmp.Diff(fieldsOf(doc.Words), got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCodec_EmptyExport(t *testing.T) {
	doc := Document{Dictionary: &dictionary.Dictionary{Name: "Empty"}}

	b, err := jsonCodec{}.Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = csvCodec{}.Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, "word,definition,pronunciation,examples,categories,notes\n", string(b))
}

func TestCSVCodec_Encode(t *testing.T) {
	b, err := csvCodec{}.Encode(testDocument())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(b)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header(), rows[0])
	assert.True(t, strings.HasPrefix(strings.Split(string(b), "\n")[1], "hola,hello"))
	assert.Equal(t, `Yo corro\; tú caminas;a \\ b`, rows[2][3])
	assert.Equal(t, "verb;sport", rows[2][4])
}

func TestJSONCodec_Encode(t *testing.T) {
	b, err := jsonCodec{}.Encode(testDocument())
	require.NoError(t, err)

	for _, key := range []string{`"id"`, `"dictionary_id": "d1"`, `"word": "hola"`, `"examples": []`, `"created_at": "2024-05-01T10:00:00Z"`} {
		assert.Contains(t, string(b), key)
	}
}

func TestJSONCodec_Decode(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		want     []Record
		wantErr  bool
		wantMsg  string
		checkErr []bool
	}{
		{
			name: "array",
			data: `[{"word":"hola","definition":"hello","examples":["¡Hola!"]},{"word":"adiós"}]`,
			want: []Record{
				{Row: 1, Fields: word.Fields{Word: "hola", Definition: "hello", Examples: []string{"¡Hola!"}}},
				{Row: 2, Fields: word.Fields{Word: "adiós"}},
			},
		},
		{
			name: "words envelope",
			data: ` {"words":[{"word":"hola","definition":"hello","id":"ignored"}]}`,
			want: []Record{{Row: 1, Fields: word.Fields{Word: "hola", Definition: "hello"}}},
		},
		{
			name:     "malformed record",
			data:     `[{"word":"hola","definition":"hello"},{"word":1}]`,
			want:     []Record{{Row: 1, Fields: word.Fields{Word: "hola", Definition: "hello"}}, {Row: 2}},
			checkErr: []bool{false, true},
		},
		{
			name:    "envelope without words",
			data:    `{"items":[]}`,
			wantErr: true,
			wantMsg: `Invalid JSON format: expected a list of words or {"words": [...]}`,
		},
		{
			name:    "scalar",
			data:    `"hola"`,
			wantErr: true,
		},
		{
			name:    "broken",
			data:    `[{"word":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonCodec{}.Decode([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindValidation))
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range got {
				if tt.checkErr != nil && tt.checkErr[i] {
					assert.Error(t, got[i].Err)
					got[i].Err = nil
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVCodec_Decode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []Record
		wantErr string
	}{
		{
			name: "rows are numbered by record",
			data: "word,definition,examples\nhola,hello,¡Hola!;Hola amigo\n\nadiós,goodbye\n",
			want: []Record{
				{Row: 2, Fields: word.Fields{Word: "hola", Definition: "hello", Examples: []string{"¡Hola!", "Hola amigo"}}},
				{Row: 3, Fields: word.Fields{Word: "adiós", Definition: "goodbye"}},
			},
		},
		{
			name: "multi-line cells count as one row",
			data: "word,definition\nhola,\"hello\nhi\"\ngato,cat\nperro,dog\n",
			want: []Record{
				{Row: 2, Fields: word.Fields{Word: "hola", Definition: "hello\nhi"}},
				{Row: 3, Fields: word.Fields{Word: "gato", Definition: "cat"}},
				{Row: 4, Fields: word.Fields{Word: "perro", Definition: "dog"}},
			},
		},
		{
			name: "header is case-insensitive and unknown columns are ignored",
			data: "\ufeffWord, Definition ,level,Categories\nhola,hello,A1,greeting\n",
			want: []Record{
				{Row: 2, Fields: word.Fields{Word: "hola", Definition: "hello", Categories: []string{"greeting"}}},
			},
		},
		{
			name: "quoted cells with commas",
			data: "word,definition\nrun,\"to move, fast\"\n",
			want: []Record{{Row: 2, Fields: word.Fields{Word: "run", Definition: "to move, fast"}}},
		},
		{
			name:    "missing required columns",
			data:    "word,notes\nhola,x\n",
			wantErr: "Missing required columns: definition",
		},
		{
			name:    "empty payload",
			data:    "",
			wantErr: "Missing required columns: word, definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := csvCodec{}.Decode([]byte(tt.data))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindValidation))
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLCodec_Decode(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    []Record
		wantErr bool
	}{
		{
			name: "sequence",
			data: "- word: hola\n  definition: hello\n  categories: [greeting]\n",
			want: []Record{{Row: 1, Fields: word.Fields{Word: "hola", Definition: "hello", Categories: []string{"greeting"}}}},
		},
		{
			name: "words key",
			data: "words:\n  - word: hola\n    definition: hello\n",
			want: []Record{{Row: 1, Fields: word.Fields{Word: "hola", Definition: "hello"}}},
		},
		{
			name: "empty document",
			data: "",
			want: []Record{},
		},
		{
			name:    "scalar document",
			data:    "hola",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			data:    "- word: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := yamlCodec{}.Decode([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperror.IsKind(err, apperror.KindValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYAMLCodec_DecodeMalformedRecord(t *testing.T) {
	got, err := yamlCodec{}.Decode([]byte("- word: hola\n  definition: hello\n- word: [a, b]\n"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.NoError(t, got[0].Err)
	assert.Equal(t, 2, got[1].Row)
	assert.Error(t, got[1].Err)
}

func TestXLSXCodec(t *testing.T) {
	b, err := xlsxCodec{}.Encode(testDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header(), rows[0])
	assert.Equal(t, []string{"hola", "hello"}, rows[1][:2])
}

func TestXLSXCodec_DecodeOtherSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"definition", "word"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]string{"hello", "hola"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	got, err := xlsxCodec{}.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []Record{{Row: 3, Fields: word.Fields{Word: "hola", Definition: "hello"}}}, got)

	_, err = xlsxCodec{}.Decode([]byte("not a workbook"))
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestMarkdownCodec(t *testing.T) {
	b, err := markdownCodec{}.Encode(testDocument())
	require.NoError(t, err)

	md := string(b)
	assert.True(t, strings.HasPrefix(md, "# Spanish\n\nbasics\n\n"))
	assert.Contains(t, md, "## hola\n\nhello\n\n")
	assert.Contains(t, md, "- Yo corro; tú caminas\n")
	assert.Contains(t, md, "**Categories:** verb, sport")

	_, err = markdownCodec{}.Decode(b)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestPDFCodec(t *testing.T) {
	doc := Document{
		Dictionary: &dictionary.Dictionary{Name: "English"},
		Words: []word.Word{
			*word.New("d1", word.Fields{Word: "run", Definition: "to move fast", Examples: []string{"I run daily"}}, time.Now()),
		},
	}
	b, err := pdfCodec{}.Encode(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		lookup  func(string) (Codec, error)
		format  string
		want    Codec
		wantErr string
	}{
		{name: "import json", lookup: ImportCodec, format: "json", want: jsonCodec{}},
		{name: "import is case-insensitive", lookup: ImportCodec, format: " CSV ", want: csvCodec{}},
		{name: "export pdf", lookup: ExportCodec, format: "pdf", want: pdfCodec{}},
		{
			name: "pdf cannot be imported", lookup: ImportCodec, format: "pdf",
			wantErr: "Unsupported format. Use 'json', 'csv', 'yaml' or 'xlsx'",
		},
		{
			name: "unknown export", lookup: ExportCodec, format: "xml",
			wantErr: "Unsupported format. Use 'json', 'csv', 'yaml', 'xlsx', 'md' or 'pdf'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.lookup(tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Spanish_words.csv", csvCodec{}.Filename("Spanish"))
	assert.Equal(t, "Spanish_dictionary.json", jsonCodec{}.Filename("Spanish"))
	assert.Equal(t, "dictionary_words.md", markdownCodec{}.Filename("  "))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "spaces and quotes", in: ` My Words "2024" `, want: "My Words _2024__words.csv"},
		{name: "non-ASCII letters are kept", in: "日本語", want: "日本語_words.csv"},
		{name: "accents are kept", in: "Español básico", want: "Español básico_words.csv"},
		{name: "path separators", in: "../a/b\\c", want: ".._a_b_c_words.csv"},
		{name: "control characters", in: "a\tb\r\nc", want: "a_b__c_words.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, csvCodec{}.Filename(tt.in))
		})
	}
}
