package transfer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/word"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatYAML     Format = "yaml"
	FormatXLSX     Format = "xlsx"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
)

// Document is what an export renders.
type Document struct {
	Dictionary *dictionary.Dictionary
	Words      []word.Word
}

// Record is one decoded entry of an import payload.
// Row is the position reported in error messages.
// Err is set when the entry could not be decoded.
type Record struct {
	Row    int
	Fields word.Fields
	Err    error
}

// Codec converts between a payload format and words.
type Codec interface {
	ContentType() string
	// Filename returns the attachment name for an export of the named dictionary.
	Filename(dictionaryName string) string
	Encode(doc Document) ([]byte, error)
	// Decode returns the records of data. Errors are about the payload as a whole.
	Decode(data []byte) ([]Record, error)
}

var codecs = map[Format]Codec{
	FormatJSON:     jsonCodec{},
	FormatCSV:      csvCodec{},
	FormatYAML:     yamlCodec{},
	FormatXLSX:     xlsxCodec{},
	FormatMarkdown: markdownCodec{},
	FormatPDF:      pdfCodec{},
}

var (
	importFormats = []Format{FormatJSON, FormatCSV, FormatYAML, FormatXLSX}
	exportFormats = []Format{FormatJSON, FormatCSV, FormatYAML, FormatXLSX, FormatMarkdown, FormatPDF}
)

// ImportCodec returns the codec of an importable format name.
func ImportCodec(name string) (Codec, error) {
	return lookup(name, importFormats)
}

// ExportCodec returns the codec of an exportable format name.
func ExportCodec(name string) (Codec, error) {
	return lookup(name, exportFormats)
}

func lookup(name string, allowed []Format) (Codec, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range allowed {
		if f == format {
			return codecs[f], nil
		}
	}

	quoted := make([]string, len(allowed))
	for i, f := range allowed {
		quoted[i] = fmt.Sprintf("'%s'", f)
	}
	return nil, apperror.Validation("Unsupported format. Use %s or %s",
		strings.Join(quoted[:len(quoted)-1], ", "), quoted[len(quoted)-1])
}

// filename builds "<name>_<suffix>.<ext>". Control characters, path
// separators and quotes are replaced; other characters, non-ASCII letters
// included, are kept and left to the Content-Disposition encoding.
func filename(dictionaryName, suffix, ext string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r), r == '/', r == '\\', r == '"':
			return '_'
		}
		return r
	}, strings.TrimSpace(dictionaryName))
	if safe == "" {
		safe = "dictionary"
	}
	return fmt.Sprintf("%s_%s.%s", safe, suffix, ext)
}

// table decodes rows of a flat format whose first row is the header.
type table struct {
	columns []*Field
}

func newTable(header []string) (*table, error) {
	t := &table{columns: make([]*Field, len(header))}
	found := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		for j := range Fields {
			if Fields[j].Name == name && !found[name] {
				t.columns[i] = &Fields[j]
				found[name] = true
			}
		}
	}

	var missing []string
	for _, name := range requiredNames() {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.Validation("Missing required columns: %s", strings.Join(missing, ", "))
	}
	return t, nil
}

func (t *table) record(row int, cells []string) Record {
	rec := Record{Row: row}
	for i, cell := range cells {
		if i >= len(t.columns) || t.columns[i] == nil {
			continue
		}
		t.columns[i].Set(&rec.Fields, cell)
	}
	return rec
}

func words(doc Document) []word.Word {
	if doc.Words == nil {
		return []word.Word{}
	}
	return doc.Words
}

func errNotImportable(format Format) error {
	return apperror.Validation("Format '%s' can only be exported", format)
}
