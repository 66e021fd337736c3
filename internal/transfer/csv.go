package transfer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/at-ishikawa/wordbook/internal/apperror"
)

// csvCodec reads and writes a header row followed by one row per word.
// Records are numbered from 2, the header being row 1. Blank lines are not
// counted and a quoted multi-line cell stays one row.
type csvCodec struct{}

func (csvCodec) ContentType() string { return "text/csv; charset=utf-8" }

func (csvCodec) Filename(name string) string { return filename(name, "words", "csv") }

func (csvCodec) Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, wd := range words(doc) {
		if err := w.Write(Flatten(wd.Fields())); err != nil {
			return nil, fmt.Errorf("write csv row for %s: %w", wd.Word, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (csvCodec) Decode(data []byte) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperror.Validation("Missing required columns: word, definition")
	}
	if err != nil {
		return nil, apperror.Validation("Invalid CSV format: %v", err)
	}
	t, err := newTable(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for row := 2; ; row++ {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperror.Validation("Invalid CSV format: %v", err)
		}
		records = append(records, t.record(row, cells))
	}
	return records, nil
}
