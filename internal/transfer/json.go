package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/word"
)

// jsonCodec reads an array of word objects or a {"words": [...]} envelope
// and writes an array.
type jsonCodec struct{}

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Filename(name string) string { return filename(name, "dictionary", "json") }

func (jsonCodec) Encode(doc Document) ([]byte, error) {
	b, err := json.MarshalIndent(words(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return b, nil
}

func (jsonCodec) Decode(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)

	var items []json.RawMessage
	switch {
	case bytes.HasPrefix(data, []byte("[")):
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, apperror.Validation("Invalid JSON format: %v", err)
		}
	case bytes.HasPrefix(data, []byte("{")):
		var envelope struct {
			Words *[]json.RawMessage `json:"words"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, apperror.Validation("Invalid JSON format: %v", err)
		}
		if envelope.Words == nil {
			return nil, apperror.Validation(`Invalid JSON format: expected a list of words or {"words": [...]}`)
		}
		items = *envelope.Words
	default:
		return nil, apperror.Validation(`Invalid JSON format: expected a list of words or {"words": [...]}`)
	}

	records := make([]Record, len(items))
	for i, item := range items {
		records[i].Row = i + 1
		var f word.Fields
		if err := json.Unmarshal(item, &f); err != nil {
			records[i].Err = fmt.Errorf("invalid record: %w", err)
			continue
		}
		records[i].Fields = f
	}
	return records, nil
}
