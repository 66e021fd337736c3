package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/database"
	"github.com/at-ishikawa/wordbook/internal/word"
)

// WordStore is the part of the word repository used by imports and exports.
type WordStore interface {
	FindAllByDictionary(ctx context.Context, dictionaryID string) ([]word.Word, error)
	Create(ctx context.Context, w *word.Word) error
}

// Result summarizes an import.
type Result struct {
	Imported int
	Failed   int
	Errors   []string
}

// Payload is a rendered export.
type Payload struct {
	ContentType string
	Filename    string
	Body        []byte
}

type Service struct {
	words        WordStore
	dictionaries word.DictionaryAuthorizer
	now          func() time.Time
}

// NewService creates a Service importing into and exporting from words.
func NewService(words WordStore, dictionaries word.DictionaryAuthorizer) *Service {
	return &Service{
		words:        words,
		dictionaries: dictionaries,
		now:          time.Now,
	}
}

// Import adds the records of data to a dictionary. Records that cannot be
// added are skipped and reported in the result; an error is returned only
// when the payload cannot be read at all.
func (s *Service) Import(ctx context.Context, ownerID, dictionaryID, format string, data []byte) (*Result, error) {
	codec, err := ImportCodec(format)
	if err != nil {
		return nil, err
	}
	if _, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID); err != nil {
		return nil, err
	}
	records, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}

	existing, err := s.words.FindAllByDictionary(ctx, dictionaryID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing)+len(records))
	for _, w := range existing {
		seen[w.Word] = true
	}

	result := &Result{Errors: []string{}}
	fail := func(row int, format string, args ...any) {
		result.Failed++
		result.Errors = append(result.Errors, fmt.Sprintf("Row %d: ", row)+fmt.Sprintf(format, args...))
	}
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import words: %w", err)
		}
		if rec.Err != nil {
			fail(rec.Row, "%v", rec.Err)
			continue
		}

		f := word.Normalize(rec.Fields)
		if f.Word == "" || f.Definition == "" {
			fail(rec.Row, "Missing required fields (word, definition)")
			continue
		}
		if err := word.Validate(f); err != nil {
			fail(rec.Row, "%s", apperror.Message(err))
			continue
		}
		if seen[f.Word] {
			fail(rec.Row, "Word '%s' already exists", f.Word)
			continue
		}

		w := word.New(dictionaryID, f, s.now().UTC())
		if err := s.words.Create(ctx, w); err != nil {
			if database.IsUniqueViolation(err) {
				seen[f.Word] = true
				fail(rec.Row, "Word '%s' already exists", f.Word)
				continue
			}
			fail(rec.Row, "%s", apperror.Message(err))
			continue
		}
		seen[f.Word] = true
		result.Imported++
	}
	return result, nil
}

// Export renders every word of a dictionary in the given format.
func (s *Service) Export(ctx context.Context, ownerID, dictionaryID, format string) (*Payload, error) {
	codec, err := ExportCodec(format)
	if err != nil {
		return nil, err
	}
	d, err := s.dictionaries.Authorize(ctx, ownerID, dictionaryID)
	if err != nil {
		return nil, err
	}
	list, err := s.words.FindAllByDictionary(ctx, dictionaryID)
	if err != nil {
		return nil, err
	}

	body, err := codec.Encode(Document{Dictionary: d, Words: list})
	if err != nil {
		return nil, fmt.Errorf("export dictionary %s: %w", dictionaryID, err)
	}
	return &Payload{
		ContentType: codec.ContentType(),
		Filename:    codec.Filename(d.Name),
		Body:        body,
	}, nil
}
