package transfer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/word"
)

// yamlCodec mirrors jsonCodec: a sequence of words or a mapping with a words key.
type yamlCodec struct{}

func (yamlCodec) ContentType() string { return "application/yaml" }

func (yamlCodec) Filename(name string) string { return filename(name, "words", "yaml") }

func (yamlCodec) Encode(doc Document) ([]byte, error) {
	b, err := yaml.Marshal(words(doc))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return b, nil
}

func (yamlCodec) Decode(data []byte) ([]Record, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, apperror.Validation("Invalid YAML format: %v", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return []Record{}, nil
	}

	var items []yaml.Node
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&items); err != nil {
			return nil, apperror.Validation("Invalid YAML format: %v", err)
		}
	case yaml.MappingNode:
		var envelope struct {
			Words *[]yaml.Node `yaml:"words"`
		}
		if err := doc.Decode(&envelope); err != nil {
			return nil, apperror.Validation("Invalid YAML format: %v", err)
		}
		if envelope.Words == nil {
			return nil, apperror.Validation("Invalid YAML format: expected a list of words or a words key")
		}
		items = *envelope.Words
	default:
		return nil, apperror.Validation("Invalid YAML format: expected a list of words or a words key")
	}

	records := make([]Record, len(items))
	for i := range items {
		records[i].Row = i + 1
		var f word.Fields
		if err := items[i].Decode(&f); err != nil {
			records[i].Err = fmt.Errorf("invalid record: %w", err)
			continue
		}
		records[i].Fields = f
	}
	return records, nil
}
