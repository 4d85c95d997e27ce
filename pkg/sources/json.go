package sources

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/yaklabco/intlmsg/pkg/message"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// JSONTranslations reads translation files: a flat JSON object mapping
// message keys to raw message strings.
type JSONTranslations struct {
	// Interner receives message names. Defaults to the process-wide table.
	Interner *symbol.Interner
}

// NewJSONTranslations creates a reader using the process-wide interner.
func NewJSONTranslations() *JSONTranslations {
	return &JSONTranslations{Interner: symbol.Global()}
}

// ExtractTranslations implements TranslationSource. The returned sequence
// is lazy: each message is parsed as it is consumed, and a message that
// fails to parse yields an error element without stopping the sequence.
func (r *JSONTranslations) ExtractTranslations(fileName symbol.Symbol, content string) (iter.Seq2[RawMessageTranslation, error], error) {
	decoder := json.NewDecoder(strings.NewReader(content))

	open, err := decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSourceFileMeta, err)
	}
	if delim, ok := open.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: translations file is not a JSON object", ErrInvalidSourceFileMeta)
	}

	return func(yield func(RawMessageTranslation, error) bool) {
		for decoder.More() {
			keyToken, err := decoder.Token()
			if err != nil {
				yield(RawMessageTranslation{}, fmt.Errorf("%w: %w", ErrInvalidSourceFileMeta, err))
				return
			}
			key, ok := keyToken.(string)
			if !ok {
				yield(RawMessageTranslation{}, fmt.Errorf("%w: non-string message key %v", ErrInvalidSourceFileMeta, keyToken))
				return
			}

			name := r.interner().Intern(key)
			offset := uint32(decoder.InputOffset())

			var raw any
			if err := decoder.Decode(&raw); err != nil {
				yield(RawMessageTranslation{}, fmt.Errorf("%w: value for message %s: %w", ErrInvalidSourceFileMeta, key, err))
				return
			}
			text, ok := raw.(string)
			if !ok {
				if !yield(RawMessageTranslation{}, fmt.Errorf("%w: %s", ErrNoMessageValue, key)) {
					return
				}
				continue
			}

			value, err := message.FromRaw(text)
			if err != nil {
				if !yield(RawMessageTranslation{}, parseError(KindTranslation, key, err)) {
					return
				}
				continue
			}
			value.WithFilePosition(message.FilePosition{File: fileName, Offset: offset})

			if !yield(RawMessageTranslation{Name: name, Value: value, Offset: offset}, nil) {
				return
			}
		}
	}, nil
}

func (r *JSONTranslations) interner() *symbol.Interner {
	if r.Interner != nil {
		return r.Interner
	}
	return symbol.Global()
}
