// Package sources defines the boundary between concrete message source
// files and the parsing core: raw message records carrying a name, a byte
// offset, and parsed value, plus the reader interfaces that produce them.
// The parsing core only ever sees the extracted value string per record,
// never the surrounding file syntax.
package sources

import (
	"iter"

	"github.com/yaklabco/intlmsg/pkg/message"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// MessageMeta is the structured metadata blob attached to one message
// definition.
type MessageMeta struct {
	// Description documents the message for translators.
	Description string `json:"description,omitempty"`

	// Secret marks messages whose content must not leak into published
	// translation bundles before release.
	Secret bool `json:"secret,omitempty"`

	// Translate is false for messages that ship in the source language
	// only.
	Translate bool `json:"translate"`
}

// SourceFileMeta is the metadata descriptor for a whole definitions file.
type SourceFileMeta struct {
	// TranslationsPath is the directory translations for this file's
	// messages are expected in.
	TranslationsPath string `json:"translationsPath,omitempty"`
}

// RawMessage is any record extracted from a source file.
type RawMessage interface {
	// MessageName returns the interned message key.
	MessageName() symbol.Symbol
}

// RawMessageDefinition is one message declaration extracted from a
// definitions source file.
type RawMessageDefinition struct {
	Name   symbol.Symbol
	Value  *message.Value
	Offset uint32
	Meta   MessageMeta
}

// MessageName implements RawMessage.
func (d RawMessageDefinition) MessageName() symbol.Symbol { return d.Name }

// RawMessageTranslation is one translated message extracted from a
// translations source file.
type RawMessageTranslation struct {
	Name   symbol.Symbol
	Value  *message.Value
	Offset uint32
}

// MessageName implements RawMessage.
func (t RawMessageTranslation) MessageName() symbol.Symbol { return t.Name }

// DefinitionSource extracts message definitions from a source file. The
// sequence may be lazy; each element is either a complete record or the
// error that kept one record from being produced, so a single bad message
// never aborts the rest of the file.
type DefinitionSource interface {
	ExtractDefinitions(fileName symbol.Symbol, content string) (SourceFileMeta, iter.Seq2[RawMessageDefinition, error], error)
}

// TranslationSource extracts message translations from a source file, with
// the same per-record error contract as DefinitionSource.
type TranslationSource interface {
	ExtractTranslations(fileName symbol.Symbol, content string) (iter.Seq2[RawMessageTranslation, error], error)
}
