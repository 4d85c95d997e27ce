package message

import (
	"github.com/yaklabco/intlmsg/pkg/msgast"
	"github.com/yaklabco/intlmsg/pkg/parser"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// FilePosition locates a message value inside the source file it was
// extracted from.
type FilePosition struct {
	// File is the interned name of the source file.
	File symbol.Symbol

	// Offset is the byte offset of the value within the file.
	Offset uint32
}

// Value is one parsed message: the original raw content, the compiled AST,
// and the derived variable catalog. Immutable once constructed.
type Value struct {
	// Raw is the original message content exactly as given.
	Raw string

	// Parsed is the compiled AST.
	Parsed *msgast.Document

	// Variables is the catalog derived from Parsed. It is nil only when the
	// visitor pass failed; the AST itself stays valid and usable.
	Variables *Variables

	// FilePosition is the source location, when known.
	FilePosition *FilePosition
}

// FromRaw parses content and derives its variable catalog eagerly. Parse
// failure is returned as-is; a visitor failure is soft and only leaves
// Variables nil.
func FromRaw(content string) (*Value, error) {
	doc, err := parser.Parse(content)
	if err != nil {
		return nil, err
	}

	variables, err := ExtractVariables(doc, symbol.Global())
	if err != nil {
		variables = nil
	}

	return &Value{
		Raw:       content,
		Parsed:    doc,
		Variables: variables,
	}, nil
}

// WithFilePosition returns the value annotated with its source location.
func (v *Value) WithFilePosition(position FilePosition) *Value {
	v.FilePosition = &position
	return v
}

// Equal reports message equality. Two values are equal when their raw
// content matches: everything else about a message is a deterministic
// function of that original string.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Raw == other.Raw
}
