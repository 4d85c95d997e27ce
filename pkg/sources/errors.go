package sources

import (
	"errors"
	"fmt"
)

// SourceFileKind distinguishes the two kinds of message source files.
type SourceFileKind string

const (
	// KindDefinition is an original-language message declaration file.
	KindDefinition SourceFileKind = "definition"

	// KindTranslation is a localized rendering of defined message keys.
	KindTranslation SourceFileKind = "translation"
)

// Sentinel errors for message source handling. Callers match them with
// errors.Is; wrapped forms carry the offending message or file name.
var (
	// ErrParse wraps a parse failure for a single message, identifying
	// which kind of source was being parsed.
	ErrParse = errors.New("failed to parse message source")

	// ErrDefinitionRestriction reports a structurally valid parse that
	// violates a semantic rule specific to definitions.
	ErrDefinitionRestriction = errors.New("semantic restriction for definitions was violated")

	// ErrTranslationRestriction reports a structurally valid parse that
	// violates a semantic rule specific to translations.
	ErrTranslationRestriction = errors.New("semantic restriction for translations was violated")

	// ErrNoMessageValue reports a record extracted with no value content.
	ErrNoMessageValue = errors.New("message did not contain a message value")

	// ErrInvalidSourceFileMeta reports a structurally invalid source file
	// meta descriptor.
	ErrInvalidSourceFileMeta = errors.New("source file meta descriptor is invalid")

	// ErrInvalidMessageMeta reports a structurally invalid message meta
	// descriptor.
	ErrInvalidMessageMeta = errors.New("message meta descriptor is invalid")

	// ErrNoMessagesFound reports a source file that was expected to contain
	// at least one message but contained none.
	ErrNoMessagesFound = errors.New("expected to encounter at least 1 message in the source file, but none were found")
)

// parseError wraps err with the source kind and message name it occurred
// in. One failed message never aborts the processing of its batch; callers
// collect per-message results independently.
func parseError(kind SourceFileKind, name string, err error) error {
	return fmt.Errorf("%w: message %s in %s source: %w", ErrParse, name, kind, err)
}
