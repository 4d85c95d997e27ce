package msgast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPlainTextUnsupported is returned when plain-text flattening encounters
// a construct it cannot represent. Generic ICU placeholders have no defined
// plain-text rendering yet, and silently dropping their content would hide
// real message text; callers must handle this error explicitly.
var ErrPlainTextUnsupported = errors.New("plain-text formatting is not supported for ICU placeholders")

// FormatPlainText flattens an inline sequence to its visible text only.
// Formatting wrappers contribute their nested content recursively, links
// contribute their label (not their destination), code spans contribute
// their raw content verbatim, hard line breaks contribute nothing, and a
// pound reference contributes the literal `#`.
func FormatPlainText(content []InlineContent) (string, error) {
	var buffer strings.Builder
	if err := formatPlainTextInto(&buffer, content); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

// FormatDocumentPlainText flattens every block of a document in order.
// Block boundaries contribute nothing of their own.
func FormatDocumentPlainText(doc *Document) (string, error) {
	var buffer strings.Builder
	for _, block := range doc.Blocks {
		var err error
		switch b := block.(type) {
		case Paragraph:
			err = formatPlainTextInto(&buffer, b.Content)
		case Heading:
			err = formatPlainTextInto(&buffer, b.Content)
		case InlineBlock:
			err = formatPlainTextInto(&buffer, b.Content)
		case CodeBlock:
			buffer.WriteString(b.Content)
		case ThematicBreak:
			// No visible text.
		}
		if err != nil {
			return "", err
		}
	}
	return buffer.String(), nil
}

func formatPlainTextInto(buffer *strings.Builder, content []InlineContent) error {
	for _, node := range content {
		var err error
		switch inline := node.(type) {
		case Text:
			buffer.WriteString(inline.Content)
		case Strong:
			err = formatPlainTextInto(buffer, inline.Content)
		case Emphasis:
			err = formatPlainTextInto(buffer, inline.Content)
		case Strikethrough:
			err = formatPlainTextInto(buffer, inline.Content)
		case Hook:
			err = formatPlainTextInto(buffer, inline.Content)
		case Link:
			err = formatPlainTextInto(buffer, inline.Label)
		case CodeSpan:
			buffer.WriteString(inline.Content)
		case HardLineBreak:
			// No visible text.
		case IcuPound:
			buffer.WriteByte('#')
		case Icu:
			return fmt.Errorf("%w: {%s}", ErrPlainTextUnsupported, inline.Node.ArgName())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
