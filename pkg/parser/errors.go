package parser

import "fmt"

// ParseError reports malformed token, delimiter, or ICU placeholder
// structure that cannot be degraded to literal text. Offset is the byte
// offset within the fragment being parsed.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Msg)
}

func parseErrorf(offset int, format string, args ...any) *ParseError {
	return &ParseError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
