// Package parser implements the markdown + ICU message grammar. It converts
// raw message text into a msgast.Document: a tokenizer classifies bytes into
// spans, a block phase splits the text on structural markers, and an inline
// phase resolves emphasis, code spans, links, hooks, and ICU placeholders.
package parser

// tokenSignificantBytes marks each byte that could start or end a token when
// it interrupts textual content. This is effectively punctuation, whitespace,
// and control characters used by the grammar. A byte outside this set can
// never be significant: the dash in `two-part` stays inside its text run.
//
// Whitespace in this context is considered significant.
var tokenSignificantBytes = [256]uint8{
	'\t': 1, '\n': 1, '\f': 1, '\r': 1, ' ': 1,
	'"': 1, '$': 1, '&': 1, '\'': 1, '(': 1, ')': 1, '*': 1, ':': 1,
	'<': 1, '>': 1, '[': 1, '\\': 1, ']': 1, '_': 1, '`': 1,
	'{': 1, '}': 1, '~': 1,
}

// byteIsSignificant reports whether the byte can begin a new kind of token.
func byteIsSignificant(b byte) bool {
	return tokenSignificantBytes[b] != 0
}

// utf8LengthLookup maps the top five bits of a lead byte to the byte length
// of its UTF-8 sequence. Continuation bytes map to 0.
// Learned from: https://nullprogram.com/blog/2017/10/06/
var utf8LengthLookup = [32]int{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 2, 2, 3, 3, 4, 0,
}

// charLengthFromByte returns the byte length of the complete UTF-8 code
// point that starts with b, without decoding the rune. Returns 0 for bytes
// that cannot start a sequence.
func charLengthFromByte(b byte) int {
	return utf8LengthLookup[b>>3]
}
