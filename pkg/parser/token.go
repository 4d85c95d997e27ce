package parser

// tokenKind classifies a span produced by the tokenizer.
type tokenKind uint8

const (
	tokText tokenKind = iota
	tokWhitespace
	tokNewline
	tokEscaped        // '\' + ASCII punctuation
	tokEscapedNewline // '\' + newline (hard line break)
	tokStar           // run of '*'
	tokUnderscore     // run of '_'
	tokTilde          // run of '~'
	tokBacktick       // run of '`'
	tokBracketOpen
	tokBracketClose
	tokParenOpen
	tokParenClose
	tokCurlyOpen
	tokCurlyClose
	tokDollar
)

// token is a classified span of bytes in the fragment being parsed.
// Offsets index the fragment source, not the whole message.
type token struct {
	kind  tokenKind
	start int
	end   int
}

func (t token) len() int {
	return t.end - t.start
}

func (t token) text(src string) string {
	return src[t.start:t.end]
}
