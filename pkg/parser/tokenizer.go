package parser

// tokenizer performs a single-pass tokenization of one inline fragment.
// It fast-skips runs of insignificant bytes using the byte lookup tables and
// only inspects boundaries where punctuation, whitespace, or control
// characters could start a construct.
type tokenizer struct {
	src    string
	tokens []token
	pos    int
}

// tokenize converts a fragment into a token stream. Multi-byte UTF-8
// sequences are skipped whole so they can never be split; a malformed
// continuation sequence fails the parse.
func tokenize(src string) ([]token, error) {
	if len(src) == 0 {
		return nil, nil
	}

	tok := &tokenizer{
		src:    src,
		tokens: make([]token, 0, len(src)/4),
	}
	if err := tok.run(); err != nil {
		return nil, err
	}
	return tok.tokens, nil
}

func (t *tokenizer) run() error {
	for t.pos < len(t.src) {
		b := t.src[t.pos]
		if !byteIsSignificant(b) {
			if err := t.consumeText(); err != nil {
				return err
			}
			continue
		}

		switch b {
		case ' ', '\t', '\f':
			t.consumeRunOf(tokWhitespace, " \t\f")
		case '\n', '\r':
			t.consumeNewline()
		case '*':
			t.consumeRun(tokStar, '*')
		case '_':
			t.consumeRun(tokUnderscore, '_')
		case '~':
			t.consumeRun(tokTilde, '~')
		case '`':
			t.consumeRun(tokBacktick, '`')
		case '[':
			t.emitSingle(tokBracketOpen)
		case ']':
			t.emitSingle(tokBracketClose)
		case '(':
			t.emitSingle(tokParenOpen)
		case ')':
			t.emitSingle(tokParenClose)
		case '{':
			t.emitSingle(tokCurlyOpen)
		case '}':
			t.emitSingle(tokCurlyClose)
		case '$':
			t.emitSingle(tokDollar)
		case '\\':
			t.consumeEscape()
		default:
			// Significant when interrupting, but not a construct of its own
			// (quotes, angle brackets, ampersand, colon). Literal text.
			t.emitSingle(tokText)
		}
	}
	return nil
}

// consumeText consumes a maximal run of insignificant bytes.
func (t *tokenizer) consumeText() error {
	start := t.pos
	for t.pos < len(t.src) {
		b := t.src[t.pos]
		if b < 0x80 {
			if byteIsSignificant(b) {
				break
			}
			t.pos++
			continue
		}

		length := charLengthFromByte(b)
		if length == 0 || t.pos+length > len(t.src) {
			return parseErrorf(t.pos, "malformed UTF-8 sequence")
		}
		for i := t.pos + 1; i < t.pos+length; i++ {
			if t.src[i]&0xC0 != 0x80 {
				return parseErrorf(i, "malformed UTF-8 continuation byte")
			}
		}
		t.pos += length
	}
	t.emit(tokText, start, t.pos)
	return nil
}

// consumeNewline folds LF, CRLF, and bare CR into a single newline token.
func (t *tokenizer) consumeNewline() {
	start := t.pos
	if t.src[t.pos] == '\r' {
		t.pos++
		if t.pos < len(t.src) && t.src[t.pos] == '\n' {
			t.pos++
		}
	} else {
		t.pos++
	}
	t.emit(tokNewline, start, t.pos)
}

// consumeEscape handles a backslash. Backslash-punctuation becomes an
// escaped token, backslash-newline becomes a hard line break marker, and
// anything else leaves the backslash as literal text.
func (t *tokenizer) consumeEscape() {
	start := t.pos
	if t.pos+1 < len(t.src) {
		next := t.src[t.pos+1]
		switch {
		case next == '\n' || next == '\r':
			t.pos += 2
			if next == '\r' && t.pos < len(t.src) && t.src[t.pos] == '\n' {
				t.pos++
			}
			t.emit(tokEscapedNewline, start, t.pos)
			return
		case isEscapablePunctuation(next):
			t.pos += 2
			t.emit(tokEscaped, start, t.pos)
			return
		}
	}
	t.emitSingle(tokText)
}

func (t *tokenizer) consumeRun(kind tokenKind, marker byte) {
	start := t.pos
	for t.pos < len(t.src) && t.src[t.pos] == marker {
		t.pos++
	}
	t.emit(kind, start, t.pos)
}

func (t *tokenizer) consumeRunOf(kind tokenKind, set string) {
	start := t.pos
	for t.pos < len(t.src) && byteInSet(t.src[t.pos], set) {
		t.pos++
	}
	t.emit(kind, start, t.pos)
}

func (t *tokenizer) emit(kind tokenKind, start, end int) {
	t.tokens = append(t.tokens, token{kind: kind, start: start, end: end})
}

func (t *tokenizer) emitSingle(kind tokenKind) {
	t.emit(kind, t.pos, t.pos+1)
	t.pos++
}

func byteInSet(b byte, set string) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}

func isEscapablePunctuation(b byte) bool {
	return (b >= '!' && b <= '/') || (b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') || (b >= '{' && b <= '~')
}
