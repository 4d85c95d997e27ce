package parser

import (
	"strings"

	"github.com/yaklabco/intlmsg/pkg/msgast"
)

// delimiter tracks a pending emphasis/strong/strikethrough marker run while
// inline content is assembled. Its literal text sits in the output list as a
// placeholder until a matching closer arrives; leftovers stay literal.
type delimiter struct {
	char      byte
	remaining int
	canOpen   bool
	canClose  bool
	outIndex  int
}

// inlineParser assembles a single inline sequence from a token stream.
// pound enables `#` as an IcuPound reference (inside plural arms).
type inlineParser struct {
	src   string
	toks  []token
	pound bool
	out   []msgast.InlineContent
	stack []*delimiter
}

// parseInlineFragment tokenizes and parses one inline fragment.
func parseInlineFragment(src string, pound bool) ([]msgast.InlineContent, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return parseInlineTokens(src, toks, pound)
}

// parseInlineTokens parses a token slice into inline content. Delimiter
// resolution is scoped to the slice: markers never match across a link
// label or plural arm boundary.
func parseInlineTokens(src string, toks []token, pound bool) ([]msgast.InlineContent, error) {
	p := &inlineParser{src: src, toks: toks, pound: pound}
	if err := p.run(); err != nil {
		return nil, err
	}
	return mergeAdjacentText(p.out), nil
}

func (p *inlineParser) run() error {
	idx := 0
	for idx < len(p.toks) {
		t := p.toks[idx]
		switch t.kind {
		case tokText, tokWhitespace:
			p.appendText(t.text(p.src))
			idx++
		case tokNewline:
			p.appendNewline()
			idx++
		case tokEscaped:
			// Drop the backslash, keep the punctuation literal.
			p.appendLiteral(p.src[t.start+1 : t.end])
			idx++
		case tokEscapedNewline:
			p.out = append(p.out, msgast.HardLineBreak{})
			idx++
		case tokBacktick:
			idx = p.parseCodeSpan(idx)
		case tokStar, tokUnderscore, tokTilde:
			p.handleDelimiter(t)
			idx++
		case tokBracketOpen:
			next, ok, err := p.tryLink(idx)
			if err != nil {
				return err
			}
			if ok {
				idx = next
			} else {
				p.appendLiteral("[")
				idx++
			}
		case tokDollar:
			next, ok, err := p.tryHook(idx)
			if err != nil {
				return err
			}
			if ok {
				idx = next
			} else {
				p.appendLiteral("$")
				idx++
			}
		case tokCurlyOpen:
			node, end, err := parseIcuAt(p.src, t.start)
			if err != nil {
				return err
			}
			p.out = append(p.out, msgast.Icu{Node: node})
			for idx < len(p.toks) && p.toks[idx].start < end {
				idx++
			}
		case tokBracketClose, tokParenOpen, tokParenClose, tokCurlyClose:
			// Stray closers are literal text.
			p.appendLiteral(t.text(p.src))
			idx++
		}
	}
	return nil
}

// appendText appends literal text, splitting out `#` pound references when
// parsing inside a plural arm.
func (p *inlineParser) appendText(content string) {
	if content == "" {
		return
	}
	if !p.pound || !strings.Contains(content, "#") {
		p.out = append(p.out, msgast.Text{Content: content})
		return
	}
	for len(content) > 0 {
		hash := strings.IndexByte(content, '#')
		if hash < 0 {
			p.out = append(p.out, msgast.Text{Content: content})
			return
		}
		if hash > 0 {
			p.out = append(p.out, msgast.Text{Content: content[:hash]})
		}
		p.out = append(p.out, msgast.IcuPound{})
		content = content[hash+1:]
	}
}

// appendLiteral appends text verbatim, bypassing pound splitting.
func (p *inlineParser) appendLiteral(content string) {
	if content != "" {
		p.out = append(p.out, msgast.Text{Content: content})
	}
}

// appendNewline emits either a hard line break (when the preceding text ends
// in two or more spaces) or a literal newline.
func (p *inlineParser) appendNewline() {
	if len(p.out) > 0 {
		if text, ok := p.out[len(p.out)-1].(msgast.Text); ok && !p.isPlaceholder(len(p.out)-1) {
			trimmed := strings.TrimRight(text.Content, " \t")
			if len(text.Content)-len(trimmed) >= 2 {
				if trimmed == "" {
					p.out = p.out[:len(p.out)-1]
				} else {
					p.out[len(p.out)-1] = msgast.Text{Content: trimmed}
				}
				p.out = append(p.out, msgast.HardLineBreak{})
				return
			}
		}
	}
	p.out = append(p.out, msgast.Text{Content: "\n"})
}

// isPlaceholder reports whether the output node at index is a pending
// delimiter placeholder that must not be rewritten.
func (p *inlineParser) isPlaceholder(index int) bool {
	for _, d := range p.stack {
		if d.outIndex == index {
			return true
		}
	}
	return false
}

// parseCodeSpan resolves a backtick run. A matching closing run of the same
// length makes everything between a verbatim code span; otherwise the run is
// literal text. Returns the next token index.
func (p *inlineParser) parseCodeSpan(idx int) int {
	open := p.toks[idx]
	for j := idx + 1; j < len(p.toks); j++ {
		t := p.toks[j]
		if t.kind == tokBacktick && t.len() == open.len() {
			p.out = append(p.out, msgast.CodeSpan{Content: p.src[open.end:t.start]})
			return j + 1
		}
	}
	p.appendLiteral(open.text(p.src))
	return idx + 1
}

// handleDelimiter processes an emphasis marker run: close what it can
// against the opener stack, then leave any remainder as a literal
// placeholder that may still open a construct.
func (p *inlineParser) handleDelimiter(t token) {
	char := p.src[t.start]
	if char == '~' && t.len() < 2 {
		p.appendText(t.text(p.src))
		return
	}

	d := &delimiter{
		char:      char,
		remaining: t.len(),
		canOpen:   t.end < len(p.src) && !isInlineSpace(p.src[t.end]),
		canClose:  t.start > 0 && !isInlineSpace(p.src[t.start-1]),
	}

	if d.canClose {
		p.closeAgainstStack(d)
	}
	if d.remaining > 0 {
		d.outIndex = len(p.out)
		p.out = append(p.out, msgast.Text{Content: strings.Repeat(string(char), d.remaining)})
		if d.canOpen {
			p.stack = append(p.stack, d)
		}
	}
}

// closeAgainstStack matches a closing run against the nearest same-character
// opener, innermost first. Run lengths decide binding: two characters from
// each side bind strong (or strikethrough for `~~`), one binds emphasis.
// Openers skipped over are demoted to literal text.
func (p *inlineParser) closeAgainstStack(d *delimiter) {
	for d.remaining > 0 {
		openerIndex := p.findOpener(d.char)
		if openerIndex < 0 {
			return
		}
		opener := p.stack[openerIndex]

		use := 1
		if d.char == '~' {
			if d.remaining < 2 || opener.remaining < 2 {
				return
			}
			use = 2
		} else if d.remaining >= 2 && opener.remaining >= 2 {
			use = 2
		}

		// Openers above the matched one can no longer close; they stay as
		// the literal text already in the output.
		p.stack = p.stack[:openerIndex+1]

		content := make([]msgast.InlineContent, len(p.out)-opener.outIndex-1)
		copy(content, p.out[opener.outIndex+1:])
		content = mergeAdjacentText(content)

		var node msgast.InlineContent
		switch {
		case d.char == '~':
			node = msgast.Strikethrough{Content: content}
		case use == 2:
			node = msgast.Strong{Content: content}
		default:
			node = msgast.Emphasis{Content: content}
		}

		opener.remaining -= use
		d.remaining -= use

		if opener.remaining == 0 {
			p.out = p.out[:opener.outIndex]
			p.stack = p.stack[:openerIndex]
		} else {
			p.out = p.out[:opener.outIndex+1]
			p.out[opener.outIndex] = msgast.Text{Content: strings.Repeat(string(opener.char), opener.remaining)}
		}
		p.out = append(p.out, node)
	}
}

func (p *inlineParser) findOpener(char byte) int {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].char == char && p.stack[i].remaining > 0 {
			return i
		}
	}
	return -1
}

// tryLink parses `[label](destination)` starting at the bracket token at
// idx. Returns the next token index and whether a link was produced; any
// malformed structure short of a hard ICU error degrades by leaving the
// bracket literal.
func (p *inlineParser) tryLink(idx int) (int, bool, error) {
	close, paren, pclose, ok := p.scanLinkShape(idx)
	if !ok {
		return 0, false, nil
	}

	label, err := parseInlineTokens(p.src, p.toks[idx+1:close], p.pound)
	if err != nil {
		return 0, false, err
	}

	dest, err := p.parseDestination(p.toks[paren+1 : pclose])
	if err != nil {
		return 0, false, err
	}

	p.out = append(p.out, msgast.Link{Label: label, Destination: dest})
	return pclose + 1, true, nil
}

// tryHook parses `$[content](name)` starting at the dollar token at idx.
func (p *inlineParser) tryHook(idx int) (int, bool, error) {
	if idx+1 >= len(p.toks) || p.toks[idx+1].kind != tokBracketOpen {
		return 0, false, nil
	}

	close, paren, pclose, ok := p.scanLinkShape(idx + 1)
	if !ok {
		return 0, false, nil
	}

	name := strings.TrimSpace(p.tokenRangeText(paren+1, pclose))
	if name == "" {
		return 0, false, nil
	}

	content, err := parseInlineTokens(p.src, p.toks[idx+2:close], p.pound)
	if err != nil {
		return 0, false, err
	}

	p.out = append(p.out, msgast.Hook{Name: name, Content: content})
	return pclose + 1, true, nil
}

// scanLinkShape locates the structural tokens of a `[...](...)` form whose
// opening bracket is at idx: the closing bracket, the opening paren (which
// must be adjacent to the closing bracket), and the closing paren.
func (p *inlineParser) scanLinkShape(idx int) (close, paren, pclose int, ok bool) {
	depth := 1
	close = -1
	for j := idx + 1; j < len(p.toks); j++ {
		switch p.toks[j].kind {
		case tokBracketOpen:
			depth++
		case tokBracketClose:
			depth--
			if depth == 0 {
				close = j
			}
		}
		if close >= 0 {
			break
		}
	}
	if close < 0 || close+1 >= len(p.toks) {
		return 0, 0, 0, false
	}

	paren = close + 1
	if p.toks[paren].kind != tokParenOpen || p.toks[paren].start != p.toks[close].end {
		return 0, 0, 0, false
	}

	pdepth := 1
	for j := paren + 1; j < len(p.toks); j++ {
		switch p.toks[j].kind {
		case tokParenOpen:
			pdepth++
		case tokParenClose:
			pdepth--
			if pdepth == 0 {
				return close, paren, j, true
			}
		}
	}
	return 0, 0, 0, false
}

// parseDestination interprets the tokens between a link's parens: either a
// single ICU placeholder or literal text (unescaped).
func (p *inlineParser) parseDestination(toks []token) (msgast.LinkDestination, error) {
	toks = trimWhitespaceTokens(toks)
	if len(toks) == 0 {
		return msgast.TextDestination{}, nil
	}

	if toks[0].kind == tokCurlyOpen {
		node, end, err := parseIcuAt(p.src, toks[0].start)
		if err != nil {
			return nil, err
		}
		if end >= toks[len(toks)-1].end {
			return msgast.PlaceholderDestination{Node: node}, nil
		}
		// Trailing junk after the placeholder: fall through to literal.
	}

	raw := p.src[toks[0].start:toks[len(toks)-1].end]
	return msgast.TextDestination{Text: msgast.Unescape(raw)}, nil
}

func (p *inlineParser) tokenRangeText(from, to int) string {
	if from >= to {
		return ""
	}
	return p.src[p.toks[from].start:p.toks[to-1].end]
}

func trimWhitespaceTokens(toks []token) []token {
	for len(toks) > 0 && (toks[0].kind == tokWhitespace || toks[0].kind == tokNewline) {
		toks = toks[1:]
	}
	for len(toks) > 0 {
		last := toks[len(toks)-1].kind
		if last != tokWhitespace && last != tokNewline {
			break
		}
		toks = toks[:len(toks)-1]
	}
	return toks
}

// mergeAdjacentText collapses neighboring text nodes and drops empty ones so
// resolved delimiters and escapes read back as single literal runs.
func mergeAdjacentText(content []msgast.InlineContent) []msgast.InlineContent {
	if len(content) == 0 {
		return nil
	}
	result := make([]msgast.InlineContent, 0, len(content))
	for _, node := range content {
		text, isText := node.(msgast.Text)
		if isText && text.Content == "" {
			continue
		}
		if isText && len(result) > 0 {
			if prev, ok := result[len(result)-1].(msgast.Text); ok {
				result[len(result)-1] = msgast.Text{Content: prev.Content + text.Content}
				continue
			}
		}
		result = append(result, node)
	}
	return result
}

func isInlineSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
