package parser

import (
	"strings"

	"github.com/yaklabco/intlmsg/pkg/msgast"
)

// ICU format keywords recognized after the argument name.
const (
	icuKeywordPlural = "plural"
	icuKeywordDate   = "date"
	icuKeywordTime   = "time"
	icuKeywordNumber = "number"
)

// parseIcuAt parses an ICU placeholder beginning at the `{` at src[start].
// It returns the parsed node and the offset just past the closing `}`.
// The placeholder grammar is a hard boundary: malformed syntax inside the
// braces is a ParseError, never demoted to literal text.
func parseIcuAt(src string, start int) (msgast.IcuNode, int, error) {
	pos := start + 1 // past '{'
	pos = skipIcuSpace(src, pos)

	name, pos := scanIcuName(src, pos)
	if name == "" {
		return nil, 0, parseErrorf(start, "ICU placeholder has an empty argument name")
	}

	pos = skipIcuSpace(src, pos)
	if pos >= len(src) {
		return nil, 0, parseErrorf(start, "unterminated ICU placeholder {%s", name)
	}

	switch src[pos] {
	case '}':
		return msgast.IcuVariable{Name: name}, pos + 1, nil
	case ',':
		return parseIcuFormat(src, start, name, pos+1)
	default:
		return nil, 0, parseErrorf(pos, "unexpected %q in ICU placeholder {%s", src[pos], name)
	}
}

// parseIcuFormat parses everything after `{name,`: a format keyword and its
// argument body.
func parseIcuFormat(src string, start int, name string, pos int) (msgast.IcuNode, int, error) {
	pos = skipIcuSpace(src, pos)
	keyword, pos := scanIcuName(src, pos)

	switch keyword {
	case icuKeywordPlural:
		return parseIcuPlural(src, start, name, pos)
	case icuKeywordDate, icuKeywordTime, icuKeywordNumber:
		style, end, err := parseIcuStyle(src, start, name, pos)
		if err != nil {
			return nil, 0, err
		}
		switch keyword {
		case icuKeywordDate:
			return msgast.IcuDate{Name: name, Style: style}, end, nil
		case icuKeywordTime:
			return msgast.IcuTime{Name: name, Style: style}, end, nil
		default:
			return msgast.IcuNumber{Name: name, Style: style}, end, nil
		}
	case "":
		return nil, 0, parseErrorf(pos, "missing format type in ICU placeholder {%s", name)
	default:
		return nil, 0, parseErrorf(pos, "unknown ICU format type %q in placeholder {%s", keyword, name)
	}
}

// parseIcuStyle parses the optional `, style` tail of a date/time/number
// placeholder. The style is opaque pass-through text, not semantically
// parsed here; downstream codegen interprets it.
func parseIcuStyle(src string, start int, name string, pos int) (string, int, error) {
	pos = skipIcuSpace(src, pos)
	if pos >= len(src) {
		return "", 0, parseErrorf(start, "unterminated ICU placeholder {%s", name)
	}

	switch src[pos] {
	case '}':
		return "", pos + 1, nil
	case ',':
		bodyStart := skipIcuSpace(src, pos+1)
		end, err := matchBrace(src, start, bodyStart)
		if err != nil {
			return "", 0, err
		}
		style := strings.TrimRight(src[bodyStart:end], " \t\r\n")
		return style, end + 1, nil
	default:
		return "", 0, parseErrorf(pos, "unexpected %q in ICU placeholder {%s", src[pos], name)
	}
}

// parseIcuPlural parses the arm list of a plural placeholder. Each arm is
// `selector { content }`; arm content shares the full inline grammar and is
// parsed recursively with `#` enabled as a pound reference.
func parseIcuPlural(src string, start int, name string, pos int) (msgast.IcuNode, int, error) {
	// The comma between the keyword and the first arm is conventional but
	// optional.
	pos = skipIcuSpace(src, pos)
	if pos < len(src) && src[pos] == ',' {
		pos++
	}

	var arms []msgast.PluralArm
	for {
		pos = skipIcuSpace(src, pos)
		if pos >= len(src) {
			return nil, 0, parseErrorf(start, "unterminated ICU plural {%s", name)
		}
		if src[pos] == '}' {
			if len(arms) == 0 {
				return nil, 0, parseErrorf(start, "ICU plural {%s has no arms", name)
			}
			return msgast.IcuPlural{Name: name, Arms: arms}, pos + 1, nil
		}

		selector, next := scanIcuSelector(src, pos)
		if selector == "" {
			return nil, 0, parseErrorf(pos, "ICU plural {%s has an invalid arm selector", name)
		}
		pos = skipIcuSpace(src, next)
		if pos >= len(src) || src[pos] != '{' {
			return nil, 0, parseErrorf(pos, "ICU plural {%s arm %q is missing its content block", name, selector)
		}

		contentStart := pos + 1
		contentEnd, err := matchArmBrace(src, pos)
		if err != nil {
			return nil, 0, err
		}

		content, err := parseInlineFragment(src[contentStart:contentEnd], true)
		if err != nil {
			return nil, 0, err
		}

		arms = append(arms, msgast.PluralArm{Selector: selector, Content: content})
		pos = contentEnd + 1
	}
}

// matchBrace finds the `}` closing the placeholder that began at start,
// scanning from pos. Backslash escapes are skipped and nested braces are
// balanced.
func matchBrace(src string, start, pos int) (int, error) {
	depth := 0
	for pos < len(src) {
		switch src[pos] {
		case '\\':
			pos++
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return pos, nil
			}
			depth--
		}
		pos++
	}
	return 0, parseErrorf(start, "unterminated ICU placeholder")
}

// matchArmBrace finds the `}` closing the arm content block whose `{` is at
// open.
func matchArmBrace(src string, open int) (int, error) {
	end, err := matchBrace(src, open, open+1)
	if err != nil {
		return 0, parseErrorf(open, "unterminated ICU plural arm")
	}
	return end, nil
}

// scanIcuName reads an argument or keyword name: everything up to
// whitespace, a comma, or a brace.
func scanIcuName(src string, pos int) (string, int) {
	start := pos
	for pos < len(src) {
		b := src[pos]
		if b == ',' || b == '{' || b == '}' || isIcuSpace(b) {
			break
		}
		pos++
	}
	return src[start:pos], pos
}

// scanIcuSelector reads an arm selector. Selectors are opaque strings (the
// exact-match form `=1` is as valid as the keyword `other`); they end at
// whitespace or the arm's opening brace.
func scanIcuSelector(src string, pos int) (string, int) {
	start := pos
	for pos < len(src) {
		b := src[pos]
		if b == '{' || b == '}' || isIcuSpace(b) {
			break
		}
		pos++
	}
	return src[start:pos], pos
}

func skipIcuSpace(src string, pos int) int {
	for pos < len(src) && isIcuSpace(src[pos]) {
		pos++
	}
	return pos
}

func isIcuSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
