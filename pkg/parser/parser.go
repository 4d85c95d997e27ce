package parser

import (
	"strings"

	"github.com/yaklabco/intlmsg/pkg/msgast"
)

// Parse converts raw message text into a Document. Block-level splitting
// happens first (blank lines, heading markers, code fences, thematic
// breaks), then each block's inline content is parsed independently.
// Malformed inline markers degrade to literal text; malformed ICU
// placeholder syntax and invalid UTF-8 are hard errors.
func Parse(raw string) (*msgast.Document, error) {
	lines := splitLines(raw)
	blocks := make([]msgast.BlockNode, 0, 1)

	var paragraph []string
	flushParagraph := func() error {
		if len(paragraph) == 0 {
			return nil
		}
		content, err := parseInlineFragment(strings.Join(paragraph, "\n"), false)
		if err != nil {
			return err
		}
		blocks = append(blocks, msgast.Paragraph{Content: content})
		paragraph = nil
		return nil
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if isBlankLine(line) {
			if err := flushParagraph(); err != nil {
				return nil, err
			}
			continue
		}

		if level, rest, ok := matchHeading(line); ok {
			if err := flushParagraph(); err != nil {
				return nil, err
			}
			content, err := parseInlineFragment(rest, false)
			if err != nil {
				return nil, err
			}
			blocks = append(blocks, msgast.Heading{Level: level, Content: content})
			continue
		}

		if fence, ok := matchCodeFence(line); ok {
			if err := flushParagraph(); err != nil {
				return nil, err
			}
			var body []string
			i++
			for ; i < len(lines); i++ {
				if closesCodeFence(lines[i], fence) {
					break
				}
				body = append(body, lines[i])
			}
			content := ""
			if len(body) > 0 {
				content = strings.Join(body, "\n") + "\n"
			}
			blocks = append(blocks, msgast.CodeBlock{Content: content})
			continue
		}

		if isThematicBreak(line) {
			if err := flushParagraph(); err != nil {
				return nil, err
			}
			blocks = append(blocks, msgast.ThematicBreak{})
			continue
		}

		paragraph = append(paragraph, line)
	}

	if err := flushParagraph(); err != nil {
		return nil, err
	}
	return &msgast.Document{Blocks: blocks}, nil
}

// ParseInline parses raw text as a single bare inline sequence, never
// splitting blocks. The document holds one InlineBlock. Used for messages
// that are known to be inline-only.
func ParseInline(raw string) (*msgast.Document, error) {
	content, err := parseInlineFragment(raw, false)
	if err != nil {
		return nil, err
	}
	return &msgast.Document{
		Blocks: []msgast.BlockNode{msgast.InlineBlock{Content: content}},
	}, nil
}

// splitLines splits on LF, trimming a CR left behind by CRLF endings.
// Trailing spaces stay: the inline phase needs them for hard line breaks.
func splitLines(raw string) []string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A trailing newline produces a final empty element that is not a line.
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isBlankLine(line string) bool {
	return strings.TrimRight(line, " \t\f") == ""
}

// matchHeading recognizes an ATX heading: one to six `#` characters followed
// by a space, tab, or end of line. The optional closing `#` run is stripped.
func matchHeading(line string) (level int, rest string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0, "", false
	}
	if level < len(line) && line[level] != ' ' && line[level] != '\t' {
		return 0, "", false
	}

	rest = strings.TrimLeft(line[level:], " \t")
	// Strip a trailing closing sequence: whitespace, then a `#` run.
	trimmed := strings.TrimRight(rest, " \t")
	hashEnd := len(trimmed)
	for hashEnd > 0 && trimmed[hashEnd-1] == '#' {
		hashEnd--
	}
	if hashEnd < len(trimmed) && (hashEnd == 0 || trimmed[hashEnd-1] == ' ' || trimmed[hashEnd-1] == '\t') {
		rest = strings.TrimRight(trimmed[:hashEnd], " \t")
	} else {
		rest = trimmed
	}
	return level, rest, true
}

// matchCodeFence recognizes an opening fence of three or more backticks or
// tildes. The info string after the fence is discarded: code block content
// is opaque to the message grammar.
func matchCodeFence(line string) (fence string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	if len(trimmed) < 3 {
		return "", false
	}
	marker := trimmed[0]
	if marker != '`' && marker != '~' {
		return "", false
	}
	count := 0
	for count < len(trimmed) && trimmed[count] == marker {
		count++
	}
	if count < 3 {
		return "", false
	}
	return trimmed[:count], true
}

func closesCodeFence(line, fence string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fence) {
		return false
	}
	return strings.TrimRight(trimmed, string(fence[0])) == ""
}

// isThematicBreak recognizes a line of three or more matching `-`, `_`, or
// `*` characters, optionally interleaved with spaces.
func isThematicBreak(line string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '_' && marker != '*' {
		return false
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}
