package msgast

import (
	"fmt"
	"strings"
)

// Unescape removes backslash escapes and carriage returns from text in a
// single left-to-right pass. A backslash immediately followed by an ASCII
// punctuation byte drops the backslash and keeps the punctuation literal;
// a bare carriage return is dropped (normalizing line endings); all other
// bytes pass through unchanged. Operates on byte offsets, but only ever
// splits at ASCII boundaries, so multi-byte sequences are never broken.
func Unescape(text string) string {
	var result strings.Builder
	index := 0
	plaintextStart := 0
	for index < len(text) {
		switch text[index] {
		case '\\':
			// Only punctuation can be escaped with a backslash; all other
			// backslashes in plain text are preserved as is.
			if index+1 < len(text) && isASCIIPunctuation(text[index+1]) {
				result.WriteString(text[plaintextStart:index])
				plaintextStart = index + 1
				index++
			}
		case '\r':
			result.WriteString(text[plaintextStart:index])
			plaintextStart = index + 1
		}
		index++
	}

	result.WriteString(text[plaintextStart:index])
	return result.String()
}

func isASCIIPunctuation(b byte) bool {
	return (b >= '!' && b <= '/') || (b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') || (b >= '{' && b <= '~')
}

// hrefSafe marks the ascii characters that are safe to preserve in a url.
// Taken from pulldown-cmark's escape tables so href output matches the
// CommonMark reference output byte for byte.
var hrefSafe = [128]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 1, 0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 0, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 1,
	0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 1, 0,
}

// EscapeHref percent-encodes every byte of every character that is
// non-ASCII or not in the href-safe table, with one exception: `&` is
// rewritten to the literal entity `&amp;` rather than percent-encoded.
// Deterministic, order-preserving, single pass.
func EscapeHref(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for index, char := range text {
		if char < 128 && hrefSafe[char] != 0 {
			result.WriteRune(char)
			continue
		}
		if char == '&' {
			result.WriteString("&amp;")
			continue
		}
		for byteIndex := index; byteIndex < index+len(string(char)); byteIndex++ {
			fmt.Fprintf(&result, "%%%02X", text[byteIndex])
		}
	}
	return result.String()
}

// EscapeBodyText replaces `<`, `>`, `"`, and `&` with their named HTML
// entities. All other characters pass through unchanged.
func EscapeBodyText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, char := range text {
		switch char {
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&quot;")
		case '&':
			result.WriteString("&amp;")
		default:
			result.WriteRune(char)
		}
	}
	return result.String()
}
