package msgast

import "encoding/json"

// MarshalJSON renders the document as a kind-tagged JSON tree, suitable for
// snapshotting and CLI output. The encoding is one-way; documents are only
// ever constructed by parsing raw message text.
func (d *Document) MarshalJSON() ([]byte, error) {
	blocks := make([]any, 0, len(d.Blocks))
	for _, block := range d.Blocks {
		blocks = append(blocks, blockJSON(block))
	}
	return json.Marshal(map[string]any{"kind": "document", "blocks": blocks})
}

func blockJSON(block BlockNode) map[string]any {
	switch b := block.(type) {
	case Paragraph:
		return map[string]any{"kind": "paragraph", "content": inlinesJSON(b.Content)}
	case Heading:
		return map[string]any{"kind": "heading", "level": b.Level, "content": inlinesJSON(b.Content)}
	case CodeBlock:
		return map[string]any{"kind": "codeBlock", "content": b.Content}
	case ThematicBreak:
		return map[string]any{"kind": "thematicBreak"}
	case InlineBlock:
		return map[string]any{"kind": "inlineContent", "content": inlinesJSON(b.Content)}
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func inlinesJSON(content []InlineContent) []any {
	result := make([]any, 0, len(content))
	for _, node := range content {
		result = append(result, inlineJSON(node))
	}
	return result
}

func inlineJSON(node InlineContent) map[string]any {
	switch inline := node.(type) {
	case Text:
		return map[string]any{"kind": "text", "content": inline.Content}
	case Strong:
		return map[string]any{"kind": "strong", "content": inlinesJSON(inline.Content)}
	case Emphasis:
		return map[string]any{"kind": "emphasis", "content": inlinesJSON(inline.Content)}
	case Strikethrough:
		return map[string]any{"kind": "strikethrough", "content": inlinesJSON(inline.Content)}
	case CodeSpan:
		return map[string]any{"kind": "codeSpan", "content": inline.Content}
	case HardLineBreak:
		return map[string]any{"kind": "hardLineBreak"}
	case Link:
		return map[string]any{
			"kind":        "link",
			"label":       inlinesJSON(inline.Label),
			"destination": destinationJSON(inline.Destination),
		}
	case Hook:
		return map[string]any{"kind": "hook", "name": inline.Name, "content": inlinesJSON(inline.Content)}
	case Icu:
		return icuJSON(inline.Node)
	case IcuPound:
		return map[string]any{"kind": "icuPound"}
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func destinationJSON(dest LinkDestination) map[string]any {
	switch d := dest.(type) {
	case TextDestination:
		return map[string]any{"kind": "text", "text": d.Text}
	case PlaceholderDestination:
		return map[string]any{"kind": "placeholder", "node": icuJSON(d.Node)}
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func icuJSON(node IcuNode) map[string]any {
	switch icu := node.(type) {
	case IcuVariable:
		return map[string]any{"kind": "icuVariable", "name": icu.Name}
	case IcuPlural:
		arms := make([]any, 0, len(icu.Arms))
		for _, arm := range icu.Arms {
			arms = append(arms, map[string]any{
				"selector": arm.Selector,
				"content":  inlinesJSON(arm.Content),
			})
		}
		return map[string]any{"kind": "icuPlural", "name": icu.Name, "arms": arms}
	case IcuDate:
		return icuFormatJSON("icuDate", icu.Name, icu.Style)
	case IcuTime:
		return icuFormatJSON("icuTime", icu.Name, icu.Style)
	case IcuNumber:
		return icuFormatJSON("icuNumber", icu.Name, icu.Style)
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func icuFormatJSON(kind, name, style string) map[string]any {
	result := map[string]any{"kind": kind, "name": name}
	if style != "" {
		result["style"] = style
	}
	return result
}
