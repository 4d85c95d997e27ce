package msgast

// InlineWalkFunc is the callback signature for inline traversals.
// Return a non-nil error to stop the walk.
type InlineWalkFunc func(node InlineContent) error

// BlockWalkFunc is the callback signature for block traversals.
type BlockWalkFunc func(node BlockNode) error

// WalkBlocks calls fn for every block in the document, in order.
func WalkBlocks(doc *Document, fn BlockWalkFunc) error {
	if doc == nil {
		return nil
	}
	for _, block := range doc.Blocks {
		if err := fn(block); err != nil {
			return err
		}
	}
	return nil
}

// WalkInlines performs a pre-order traversal of an inline sequence,
// recursing into every nested sequence: emphasis, strong, strikethrough,
// hook content, link labels, and plural arm content. Link destinations are
// not inline content and are not visited.
func WalkInlines(content []InlineContent, fn InlineWalkFunc) error {
	for _, node := range content {
		if err := fn(node); err != nil {
			return err
		}

		var err error
		switch inline := node.(type) {
		case Strong:
			err = WalkInlines(inline.Content, fn)
		case Emphasis:
			err = WalkInlines(inline.Content, fn)
		case Strikethrough:
			err = WalkInlines(inline.Content, fn)
		case Hook:
			err = WalkInlines(inline.Content, fn)
		case Link:
			err = WalkInlines(inline.Label, fn)
		case Icu:
			if plural, ok := inline.Node.(IcuPlural); ok {
				for _, arm := range plural.Arms {
					if err = WalkInlines(arm.Content, fn); err != nil {
						break
					}
				}
			}
		case Text, CodeSpan, HardLineBreak, IcuPound:
			// Leaves.
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// WalkDocument walks every block and every inline node in the document.
// Either callback may be nil.
func WalkDocument(doc *Document, blockFn BlockWalkFunc, inlineFn InlineWalkFunc) error {
	if doc == nil {
		return nil
	}
	for _, block := range doc.Blocks {
		if blockFn != nil {
			if err := blockFn(block); err != nil {
				return err
			}
		}
		if inlineFn == nil {
			continue
		}

		var content []InlineContent
		switch b := block.(type) {
		case Paragraph:
			content = b.Content
		case Heading:
			content = b.Content
		case InlineBlock:
			content = b.Content
		case CodeBlock, ThematicBreak:
			continue
		}
		if err := WalkInlines(content, inlineFn); err != nil {
			return err
		}
	}
	return nil
}

// FindInlines returns all inline nodes in the document matching the
// predicate, in traversal order.
func FindInlines(doc *Document, predicate func(node InlineContent) bool) []InlineContent {
	var result []InlineContent

	//nolint:errcheck // the callback never returns an error
	WalkDocument(doc, nil, func(node InlineContent) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}
