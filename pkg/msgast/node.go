// Package msgast provides the AST representation for parsed intl messages.
// A message is a hybrid of markdown block/inline structure and ICU message
// placeholders. Nodes are recursive sum types: each variant exclusively owns
// its child sequences, and every consumer dispatches with an exhaustive type
// switch over the sealed variant set.
package msgast

// Document is the root of a parsed message: an ordered sequence of blocks.
// Immutable once constructed.
type Document struct {
	Blocks []BlockNode
}

// BlockNode is a block-level node. The sealed variant set is Paragraph,
// Heading, CodeBlock, ThematicBreak, and InlineBlock.
type BlockNode interface {
	blockNode()
}

// Paragraph is a run of inline content wrapped in a paragraph.
type Paragraph struct {
	Content []InlineContent
}

// Heading is an ATX heading. Level is always in [1, 6].
type Heading struct {
	Level   int
	Content []InlineContent
}

// CodeBlock holds the raw text of a fenced code block. The content is
// verbatim and is never re-parsed for inline constructs.
type CodeBlock struct {
	Content string
}

// ThematicBreak is a horizontal rule. It carries no payload.
type ThematicBreak struct{}

// InlineBlock is bare inline content not wrapped in a paragraph. It is
// produced when a message is parsed in inline-only mode.
type InlineBlock struct {
	Content []InlineContent
}

func (Paragraph) blockNode()     {}
func (Heading) blockNode()       {}
func (CodeBlock) blockNode()     {}
func (ThematicBreak) blockNode() {}
func (InlineBlock) blockNode()   {}

// InlineContent is an inline-level node. The sealed variant set is Text,
// Strong, Emphasis, Strikethrough, CodeSpan, HardLineBreak, Link, Hook,
// Icu, and IcuPound. Variants nest arbitrarily except where noted.
type InlineContent interface {
	inlineContent()
}

// Text is a literal text run. Content is already unescaped.
type Text struct {
	Content string
}

// Strong is strongly-emphasized content (`**bold**` or `__bold__`).
type Strong struct {
	Content []InlineContent
}

// Emphasis is emphasized content (`*italic*` or `_italic_`).
type Emphasis struct {
	Content []InlineContent
}

// Strikethrough is struck-through content (`~~deleted~~`).
type Strikethrough struct {
	Content []InlineContent
}

// CodeSpan holds the raw, unparsed text of an inline code span. The content
// is verbatim: it is never unescaped or re-parsed.
type CodeSpan struct {
	Content string
}

// HardLineBreak is an explicit line break. It carries no payload.
type HardLineBreak struct{}

// Link is an inline link. The label is arbitrary inline content; the
// destination is either literal text or a single ICU placeholder, never
// arbitrary inline content.
type Link struct {
	Label       []InlineContent
	Destination LinkDestination
}

// Hook is a named inline wrapper (`$[content](name)`) representing an
// application-supplied formatting function applied to nested content.
type Hook struct {
	Name    string
	Content []InlineContent
}

// Icu wraps an ICU placeholder node as inline content.
type Icu struct {
	Node IcuNode
}

// IcuPound is the `#` marker inside a plural arm, referencing the nearest
// enclosing plural's implicit numeric argument.
type IcuPound struct{}

func (Text) inlineContent()          {}
func (Strong) inlineContent()        {}
func (Emphasis) inlineContent()      {}
func (Strikethrough) inlineContent() {}
func (CodeSpan) inlineContent()      {}
func (HardLineBreak) inlineContent() {}
func (Link) inlineContent()          {}
func (Hook) inlineContent()          {}
func (Icu) inlineContent()           {}
func (IcuPound) inlineContent()      {}

// LinkDestination is the target of a Link: either TextDestination or
// PlaceholderDestination.
type LinkDestination interface {
	linkDestination()
}

// TextDestination is a literal link target.
type TextDestination struct {
	Text string
}

// PlaceholderDestination is a link target supplied by a single ICU
// placeholder at runtime.
type PlaceholderDestination struct {
	Node IcuNode
}

func (TextDestination) linkDestination()        {}
func (PlaceholderDestination) linkDestination() {}

// IcuNode is a typed ICU placeholder. The sealed variant set is IcuVariable,
// IcuPlural, IcuDate, IcuTime, and IcuNumber. Every variant carries a
// non-empty name.
type IcuNode interface {
	icuNode()
	// ArgName returns the placeholder's argument name.
	ArgName() string
}

// IcuVariable is a plain substitution placeholder: `{name}`.
type IcuVariable struct {
	Name string
}

// IcuPlural is a plural placeholder with one or more selector-labeled arms.
// Arms appear in source order. Selectors are opaque strings compared only
// for matching; they are not validated against a fixed keyword set.
type IcuPlural struct {
	Name string
	Arms []PluralArm
}

// PluralArm is one selector-labeled branch of a plural. Its content shares
// the full inline grammar and may contain IcuPound references.
type PluralArm struct {
	Selector string
	Content  []InlineContent
}

// IcuDate is a date placeholder: `{name, date}` or `{name, date, style}`.
// Style is an opaque pass-through, not semantically parsed.
type IcuDate struct {
	Name  string
	Style string
}

// IcuTime is a time placeholder, analogous to IcuDate.
type IcuTime struct {
	Name  string
	Style string
}

// IcuNumber is a number placeholder, analogous to IcuDate.
type IcuNumber struct {
	Name  string
	Style string
}

func (IcuVariable) icuNode() {}
func (IcuPlural) icuNode()   {}
func (IcuDate) icuNode()     {}
func (IcuTime) icuNode()     {}
func (IcuNumber) icuNode()   {}

func (n IcuVariable) ArgName() string { return n.Name }
func (n IcuPlural) ArgName() string   { return n.Name }
func (n IcuDate) ArgName() string     { return n.Name }
func (n IcuTime) ArgName() string     { return n.Name }
func (n IcuNumber) ArgName() string   { return n.Name }
