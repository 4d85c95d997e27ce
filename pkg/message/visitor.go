package message

import (
	"fmt"

	"github.com/yaklabco/intlmsg/pkg/msgast"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// ExtractVariables walks a document and records one VariableInstance per
// variable occurrence. Markdown structure introduces hook-function
// variables under fixed names (a paragraph needs a `p` hook, strong content
// a `b` hook, and so on); ICU placeholders introduce variables under their
// own names with types inferred from the placeholder kind.
func ExtractVariables(doc *msgast.Document, interner *symbol.Interner) (*Variables, error) {
	visitor := &variableVisitor{interner: interner, variables: NewVariables()}
	for _, block := range doc.Blocks {
		if err := visitor.visitBlock(block); err != nil {
			return nil, err
		}
	}
	return visitor.variables, nil
}

type variableVisitor struct {
	interner  *symbol.Interner
	variables *Variables
}

func (v *variableVisitor) add(name string, kind VariableType) {
	v.variables.Add(v.interner.Intern(name), kind, nil)
}

func (v *variableVisitor) visitBlock(block msgast.BlockNode) error {
	switch b := block.(type) {
	case msgast.InlineBlock:
		return v.visitInlineChildren(b.Content)
	case msgast.Paragraph:
		v.add("p", TypeHookFunction)
		return v.visitInlineChildren(b.Content)
	case msgast.Heading:
		v.add(fmt.Sprintf("h%d", b.Level), TypeHookFunction)
		return v.visitInlineChildren(b.Content)
	case msgast.CodeBlock:
		// Code blocks cannot contain variables; only the wrapping hook.
		v.add("codeBlock", TypeHookFunction)
		return nil
	case msgast.ThematicBreak:
		v.add("hr", TypeHookFunction)
		return nil
	default:
		return fmt.Errorf("unhandled block node %T", block)
	}
}

func (v *variableVisitor) visitInlineChildren(content []msgast.InlineContent) error {
	for _, child := range content {
		if err := v.visitInline(child); err != nil {
			return err
		}
	}
	return nil
}

func (v *variableVisitor) visitInline(node msgast.InlineContent) error {
	switch inline := node.(type) {
	case msgast.Text:
		return nil
	case msgast.IcuPound:
		// `#` only references the enclosing plural's argument; it adds
		// nothing new to the catalog.
		return nil
	case msgast.Icu:
		return v.visitIcu(inline.Node)
	case msgast.Emphasis:
		v.add("i", TypeHookFunction)
		return v.visitInlineChildren(inline.Content)
	case msgast.Strong:
		v.add("b", TypeHookFunction)
		return v.visitInlineChildren(inline.Content)
	case msgast.Strikethrough:
		v.add("del", TypeHookFunction)
		return v.visitInlineChildren(inline.Content)
	case msgast.HardLineBreak:
		v.add("br", TypeHookFunction)
		return nil
	case msgast.CodeSpan:
		v.add("code", TypeHookFunction)
		return nil
	case msgast.Hook:
		v.add(inline.Name, TypeHookFunction)
		return v.visitInlineChildren(inline.Content)
	case msgast.Link:
		v.add("link", TypeLinkFunction)
		if err := v.visitInlineChildren(inline.Label); err != nil {
			return err
		}
		if placeholder, ok := inline.Destination.(msgast.PlaceholderDestination); ok {
			return v.visitIcu(placeholder.Node)
		}
		return nil
	default:
		return fmt.Errorf("unhandled inline node %T", node)
	}
}

func (v *variableVisitor) visitIcu(node msgast.IcuNode) error {
	switch icu := node.(type) {
	case msgast.IcuVariable:
		v.add(icu.Name, TypeAny)
		return nil
	case msgast.IcuPlural:
		v.add(icu.Name, TypePlural)
		for _, arm := range icu.Arms {
			if err := v.visitInlineChildren(arm.Content); err != nil {
				return err
			}
		}
		return nil
	case msgast.IcuDate:
		v.add(icu.Name, TypeDate)
		return nil
	case msgast.IcuTime:
		v.add(icu.Name, TypeTime)
		return nil
	case msgast.IcuNumber:
		v.add(icu.Name, TypeNumber)
		return nil
	default:
		return fmt.Errorf("unhandled ICU node %T", node)
	}
}
