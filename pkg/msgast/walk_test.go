package msgast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/intlmsg/pkg/msgast"
	"github.com/yaklabco/intlmsg/pkg/parser"
)

func TestWalkDocument(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse("# Title\n\nHello **{name}** and {count, plural, other {# left}}.")
	require.NoError(t, err)

	var blocks, inlines int
	err = msgast.WalkDocument(doc,
		func(msgast.BlockNode) error {
			blocks++
			return nil
		},
		func(msgast.InlineContent) error {
			inlines++
			return nil
		})
	require.NoError(t, err)

	assert.Equal(t, 2, blocks, "heading and paragraph")
	assert.Greater(t, inlines, 5, "visits nested strong and plural arm content")
}

func TestWalkInlinesStopsOnError(t *testing.T) {
	t.Parallel()

	doc, err := parser.ParseInline("one **two** three")
	require.NoError(t, err)

	block, ok := doc.Blocks[0].(msgast.InlineBlock)
	require.True(t, ok)

	sentinel := errors.New("stop")
	visited := 0
	err = msgast.WalkInlines(block.Content, func(msgast.InlineContent) error {
		visited++
		if visited == 2 {
			return sentinel
		}
		return nil
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, visited)
}

func TestFindInlines(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse("Hi {name}, you have {count, plural, other {{count} left}}.")
	require.NoError(t, err)

	placeholders := msgast.FindInlines(doc, func(node msgast.InlineContent) bool {
		_, ok := node.(msgast.Icu)
		return ok
	})

	// {name}, the plural itself, and the nested {count} inside its arm.
	assert.Len(t, placeholders, 3)
}

func TestWalkNilDocument(t *testing.T) {
	t.Parallel()

	assert.NoError(t, msgast.WalkBlocks(nil, func(msgast.BlockNode) error {
		t.Fatal("callback must not run")
		return nil
	}))
	assert.NoError(t, msgast.WalkDocument(nil, nil, nil))
}
