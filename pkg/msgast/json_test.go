package msgast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/intlmsg/pkg/msgast"
)

func TestDocumentMarshalJSON(t *testing.T) {
	t.Parallel()

	doc := &msgast.Document{Blocks: []msgast.BlockNode{
		msgast.Paragraph{Content: []msgast.InlineContent{
			msgast.Text{Content: "Hello, "},
			msgast.Icu{Node: msgast.IcuVariable{Name: "name"}},
			msgast.Strong{Content: []msgast.InlineContent{msgast.Text{Content: "!"}}},
		}},
	}}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "document", decoded["kind"])

	blocks, ok := decoded["blocks"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 1)

	paragraph, ok := blocks[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "paragraph", paragraph["kind"])

	content, ok := paragraph["content"].([]any)
	require.True(t, ok)
	require.Len(t, content, 3)

	kinds := make([]string, 0, len(content))
	for _, node := range content {
		kinds = append(kinds, node.(map[string]any)["kind"].(string))
	}
	assert.Equal(t, []string{"text", "icuVariable", "strong"}, kinds)
}
