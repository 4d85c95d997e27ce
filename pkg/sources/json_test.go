package sources_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/intlmsg/pkg/sources"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

func TestExtractTranslations(t *testing.T) {
	t.Parallel()

	interner := symbol.NewInterner()
	reader := &sources.JSONTranslations{Interner: interner}
	file := interner.Intern("en-US.messages.json")

	content := `{
	"GREETING": "Hello, {name}!",
	"ITEM_COUNT": "{count, plural, one {# item} other {# items}}"
}`

	seq, err := reader.ExtractTranslations(file, content)
	require.NoError(t, err)

	var records []sources.RawMessageTranslation
	for record, err := range seq {
		require.NoError(t, err)
		records = append(records, record)
	}

	require.Len(t, records, 2)

	name, ok := interner.Name(records[0].Name)
	require.True(t, ok)
	assert.Equal(t, "GREETING", name)
	assert.Equal(t, "Hello, {name}!", records[0].Value.Raw)
	require.NotNil(t, records[0].Value.FilePosition)
	assert.Equal(t, file, records[0].Value.FilePosition.File)

	name, ok = interner.Name(records[1].Name)
	require.True(t, ok)
	assert.Equal(t, "ITEM_COUNT", name)
	assert.Greater(t, records[1].Offset, records[0].Offset)
}

func TestExtractTranslationsBadMessageContinues(t *testing.T) {
	t.Parallel()

	interner := symbol.NewInterner()
	reader := &sources.JSONTranslations{Interner: interner}

	content := `{"GOOD": "fine", "BROKEN": "{unterminated", "ALSO_GOOD": "still fine"}`

	seq, err := reader.ExtractTranslations(interner.Intern("x.messages.json"), content)
	require.NoError(t, err)

	var good []string
	var failures []error
	for record, err := range seq {
		if err != nil {
			failures = append(failures, err)
			continue
		}
		name, _ := interner.Name(record.Name)
		good = append(good, name)
	}

	assert.Equal(t, []string{"GOOD", "ALSO_GOOD"}, good)
	require.Len(t, failures, 1)
	assert.True(t, errors.Is(failures[0], sources.ErrParse))
	assert.Contains(t, failures[0].Error(), "BROKEN")
}

func TestExtractTranslationsNonStringValue(t *testing.T) {
	t.Parallel()

	reader := sources.NewJSONTranslations()

	content := `{"NUMERIC": 5, "OK": "fine"}`

	seq, err := reader.ExtractTranslations(symbol.Intern("y.messages.json"), content)
	require.NoError(t, err)

	var goodCount int
	var failures []error
	for _, err := range seq {
		if err != nil {
			failures = append(failures, err)
			continue
		}
		goodCount++
	}

	assert.Equal(t, 1, goodCount)
	require.Len(t, failures, 1)
	assert.True(t, errors.Is(failures[0], sources.ErrNoMessageValue))
}

func TestExtractTranslationsNotAnObject(t *testing.T) {
	t.Parallel()

	reader := sources.NewJSONTranslations()

	tests := []struct {
		name    string
		content string
	}{
		{name: "array", content: `["a", "b"]`},
		{name: "string", content: `"just a string"`},
		{name: "empty", content: ``},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := reader.ExtractTranslations(symbol.Intern("z.messages.json"), testCase.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sources.ErrInvalidSourceFileMeta))
		})
	}
}

func TestExtractTranslationsEmptyObject(t *testing.T) {
	t.Parallel()

	reader := sources.NewJSONTranslations()

	seq, err := reader.ExtractTranslations(symbol.Intern("empty.messages.json"), `{}`)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
	}
	assert.Zero(t, count)
}
