package sources_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/intlmsg/pkg/message"
	"github.com/yaklabco/intlmsg/pkg/sources"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

func TestCheckTranslationRestrictions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		definition  string
		translation string
		wantErr     bool
		contains    string
	}{
		{
			name:        "matching variables pass",
			definition:  "Hello, {name}!",
			translation: "Bonjour, {name} !",
			wantErr:     false,
		},
		{
			name:        "translation introduces unknown variable",
			definition:  "Hello, {name}!",
			translation: "Hola, {nombre}!",
			wantErr:     true,
			contains:    "nombre",
		},
		{
			name:        "structural hooks are not held against the definition",
			definition:  "Hello, {name}!",
			translation: "**Bonjour**, {name} !",
			wantErr:     false,
		},
		{
			name:        "translation may restructure into headings and breaks",
			definition:  "plain {user}",
			translation: "## Salut\n\n{user}  \nbienvenue",
			wantErr:     false,
		},
		{
			name:        "translation may use fewer variables",
			definition:  "{greeting}, {name}!",
			translation: "Hei, {name}!",
			wantErr:     false,
		},
		{
			name:        "custom hook unknown to the definition fails",
			definition:  "Hello, {name}!",
			translation: "Hallo, $[{name}](fancy)!",
			wantErr:     true,
			contains:    "fancy",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			definition, err := message.FromRaw(testCase.definition)
			require.NoError(t, err)
			translation, err := message.FromRaw(testCase.translation)
			require.NoError(t, err)

			err = sources.CheckTranslationRestrictions(symbol.Global(), definition, translation)
			if testCase.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, sources.ErrTranslationRestriction))
				assert.Contains(t, err.Error(), testCase.contains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckTranslationRestrictionsMissingCatalogs(t *testing.T) {
	t.Parallel()

	value, err := message.FromRaw("Hello, {name}!")
	require.NoError(t, err)

	// Either side missing its catalog skips the check entirely.
	assert.NoError(t, sources.CheckTranslationRestrictions(symbol.Global(), nil, value))
	assert.NoError(t, sources.CheckTranslationRestrictions(symbol.Global(), value, nil))

	noCatalog := &message.Value{Raw: value.Raw, Parsed: value.Parsed}
	assert.NoError(t, sources.CheckTranslationRestrictions(symbol.Global(), noCatalog, value))
	assert.NoError(t, sources.CheckTranslationRestrictions(symbol.Global(), value, noCatalog))
}
