package messageutil_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/intlmsg/pkg/messageutil"
)

func TestHashMessageKey(t *testing.T) {
	t.Parallel()

	const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	keys := []string{
		"",
		"WELCOME_BANNER",
		"ERRORS_NOT_FOUND",
		"a",
		"A",
	}

	seen := make(map[string]string)
	for _, key := range keys {
		hash := messageutil.HashMessageKey(key)

		if len(hash) != 6 {
			t.Errorf("HashMessageKey(%q) = %q, want 6 characters", key, hash)
		}
		for _, char := range hash {
			if !strings.ContainsRune(base64Alphabet, char) {
				t.Errorf("HashMessageKey(%q) = %q contains %q outside the base64 alphabet", key, hash, char)
			}
		}
		if messageutil.HashMessageKey(key) != hash {
			t.Errorf("HashMessageKey(%q) is not deterministic", key)
		}
		if prior, ok := seen[hash]; ok {
			t.Errorf("keys %q and %q collide on %q", prior, key, hash)
		}
		seen[hash] = key
	}
}

func TestIsDefinitionsFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		expected bool
	}{
		{name: "bare messages import path", fileName: "Somewhere.messages", expected: true},
		{name: "tsx definitions", fileName: "Home.messages.tsx", expected: true},
		{name: "jsx definitions", fileName: "Home.messages.jsx", expected: true},
		{name: "ts definitions", fileName: "Home.messages.ts", expected: true},
		{name: "js definitions", fileName: "Home.messages.js", expected: true},
		{name: "translation json", fileName: "en-US.messages.json", expected: false},
		{name: "unrelated ts file", fileName: "Home.ts", expected: false},
		{name: "messages in the middle", fileName: "messages.config.ts", expected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := messageutil.IsDefinitionsFile(testCase.fileName)
			if got != testCase.expected {
				t.Errorf("IsDefinitionsFile(%q) = %v, want %v", testCase.fileName, got, testCase.expected)
			}
		})
	}
}

func TestIsTranslationsFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		expected bool
	}{
		{name: "json translations", fileName: "en-US.messages.json", expected: true},
		{name: "jsona translations", fileName: "de.messages.jsona", expected: true},
		{name: "full path", fileName: "intl/fr.messages.json", expected: true},
		{name: "definitions file", fileName: "Home.messages.ts", expected: false},
		{name: "plain json", fileName: "package.json", expected: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := messageutil.IsTranslationsFile(testCase.fileName)
			if got != testCase.expected {
				t.Errorf("IsTranslationsFile(%q) = %v, want %v", testCase.fileName, got, testCase.expected)
			}
		})
	}
}
