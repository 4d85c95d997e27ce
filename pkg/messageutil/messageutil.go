// Package messageutil holds small shared helpers for message tooling: short
// hashed key identifiers and source-file kind detection.
package messageutil

import "github.com/cespare/xxhash/v2"

// KeyHashSeed is the seed used when computing hash keys for message names
// and other hashed identifiers.
const KeyHashSeed uint64 = 0

// base64Table is the lookup table for building the base64 representation of
// a hashed key.
const base64Table = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// HashMessageKey returns a consistent short hash of the given key: the
// xxh64 digest of the content, with the first few bytes encoded to six
// base64 characters.
func HashMessageKey(content string) string {
	hash := xxhash.Sum64String(content)

	var input [8]byte
	for i := range input {
		input[i] = byte(hash >> (8 * i))
	}

	// Only six characters of output are wanted, so the base64 encoding is
	// shortcut by reading the bits directly out of the hash bytes.
	output := []byte{
		base64Table[input[0]>>2],
		base64Table[(input[0]&0x03)<<4|input[1]>>4],
		base64Table[(input[1]&0x0f)<<2|input[2]>>6],
		base64Table[input[2]&0x3f],
		base64Table[input[3]>>2],
		base64Table[(input[3]&0x03)<<4|input[3]>>4],
	}
	return string(output)
}

// definitionSuffixes are the file name endings of message definitions
// files. The bare `.messages` form is the path used when importing, like
// `import {messages} from 'Somewhere.messages'`; the rest reference actual
// file paths.
//
//nolint:gochecknoglobals // Read-only lookup table.
var definitionSuffixes = []string{
	".messages",
	".messages.tsx",
	".messages.jsx",
	".messages.ts",
	".messages.js",
}

// translationSuffixes are the file name endings of translation files.
//
//nolint:gochecknoglobals // Read-only lookup table.
var translationSuffixes = []string{
	".messages.json",
	".messages.jsona",
}

// IsDefinitionsFile reports whether the file name is a message definitions
// file.
func IsDefinitionsFile(fileName string) bool {
	return hasAnySuffix(fileName, definitionSuffixes)
}

// IsTranslationsFile reports whether the file name is a message
// translations file.
func IsTranslationsFile(fileName string) bool {
	return hasAnySuffix(fileName, translationSuffixes)
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix {
			return true
		}
	}
	return false
}
