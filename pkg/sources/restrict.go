package sources

import (
	"fmt"
	"strings"

	"github.com/yaklabco/intlmsg/pkg/message"
	"github.com/yaklabco/intlmsg/pkg/symbol"
)

// structuralHookNames are catalog entries introduced by markdown structure
// rather than by the message author. Translations routinely restructure a
// sentence, so structural hooks are not held against the definition.
//
//nolint:gochecknoglobals // Read-only lookup table.
var structuralHookNames = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "codeBlock": true, "hr": true, "i": true, "b": true,
	"del": true, "br": true, "code": true, "link": true,
}

// CheckTranslationRestrictions verifies a translation against its
// definition using the two variable catalogs as evidence: a translation
// must not introduce named variables that the definition never declares.
// Either catalog being absent (failed visitor pass) skips the check.
func CheckTranslationRestrictions(interner *symbol.Interner, definition, translation *message.Value) error {
	if definition == nil || translation == nil ||
		definition.Variables == nil || translation.Variables == nil {
		return nil
	}

	var unknown []string
	for _, key := range translation.Variables.Keys() {
		name, ok := interner.Name(key)
		if !ok || structuralHookNames[name] {
			continue
		}
		if !definition.Variables.Has(key) {
			unknown = append(unknown, name)
		}
	}

	if len(unknown) > 0 {
		return fmt.Errorf("%w: translation introduces variables not present in the definition: %s",
			ErrTranslationRestriction, strings.Join(unknown, ", "))
	}
	return nil
}
