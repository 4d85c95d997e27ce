// Package message couples raw message text with its parsed AST and the
// derived catalog of interpolation variables.
package message

import "github.com/yaklabco/intlmsg/pkg/symbol"

// VariableType is the inferred semantic type of a variable occurrence,
// used downstream for codegen and validation.
type VariableType struct {
	kind   variableKind
	values []string
}

type variableKind uint8

const (
	kindAny variableKind = iota
	kindNumber
	kindPlural
	kindEnum
	kindDate
	kindTime
	kindHookFunction
	kindLinkFunction
)

// Variable type constructors. Only Enum carries data beyond its tag.
//
//nolint:gochecknoglobals // Tag values are shared constants.
var (
	// TypeAny accepts any value; used when the required type cannot be
	// determined.
	TypeAny = VariableType{kind: kindAny}
	// TypeNumber accepts any numeric value, integer or float.
	TypeNumber = VariableType{kind: kindNumber}
	// TypePlural is a value used for plural evaluation; generally a number
	// or something directly castable to one.
	TypePlural = VariableType{kind: kindPlural}
	// TypeDate requires a date value; the runtime decides whether strings
	// are parseable.
	TypeDate = VariableType{kind: kindDate}
	// TypeTime requires a time value, analogous to TypeDate.
	TypeTime = VariableType{kind: kindTime}
	// TypeHookFunction is a function providing structured replacement of
	// content, normally used for applying styles.
	TypeHookFunction = VariableType{kind: kindHookFunction}
	// TypeLinkFunction is a specialization of TypeHookFunction representing
	// a link, which requires specific handling in most cases.
	TypeLinkFunction = VariableType{kind: kindLinkFunction}
)

// TypeEnum builds a type whose value must match one of the given strings.
// Runtimes commonly use the option "other" as a fallback.
func TypeEnum(values []string) VariableType {
	return VariableType{kind: kindEnum, values: values}
}

// IsEnum reports whether the type is an enum, returning its allowed values.
func (t VariableType) IsEnum() ([]string, bool) {
	return t.values, t.kind == kindEnum
}

func (t VariableType) String() string {
	switch t.kind {
	case kindAny:
		return "any"
	case kindNumber:
		return "number"
	case kindPlural:
		return "plural"
	case kindEnum:
		return "enum"
	case kindDate:
		return "date"
	case kindTime:
		return "time"
	case kindHookFunction:
		return "hook function"
	case kindLinkFunction:
		return "link function"
	default:
		return "unknown"
	}
}

// Equal reports type equality, comparing enum value lists in order.
func (t VariableType) Equal(other VariableType) bool {
	if t.kind != other.kind || len(t.values) != len(other.values) {
		return false
	}
	for i, v := range t.values {
		if other.values[i] != v {
			return false
		}
	}
	return true
}

// VariableInstance is a single occurrence of a variable in a message. Every
// occurrence gets its own instance, even for an already-seen name, so each
// records its own span.
type VariableInstance struct {
	// Kind is the inferred type of this occurrence.
	Kind VariableType

	// Span is the byte offset of the occurrence in the message, when known.
	Span *int
}

// Variables is the catalog of a message's variables: a mapping from
// interned name to the ordered occurrences of that name. Mutable only
// during the visitor pass; treated as immutable afterward.
type Variables struct {
	instances map[symbol.Symbol][]VariableInstance
	order     []symbol.Symbol
}

// NewVariables creates an empty catalog.
func NewVariables() *Variables {
	return &Variables{instances: make(map[symbol.Symbol][]VariableInstance)}
}

// Add appends a new occurrence of a variable. The first occurrence of a
// name allocates its entry; later ones append. Occurrences are never
// deduplicated.
func (v *Variables) Add(name symbol.Symbol, kind VariableType, span *int) {
	if _, ok := v.instances[name]; !ok {
		v.order = append(v.order, name)
	}
	v.instances[name] = append(v.instances[name], VariableInstance{Kind: kind, Span: span})
}

// Merge appends another catalog's instances onto matching keys, creating
// keys that are absent. Used when combining catalogs from independently
// parsed fragments.
func (v *Variables) Merge(other *Variables) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		if _, ok := v.instances[name]; !ok {
			v.order = append(v.order, name)
		}
		v.instances[name] = append(v.instances[name], other.instances[name]...)
	}
}

// Get returns the ordered occurrences of a variable name.
func (v *Variables) Get(name symbol.Symbol) []VariableInstance {
	return v.instances[name]
}

// Keys returns the set of variable names in first-seen order.
func (v *Variables) Keys() []symbol.Symbol {
	keys := make([]symbol.Symbol, len(v.order))
	copy(keys, v.order)
	return keys
}

// Has reports whether the catalog contains the name.
func (v *Variables) Has(name symbol.Symbol) bool {
	_, ok := v.instances[name]
	return ok
}

// Count returns the number of uniquely-named variables in the message.
func (v *Variables) Count() int {
	return len(v.order)
}
