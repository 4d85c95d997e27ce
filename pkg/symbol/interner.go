// Package symbol provides string interning for message and variable names.
// Interning maps each distinct string to a stable small identifier so that
// catalogs can key on cheap integer comparisons instead of string hashing.
package symbol

import "sync"

// Symbol is a stable identifier for an interned string. Symbols are valid
// for the lifetime of the interner that produced them.
type Symbol uint32

// Interner is an append-only mapping from string to Symbol. Interning the
// same string twice yields the same symbol. Safe for concurrent use: many
// parses may intern in parallel, synchronizing only through this table.
type Interner struct {
	mu    sync.RWMutex
	index map[string]Symbol
	names []string
}

// NewInterner creates an empty interner.
func NewInterner() *Interner {
	return &Interner{index: make(map[string]Symbol)}
}

// Intern returns the symbol for name, allocating one on first sight.
func (in *Interner) Intern(name string) Symbol {
	in.mu.RLock()
	sym, ok := in.index[name]
	in.mu.RUnlock()
	if ok {
		return sym
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	// Another goroutine may have interned it between the locks.
	if sym, ok := in.index[name]; ok {
		return sym
	}
	sym = Symbol(len(in.names))
	in.index[name] = sym
	in.names = append(in.names, name)
	return sym
}

// Name returns the string a symbol was interned from. The second return is
// false for symbols this interner never produced.
func (in *Interner) Name(sym Symbol) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if int(sym) >= len(in.names) {
		return "", false
	}
	return in.names[sym], true
}

// Len returns the number of distinct interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.names)
}

//nolint:gochecknoglobals // The process-wide table is the point.
var global = NewInterner()

// Global returns the process-wide interner shared by all parses.
func Global() *Interner {
	return global
}

// Intern interns a name in the process-wide table.
func Intern(name string) Symbol {
	return global.Intern(name)
}

// Name resolves a symbol from the process-wide table.
func Name(sym Symbol) (string, bool) {
	return global.Name(sym)
}
