package symbol_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/yaklabco/intlmsg/pkg/symbol"
)

func TestInternerRoundTrip(t *testing.T) {
	t.Parallel()

	interner := symbol.NewInterner()

	first := interner.Intern("alpha")
	second := interner.Intern("beta")
	again := interner.Intern("alpha")

	if first == second {
		t.Errorf("distinct strings share symbol %d", first)
	}
	if first != again {
		t.Errorf("interning twice gave %d then %d", first, again)
	}

	name, ok := interner.Name(first)
	if !ok || name != "alpha" {
		t.Errorf("expected (alpha, true), got (%q, %v)", name, ok)
	}

	if _, ok := interner.Name(symbol.Symbol(1000)); ok {
		t.Error("expected unknown symbol to resolve to false")
	}

	if interner.Len() != 2 {
		t.Errorf("expected 2 interned strings, got %d", interner.Len())
	}
}

func TestInternerConcurrent(t *testing.T) {
	t.Parallel()

	interner := symbol.NewInterner()

	const goroutines = 16
	const perGoroutine = 100

	var wg sync.WaitGroup
	results := make([][]symbol.Symbol, goroutines)

	for g := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			symbols := make([]symbol.Symbol, 0, perGoroutine)
			for i := range perGoroutine {
				symbols = append(symbols, interner.Intern(fmt.Sprintf("name-%d", i)))
			}
			results[g] = symbols
		}()
	}
	wg.Wait()

	// Every goroutine interned the same strings, so all must agree.
	for g := 1; g < goroutines; g++ {
		for i := range perGoroutine {
			if results[g][i] != results[0][i] {
				t.Fatalf("goroutine %d got symbol %d for name-%d, goroutine 0 got %d",
					g, results[g][i], i, results[0][i])
			}
		}
	}

	if interner.Len() != perGoroutine {
		t.Errorf("expected %d interned strings, got %d", perGoroutine, interner.Len())
	}
}

func TestGlobalInterner(t *testing.T) {
	t.Parallel()

	sym := symbol.Intern("global-roundtrip-test")
	name, ok := symbol.Name(sym)
	if !ok || name != "global-roundtrip-test" {
		t.Errorf("expected (global-roundtrip-test, true), got (%q, %v)", name, ok)
	}
	if symbol.Global().Intern("global-roundtrip-test") != sym {
		t.Error("package helpers and Global() disagree")
	}
}
