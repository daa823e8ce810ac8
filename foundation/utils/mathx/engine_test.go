// File: engine_test.go
// Title: Unit Tests for the Chainable Engine
// Description: Tests for chain and plain modes, value forwarding, operation
//              parsing and the shared engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package mathx

import (
	"math"
	"testing"

	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
)

// resetShared drops the shared engine so each test starts from a fresh slot.
func resetShared(t *testing.T) {
	t.Helper()
	sharedMu.Lock()
	shared = nil
	sharedMu.Unlock()
	t.Cleanup(func() {
		sharedMu.Lock()
		shared = nil
		sharedMu.Unlock()
	})
}

func TestChainAccumulation(t *testing.T) {
	e := New(true)

	v := e.Base(64).Div(2)
	if !v.IsChain() || v.Engine() != e {
		t.Fatal("chain mode should return the engine")
	}
	if e.Result != 32 {
		t.Errorf("Result = %v, want 32", e.Result)
	}

	v = v.Add(2)
	if v.Float64() != 34 {
		t.Errorf("Result = %v, want 34", v.Float64())
	}

	if got := e.Done(); got != 34 {
		t.Errorf("Done() = %v, want 34", got)
	}
	if e.Result != 0 || e.IsInit {
		t.Errorf("after Done: Result = %v, IsInit = %v", e.Result, e.IsInit)
	}
}

func TestChainWithoutSeed(t *testing.T) {
	e := New(true)

	if got := e.Add(1, 2).Float64(); got != 3 {
		t.Errorf("first chained Add(1, 2) = %v, want 3", got)
	}
	if !e.IsInit {
		t.Error("IsInit should be set after the first chained operation")
	}
	if got := e.Mul(10).Sub(0.5).Done(); got != 29.5 {
		t.Errorf("chain result = %v, want 29.5", got)
	}

	if got := e.Pow(5).Float64(); got != 5 {
		t.Errorf("Pow(5) on a fresh chain = %v, want 5", got)
	}
}

func TestChainValueIsLive(t *testing.T) {
	e := New(true)
	first := e.Base(1).Add(1)
	e.Mul(10)

	if first.Float64() != 20 {
		t.Errorf("chained value should read the engine's current result, got %v", first.Float64())
	}
	if first.String() != "20" {
		t.Errorf("String() = %q, want 20", first.String())
	}
}

func TestPlainMode(t *testing.T) {
	e := New(false)

	v := e.Div(64, 2)
	if v.IsChain() || v.Engine() != nil {
		t.Fatal("plain mode should return a number")
	}
	if v.Float64() != 32 {
		t.Errorf("Div(64, 2) = %v, want 32", v.Float64())
	}

	if got := v.Add(2).Float64(); got != 2 {
		t.Errorf("Add(2) after Div = %v, want 2", got)
	}
	if e.IsInit || e.Result != 0 {
		t.Errorf("plain mode changed state: Result = %v, IsInit = %v", e.Result, e.IsInit)
	}
	if got := v.Done(); got != 32 {
		t.Errorf("Done() on a plain value = %v, want 32", got)
	}
}

func TestBase(t *testing.T) {
	e := New(false)
	if e.Base(10) != e {
		t.Fatal("Base should return the receiver")
	}
	if !e.IsInit || e.Result != 10 {
		t.Errorf("Base(10): Result = %v, IsInit = %v", e.Result, e.IsInit)
	}
	if got := e.Add(1).Float64(); got != 1 {
		t.Errorf("plain Add ignores the seed, got %v", got)
	}

	if got := New(true).Base(math.NaN()).Result; got != 0 {
		t.Errorf("Base(NaN) = %v, want 0", got)
	}
	if got := New(true).Base(math.Copysign(0, -1)).Result; math.Signbit(got) {
		t.Error("Base(-0) should store positive zero")
	}
}

func TestChainInvalidOp(t *testing.T) {
	e := New(true).Base(3)

	v := e.Chain(Op(42), 1)
	if !math.IsNaN(v.Float64()) {
		t.Errorf("invalid op = %v, want NaN", v.Float64())
	}
	if e.Result != 3 || !e.IsInit {
		t.Errorf("invalid op changed state: Result = %v", e.Result)
	}
}

func TestZeroValueForwards(t *testing.T) {
	var v Value
	if got := v.Add(1, 2).Float64(); got != 3 {
		t.Errorf("zero Value Add(1, 2) = %v, want 3", got)
	}
}

func TestPlainMatchesStateless(t *testing.T) {
	e := New(false)
	pairs := [][2]float64{{0.1, 0.2}, {1.005, 3}, {-7.25, 0.5}, {100, 0.03}, {2, 10}}

	for _, p := range pairs {
		a, b := p[0], p[1]
		checks := []struct {
			op     Op
			fluent Value
			plain  float64
		}{
			{OpAdd, e.Add(a, b), e.Adds(a, b)},
			{OpSub, e.Sub(a, b), e.Subs(a, b)},
			{OpMul, e.Mul(a, b), e.Muls(a, b)},
			{OpDiv, e.Div(a, b), e.Divs(a, b)},
			{OpPow, e.Pow(a, b), e.Pows(a, b)},
		}
		for _, c := range checks {
			if got := c.fluent.Float64(); got != c.plain && !(math.IsNaN(got) && math.IsNaN(c.plain)) {
				t.Errorf("%s(%v, %v): fluent %v, stateless %v", c.op, a, b, got, c.plain)
			}
		}
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		input string
		want  Op
	}{
		{"add", OpAdd},
		{"SUB", OpSub},
		{" mul ", OpMul},
		{"/", OpDiv},
		{"^", OpPow},
		{"+", OpAdd},
	}

	for _, tt := range tests {
		got, err := ParseOp(tt.input)
		if err != nil {
			t.Errorf("ParseOp(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOp(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	_, err := ParseOp("mod")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) {
		t.Errorf("ParseOp(mod) error = %v, want INVALID_OPERATION", err)
	}
}

func TestOpNames(t *testing.T) {
	for _, op := range Ops() {
		parsed, err := ParseOp(op.String())
		if err != nil || parsed != op {
			t.Errorf("round trip of %v failed: %v, %v", op, parsed, err)
		}
		parsed, err = ParseOp(op.Symbol())
		if err != nil || parsed != op {
			t.Errorf("symbol round trip of %v failed: %v, %v", op, parsed, err)
		}
	}
	if Op(-1).String() != "unknown" || Op(9).Symbol() != "?" {
		t.Error("invalid ops should have placeholder names")
	}
	if !math.IsNaN(Op(9).Apply(1, 2)) {
		t.Error("invalid op should apply to NaN")
	}
}

func TestSharedReuse(t *testing.T) {
	resetShared(t)

	a := Shared()
	b := Shared()
	if a != b {
		t.Fatal("Shared() should return the same engine")
	}
	if a.UseChain {
		t.Error("shared engine should default to plain mode")
	}

	c := Shared(WithChain(true))
	if c != a || !a.UseChain {
		t.Error("WithChain should update the existing engine in place")
	}

	a.Base(5).Add(1)
	again := Shared()
	if again.Result != 6 || !again.IsInit {
		t.Errorf("Shared() should keep chain state: Result = %v, IsInit = %v", again.Result, again.IsInit)
	}
}

func TestSharedCreatedInChainMode(t *testing.T) {
	resetShared(t)

	if !Shared(WithChain(true)).UseChain {
		t.Error("shared engine should be created in chain mode")
	}
}

// ResetChain clears IsInit but leaves Result, so the next chained operation
// no longer picks up the previous value while Result still shows it.
func TestSharedResetChainKeepsResult(t *testing.T) {
	resetShared(t)

	e := Shared(WithChain(true))
	e.Base(5).Add(1)

	reset := Shared(ResetChain())
	if reset.IsInit {
		t.Error("ResetChain should clear IsInit")
	}
	if reset.Result != 6 {
		t.Errorf("ResetChain should keep Result, got %v", reset.Result)
	}

	if got := reset.Add(2).Float64(); got != 2 {
		t.Errorf("Add(2) after ResetChain = %v, want 2", got)
	}
}

func TestNewDoesNotTouchShared(t *testing.T) {
	resetShared(t)

	New(true).Base(1)
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		t.Error("New must not create the shared engine")
	}
}
