// File: engine.go
// Title: Chainable Arithmetic Engine
// Description: Engine wraps the decimal-safe operations with an optional
//              chain mode in which every call feeds its result into the
//              next one. A process-wide engine is available through Shared.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"strings"
	"sync"

	"github.com/msto63/pinkmath/foundation/core/errors"
)

// Op names one of the five engine operations.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

var opTable = [...]struct {
	name   string
	symbol string
	apply  func(args ...float64) float64
}{
	OpAdd: {"add", "+", Adds},
	OpSub: {"sub", "-", Subs},
	OpMul: {"mul", "*", Muls},
	OpDiv: {"div", "/", Divs},
	OpPow: {"pow", "^", Pows},
}

// Valid reports whether op is one of the defined operations.
func (op Op) Valid() bool {
	return op >= OpAdd && op <= OpPow
}

func (op Op) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return opTable[op].name
}

// Symbol returns the operator character used in expressions.
func (op Op) Symbol() string {
	if !op.Valid() {
		return "?"
	}
	return opTable[op].symbol
}

// Apply runs the stateless operation for op. An invalid op yields NaN.
func (op Op) Apply(args ...float64) float64 {
	if !op.Valid() {
		return math.NaN()
	}
	return opTable[op].apply(args...)
}

// Ops returns all operations in declaration order.
func Ops() []Op {
	return []Op{OpAdd, OpSub, OpMul, OpDiv, OpPow}
}

// ParseOp accepts an operation name or its symbol, case-insensitively.
func ParseOp(s string) (Op, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, op := range Ops() {
		if key == opTable[op].name || key == opTable[op].symbol {
			return op, nil
		}
	}
	return 0, errors.MathxUnknownOperation(s)
}

// Engine evaluates operations either statelessly or, in chain mode, by
// accumulating into Result. An Engine is not safe for concurrent use.
type Engine struct {
	// UseChain selects chain mode for the fluent operations.
	UseChain bool

	// IsInit is set once Result holds a seeded or computed value; the next
	// chained operation then uses Result as its first operand.
	IsInit bool

	// Result is the running value in chain mode.
	Result float64
}

// New returns an engine that is independent of the shared one.
func New(useChain bool) *Engine {
	return &Engine{UseChain: useChain}
}

// Done returns Result and clears it so the engine can start a new chain.
func (e *Engine) Done() float64 {
	result := e.Result
	e.Result = 0
	e.IsInit = false
	return result
}

// Base seeds Result with seed (NaN and -0 become 0) and returns the engine.
// It does so in both modes; only chained operations read the seed.
func (e *Engine) Base(seed float64) *Engine {
	if math.IsNaN(seed) || seed == 0 {
		seed = 0
	}
	e.Result = seed
	e.IsInit = true
	return e
}

// Chain applies op. In chain mode Result is prepended to args once the
// engine is initialised, the outcome is stored in Result and a chained
// Value is returned. Otherwise op is applied to args alone and the engine
// is left untouched. An invalid op returns NaN without changing state.
func (e *Engine) Chain(op Op, args ...float64) Value {
	if !op.Valid() {
		return Value{engine: e, num: math.NaN()}
	}
	if !e.UseChain {
		return Value{engine: e, num: op.Apply(args...)}
	}

	operands := args
	if e.IsInit {
		operands = make([]float64, 0, len(args)+1)
		operands = append(operands, e.Result)
		operands = append(operands, args...)
	}

	e.Result = op.Apply(operands...)
	e.IsInit = true
	return Value{engine: e, chained: true}
}

// Add chains or computes a decimal-safe sum.
func (e *Engine) Add(args ...float64) Value { return e.Chain(OpAdd, args...) }

// Sub chains or computes a decimal-safe difference.
func (e *Engine) Sub(args ...float64) Value { return e.Chain(OpSub, args...) }

// Mul chains or computes a decimal-safe product.
func (e *Engine) Mul(args ...float64) Value { return e.Chain(OpMul, args...) }

// Div chains or computes a decimal-safe quotient.
func (e *Engine) Div(args ...float64) Value { return e.Chain(OpDiv, args...) }

// Pow chains or computes an integer power.
func (e *Engine) Pow(args ...float64) Value { return e.Chain(OpPow, args...) }

// Adds is Adds; it never touches the engine state.
func (e *Engine) Adds(args ...float64) float64 { return Adds(args...) }

// Subs is Subs; it never touches the engine state.
func (e *Engine) Subs(args ...float64) float64 { return Subs(args...) }

// Muls is Muls; it never touches the engine state.
func (e *Engine) Muls(args ...float64) float64 { return Muls(args...) }

// Divs is Divs; it never touches the engine state.
func (e *Engine) Divs(args ...float64) float64 { return Divs(args...) }

// Pows is Pows; it never touches the engine state.
func (e *Engine) Pows(args ...float64) float64 { return Pows(args...) }

// Value is what a fluent operation returns: either the engine itself (chain
// mode) or a plain number. The operation methods forward to the producing
// engine, so e.Base(64).Div(2).Add(2).Done() reads left to right.
type Value struct {
	engine  *Engine
	num     float64
	chained bool
}

// IsChain reports whether v refers to a chain-mode engine.
func (v Value) IsChain() bool {
	return v.chained
}

// Engine returns the chained engine, or nil for a plain number.
func (v Value) Engine() *Engine {
	if !v.chained {
		return nil
	}
	return v.engine
}

// Float64 returns the number. For a chained value this is the engine's
// current Result, which later operations on the engine keep changing.
func (v Value) Float64() float64 {
	if v.chained {
		return v.engine.Result
	}
	return v.num
}

func (v Value) String() string {
	return FormatNumber(v.Float64())
}

// Done finishes the chain of a chained value. A plain value returns its
// number.
func (v Value) Done() float64 {
	if v.chained {
		return v.engine.Done()
	}
	return v.num
}

func (v Value) owner() *Engine {
	if v.engine == nil {
		return New(false)
	}
	return v.engine
}

// Add forwards to the producing engine.
func (v Value) Add(args ...float64) Value { return v.owner().Add(args...) }

// Sub forwards to the producing engine.
func (v Value) Sub(args ...float64) Value { return v.owner().Sub(args...) }

// Mul forwards to the producing engine.
func (v Value) Mul(args ...float64) Value { return v.owner().Mul(args...) }

// Div forwards to the producing engine.
func (v Value) Div(args ...float64) Value { return v.owner().Div(args...) }

// Pow forwards to the producing engine.
func (v Value) Pow(args ...float64) Value { return v.owner().Pow(args...) }

var (
	sharedMu sync.Mutex
	shared   *Engine
)

// SharedOption adjusts the shared engine when it is requested.
type SharedOption func(*sharedOptions)

type sharedOptions struct {
	useChain *bool
	reset    bool
}

// WithChain sets the chain mode of the shared engine, creating it in that
// mode when absent.
func WithChain(useChain bool) SharedOption {
	return func(o *sharedOptions) {
		o.useChain = &useChain
	}
}

// ResetChain clears IsInit on access. Result keeps its old value, so a
// following chained operation must supply its first operand itself while
// Result still reads the previous chain's value until it is overwritten.
func ResetChain() SharedOption {
	return func(o *sharedOptions) {
		o.reset = true
	}
}

// Shared returns the process-wide engine, creating it on first use. Without
// options it is returned as is; repeated calls return the same pointer.
// The lock covers creation and the option updates only: callers sharing a
// chain must serialise its use from first operation to Done.
func Shared(opts ...SharedOption) *Engine {
	var o sharedOptions
	for _, opt := range opts {
		opt(&o)
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()

	if shared == nil {
		shared = New(o.useChain != nil && *o.useChain)
	} else if o.useChain != nil {
		shared.UseChain = *o.useChain
	}
	if o.reset {
		shared.IsInit = false
	}
	return shared
}
