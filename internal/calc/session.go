package calc

import (
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/pinkmath/foundation/core/errors"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
	"github.com/msto63/pinkmath/pkg/core/logging"
)

const maxHistory = 100

// Session modes
const (
	ModeChain = "chain"
	ModePlain = "plain"
)

// Options configures a Session
type Options struct {
	// Chain starts the engine in chain mode
	Chain bool

	// Precision rounds displayed results; 0 prints the shortest form
	Precision int

	// Shared evaluates on the process-wide engine instead of a private one
	Shared bool

	Logger *logging.Logger
}

// Result is the outcome of one evaluated line
type Result struct {
	Input string
	Value float64
	Text  string

	// Chain is set when Value is the engine's running result
	Chain bool
}

// Session evaluates calculator lines against one engine and keeps a
// bounded history
type Session struct {
	id        string
	engine    *mathx.Engine
	precision int
	logger    *logging.Logger
	history   []Result
	mu        sync.Mutex
}

// NewSession creates a session with a fresh ID
func NewSession(opts Options) *Session {
	var engine *mathx.Engine
	if opts.Shared {
		engine = mathx.Shared(mathx.WithChain(opts.Chain))
	} else {
		engine = mathx.New(opts.Chain)
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = logging.Wrap(logging.NewLogger(logging.LoggerConfig{Output: io.Discard}), "calc")
	}

	return &Session{
		id:        id,
		engine:    engine,
		precision: opts.Precision,
		logger:    logger.With("session", id),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Engine returns the underlying engine
func (s *Session) Engine() *mathx.Engine {
	return s.engine
}

// Mode returns "chain" or "plain"
func (s *Session) Mode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return modeName(s.engine.UseChain)
}

func modeName(chain bool) string {
	if chain {
		return ModeChain
	}
	return ModePlain
}

// Format renders x with the session precision
func (s *Session) Format(x float64) string {
	return Format(x, s.precision)
}

// Format renders x rounded to precision decimals; precision 0 keeps the
// shortest form
func Format(x float64, precision int) string {
	if precision > 0 {
		return mathx.FormatNumber(mathx.Round(x, precision))
	}
	return mathx.FormatNumber(x)
}

// History returns a copy of the evaluated lines, oldest first
func (s *Session) History() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Result, len(s.history))
	copy(out, s.history)
	return out
}

// Eval evaluates one line. Besides expressions it understands the
// commands done, reset and mode chain|plain.
func (s *Session) Eval(line string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	input := strings.TrimSpace(line)
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Result{}, errors.InvalidInput(errors.ModuleCalc, "eval", line, "an operation or expression")
	}

	res, err := s.eval(tokens)
	if err != nil {
		s.logger.Warn("evaluation failed", "input", input, "error", err.Error())
		return Result{}, err
	}

	res.Input = input
	res.Text = s.Format(res.Value)
	s.record(res)
	s.logger.Debug("evaluated", "input", input, "result", res.Text, "mode", modeName(s.engine.UseChain))
	return res, nil
}

func (s *Session) eval(tokens []string) (Result, error) {
	switch strings.ToLower(tokens[0]) {
	case "done":
		if len(tokens) > 1 {
			return Result{}, errors.InvalidInput(errors.ModuleCalc, "done", strings.Join(tokens, " "), "done")
		}
		return Result{Value: s.engine.Done()}, nil

	case "reset":
		if len(tokens) > 1 {
			return Result{}, errors.InvalidInput(errors.ModuleCalc, "reset", strings.Join(tokens, " "), "reset")
		}
		s.engine.Done()
		return Result{Value: 0}, nil

	case "mode":
		if len(tokens) != 2 {
			return Result{}, errors.InvalidInput(errors.ModuleCalc, "mode", strings.Join(tokens, " "), "mode chain|plain")
		}
		switch strings.ToLower(tokens[1]) {
		case ModeChain:
			s.engine.UseChain = true
		case ModePlain:
			s.engine.UseChain = false
		default:
			return Result{}, errors.InvalidInput(errors.ModuleCalc, "mode", tokens[1], "chain or plain")
		}
		return Result{Value: s.engine.Result, Chain: s.engine.UseChain}, nil
	}

	expr, err := parseExpression(tokens)
	if err != nil {
		return Result{}, err
	}

	if expr.seed != nil {
		// a plain engine keeps no value, so the seed would be dropped
		if !s.engine.UseChain {
			return Result{}, errors.InvalidInput(errors.ModuleCalc, "seed", strings.Join(tokens, " "), "an operation without start value in plain mode")
		}
		s.engine.Base(*expr.seed)
	}
	if len(expr.steps) == 0 {
		return Result{Value: s.engine.Result, Chain: true}, nil
	}

	var v mathx.Value
	for _, st := range expr.steps {
		v = s.engine.Chain(st.op, st.args...)
	}
	return Result{Value: v.Float64(), Chain: v.IsChain()}, nil
}

func (s *Session) record(res Result) {
	s.history = append(s.history, res)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}
