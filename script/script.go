package script

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/milk9111/axisinput/axis"
)

var ErrNoResult = errors.New("script: result not set")

// program is a compiled script plus a pool of clones, one per concurrent
// caller.
type program struct {
	name     string
	compiled *tengo.Compiled
	pool     sync.Pool
	logger   *zap.SugaredLogger
	warned   atomic.Bool
}

func compile(name, src string, inputs []string, logger *zap.SugaredLogger) (*program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("script: compile %s: empty source", name)
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := tengo.NewScript([]byte(src))
	for _, in := range inputs {
		if err := s.Add(in, 0.0); err != nil {
			return nil, fmt.Errorf("script: compile %s: add %s: %w", name, in, err)
		}
	}
	for fnName, fn := range helpers() {
		if err := s.Add(fnName, fn); err != nil {
			return nil, fmt.Errorf("script: compile %s: add %s: %w", name, fnName, err)
		}
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	p := &program{name: name, compiled: compiled, logger: logger}
	p.pool.New = func() any { return p.compiled.Clone() }
	return p, nil
}

func (p *program) run(inputs map[string]float64, outputs ...string) ([]float64, error) {
	c := p.pool.Get().(*tengo.Compiled)
	defer p.pool.Put(c)

	for name, v := range inputs {
		if err := c.Set(name, v); err != nil {
			return nil, fmt.Errorf("script: %s: set %s: %w", p.name, name, err)
		}
	}
	if err := c.Run(); err != nil {
		return nil, fmt.Errorf("script: %s: run: %w", p.name, err)
	}

	out := make([]float64, len(outputs))
	for i, name := range outputs {
		v := c.Get(name)
		if v.IsUndefined() {
			return nil, fmt.Errorf("%w: %s in %s", ErrNoResult, name, p.name)
		}
		f, ok := tengo.ToFloat64(v.Object())
		if !ok {
			return nil, fmt.Errorf("script: %s: %s is %s, not a number", p.name, name, v.ValueType())
		}
		out[i] = f
	}
	return out, nil
}

// warnOnce logs the first runtime failure of a script. Later failures are
// silent so a broken script does not flood the log every frame.
func (p *program) warnOnce(err error) {
	if p.warned.CompareAndSwap(false, true) {
		p.logger.Warnf("script: %s failed, passing input through: %v", p.name, err)
	}
}

// Processor is a single-axis processor backed by a tengo script. The
// script reads `value` and assigns `result`.
type Processor struct {
	prog *program
}

func Compile(name, src string, logger *zap.SugaredLogger) (*Processor, error) {
	prog, err := compile(name, src, []string{"value"}, logger)
	if err != nil {
		return nil, err
	}
	return &Processor{prog: prog}, nil
}

func (p *Processor) Name() string { return p.prog.name }

// Eval runs the script once. Process is the error-swallowing form.
func (p *Processor) Eval(value float32) (float32, error) {
	out, err := p.prog.run(map[string]float64{"value": float64(value)}, "result")
	if err != nil {
		return value, err
	}
	return float32(out[0]), nil
}

func (p *Processor) Process(value float32) float32 {
	out, err := p.Eval(value)
	if err != nil {
		p.prog.warnOnce(err)
	}
	return out
}

func (p *Processor) AsProcessor() axis.Processor {
	return axis.Custom{Name: p.prog.name, Func: p.Process}
}

// DualProcessor is a dual-axis processor backed by a tengo script. The
// script reads `x` and `y` and assigns `rx` and `ry`.
type DualProcessor struct {
	prog *program
}

func CompileDual(name, src string, logger *zap.SugaredLogger) (*DualProcessor, error) {
	prog, err := compile(name, src, []string{"x", "y"}, logger)
	if err != nil {
		return nil, err
	}
	return &DualProcessor{prog: prog}, nil
}

func (p *DualProcessor) Name() string { return p.prog.name }

func (p *DualProcessor) Eval(value mgl32.Vec2) (mgl32.Vec2, error) {
	out, err := p.prog.run(map[string]float64{"x": float64(value[0]), "y": float64(value[1])}, "rx", "ry")
	if err != nil {
		return value, err
	}
	return mgl32.Vec2{float32(out[0]), float32(out[1])}, nil
}

func (p *DualProcessor) Process(value mgl32.Vec2) mgl32.Vec2 {
	out, err := p.Eval(value)
	if err != nil {
		p.prog.warnOnce(err)
	}
	return out
}

func (p *DualProcessor) AsDualProcessor() axis.DualProcessor {
	return axis.DualCustom{Name: p.prog.name, Func: p.Process}
}
