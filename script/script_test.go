package script

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/axis"
)

func TestProcessor(t *testing.T) {
	cases := []struct {
		name string
		src  string
		in   float32
		want float32
	}{
		{name: "double", src: `result := value * 2`, in: 0.25, want: 0.5},
		{name: "cubic", src: `result := value * value * value`, in: -0.5, want: -0.125},
		{name: "int result", src: `result := 1`, in: 0.3, want: 1},
		{name: "helpers", src: `result := clamp(lerp(0, 4, value), -1, 1) * sign(value)`, in: 0.5, want: 1},
		{name: "stdlib", src: `math := import("math"); result := math.abs(value)`, in: -0.75, want: 0.75},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Compile(c.name, c.src, nil)
			if err != nil {
				t.Fatalf("Compile: %v", err)
			}
			got, err := p.Eval(c.in)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if got != c.want {
				t.Fatalf("Eval(%v) = %v, want %v", c.in, got, c.want)
			}
			if got := p.Process(c.in); got != c.want {
				t.Fatalf("Process(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestProcessorErrors(t *testing.T) {
	if _, err := Compile("empty", "  ", nil); err == nil {
		t.Fatalf("expected error for empty source")
	}
	if _, err := Compile("syntax", "result := (", nil); err == nil {
		t.Fatalf("expected compile error")
	}

	missing, err := Compile("missing", `x := value`, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := missing.Eval(0.5); !errors.Is(err, ErrNoResult) {
		t.Fatalf("Eval error = %v, want ErrNoResult", err)
	}
	if got := missing.Process(0.5); got != 0.5 {
		t.Fatalf("Process fallback = %v, want input", got)
	}

	wrongType, err := Compile("string", `result := "fast"`, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := wrongType.Eval(0.1); err == nil {
		t.Fatalf("expected type error")
	}

	runtime, err := Compile("runtime", `result := clamp(value)`, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := runtime.Process(-0.2); got != -0.2 {
		t.Fatalf("Process fallback = %v, want input", got)
	}
}

func TestDualProcessor(t *testing.T) {
	p, err := CompileDual("swap", `rx := y; ry := -x`, nil)
	if err != nil {
		t.Fatalf("CompileDual: %v", err)
	}
	got := p.Process(mgl32.Vec2{0.25, 0.5})
	if got != (mgl32.Vec2{0.5, -0.25}) {
		t.Fatalf("Process = %v", got)
	}

	half, err := CompileDual("half", `rx := x; `, nil)
	if err != nil {
		t.Fatalf("CompileDual: %v", err)
	}
	if _, err := half.Eval(mgl32.Vec2{1, 1}); !errors.Is(err, ErrNoResult) {
		t.Fatalf("Eval error = %v, want ErrNoResult", err)
	}
}

func TestAsProcessor(t *testing.T) {
	p, err := Compile("square", `result := value * value`, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	pipeline := axis.NewPipeline(p.AsProcessor(), axis.Inverted{})
	if got := pipeline.Process(0.5); got != -0.25 {
		t.Fatalf("pipeline Process = %v, want -0.25", got)
	}

	d, err := CompileDual("scale", `rx := x * 2; ry := y * 2`, nil)
	if err != nil {
		t.Fatalf("CompileDual: %v", err)
	}
	dual := axis.NewDualPipeline(d.AsDualProcessor(), axis.NewCircleBounds(1))
	got := dual.Process(mgl32.Vec2{0.3, 0.4})
	if l := got.Len(); l < 0.99999 || l > 1.00001 {
		t.Fatalf("dual pipeline length = %v, want 1", l)
	}
}

func TestConcurrentProcess(t *testing.T) {
	p, err := Compile("triple", `result := value * 3`, nil)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := float32(i) * 0.25
			got, err := p.Eval(in)
			if err != nil {
				errs <- err
				return
			}
			if got != in*3 {
				errs <- errors.New("mismatched result")
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Eval: %v", err)
	}
}
