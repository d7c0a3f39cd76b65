package axis

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestModifiers(t *testing.T) {
	if got := (Inverted{}).Process(0.4); got != -0.4 {
		t.Fatalf("Inverted = %v", got)
	}
	cases := []struct {
		factor Sensitivity
		in     float32
		want   float32
	}{
		{factor: 1, in: 0.3, want: 0.3},
		{factor: 0, in: 0.3, want: 0},
		{factor: 2, in: 0.3, want: 0.6},
		{factor: -0.5, in: 0.3, want: -0.15},
	}
	for _, c := range cases {
		if got := c.factor.Process(c.in); got != c.want {
			t.Fatalf("%s.Process(%v) = %v, want %v", c.factor, c.in, got, c.want)
		}
	}

	v := mgl32.Vec2{0.5, -0.25}
	assertVec(t, "inverted all", DualInvertedAll.Process(v), mgl32.Vec2{-0.5, 0.25})
	assertVec(t, "inverted x", DualInvertedOnlyX.Process(v), mgl32.Vec2{-0.5, -0.25})
	assertVec(t, "inverted y", DualInvertedOnlyY.Process(v), mgl32.Vec2{0.5, 0.25})
	if NewDualInverted(true, false) != DualInvertedOnlyX {
		t.Fatalf("NewDualInverted(true, false) != DualInvertedOnlyX")
	}
	if got := DualInvertedOnlyY.IsInverted(); got != [2]bool{false, true} {
		t.Fatalf("IsInverted = %v", got)
	}
	assertVec(t, "sensitivity", NewDualSensitivity(2, -1).Process(v), mgl32.Vec2{1, 0.25})
	assertVec(t, "sensitivity all", DualSensitivityAll(4).Process(v), mgl32.Vec2{2, -1})
	assertVec(t, "sensitivity only y", DualSensitivityOnlyY(3).Process(v), mgl32.Vec2{0.5, -0.75})
	if got := DualSensitivityOnlyX(3).Scale(); got != (mgl32.Vec2{3, 1}) {
		t.Fatalf("Scale() = %v", got)
	}
}

func TestPipelineIdentity(t *testing.T) {
	var p Pipeline
	for _, v := range sweep() {
		if got := p.Process(v); got != v {
			t.Fatalf("empty pipeline Process(%v) = %v", v, got)
		}
	}
	var dp DualPipeline
	v := mgl32.Vec2{-7, 3}
	if got := dp.Process(v); got != v {
		t.Fatalf("empty dual pipeline Process(%v) = %v", v, got)
	}
}

func TestPipelineOrder(t *testing.T) {
	p := NewPipeline(Sensitivity(2), NewBounds(-1, 1), Inverted{})
	if got := p.Process(0.8); got != -1 {
		t.Fatalf("Process(0.8) = %v, want -1", got)
	}

	reversed := NewPipeline(Inverted{}, NewBounds(-1, 1), Sensitivity(2))
	if got := reversed.Process(0.8); got != -1.6 {
		t.Fatalf("reversed Process(0.8) = %v, want -1.6", got)
	}
}

func TestPipelineMutation(t *testing.T) {
	p := NewPipeline(Sensitivity(2))
	p.Push(Inverted{})
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if got := p.Process(0.25); got != -0.5 {
		t.Fatalf("Process(0.25) = %v, want -0.5", got)
	}

	p.Set(1, Sensitivity(3))
	if got := p.Process(0.25); got != 1.5 {
		t.Fatalf("after Set Process(0.25) = %v, want 1.5", got)
	}

	copied := p.With(Inverted{})
	if p.Len() != 2 || copied.Len() != 3 {
		t.Fatalf("With changed the source: %d, %d", p.Len(), copied.Len())
	}

	stages := p.Stages()
	stages[0] = Inverted{}
	if got := p.Process(0.25); got != 1.5 {
		t.Fatalf("Stages() leaked internal slice")
	}

	p.Clear()
	if p.Len() != 0 || p.Process(0.25) != 0.25 {
		t.Fatalf("Clear did not reset the pipeline")
	}

	mustPanic(t, "set out of range", func() { p.Set(0, Inverted{}) })
	mustPanic(t, "set nil", func() {
		q := NewPipeline(Inverted{})
		q.Set(0, nil)
	})
}

func TestPipelineCopiesIndependent(t *testing.T) {
	p := NewPipeline(Sensitivity(2), Sensitivity(3), Sensitivity(4))
	q := p
	q.Push(Inverted{})
	p.Push(Sensitivity(10))
	if got := q.Process(1); got != -24 {
		t.Fatalf("copy Process(1) = %v, want -24 (%s)", got, q)
	}
	if got := p.Process(1); got != 240 {
		t.Fatalf("source Process(1) = %v, want 240 (%s)", got, p)
	}

	r := p
	r.Set(0, Inverted{})
	if got := p.Process(1); got != 240 {
		t.Fatalf("Set on a copy changed the source: %s", p)
	}
	if got := r.Process(1); got != -120 {
		t.Fatalf("copy after Set Process(1) = %v, want -120", got)
	}

	d := NewDualPipeline(DualSensitivityAll(2), DualSensitivityAll(3))
	e := d
	e.Push(DualInvertedAll)
	d.Push(DualSensitivityAll(10))
	if got := e.Process(mgl32.Vec2{1, 1}); got != (mgl32.Vec2{-6, -6}) {
		t.Fatalf("dual copy Process = %v, want [-6 -6]", got)
	}
	f := d
	f.Set(0, DualInvertedAll)
	if got := d.Process(mgl32.Vec2{1, 1}); got != (mgl32.Vec2{60, 60}) {
		t.Fatalf("dual Set on a copy changed the source: %v", got)
	}
}

func TestPipelineFlatten(t *testing.T) {
	inner := NewPipeline(Sensitivity(2), Inverted{})
	outer := NewPipeline(inner, DefaultBounds())
	if outer.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", outer.Len())
	}
	if got := outer.Process(0.9); got != -1 {
		t.Fatalf("Process(0.9) = %v, want -1", got)
	}
}

func TestThen(t *testing.T) {
	p := Then(Sensitivity(2), Inverted{})
	pipeline, ok := p.(Pipeline)
	if !ok {
		t.Fatalf("Then returned %T, want Pipeline", p)
	}
	if pipeline.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", pipeline.Len())
	}

	merged := Then(pipeline, DefaultDeadZone()).(Pipeline)
	if merged.Len() != 3 || pipeline.Len() != 2 {
		t.Fatalf("merge lengths = %d, %d", merged.Len(), pipeline.Len())
	}

	dual := ThenDual(DefaultCircleDeadZone(), DualInvertedAll)
	dualMerged := ThenDual(dual, DualSensitivityAll(2)).(DualPipeline)
	if dualMerged.Len() != 3 {
		t.Fatalf("dual Len() = %d, want 3", dualMerged.Len())
	}
	got := dualMerged.Process(mgl32.Vec2{1, 0})
	assertVec(t, "dual merged", got, mgl32.Vec2{-2, 0})
}

func TestDualPipelineMutation(t *testing.T) {
	p := NewDualPipeline(DualInvertedAll)
	p.Push(NewCircleBounds(1))
	p.Set(0, DualSensitivityAll(10))
	assertVec(t, "clamped", p.Process(mgl32.Vec2{0.3, 0.4}), mgl32.Vec2{0.6, 0.8})
	p.Clear()
	if p.Len() != 0 {
		t.Fatalf("Clear left %d stages", p.Len())
	}
	mustPanic(t, "set out of range", func() { p.Set(2, DualInvertedAll) })
}

func TestCustom(t *testing.T) {
	square := Custom{Name: "square", Func: func(v float32) float32 { return v * v }}
	p := NewPipeline(square, Sensitivity(-1))
	if got := p.Process(0.5); got != -0.25 {
		t.Fatalf("Process(0.5) = %v, want -0.25", got)
	}
	if got := (Custom{Name: "noop"}).Process(0.7); got != 0.7 {
		t.Fatalf("nil Func Process = %v", got)
	}

	swap := DualCustom{Name: "swap", Func: func(v mgl32.Vec2) mgl32.Vec2 { return mgl32.Vec2{v[1], v[0]} }}
	assertVec(t, "swap", swap.Process(mgl32.Vec2{1, 2}), mgl32.Vec2{2, 1})
	if got := (DualCustom{}).Process(mgl32.Vec2{1, 2}); got != (mgl32.Vec2{1, 2}) {
		t.Fatalf("nil dual Func Process = %v", got)
	}
}

func TestString(t *testing.T) {
	p := NewPipeline(Sensitivity(2), DefaultDeadZone(), Custom{Name: "curve"})
	want := "Pipeline[Sensitivity(2) -> DeadZone[-0.1, 0.1] -> Custom(curve)]"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	dp := NewDualPipeline(DefaultCircleDeadZone(), DualInvertedOnlyY)
	if got := dp.String(); !strings.Contains(got, "CircleDeadZone{radius: 0.1}") {
		t.Fatalf("String() = %q", got)
	}
}
