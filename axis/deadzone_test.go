package axis

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/milk9111/axisinput/common"
)

func TestDeadZoneSweep(t *testing.T) {
	cases := []struct {
		name     string
		deadzone DeadZone
		min, max float32
	}{
		{name: "zero", deadzone: ZeroDeadZone, min: 0, max: 0},
		{name: "default", deadzone: DefaultDeadZone(), min: -0.1, max: 0.1},
		{name: "asymmetric", deadzone: NewDeadZone(-0.2, 0.3), min: -0.2, max: 0.3},
		{name: "magnitude", deadzone: MagnitudeDeadZone(0.4), min: -0.4, max: 0.4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, v := range sweep() {
				got := c.deadzone.Process(v)
				switch {
				case c.min <= v && v <= c.max:
					if !c.deadzone.WithinExclusion(v) {
						t.Fatalf("WithinExclusion(%v) = false", v)
					}
					if got != 0 {
						t.Fatalf("Process(%v) = %v, want 0", v, got)
					}
				case -1 <= v && v < c.min:
					if !c.deadzone.WithinLivezoneLower(v) {
						t.Fatalf("WithinLivezoneLower(%v) = false", v)
					}
					want := common.InverseLerp(-1, c.min, v) - 1
					if !common.NearlyEqual(got, want, tolerance) {
						t.Fatalf("Process(%v) = %v, want %v", v, got, want)
					}
				case c.max < v && v <= 1:
					if !c.deadzone.WithinLivezoneUpper(v) {
						t.Fatalf("WithinLivezoneUpper(%v) = false", v)
					}
					want := common.InverseLerp(c.max, 1, v)
					if !common.NearlyEqual(got, want, tolerance) {
						t.Fatalf("Process(%v) = %v, want %v", v, got, want)
					}
				default:
					if c.deadzone.WithinBounds(v) {
						t.Fatalf("WithinBounds(%v) = true", v)
					}
					if want := common.Clamp(v, -1, 1); got != want {
						t.Fatalf("Process(%v) = %v, want %v", v, got, want)
					}
				}
			}
		})
	}
}

func TestDeadZoneNoOvershootAndMonotonic(t *testing.T) {
	deadzones := []DeadZone{DefaultDeadZone(), NewDeadZone(-0.35, 0.05), MagnitudeDeadZone(0.9)}
	for _, d := range deadzones {
		prev := float32(math.Inf(-1))
		for _, v := range sweep() {
			got := d.Process(v)
			if common.Abs(got) > 1 {
				t.Fatalf("%s: Process(%v) = %v overshoots", d, v, got)
			}
			if got < prev {
				t.Fatalf("%s: Process(%v) = %v decreased from %v", d, v, got, prev)
			}
			prev = got
		}
	}
}

func TestDeadZoneReciprocals(t *testing.T) {
	d := NewDeadZone(-0.2, 0.3)
	if lo, hi := d.LivezoneLowerMinMax(); lo != -1 || hi != -0.2 {
		t.Fatalf("LivezoneLowerMinMax() = (%v, %v)", lo, hi)
	}
	if lo, hi := d.LivezoneUpperMinMax(); lo != 0.3 || hi != 1 {
		t.Fatalf("LivezoneUpperMinMax() = (%v, %v)", lo, hi)
	}
	if !common.NearlyEqual(d.livezoneLowerRecip, 1/0.8, tolerance) {
		t.Fatalf("lower recip = %v", d.livezoneLowerRecip)
	}
	if !common.NearlyEqual(d.livezoneUpperRecip, 1/0.7, tolerance) {
		t.Fatalf("upper recip = %v", d.livezoneUpperRecip)
	}
	if got := NewDeadZone(0, 0); got != ZeroDeadZone {
		t.Fatalf("NewDeadZone(0, 0) = %+v, want ZeroDeadZone", got)
	}
	if d.Bounds() != DefaultBounds() {
		t.Fatalf("Bounds() = %s", d.Bounds())
	}
}

func TestDeadZoneEmptyLivezone(t *testing.T) {
	d := NewDeadZone(-1, 1)
	for _, v := range []float32{-5, -1, -0.5, 0, 0.5, 1, 5} {
		got := d.Process(v)
		if got != 0 {
			t.Fatalf("Process(%v) = %v, want 0", v, got)
		}
	}
	wide := NewDeadZone(-2, 0.5)
	if got := wide.Process(-1.5); got != 0 || math.IsNaN(float64(got)) {
		t.Fatalf("Process(-1.5) = %v, want 0", got)
	}
}

func TestDeadZoneExtendDualReflexive(t *testing.T) {
	pairs := [][2]float32{{0, 0}, {-0.1, 0.1}, {-0.25, 0.3}, {-0.9, 0.05}, {-1, 1}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		if got, want := NewDeadZone(a, b).ExtendDual(), DualDeadZoneAll(a, b); got != want {
			t.Fatalf("NewDeadZone(%v, %v).ExtendDual() = %s, want %s", a, b, got, want)
		}
		if got, want := NewDeadZone(a, b).ExtendDualOnlyX(), DualDeadZoneOnlyX(a, b); got != want {
			t.Fatalf("ExtendDualOnlyX() = %s, want %s", got, want)
		}
		if got, want := NewDeadZone(a, b).ExtendDualOnlyY(), DualDeadZoneOnlyY(a, b); got != want {
			t.Fatalf("ExtendDualOnlyY() = %s, want %s", got, want)
		}
	}

	d := NewDeadZone(-0.2, 0.3)
	other := MagnitudeDeadZone(0.4)
	if got, want := d.ExtendDualWithX(other), FromDeadZones(other, d); got != want {
		t.Fatalf("ExtendDualWithX() = %s, want %s", got, want)
	}
	if got, want := d.ExtendDualWithY(other), FromDeadZones(d, other); got != want {
		t.Fatalf("ExtendDualWithY() = %s, want %s", got, want)
	}
}

func TestDualDeadZoneSplat(t *testing.T) {
	d := FromDeadZones(NewDeadZone(-0.25, 0.3), NewDeadZone(-0.3, 0.3))
	got := d.Process(mgl32.Vec2{0.3, 0.3})
	if got[0] != 0 {
		t.Fatalf("x = %v, want 0", got[0])
	}
	if got[1] < 0 || got[1] > tolerance {
		t.Fatalf("y = %v, want about 0", got[1])
	}

	got = d.Process(mgl32.Vec2{-0.5, 0.65})
	assertVec(t, "livezone", got, mgl32.Vec2{-1.0 / 3.0, 0.5})

	if ex := d.WithinExclusion(mgl32.Vec2{-0.26, 0.3}); ex != [2]bool{false, true} {
		t.Fatalf("WithinExclusion = %v", ex)
	}
	if d.Exclusion() != NewDualExclusion(-0.25, 0.3, -0.3, 0.3) {
		t.Fatalf("Exclusion() = %s", d.Exclusion())
	}
}

func TestDualDeadZoneDiagonalExceedsCircle(t *testing.T) {
	square := MagnitudeDualDeadZoneAll(0.1)
	got := square.Process(mgl32.Vec2{1, 1})
	if got.Len() <= 1 {
		t.Fatalf("square diagonal length = %v, want > 1", got.Len())
	}
	circle := DefaultCircleDeadZone()
	if got := circle.Process(mgl32.Vec2{1, 1}); got.Len() > 1+tolerance {
		t.Fatalf("circle diagonal length = %v, want <= 1", got.Len())
	}
}

func TestCircleDeadZoneScenario(t *testing.T) {
	d := NewCircleExclusion(0.3).Scaled()
	v := mgl32.Vec2{0.6, -0.5}
	got := d.Process(v)

	length := v.Len()
	want := v.Mul(1 / length).Mul((length - 0.3) / (1 - 0.3))
	assertVec(t, "scenario", got, want)

	if l := got.Len(); l <= 0 || l >= 1 {
		t.Fatalf("length = %v, want in (0, 1)", l)
	}
	if a, b := angle(got), angle(v); math.Abs(a-b) > 1e-5 {
		t.Fatalf("angle = %v, want %v", a, b)
	}
}

func TestCircleDeadZoneAnglePreserved(t *testing.T) {
	deadzones := []CircleDeadZone{DefaultCircleDeadZone(), NewCircleDeadZone(0.45), ZeroCircleDeadZone}
	for _, d := range deadzones {
		for i := -20; i <= 20; i++ {
			for j := -20; j <= 20; j++ {
				v := mgl32.Vec2{float32(i) * 0.07, float32(j) * 0.07}
				got := d.Process(v)
				if d.WithinExclusion(v) {
					if got != Vec2Zero {
						t.Fatalf("%s: Process(%v) = %v, want zero", d, v, got)
					}
					continue
				}
				if got.Len() > 1+tolerance {
					t.Fatalf("%s: Process(%v) length %v overshoots", d, v, got.Len())
				}
				if a, b := angle(got), angle(v); math.Abs(a-b) > 1e-5 {
					t.Fatalf("%s: Process(%v) angle %v, want %v", d, v, a, b)
				}
			}
		}
	}
}

func TestCircleDeadZoneEdges(t *testing.T) {
	if got := DefaultCircleDeadZone().Process(Vec2Zero); got != Vec2Zero {
		t.Fatalf("Process(zero) = %v", got)
	}
	if got := ZeroCircleDeadZone; got != NewCircleDeadZone(0) {
		t.Fatalf("ZeroCircleDeadZone = %+v, want %+v", got, NewCircleDeadZone(0))
	}
	full := NewCircleDeadZone(1)
	if got := full.Process(mgl32.Vec2{3, 0}); got != Vec2Zero {
		t.Fatalf("radius 1 Process = %v, want zero", got)
	}
	assertVec(t, "clamped outside", DefaultCircleDeadZone().Process(mgl32.Vec2{0, -4}), mgl32.Vec2{0, -1})
	mustPanic(t, "negative radius", func() { NewCircleDeadZone(-0.1) })

	extreme := mgl32.Vec2{math.MaxFloat32, -math.MaxFloat32}
	assertVec(t, "beyond float32 length", DefaultCircleDeadZone().Process(extreme), mgl32.Vec2{math.Sqrt2 / 2, -math.Sqrt2 / 2})
}

func TestEllipseDeadZone(t *testing.T) {
	d := NewEllipseDeadZone(0.1, 0.1)
	cases := []struct {
		name string
		in   mgl32.Vec2
		want mgl32.Vec2
	}{
		{name: "on x", in: mgl32.Vec2{0.1, 0}, want: Vec2Zero},
		{name: "on y", in: mgl32.Vec2{0, -0.1}, want: Vec2Zero},
		{name: "inside", in: mgl32.Vec2{0.05, 0.05}, want: Vec2Zero},
		{name: "0.75", in: mgl32.Vec2{0.75, 0.75}, want: mgl32.Vec2{0.73097724, 0.73097724}},
		{name: "-0.5", in: mgl32.Vec2{-0.5, -0.5}, want: mgl32.Vec2{-0.4619544, -0.4619544}},
		{name: "0.25", in: mgl32.Vec2{0.25, 0.25}, want: mgl32.Vec2{0.19293164, 0.19293164}},
		{name: "0.1", in: mgl32.Vec2{0.1, 0.1}, want: mgl32.Vec2{0.03151798, 0.03151798}},
		{name: "full", in: mgl32.Vec2{1, 0}, want: mgl32.Vec2{1, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertVec(t, c.name, d.Process(c.in), c.want)
		})
	}
	mustPanic(t, "negative radius", func() { NewEllipseDeadZone(-0.1, 0) })
}

func TestRoundedSquareDeadZone(t *testing.T) {
	d := DefaultRoundedSquareDeadZone()
	cases := []struct {
		name string
		in   mgl32.Vec2
		want mgl32.Vec2
	}{
		{name: "origin", in: Vec2Zero, want: Vec2Zero},
		{name: "on axis", in: mgl32.Vec2{0.5, 0}, want: mgl32.Vec2{(0.5 - 0.125) / 0.875, 0}},
		{name: "rounded corner", in: mgl32.Vec2{0.11, 0.11}, want: Vec2Zero},
		{name: "far corner", in: mgl32.Vec2{1, -1}, want: mgl32.Vec2{1, -1}},
		{name: "negative axis", in: mgl32.Vec2{0, -1}, want: mgl32.Vec2{0, -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertVec(t, c.name, d.Process(c.in), c.want)
		})
	}

	square := MagnitudeDualDeadZoneAll(0.1).Process(mgl32.Vec2{0.11, 0.11})
	if square[0] <= 0 || square[1] <= 0 {
		t.Fatalf("square deadzone corner = %v, want positive", square)
	}
}

func TestRoundedSquareContinuity(t *testing.T) {
	d := DefaultRoundedSquareDeadZone()
	prev := d.Process(mgl32.Vec2{0, 0.6})
	for i := 1; i <= 400; i++ {
		v := mgl32.Vec2{float32(i) * 0.0025, 0.6}
		got := d.Process(v)
		if step := got.Sub(prev).Len(); step > 0.02 {
			t.Fatalf("jump of %v at %v (prev %v, got %v)", step, v, prev, got)
		}
		prev = got
	}
	mustPanic(t, "negative threshold", func() { NewRoundedSquareDeadZone(-0.1, 0, 0, 0) })
	mustPanic(t, "negative radius", func() { NewRoundedSquareDeadZone(0.1, 0.1, -0.1, 0) })
}

func TestNormalizeLivezone(t *testing.T) {
	cases := []struct {
		in, threshold, want float32
	}{
		{in: 0.05, threshold: 0.1, want: 0},
		{in: -1, threshold: 0.1, want: -1},
		{in: 0.55, threshold: 0.1, want: 0.5},
		{in: -0.55, threshold: 0.1, want: -0.5},
		{in: 2, threshold: 0.1, want: 1},
	}
	for _, c := range cases {
		got := NormalizeLivezone(c.in, c.threshold)
		if !common.NearlyEqual(got, c.want, tolerance) {
			t.Fatalf("NormalizeLivezone(%v, %v) = %v, want %v", c.in, c.threshold, got, c.want)
		}
	}
}

func angle(v mgl32.Vec2) float64 {
	return math.Atan2(float64(v.Y()), float64(v.X()))
}
