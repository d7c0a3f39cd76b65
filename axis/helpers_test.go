package axis

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-6

var approx = cmpopts.EquateApprox(0, 1e-5)

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func assertVec(t *testing.T, name string, got, want mgl32.Vec2) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("%s: mismatch (-want +got):\n%s", name, diff)
	}
}

// sweep returns -3.00, -2.99, ..., 2.99.
func sweep() []float32 {
	values := make([]float32, 0, 600)
	for i := -300; i < 300; i++ {
		values = append(values, float32(i)*0.01)
	}
	return values
}
