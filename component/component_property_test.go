package component_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/chronet/component"
)

// relativeErrorBound is HyperLogLog's standard relative-error bound
// 1.04/sqrt(m) at the package's fixed register count, widened a little to
// absorb the test's own sampling variance.
const relativeErrorBound = 0.05

func TestComponentSketchWithinHLLBound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(200, 2000).Draw(t, "n")
		exact := component.NewComponent[int]()
		sketch := component.NewComponentSketch[int]()
		for i := 0; i < n; i++ {
			exact.Insert(i)
			sketch.Insert(i)
		}

		got := sketch.SizeEstimate()
		want := float64(exact.Size())
		if rel := math.Abs(got/want - 1); rel >= relativeErrorBound {
			t.Fatalf("SizeEstimate() = %v, exact = %v, relative error %v >= %v", got, want, rel, relativeErrorBound)
		}
	})
}
