package roadmap

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestFitSplineInterpolatesLine(t *testing.T) {
	xs := []float64{0, 10, 20, 30, 40}
	ys := []float64{0, 0, 0, 0, 0}

	samples, err := FitSpline(xs, ys, 1.0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(samples) > 0, test.ShouldBeTrue)
	for _, s := range samples {
		test.That(t, s.Y, test.ShouldAlmostEqual, 0.0, 1e-6)
	}
	last := samples[len(samples)-1]
	test.That(t, math.Abs(last.X-40) < 1.0, test.ShouldBeTrue)
}

func TestFitSplineRequiresTwoAnchors(t *testing.T) {
	_, err := FitSpline([]float64{0}, []float64{0}, 1.0)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestFitSplineMismatchedLengths(t *testing.T) {
	_, err := FitSpline([]float64{0, 1}, []float64{0}, 1.0)
	test.That(t, err, test.ShouldNotBeNil)
}
