package roadmap

import (
	"gonum.org/v1/gonum/interp"

	"github.com/pkg/errors"
)

// FitSpline fits an Akima spline through the given (x, y) anchor
// points — expected to already be expressed in a local frame where x
// is monotonically increasing along the direction of travel — and
// samples it at the requested resolution between the first and last
// anchor x value.
//
// Anchors x must be strictly increasing; TrajectoryPlanner guarantees
// this by construction (the reference frame points along +x and the
// forward anchors are placed at increasing s offsets).
func FitSpline(xs, ys []float64, samplesPerMeter float64) ([]GlobalCoordinates, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("roadmap: spline anchor x/y length mismatch")
	}
	if len(xs) < 2 {
		return nil, errors.New("roadmap: spline needs at least two anchors")
	}

	var akima interp.AkimaSpline
	if err := akima.Fit(xs, ys); err != nil {
		return nil, errors.Wrap(err, "roadmap: fitting spline")
	}

	span := xs[len(xs)-1] - xs[0]
	if span <= 0 {
		return nil, errors.New("roadmap: spline anchors must be strictly increasing in x")
	}
	numSamples := int(span * samplesPerMeter)
	if numSamples < 1 {
		numSamples = 1
	}

	samples := make([]GlobalCoordinates, 0, numSamples)
	step := span / float64(numSamples)
	for i := 1; i <= numSamples; i++ {
		x := xs[0] + step*float64(i)
		samples = append(samples, NewGlobalCoordinates(x, akima.Predict(x)))
	}
	return samples, nil
}
