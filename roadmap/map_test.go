package roadmap

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func straightMap(n int, spacing float64) *Map {
	waypoints := make([]Waypoint, n)
	for i := 0; i < n; i++ {
		s := float64(i) * spacing
		waypoints[i] = Waypoint{
			Global: NewGlobalCoordinates(s, 0),
			Frenet: FrenetCoordinates{S: s, DX: 0, DY: 1},
		}
	}
	return NewMap(waypoints)
}

func TestClassifyLanePartition(t *testing.T) {
	cases := []struct {
		d        float64
		expected GlobalLaneId
	}{
		{-1, GlobalLaneInvalid},
		{0, GlobalLaneInvalid},
		{2, GlobalLaneLeft},
		{4, GlobalLaneInvalid},
		{6, GlobalLaneCenter},
		{8, GlobalLaneInvalid},
		{10, GlobalLaneRight},
		{12, GlobalLaneInvalid},
		{13, GlobalLaneInvalid},
	}
	for _, tc := range cases {
		test.That(t, ClassifyLane(tc.d), test.ShouldEqual, tc.expected)
	}
}

func TestGlobalLaneIdSaturatingArithmetic(t *testing.T) {
	test.That(t, GlobalLaneLeft.Add(-1), test.ShouldEqual, GlobalLaneInvalid)
	test.That(t, GlobalLaneRight.Add(1), test.ShouldEqual, GlobalLaneInvalid)
	test.That(t, GlobalLaneCenter.Add(1), test.ShouldEqual, GlobalLaneRight)
	test.That(t, GlobalLaneCenter.Add(-1), test.ShouldEqual, GlobalLaneLeft)
	test.That(t, GlobalLaneInvalid.Add(1), test.ShouldEqual, GlobalLaneInvalid)
}

func TestFrenetToCartesianOnStraightMap(t *testing.T) {
	m := straightMap(10, 10)
	g := m.FrenetToCartesian(FrenetCoordinates{S: 25, D: 6})
	test.That(t, g.X, test.ShouldAlmostEqual, 25.0, 1e-9)
	test.That(t, g.Y, test.ShouldAlmostEqual, -6.0, 1e-9)
}

func TestFrenetToCartesianWraps(t *testing.T) {
	m := straightMap(10, 10)
	length := m.totalLength()

	atStart := m.FrenetToCartesian(FrenetCoordinates{S: 2, D: 0})
	pastEnd := m.FrenetToCartesian(FrenetCoordinates{S: length + 2, D: 0})

	test.That(t, pastEnd.X, test.ShouldAlmostEqual, atStart.X, 0.1)
	test.That(t, pastEnd.Y, test.ShouldAlmostEqual, atStart.Y, 0.1)
}

func TestFrenetCartesianRoundTripOnWaypoints(t *testing.T) {
	m := straightMap(20, 7.5)
	for _, wp := range m.Waypoints() {
		got := m.FrenetToCartesian(FrenetCoordinates{S: wp.Frenet.S, D: 0})
		test.That(t, got.X, test.ShouldAlmostEqual, wp.Global.X, 1e-6)
		test.That(t, got.Y, test.ShouldAlmostEqual, wp.Global.Y, 1e-6)
	}
}

func TestNormalizeUnitNormal(t *testing.T) {
	m := NewMap([]Waypoint{
		{Global: NewGlobalCoordinates(0, 0), Frenet: FrenetCoordinates{S: 0, DX: 3, DY: 4}},
	})
	wp := m.Waypoints()[0]
	test.That(t, math.Hypot(wp.Frenet.DX, wp.Frenet.DY), test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestRotate(t *testing.T) {
	g := NewGlobalCoordinates(1, 0)
	rotated := g.Rotate(math.Pi / 2)
	test.That(t, rotated.X, test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, rotated.Y, test.ShouldAlmostEqual, 1.0, 1e-9)
}
