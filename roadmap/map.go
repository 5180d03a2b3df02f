package roadmap

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Waypoint is one centerline sample, carried in both frames.
type Waypoint struct {
	Global GlobalCoordinates
	Frenet FrenetCoordinates
}

// normalize rescales the stored unit normal (dx, dy) to unit length.
func (w *Waypoint) normalize() {
	norm := math.Hypot(w.Frenet.DX, w.Frenet.DY)
	if norm == 0 {
		return
	}
	w.Frenet.DX /= norm
	w.Frenet.DY /= norm
}

// Map is the ordered, closed-loop sequence of centerline waypoints.
// Frenet s is monotonically non-decreasing along the sequence; the
// track wraps from the last waypoint back to the first.
type Map struct {
	waypoints []Waypoint
}

// NewMap builds a Map from an already-ordered waypoint slice,
// normalizing each waypoint's stored unit normal.
func NewMap(waypoints []Waypoint) *Map {
	normalized := make([]Waypoint, len(waypoints))
	copy(normalized, waypoints)
	for i := range normalized {
		normalized[i].normalize()
	}
	return &Map{waypoints: normalized}
}

// Len returns the number of waypoints in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.waypoints)
}

// Waypoints returns the ordered waypoint slice (read-only use intended).
func (m *Map) Waypoints() []Waypoint {
	if m == nil {
		return nil
	}
	return m.waypoints
}

// totalLength returns the centerline's terminal s value, used to wrap
// Frenet s past the end of the loop back into [0, length].
func (m *Map) totalLength() float64 {
	if len(m.waypoints) == 0 {
		return 0
	}
	return m.waypoints[len(m.waypoints)-1].Frenet.S
}

// segmentIndex finds the largest index i such that waypoints[i].s <= s,
// wrapping s into the closed loop first. Uses a binary search since
// waypoints are monotone in s.
func (m *Map) segmentIndex(s float64) int {
	n := len(m.waypoints)
	if n == 0 {
		return 0
	}
	length := m.totalLength()
	if length > 0 {
		for s < 0 {
			s += length
		}
		for s > length {
			s -= length
		}
	}
	i := sort.Search(n, func(i int) bool { return m.waypoints[i].Frenet.S > s })
	i--
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// FrenetToCartesian converts a Frenet coordinate to global coordinates
// by finding the centerline segment the point's s falls on, walking d
// meters perpendicular to that segment's heading.
func (m *Map) FrenetToCartesian(f FrenetCoordinates) GlobalCoordinates {
	n := m.Len()
	if n == 0 {
		return GlobalCoordinates{}
	}
	s := f.S
	if length := m.totalLength(); length > 0 {
		for s < 0 {
			s += length
		}
		for s > length {
			s -= length
		}
	}
	prev := m.segmentIndex(s)
	next := (prev + 1) % n

	a := m.waypoints[prev].Global
	b := m.waypoints[next].Global
	heading := math.Atan2(b.Y-a.Y, b.X-a.X)

	segS := s - m.waypoints[prev].Frenet.S
	segX := a.X + segS*math.Cos(heading)
	segY := a.Y + segS*math.Sin(heading)

	perpHeading := heading - math.Pi/2
	x := segX + f.D*math.Cos(perpHeading)
	y := segY + f.D*math.Sin(perpHeading)
	return NewGlobalCoordinates(x, y)
}

// ClassifyLane returns the GlobalLaneId for the given Frenet coordinate.
func (m *Map) ClassifyLane(f FrenetCoordinates) GlobalLaneId {
	return ClassifyLane(f.D)
}

// ErrEmptyMap is returned by LoadMap when the file contains no waypoints.
var ErrEmptyMap = errors.New("map file contains no waypoints")
