// Package roadmap holds the planner's coordinate types, the
// closed-loop centerline map, and the Frenet<->Cartesian conversions
// every pipeline stage builds on.
package roadmap

import (
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/highwayplanner/logging"
)

// GlobalCoordinates is a planar Cartesian position. It stores an
// r3.Vector with Z pinned to 0, matching the 3D vector type the rest
// of the pack passes between planning components.
type GlobalCoordinates struct {
	r3.Vector
}

// NewGlobalCoordinates builds a GlobalCoordinates from an x, y pair.
func NewGlobalCoordinates(x, y float64) GlobalCoordinates {
	return GlobalCoordinates{r3.Vector{X: x, Y: y, Z: 0}}
}

// Sub returns g - other as a GlobalCoordinates (translation).
func (g GlobalCoordinates) Sub(other GlobalCoordinates) GlobalCoordinates {
	return GlobalCoordinates{g.Vector.Sub(other.Vector)}
}

// Add returns g + other as a GlobalCoordinates (translation).
func (g GlobalCoordinates) Add(other GlobalCoordinates) GlobalCoordinates {
	return GlobalCoordinates{g.Vector.Add(other.Vector)}
}

// Rotate returns g rotated by angle (radians) about the origin.
func (g GlobalCoordinates) Rotate(angle float64) GlobalCoordinates {
	cosA, sinA := math.Cos(angle), math.Sin(angle)
	return NewGlobalCoordinates(
		g.X*cosA-g.Y*sinA,
		g.X*sinA+g.Y*cosA,
	)
}

// FrenetCoordinates is a road-relative curvilinear coordinate: s is
// longitudinal distance along the centerline, d is the lateral offset
// (0 at centerline, growing to the right). dx, dy store the unit
// normal and are only meaningful on map waypoints.
type FrenetCoordinates struct {
	S, D   float64
	DX, DY float64
}

// LaneId is a lane identifier local to the ego vehicle.
type LaneId int

const (
	LaneLeft LaneId = iota
	LaneEgo
	LaneRight
	LaneInvalid
)

func (l LaneId) String() string {
	switch l {
	case LaneLeft:
		return "Left"
	case LaneEgo:
		return "Ego"
	case LaneRight:
		return "Right"
	default:
		return "Invalid"
	}
}

// GlobalLaneId is an absolute lane identifier: Left=0, Center=1, Right=2.
type GlobalLaneId int

const (
	GlobalLaneLeft GlobalLaneId = iota
	GlobalLaneCenter
	GlobalLaneRight
	GlobalLaneInvalid
)

func (g GlobalLaneId) String() string {
	switch g {
	case GlobalLaneLeft:
		return "Left"
	case GlobalLaneCenter:
		return "Center"
	case GlobalLaneRight:
		return "Right"
	default:
		return "Invalid"
	}
}

// Add returns g+n, saturating to GlobalLaneInvalid when the result
// falls outside {Left, Center, Right}.
func (g GlobalLaneId) Add(n int) GlobalLaneId {
	if g == GlobalLaneInvalid {
		return GlobalLaneInvalid
	}
	result := int(g) + n
	if result < int(GlobalLaneLeft) || result > int(GlobalLaneRight) {
		return GlobalLaneInvalid
	}
	return GlobalLaneId(result)
}

// laneWidth is the fixed width (meters) of each of the three lanes.
const laneWidth = 4.0

func init() {
	logging.Assert(nil, laneWidth > 0, "roadmap: laneWidth must be positive")
}

// ClassifyLane returns the GlobalLaneId for a lateral Frenet offset d.
// Lane boundaries ({0,4,8,12}) are exclusive and classify as Invalid.
func ClassifyLane(d float64) GlobalLaneId {
	switch {
	case d > 0 && d < laneWidth:
		return GlobalLaneLeft
	case d > laneWidth && d < 2*laneWidth:
		return GlobalLaneCenter
	case d > 2*laneWidth && d < 3*laneWidth:
		return GlobalLaneRight
	default:
		return GlobalLaneInvalid
	}
}

// LaneCenterOffset returns the lateral d offset of the centerline of
// the given global lane index (0, 1, or 2).
func LaneCenterOffset(globalLaneIndex int) float64 {
	return laneWidth/2 + laneWidth*float64(globalLaneIndex)
}
