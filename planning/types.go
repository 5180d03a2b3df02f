// Package planning implements the per-tick motion-planning pipeline:
// velocity regulation, maneuver generation, trajectory synthesis, lane
// safety evaluation, prioritization, and selection.
package planning

import (
	"math"

	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/units"
)

// VehicleDynamics is the ego vehicle's state at tick start.
type VehicleDynamics struct {
	Velocity units.MetersPerSecond
	Global   roadmap.GlobalCoordinates
	Frenet   roadmap.FrenetCoordinates
	Yaw      units.Radians
}

// ObjectFusion is one perceived neighbor vehicle.
type ObjectFusion struct {
	ID         int
	Global     roadmap.GlobalCoordinates
	VelocityXY roadmap.GlobalCoordinates // vx, vy stored in X, Y
	Frenet     roadmap.FrenetCoordinates
	Velocity   units.MetersPerSecond // scalar speed, sqrt(vx^2+vy^2)
}

// NewObjectFusion builds an ObjectFusion, deriving the scalar speed
// from the raw (vx, vy) sensor components.
func NewObjectFusion(id int, global roadmap.GlobalCoordinates, vx, vy float64, frenet roadmap.FrenetCoordinates) ObjectFusion {
	return ObjectFusion{
		ID:         id,
		Global:     global,
		VelocityXY: roadmap.NewGlobalCoordinates(vx, vy),
		Frenet:     frenet,
		Velocity:   units.MetersPerSecond(math.Hypot(vx, vy)),
	}
}

// SensorFusion is the set of perceived neighbor vehicles for one tick.
type SensorFusion struct {
	Objects []ObjectFusion
}

// Maneuver is a symbolic action: a target lane relative to ego and a
// target speed.
type Maneuver struct {
	LaneID   roadmap.LaneId
	Velocity units.MetersPerSecond
}

// Trajectory is one candidate (or the final selected) path.
type Trajectory struct {
	UniqueID      int
	LaneID        roadmap.LaneId
	GlobalLaneID  roadmap.GlobalLaneId
	Position      roadmap.GlobalCoordinates
	Yaw           units.Radians
	Velocity      units.MetersPerSecond
	Waypoints     []roadmap.GlobalCoordinates
	Cost          float64
}
