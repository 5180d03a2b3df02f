package planning

import (
	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/units"
)

// ManeuverGenerator emits one candidate maneuver per lane. It carries
// no state and no knowledge of the current lane; the output order is
// always {Left, Ego, Right}.
type ManeuverGenerator struct{}

// NewManeuverGenerator constructs a ManeuverGenerator.
func NewManeuverGenerator() *ManeuverGenerator {
	return &ManeuverGenerator{}
}

// Generate returns exactly three maneuvers, in fixed order: Left, Ego,
// Right, all at the given target velocity.
func (ManeuverGenerator) Generate(targetVelocity units.MetersPerSecond) []Maneuver {
	return []Maneuver{
		{LaneID: roadmap.LaneLeft, Velocity: targetVelocity},
		{LaneID: roadmap.LaneEgo, Velocity: targetVelocity},
		{LaneID: roadmap.LaneRight, Velocity: targetVelocity},
	}
}
