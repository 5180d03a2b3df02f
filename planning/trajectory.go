package planning

import (
	"math"

	"go.viam.com/highwayplanner/logging"
	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/units"
)

// forwardAnchorOffsets are the Frenet s offsets ahead of the ego
// vehicle used to plant the three forward spline anchors.
var forwardAnchorOffsets = [3]float64{30, 60, 90}

// splineSamplesPerMeter controls the density of the waypoints
// TrajectoryPlanner hands back to the actuator.
const splineSamplesPerMeter = 2.0

// TrajectoryPlanner materializes each candidate maneuver into a
// geometric trajectory by stitching the previous path tail to a
// spline fit through anchors placed ahead in the target lane.
type TrajectoryPlanner struct {
	dataSource *DataSource
	logger     logging.Logger
}

// NewTrajectoryPlanner constructs a TrajectoryPlanner over dataSource.
func NewTrajectoryPlanner(dataSource *DataSource, logger logging.Logger) *TrajectoryPlanner {
	return &TrajectoryPlanner{dataSource: dataSource, logger: logger}
}

// GetPlannedTrajectories materializes one Trajectory per maneuver,
// preserving order.
func (p *TrajectoryPlanner) GetPlannedTrajectories(maneuvers []Maneuver) []Trajectory {
	previousPath := p.dataSource.GetPreviousPathInGlobalCoords()
	vehicle := p.dataSource.GetVehicleDynamics()
	egoGlobalLane := p.dataSource.GetGlobalLaneId()

	trajectories := make([]Trajectory, 0, len(maneuvers))
	for i, maneuver := range maneuvers {
		trajectory := p.planOne(i+1, maneuver, vehicle, previousPath, egoGlobalLane)
		trajectories = append(trajectories, trajectory)
	}

	if p.logger != nil {
		p.logger.Debugw("planned trajectories",
			"previous_path_len", len(previousPath),
			"count", len(trajectories))
	}
	return trajectories
}

// mapLaneIDToGlobal maps a maneuver's local LaneId to a GlobalLaneId
// relative to the ego vehicle's current global lane: Ego->ego,
// Left->ego-1, Right->ego+1, Invalid->Invalid, saturating at Invalid
// when stepping out of {0,1,2}.
func mapLaneIDToGlobal(egoGlobalLane roadmap.GlobalLaneId, laneID roadmap.LaneId) roadmap.GlobalLaneId {
	switch laneID {
	case roadmap.LaneEgo:
		return egoGlobalLane
	case roadmap.LaneLeft:
		return egoGlobalLane.Add(-1)
	case roadmap.LaneRight:
		return egoGlobalLane.Add(1)
	default:
		return roadmap.GlobalLaneInvalid
	}
}

// laneDelta is the unsaturated, ego-relative lane-index delta for a
// maneuver's local LaneId. Used only to plant forward anchors so that
// a maneuver pointing off the edge of the road still produces a
// well-formed (if off-road) geometric candidate: an invalid adjacent
// lane still gets a candidate, rejected later via cost=+Inf rather
// than by skipping geometry altogether.
func laneDelta(laneID roadmap.LaneId) int {
	switch laneID {
	case roadmap.LaneLeft:
		return -1
	case roadmap.LaneRight:
		return 1
	default:
		return 0
	}
}

func (p *TrajectoryPlanner) planOne(
	uniqueID int,
	maneuver Maneuver,
	vehicle VehicleDynamics,
	previousPath []roadmap.GlobalCoordinates,
	egoGlobalLane roadmap.GlobalLaneId,
) Trajectory {
	trajectory := Trajectory{
		UniqueID:     uniqueID,
		LaneID:       maneuver.LaneID,
		GlobalLaneID: mapLaneIDToGlobal(egoGlobalLane, maneuver.LaneID),
		Position:     vehicle.Global,
		Yaw:          vehicle.Yaw,
		Velocity:     maneuver.Velocity,
	}

	// Seed with the unconsumed tail of the previous path for continuity.
	trajectory.Waypoints = append(trajectory.Waypoints, previousPath...)

	refPosition, refYaw, anchors := p.initialAnchors(vehicle, previousPath)

	targetLaneIndex := int(egoGlobalLane) + laneDelta(maneuver.LaneID)
	targetD := roadmap.LaneCenterOffset(targetLaneIndex)

	roadMap := p.dataSource.GetMapCoordinates()
	for _, s := range forwardAnchorOffsets {
		global := roadMap.FrenetToCartesian(roadmap.FrenetCoordinates{
			S: vehicle.Frenet.S + s,
			D: targetD,
		})
		anchors = append(anchors, global)
	}

	dense := p.densify(refPosition, refYaw, anchors)
	trajectory.Waypoints = append(trajectory.Waypoints, dense...)
	return trajectory
}

// initialAnchors returns the reference pose (position, yaw) and the
// first two spline anchors. With fewer than two previous-path samples
// it derives a virtual predecessor behind the ego vehicle along its
// current heading; otherwise it uses the last two previous-path
// samples and the chord heading between them.
func (p *TrajectoryPlanner) initialAnchors(
	vehicle VehicleDynamics,
	previousPath []roadmap.GlobalCoordinates,
) (roadmap.GlobalCoordinates, units.Radians, []roadmap.GlobalCoordinates) {
	if len(previousPath) < 2 {
		predecessor := roadmap.NewGlobalCoordinates(
			vehicle.Global.X-math.Cos(float64(vehicle.Yaw)),
			vehicle.Global.Y-math.Sin(float64(vehicle.Yaw)),
		)
		return vehicle.Global, vehicle.Yaw, []roadmap.GlobalCoordinates{predecessor, vehicle.Global}
	}

	n := len(previousPath)
	prev, last := previousPath[n-2], previousPath[n-1]
	yaw := units.Radians(math.Atan2(last.Y-prev.Y, last.X-prev.X))
	return last, yaw, []roadmap.GlobalCoordinates{prev, last}
}

// densify rotates the given global-frame anchors into the local frame
// defined by (refPosition, refYaw), fits a spline through them, and
// rotates the densified samples back to the global frame.
func (p *TrajectoryPlanner) densify(
	refPosition roadmap.GlobalCoordinates,
	refYaw units.Radians,
	anchors []roadmap.GlobalCoordinates,
) []roadmap.GlobalCoordinates {
	xs := make([]float64, len(anchors))
	ys := make([]float64, len(anchors))
	for i, a := range anchors {
		local := a.Sub(refPosition).Rotate(-float64(refYaw))
		xs[i] = local.X
		ys[i] = local.Y
	}

	localSamples, err := roadmap.FitSpline(xs, ys, splineSamplesPerMeter)
	if err != nil {
		if p.logger != nil {
			p.logger.Warnw("spline fit failed, falling back to raw anchors", "error", err)
		}
		localSamples = make([]roadmap.GlobalCoordinates, len(anchors)-2)
		copy(localSamples, anchorsToLocal(xs, ys)[2:])
	}

	global := make([]roadmap.GlobalCoordinates, len(localSamples))
	for i, s := range localSamples {
		global[i] = s.Rotate(float64(refYaw)).Add(refPosition)
	}
	return global
}

func anchorsToLocal(xs, ys []float64) []roadmap.GlobalCoordinates {
	out := make([]roadmap.GlobalCoordinates, len(xs))
	for i := range xs {
		out[i] = roadmap.NewGlobalCoordinates(xs[i], ys[i])
	}
	return out
}
