package planning

import (
	"math"

	"go.viam.com/highwayplanner/roadmap"
)

// LaneEvaluator decides whether a lane is drivable this tick under
// constant-velocity neighbor prediction.
type LaneEvaluator struct {
	dataSource *DataSource
}

// NewLaneEvaluator constructs a LaneEvaluator over dataSource.
func NewLaneEvaluator(dataSource *DataSource) *LaneEvaluator {
	return &LaneEvaluator{dataSource: dataSource}
}

// localLaneID translates an object's GlobalLaneId into ego-relative
// terms: the object's own lane matching ego's is Ego, one lower is
// Left, one higher is Right; anything else (including Invalid) maps
// to LaneInvalid and is ignored by IsDrivableLane.
func (e *LaneEvaluator) localLaneID(objGlobalLane roadmap.GlobalLaneId) roadmap.LaneId {
	egoGlobalLane := e.dataSource.GetGlobalLaneId()
	switch {
	case objGlobalLane == egoGlobalLane:
		return roadmap.LaneEgo
	case egoGlobalLane.Add(-1) == objGlobalLane:
		return roadmap.LaneLeft
	case egoGlobalLane.Add(1) == objGlobalLane:
		return roadmap.LaneRight
	default:
		return roadmap.LaneInvalid
	}
}

// isObjectNear reports whether the longitudinal gap between two
// predicted Frenet s values is under gkFarDistanceThreshold.
func isObjectNear(egoS, objS float64) bool {
	return math.Abs(objS-egoS) < float64(gkFarDistanceThreshold)
}

// isValidLane reports whether lane_id names a lane that exists given
// the ego vehicle's current global lane (the road edge has no lane
// beyond it).
func (e *LaneEvaluator) isValidLane(laneID roadmap.LaneId) bool {
	egoGlobalLane := e.dataSource.GetGlobalLaneId()
	switch laneID {
	case roadmap.LaneEgo:
		return true
	case roadmap.LaneLeft:
		return egoGlobalLane.Add(-1) != roadmap.GlobalLaneInvalid
	case roadmap.LaneRight:
		return egoGlobalLane.Add(1) != roadmap.GlobalLaneInvalid
	default:
		return false
	}
}

// IsDrivableLane is a pure function of the current DataSource snapshot.
//
// The ego vehicle's own predicted position uses the previous-path end
// as its reference frame (not its current Frenet s), while each
// object's ego-relative lane label is computed from the ego vehicle's
// *current* global lane. The two are not kept consistent with each
// other; this is intentional, not an oversight to fix here.
func (e *LaneEvaluator) IsDrivableLane(laneID roadmap.LaneId) bool {
	sensorFusion := e.dataSource.GetSensorFusion()
	previousPathSamples := len(e.dataSource.GetPreviousPathInGlobalCoords())

	vehicle := e.dataSource.GetVehicleDynamics()
	egoPosition := e.dataSource.GetPreviousPathEnd()
	egoGlobalLane := e.dataSource.GetGlobalLaneId()
	egoPredictedS := predictFrenetS(egoPosition.S, vehicle.Velocity, previousPathSamples)

	var carInFront, carToLeft, carToRight bool
	for _, obj := range sensorFusion.Objects {
		objGlobalLane := e.dataSource.GetGlobalLaneIdAt(obj.Frenet)
		objLocalLane := e.localLaneID(objGlobalLane)
		objPredictedS := predictFrenetS(obj.Frenet.S, obj.Velocity, previousPathSamples)

		switch objLocalLane {
		case roadmap.LaneEgo:
			// TODO: this requires the ego to already be *ahead* of the
			// object to flag it as an in-front hazard, which looks
			// inverted; left as observed rather than guessed at.
			carInFront = carInFront || (egoPredictedS > objPredictedS && isObjectNear(egoPredictedS, objPredictedS))
		case roadmap.LaneLeft:
			carToLeft = carToLeft || ((egoPredictedS-float64(gkFarDistanceThreshold)) < objPredictedS && isObjectNear(egoPredictedS, objPredictedS))
		case roadmap.LaneRight:
			carToRight = carToRight || ((egoPredictedS-float64(gkFarDistanceThreshold)) < objPredictedS && isObjectNear(egoPredictedS, objPredictedS))
		}
	}

	isEgoInValidLane := egoGlobalLane != roadmap.GlobalLaneInvalid

	switch laneID {
	case roadmap.LaneEgo:
		return e.isValidLane(roadmap.LaneEgo) && isEgoInValidLane && !carInFront
	case roadmap.LaneLeft:
		return e.isValidLane(roadmap.LaneLeft) && isEgoInValidLane && !carToLeft
	case roadmap.LaneRight:
		return e.isValidLane(roadmap.LaneRight) && isEgoInValidLane && !carToRight
	default:
		return false
	}
}
