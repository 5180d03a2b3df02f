package planning

import (
	"math"

	"go.viam.com/highwayplanner/logging"
	"go.viam.com/highwayplanner/units"
)

const (
	// tickFrequency is the planner's tick rate.
	tickFrequency = units.Hertz(50)
	// actuatorStepPeriod is the time between consecutive previous-path
	// samples the actuator consumes (dt = 0.02s).
	actuatorStepPeriod = 0.02
	// acceleration and deceleration are the jerk-free bounds on
	// target-velocity change per tick.
	acceleration units.MetersPerSecondSquared = 5.0
	deceleration units.MetersPerSecondSquared = -5.0
	// gkFarDistanceThreshold is the "near" longitudinal distance
	// threshold used both here and by LaneEvaluator.
	gkFarDistanceThreshold units.Meters = 30.0
)

// velocityStep returns the per-tick velocity delta for a given
// acceleration: a / frequency.
func velocityStep(a units.MetersPerSecondSquared) units.MetersPerSecond {
	return units.MetersPerSecond(float64(a) * tickFrequency.Period())
}

// predictFrenetS predicts an object's longitudinal position after the
// ego vehicle consumes n samples of the previous path, each
// actuatorStepPeriod seconds apart, under a constant-velocity
// assumption. Shared by VelocityPlanner and LaneEvaluator.
func predictFrenetS(s float64, v units.MetersPerSecond, previousPathSamples int) float64 {
	return s + float64(previousPathSamples)*actuatorStepPeriod*float64(v)
}

// VelocityPlanner updates a target speed against a leading vehicle
// with bounded acceleration/deceleration.
type VelocityPlanner struct {
	dataSource     *DataSource
	targetVelocity units.MetersPerSecond
	logger         logging.Logger
}

// NewVelocityPlanner constructs a VelocityPlanner seeded at 0 m/s.
func NewVelocityPlanner(dataSource *DataSource, logger logging.Logger) *VelocityPlanner {
	return NewVelocityPlannerWithSeed(dataSource, 0, logger)
}

// NewVelocityPlannerWithSeed constructs a VelocityPlanner seeded at the
// given target velocity.
func NewVelocityPlannerWithSeed(dataSource *DataSource, seed units.MetersPerSecond, logger logging.Logger) *VelocityPlanner {
	return &VelocityPlanner{dataSource: dataSource, targetVelocity: seed, logger: logger}
}

// GetTargetVelocity returns the last value computed by
// CalculateTargetVelocity.
func (p *VelocityPlanner) GetTargetVelocity() units.MetersPerSecond {
	return p.targetVelocity
}

// CalculateTargetVelocity steps the target velocity toward the speed
// limit, or decelerates if a closest-in-path leader is within
// gkFarDistanceThreshold meters ahead in the ego lane.
func (p *VelocityPlanner) CalculateTargetVelocity() {
	speedLimit := p.dataSource.GetSpeedLimit()

	if p.hasLeaderInPath() {
		p.targetVelocity += velocityStep(deceleration)
	} else {
		p.targetVelocity += velocityStep(acceleration)
	}
	p.targetVelocity = units.Clamp(p.targetVelocity, 0, speedLimit)

	if p.logger != nil {
		p.logger.Debugw("target velocity updated", "target_velocity", float64(p.targetVelocity))
	}
}

// hasLeaderInPath identifies a "closest-in-path" leader: an object in
// the ego lane whose predicted Frenet s is ahead of the ego's
// predicted s and within gkFarDistanceThreshold meters.
func (p *VelocityPlanner) hasLeaderInPath() bool {
	previousPathSamples := len(p.dataSource.GetPreviousPathInGlobalCoords())
	egoLane := p.dataSource.GetGlobalLaneId()
	vehicle := p.dataSource.GetVehicleDynamics()
	egoPredictedS := predictFrenetS(vehicle.Frenet.S, vehicle.Velocity, previousPathSamples)

	for _, obj := range p.dataSource.GetSensorFusion().Objects {
		if p.dataSource.GetGlobalLaneIdAt(obj.Frenet) != egoLane {
			continue
		}
		objPredictedS := predictFrenetS(obj.Frenet.S, obj.Velocity, previousPathSamples)
		ahead := objPredictedS > egoPredictedS
		near := math.Abs(objPredictedS-egoPredictedS) < float64(gkFarDistanceThreshold)
		if ahead && near {
			return true
		}
	}
	return false
}
