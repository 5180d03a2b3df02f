package planning

import (
	"math"

	"go.viam.com/highwayplanner/logging"
)

// Pipeline is the per-tick motion-planning orchestrator. It owns no
// state beyond the last selected Trajectory, the tick counter, and the
// OnTick callback: candidate collections are per-tick and discarded
// after selection.
type Pipeline struct {
	dataSource        *DataSource
	velocityPlanner   *VelocityPlanner
	maneuverGenerator *ManeuverGenerator
	trajectoryPlanner *TrajectoryPlanner
	evaluator         *TrajectoryEvaluator
	prioritizer       *TrajectoryPrioritizer
	selector          *TrajectorySelector

	logger logging.Logger

	selected  Trajectory
	tickIndex int
	onTick    func(tickIndex int)
}

// NewPipeline wires together one instance of each pipeline stage over
// the given DataSource.
func NewPipeline(dataSource *DataSource, logger logging.Logger) *Pipeline {
	return &Pipeline{
		dataSource:        dataSource,
		velocityPlanner:   NewVelocityPlanner(dataSource, logger.Sublogger("velocity")),
		maneuverGenerator: NewManeuverGenerator(),
		trajectoryPlanner: NewTrajectoryPlanner(dataSource, logger.Sublogger("trajectory")),
		evaluator:         NewTrajectoryEvaluator(dataSource, logger.Sublogger("evaluator")),
		prioritizer:       NewTrajectoryPrioritizer(),
		selector:          NewTrajectorySelector(),
		logger:            logger,
	}
}

// GenerateTrajectories runs the full pipeline once: velocity
// regulation, maneuver generation, trajectory synthesis, evaluation,
// prioritization, and selection. The result is available from
// GetSelectedTrajectory.
func (p *Pipeline) GenerateTrajectories() {
	logging.Assert(p.logger, p.dataSource.GetMapCoordinates() != nil,
		"pipeline ticked before a map was wired into its DataSource")

	p.velocityPlanner.CalculateTargetVelocity()
	targetVelocity := p.velocityPlanner.GetTargetVelocity()

	maneuvers := p.maneuverGenerator.Generate(targetVelocity)
	planned := p.trajectoryPlanner.GetPlannedTrajectories(maneuvers)
	rated := p.evaluator.GetRatedTrajectories(planned)
	prioritized := p.prioritizer.GetPrioritizedTrajectories(rated)

	p.selected = p.selector.GetSelectedTrajectory(prioritized)

	if p.logger != nil {
		if math.IsInf(p.selected.Cost, 1) {
			// Not an error (spec.md §7): every candidate lane was rated
			// non-drivable this tick, so the selector fell back to the
			// lowest-id candidate. The actuator is responsible for
			// bounded-safety handling from here.
			p.logger.Warnw("no drivable lane this tick, falling back to lowest-id candidate",
				"selected_lane", p.selected.LaneID.String())
		}
		p.logger.Infow("tick complete",
			"selected_lane", p.selected.LaneID.String(),
			"selected_cost", p.selected.Cost,
			"target_velocity", float64(targetVelocity))
	}

	if p.onTick != nil {
		p.onTick(p.tickIndex)
	}
	p.tickIndex++
}

// OnTick registers a callback invoked at the end of every
// GenerateTrajectories call with a zero-based, monotonically
// increasing tick index. Used by the diagnostics renderer to number
// its output files; at most one callback is held at a time.
func (p *Pipeline) OnTick(fn func(tickIndex int)) {
	p.onTick = fn
}

// GetSelectedTrajectory returns the most recently selected Trajectory.
func (p *Pipeline) GetSelectedTrajectory() Trajectory {
	return p.selected
}

// DataSource exposes the Pipeline's underlying DataSource so the
// transport layer can repopulate it between ticks.
func (p *Pipeline) DataSource() *DataSource {
	return p.dataSource
}
