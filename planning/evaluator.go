package planning

import (
	"math"

	"go.viam.com/highwayplanner/logging"
)

// TrajectoryEvaluator rates each candidate trajectory using a
// LaneEvaluator: cost becomes +Inf iff the candidate's lane is not
// drivable this tick.
type TrajectoryEvaluator struct {
	laneEvaluator *LaneEvaluator
	logger        logging.Logger
}

// NewTrajectoryEvaluator constructs a TrajectoryEvaluator over dataSource.
func NewTrajectoryEvaluator(dataSource *DataSource, logger logging.Logger) *TrajectoryEvaluator {
	return &TrajectoryEvaluator{laneEvaluator: NewLaneEvaluator(dataSource), logger: logger}
}

// GetRatedTrajectories returns a same-cardinality, same-order copy of
// planned with cost set to +Inf for any non-drivable candidate lane.
func (e *TrajectoryEvaluator) GetRatedTrajectories(planned []Trajectory) []Trajectory {
	rated := make([]Trajectory, len(planned))
	copy(rated, planned)

	for i := range rated {
		if !e.laneEvaluator.IsDrivableLane(rated[i].LaneID) {
			rated[i].Cost = math.Inf(1)
		}
	}

	if e.logger != nil {
		for _, t := range rated {
			e.logger.Debugw("rated trajectory", "lane", t.LaneID.String(), "cost", t.Cost)
		}
	}
	return rated
}
