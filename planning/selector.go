package planning

// TrajectorySelector picks the minimum-cost candidate from a
// prioritized queue. If every candidate carries cost=+Inf (no
// drivable lane this tick — not itself an error condition), the
// lowest-cost-and-therefore-first-popped candidate is still returned;
// the actuator is responsible for bounded-safety handling.
type TrajectorySelector struct{}

// NewTrajectorySelector constructs a TrajectorySelector.
func NewTrajectorySelector() *TrajectorySelector {
	return &TrajectorySelector{}
}

// GetSelectedTrajectory pops and returns the head of prioritized.
func (TrajectorySelector) GetSelectedTrajectory(prioritized *PrioritizedTrajectories) Trajectory {
	return prioritized.Pop()
}
