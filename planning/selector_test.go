package planning

import (
	"testing"

	"go.viam.com/test"
)

func TestGetSelectedTrajectoryReturnsLowestCost(t *testing.T) {
	rated := []Trajectory{
		{UniqueID: 1, Cost: 9},
		{UniqueID: 2, Cost: 4},
	}
	prioritized := NewTrajectoryPrioritizer().GetPrioritizedTrajectories(rated)
	selected := NewTrajectorySelector().GetSelectedTrajectory(prioritized)

	test.That(t, selected.UniqueID, test.ShouldEqual, 2)
}
