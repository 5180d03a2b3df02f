package planning

import (
	"testing"

	"go.viam.com/test"
)

func TestGetPrioritizedTrajectoriesOrdersByAscendingCost(t *testing.T) {
	rated := []Trajectory{
		{UniqueID: 1, Cost: 5},
		{UniqueID: 2, Cost: 1},
		{UniqueID: 3, Cost: 3},
	}
	prioritized := NewTrajectoryPrioritizer().GetPrioritizedTrajectories(rated)

	test.That(t, prioritized.Len(), test.ShouldEqual, 3)
	test.That(t, prioritized.Pop().UniqueID, test.ShouldEqual, 2)
	test.That(t, prioritized.Pop().UniqueID, test.ShouldEqual, 3)
	test.That(t, prioritized.Pop().UniqueID, test.ShouldEqual, 1)
	test.That(t, prioritized.Len(), test.ShouldEqual, 0)
}

func TestGetPrioritizedTrajectoriesBreaksTiesByInsertionOrder(t *testing.T) {
	rated := []Trajectory{
		{UniqueID: 1, Cost: 2},
		{UniqueID: 2, Cost: 2},
		{UniqueID: 3, Cost: 2},
	}
	prioritized := NewTrajectoryPrioritizer().GetPrioritizedTrajectories(rated)

	test.That(t, prioritized.Pop().UniqueID, test.ShouldEqual, 1)
	test.That(t, prioritized.Pop().UniqueID, test.ShouldEqual, 2)
	test.That(t, prioritized.Pop().UniqueID, test.ShouldEqual, 3)
}

func TestPrioritizedTrajectoriesNilLen(t *testing.T) {
	var q *PrioritizedTrajectories
	test.That(t, q.Len(), test.ShouldEqual, 0)
}
