package planning

import "container/heap"

// prioritizedItem wraps a Trajectory with its insertion order, used to
// break cost ties deterministically (stable: first-inserted wins).
type prioritizedItem struct {
	trajectory Trajectory
	order      int
}

// trajectoryHeap is a container/heap.Interface min-heap ordered by
// cost, ties broken by insertion order.
type trajectoryHeap []prioritizedItem

func (h trajectoryHeap) Len() int { return len(h) }

func (h trajectoryHeap) Less(i, j int) bool {
	if h[i].trajectory.Cost != h[j].trajectory.Cost {
		return h[i].trajectory.Cost < h[j].trajectory.Cost
	}
	return h[i].order < h[j].order
}

func (h trajectoryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *trajectoryHeap) Push(x interface{}) {
	*h = append(*h, x.(prioritizedItem))
}

func (h *trajectoryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// PrioritizedTrajectories is a consumable, cost-ascending queue of
// Trajectory, ties broken by original insertion order.
type PrioritizedTrajectories struct {
	items trajectoryHeap
}

// Len reports how many trajectories remain in the queue.
func (q *PrioritizedTrajectories) Len() int {
	if q == nil {
		return 0
	}
	return q.items.Len()
}

// Pop removes and returns the lowest-cost remaining trajectory. It
// panics if the queue is empty; callers must check Len first.
func (q *PrioritizedTrajectories) Pop() Trajectory {
	item := heap.Pop(&q.items).(prioritizedItem)
	return item.trajectory
}

// TrajectoryPrioritizer orders rated candidates by ascending cost.
type TrajectoryPrioritizer struct{}

// NewTrajectoryPrioritizer constructs a TrajectoryPrioritizer.
func NewTrajectoryPrioritizer() *TrajectoryPrioritizer {
	return &TrajectoryPrioritizer{}
}

// GetPrioritizedTrajectories builds a min-heap by cost over rated,
// breaking ties by input order.
func (TrajectoryPrioritizer) GetPrioritizedTrajectories(rated []Trajectory) *PrioritizedTrajectories {
	items := make(trajectoryHeap, 0, len(rated))
	for i, t := range rated {
		items = append(items, prioritizedItem{trajectory: t, order: i})
	}
	heap.Init(&items)
	return &PrioritizedTrajectories{items: items}
}
