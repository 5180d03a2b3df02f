package diagnostics

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/highwayplanner/planning"
	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/test"
)

func straightTestMap(n int, spacing float64) *roadmap.Map {
	waypoints := make([]roadmap.Waypoint, n)
	for i := 0; i < n; i++ {
		s := float64(i) * spacing
		waypoints[i] = roadmap.Waypoint{
			Global: roadmap.NewGlobalCoordinates(s, 0),
			Frenet: roadmap.FrenetCoordinates{S: s, DX: 0, DY: 1},
		}
	}
	return roadmap.NewMap(waypoints)
}

func TestRenderTickWritesPNG(t *testing.T) {
	dir := t.TempDir()
	m := straightTestMap(40, 10)

	selected := planning.Trajectory{
		LaneID: roadmap.LaneEgo,
		Cost:   0,
		Position: roadmap.NewGlobalCoordinates(50, -6),
		Waypoints: []roadmap.GlobalCoordinates{
			roadmap.NewGlobalCoordinates(50, -6),
			roadmap.NewGlobalCoordinates(51, -6),
			roadmap.NewGlobalCoordinates(52, -6),
		},
	}
	fusion := planning.SensorFusion{Objects: []planning.ObjectFusion{
		planning.NewObjectFusion(1, roadmap.NewGlobalCoordinates(60, -6), 5, 0, roadmap.FrenetCoordinates{S: 60, D: 6}),
	}}

	err := RenderTick(dir, 0, m, 50, fusion, selected)
	test.That(t, err, test.ShouldBeNil)

	_, statErr := os.Stat(filepath.Join(dir, "tick_0000.png"))
	test.That(t, statErr, test.ShouldBeNil)
}

func TestRenderTickHandlesEmptyNeighborsAndShortPath(t *testing.T) {
	dir := t.TempDir()
	m := straightTestMap(40, 10)
	selected := planning.Trajectory{LaneID: roadmap.LaneEgo, Position: roadmap.NewGlobalCoordinates(0, 0)}

	err := RenderTick(dir, 1, m, 0, planning.SensorFusion{}, selected)
	test.That(t, err, test.ShouldBeNil)
}
