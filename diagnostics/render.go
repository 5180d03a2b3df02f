// Package diagnostics renders a single tick's lane boundaries,
// neighbor positions, and selected trajectory to a PNG for offline
// inspection, gated behind the CLI's --diagnostics-dir flag.
package diagnostics

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"go.viam.com/highwayplanner/planning"
	"go.viam.com/highwayplanner/roadmap"
)

// laneBoundaryD values bound the three drivable lanes: 0, 4, 8, 12
// meters of lateral offset.
var laneBoundaryD = [4]float64{0, 4, 8, 12}

// RenderTick writes a PNG to outputDir showing the road's lane
// boundaries over a window of Frenet s around the ego vehicle,
// sensor-fusion neighbor positions, and the selected trajectory's
// waypoints, in the global frame. egoS is the ego vehicle's current
// Frenet s, used only to center the lane-boundary window.
func RenderTick(outputDir string, tickIndex int, roadMap *roadmap.Map, egoS float64, fusion planning.SensorFusion, selected planning.Trajectory) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("tick %d — lane %s, cost %.2f", tickIndex, selected.LaneID.String(), selected.Cost)
	p.X.Label.Text = "global x (m)"
	p.Y.Label.Text = "global y (m)"

	if err := addLaneBoundaries(p, roadMap, egoS); err != nil {
		return err
	}
	if err := addNeighbors(p, fusion); err != nil {
		return err
	}
	if err := addSelectedTrajectory(p, selected); err != nil {
		return err
	}

	p.Legend.Top = true
	outputFile := filepath.Join(outputDir, fmt.Sprintf("tick_%04d.png", tickIndex))
	return p.Save(8*vg.Inch, 8*vg.Inch, outputFile)
}

// addLaneBoundaries draws each of the four lane-boundary lines over a
// 200-meter window of Frenet s centered on centerS.
func addLaneBoundaries(p *plot.Plot, roadMap *roadmap.Map, centerS float64) error {
	const (
		window  = 100.0
		samples = 40
	)
	for _, d := range laneBoundaryD {
		pts := make(plotter.XYs, 0, samples)
		for i := 0; i < samples; i++ {
			s := centerS - window + 2*window*float64(i)/float64(samples-1)
			g := roadMap.FrenetToCartesian(roadmap.FrenetCoordinates{S: s, D: d})
			pts = append(pts, plotter.XY{X: g.X, Y: g.Y})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = color.Gray{Y: 160}
		line.Width = vg.Points(1)
		p.Add(line)
	}
	return nil
}

// addNeighbors scatters one point per sensor-fusion object.
func addNeighbors(p *plot.Plot, fusion planning.SensorFusion) error {
	if len(fusion.Objects) == 0 {
		return nil
	}
	pts := make(plotter.XYs, len(fusion.Objects))
	for i, obj := range fusion.Objects {
		pts[i] = plotter.XY{X: obj.Global.X, Y: obj.Global.Y}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.Color = color.RGBA{R: 200, A: 255}
	scatter.Shape = plotter.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add("neighbors", scatter)
	return nil
}

// addSelectedTrajectory draws the selected candidate's waypoint path.
func addSelectedTrajectory(p *plot.Plot, selected planning.Trajectory) error {
	if len(selected.Waypoints) < 2 {
		return nil
	}
	pts := make(plotter.XYs, len(selected.Waypoints))
	for i, wp := range selected.Waypoints {
		pts[i] = plotter.XY{X: wp.X, Y: wp.Y}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 200, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("selected: "+selected.LaneID.String(), line)
	return nil
}
