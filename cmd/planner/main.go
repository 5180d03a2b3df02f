// Command planner runs the highway motion-planning pipeline behind a
// websocket transport: `planner <map_file>`, exit code 0 on clean
// shutdown, non-zero on map-load failure.
package main

import (
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"go.viam.com/highwayplanner/diagnostics"
	"go.viam.com/highwayplanner/logging"
	"go.viam.com/highwayplanner/planning"
	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/transport"
)

func main() {
	app := &cli.App{
		Name:      "planner",
		Usage:     "run the highway motion-planning pipeline against a host simulator",
		ArgsUsage: "<map_file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "address to serve the websocket transport on",
				Value: "localhost:4567",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn, or error",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "diagnostics-dir",
				Usage: "if set, render one PNG per tick to this directory",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one argument: the map file path", 1)
	}
	mapFile := c.Args().Get(0)

	level, err := parseLevel(c.String("log-level"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	logger := logging.NewLoggerFromGolog("planner", newGologBase("planner", level))

	roadMap, err := roadmap.LoadMap(mapFile)
	if err != nil {
		logger.Errorw("failed to load map", "path", mapFile, "error", err)
		return cli.Exit(err, 1)
	}
	logger.Infow("loaded map", "path", mapFile, "waypoints", roadMap.Len())

	dataSource := planning.NewDataSource()
	dataSource.SetMapCoordinates(roadMap)

	pipeline := planning.NewPipeline(dataSource, logger.Sublogger("pipeline"))

	if diagDir := c.String("diagnostics-dir"); diagDir != "" {
		if err := os.MkdirAll(diagDir, 0o755); err != nil {
			return cli.Exit(err, 1)
		}
		instrumentPipeline(pipeline, diagDir, logger.Sublogger("diagnostics"))
	}

	server := transport.NewServer(c.String("addr"), pipeline, logger.Sublogger("transport"))
	logger.Infow("serving", "addr", c.String("addr"))
	return server.Serve()
}

// newGologBase builds the github.com/edaniels/golog.Logger that backs
// the CLI's top-level logger, the way the teacher's own planner
// constructors are handed a golog.Logger directly. golog only
// distinguishes a debug logger from a production one, so WARN and
// ERROR both collapse onto the production (INFO-and-up) logger.
func newGologBase(name string, level logging.Level) golog.Logger {
	if level == logging.DEBUG {
		return golog.NewDebugLogger(name)
	}
	return golog.NewLogger(name)
}

func parseLevel(s string) (logging.Level, error) {
	switch s {
	case "debug":
		return logging.DEBUG, nil
	case "info":
		return logging.INFO, nil
	case "warn":
		return logging.WARN, nil
	case "error":
		return logging.ERROR, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

// instrumentPipeline registers a diagnostics render on every tick,
// numbering output files sequentially.
func instrumentPipeline(pipeline *planning.Pipeline, diagDir string, logger logging.Logger) {
	pipeline.OnTick(func(tickIndex int) {
		selected := pipeline.GetSelectedTrajectory()
		roadMap := pipeline.DataSource().GetMapCoordinates()
		egoS := pipeline.DataSource().GetVehicleDynamics().Frenet.S
		fusion := pipeline.DataSource().GetSensorFusion()
		if err := diagnostics.RenderTick(diagDir, tickIndex, roadMap, egoS, fusion, selected); err != nil {
			logger.Warnw("failed to render tick diagnostics", "tick", tickIndex, "error", err)
		}
	})
}
