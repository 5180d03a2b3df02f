package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"go.viam.com/highwayplanner/logging"
	"go.viam.com/highwayplanner/planning"
	"go.viam.com/highwayplanner/roadmap"
	"go.viam.com/highwayplanner/units"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 1 << 20
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  maxMessageSize,
	WriteBufferSize: maxMessageSize,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server drives one pipeline tick per inbound telemetry message over a
// websocket connection to the host simulator.
type Server struct {
	addr     string
	pipeline *planning.Pipeline
	logger   logging.Logger
}

// NewServer builds a Server that ticks pipeline once per inbound
// telemetry message received at addr's "/plan" endpoint.
func NewServer(addr string, pipeline *planning.Pipeline, logger logging.Logger) *Server {
	return &Server{addr: addr, pipeline: pipeline, logger: logger}
}

// Serve blocks, answering websocket upgrades on "/plan" until the
// listener fails.
func (s *Server) Serve() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/plan", s.handleConnection)

	if err := http.ListenAndServe(s.addr, mux); err != nil {
		return errors.Wrap(err, "serve websocket transport")
	}
	return nil
}

// handleConnection upgrades the request and runs the tick loop until
// the peer disconnects, at which point the planner simply stops
// ticking — there is no persisted state to clean up.
func (s *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorw("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			s.logger.Infow("connection closed", "error", err)
			return
		}

		tickID := uuid.New().String()
		if err := s.tick(conn, tickID, raw); err != nil {
			s.logger.Warnw("dropping tick", "tick_id", tickID, "error", err)
		}
	}
}

// tick parses one inbound message, applies it to the pipeline's
// DataSource, runs one planning cycle, and writes back the resulting
// plan. A malformed message is a transient error: the tick is dropped
// and DataSource keeps its previous values.
func (s *Server) tick(conn *websocket.Conn, tickID string, raw []byte) error {
	_, payload, err := StripEventFrame(raw)
	if err != nil {
		return errors.Wrap(err, "strip event frame")
	}

	telemetry, err := ParseTelemetry(payload)
	if err != nil {
		return errors.Wrap(err, "parse telemetry")
	}

	s.applyTelemetry(telemetry)
	s.pipeline.GenerateTrajectories()
	selected := s.pipeline.GetSelectedTrajectory()

	plan := planToMessage(selected)
	frame, err := WrapEventFrame("plan", plan)
	if err != nil {
		return errors.Wrap(err, "encode plan message")
	}

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return errors.Wrap(err, "set write deadline")
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return errors.Wrap(err, "write plan message")
	}

	s.logger.Debugw("tick served", "tick_id", tickID, "selected_lane", selected.LaneID.String())
	return nil
}

// applyTelemetry converts one TelemetryMessage's wire units (mph,
// degrees) into the planner's internal units (m/s, radians) and
// repopulates the pipeline's DataSource. This is the one place in the
// system those conversions happen.
func (s *Server) applyTelemetry(t TelemetryMessage) {
	ds := s.pipeline.DataSource()

	ds.SetVehicleDynamics(planning.VehicleDynamics{
		Velocity: units.MPH(t.Speed).ToMetersPerSecond(),
		Global:   roadmap.NewGlobalCoordinates(t.X, t.Y),
		Frenet:   roadmap.FrenetCoordinates{S: t.S, D: t.D},
		Yaw:      units.Degrees(t.Yaw).ToRadians(),
	})

	previousPath := make([]roadmap.GlobalCoordinates, len(t.PreviousPathX))
	for i := range t.PreviousPathX {
		previousPath[i] = roadmap.NewGlobalCoordinates(t.PreviousPathX[i], t.PreviousPathY[i])
	}
	ds.SetPreviousPath(previousPath)
	ds.SetPreviousPathEnd(roadmap.FrenetCoordinates{S: t.EndPathS, D: t.EndPathD})

	objects := make([]planning.ObjectFusion, len(t.SensorFusion))
	for i, row := range t.SensorFusion {
		id, x, y, vx, vy, objS, objD := int(row[0]), row[1], row[2], row[3], row[4], row[5], row[6]
		objects[i] = planning.NewObjectFusion(id, roadmap.NewGlobalCoordinates(x, y), vx, vy, roadmap.FrenetCoordinates{S: objS, D: objD})
	}
	ds.SetSensorFusion(planning.SensorFusion{Objects: objects})
}

// planToMessage converts a selected Trajectory's waypoints into the
// outbound wire format.
func planToMessage(t planning.Trajectory) PlanMessage {
	plan := PlanMessage{
		NextX: make([]float64, len(t.Waypoints)),
		NextY: make([]float64, len(t.Waypoints)),
	}
	for i, wp := range t.Waypoints {
		plan.NextX[i] = wp.X
		plan.NextY[i] = wp.Y
	}
	return plan
}
