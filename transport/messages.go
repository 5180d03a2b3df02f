// Package transport implements the bidirectional telemetry/plan
// message stream with the host simulator: a gorilla/websocket
// connection carrying Socket.IO-style "42"-framed JSON arrays, one
// telemetry tick in, one plan message out.
package transport

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// TelemetryMessage is one inbound tick: the ego vehicle's pose and
// speed, the unconsumed tail of the last plan, and the current sensor
// fusion snapshot. Field units match the wire format exactly (mph,
// degrees) — conversion to the planner's internal units happens once,
// at the transport boundary.
type TelemetryMessage struct {
	X              float64     `json:"x"`
	Y              float64     `json:"y"`
	S              float64     `json:"s"`
	D              float64     `json:"d"`
	Yaw            float64     `json:"yaw"`   // degrees
	Speed          float64     `json:"speed"` // mph
	PreviousPathX  []float64   `json:"previous_path_x"`
	PreviousPathY  []float64   `json:"previous_path_y"`
	EndPathS       float64     `json:"end_path_s"`
	EndPathD       float64     `json:"end_path_d"`
	SensorFusion   [][]float64 `json:"sensor_fusion"`
}

// PlanMessage is one outbound tick: the newly planned waypoint
// sequence in the global frame.
type PlanMessage struct {
	NextX []float64 `json:"next_x"`
	NextY []float64 `json:"next_y"`
}

// ErrMalformedSensorFusionEntry is returned by ParseTelemetry when a
// sensor_fusion row doesn't carry the seven fields the wire format
// requires: [id, x, y, vx, vy, s, d].
var ErrMalformedSensorFusionEntry = errors.New("sensor_fusion entry must have 7 fields: id, x, y, vx, vy, s, d")

// ParseTelemetry unmarshals a raw JSON telemetry payload. A malformed
// payload is a transient error: the caller logs it and drops the tick
// rather than treating it as fatal.
func ParseTelemetry(raw []byte) (TelemetryMessage, error) {
	var msg TelemetryMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return TelemetryMessage{}, errors.Wrap(err, "unmarshal telemetry message")
	}
	for _, row := range msg.SensorFusion {
		if len(row) != 7 {
			return TelemetryMessage{}, ErrMalformedSensorFusionEntry
		}
	}
	return msg, nil
}
