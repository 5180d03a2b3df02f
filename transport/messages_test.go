package transport

import (
	"testing"

	"go.viam.com/test"
)

func TestParseTelemetryValid(t *testing.T) {
	raw := []byte(`{
		"x": 1.0, "y": 2.0, "s": 3.0, "d": 6.0, "yaw": 0.0, "speed": 20.0,
		"previous_path_x": [1.0, 2.0], "previous_path_y": [2.0, 3.0],
		"end_path_s": 4.0, "end_path_d": 6.0,
		"sensor_fusion": [[1, 10, 10, 1, 0, 15, 6]]
	}`)

	msg, err := ParseTelemetry(raw)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, msg.X, test.ShouldEqual, 1.0)
	test.That(t, msg.Speed, test.ShouldEqual, 20.0)
	test.That(t, len(msg.PreviousPathX), test.ShouldEqual, 2)
	test.That(t, len(msg.SensorFusion), test.ShouldEqual, 1)
}

func TestParseTelemetryMalformedJSON(t *testing.T) {
	_, err := ParseTelemetry([]byte(`not json`))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestParseTelemetryMalformedSensorFusionEntry(t *testing.T) {
	raw := []byte(`{"sensor_fusion": [[1, 2, 3]]}`)
	_, err := ParseTelemetry(raw)
	test.That(t, err, test.ShouldNotBeNil)
}
