package transport

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// eventFramePrefix is the Socket.IO v2 "EVENT" packet-type sentinel
// the host simulator prefixes telemetry messages with: "42" followed
// by a JSON array of [eventName, payload]. Plain JSON payloads with no
// prefix are also accepted, so the transport works unmodified against
// a bare websocket peer.
const eventFramePrefix = "42"

// StripEventFrame extracts the event name and JSON payload from a raw
// text message. If raw does not carry the "42" sentinel, it is treated
// as a bare JSON payload with an empty event name.
func StripEventFrame(raw []byte) (event string, payload json.RawMessage, err error) {
	text := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(text, eventFramePrefix) {
		return "", json.RawMessage(raw), nil
	}

	var frame []json.RawMessage
	if err := json.Unmarshal([]byte(text[len(eventFramePrefix):]), &frame); err != nil {
		return "", nil, errors.Wrap(err, "unmarshal socket.io event frame")
	}
	if len(frame) == 0 {
		return "", nil, errors.New("socket.io event frame carries no elements")
	}

	if err := json.Unmarshal(frame[0], &event); err != nil {
		return "", nil, errors.Wrap(err, "unmarshal socket.io event name")
	}
	if len(frame) < 2 {
		return event, json.RawMessage("null"), nil
	}
	return event, frame[1], nil
}

// WrapEventFrame builds a "42"-prefixed Socket.IO EVENT packet naming
// event and carrying payload as its sole argument.
func WrapEventFrame(event string, payload interface{}) ([]byte, error) {
	marshaledPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal event payload")
	}
	frame, err := json.Marshal([]json.RawMessage{
		mustMarshalString(event),
		marshaledPayload,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal socket.io event frame")
	}
	return append([]byte(eventFramePrefix), frame...), nil
}

func mustMarshalString(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
