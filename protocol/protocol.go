// Package protocol holds the conversions and wire shapes a referee bridge
// needs to talk to an engine.Session over the network: the player-relative
// move numbering external callers use, and the JSON move envelope the
// original source's NetworkManager exchanged with its GUI
// (src/NetworkManager.cpp: {"move": "<n>"}, accepting either a string or a
// number). No socket or HTTP server lives here — only the pure conversions
// and the message shape, the way the teacher's uci package is just the
// wire format without owning a listener loop.
package protocol

import (
	"encoding/json"
	"fmt"

	"squadro/board"
)

// MoveMessage is the JSON envelope exchanged with a referee: a single
// player-relative move index (1..5). The original source accepted the
// "move" field as either a JSON string or a JSON number; MoveMessage
// mirrors that by unmarshaling through an intermediate any and coercing
// both forms into Index.
type MoveMessage struct {
	Index int
}

// MarshalJSON renders Index as a JSON string, matching the original
// source's `{"move": "<n>"}` wire format.
func (m MoveMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Move string `json:"move"`
	}{Move: fmt.Sprintf("%d", m.Index)})
}

// UnmarshalJSON accepts "move" as either a JSON string or a JSON number,
// matching NetworkManager's tolerant parsing of the same field.
func (m *MoveMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Move any `json:"move"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.Move.(type) {
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
			return fmt.Errorf("protocol: move %q is not an integer: %w", v, err)
		}
		m.Index = n
	case float64:
		m.Index = int(v)
	default:
		return fmt.Errorf("protocol: move field must be string or number, got %T", raw.Move)
	}
	return nil
}

// ToRelative converts an engine move into the wire envelope for side.
func ToRelative(move board.Move, side board.Player) MoveMessage {
	return MoveMessage{Index: move.ToRelative(side)}
}

// FromRelative converts a received wire envelope into an engine move for
// side. Returns an error if Index is outside the valid 1..5 range.
func FromRelative(msg MoveMessage, side board.Player) (board.Move, error) {
	if msg.Index < 1 || msg.Index > board.PiecesPerSide {
		return board.NullMove, fmt.Errorf("protocol: move index %d out of range 1..%d", msg.Index, board.PiecesPerSide)
	}
	return board.FromRelative(msg.Index, side), nil
}
