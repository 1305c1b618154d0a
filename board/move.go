package board

import "fmt"

// Move is a single opaque identifier: the global piece id 0..9. It carries
// no other information — the board supplies everything else needed to
// apply or undo it.
type Move int

// NullMove is a distinguished invalid value used for initialization and
// move-ordering slots (e.g. "no killer stored yet").
const NullMove Move = -1

// String renders the move as its global piece id, or "null" for
// NullMove, the way the source's Move::to_string() reports an
// unassigned move.
func (m Move) String() string {
	if m == NullMove {
		return "null"
	}
	return fmt.Sprintf("piece%d", int(m))
}

// MaxCaptures bounds the capture chain: at most five opponent pieces can
// ever occupy a single player's lane.
const MaxCaptures = PiecesPerSide

// CaptureEntry records one bumped piece for undo: its identity and the
// cell it occupied immediately before the bump.
type CaptureEntry struct {
	ID       int
	Row, Col int
}

// MoveRecord is the sole input UndoMove needs. It is a fixed-size value
// (no slice, no pointer) so applying and undoing a move never allocates.
type MoveRecord struct {
	Mover              Move
	StartRow, StartCol int
	DestRow, DestCol   int
	OriginalStatus     Status
	FinalStatus        Status
	CaptureCount       int
	Captures           [MaxCaptures]CaptureEntry
}

func (r MoveRecord) String() string {
	s := fmt.Sprintf("piece %d: (%d,%d)->(%d,%d) %s->%s", r.Mover,
		r.StartRow, r.StartCol, r.DestRow, r.DestCol, r.OriginalStatus, r.FinalStatus)
	if r.CaptureCount > 0 {
		s += fmt.Sprintf(" cap=%d", r.CaptureCount)
	}
	return s
}

// ToRelative converts a global move (piece id 0..9) to the player-relative
// index 1..5 used by the external boundary protocol (spec section 6).
func (m Move) ToRelative(side Player) int {
	id := int(m)
	if side == Player2 {
		id -= PiecesPerSide
	}
	return id + 1
}

// FromRelative converts a player-relative index 1..5 to the global move id
// for the given side, the inverse of ToRelative.
func FromRelative(relative int, side Player) Move {
	id := relative - 1
	if side == Player2 {
		id += PiecesPerSide
	}
	return Move(id)
}
