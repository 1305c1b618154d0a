package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode and Decode give Board a compact textual form, the way the
// teacher's chess board round-trips FEN: one field per piece id (0..9,
// in order), "<status><row>.<col>", comma-separated. Side to move is
// tracked by the caller (GameState), not by Board itself, so it has no
// field here. Finished pieces encode their last on-board row/col, which
// Decode discards since a finished piece has no board position. Used by
// tests to build fixture positions without hand-rolling grids.
func (b *Board) Encode() string {
	var sb strings.Builder
	for id := 0; id < NumPieces; id++ {
		if id > 0 {
			sb.WriteByte(',')
		}
		p := b.Pieces[id]
		statusChar := byte('F')
		switch p.Status {
		case Backward:
			statusChar = 'B'
		case Finished:
			statusChar = 'X'
		}
		fmt.Fprintf(&sb, "%c%d.%d", statusChar, p.Row, p.Col)
	}
	return sb.String()
}

// Decode parses the form Encode produces into a freshly constructed
// Board. The per-piece power schedule is always derived from the global
// id (section 3), never carried in the string.
func Decode(s string) (*Board, error) {
	fields := strings.Split(s, ",")
	if len(fields) != NumPieces {
		return nil, fmt.Errorf("board: expected %d piece fields, got %d", NumPieces, len(fields))
	}

	b := &Board{}
	for i := range b.Grid {
		b.Grid[i] = CellEmpty
	}

	for id, field := range fields {
		if len(field) < 2 {
			return nil, fmt.Errorf("board: malformed field %q", field)
		}
		owner := Player1
		if id >= PiecesPerSide {
			owner = Player2
		}

		var status Status
		switch field[0] {
		case 'F':
			status = Forward
		case 'B':
			status = Backward
		case 'X':
			status = Finished
		default:
			return nil, fmt.Errorf("board: unknown status char %q", field[0])
		}

		row, col := 0, 0
		if status != Finished {
			parts := strings.SplitN(field[1:], ".", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("board: malformed coordinate %q", field[1:])
			}
			r, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("board: bad row in %q: %w", field, err)
			}
			c, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, fmt.Errorf("board: bad col in %q: %w", field, err)
			}
			row, col = r, c
		}

		b.Pieces[id] = Piece{
			ID:            id,
			Owner:         owner,
			Row:           row,
			Col:           col,
			Status:        status,
			ForwardPower:  fwdPower[id],
			BackwardPower: bckPower[id],
		}
		if status != Finished {
			if b.Grid[cellIndex(row, col)] != CellEmpty {
				return nil, fmt.Errorf("board: two pieces on the same cell (%d,%d)", row, col)
			}
			b.Grid[cellIndex(row, col)] = Cell(id)
		}
	}
	return b, nil
}
