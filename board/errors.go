package board

import "errors"

// ErrIllegalMove is returned by ApplyMove when the precondition fails, the
// move would capture an own piece, a capture's reset square is blocked, or
// the mover's destination cell is occupied. An illegal move is never
// partially applied: the board is unchanged on this error.
var ErrIllegalMove = errors.New("board: illegal move")
