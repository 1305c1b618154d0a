package engine

import "squadro/board"

// Score constants, grounded on the source's Constants.h: a finished
// piece is worth a flat bonus, an on-board piece is worth its progress
// toward finishing times a per-cell weight.
const (
	WinScore       = 100000
	LossScore      = -WinScore
	PieceFinished  = 2500
	ProgressWeight = 10
)

// Evaluate scores gs from perspective's point of view: positive favors
// perspective, negative favors its opponent. Terminal positions return
// +/-WinScore; Squadro has no defined draw (source: Heuristics.cpp), so
// a finished game always resolves to one side or the other.
func Evaluate(gs *GameState, perspective board.Player) int {
	if gs.IsTerminal() {
		if gs.Winner() == perspective {
			return WinScore
		}
		return LossScore
	}

	var mine, theirs int
	for id := 0; id < board.NumPieces; id++ {
		p := gs.Board.Pieces[id]
		score := pieceScore(p)
		if p.Owner == perspective {
			mine += score
		} else {
			theirs += score
		}
	}
	return mine - theirs
}

// pieceScore is a single piece's contribution to Evaluate: a flat bonus
// once Finished, otherwise its travel progress times ProgressWeight.
func pieceScore(p board.Piece) int {
	if p.Status == board.Finished {
		return PieceFinished
	}
	return progress(p) * ProgressWeight
}

// progress returns how many cells of its total journey (forward leg
// plus backward leg, 0..12) a piece has covered.
func progress(p board.Piece) int {
	const farEdge = board.NumCols - 1
	coord := p.Col
	if p.Owner == board.Player2 {
		coord = p.Row
	}
	if p.Status == board.Forward {
		return coord
	}
	return farEdge + (farEdge - coord)
}
