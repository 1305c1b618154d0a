// Package engine drives search over a board.Board: game-over detection,
// evaluation, a transposition table, and iterative-deepening alpha-beta
// with quiescence, killer moves, and the history heuristic.
package engine

import "squadro/board"

// GameState wraps a board.Board with the turn-taking state the board
// package itself does not track: whose move it is, how many turns have
// elapsed, and the cached Zobrist hash of the current position. It is
// the unit search recurses over, grounded on the source's GameState
// (current_player, turn_count, zobrist_hash alongside the board).
type GameState struct {
	Board     board.Board
	ToMove    board.Player
	TurnCount int
	Hash      uint64
}

// NewGameState returns a fresh game: the starting board, Player 1 to
// move, turn zero.
func NewGameState() *GameState {
	b := board.NewBoard()
	gs := &GameState{Board: *b, ToMove: board.Player1}
	gs.Hash = board.Hash(&gs.Board, gs.ToMove)
	return gs
}

// ApplyMove plays move for the side to move, advances the turn counter,
// flips ToMove, and recomputes Hash. On ErrIllegalMove the state is
// unchanged.
func (gs *GameState) ApplyMove(move board.Move) (board.MoveRecord, error) {
	rec, err := gs.Board.ApplyMove(move, gs.ToMove)
	if err != nil {
		return board.MoveRecord{}, err
	}
	gs.ToMove = gs.ToMove.Opponent()
	gs.TurnCount++
	gs.Hash = board.Hash(&gs.Board, gs.ToMove)
	return rec, nil
}

// UndoMove reverses rec and restores the state that preceded it.
func (gs *GameState) UndoMove(rec board.MoveRecord) {
	gs.Board.UndoMove(rec)
	gs.ToMove = gs.ToMove.Opponent()
	gs.TurnCount--
	gs.Hash = board.Hash(&gs.Board, gs.ToMove)
}

// LegalMoves enumerates the side to move's legal moves.
func (gs *GameState) LegalMoves() board.MoveList {
	return gs.Board.GenerateLegalMoves(gs.ToMove)
}

// winThreshold is the number of a side's five pieces that must reach
// Finished for that side to win: at least four, not all five (source:
// src/GameState.cpp updateGameStatus(), "p1_finished_count >= 4").
const winThreshold = board.PiecesPerSide - 1

// IsTerminal reports whether either side has reached winThreshold
// finished pieces.
func (gs *GameState) IsTerminal() bool {
	return gs.Board.FinishedCount(board.Player1) >= winThreshold ||
		gs.Board.FinishedCount(board.Player2) >= winThreshold
}

// Winner returns the side that reached winThreshold finished pieces, or
// board.PlayerNone if the game is not over. Squadro has no defined draw
// (source: Heuristics.cpp treats PlayerID::NONE and PlayerID::DRAW
// identically), so this never distinguishes a draw from an ongoing game.
// If both sides somehow cross the threshold on the same move, the tie is
// broken in favor of the side that just moved (gs.ToMove has already been
// flipped to the side about to move next, so its opponent is the mover) —
// a deliberate deviation from the original source, which hardcodes the
// tie to Player 1 "since they went first".
func (gs *GameState) Winner() board.Player {
	p1Won := gs.Board.FinishedCount(board.Player1) >= winThreshold
	p2Won := gs.Board.FinishedCount(board.Player2) >= winThreshold
	switch {
	case p1Won && p2Won:
		return gs.ToMove.Opponent()
	case p1Won:
		return board.Player1
	case p2Won:
		return board.Player2
	default:
		return board.PlayerNone
	}
}
