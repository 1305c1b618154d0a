package engine

import (
	"time"

	"squadro/board"
)

// maxGameTurns guards a self-play game against looping forever if a
// position were ever repeated without anyone finishing (not expected
// given the forced-progress capture/reset rules, but cheap to bound).
const maxGameTurns = 2000

// MoveHistoryEntry records one ply of a self-played game, in relative
// move notation (the same form the external boundary protocol uses).
type MoveHistoryEntry struct {
	Turn     int
	Mover    board.Player
	Relative int
}

// SelfPlayResult summarizes a completed (or turn-capped) self-play game.
type SelfPlayResult struct {
	Winner  board.Player
	Turns   int
	History []MoveHistoryEntry
}

// SelfPlay drives two sessions (one per side) against each other from
// the starting position, each move budgeted perMove, until the game
// ends or maxGameTurns is reached. Headless counterpart to the
// teacher's interactive Play loop (engine/play.go): no stdin, no
// terminal board rendering, just the search/apply loop.
func SelfPlay(player1, player2 *Session, perMove time.Duration) SelfPlayResult {
	gs := NewGameState()
	result := SelfPlayResult{}

	for turn := 0; turn < maxGameTurns; turn++ {
		if gs.IsTerminal() {
			break
		}

		active := player1
		if gs.ToMove == board.Player2 {
			active = player2
		}

		move, err := active.Search(gs, perMove)
		if err != nil {
			break
		}

		mover := gs.ToMove
		if _, err := gs.ApplyMove(move); err != nil {
			break
		}

		result.History = append(result.History, MoveHistoryEntry{
			Turn: turn, Mover: mover, Relative: move.ToRelative(mover),
		})
	}

	result.Winner = gs.Winner()
	result.Turns = len(result.History)
	return result
}
