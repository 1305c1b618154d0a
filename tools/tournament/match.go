package main

import (
	"fmt"
	"time"

	"squadro/board"
	"squadro/engine"
)

// GameResult represents the outcome of a single game, from engine1's
// perspective at the table level (color assignment is handled by the
// caller).
type GameResult int

const (
	ResultEngine1Wins GameResult = iota
	ResultEngine2Wins
	ResultDraw // turn cap reached with neither side finishing
)

// TournamentResult holds cumulative tournament results.
type TournamentResult struct {
	Wins       int // Engine1 wins
	Draws      int
	Losses     int // Engine1 losses
	EloDiff    float64
	EloError   float64
	LOS        float64
	LLR        float64
	SPRTResult string
}

// RunTournament runs the full tournament, alternating which session plays
// Player1 each game.
func RunTournament(cfg Config) (TournamentResult, error) {
	result := TournamentResult{}

	session1 := engine.NewSession(cfg.TT1Bytes)
	session2 := engine.NewSession(cfg.TT2Bytes)

	for gameNum := 1; gameNum <= cfg.Games; gameNum++ {
		engine1Plays1 := (gameNum % 2) == 1

		gameResult := playGame(session1, session2, engine1Plays1, cfg.PerMove, gameNum, cfg.Verbose)

		switch gameResult {
		case ResultEngine1Wins:
			result.Wins++
		case ResultEngine2Wins:
			result.Losses++
		case ResultDraw:
			result.Draws++
		}

		total := result.Wins + result.Draws + result.Losses
		score := float64(result.Wins) + 0.5*float64(result.Draws)
		pct := 100.0 * score / float64(total)
		fmt.Printf("Game %d/%d: +%d =%d -%d (%.1f%%)\n",
			gameNum, cfg.Games, result.Wins, result.Draws, result.Losses, pct)

		if cfg.UseSPRT && total >= 10 {
			llr, conclusion := SPRT(result.Wins, result.Draws, result.Losses, -5, 0)
			result.LLR = llr
			if conclusion != "" {
				result.SPRTResult = conclusion
				fmt.Printf("SPRT stopped: %s\n", conclusion)
				break
			}
		}
	}

	result.EloDiff, result.EloError = EloDiff(result.Wins, result.Draws, result.Losses)
	result.LOS = LOS(result.Wins, result.Draws, result.Losses)

	return result, nil
}

// playGame plays session1 against session2 in-process, each side
// searching for perMove before applying its move.
func playGame(session1, session2 *engine.Session, engine1Plays1 bool, perMove time.Duration, gameNum int, verbose bool) GameResult {
	session1.Clear()
	session2.Clear()

	var player1Session, player2Session *engine.Session
	if engine1Plays1 {
		player1Session, player2Session = session1, session2
	} else {
		player1Session, player2Session = session2, session1
	}

	result := engine.SelfPlay(player1Session, player2Session, perMove)

	if verbose {
		fmt.Printf("  game %d: %d turns, winner=%v\n", gameNum, result.Turns, result.Winner)
	}

	switch result.Winner {
	case board.Player1:
		if engine1Plays1 {
			return ResultEngine1Wins
		}
		return ResultEngine2Wins
	case board.Player2:
		if engine1Plays1 {
			return ResultEngine2Wins
		}
		return ResultEngine1Wins
	default:
		return ResultDraw
	}
}
