package bench

import (
	"fmt"
	"testing"
	"time"

	"squadro/engine"
)

// TestSearchDepthBenchmark measures search performance at different time
// budgets from the starting position.
// Run with: go test ./bench -run TestSearchDepthBenchmark -v
func TestSearchDepthBenchmark(t *testing.T) {
	s := engine.NewSession(64 << 20)

	fmt.Println("\n=== Search Time Budget Benchmark ===")
	fmt.Println("Position: starting position")
	fmt.Printf("%-10s %-10s %-12s\n", "Budget", "Move", "Time")
	fmt.Println("----------------------------------------------")

	budgets := []time.Duration{
		50 * time.Millisecond,
		200 * time.Millisecond,
		500 * time.Millisecond,
		1 * time.Second,
	}

	for _, budget := range budgets {
		gs := engine.NewGameState()
		start := time.Now()
		move, err := s.Search(gs, budget)
		elapsed := time.Since(start)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}

		fmt.Printf("%-10v %-10s %-12v\n", budget, move.String(), elapsed)
	}
}

// TestSearchMidGameBenchmark measures search on a position six plies in,
// reached by always playing the first legal move, where pieces have left
// their entry squares and one has already turned back.
func TestSearchMidGameBenchmark(t *testing.T) {
	s := engine.NewSession(64 << 20)
	gs := engine.NewGameState()

	for i := 0; i < 6; i++ {
		moves := gs.LegalMoves()
		if moves.Len == 0 {
			break
		}
		if _, err := gs.ApplyMove(moves.Moves[0]); err != nil {
			t.Fatalf("setup move failed: %v", err)
		}
	}

	fmt.Println("\n=== Mid-game Search Benchmark ===")
	start := time.Now()
	move, err := s.Search(gs, 500*time.Millisecond)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	fmt.Printf("move=%s elapsed=%v\n", move.String(), elapsed)
}
