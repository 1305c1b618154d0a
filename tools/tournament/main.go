// Command tournament runs repeated self-play games between two
// engine.Session configurations and reports the Elo difference, adapting
// the teacher's external-engine UCI tournament driver into an in-process
// comparison: there is no separate engine binary to exec here, just two
// differently-sized transposition tables facing off.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

func main() {
	tt1 := flag.Int("tt1", 1<<20, "transposition table size in bytes for engine1")
	tt2 := flag.Int("tt2", 1<<20, "transposition table size in bytes for engine2")
	games := flag.Int("games", 100, "number of games to play")
	perMove := flag.Duration("move-time", 200*time.Millisecond, "per-move search budget")
	useSPRT := flag.Bool("sprt", false, "use SPRT for early stopping")
	verbose := flag.Bool("v", false, "verbose output")

	flag.Parse()

	fmt.Printf("Tournament: tt1=%d bytes vs tt2=%d bytes\n", *tt1, *tt2)
	fmt.Printf("Move time: %v\n", *perMove)
	fmt.Printf("Games: %d\n", *games)
	if *useSPRT {
		fmt.Println("SPRT: enabled [-5, 0]")
	}
	fmt.Println(strings.Repeat("-", 50))

	result, err := RunTournament(Config{
		TT1Bytes: *tt1,
		TT2Bytes: *tt2,
		Games:    *games,
		PerMove:  *perMove,
		UseSPRT:  *useSPRT,
		Verbose:  *verbose,
	})
	if err != nil {
		fmt.Printf("Tournament error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("RESULTS")
	fmt.Println(strings.Repeat("=", 50))
	printResults(result)
}

// Config holds tournament configuration.
type Config struct {
	TT1Bytes int
	TT2Bytes int
	Games    int
	PerMove  time.Duration
	UseSPRT  bool
	Verbose  bool
}

func printResults(r TournamentResult) {
	total := r.Wins + r.Draws + r.Losses
	score := float64(r.Wins) + 0.5*float64(r.Draws)
	pct := 100.0 * score / float64(total)

	fmt.Printf("Results: +%d =%d -%d (%.1f%%)\n", r.Wins, r.Draws, r.Losses, pct)
	fmt.Printf("Elo difference: %+.0f ±%.0f (95%% CI)\n", r.EloDiff, r.EloError)
	fmt.Printf("LOS: %.1f%%\n", r.LOS*100)

	if r.SPRTResult != "" {
		fmt.Printf("\nSPRT [-5, 0]: LLR = %.2f\n", r.LLR)
		fmt.Printf("Conclusion: %s\n", r.SPRTResult)
	}
}
