// Command squadro runs a single game of the search engine against itself
// and prints the outcome, the minimal entry point wiring engine.Session
// and engine.GameState together. The original source's interactive
// NetworkManager bridge (src/NetworkManager.cpp) and the teacher's
// interactive REPL (engine/play.go) are both out of scope here; a referee
// bridge is expected to drive engine.Session via the protocol package
// instead of through this binary.
package main

import (
	"fmt"
	"os"
	"time"

	"squadro/board"
	"squadro/engine"
)

func main() {
	logger := engine.NewLogger(os.Stdout)
	defer logger.Close()

	p1 := engine.NewSession(32 << 20)
	p2 := engine.NewSession(32 << 20)
	p1.SetLogger(logger)
	p2.SetLogger(logger)

	result := engine.SelfPlay(p1, p2, 2*time.Second)

	fmt.Printf("turns played: %d\n", result.Turns)
	switch result.Winner {
	case board.Player1:
		fmt.Println("winner: Player1")
	case board.Player2:
		fmt.Println("winner: Player2")
	default:
		fmt.Println("winner: none (turn cap reached)")
	}
}
