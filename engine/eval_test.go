package engine

import (
	"testing"

	"squadro/board"

	"github.com/stretchr/testify/assert"
)

func newEvalState() *GameState {
	return NewGameState()
}

func TestEvaluate_StartingPositionIsSymmetric(t *testing.T) {
	gs := newEvalState()
	assert.Equal(t, 0, Evaluate(gs, board.Player1))
	assert.Equal(t, 0, Evaluate(gs, board.Player2))
}

func TestEvaluate_TerminalReturnsWinScoreForWinner(t *testing.T) {
	gs := newEvalState()
	for id := 0; id < board.PiecesPerSide; id++ {
		gs.Board.Pieces[id].Status = board.Finished
	}
	assert.True(t, gs.IsTerminal())
	assert.Equal(t, WinScore, Evaluate(gs, board.Player1))
	assert.Equal(t, LossScore, Evaluate(gs, board.Player2))
}

func TestEvaluate_FinishedPieceGetsFlatBonus(t *testing.T) {
	p := board.Piece{Status: board.Finished}
	assert.Equal(t, PieceFinished, pieceScore(p))
}

func TestProgress_Player1ForwardIsColumn(t *testing.T) {
	p := board.Piece{Owner: board.Player1, Status: board.Forward, Row: 2, Col: 4}
	assert.Equal(t, 4, progress(p))
}

func TestProgress_Player1BackwardIsMirroredColumn(t *testing.T) {
	farEdge := board.NumCols - 1
	p := board.Piece{Owner: board.Player1, Status: board.Backward, Row: 2, Col: 5}
	assert.Equal(t, farEdge+(farEdge-5), progress(p))
}

func TestProgress_Player2ForwardIsRow(t *testing.T) {
	p := board.Piece{Owner: board.Player2, Status: board.Forward, Row: 3, Col: 1}
	assert.Equal(t, 3, progress(p))
}

func TestProgress_Player2BackwardIsMirroredRow(t *testing.T) {
	farEdge := board.NumCols - 1
	p := board.Piece{Owner: board.Player2, Status: board.Backward, Row: 6, Col: 1}
	assert.Equal(t, farEdge+(farEdge-6), progress(p))
}

func TestPieceScore_OnBoardIsProgressTimesWeight(t *testing.T) {
	p := board.Piece{Owner: board.Player1, Status: board.Forward, Row: 0, Col: 3}
	assert.Equal(t, 3*ProgressWeight, pieceScore(p))
}

func TestEvaluate_FavorsOwnAdvancedPieces(t *testing.T) {
	gs := newEvalState()
	gs.Board.Pieces[0].Col = 6
	gs.Board.Pieces[0].Status = board.Backward

	assert.Greater(t, Evaluate(gs, board.Player1), 0)
	assert.Less(t, Evaluate(gs, board.Player2), 0)
}

func TestEvaluate_IsZeroSum(t *testing.T) {
	gs := newEvalState()
	gs.Board.Pieces[0].Col = 4
	gs.Board.Pieces[7].Row = 5

	p1 := Evaluate(gs, board.Player1)
	p2 := Evaluate(gs, board.Player2)
	assert.Equal(t, p1, -p2)
}
