/*
 * chessgo - a UCI-capable chess engine core written in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 chessgo contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

// TestStartingPositionEvalIsZero covers spec.md scenario S1: the
// symmetric starting position evaluates to zero centipawns.
func TestStartingPositionEvalIsZero(t *testing.T) {
	e := NewEngine()
	assert.EqualValues(t, 0, e.Eval())
}

// TestStartingPositionDepth1And4Search covers S1's search half: a
// shallow and a somewhat deeper search both return a legal opening
// move without errors or panics.
func TestStartingPositionDepth1And4Search(t *testing.T) {
	for _, depth := range []int{1, 4} {
		e := NewEngine()
		best := e.SearchBestMove(5000, depth)
		require.True(t, best.IsValid(), "depth %d produced no move", depth)
		assertMoveIsLegalFromStart(t, e, best)
	}
}

func assertMoveIsLegalFromStart(t *testing.T, e *Engine, m Move) {
	t.Helper()
	found := false
	for _, legal := range e.LegalMoves() {
		if legal.MoveOf() == m.MoveOf() {
			found = true
			break
		}
	}
	assert.True(t, found, "search returned a move not in LegalMoves(): %s", m.StringUCI())
}

// TestKingPawnEndgamePositiveForWhite covers S2: a king-and-pawn
// endgame where white's extra pawn evaluates positively for white, and
// a depth-6 search returns a move from a non-terminal position.
func TestKingPawnEndgamePositiveForWhite(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SetPositionFEN("8/8/8/4k3/8/4P3/8/4K3 w - - 0 1"))
	assert.Greater(t, int(e.Eval()), 0)

	_, terminal := evalSearchScore(t, e, 5000, 6)
	assert.False(t, terminal.IsTerminal())
}

func evalSearchScore(t *testing.T, e *Engine, maxTimeMs, maxDepth int) (Move, State) {
	t.Helper()
	best := e.SearchBestMove(maxTimeMs, maxDepth)
	require.True(t, best.IsValid())
	return best, classify(e.board)
}

// TestMateInOneBackRankPuzzle covers S3: a known back-rank mate-in-one
// (the black king boxed in by its own f7/g7/h7 pawns) must be solved
// at depth 4, and playing the returned move must checkmate black.
func TestMateInOneBackRankPuzzle(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SetPositionFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"))

	best := e.SearchBestMove(5000, 4)
	require.True(t, best.IsValid())
	assert.Equal(t, SqA1, best.From())
	assert.Equal(t, SqA8, best.To())

	accepted, terminal := e.AttemptMove(best.From(), best.To(), best.Promotion())
	require.True(t, accepted)
	assert.Equal(t, Checkmate, terminal)
}

// TestCastlingRightsLostAfterKingMove covers S4: after 1.e4 e5 2.Nf3
// Nc6 3.Bc4 Bc5 4.Ke2, white has forfeited both castling rights while
// black's remain intact.
func TestCastlingRightsLostAfterKingMove(t *testing.T) {
	e := NewEngine()
	moves := []struct{ from, to Square }{
		{SqE2, SqE4},
		{SqE7, SqE5},
		{SqG1, SqF3},
		{SqB8, SqC6},
		{SqF1, SqC4},
		{SqF8, SqC5},
		{SqE1, SqE2},
	}
	for _, m := range moves {
		accepted, _ := e.AttemptMove(m.from, m.to, PtNone)
		require.True(t, accepted, "move %s-%s rejected", m.from, m.to)
	}
	fen := e.CurrentFEN()
	fields := strings.Fields(fen)
	castling := fields[2]
	assert.NotContains(t, castling, "K")
	assert.NotContains(t, castling, "Q")
	assert.Contains(t, castling, "k")
	assert.Contains(t, castling, "q")
}

func TestClassifyNonTerminalPosition(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SetPositionFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1"))
	assert.Equal(t, Normal, classify(e.board))
}

func TestClassifyCheckmate(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SetPositionFEN("7k/6Q1/5K2/8/8/8/8/8 b - - 0 1"))
	assert.Equal(t, Checkmate, classify(e.board))
}

func TestClassifyStalemate(t *testing.T) {
	e := NewEngine()
	require.NoError(t, e.SetPositionFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	assert.Equal(t, Stalemate, classify(e.board))
}

func TestAttemptMoveRejectsIllegalMove(t *testing.T) {
	e := NewEngine()
	accepted, _ := e.AttemptMove(SqE2, SqE5, PtNone)
	assert.False(t, accepted)
	assert.Equal(t, WhitePawn, e.board.PieceAt(SqE2), "rejected move must leave the board untouched")
}

func TestUndoReversesLastMove(t *testing.T) {
	e := NewEngine()
	before := e.CurrentFEN()

	accepted, _ := e.AttemptMove(SqE2, SqE4, PtNone)
	require.True(t, accepted)
	require.NotEqual(t, before, e.CurrentFEN())

	require.True(t, e.Undo())
	assert.Equal(t, before, e.CurrentFEN())
}

func TestUndoOnFreshGameIsNoOp(t *testing.T) {
	e := NewEngine()
	assert.False(t, e.Undo())
}

func TestNewGameResetsToStartingPosition(t *testing.T) {
	e := NewEngine()
	accepted, _ := e.AttemptMove(SqE2, SqE4, PtNone)
	require.True(t, accepted)

	e.NewGame()
	assert.Equal(t, position.StartFen, e.CurrentFEN())
}

func TestPerftFromEngineMatchesStartCount(t *testing.T) {
	e := NewEngine()
	assert.EqualValues(t, 20, e.Perft(1))
	assert.EqualValues(t, 400, e.Perft(2))
}
