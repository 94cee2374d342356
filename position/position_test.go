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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvidae/chessgo/types"
)

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastleAll, b.Castling())
	assert.Equal(t, SquareNone, b.EnPassant())
	assert.Equal(t, 0, b.HalfmoveClock())
	assert.Equal(t, 1, b.FullmoveCount())
	assert.Equal(t, WhiteKing, b.PieceAt(SqE1))
	assert.Equal(t, BlackKing, b.PieceAt(SqE8))
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
		"8/8/8/4k3/8/8/4P3/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := NewBoardFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, b.ToFEN())
	}
}

func TestInvalidFenRejected(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",  // too few fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1", // rank short a file
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ2NR w KQkq - 0 1", // no white king
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1 extra",                    // too many fields
	}
	for _, fen := range cases {
		_, err := NewBoardFen(fen)
		assert.Error(t, err, fen)
	}
}

func TestBothSidesInCheckIsIllegal(t *testing.T) {
	// Kings adjacent with no other pieces: side not to move (black) is
	// also attacked by white's king, which cannot happen in a legal game.
	_, err := NewBoardFen("8/8/8/3kK3/8/8/8/8 w - - 0 1")
	assert.ErrorIs(t, err, ErrIllegalPosition)
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b := NewBoard()
	before := snapshot(b)

	m := NewMove(SqE2, SqE4, FlagDoublePush, PtNone)
	b.DoMove(m)
	assert.NotEqual(t, before.hash, b.Hash())

	b.UndoMove()
	after := snapshot(b)
	assert.Equal(t, before, after)
}

func TestHashConsistencyAfterMoveSequence(t *testing.T) {
	b := NewBoard()
	moves := []Move{
		NewMove(SqG1, SqF3, FlagNone, PtNone),
		NewMove(SqG8, SqF6, FlagNone, PtNone),
		NewMove(SqF3, SqG1, FlagNone, PtNone),
		NewMove(SqF6, SqG8, FlagNone, PtNone),
	}
	for _, m := range moves {
		b.DoMove(m)
		assert.Equal(t, b.computeHash(), b.Hash(), "incremental hash drifted from from-scratch hash")
	}
}

func TestRepetitionDraw(t *testing.T) {
	b := NewBoard()
	seq := []Move{
		NewMove(SqG1, SqF3, FlagNone, PtNone),
		NewMove(SqG8, SqF6, FlagNone, PtNone),
		NewMove(SqF3, SqG1, FlagNone, PtNone),
		NewMove(SqF6, SqG8, FlagNone, PtNone),
		NewMove(SqG1, SqF3, FlagNone, PtNone),
		NewMove(SqG8, SqF6, FlagNone, PtNone),
		NewMove(SqF3, SqG1, FlagNone, PtNone),
		NewMove(SqF6, SqG8, FlagNone, PtNone),
	}
	for _, m := range seq {
		b.DoMove(m)
	}
	assert.Equal(t, 3, b.RepetitionCount())
}

func TestEnPassantCapture(t *testing.T) {
	b, err := NewBoardFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)

	m := NewMove(SqE5, SqD6, FlagEnPassant, PtNone)
	b.DoMove(m)

	assert.Equal(t, NoPiece, b.PieceAt(SqD5), "captured pawn must be removed")
	assert.Equal(t, WhitePawn, b.PieceAt(SqD6))
	assert.Equal(t, SquareNone, b.EnPassant())
}

func TestCastlingRightsClearedByKingMove(t *testing.T) {
	b, err := NewBoardFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	b.DoMove(NewMove(SqE1, SqE2, FlagNone, PtNone))
	assert.Equal(t, CastleBK|CastleBQ, b.Castling())
}

func TestCastlingMovesRook(t *testing.T) {
	b, err := NewBoardFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	b.DoMove(NewMove(SqE1, SqG1, FlagCastle, PtNone))
	assert.Equal(t, WhiteKing, b.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, b.PieceAt(SqF1))
	assert.Equal(t, NoPiece, b.PieceAt(SqH1))
}

type boardSnapshot struct {
	fen  string
	hash Key
}

func snapshot(b *Board) boardSnapshot {
	return boardSnapshot{fen: b.ToFEN(), hash: b.Hash()}
}
