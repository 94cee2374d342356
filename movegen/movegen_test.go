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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

// kiwipete is the standard torture-test position for move generators:
// it exercises castling (both sides, both wings), en-passant, and
// promotions all in one position.
const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// startPerft holds the well-known perft counts for the standard
// starting position, depths 1-6.
var startPerft = []uint64{20, 400, 8902, 197281, 4865609, 119060324}

// kiwipetePerft holds the reference counts for kiwipete, depths 1-5.
var kiwipetePerft = []uint64{48, 2039, 97862, 4085603, 193690690}

func TestPerftStartingPositionFast(t *testing.T) {
	b := position.NewBoard()
	for depth, want := range startPerft {
		if depth+1 > 4 {
			break
		}
		require.Equal(t, want, Perft(b, depth+1), "perft(%d) from starting position", depth+1)
	}
}

func TestPerftStartingPositionSlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b := position.NewBoard()
	for depth := 5; depth <= 6; depth++ {
		require.Equal(t, startPerft[depth-1], Perft(b, depth), "perft(%d) from starting position", depth)
	}
}

func TestPerftKiwipeteFast(t *testing.T) {
	b, err := position.NewBoardFen(kiwipete)
	require.NoError(t, err)
	for depth := 1; depth <= 3; depth++ {
		require.Equal(t, kiwipetePerft[depth-1], Perft(b, depth), "perft(%d) from kiwipete", depth)
	}
}

func TestPerftKiwipeteSlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b, err := position.NewBoardFen(kiwipete)
	require.NoError(t, err)
	for depth := 4; depth <= 5; depth++ {
		require.Equal(t, kiwipetePerft[depth-1], Perft(b, depth), "perft(%d) from kiwipete", depth)
	}
}

func TestLegalMovesStartingPositionCount(t *testing.T) {
	b := position.NewBoard()
	require.Len(t, LegalMoves(b), 20)
}

func TestHasLegalMoveCheckmateIsFalse(t *testing.T) {
	b, err := position.NewBoardFen("7k/6Q1/5K2/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.True(t, IsInCheck(b, b.SideToMove()))
	require.False(t, HasLegalMove(b))
}

func TestHasLegalMoveStalemateIsFalse(t *testing.T) {
	b, err := position.NewBoardFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.False(t, IsInCheck(b, b.SideToMove()))
	require.False(t, HasLegalMove(b))
}

func TestCastlingExcludedWhenTransitSquareAttacked(t *testing.T) {
	// Black rook on e8-file's neighbor f8 is not the attacker here; place
	// a black rook on the f-file so it attacks f1, the king-side transit
	// square, ruling out O-O while leaving O-O-O untouched.
	b, err := position.NewBoardFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	b2, err := position.NewBoardFen("4k3/5r2/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	foundOOWithoutAttacker := false
	for _, m := range LegalMoves(b) {
		if m.From() == SqE1 && m.To() == SqG1 {
			foundOOWithoutAttacker = true
		}
	}
	require.True(t, foundOOWithoutAttacker, "O-O should be legal with no attacker on f1/g1")

	for _, m := range LegalMoves(b2) {
		require.False(t, m.From() == SqE1 && m.To() == SqG1,
			"O-O must be excluded when f1 is attacked")
	}
}
