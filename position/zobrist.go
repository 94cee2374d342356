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
	"math/rand"

	. "github.com/corvidae/chessgo/types"
)

// Key is the 64-bit Zobrist fingerprint of a position.
type Key uint64

// zobrist holds every random key drawn at package init time.
// Keys are native 64-bit unsigned integers -- no big-integer arithmetic
// is needed since Go has first-class uint64 XOR.
var zobrist struct {
	piece      [SqLength][PieceLength]Key
	castling   [4]Key
	sideToMove Key
	enPassant  [8]Key
}

// zobristSeed is fixed so that hashes are reproducible within (and
// across) runs of this engine; it need not match any other engine's
// keys, only be stable for the lifetime of this process.
const zobristSeed = 0x5EED_C0DE_1234_5678

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for sq := 0; sq < SqLength; sq++ {
		for p := 0; p < PieceLength; p++ {
			zobrist.piece[sq][p] = Key(rng.Uint64())
		}
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = Key(rng.Uint64())
	}
	zobrist.sideToMove = Key(rng.Uint64())
	for f := range zobrist.enPassant {
		zobrist.enPassant[f] = Key(rng.Uint64())
	}
}

// castlingKey XORs in the keys for every set bit of cr.
func castlingKey(cr CastlingRights) Key {
	var k Key
	if cr.Has(CastleWK) {
		k ^= zobrist.castling[0]
	}
	if cr.Has(CastleWQ) {
		k ^= zobrist.castling[1]
	}
	if cr.Has(CastleBK) {
		k ^= zobrist.castling[2]
	}
	if cr.Has(CastleBQ) {
		k ^= zobrist.castling[3]
	}
	return k
}

// enPassantKey returns the key for the en-passant file of sq, or 0 if
// sq is SquareNone. Only the file is hashed, so two positions that
// differ only in an en-passant target on the same file (but otherwise
// irrelevant, e.g. unreachable by any pawn) still hash equal.
func enPassantKey(sq Square) Key {
	if sq == SquareNone {
		return 0
	}
	return zobrist.enPassant[sq.File()]
}

// computeHash computes the Zobrist key for b entirely from scratch.
// Used to build the initial hash from a FEN and, in tests, to check
// the incrementally maintained hash for drift.
func (b *Board) computeHash() Key {
	var k Key
	for sq := Square(0); sq < SqLength; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			k ^= zobrist.piece[sq][p]
		}
	}
	k ^= castlingKey(b.castling)
	k ^= enPassantKey(b.enPassant)
	if !b.whiteToMove {
		k ^= zobrist.sideToMove
	}
	return k
}
