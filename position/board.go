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

// Package position represents a chess board and its position: the
// 8x8 piece array, side to move, castling rights, en-passant square,
// piece lists, move counters and repetition history. A Board is built
// from a FEN string and from then on is only ever mutated through
// DoMove/UndoMove so that search can run on a single mutable instance.
package position

import (
	"strings"

	. "github.com/corvidae/chessgo/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory is a nominal game length, far beyond the longest recorded
// tournament game. Nothing enforces it: the undo and repetition
// histories of a Board grow without limit.
const maxHistory = 1024

// Board is a single mutable chess position. Create one with
// NewBoard/NewBoardFen; mutate it only via DoMove/UndoMove.
type Board struct {
	squares         [SqLength]Piece
	whiteToMove     bool
	castling        CastlingRights
	enPassant       Square
	halfmoveClock   int
	fullmoveCount   int
	repetitionHist  []Key
	repetitionBase  int
	hash            Key

	kingSquare [ColorLength]Square
	pieceList  [PieceLength][]Square

	// history is the undo stack of Deltas produced by DoMove, one per
	// ply currently applied to this board.
	history []Delta
}

// NewBoard returns a Board set up in the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFen(StartFen)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return b
}

// NewBoardFen parses fen into a new Board. Returns an error wrapping
// ErrInvalidFEN or ErrIllegalPosition if fen is malformed or describes
// an impossible position.
func NewBoardFen(fen string) (*Board, error) {
	b := &Board{}
	if err := b.setupFromFen(fen); err != nil {
		return nil, err
	}
	return b, nil
}

// Clone returns a deep, independent copy of b suitable for handing to
// a parallel searcher.
func (b *Board) Clone() *Board {
	nb := *b
	for p := range b.pieceList {
		if b.pieceList[p] != nil {
			nb.pieceList[p] = append([]Square(nil), b.pieceList[p]...)
		}
	}
	nb.repetitionHist = append([]Key(nil), b.repetitionHist...)
	nb.history = append([]Delta(nil), b.history...)
	return &nb
}

// PieceAt returns the piece code occupying sq (NoPiece if empty).
func (b *Board) PieceAt(sq Square) Piece {
	return b.squares[sq]
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	if b.whiteToMove {
		return White
	}
	return Black
}

// Castling returns the current castling-rights mask.
func (b *Board) Castling() CastlingRights {
	return b.castling
}

// EnPassant returns the current en-passant target square, or
// SquareNone.
func (b *Board) EnPassant() Square {
	return b.enPassant
}

// HalfmoveClock returns the number of plies since the last capture or
// pawn move.
func (b *Board) HalfmoveClock() int {
	return b.halfmoveClock
}

// FullmoveCount returns the full-move counter (incremented after
// every black move).
func (b *Board) FullmoveCount() int {
	return b.fullmoveCount
}

// Hash returns the current Zobrist key, maintained incrementally by
// DoMove/UndoMove.
func (b *Board) Hash() Key {
	return b.hash
}

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.kingSquare[c]
}

// PieceSquares returns the (unordered) list of squares currently
// occupied by piece p. The slice is owned by the Board: callers must
// not retain or mutate it across a DoMove/UndoMove.
func (b *Board) PieceSquares(p Piece) []Square {
	return b.pieceList[p]
}

// RepetitionCount returns how many times the current hash has occurred
// since the last irreversible move, counting the current occurrence
// itself. A threefold repetition is RepetitionCount() >= 3.
//
// repetitionHist is an append-only log of every position reached
// (including the one set up from FEN); repetitionBase is the index at
// which the current "since the last irreversible move" window starts.
// An irreversible move advances the base rather than truncating the
// slice, so UndoMove can restore it in O(1) by simply popping the log
// and restoring the saved base.
func (b *Board) RepetitionCount() int {
	count := 0
	for _, h := range b.repetitionHist[b.repetitionBase:] {
		if h == b.hash {
			count++
		}
	}
	return count
}

// Ply returns the number of moves currently applied (the length of
// the undo stack), i.e. how many times UndoMove can be called.
func (b *Board) Ply() int {
	return len(b.history)
}

// addPiece places piece p on sq: sets the mailbox, updates the piece
// list (or the king square) and XORs the hash. sq must be empty.
func (b *Board) addPiece(sq Square, p Piece) {
	b.squares[sq] = p
	if p.TypeOf() == King {
		b.kingSquare[p.ColorOf()] = sq
	} else {
		b.pieceList[p] = append(b.pieceList[p], sq)
	}
	b.hash ^= zobrist.piece[sq][p]
}

// removePiece removes the piece occupying sq (which must hold p).
func (b *Board) removePiece(sq Square, p Piece) {
	b.squares[sq] = NoPiece
	if p.TypeOf() != King {
		b.removeFromPieceList(p, sq)
	}
	b.hash ^= zobrist.piece[sq][p]
}

// movePiece relocates the piece p from 'from' to 'to', both mailbox
// and piece-list/king-square bookkeeping, updating the hash for both
// squares touched.
func (b *Board) movePiece(from, to Square, p Piece) {
	b.squares[from] = NoPiece
	b.squares[to] = p
	if p.TypeOf() == King {
		b.kingSquare[p.ColorOf()] = to
	} else {
		b.renameInPieceList(p, from, to)
	}
	b.hash ^= zobrist.piece[from][p]
	b.hash ^= zobrist.piece[to][p]
}

// removeFromPieceList deletes sq from p's piece list by swapping with
// the last element, avoiding an O(n) shift.
func (b *Board) removeFromPieceList(p Piece, sq Square) {
	list := b.pieceList[p]
	for i, s := range list {
		if s == sq {
			last := len(list) - 1
			list[i] = list[last]
			b.pieceList[p] = list[:last]
			return
		}
	}
}

// renameInPieceList updates the single occurrence of from to to in
// p's piece list, in place, preserving its slot (no swap needed since
// the piece count does not change).
func (b *Board) renameInPieceList(p Piece, from, to Square) {
	list := b.pieceList[p]
	for i, s := range list {
		if s == from {
			list[i] = to
			return
		}
	}
}

// String renders an 8x8 ASCII diagram of the board with rank/file
// labels, for logging and debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(rankLabels[rank])
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			sb.WriteString(b.squares[sq].Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}

const rankLabels = "12345678"
