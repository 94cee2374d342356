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

// Package movegen generates pseudo-legal and legal moves for a
// position.Board. Legality is decided by the simplest correct method:
// apply the candidate move, test whether the mover's own king is
// attacked, then undo -- not by precomputed pin rays. This keeps the
// generator a thin, obviously-correct layer on top of position's
// Do/UndoMove, at the cost of doing a make/unmake per pseudo-legal
// move rather than filtering with pin masks up front.
package movegen

import (
	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

// promotionPieces are the four piece types a pawn may promote to, in
// the order moves are generated (queen first, favoring move ordering
// heuristics that prefer the earliest-generated promotion).
var promotionPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

// LegalMoves returns every legal move available to the side to move
// in b. The returned slice is newly allocated and safe to retain.
func LegalMoves(b *position.Board) []Move {
	pseudo := PseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	mover := b.SideToMove()
	for _, m := range pseudo {
		b.DoMove(m)
		if !b.IsInCheck(mover) {
			legal = append(legal, m)
		}
		b.UndoMove()
	}
	return legal
}

// IsInCheck reports whether color c's king is currently attacked. It
// delegates to position.Board so movegen, not position, is the
// package the rest of the engine treats as the move-generation
// authority per the external interface.
func IsInCheck(b *position.Board, c Color) bool {
	return b.IsInCheck(c)
}

// IsSquareAttacked reports whether sq is attacked by any piece of
// color by.
func IsSquareAttacked(b *position.Board, sq Square, by Color) bool {
	return b.IsSquareAttacked(sq, by, SquareNone)
}

// HasLegalMove reports whether the side to move has at least one
// legal move, short-circuiting as soon as one is found. Used for
// checkmate/stalemate detection without legality-testing every
// pseudo-legal move.
func HasLegalMove(b *position.Board) bool {
	mover := b.SideToMove()
	for _, m := range PseudoLegalMoves(b) {
		b.DoMove(m)
		inCheck := b.IsInCheck(mover)
		b.UndoMove()
		if !inCheck {
			return true
		}
	}
	return false
}

// PseudoLegalMoves returns every move that obeys each piece's movement
// rules, ignoring whether it leaves the mover's own king in check.
func PseudoLegalMoves(b *position.Board) []Move {
	moves := make([]Move, 0, 48)
	us := b.SideToMove()
	them := us.Flip()

	for pt := King; pt < PtLength; pt++ {
		for _, sq := range squaresOf(b, us, pt) {
			switch pt {
			case Pawn:
				genPawnMoves(b, sq, us, &moves)
			case Knight:
				genStepMoves(b, sq, us, position.KnightOffsets[:], &moves)
			case King:
				genStepMoves(b, sq, us, position.KingOffsets[:], &moves)
				genCastleMoves(b, sq, us, them, &moves)
			case Bishop:
				genSlideMoves(b, sq, us, position.BishopDirections[:], &moves)
			case Rook:
				genSlideMoves(b, sq, us, position.RookDirections[:], &moves)
			case Queen:
				genSlideMoves(b, sq, us, position.BishopDirections[:], &moves)
				genSlideMoves(b, sq, us, position.RookDirections[:], &moves)
			}
		}
	}
	return moves
}

// squaresOf returns the squares occupied by (us, pt), reading the
// king square directly since kings are not kept in the piece lists.
func squaresOf(b *position.Board, us Color, pt PieceType) []Square {
	if pt == King {
		return []Square{b.KingSquare(us)}
	}
	return b.PieceSquares(MakePiece(us, pt))
}

// genStepMoves appends one quiet-or-capture move per offset in steps
// that lands on the board and is not occupied by a friendly piece.
func genStepMoves(b *position.Board, from Square, us Color, steps [][2]int, moves *[]Move) {
	for _, o := range steps {
		to, ok := stepSquare(from, o[0], o[1])
		if !ok {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.ColorOf() == us {
			continue
		}
		*moves = append(*moves, NewMove(from, to, FlagNone, PtNone))
	}
}

// genSlideMoves walks each ray in dirs from 'from' until it runs off
// the board, hits a friendly piece (stop, don't include), or hits an
// enemy piece (include as a capture, then stop).
func genSlideMoves(b *position.Board, from Square, us Color, dirs [][2]int, moves *[]Move) {
	for _, d := range dirs {
		sq := from
		for {
			next, ok := stepSquare(sq, d[0], d[1])
			if !ok {
				break
			}
			sq = next
			target := b.PieceAt(sq)
			if target.IsEmpty() {
				*moves = append(*moves, NewMove(from, sq, FlagNone, PtNone))
				continue
			}
			if target.ColorOf() != us {
				*moves = append(*moves, NewMove(from, sq, FlagNone, PtNone))
			}
			break
		}
	}
}

// stepSquare moves sq by (df, dr); ok is false if the result leaves
// the board. Mirrors position.step, duplicated here (unexported there)
// rather than exposing an internal helper across the package boundary.
func stepSquare(sq Square, df, dr int) (Square, bool) {
	f := sq.File() + df
	r := sq.Rank() + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SquareNone, false
	}
	return NewSquare(f, r), true
}

// genPawnMoves appends single/double pushes, diagonal captures (plain
// and en-passant) and the four promotion choices where applicable.
func genPawnMoves(b *position.Board, from Square, us Color, moves *[]Move) {
	dir := us.Direction()
	startRank, promoRank := 1, 7
	if us == Black {
		startRank, promoRank = 6, 0
	}

	addPawnMove := func(to Square, flags MoveFlags) {
		if to.Rank() == promoRank {
			for _, pt := range promotionPieces {
				*moves = append(*moves, NewMove(from, to, flags, pt))
			}
			return
		}
		*moves = append(*moves, NewMove(from, to, flags, PtNone))
	}

	if one, ok := stepSquare(from, 0, dir); ok && b.PieceAt(one).IsEmpty() {
		addPawnMove(one, FlagNone)
		if from.Rank() == startRank {
			if two, ok := stepSquare(from, 0, 2*dir); ok && b.PieceAt(two).IsEmpty() {
				addPawnMove(two, FlagDoublePush)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to, ok := stepSquare(from, df, dir)
		if !ok {
			continue
		}
		target := b.PieceAt(to)
		if !target.IsEmpty() && target.ColorOf() != us {
			addPawnMove(to, FlagNone)
			continue
		}
		if to == b.EnPassant() {
			addPawnMove(to, FlagEnPassant)
		}
	}
}

// genCastleMoves appends the king-side and/or queen-side castling
// moves still available to us, checking that the king is not in
// check, does not pass through an attacked square, and that the
// squares between king and rook are empty. The final destination
// square's safety is left to the caller's legal-move filter (the same
// make/unmake check test every other move goes through).
func genCastleMoves(b *position.Board, kingSq Square, us, them Color, moves *[]Move) {
	rights := b.Castling()
	if b.IsSquareAttacked(kingSq, them, SquareNone) {
		return
	}

	type castle struct {
		right  CastlingRights
		transit Square
		dest   Square
		empties []Square
	}

	var candidates []castle
	if us == White {
		candidates = []castle{
			{CastleWK, SqF1, SqG1, []Square{SqF1, SqG1}},
			{CastleWQ, SqD1, SqC1, []Square{SqD1, SqC1, SqB1}},
		}
	} else {
		candidates = []castle{
			{CastleBK, SqF8, SqG8, []Square{SqF8, SqG8}},
			{CastleBQ, SqD8, SqC8, []Square{SqD8, SqC8, SqB8}},
		}
	}

	for _, c := range candidates {
		if !rights.Has(c.right) {
			continue
		}
		allEmpty := true
		for _, sq := range c.empties {
			if !b.PieceAt(sq).IsEmpty() {
				allEmpty = false
				break
			}
		}
		if !allEmpty {
			continue
		}
		if b.IsSquareAttacked(c.transit, them, SquareNone) {
			continue
		}
		*moves = append(*moves, NewMove(kingSq, c.dest, FlagCastle, PtNone))
	}
}
