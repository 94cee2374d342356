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
	. "github.com/corvidae/chessgo/types"
)

// EditKind tags the variant of a single Delta edit.
type EditKind uint8

const (
	EditPlace EditKind = iota
	EditRemove
	EditMove
	EditCastlingChange
	EditEnPassantChange
	EditHalfmoveChange
)

// Edit is one tagged step of a Delta: either a piece placed, removed,
// or relocated, or a side-table change (castling rights, en-passant
// target, halfmove clock) recorded so UndoMove can restore it exactly.
type Edit struct {
	Kind EditKind

	Square Square // Place, Remove
	From   Square // Move
	To     Square // Move
	Piece  Piece  // Place, Remove, Move

	PrevCastling  CastlingRights // CastlingChange
	PrevEnPassant Square         // EnPassantChange
	PrevHalfmove  int            // HalfmoveChange
}

// Delta is the ordered sequence of edits produced by one DoMove call,
// together with enough side-table snapshots to restore the board to
// its exact prior state. UndoMove always reverses the most recently
// applied Delta, so Deltas are not threaded by the caller -- they live
// on Board.history, mirroring how a single mutable Board is shared
// between search and the controller in this engine.
type Delta struct {
	Move Move
	Edits []Edit

	PrevCastling  CastlingRights
	PrevEnPassant Square
	PrevHalfmove  int
	PrevFullmove  int
	PrevHash      Key
	PrevRepBase   int
}

// castleRookSquares returns the rook's from/to squares for a castling
// move by color whose king lands on kingTo.
func castleRookSquares(color Color, kingTo Square) (from, to Square) {
	if color == White {
		if kingTo == SqG1 {
			return SqH1, SqF1
		}
		return SqA1, SqD1
	}
	if kingTo == SqG8 {
		return SqH8, SqF8
	}
	return SqA8, SqD8
}

// clearRookRight strips the castling right associated with a rook's
// home square, e.g. when that rook moves or is captured there.
func clearRookRight(cr *CastlingRights, sq Square, color Color) {
	switch sq {
	case SqA1:
		if color == White {
			*cr = cr.Clear(CastleWQ)
		}
	case SqH1:
		if color == White {
			*cr = cr.Clear(CastleWK)
		}
	case SqA8:
		if color == Black {
			*cr = cr.Clear(CastleBQ)
		}
	case SqH8:
		if color == Black {
			*cr = cr.Clear(CastleBK)
		}
	}
}

// DoMove applies m (assumed pseudo-legal and, for any move generated
// by the movegen package, legal) to b, pushes the resulting Delta onto
// b's undo stack and returns it. The caller is responsible for having
// verified legality (movegen filters out moves leaving the mover's own
// king in check) -- DoMove itself performs no legality check.
func (b *Board) DoMove(m Move) Delta {
	from, to := m.From(), m.To()
	fromPc := b.squares[from]
	color := fromPc.ColorOf()

	d := Delta{
		Move:          m,
		PrevCastling:  b.castling,
		PrevEnPassant: b.enPassant,
		PrevHalfmove:  b.halfmoveClock,
		PrevFullmove:  b.fullmoveCount,
		PrevHash:      b.hash,
		PrevRepBase:   b.repetitionBase,
	}

	isCapture := false

	switch {
	case m.IsEnPassant():
		capSq := NewSquare(to.File(), from.Rank())
		capPc := b.squares[capSq]
		d.Edits = append(d.Edits, Edit{Kind: EditRemove, Square: capSq, Piece: capPc})
		b.removePiece(capSq, capPc)
		isCapture = true
	case b.squares[to] != NoPiece:
		capPc := b.squares[to]
		d.Edits = append(d.Edits, Edit{Kind: EditRemove, Square: to, Piece: capPc})
		b.removePiece(to, capPc)
		isCapture = true
	}

	if m.IsPromotion() {
		d.Edits = append(d.Edits, Edit{Kind: EditRemove, Square: from, Piece: fromPc})
		b.removePiece(from, fromPc)
		promoted := MakePiece(color, m.Promotion())
		d.Edits = append(d.Edits, Edit{Kind: EditPlace, Square: to, Piece: promoted})
		b.addPiece(to, promoted)
	} else {
		d.Edits = append(d.Edits, Edit{Kind: EditMove, From: from, To: to, Piece: fromPc})
		b.movePiece(from, to, fromPc)
	}

	if m.IsCastle() {
		rookFrom, rookTo := castleRookSquares(color, to)
		rook := MakePiece(color, Rook)
		d.Edits = append(d.Edits, Edit{Kind: EditMove, From: rookFrom, To: rookTo, Piece: rook})
		b.movePiece(rookFrom, rookTo, rook)
	}

	newCastling := b.castling
	if fromPc.TypeOf() == King {
		newCastling = newCastling.Clear(Both(color))
	}
	clearRookRight(&newCastling, from, color)
	if isCapture {
		capSq := to
		if m.IsEnPassant() {
			capSq = SquareNone // en-passant never captures on a rook home square
		}
		clearRookRight(&newCastling, capSq, color.Flip())
	}
	if newCastling != b.castling {
		d.Edits = append(d.Edits, Edit{Kind: EditCastlingChange, PrevCastling: b.castling})
		b.hash ^= castlingKey(b.castling)
		b.castling = newCastling
		b.hash ^= castlingKey(b.castling)
	}

	prevEP := b.enPassant
	newEP := Square(SquareNone)
	if m.IsDoublePush() {
		newEP = NewSquare(to.File(), (from.Rank()+to.Rank())/2)
	}
	if newEP != prevEP {
		d.Edits = append(d.Edits, Edit{Kind: EditEnPassantChange, PrevEnPassant: prevEP})
		b.hash ^= enPassantKey(prevEP)
		b.enPassant = newEP
		b.hash ^= enPassantKey(newEP)
	}

	prevHalf := b.halfmoveClock
	if isCapture || fromPc.TypeOf() == Pawn {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	d.Edits = append(d.Edits, Edit{Kind: EditHalfmoveChange, PrevHalfmove: prevHalf})

	if color == Black {
		b.fullmoveCount++
	}

	b.whiteToMove = !b.whiteToMove
	b.hash ^= zobrist.sideToMove

	irreversible := isCapture || fromPc.TypeOf() == Pawn || newCastling != d.PrevCastling || newEP != prevEP
	b.repetitionHist = append(b.repetitionHist, b.hash)
	if irreversible {
		b.repetitionBase = len(b.repetitionHist) - 1
	}

	b.history = append(b.history, d)
	return d
}

// UndoMove reverses the most recently applied Delta, restoring b to
// its exact state before that DoMove. It panics if called with no
// moves applied -- callers (search, the controller) only call it
// paired with a prior DoMove, in strict LIFO order.
func (b *Board) UndoMove() Delta {
	n := len(b.history) - 1
	if n < 0 {
		panic("position: UndoMove called with no move to undo")
	}
	d := b.history[n]
	b.history = b.history[:n]

	for i := len(d.Edits) - 1; i >= 0; i-- {
		e := d.Edits[i]
		switch e.Kind {
		case EditPlace:
			b.removePiece(e.Square, e.Piece)
		case EditRemove:
			b.addPiece(e.Square, e.Piece)
		case EditMove:
			b.movePiece(e.To, e.From, e.Piece)
		}
	}

	b.castling = d.PrevCastling
	b.enPassant = d.PrevEnPassant
	b.halfmoveClock = d.PrevHalfmove
	b.fullmoveCount = d.PrevFullmove
	b.whiteToMove = !b.whiteToMove
	b.hash = d.PrevHash
	b.repetitionHist = b.repetitionHist[:len(b.repetitionHist)-1]
	b.repetitionBase = d.PrevRepBase

	return d
}
