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
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidae/chessgo/types"
)

// setupFromFen parses the standard six-field FEN string into b,
// validating both syntax (ErrInvalidFEN) and board legality
// (ErrIllegalPosition).
func (b *Board) setupFromFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return fmt.Errorf("%w: expected 6 fields, got %d (%q)", ErrInvalidFEN, len(fields), fen)
	}

	*b = Board{enPassant: SquareNone}

	if err := b.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		b.whiteToMove = true
	case "b":
		b.whiteToMove = false
	default:
		return fmt.Errorf("%w: active color must be 'w' or 'b', got %q", ErrInvalidFEN, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			if strings.IndexRune("KQkq", c) < 0 {
				return fmt.Errorf("%w: invalid castling availability %q", ErrInvalidFEN, fields[2])
			}
		}
	}
	b.castling = CastlingRightsFromString(fields[2])

	ep, ok := SquareFromString(fields[3])
	if !ok {
		return fmt.Errorf("%w: invalid en-passant target %q", ErrInvalidFEN, fields[3])
	}
	if ep != SquareNone && ep.Rank() != 2 && ep.Rank() != 5 {
		return fmt.Errorf("%w: en-passant target %q is not on rank 3 or 6", ErrInvalidFEN, fields[3])
	}
	b.enPassant = ep

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFEN, fields[4])
	}
	b.halfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidFEN, fields[5])
	}
	b.fullmoveCount = fullmove

	if err := b.validatePosition(); err != nil {
		return err
	}

	b.hash = b.computeHash()
	b.repetitionHist = []Key{b.hash}
	b.repetitionBase = 0
	return nil
}

// parsePlacement parses field 1 (piece placement, rank 8 to rank 1)
// into the mailbox, piece lists and king squares.
func (b *Board) parsePlacement(field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks in piece placement, got %d", ErrInvalidFEN, len(ranks))
	}
	for ri, rankStr := range ranks {
		rank := 7 - ri
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			p := PieceFromChar(string(c))
			if p == NoPiece {
				return fmt.Errorf("%w: unknown piece character %q", ErrInvalidFEN, string(c))
			}
			if file > 7 {
				return fmt.Errorf("%w: rank %d has more than 8 files", ErrInvalidFEN, rank+1)
			}
			sq := NewSquare(file, rank)
			b.addPiece(sq, p)
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d does not sum to 8 files", ErrInvalidFEN, rank+1)
		}
	}
	return nil
}

// validatePosition checks the board-legality invariants from spec
// §3 invariant 1 and §7 InputIllegal: exactly one king per side, no
// pawns on the back ranks, and the side not to move is not in check.
func (b *Board) validatePosition() error {
	whiteKings, blackKings := b.countKings()
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("%w: expected exactly one king per side, got white=%d black=%d", ErrIllegalPosition, whiteKings, blackKings)
	}
	for f := 0; f < 8; f++ {
		if p := b.squares[NewSquare(f, 0)]; p == WhitePawn || p == BlackPawn {
			return fmt.Errorf("%w: pawn on rank 1", ErrIllegalPosition)
		}
		if p := b.squares[NewSquare(f, 7)]; p == WhitePawn || p == BlackPawn {
			return fmt.Errorf("%w: pawn on rank 8", ErrIllegalPosition)
		}
	}
	notToMove := b.SideToMove().Flip()
	if b.IsInCheck(notToMove) {
		return fmt.Errorf("%w: side not to move (%s) is in check", ErrIllegalPosition, notToMove)
	}
	return nil
}

// countKings scans the mailbox directly (rather than trusting
// kingSquare) so a malformed FEN with zero or multiple kings per side
// is still caught.
func (b *Board) countKings() (white, black int) {
	for sq := Square(0); sq < SqLength; sq++ {
		switch b.squares[sq] {
		case WhiteKing:
			white++
			b.kingSquare[White] = sq
		case BlackKing:
			black++
			b.kingSquare[Black] = sq
		}
	}
	return
}

// ToFEN renders b as a standard six-field FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(b.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveCount))
	return sb.String()
}
