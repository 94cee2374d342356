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

// Package openingbook is a concrete, pluggable implementation of the
// core's "try book move" hook (spec.md §1 Non-goals: opening book data
// is external). Book loads FrankyGo's "Simple" text format: one
// "<fen> <uci-move>" pair per line, mapping a FEN (ignoring the
// halfmove/fullmove fields) to a single suggested move.
package openingbook

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	. "github.com/corvidae/chessgo/types"
)

// Book maps a position key (FEN with move counters stripped) to a
// single recommended move.
type Book struct {
	moves map[string]Move
}

// New returns an empty Book with no entries.
func New() *Book {
	return &Book{moves: make(map[string]Move)}
}

// Load reads the "Simple" text format from r: non-empty, non-"#"
// comment lines of the form "<fen> <uci-move>", where fen is the
// six-field FEN (the first four fields are used as the lookup key) and
// uci-move is long algebraic ("e2e4", "e7e8q").
func Load(r io.Reader) (*Book, error) {
	b := New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 7 {
			return nil, fmt.Errorf("openingbook: line %d: expected 6 FEN fields + a move, got %d fields", lineNo, len(fields))
		}
		uci := fields[len(fields)-1]
		move, err := parseUCIMove(uci)
		if err != nil {
			return nil, fmt.Errorf("openingbook: line %d: %w", lineNo, err)
		}
		key := bookKey(fields[:4])
		b.moves[key] = move
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("openingbook: reading book: %w", err)
	}
	return b, nil
}

// Lookup returns the book's suggested move for the position described
// by fen, if any.
func (b *Book) Lookup(fen string) (Move, bool) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return MoveNone, false
	}
	m, ok := b.moves[bookKey(fields[:4])]
	return m, ok
}

// bookKey uses only piece placement, side to move, castling rights
// and en-passant target -- the halfmove/fullmove counters don't affect
// which moves are reasonable, so two positions differing only in
// those counters share a book entry.
func bookKey(fenFields []string) string {
	return strings.Join(fenFields, " ")
}

// parseUCIMove parses long algebraic notation ("e2e4", "e7e8q",
// "e1g1" for castling encoded plainly as a king move -- the flags
// (castle/en-passant/double-push) are not recoverable from UCI text
// alone and are left unset; callers must re-derive them, e.g. via
// movegen.LegalMoves, before applying a book move to a Board).
func parseUCIMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveNone, fmt.Errorf("malformed move %q", s)
	}
	from, ok := SquareFromString(s[0:2])
	if !ok {
		return MoveNone, fmt.Errorf("malformed from-square in %q", s)
	}
	to, ok := SquareFromString(s[2:4])
	if !ok {
		return MoveNone, fmt.Errorf("malformed to-square in %q", s)
	}
	promo := PtNone
	if len(s) == 5 {
		promo = PieceFromChar(strings.ToUpper(string(s[4]))).TypeOf()
	}
	return NewMove(from, to, FlagNone, promo), nil
}
