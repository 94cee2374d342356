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

// Package transpositiontable is a fixed-size, power-of-two-sized,
// depth-preferred replacement hash table keyed by Zobrist hash, in FrankyGo's
// TtTable idiom: Resize/Clear/Hashfull/Stats alongside Probe/Store.
package transpositiontable

import (
	"fmt"

	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

// Bound classifies how a stored Value relates to the true score.
type Bound uint8

const (
	BoundNone Bound = iota
	Exact
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case Exact:
		return "Exact"
	case LowerBound:
		return "LowerBound"
	case UpperBound:
		return "UpperBound"
	default:
		return "None"
	}
}

// HitKind reports what Probe found.
type HitKind uint8

const (
	Miss HitKind = iota
	HitExact
	HitLower
	HitUpper
)

// Entry is one transposition-table slot: {hash, depth, score, bound,
// best_move}, per spec.md §3.
type Entry struct {
	Hash      position.Key
	Depth     int
	Score     Value
	Bound     Bound
	BestMove  Move
	occupied  bool
}

// Stats counts table activity for diagnostics (StatsSnapshot, String).
type Stats struct {
	Puts       uint64
	Hits       uint64
	Misses     uint64
	Collisions uint64
}

// Table is a fixed-size transposition table. The zero value is not
// usable; construct with New.
type Table struct {
	entries []Entry
	mask    uint64
	stats   Stats
}

// New allocates a Table sized to hold approximately sizeMB megabytes
// of entries, rounded up to a power of two slot count.
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table for approximately sizeMB megabytes,
// discarding all prior entries.
func (t *Table) Resize(sizeMB int) {
	if sizeMB < 1 {
		sizeMB = 1
	}
	const entrySize = 40 // approximate Entry size in bytes
	slots := (sizeMB * 1024 * 1024) / entrySize
	slots = nextPowerOfTwo(slots)
	if slots < 1024 {
		slots = 1024
	}
	t.entries = make([]Entry, slots)
	t.mask = uint64(slots) - 1
	t.stats = Stats{}
}

// Clear empties every slot without reallocating, used by
// Engine.NewGame.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.stats = Stats{}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (t *Table) index(hash position.Key) uint64 {
	return uint64(hash) & t.mask
}

// Probe looks up hash and classifies the result against (depth, alpha,
// beta) per spec.md §4.F. score is only meaningful when kind != Miss.
func (t *Table) Probe(hash position.Key, depth int, alpha, beta Value) (score Value, bestMove Move, kind HitKind) {
	e := &t.entries[t.index(hash)]
	if !e.occupied || e.Hash != hash {
		t.stats.Misses++
		return 0, MoveNone, Miss
	}

	bestMove = e.BestMove
	if e.Depth < depth {
		t.stats.Misses++
		return 0, bestMove, Miss
	}

	switch e.Bound {
	case Exact:
		t.stats.Hits++
		return e.Score, bestMove, HitExact
	case LowerBound:
		if e.Score >= beta {
			t.stats.Hits++
			return beta, bestMove, HitLower
		}
	case UpperBound:
		if e.Score <= alpha {
			t.stats.Hits++
			return alpha, bestMove, HitUpper
		}
	}
	t.stats.Misses++
	return 0, bestMove, Miss
}

// Store inserts or overwrites the slot for hash. Always-replace, with
// a preference for keeping the deeper of two colliding entries when
// the new entry isn't deeper; a new Exact entry always replaces.
func (t *Table) Store(hash position.Key, depth int, score Value, bound Bound, bestMove Move) {
	idx := t.index(hash)
	e := &t.entries[idx]
	if e.occupied && e.Hash != hash {
		t.stats.Collisions++
	}
	if e.occupied && e.Depth > depth && bound != Exact {
		return
	}
	t.stats.Puts++
	*e = Entry{
		Hash:     hash,
		Depth:    depth,
		Score:    score,
		Bound:    bound,
		BestMove: bestMove,
		occupied: true,
	}
}

// Hashfull estimates table occupancy in permille (0..1000), sampling
// the first 1000 slots, matching the UCI "hashfull" convention.
func (t *Table) Hashfull() int {
	sample := len(t.entries)
	if sample > 1000 {
		sample = 1000
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].occupied {
			used++
		}
	}
	return used * 1000 / sample
}

// StatsSnapshot returns a copy of the table's current Stats.
func (t *Table) StatsSnapshot() Stats {
	return t.stats
}

func (t *Table) String() string {
	return fmt.Sprintf("TT{slots=%d hashfull=%d%% puts=%d hits=%d misses=%d collisions=%d}",
		len(t.entries), t.Hashfull()/10, t.stats.Puts, t.stats.Hits, t.stats.Misses, t.stats.Collisions)
}

// keyOf is a convenience re-export so callers that only have a
// *position.Board (not a raw Key) can probe/store without importing
// position.Key by name.
func keyOf(b *position.Board) position.Key {
	return b.Hash()
}
