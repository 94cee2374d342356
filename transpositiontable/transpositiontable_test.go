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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/chessgo/position"
	. "github.com/corvidae/chessgo/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	tt := New(1)
	_, _, kind := tt.Probe(position.Key(12345), 4, -1000, 1000)
	assert.Equal(t, Miss, kind)
}

func TestStoreThenProbeExact(t *testing.T) {
	tt := New(1)
	m := NewMove(SqE2, SqE4, FlagDoublePush, PtNone)
	tt.Store(position.Key(777), 6, Value(42), Exact, m)

	score, best, kind := tt.Probe(position.Key(777), 6, -1000, 1000)
	assert.Equal(t, HitExact, kind)
	assert.Equal(t, Value(42), score)
	assert.Equal(t, m, best)
}

func TestProbeMissesWhenStoredDepthShallower(t *testing.T) {
	tt := New(1)
	tt.Store(position.Key(777), 3, Value(10), Exact, MoveNone)
	_, _, kind := tt.Probe(position.Key(777), 6, -1000, 1000)
	assert.Equal(t, Miss, kind)
}

func TestLowerBoundHitOnlyAboveBeta(t *testing.T) {
	tt := New(1)
	tt.Store(position.Key(1), 4, Value(100), LowerBound, MoveNone)

	_, _, kind := tt.Probe(position.Key(1), 4, -1000, 50)
	assert.Equal(t, HitLower, kind, "score 100 >= beta 50 should cut off")

	_, _, kind = tt.Probe(position.Key(1), 4, -1000, 200)
	assert.Equal(t, Miss, kind, "score 100 < beta 200 should not cut off")
}

func TestUpperBoundHitOnlyBelowAlpha(t *testing.T) {
	tt := New(1)
	tt.Store(position.Key(2), 4, Value(-100), UpperBound, MoveNone)

	_, _, kind := tt.Probe(position.Key(2), 4, -50, 1000)
	assert.Equal(t, HitUpper, kind, "score -100 <= alpha -50 should cut off")

	_, _, kind = tt.Probe(position.Key(2), 4, -200, 1000)
	assert.Equal(t, Miss, kind, "score -100 > alpha -200 should not cut off")
}

func TestStoreShallowerNonExactDoesNotOverwriteDeeper(t *testing.T) {
	tt := New(1)
	m1 := NewMove(SqE2, SqE4, FlagDoublePush, PtNone)
	m2 := NewMove(SqD2, SqD4, FlagDoublePush, PtNone)
	tt.Store(position.Key(9), 10, Value(5), LowerBound, m1)
	tt.Store(position.Key(9), 3, Value(999), LowerBound, m2)

	score, best, kind := tt.Probe(position.Key(9), 10, -1000, 1000)
	require.Equal(t, HitLower, kind)
	assert.Equal(t, Value(5), score)
	assert.Equal(t, m1, best)
}

func TestStoreExactAlwaysOverwrites(t *testing.T) {
	tt := New(1)
	m1 := NewMove(SqE2, SqE4, FlagDoublePush, PtNone)
	m2 := NewMove(SqD2, SqD4, FlagDoublePush, PtNone)
	tt.Store(position.Key(9), 10, Value(5), LowerBound, m1)
	tt.Store(position.Key(9), 1, Value(999), Exact, m2)

	score, best, kind := tt.Probe(position.Key(9), 1, -1000, 1000)
	require.Equal(t, HitExact, kind)
	assert.Equal(t, Value(999), score)
	assert.Equal(t, m2, best)
}

func TestClearEmptiesTable(t *testing.T) {
	tt := New(1)
	tt.Store(position.Key(1), 4, Value(1), Exact, MoveNone)
	assert.Greater(t, tt.Hashfull(), 0)

	tt.Clear()
	assert.Equal(t, 0, tt.Hashfull())
	_, _, kind := tt.Probe(position.Key(1), 4, -1000, 1000)
	assert.Equal(t, Miss, kind)
}

func TestResizeRoundsUpToPowerOfTwoAndClears(t *testing.T) {
	tt := New(1)
	tt.Store(position.Key(1), 4, Value(1), Exact, MoveNone)

	tt.Resize(4)
	// 4 MB / 40-byte entries = 104857 slots, rounded up to 2^17.
	assert.Equal(t, 131072, len(tt.entries))
	assert.Equal(t, 0, tt.Hashfull())
	_, _, kind := tt.Probe(position.Key(1), 4, -1000, 1000)
	assert.Equal(t, Miss, kind)
}

func TestStatsSnapshotCountsPutsAndCollisions(t *testing.T) {
	tt := New(1) // smallest table: 32768 slots, collisions easy to force by reusing an index
	idx := tt.index(position.Key(1))

	// Find a second key that maps to the same slot to force a collision.
	var other position.Key
	for k := position.Key(2); ; k++ {
		if tt.index(k) == idx {
			other = k
			break
		}
	}

	tt.Store(position.Key(1), 4, Value(1), Exact, MoveNone)
	tt.Store(other, 4, Value(2), Exact, MoveNone)

	stats := tt.StatsSnapshot()
	assert.EqualValues(t, 2, stats.Puts)
	assert.EqualValues(t, 1, stats.Collisions)
}
