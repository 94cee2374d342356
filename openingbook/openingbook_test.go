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

package openingbook

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvidae/chessgo/types"
)

const sampleBook = `# comment line, and a blank line below

rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 e2e4
rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1 e7e5
`

func TestLoadAndLookupHit(t *testing.T) {
	book, err := Load(strings.NewReader(sampleBook))
	require.NoError(t, err)

	m, ok := book.Lookup("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.StringUCI())
}

func TestLookupIgnoresMoveCounters(t *testing.T) {
	book, err := Load(strings.NewReader(sampleBook))
	require.NoError(t, err)

	// Same first four fields as the stored entry, different halfmove/fullmove.
	m, ok := book.Lookup("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 12")
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.StringUCI())
}

func TestLookupMiss(t *testing.T) {
	book, err := Load(strings.NewReader(sampleBook))
	require.NoError(t, err)

	_, ok := book.Lookup("8/8/8/4k3/8/8/4P3/4K3 w - - 0 1")
	assert.False(t, ok)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := Load(strings.NewReader("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0\n"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedMove(t *testing.T) {
	_, err := Load(strings.NewReader("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 z9z9\n"))
	assert.Error(t, err)
}

func TestLoadParsesPromotionMove(t *testing.T) {
	book, err := Load(strings.NewReader("8/P7/8/8/8/8/8/k6K w - - 0 1 a7a8q\n"))
	require.NoError(t, err)
	m, ok := book.Lookup("8/P7/8/8/8/8/8/k6K w - - 0 1")
	require.True(t, ok)
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "a7a8q", m.StringUCI())
}

func TestNewBookHasNoEntries(t *testing.T) {
	book := New()
	_, ok := book.Lookup("8/8/8/4k3/8/8/4P3/4K3 w - - 0 1")
	assert.False(t, ok)
}
