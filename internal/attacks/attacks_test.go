/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	t "github.com/mkopp/bitking/internal/types"
)

func TestMain(m *testing.M) {
	Init()
	m.Run()
}

func TestKingAttacksCorner(t2 *testing.T) {
	assert.Equal(t2, 3, King(t.SqA8).PopCount())
	assert.Equal(t2, 8, King(t.SqD4).PopCount())
}

func TestKnightAttacksCorner(t2 *testing.T) {
	assert.Equal(t2, 2, Knight(t.SqA8).PopCount())
	assert.Equal(t2, 8, Knight(t.SqD5).PopCount())
}

func TestPawnAttacks(t2 *testing.T) {
	// a white pawn on d4 attacks c5 and e5
	want := t.SqC5.Bb() | t.SqE5.Bb()
	assert.Equal(t2, want, Pawn(t.White, t.SqD4))
	// a black pawn on d5 attacks c4 and e4
	want = t.SqC4.Bb() | t.SqE4.Bb()
	assert.Equal(t2, want, Pawn(t.Black, t.SqD5))
	// edge file: only one diagonal exists
	assert.Equal(t2, t.SqB8.Bb(), Pawn(t.White, t.SqA7))
}

func TestRookAttacksEmptyBoard(t2 *testing.T) {
	att := Rook(t.SqD4, t.BbZero)
	assert.Equal(t2, 14, att.PopCount())
	assert.True(t2, att.Has(t.SqD8))
	assert.True(t2, att.Has(t.SqA4))
	assert.False(t2, att.Has(t.SqC3))
}

func TestBishopAttacksEmptyBoard(t2 *testing.T) {
	att := Bishop(t.SqD4, t.BbZero)
	assert.Equal(t2, 13, att.PopCount())
	assert.True(t2, att.Has(t.SqA1))
	assert.True(t2, att.Has(t.SqH8))
}

func TestQueenAttacksIsRookUnionBishop(t2 *testing.T) {
	occ := t.SqD7.Bb() | t.SqB4.Bb()
	assert.Equal(t2, Rook(t.SqD4, occ)|Bishop(t.SqD4, occ), Queen(t.SqD4, occ))
}

func TestSlidingAttacksStopAtBlocker(t2 *testing.T) {
	occ := t.SqD6.Bb()
	att := Rook(t.SqD4, occ)
	assert.True(t2, att.Has(t.SqD5))
	assert.True(t2, att.Has(t.SqD6))
	assert.False(t2, att.Has(t.SqD7))
}

func TestInitIsIdempotent(t2 *testing.T) {
	before := Rook(t.SqA1, t.BbZero)
	Init()
	Init()
	assert.Equal(t2, before, Rook(t.SqA1, t.BbZero))
}
