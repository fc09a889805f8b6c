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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPopCurrent(t *testing.T) {
	s := NewStack(Key(1))
	assert.Equal(t, Key(1), s.Current())
	assert.Equal(t, 1, s.Len())

	s.Push(Key(2))
	assert.Equal(t, Key(2), s.Current())
	assert.Equal(t, 2, s.Len())

	s.Pop()
	assert.Equal(t, Key(1), s.Current())
	assert.Equal(t, 1, s.Len())
}

// TestTwofoldRepetitionKnightShuffle mirrors the classic Nf3/Nf6/Ng1/Ng8
// shuffle: the position after the fourth ply equals the start position,
// which is a twofold repetition (the starting position counts as the
// first occurrence).
func TestTwofoldRepetitionKnightShuffle(t *testing.T) {
	start := Key(100)
	afterNf3 := Key(200)
	afterNf6 := Key(300)
	afterNg1 := Key(400)

	s := NewStack(start)
	s.Push(afterNf3)
	s.Push(afterNf6)
	s.Push(afterNg1)
	s.Push(start) // Ng8 undoes everything: back to the start position

	assert.True(t, s.TwofoldRepetition(100))
}

func TestTwofoldRepetitionFalseWithoutRepeat(t *testing.T) {
	s := NewStack(Key(1))
	s.Push(Key(2))
	s.Push(Key(3))
	s.Push(Key(4))
	s.Push(Key(5))
	assert.False(t, s.TwofoldRepetition(100))
}

func TestTwofoldRepetitionRespectsHalfmoveWindow(t *testing.T) {
	start := Key(1)
	s := NewStack(start)
	s.Push(Key(2))
	s.Push(Key(3))
	s.Push(Key(4))
	s.Push(start)

	// the repeat is 4 plies back; a window narrower than that must miss it
	assert.False(t, s.TwofoldRepetition(2))
	assert.True(t, s.TwofoldRepetition(10))
}
