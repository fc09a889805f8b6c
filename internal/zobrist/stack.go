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

// Stack is an append-only history of position keys, one per ply played
// since the stack was created. It backs repetition detection: search
// and the UCI driver both need to know whether the current position
// has occurred earlier in the game, which a single current-key field
// cannot answer on its own.
type Stack struct {
	keys []Key
}

// NewStack creates a stack seeded with the starting position's key.
func NewStack(startKey Key) *Stack {
	return &Stack{keys: []Key{startKey}}
}

// Push appends the key reached after playing a move.
func (s *Stack) Push(k Key) {
	s.keys = append(s.keys, k)
}

// Pop removes the most recently pushed key, undoing the last Push.
func (s *Stack) Pop() {
	s.keys = s.keys[:len(s.keys)-1]
}

// Current returns the key on top of the stack.
func (s *Stack) Current() Key {
	return s.keys[len(s.keys)-1]
}

// Len returns the number of keys on the stack.
func (s *Stack) Len() int {
	return len(s.keys)
}

// TwofoldRepetition reports whether the current position's key already
// occurred earlier in the game, within the last halfmoves+1 plies. The
// two most recent plies are always skipped (the position just played
// and the one right before it can never equal the current key - a move
// always changes the key), and positions are then compared every other
// ply, since a repeated position can only recur with the same side to
// move.
func (s *Stack) TwofoldRepetition(halfmoves int) bool {
	if len(s.keys) < 4 {
		return false
	}

	current := s.Current()
	n := len(s.keys)
	maxStep := halfmoves &^ 1 // largest even ply count within the window
	limit := n - 1 - maxStep
	if limit < 0 {
		limit = 0
	}
	for i := n - 1 - 2; i >= limit; i -= 2 {
		if s.keys[i] == current {
			return true
		}
	}
	return false
}
