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

// Package zobrist provides position hashing and the repetition-history
// stack built on top of it.
package zobrist

import (
	t "github.com/mkopp/bitking/internal/types"
)

// Key is a 64 bit Zobrist hash of a chess position.
type Key uint64

var (
	pieceKeys     [t.ColorLength][t.PieceTypeLength][t.SqLength]Key
	castlingKeys  [t.CastlingAny + 1]Key
	enPassantKeys [t.FileLength]Key
	sideToMoveKey Key
)

// random is the xorshift64star generator used to seed the key tables,
// ported from Stockfish's implementation (public domain, S. Vigna 2014).
type random struct{ s uint64 }

func newRandom(seed uint64) *random {
	return &random{s: seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func init() {
	r := newRandom(1070372)
	for c := t.White; c < t.ColorLength; c++ {
		for pt := t.Knight; pt < t.PieceTypeNone; pt++ {
			for sq := t.SqA8; sq < t.SqNone; sq++ {
				pieceKeys[c][pt][sq] = Key(r.rand64())
			}
		}
	}
	for cr := t.CastlingNone; cr <= t.CastlingAny; cr++ {
		castlingKeys[cr] = Key(r.rand64())
	}
	for f := t.FileA; f < t.FileNone; f++ {
		enPassantKeys[f] = Key(r.rand64())
	}
	sideToMoveKey = Key(r.rand64())
}

// Compute hashes a position from scratch. Every TryPlayMove recomputes
// the key this way rather than updating it incrementally - see
// DESIGN.md for the tradeoff.
func Compute(board *[t.SqLength]t.Piece, stm t.Color, cr t.CastlingRights, ep t.Square) Key {
	var key Key
	for sq := t.SqA8; sq < t.SqNone; sq++ {
		pc := board[sq]
		if pc.IsNone() {
			continue
		}
		key ^= pieceKeys[pc.Color][pc.Type][sq]
	}
	key ^= castlingKeys[cr]
	if ep != t.SqNone {
		key ^= enPassantKeys[ep.FileOf()]
	}
	if stm == t.Black {
		key ^= sideToMoveKey
	}
	return key
}
