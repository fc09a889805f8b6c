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

// Package attacks holds the precomputed attack tables - leaper tables
// for king/knight/pawn and magic-hashed sliding tables for
// bishop/rook/queen. Every table is filled once by Init and is
// immutable and safe to share across goroutines after that.
package attacks

import (
	t "github.com/mkopp/bitking/internal/types"
)

var (
	king   [t.SqLength]t.Bitboard
	knight [t.SqLength]t.Bitboard
	pawn   [t.ColorLength][t.SqLength]t.Bitboard
)

// King returns the squares a king on sq attacks.
func King(sq t.Square) t.Bitboard {
	return king[sq]
}

// Knight returns the squares a knight on sq attacks.
func Knight(sq t.Square) t.Bitboard {
	return knight[sq]
}

// Pawn returns the squares a pawn of color c on sq attacks (its two
// diagonal capture squares, fewer near the board edge).
func Pawn(c t.Color, sq t.Square) t.Bitboard {
	return pawn[c][sq]
}

func initLeapers() {
	for sq := t.SqA8; sq < t.SqNone; sq++ {
		bb := sq.Bb()

		// king: union of all eight neighbours
		var kAtt t.Bitboard
		for _, d := range t.Directions {
			kAtt |= bb.Shift(d, 1)
		}
		king[sq] = kAtt

		// knight: the eight L-shaped jumps, built as two-step compass
		// hops so each can reuse the single-step file-clearing shift.
		var nAtt t.Bitboard
		nAtt |= bb.Shift(t.North, 2).Shift(t.East, 1)
		nAtt |= bb.Shift(t.North, 2).Shift(t.West, 1)
		nAtt |= bb.Shift(t.South, 2).Shift(t.East, 1)
		nAtt |= bb.Shift(t.South, 2).Shift(t.West, 1)
		nAtt |= bb.Shift(t.East, 2).Shift(t.North, 1)
		nAtt |= bb.Shift(t.East, 2).Shift(t.South, 1)
		nAtt |= bb.Shift(t.West, 2).Shift(t.North, 1)
		nAtt |= bb.Shift(t.West, 2).Shift(t.South, 1)
		knight[sq] = nAtt

		// pawn: one diagonal step forward, per color
		pawn[t.White][sq] = bb.Shift(t.North, 1).Shift(t.East, 1) | bb.Shift(t.North, 1).Shift(t.West, 1)
		pawn[t.Black][sq] = bb.Shift(t.South, 1).Shift(t.East, 1) | bb.Shift(t.South, 1).Shift(t.West, 1)
	}
}
