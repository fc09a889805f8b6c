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

package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit unsigned int with one bit per square.
type Bitboard uint64

// BbZero and BbAll are the empty and fully occupied bitboards.
const (
	BbZero Bitboard = 0
	BbOne  Bitboard = 1
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

const (
	FileAMask Bitboard = 0x0101010101010101
	FileHMask Bitboard = 0x8080808080808080
	Rank1Mask Bitboard = 0xFF00000000000000
	Rank8Mask Bitboard = 0x00000000000000FF
)

var fileBb [FileLength]Bitboard
var rankBb [RankLength]Bitboard
var sqBb [SqLength]Bitboard

func init() {
	for f := FileA; f < FileNone; f++ {
		var bb Bitboard
		for r := Rank1; r < RankNone; r++ {
			bb |= sqBbRaw(SquareOf(f, r))
		}
		fileBb[f] = bb
	}
	for r := Rank1; r < RankNone; r++ {
		var bb Bitboard
		for f := FileA; f < FileNone; f++ {
			bb |= sqBbRaw(SquareOf(f, r))
		}
		rankBb[r] = bb
	}
	for sq := SqA8; sq < SqNone; sq++ {
		sqBb[sq] = sqBbRaw(sq)
	}
}

func sqBbRaw(sq Square) Bitboard {
	return BbOne << uint(sq)
}

// Bb returns the Bitboard with only sq's bit set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// PushSquare sets sq's bit in b.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sq.Bb()
}

// PopSquare clears sq's bit in b.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sq.Bb()
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Union, Intersection, Difference and Not are named forms of |, &, &^
// and ^.
func (b Bitboard) Union(o Bitboard) Bitboard        { return b | o }
func (b Bitboard) Intersection(o Bitboard) Bitboard { return b & o }
func (b Bitboard) Difference(o Bitboard) Bitboard   { return b &^ o }
func (b Bitboard) Not() Bitboard                    { return ^b }

// shiftOnce moves every bit of b one square in direction d, dropping
// bits that would cross an edge. Single rank-only shifts (N, S) need no
// masking: the overflow simply falls off the 64-bit word. Any direction
// with a lateral (E/W) component must have the departure file cleared
// first or a bit on the edge file would wrap onto the opposite edge of
// the adjacent rank.
func shiftOnce(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ FileHMask) << 1
	case West:
		return (b &^ FileAMask) >> 1
	case Northeast:
		return (b &^ FileHMask) >> 7
	case Southeast:
		return (b &^ FileHMask) << 9
	case Southwest:
		return (b &^ FileAMask) << 7
	case Northwest:
		return (b &^ FileAMask) >> 9
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// Shift moves every bit of b n squares in direction d. Lateral
// directions are applied one square at a time: a bulk shift would clear
// only the departure file once and let bits that started one file
// short of the edge wrap after the second step.
func (b Bitboard) Shift(d Direction, n int) Bitboard {
	for i := 0; i < n; i++ {
		b = shiftOnce(b, d)
	}
	return b
}

// Lsb returns the square of the least significant set bit. Returns
// SqNone if b is empty - callers must check PopCount/b==BbZero first.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb returns the Lsb square of b and clears it. Returns SqNone if b
// is empty.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// String renders b as a 64-character bit string, msb first.
func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ascii board, rank 8 at the top.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f < FileNone; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("| X ")
			} else {
				sb.WriteString("|   ")
			}
		}
		sb.WriteString(fmt.Sprintf("| %s\n+---+---+---+---+---+---+---+---+\n", r))
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
