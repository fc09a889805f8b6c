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

import "strings"

// CastlingRights is a 4-bit set of which castles are still available.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack
)

// Has reports whether every bit set in rhs is also set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the bits in rhs.
func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

// Add sets the bits in rhs.
func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

// String renders cr the way it appears in a FEN castling field, e.g.
// "KQkq" or "-" if none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteByte('K')
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteByte('Q')
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteByte('k')
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// castleMask is indexed by square. A move touching (as origin or
// target) A1/H1/E1/A8/H8/E8 clears the corresponding bits from the
// board's castling rights; every other square leaves rights untouched.
var castleMask [SqLength]CastlingRights

func init() {
	for sq := SqA8; sq < SqNone; sq++ {
		castleMask[sq] = CastlingAny
	}
	castleMask[SqA1] = CastlingAny &^ CastlingWhiteOOO
	castleMask[SqH1] = CastlingAny &^ CastlingWhiteOO
	castleMask[SqE1] = CastlingAny &^ CastlingWhite
	castleMask[SqA8] = CastlingAny &^ CastlingBlackOOO
	castleMask[SqH8] = CastlingAny &^ CastlingBlackOO
	castleMask[SqE8] = CastlingAny &^ CastlingBlack
}

// UpdateCastlingRights clears whichever of cr's bits the move between
// from and to (its touched squares) revokes.
func UpdateCastlingRights(cr CastlingRights, from, to Square) CastlingRights {
	return cr & castleMask[from] & castleMask[to]
}
