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

// PieceType enumerates the six piece kinds plus PieceTypeNone.
//
// The Knight..Queen run is deliberately contiguous and placed first,
// so "pt <= Queen" tests for a non-pawn, non-king piece.
type PieceType uint8

const (
	Knight PieceType = iota
	Bishop
	Rook
	Queen
	Pawn
	King
	PieceTypeNone
	PieceTypeLength = PieceTypeNone + 1
)

// IsValid reports whether pt is one of Knight..King.
func (pt PieceType) IsValid() bool {
	return pt < PieceTypeNone
}

var pieceTypeToString = [PieceTypeLength]string{"Knight", "Bishop", "Rook", "Queen", "Pawn", "King", "None"}

// String returns the piece type's name.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = [PieceTypeLength]byte{'N', 'B', 'R', 'Q', 'P', 'K', '-'}

// Char returns the single uppercase FEN letter for pt.
func (pt PieceType) Char() byte {
	return pieceTypeToChar[pt]
}
