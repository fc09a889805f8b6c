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

// Piece couples a PieceType with the Color owning it. Unlike the
// packed single-integer encodings elsewhere in this package, Piece is
// a plain two-field struct: callers (FEN parsing, piece_on_sq, board
// printing) only ever construct and compare whole pieces, never pack
// or mask them, so there is no encoding to get wrong.
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece represents an empty square.
var NoPiece = Piece{Type: PieceTypeNone}

// MakePiece builds a Piece from a color and a type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece{Color: c, Type: pt}
}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool {
	return p.Type == PieceTypeNone
}

const pieceChars = "NBRQPK"

// String returns the FEN character for p: uppercase for White,
// lowercase for Black, "-" for NoPiece.
func (p Piece) String() string {
	if p.IsNone() {
		return "-"
	}
	c := pieceChars[p.Type]
	if p.Color == Black {
		return strings.ToLower(string(c))
	}
	return string(c)
}

// PieceFromChar returns the Piece for a single FEN character, or
// NoPiece if s is not a recognized piece letter.
func PieceFromChar(s byte) Piece {
	upper := s
	if s >= 'a' && s <= 'z' {
		upper = s - ('a' - 'A')
	}
	idx := strings.IndexByte(pieceChars, upper)
	if idx == -1 {
		return NoPiece
	}
	color := White
	if s >= 'a' && s <= 'z' {
		color = Black
	}
	return Piece{Color: color, Type: PieceType(idx)}
}
