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

// Flag classifies a Move. The numeric ordering is load-bearing:
// IsPromo tests flag >= KnightPromo and IsCapture tests a small
// membership set built from these exact values - renumbering any of
// them requires revisiting both predicates.
type Flag uint8

const (
	None Flag = iota
	Capture
	DoublePush
	KSCastle
	QSCastle
	EP
	KnightPromo
	BishopPromo
	RookPromo
	QueenPromo
	KnightCapPromo
	BishopCapPromo
	RookCapPromo
	QueenCapPromo
)

// PromoType returns the piece type a promotion flag promotes to. Only
// meaningful when the flag IsPromo.
func (f Flag) PromoType() PieceType {
	switch f {
	case KnightPromo, KnightCapPromo:
		return Knight
	case BishopPromo, BishopCapPromo:
		return Bishop
	case RookPromo, RookCapPromo:
		return Rook
	case QueenPromo, QueenCapPromo:
		return Queen
	default:
		return PieceTypeNone
	}
}

// Move is a 16-bit packed word: bits 0-5 the origin square, bits 6-11
// the destination square, bits 12-15 the Flag.
type Move uint16

const (
	moveFromShift = 0
	moveToShift   = 6
	moveFlagShift = 12
	moveSqMask    = 0x3F
)

// NullMove is the distinguished all-zero sentinel used by null-move
// pruning in search. It is never a real move: every playable move has
// from != to.
const NullMove Move = 0

// NewMove packs a from/to/flag triple into a Move.
func NewMove(from, to Square, flag Flag) Move {
	return Move(uint16(from)<<moveFromShift | uint16(to)<<moveToShift | uint16(flag)<<moveFlagShift)
}

// NewKSCastle builds the kingside castling move for the king currently
// on kingSq.
func NewKSCastle(kingSq Square) Move {
	return NewMove(kingSq, kingSq.To(East).To(East), KSCastle)
}

// NewQSCastle builds the queenside castling move for the king
// currently on kingSq.
func NewQSCastle(kingSq Square) Move {
	return NewMove(kingSq, kingSq.To(West).To(West), QSCastle)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(m >> moveFromShift & moveSqMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square(m >> moveToShift & moveSqMask)
}

// MoveFlag returns the move's Flag.
func (m Move) MoveFlag() Flag {
	return Flag(m >> moveFlagShift)
}

// IsCapture reports whether m removes an enemy piece (ordinary
// capture, en passant, or a capturing promotion).
func (m Move) IsCapture() bool {
	f := m.MoveFlag()
	return f == Capture || f == EP || f >= KnightCapPromo
}

// IsPromo reports whether m promotes a pawn.
func (m Move) IsPromo() bool {
	return m.MoveFlag() >= KnightPromo
}

// IsNoisy reports whether m is any capture, or a (capturing-or-not)
// promotion to queen. Capturing under-promotions count as noisy here,
// although the move picker generates them in its quiet stage.
func (m Move) IsNoisy() bool {
	f := m.MoveFlag()
	return m.IsCapture() || f == QueenPromo
}

// String renders m as UCI long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a queen promotion. The null move renders as "0000".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromo() {
		s += string(promoChar[m.MoveFlag().PromoType()])
	}
	return s
}

var promoChar = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}
