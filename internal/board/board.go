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

// Package board represents the chess board and its position: an 8x8
// mailbox plus per-color-per-piece bitboards, and the FEN
// import/export that makes a Board instance. A Board keeps no undo
// stack; callers restore an earlier position from a value copy.
//
// Create an instance with NewBoard() for the start position, or
// NewBoardFen(fen) for an arbitrary one.
package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/mkopp/bitking/internal/assert"
	"github.com/mkopp/bitking/internal/attacks"
	myLogging "github.com/mkopp/bitking/internal/logging"
	t "github.com/mkopp/bitking/internal/types"
	"github.com/mkopp/bitking/internal/zobrist"
)

var log *logging.Logger

// StartFen is the FEN of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board represents a unique chess position (the one exception being
// threefold repetition, which - like a FEN string - this struct does
// not itself encode; callers track that with a zobrist.Stack).
type Board struct {
	mailbox    [t.SqLength]t.Piece
	piecesBb   [t.ColorLength][t.PieceTypeLength]t.Bitboard
	occupiedBb [t.ColorLength]t.Bitboard
	kingSquare [t.ColorLength]t.Square

	stm            t.Color
	castlingRights t.CastlingRights
	epSquare       t.Square
	halfMoveClock  int
	halfMoveNumber int // ply count, used only to derive the FEN fullmove field
}

// NewBoard creates a Board in the standard starting position.
func NewBoard() *Board {
	b, _ := NewBoardFen(StartFen)
	return b
}

// NewBoardFen creates a Board from a FEN string. Returns an error if
// the FEN is malformed.
func NewBoardFen(fen string) (*Board, error) {
	if log == nil {
		log = myLogging.GetLog()
	}
	b := &Board{epSquare: t.SqNone}
	for sq := t.SqA8; sq < t.SqNone; sq++ {
		b.mailbox[sq] = t.NoPiece
	}
	if err := b.setupFromFen(fen); err != nil {
		log.Errorf("fen invalid, board not created: %s", err)
		return nil, err
	}
	return b, nil
}

// Stm returns the color to move.
func (b *Board) Stm() t.Color { return b.stm }

// PieceOn returns the piece on sq, or NoPiece.
func (b *Board) PieceOn(sq t.Square) t.Piece { return b.mailbox[sq] }

// PiecesBb returns the bitboard of piece type pt owned by c.
func (b *Board) PiecesBb(c t.Color, pt t.PieceType) t.Bitboard { return b.piecesBb[c][pt] }

// OccupiedBb returns all squares occupied by c's pieces.
func (b *Board) OccupiedBb(c t.Color) t.Bitboard { return b.occupiedBb[c] }

// Occupied returns all occupied squares, either color.
func (b *Board) Occupied() t.Bitboard { return b.occupiedBb[t.White] | b.occupiedBb[t.Black] }

// KingSquare returns c's king's square.
func (b *Board) KingSquare(c t.Color) t.Square { return b.kingSquare[c] }

// CastlingRights returns the board's current castling rights.
func (b *Board) CastlingRights() t.CastlingRights { return b.castlingRights }

// EpSquare returns the current en passant target square, or SqNone.
func (b *Board) EpSquare() t.Square { return b.epSquare }

// HalfMoveClock returns the fifty-move-rule ply counter.
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// ZobristKey hashes the current position from scratch.
func (b *Board) ZobristKey() zobrist.Key {
	return zobrist.Compute(&b.mailbox, b.stm, b.castlingRights, b.epSquare)
}

// FiftyMoveDraw reports whether the fifty-move rule allows a draw
// claim. Matches the authoritative halfmoves > 100 boundary rather
// than >= 100 - see DESIGN.md's Open Question note.
func (b *Board) FiftyMoveDraw() bool {
	return b.halfMoveClock > 100
}

// IsAttacked reports whether sq is attacked by a piece of color by.
func (b *Board) IsAttacked(sq t.Square, by t.Color) bool {
	occ := b.Occupied()

	if attacks.Pawn(by.Flip(), sq)&b.piecesBb[by][t.Pawn] != 0 {
		return true
	}
	if attacks.Knight(sq)&b.piecesBb[by][t.Knight] != 0 {
		return true
	}
	if attacks.King(sq)&b.piecesBb[by][t.King] != 0 {
		return true
	}

	hvSliders := b.piecesBb[by][t.Rook] | b.piecesBb[by][t.Queen]
	if attacks.Rook(sq, occ)&hvSliders != 0 {
		return true
	}
	dSliders := b.piecesBb[by][t.Bishop] | b.piecesBb[by][t.Queen]
	if attacks.Bishop(sq, occ)&dSliders != 0 {
		return true
	}

	return false
}

// InCheck reports whether the side to move's king is currently
// attacked.
func (b *Board) InCheck() bool {
	return b.IsAttacked(b.kingSquare[b.stm], b.stm.Flip())
}

var (
	castleKsSafe = [t.ColorLength]t.Bitboard{
		t.SqE1.Bb() | t.SqF1.Bb(),
		t.SqE8.Bb() | t.SqF8.Bb(),
	}
	castleQsSafe = [t.ColorLength]t.Bitboard{
		t.SqC1.Bb() | t.SqD1.Bb() | t.SqE1.Bb(),
		t.SqC8.Bb() | t.SqD8.Bb() | t.SqE8.Bb(),
	}
	castleKsOcc = [t.ColorLength]t.Bitboard{
		t.SqF1.Bb() | t.SqG1.Bb(),
		t.SqF8.Bb() | t.SqG8.Bb(),
	}
	castleQsOcc = [t.ColorLength]t.Bitboard{
		t.SqB1.Bb() | t.SqC1.Bb() | t.SqD1.Bb(),
		t.SqB8.Bb() | t.SqC8.Bb() | t.SqD8.Bb(),
	}
	castleRightsOO  = [t.ColorLength]t.CastlingRights{t.CastlingWhiteOO, t.CastlingBlackOO}
	castleRightsOOO = [t.ColorLength]t.CastlingRights{t.CastlingWhiteOOO, t.CastlingBlackOOO}
)

// CanCastleKS reports whether the side to move may pseudo-legally
// castle kingside: the right has not been lost, the squares between
// king and rook are empty, and the squares the king starts on and
// passes through are not attacked. The landing square's safety is
// verified later by TryPlayMove's generate-then-verify check.
func (b *Board) CanCastleKS() bool {
	c := b.stm
	if !b.castlingRights.Has(castleRightsOO[c]) {
		return false
	}
	if b.Occupied()&castleKsOcc[c] != 0 {
		return false
	}
	them := c.Flip()
	bb := castleKsSafe[c]
	for bb != 0 {
		sq := bb.PopLsb()
		if b.IsAttacked(sq, them) {
			return false
		}
	}
	return true
}

// CanCastleQS is CanCastleKS's queenside counterpart.
func (b *Board) CanCastleQS() bool {
	c := b.stm
	if !b.castlingRights.Has(castleRightsOOO[c]) {
		return false
	}
	if b.Occupied()&castleQsOcc[c] != 0 {
		return false
	}
	them := c.Flip()
	bb := castleQsSafe[c]
	for bb != 0 {
		sq := bb.PopLsb()
		if b.IsAttacked(sq, them) {
			return false
		}
	}
	return true
}

// TryPlayMove applies m to the board and pushes its resulting key onto
// stack. It returns false - and leaves the board and stack unchanged -
// if m would leave the mover's own king in check; the caller must
// treat that as "illegal, do not count this move". This generate-
// then-verify design (make the move, check, undo on failure) trades a
// small amount of wasted work on illegal pseudo-legal moves for a much
// simpler legality test than computing pins and checks up front.
func (b *Board) TryPlayMove(m t.Move, stack *zobrist.Stack) bool {
	undo := *b
	stm := b.stm

	fromSq, toSq := m.From(), m.To()
	piece := b.mailbox[fromSq]

	if assert.DEBUG {
		assert.Assert(!piece.IsNone(), "TryPlayMove: no piece on from square %s", fromSq)
		assert.Assert(piece.Color == stm, "TryPlayMove: from piece does not belong to side to move")
	}

	if m.IsCapture() && m.MoveFlag() != t.EP {
		b.removePiece(toSq)
	}
	b.movePiece(fromSq, toSq)
	b.epSquare = t.SqNone

	switch m.MoveFlag() {
	case t.None, t.Capture:
		// nothing further to do
	case t.DoublePush:
		epSq := toSq.To(stm.Flip().PawnMoveDirection())
		if attacks.Pawn(stm, epSq)&b.piecesBb[stm.Flip()][t.Pawn] != 0 {
			b.epSquare = epSq // only set when pseudo-legally capturable
		}
	case t.KSCastle:
		switch fromSq {
		case t.SqE1:
			b.movePiece(t.SqH1, t.SqF1)
		case t.SqE8:
			b.movePiece(t.SqH8, t.SqF8)
		}
	case t.QSCastle:
		switch fromSq {
		case t.SqE1:
			b.movePiece(t.SqA1, t.SqD1)
		case t.SqE8:
			b.movePiece(t.SqA8, t.SqD8)
		}
	case t.EP:
		capSq := toSq.To(stm.Flip().PawnMoveDirection())
		b.removePiece(capSq)
	default:
		// promotion, capturing or not: the pawn already landed on toSq
		// above and is now replaced by the promoted piece.
		b.removePiece(toSq)
		b.putPiece(t.MakePiece(stm, m.MoveFlag().PromoType()), toSq)
	}

	if b.InCheck() {
		*b = undo
		return false
	}

	b.stm = stm.Flip()
	b.halfMoveNumber++
	b.castlingRights = t.UpdateCastlingRights(b.castlingRights, fromSq, toSq)
	if piece.Type == t.Pawn || m.IsCapture() {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	stack.Push(b.ZobristKey())
	return true
}

// TryPlayMoveSimple is TryPlayMove for a caller that has no zobrist
// stack of its own - tests and one-off perft callers, mostly. It
// builds a throwaway single-entry stack and discards it.
func (b *Board) TryPlayMoveSimple(m t.Move) bool {
	return b.TryPlayMove(m, zobrist.NewStack(b.ZobristKey()))
}

// DoNullMove passes the turn without moving a piece, used by search's
// null-move pruning. The en passant square is cleared since no pawn
// capture can still be pending once a full move has passed.
func (b *Board) DoNullMove(stack *zobrist.Stack) {
	b.stm = b.stm.Flip()
	b.epSquare = t.SqNone
	stack.Push(b.ZobristKey())
}

// GivesCheck reports whether playing m on the current position would
// check the opponent. Unlike TryPlayMove this never mutates the
// board: it derives the post-move occupancy and tests direct and
// discovered checks algebraically.
func (b *Board) GivesCheck(m t.Move) bool {
	us := b.stm
	them := us.Flip()
	kingSq := b.kingSquare[them]

	fromSq, toSq := m.From(), m.To()
	fromPt := b.mailbox[fromSq].Type
	epCapSq := t.SqNone

	switch m.MoveFlag() {
	case t.KSCastle, t.QSCastle:
		fromPt = t.Rook
		switch toSq {
		case t.SqG1:
			toSq = t.SqF1
		case t.SqC1:
			toSq = t.SqD1
		case t.SqG8:
			toSq = t.SqF8
		case t.SqC8:
			toSq = t.SqD8
		}
	case t.EP:
		epCapSq = toSq.To(them.PawnMoveDirection())
	default:
		if m.IsPromo() {
			fromPt = m.MoveFlag().PromoType()
		}
	}

	after := b.Occupied()
	after = t.PopSquare(after, fromSq)
	after = t.PushSquare(after, toSq)
	if epCapSq != t.SqNone {
		after = t.PopSquare(after, epCapSq)
	}

	switch fromPt {
	case t.Pawn:
		if attacks.Pawn(us, toSq).Has(kingSq) {
			return true
		}
	case t.King:
		// a king can never give direct check
	default:
		if pieceAttacks(fromPt, toSq, after).Has(kingSq) {
			return true
		}
	}

	if attacks.Bishop(kingSq, after)&b.piecesBb[us][t.Bishop] != 0 {
		return true
	}
	if attacks.Rook(kingSq, after)&b.piecesBb[us][t.Rook] != 0 {
		return true
	}
	if attacks.Queen(kingSq, after)&b.piecesBb[us][t.Queen] != 0 {
		return true
	}
	return false
}

func pieceAttacks(pt t.PieceType, sq t.Square, occ t.Bitboard) t.Bitboard {
	switch pt {
	case t.Knight:
		return attacks.Knight(sq)
	case t.Bishop:
		return attacks.Bishop(sq, occ)
	case t.Rook:
		return attacks.Rook(sq, occ)
	case t.Queen:
		return attacks.Queen(sq, occ)
	default:
		return t.BbZero
	}
}

// HasInsufficientMaterial reports whether neither side has enough
// material left to deliver mate, a simplified check covering the
// common forced-draw endings: bare kings, king+minor vs bare king,
// and king+minor vs king+minor.
func (b *Board) HasInsufficientMaterial() bool {
	for _, c := range [2]t.Color{t.White, t.Black} {
		if b.piecesBb[c][t.Pawn]|b.piecesBb[c][t.Rook]|b.piecesBb[c][t.Queen] != 0 {
			return false
		}
	}
	minors := func(c t.Color) int {
		return (b.piecesBb[c][t.Knight] | b.piecesBb[c][t.Bishop]).PopCount()
	}
	wMinors, bMinors := minors(t.White), minors(t.Black)
	if wMinors <= 1 && bMinors <= 1 {
		return true
	}
	return false
}

func (b *Board) movePiece(from, to t.Square) {
	b.putPiece(b.removePiece(from), to)
}

func (b *Board) putPiece(piece t.Piece, sq t.Square) {
	if assert.DEBUG {
		assert.Assert(b.mailbox[sq].IsNone(), "putPiece: square %s already occupied", sq)
	}
	b.mailbox[sq] = piece
	if piece.Type == t.King {
		b.kingSquare[piece.Color] = sq
	}
	b.piecesBb[piece.Color][piece.Type] = t.PushSquare(b.piecesBb[piece.Color][piece.Type], sq)
	b.occupiedBb[piece.Color] = t.PushSquare(b.occupiedBb[piece.Color], sq)
}

func (b *Board) removePiece(sq t.Square) t.Piece {
	piece := b.mailbox[sq]
	if assert.DEBUG {
		assert.Assert(!piece.IsNone(), "removePiece: square %s already empty", sq)
	}
	b.mailbox[sq] = t.NoPiece
	b.piecesBb[piece.Color][piece.Type] = t.PopSquare(b.piecesBb[piece.Color][piece.Type], sq)
	b.occupiedBb[piece.Color] = t.PopSquare(b.occupiedBb[piece.Color], sq)
	return piece
}

// String renders the FEN followed by an ascii board diagram.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(b.Fen())
	sb.WriteString("\n")
	for r := t.Rank8; ; r-- {
		for f := t.FileA; f < t.FileNone; f++ {
			sb.WriteString(b.mailbox[t.SquareOf(f, r)].String())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		if r == t.Rank1 {
			break
		}
	}
	return sb.String()
}

// Fen renders the board's current FEN string.
func (b *Board) Fen() string {
	var sb strings.Builder
	for r := t.Rank8; ; r-- {
		empty := 0
		for f := t.FileA; f < t.FileNone; f++ {
			pc := b.mailbox[t.SquareOf(f, r)]
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != t.Rank1 {
			sb.WriteString("/")
		}
		if r == t.Rank1 {
			break
		}
	}
	sb.WriteString(" ")
	sb.WriteString(b.stm.String())
	sb.WriteString(" ")
	sb.WriteString(b.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(b.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(b.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa((b.halfMoveNumber + 2) / 2))
	return sb.String()
}

var (
	regexFenPos            = regexp.MustCompile(`^[0-8pPnNbBrRqQkK/]+$`)
	regexStm               = regexp.MustCompile(`^[wb]$`)
	regexCastlingRightsStr = regexp.MustCompile(`^(K?Q?k?q?|-)$`)
	regexEpSquare          = regexp.MustCompile(`^([a-h][1-8]|-)$`)
)

// setupFromFen parses fen and fills in the board. Only the piece
// placement field is mandatory; every later field falls back to its
// standard-chess default.
func (b *Board) setupFromFen(fen string) error {
	fen = strings.TrimSpace(fen)
	parts := strings.Split(fen, " ")
	if len(parts) == 0 || parts[0] == "" {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(parts[0]) {
		return errors.New("fen piece placement contains invalid characters")
	}

	sq := t.SqA8
	for _, c := range parts[0] {
		switch {
		case c == '/':
			// no-op: rank boundaries fall out of the square count below
		case c >= '1' && c <= '8':
			sq = t.Square(int(sq) + int(c-'0'))
		default:
			piece := t.PieceFromChar(byte(c))
			if piece.IsNone() {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			b.putPiece(piece, sq)
			sq++
		}
	}
	if sq != t.SqNone {
		return errors.New("fen piece placement did not cover all 64 squares")
	}

	b.stm = t.White
	b.halfMoveNumber = 0
	b.epSquare = t.SqNone

	if len(parts) >= 2 {
		if !regexStm.MatchString(parts[1]) {
			return errors.New("fen side to move contains invalid characters")
		}
		if parts[1] == "b" {
			b.stm = t.Black
			b.halfMoveNumber = 1
		}
	}

	if len(parts) >= 3 {
		if !regexCastlingRightsStr.MatchString(parts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if parts[2] != "-" {
			for _, c := range parts[2] {
				switch c {
				case 'K':
					b.castlingRights.Add(t.CastlingWhiteOO)
				case 'Q':
					b.castlingRights.Add(t.CastlingWhiteOOO)
				case 'k':
					b.castlingRights.Add(t.CastlingBlackOO)
				case 'q':
					b.castlingRights.Add(t.CastlingBlackOOO)
				}
			}
		}
	}

	if len(parts) >= 4 {
		if !regexEpSquare.MatchString(parts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if parts[3] != "-" {
			b.epSquare = t.MakeSquare(parts[3])
		}
	}

	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil {
			return fmt.Errorf("fen halfmove clock invalid: %w", err)
		}
		b.halfMoveClock = n
	}

	if len(parts) >= 6 {
		moveNumber, err := strconv.Atoi(parts[5])
		if err != nil {
			return fmt.Errorf("fen fullmove number invalid: %w", err)
		}
		if moveNumber == 0 {
			moveNumber = 1
		}
		b.halfMoveNumber = 2*moveNumber - 2 + int(b.stm)
	}

	return nil
}

// MoveFromUci resolves a bare UCI move string (e.g. "e2e4", "e7e8q")
// against candidates, the moves the caller generated for b. Returns
// false if s does not name one of them. The flag (quiet, capture, en
// passant, castle, promotion) that a from/to/promo-letter triple
// implies depends on what is on the board, so it is taken from the
// matching candidate; b itself is not inspected.
func MoveFromUci(b *Board, s string, candidates []t.Move) (t.Move, bool) {
	if len(s) < 4 || len(s) > 5 {
		return t.NullMove, false
	}
	from := t.MakeSquare(s[0:2])
	to := t.MakeSquare(s[2:4])
	if !from.IsValid() || !to.IsValid() {
		return t.NullMove, false
	}
	var promo byte
	if len(s) == 5 {
		promo = s[4]
	}
	for _, m := range candidates {
		if m.From() != from || m.To() != to {
			continue
		}
		if !m.IsPromo() {
			if promo == 0 {
				return m, true
			}
			continue
		}
		if promoChar(m.MoveFlag().PromoType()) == promo {
			return m, true
		}
	}
	return t.NullMove, false
}

func promoChar(pt t.PieceType) byte {
	switch pt {
	case t.Knight:
		return 'n'
	case t.Bishop:
		return 'b'
	case t.Rook:
		return 'r'
	case t.Queen:
		return 'q'
	default:
		return 0
	}
}
