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

// Package movegen generates pseudo-legal moves in stages, noisy before
// quiet, so a caller that only wants captures (quiescence search) never
// pays for quiet move generation at all.
package movegen

import (
	"github.com/mkopp/bitking/internal/attacks"
	"github.com/mkopp/bitking/internal/board"
	t "github.com/mkopp/bitking/internal/types"
)

// MoveStage tracks how far a MovePicker has advanced through its
// staged generation.
type MoveStage uint8

const (
	stageStart MoveStage = iota
	stageNoisy
	stageQuiet
	stageDone
)

// maxMoves bounds the busiest legal position known (far fewer moves
// are ever pseudo-legal in practice); a fixed array avoids a heap
// allocation per position searched.
const maxMoves = 255

// MovePicker lazily generates and hands out the moves of a position,
// noisy (captures, en passant, queen promotions) before quiet. Reuse
// one instance across sibling nodes by calling Reset instead of
// allocating a new one.
type MovePicker struct {
	moves [maxMoves]t.Move
	stage MoveStage
	idx   int
	limit int
}

// NewMovePicker creates a picker in its start stage; the board is
// passed to each Pick call.
func NewMovePicker() *MovePicker {
	return &MovePicker{stage: stageStart}
}

// Reset rewinds mp so it can be reused for another position.
func (mp *MovePicker) Reset() {
	mp.stage = stageStart
	mp.idx = 0
	mp.limit = 0
}

func (mp *MovePicker) add(m t.Move) {
	mp.moves[mp.limit] = m
	mp.limit++
}

func (mp *MovePicker) stageComplete() bool {
	return mp.idx >= mp.limit
}

// Pick returns the next pseudo-legal move for b, generating the next
// stage on demand, or false once exhausted. When includeQuiets is
// false, generation stops after the noisy stage - used by quiescence
// search to skip quiet move generation entirely, which also means the
// (rare) capturing underpromotions bucketed into the quiet stage are
// never produced in that mode.
func (mp *MovePicker) Pick(b *board.Board, includeQuiets bool) (t.Move, bool) {
	for mp.stageComplete() {
		mp.stage++
		switch mp.stage {
		case stageNoisy:
			mp.genNoisy(b)
		case stageQuiet:
			if !includeQuiets {
				return t.NullMove, false
			}
			mp.genQuiet(b)
		default:
			return t.NullMove, false
		}
	}
	m := mp.moves[mp.idx]
	mp.idx++
	return m, true
}

// All collects every move Pick would yield, convenience for callers
// (perft, tests) that want the full pseudo-legal list at once.
func All(b *board.Board, includeQuiets bool) []t.Move {
	mp := NewMovePicker()
	out := make([]t.Move, 0, 48)
	for {
		m, ok := mp.Pick(b, includeQuiets)
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}

var thirdRank = [t.ColorLength]t.Rank{t.Rank3, t.Rank6}

// promoPawnRank is the rank a pawn sits on the move before it
// promotes: White's 7th, Black's 2nd.
var promoPawnRank = [t.ColorLength]t.Rank{t.Rank7, t.Rank2}

func pawnSinglePush(pawns t.Bitboard, occ t.Bitboard, c t.Color) t.Bitboard {
	return pawns.Shift(c.PawnMoveDirection(), 1) &^ occ
}

func pawnDoublePush(singlePush t.Bitboard, occ t.Bitboard, c t.Color) t.Bitboard {
	eligible := singlePush & thirdRank[c].Bb()
	return eligible.Shift(c.PawnMoveDirection(), 1) &^ occ
}

func sliderAttacks(pt t.PieceType, sq t.Square, occ t.Bitboard) t.Bitboard {
	switch pt {
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

// genNoisy generates captures, en passant, and queen promotions
// (capturing or not). Capturing under-promotions are deliberately left
// to genQuiet - see the package doc and Pick's includeQuiets note.
func (mp *MovePicker) genNoisy(b *board.Board) {
	stm := b.Stm()
	opps := b.OccupiedBb(stm.Flip())
	occ := b.Occupied()

	for _, pt := range [4]t.PieceType{t.Knight, t.Bishop, t.Rook, t.Queen} {
		pieces := b.PiecesBb(stm, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			var att t.Bitboard
			if pt == t.Knight {
				att = attacks.Knight(from)
			} else {
				att = sliderAttacks(pt, from, occ)
			}
			targets := att & opps
			for targets != 0 {
				to := targets.PopLsb()
				mp.add(t.NewMove(from, to, t.Capture))
			}
		}
	}

	king := b.PiecesBb(stm, t.King)
	if king != 0 {
		from := king.Lsb()
		targets := attacks.King(from) & opps
		for targets != 0 {
			to := targets.PopLsb()
			mp.add(t.NewMove(from, to, t.Capture))
		}
	}

	pawns := b.PiecesBb(stm, t.Pawn)
	promoPawns := pawns & promoPawnRank[stm].Bb()
	normalPawns := pawns &^ promoPawns

	promoPawnsIter := promoPawns
	for promoPawnsIter != 0 {
		from := promoPawnsIter.PopLsb()
		targets := attacks.Pawn(stm, from) & opps
		for targets != 0 {
			to := targets.PopLsb()
			mp.add(t.NewMove(from, to, t.QueenCapPromo))
		}
	}

	promoPushes := pawnSinglePush(promoPawns, occ, stm)
	for promoPushes != 0 {
		to := promoPushes.PopLsb()
		from := to.To(stm.Flip().PawnMoveDirection())
		mp.add(t.NewMove(from, to, t.QueenPromo))
	}

	normalPawnsIter := normalPawns
	for normalPawnsIter != 0 {
		from := normalPawnsIter.PopLsb()
		targets := attacks.Pawn(stm, from) & opps
		for targets != 0 {
			to := targets.PopLsb()
			mp.add(t.NewMove(from, to, t.Capture))
		}
	}

	if ep := b.EpSquare(); ep != t.SqNone {
		attackers := attacks.Pawn(stm.Flip(), ep) & pawns
		for attackers != 0 {
			from := attackers.PopLsb()
			mp.add(t.NewMove(from, ep, t.EP))
		}
	}
}

// genQuiet generates quiet moves: non-capturing knight/bishop/rook/
// queen/king/pawn moves, pushes, castles, capturing and non-capturing
// under-promotions (knight/bishop/rook).
func (mp *MovePicker) genQuiet(b *board.Board) {
	stm := b.Stm()
	occ := b.Occupied()
	opps := b.OccupiedBb(stm.Flip())
	empty := ^occ

	for _, pt := range [4]t.PieceType{t.Knight, t.Bishop, t.Rook, t.Queen} {
		pieces := b.PiecesBb(stm, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			var att t.Bitboard
			if pt == t.Knight {
				att = attacks.Knight(from)
			} else {
				att = sliderAttacks(pt, from, occ)
			}
			targets := att & empty
			for targets != 0 {
				to := targets.PopLsb()
				mp.add(t.NewMove(from, to, t.None))
			}
		}
	}

	king := b.PiecesBb(stm, t.King)
	if king != 0 {
		from := king.Lsb()
		targets := attacks.King(from) & empty
		for targets != 0 {
			to := targets.PopLsb()
			mp.add(t.NewMove(from, to, t.None))
		}
	}

	pawns := b.PiecesBb(stm, t.Pawn)
	promoPawns := pawns & promoPawnRank[stm].Bb()
	normalPawns := pawns &^ promoPawns

	promoPawnsIter := promoPawns
	for promoPawnsIter != 0 {
		from := promoPawnsIter.PopLsb()
		targets := attacks.Pawn(stm, from) & opps
		for targets != 0 {
			to := targets.PopLsb()
			mp.add(t.NewMove(from, to, t.KnightCapPromo))
			mp.add(t.NewMove(from, to, t.BishopCapPromo))
			mp.add(t.NewMove(from, to, t.RookCapPromo))
		}
	}
	promoPushes := pawnSinglePush(promoPawns, occ, stm)
	for promoPushes != 0 {
		to := promoPushes.PopLsb()
		from := to.To(stm.Flip().PawnMoveDirection())
		mp.add(t.NewMove(from, to, t.KnightPromo))
		mp.add(t.NewMove(from, to, t.BishopPromo))
		mp.add(t.NewMove(from, to, t.RookPromo))
	}

	singlePushes := pawnSinglePush(normalPawns, occ, stm)
	doublePushes := pawnDoublePush(singlePushes, occ, stm)

	sp := singlePushes
	for sp != 0 {
		to := sp.PopLsb()
		from := to.To(stm.Flip().PawnMoveDirection())
		mp.add(t.NewMove(from, to, t.None))
	}
	dp := doublePushes
	for dp != 0 {
		to := dp.PopLsb()
		from := to.To(stm.Flip().PawnMoveDirection()).To(stm.Flip().PawnMoveDirection())
		mp.add(t.NewMove(from, to, t.DoublePush))
	}

	kingSq := b.KingSquare(stm)
	if b.CanCastleKS() {
		mp.add(t.NewKSCastle(kingSq))
	}
	if b.CanCastleQS() {
		mp.add(t.NewQSCastle(kingSq))
	}
}
