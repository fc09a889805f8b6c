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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/bitking/internal/attacks"
	t "github.com/mkopp/bitking/internal/types"
	"github.com/mkopp/bitking/internal/zobrist"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

func TestNewBoardStartPosition(t1 *testing.T) {
	b := NewBoard()
	assert.Equal(t1, t.White, b.Stm())
	assert.Equal(t1, StartFen, b.Fen())
	assert.Equal(t1, t.SqE1, b.KingSquare(t.White))
	assert.Equal(t1, t.SqE8, b.KingSquare(t.Black))
	assert.True(t1, b.CastlingRights().Has(t.CastlingAny))
}

func TestFenRoundTrip(t1 *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/8/8/8/8/8/K6k w - - 0 1",
	}
	for _, fen := range fens {
		b, err := NewBoardFen(fen)
		assert.NoError(t1, err)
		assert.Equal(t1, fen, b.Fen())
	}
}

func TestNewBoardFenInvalid(t1 *testing.T) {
	_, err := NewBoardFen("not a fen")
	assert.Error(t1, err)
}

func TestTryPlayMoveUpdatesStmAndEpSquare(t1 *testing.T) {
	b := NewBoard()
	stack := zobrist.NewStack(b.ZobristKey())

	m := t.NewMove(t.SqE2, t.SqE4, t.DoublePush)
	ok := b.TryPlayMove(m, stack)
	assert.True(t1, ok)
	assert.Equal(t1, t.Black, b.Stm())
	// no black pawn on d4/f4 can capture en passant, so no ep square is set
	assert.Equal(t1, t.SqNone, b.EpSquare())
	assert.Equal(t1, t.MakePiece(t.White, t.Pawn), b.PieceOn(t.SqE4))
	assert.True(t1, b.PieceOn(t.SqE2).IsNone())
	assert.Equal(t1, 2, stack.Len())
}

func TestTryPlayMoveRejectsMoveIntoCheck(t1 *testing.T) {
	// the d2 pawn is pinned to the white king on e1 by the black bishop on
	// a5; pushing it opens the a5-e1 diagonal and exposes the king to check.
	b, err := NewBoardFen("4k3/8/8/b7/8/8/3P4/4K3 w - - 0 1")
	assert.NoError(t1, err)
	stack := zobrist.NewStack(b.ZobristKey())

	before := b.Fen()
	m := t.NewMove(t.SqD2, t.SqD4, t.DoublePush)
	ok := b.TryPlayMove(m, stack)
	assert.False(t1, ok)
	assert.Equal(t1, before, b.Fen())
	assert.Equal(t1, 1, stack.Len())
}

func TestTryPlayMoveSimple(t1 *testing.T) {
	b := NewBoard()
	ok := b.TryPlayMoveSimple(t.NewMove(t.SqG1, t.SqF3, t.None))
	assert.True(t1, ok)
	assert.Equal(t1, t.MakePiece(t.White, t.Knight), b.PieceOn(t.SqF3))
}

func TestCanCastleKSRequiresEmptyAndSafeSquares(t1 *testing.T) {
	b, err := NewBoardFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t1, err)
	assert.True(t1, b.CanCastleKS())
}

func TestCanCastleKSBlockedByAttackedPassThroughSquare(t1 *testing.T) {
	// black rook on f8 attacks f1, the square the white king passes through.
	b, err := NewBoardFen("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t1, err)
	assert.False(t1, b.CanCastleKS())
}

func TestHasInsufficientMaterialBareKings(t1 *testing.T) {
	b, err := NewBoardFen("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t1, err)
	assert.True(t1, b.HasInsufficientMaterial())
}

func TestHasInsufficientMaterialFalseWithQueen(t1 *testing.T) {
	b, err := NewBoardFen("8/8/8/4k3/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t1, err)
	assert.False(t1, b.HasInsufficientMaterial())
}

func TestGivesCheckDoesNotMutateBoard(t1 *testing.T) {
	b, err := NewBoardFen("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	assert.NoError(t1, err)
	before := b.Fen()
	assert.True(t1, b.GivesCheck(t.NewMove(t.SqE2, t.SqE7, t.None)))
	assert.Equal(t1, before, b.Fen())
}

func TestMoveFromUciDisambiguatesPromotion(t1 *testing.T) {
	b, err := NewBoardFen("8/P7/8/8/8/8/8/k6K w - - 0 1")
	assert.NoError(t1, err)
	candidates := []t.Move{
		t.NewMove(t.SqA7, t.SqA8, t.QueenPromo),
		t.NewMove(t.SqA7, t.SqA8, t.RookPromo),
		t.NewMove(t.SqA7, t.SqA8, t.KnightPromo),
		t.NewMove(t.SqA7, t.SqA8, t.BishopPromo),
	}
	m, ok := MoveFromUci(b, "a7a8q", candidates)
	assert.True(t1, ok)
	assert.Equal(t1, t.QueenPromo, m.MoveFlag())

	_, ok = MoveFromUci(b, "a7a8x", candidates)
	assert.False(t1, ok)
}
