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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/bitking/internal/attacks"
	"github.com/mkopp/bitking/internal/board"
	t "github.com/mkopp/bitking/internal/types"
)

func TestMain(m *testing.M) {
	attacks.Init()
	m.Run()
}

// TestCorrectMoveCountKiwipete cross-checks All() against the Kiwipete
// perft(1) node count of 48 - a widely verified fixture - and confirms
// the picker never yields the same move twice.
func TestCorrectMoveCountKiwipete(t1 *testing.T) {
	b, err := board.NewBoardFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t1, err)

	moves := All(b, true)
	assert.Len(t1, moves, 48)

	seen := make(map[t.Move]bool, len(moves))
	for _, m := range moves {
		assert.False(t1, seen[m], "duplicate move %s", m)
		seen[m] = true
	}
}

// TestNoisyStageIsQueenPromoOnly exercises the promotion split: a pawn
// one step from promoting, capturing either of two enemy knights or
// pushing straight ahead, should surface only as a queen promotion (or
// capturing queen promotion) in the noisy stage; the three
// underpromotions belong to the quiet stage alongside the king's quiet
// shuffle moves.
func TestNoisyStageIsQueenPromoOnly(t1 *testing.T) {
	b, err := board.NewBoardFen("n1n5/1P6/8/8/8/8/8/K6k w - - 0 1")
	assert.NoError(t1, err)

	mp := NewMovePicker()
	var noisy []t.Move
	for {
		m, ok := mp.Pick(b, false)
		if !ok {
			break
		}
		noisy = append(noisy, m)
	}
	assert.Len(t1, noisy, 3)
	for _, m := range noisy {
		assert.True(t1, m.MoveFlag() == t.QueenPromo || m.MoveFlag() == t.QueenCapPromo)
	}

	all := All(b, true)
	assert.Len(t1, all, 15) // 3 noisy + 9 underpromotions + 3 king moves

	var underPromos, kingMoves int
	for _, m := range all {
		switch m.MoveFlag() {
		case t.KnightPromo, t.BishopPromo, t.RookPromo, t.KnightCapPromo, t.BishopCapPromo, t.RookCapPromo:
			underPromos++
		case t.None:
			if m.From() == t.SqA1 {
				kingMoves++
			}
		}
	}
	assert.Equal(t1, 9, underPromos)
	assert.Equal(t1, 3, kingMoves)
}

// TestEnPassantSurfacesInNoisyStage checks that an available en passant
// capture is generated with the EP flag during the noisy stage, not
// quiet.
func TestEnPassantSurfacesInNoisyStage(t1 *testing.T) {
	b, err := board.NewBoardFen("4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 2")
	assert.NoError(t1, err)

	mp := NewMovePicker()
	found := false
	for {
		m, ok := mp.Pick(b, false)
		if !ok {
			break
		}
		if m.MoveFlag() == t.EP {
			assert.Equal(t1, t.SqD5, m.From())
			assert.Equal(t1, t.SqE6, m.To())
			found = true
		}
	}
	assert.True(t1, found, "expected an en passant capture in the noisy stage")
}

func TestResetAllowsReuse(t1 *testing.T) {
	b, err := board.NewBoardFen(board.StartFen)
	assert.NoError(t1, err)

	mp := NewMovePicker()
	first := 0
	for {
		_, ok := mp.Pick(b, true)
		if !ok {
			break
		}
		first++
	}
	mp.Reset()
	second := 0
	for {
		_, ok := mp.Pick(b, true)
		if !ok {
			break
		}
		second++
	}
	assert.Equal(t1, first, second)
	assert.Equal(t1, 20, first)
}
