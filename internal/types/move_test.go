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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoveRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, DoublePush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, DoublePush, m.MoveFlag())
}

func TestNewKSCastleAndQSCastle(t *testing.T) {
	ks := NewKSCastle(SqE1)
	assert.Equal(t, SqE1, ks.From())
	assert.Equal(t, SqG1, ks.To())
	assert.Equal(t, KSCastle, ks.MoveFlag())

	qs := NewQSCastle(SqE8)
	assert.Equal(t, SqE8, qs.From())
	assert.Equal(t, SqC8, qs.To())
	assert.Equal(t, QSCastle, qs.MoveFlag())
}

func TestIsCapture(t *testing.T) {
	assert.True(t, NewMove(SqE4, SqD5, Capture).IsCapture())
	assert.True(t, NewMove(SqE5, SqD6, EP).IsCapture())
	assert.True(t, NewMove(SqB7, SqA8, QueenCapPromo).IsCapture())
	assert.False(t, NewMove(SqE2, SqE4, DoublePush).IsCapture())
	assert.False(t, NewMove(SqB7, SqB8, QueenPromo).IsCapture())
}

func TestIsPromo(t *testing.T) {
	assert.True(t, NewMove(SqB7, SqB8, QueenPromo).IsPromo())
	assert.True(t, NewMove(SqB7, SqA8, KnightCapPromo).IsPromo())
	assert.False(t, NewMove(SqE2, SqE4, None).IsPromo())
}

func TestIsNoisy(t *testing.T) {
	assert.True(t, NewMove(SqE4, SqD5, Capture).IsNoisy())
	assert.True(t, NewMove(SqB7, SqB8, QueenPromo).IsNoisy())
	assert.False(t, NewMove(SqB7, SqB8, KnightPromo).IsNoisy())
	assert.False(t, NewMove(SqE2, SqE3, None).IsNoisy())
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "e2e4", NewMove(SqE2, SqE4, DoublePush).String())
	assert.Equal(t, "b7b8q", NewMove(SqB7, SqB8, QueenPromo).String())
	assert.Equal(t, "0000", NullMove.String())
}

func TestPromoType(t *testing.T) {
	assert.Equal(t, Knight, KnightPromo.PromoType())
	assert.Equal(t, Queen, QueenCapPromo.PromoType())
	assert.Equal(t, PieceTypeNone, Capture.PromoType())
}
