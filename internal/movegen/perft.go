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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopp/bitking/internal/board"
	t "github.com/mkopp/bitking/internal/types"
	"github.com/mkopp/bitking/internal/zobrist"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes reachable from a position to a fixed
// depth, plus a few move-type tallies, the standard way to validate a
// move generator against known-correct counts.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
}

// NewPerft creates an empty counter set.
func NewPerft() *Perft {
	return &Perft{}
}

// StartPerft runs perft on fen to depth and prints a report of the
// result, node count and timing included.
func (p *Perft) StartPerft(fen string, depth int) {
	if depth <= 0 {
		depth = 1
	}
	*p = Perft{}

	b, err := board.NewBoardFen(fen)
	if err != nil {
		out.Printf("invalid fen: %s\n", err)
		return
	}
	stack := zobrist.NewStack(b.ZobristKey())

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	p.Nodes = p.miniMax(depth, b, stack)
	elapsed := time.Since(start)

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (p.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", p.Nodes)
	out.Printf("   Captures  : %d\n", p.CaptureCounter)
	out.Printf("   EnPassant : %d\n", p.EnpassantCounter)
	out.Printf("   Castles   : %d\n", p.CastleCounter)
	out.Printf("   Promotions: %d\n", p.PromotionCounter)
	out.Printf("   Checks    : %d\n", p.CheckCounter)
	out.Printf("   CheckMates: %d\n", p.CheckMateCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

// miniMax walks the pseudo-legal move list at each ply, relying on
// TryPlayMove to reject moves that leave the mover's own king in
// check. Board has no undo stack of its own - a cheap value snapshot
// taken before the move and restored after the recursive call serves
// that purpose here, mirroring Stack.Push/Pop for the zobrist side.
func (p *Perft) miniMax(depth int, b *board.Board, stack *zobrist.Stack) uint64 {
	var nodes uint64

	for _, m := range All(b, true) {
		var givesCheck bool
		if depth == 1 {
			givesCheck = b.GivesCheck(m)
		}

		saved := *b
		if !b.TryPlayMove(m, stack) {
			continue
		}

		if depth > 1 {
			nodes += p.miniMax(depth-1, b, stack)
		} else {
			nodes++
			p.tally(m, givesCheck, b, stack)
		}

		stack.Pop()
		*b = saved
	}

	return nodes
}

func (p *Perft) tally(m t.Move, givesCheck bool, b *board.Board, stack *zobrist.Stack) {
	switch {
	case m.MoveFlag() == t.EP:
		p.EnpassantCounter++
		p.CaptureCounter++
	case m.IsCapture():
		p.CaptureCounter++
	}
	if m.MoveFlag() == t.KSCastle || m.MoveFlag() == t.QSCastle {
		p.CastleCounter++
	}
	if m.IsPromo() {
		p.PromotionCounter++
	}
	if givesCheck {
		p.CheckCounter++
		if !hasLegalMove(b, stack) {
			p.CheckMateCounter++
		}
	}
}

// hasLegalMove reports whether the side to move in b has at least one
// legal reply, used only to tally checkmates at perft's leaf depth.
func hasLegalMove(b *board.Board, stack *zobrist.Stack) bool {
	for _, m := range All(b, true) {
		saved := *b
		if b.TryPlayMove(m, stack) {
			stack.Pop()
			*b = saved
			return true
		}
	}
	return false
}
