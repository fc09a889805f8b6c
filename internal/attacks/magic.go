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

package attacks

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mkopp/bitking/internal/config"
	myLogging "github.com/mkopp/bitking/internal/logging"
	t "github.com/mkopp/bitking/internal/types"
)

// magic holds one square's fancy-magic hashing data: mask the relevant
// occupancy bits, magic the multiplier, shift the right-shift that
// narrows the product down to an index, attacks the resulting table
// (sized exactly to the square's subset count - not a shared flat
// array, which is what lets every square's table be built on its own
// goroutine without a shared mutable backing slice).
type magic struct {
	mask    t.Bitboard
	magicNo t.Bitboard
	shift   uint
	attacks []t.Bitboard
}

func (m *magic) index(occupied t.Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.magicNo
	return uint(occ >> m.shift)
}

var (
	rookMagics   [t.SqLength]magic
	bishopMagics [t.SqLength]magic

	rookDirs   = [4]t.Direction{t.North, t.East, t.South, t.West}
	bishopDirs = [4]t.Direction{t.Northeast, t.Southeast, t.Southwest, t.Northwest}

	initialized bool
)

// Init builds the leaper tables and both magic sliding tables. It is
// meant to run once at process startup; after it returns every table
// in this package is immutable and safe to read from any number of
// goroutines. The 128 independent per-square magic searches (64 rook +
// 64 bishop) run concurrently via errgroup - each writes only to its
// own magic entry and its own attacks slice, so there is no shared
// mutable state across goroutines and nothing to guard with a mutex.
func Init() {
	if initialized {
		return
	}
	start := time.Now()
	initLeapers()

	var g errgroup.Group
	for sq := t.SqA8; sq < t.SqNone; sq++ {
		sq := sq
		g.Go(func() error {
			buildMagic(&rookMagics[sq], sq, &rookDirs)
			return nil
		})
		g.Go(func() error {
			buildMagic(&bishopMagics[sq], sq, &bishopDirs)
			return nil
		})
	}
	_ = g.Wait()
	initialized = true

	if config.Settings.Magic.LogTiming {
		myLogging.GetLog().Infof("magic table construction took %s", time.Since(start))
	}
}

// edgeMaskFor returns the board-edge squares that never belong to a
// relevant occupancy mask: sliding pieces always reach the edge
// itself, so blockers beyond it can never matter except on the ray's
// own file/rank, where the edge square IS the last relevant blocker
// position and is kept.
func edgeMaskFor(sq t.Square) t.Bitboard {
	notFile := (t.FileAMask | t.FileHMask) &^ sq.FileOf().Bb()
	notRank := (t.Rank1Mask | t.Rank8Mask) &^ sq.RankOf().Bb()
	return notFile | notRank
}

func buildMagic(m *magic, sq t.Square, dirs *[4]t.Direction) {
	edges := edgeMaskFor(sq)
	m.mask = slidingAttack(dirs, sq, t.BbZero) &^ edges
	m.shift = uint(64 - m.mask.PopCount())

	var occupancy, reference [4096]t.Bitboard
	var epoch [4096]int
	size := 0
	b := t.BbZero
	for {
		occupancy[size] = b
		reference[size] = slidingAttack(dirs, sq, b)
		size++
		b = (b - m.mask) & m.mask
		if b == t.BbZero {
			break
		}
	}
	m.attacks = make([]t.Bitboard, size)

	rng := newPrng(magicSeeds[sq.RankOf()])
	cnt := 0
	const maxAttempts = 10_000_000
	for attempt := 0; ; attempt++ {
		if attempt > maxAttempts {
			panic(fmt.Sprintf("magic construction failed to converge for square %s", sq))
		}
		for {
			m.magicNo = t.Bitboard(rng.sparseRand())
			if ((m.magicNo * m.mask) >> 56).PopCount() >= 6 {
				continue
			}
			break
		}

		cnt++
		ok := true
		for i := 0; i < size; i++ {
			idx := m.index(occupancy[i])
			if epoch[idx] < cnt {
				epoch[idx] = cnt
				m.attacks[idx] = reference[i]
			} else if m.attacks[idx] != reference[i] {
				ok = false
				break
			}
		}
		if ok {
			return
		}
	}
}

// slidingAttack walks outward from sq along each of dirs until it
// leaves the board or hits an occupied square (blocker included). Only
// used at table-build time; the O(1) Rook/Bishop/Queen lookups below
// never call it.
func slidingAttack(dirs *[4]t.Direction, sq t.Square, occupied t.Bitboard) t.Bitboard {
	var attack t.Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() {
				break
			}
			s = next
			attack |= s.Bb()
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// magicSeeds are per-rank PRNG seeds known to find a valid magic
// quickly; taken from Stockfish's public-domain magic initialization.
var magicSeeds = [t.RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// Rook returns the squares a rook on sq attacks given occupied.
func Rook(sq t.Square, occupied t.Bitboard) t.Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// Bishop returns the squares a bishop on sq attacks given occupied.
func Bishop(sq t.Square, occupied t.Bitboard) t.Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// Queen returns the squares a queen on sq attacks given occupied: the
// union of its rook and bishop rays.
func Queen(sq t.Square, occupied t.Bitboard) t.Bitboard {
	return Rook(sq, occupied) | Bishop(sq, occupied)
}

// prng is the xorshift64star pseudo-random generator used to search
// for magic multipliers, ported from Stockfish's implementation
// (public domain, S. Vigna 2014).
type prng struct{ s uint64 }

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand biases towards low-popcount candidates, which converge to
// a valid magic far faster than uniform random 64-bit values.
func (r *prng) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
