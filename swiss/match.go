/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"math/rand/v2"
)

// Outcome is the kind of result a board produced.
type Outcome int

const (
	OutcomeDecisive Outcome = iota
	OutcomeDraw
	OutcomeBye
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDecisive:
		return "decisive"
	case OutcomeDraw:
		return "draw"
	case OutcomeBye:
		return "bye"
	default:
		return "?"
	}
}

// MatchResult is the resolved outcome of one pairing. Winner and Loser are
// only set for decisive results; a bye sets Winner to P1.
type MatchResult struct {
	Outcome     Outcome
	P1          *Player
	P2          *Player
	Winner      *Player
	Loser       *Player
	Intentional bool
}

func (r MatchResult) String() string {
	switch r.Outcome {
	case OutcomeBye:
		return fmt.Sprintf("BYE: %v", r.P1)
	case OutcomeDraw:
		kind := "DRAW"
		if r.Intentional {
			kind = "ID"
		}
		return fmt.Sprintf("%v: %v vs %v", kind, r.P1, r.P2)
	default:
		return fmt.Sprintf("WIN: %v def. %v", r.Winner, r.Loser)
	}
}

// Resolve turns a pairing and a roll in [0,100) into a result. When idc is
// non-nil and at most two rounds remain, the pair draws intentionally if both
// sides are safe for idc.CutSize; the roll is then ignored. Otherwise the
// roll is split into a draw band of width drawPercent and two equal halves
// for P1 and P2.
func Resolve(p Pairing, drawPercent float64, idc *DrawContext,
	roll float64) MatchResult {

	if p.IsBye() {
		return MatchResult{Outcome: OutcomeBye, P1: p.P1, Winner: p.P1}
	}

	ret := MatchResult{P1: p.P1, P2: p.P2}

	if idc != nil && idc.TotalRounds > 0 && idc.RoundsRemaining() <= 2 {
		if IsSafeForCut(p.P1, p.P2, idc.Players, idc.CutSize,
			idc.CurrentRound, idc.TotalRounds) &&
			IsSafeForCut(p.P2, p.P1, idc.Players, idc.CutSize,
				idc.CurrentRound, idc.TotalRounds) {

			ret.Outcome = OutcomeDraw
			ret.Intentional = true
			return ret
		}
	}

	switch {
	case roll < drawPercent:
		ret.Outcome = OutcomeDraw
	case roll < 50+drawPercent/2:
		ret.Outcome = OutcomeDecisive
		ret.Winner, ret.Loser = p.P1, p.P2
	default:
		ret.Outcome = OutcomeDecisive
		ret.Winner, ret.Loser = p.P2, p.P1
	}

	return ret
}

// Apply records r on the players it references.
func Apply(r MatchResult) {
	switch r.Outcome {
	case OutcomeBye:
		r.P1.AddBye()
	case OutcomeDraw:
		r.P1.AddDraw(r.P2.ID)
		r.P2.AddDraw(r.P1.ID)
	case OutcomeDecisive:
		r.Winner.AddWin(r.Loser.ID)
		r.Loser.AddLoss(r.Winner.ID)
	default:
		panic(fmt.Sprintf("BUG: unknown outcome %v", r.Outcome))
	}
}

// RollCache hands out one roll per unordered pairing per round. Every
// universe of a trial reads from the same cache, so the first universe to
// ask for a pairing generates its roll and later universes reuse it.
type RollCache struct {
	rng   *rand.Rand
	rolls map[[2]int]float64
}

func NewRollCache(rng *rand.Rand) *RollCache {
	return &RollCache{
		rng:   rng,
		rolls: make(map[[2]int]float64),
	}
}

// Roll returns the roll in [0,100) for p. Byes get 0 and consume nothing.
func (c *RollCache) Roll(p Pairing) float64 {
	if p.IsBye() {
		return 0
	}
	key := p.Key()
	if roll, ok := c.rolls[key]; ok {
		return roll
	}
	roll := c.rng.Float64() * 100
	c.rolls[key] = roll

	return roll
}

// Len returns the number of distinct pairings rolled so far.
func (c *RollCache) Len() int {
	return len(c.rolls)
}
