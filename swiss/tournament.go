/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"math/rand/v2"
)

// Variant describes one universe of a lockstep simulation.
type Variant struct {
	Name             string
	CutSize          int
	IntentionalDraws bool
}

// Baseline is the universe where every match is played out.
func Baseline() Variant {
	return Variant{Name: "standard"}
}

// IntentionalDrawVariant lets players draw intentionally when safe for a
// top cutSize cut.
func IntentionalDrawVariant(cutSize int) Variant {
	return Variant{
		Name:             fmt.Sprintf("id-top%v", cutSize),
		CutSize:          cutSize,
		IntentionalDraws: true,
	}
}

// RoundSummary is a per-round snapshot of one universe.
type RoundSummary struct {
	Round            int
	IntentionalDraws int
	LeadersTied      int
}

// Universe is one independent copy of the event's player state.
type Universe struct {
	Variant
	Players []Player
	Rounds  []RoundSummary
}

// PlayRound pairs players, then resolves and applies each board in pairing
// order, so later boards see the results of earlier ones. round is 1-indexed.
// idCut > 0 enables intentional draws targeting that cut.
func PlayRound(players []Player, round int, totalRounds int,
	drawPercent float64, idCut int, rolls *RollCache) ([]MatchResult, RoundSummary) {

	pairings := Pair(players)

	var idc *DrawContext
	if idCut > 0 {
		idc = &DrawContext{
			Players:      players,
			CutSize:      idCut,
			CurrentRound: round,
			TotalRounds:  totalRounds,
		}
	}

	summary := RoundSummary{Round: round}
	results := make([]MatchResult, 0, len(pairings))
	for _, pairing := range pairings {
		roll := rolls.Roll(pairing)
		r := Resolve(pairing, drawPercent, idc, roll)
		Apply(r)
		if r.Intentional {
			summary.IntentionalDraws++
		}
		results = append(results, r)
	}
	summary.LeadersTied = leadersTied(players)

	return results, summary
}

func leadersTied(players []Player) int {
	top := -1
	count := 0
	for i := range players {
		switch {
		case players[i].Points > top:
			top = players[i].Points
			count = 1
		case players[i].Points == top:
			count++
		}
	}

	return count
}

// Tournament drives one event through every round for one or more
// universes in lockstep. All universes start from identical player state
// and share each round's roll cache, so intentional draws are the only
// source of divergence between them.
type Tournament struct {
	numRounds   int
	drawPercent float64
	round       int
	rng         *rand.Rand
	universes   []*Universe
}

// NewTournament creates a tournament. Without explicit variants the
// universes are derived from cfg: the baseline, plus an intentional draw
// universe at cfg.CutSize when cfg.AllowIntentionalDraws is set. cfg is
// assumed to have passed Validate.
func NewTournament(cfg Config, rng *rand.Rand,
	variants ...Variant) *Tournament {

	if len(variants) == 0 {
		variants = []Variant{Baseline()}
		if cfg.AllowIntentionalDraws {
			variants = append(variants, IntentionalDrawVariant(cfg.CutSize))
		}
	}

	base := NewPlayers(cfg.NumPlayers)
	t := &Tournament{
		numRounds:   cfg.NumRounds,
		drawPercent: cfg.DrawPercent,
		rng:         rng,
	}
	for _, v := range variants {
		t.universes = append(t.universes, &Universe{
			Variant: v,
			Players: ClonePlayers(base),
			Rounds:  make([]RoundSummary, 0, cfg.NumRounds),
		})
	}

	return t
}

func (t *Tournament) Universes() []*Universe {
	return t.universes
}

// Round returns the number of rounds played so far.
func (t *Tournament) Round() int {
	return t.round
}

func (t *Tournament) Finished() bool {
	return t.round >= t.numRounds
}

// PlayRound plays the next round in every universe and returns each
// universe's summary in universe order.
func (t *Tournament) PlayRound() []RoundSummary {
	if t.Finished() {
		return nil
	}
	t.round++

	rolls := NewRollCache(t.rng)
	summaries := make([]RoundSummary, 0, len(t.universes))
	for _, u := range t.universes {
		idCut := 0
		if u.IntentionalDraws {
			idCut = u.CutSize
		}
		_, summary := PlayRound(u.Players, t.round, t.numRounds,
			t.drawPercent, idCut, rolls)
		u.Rounds = append(u.Rounds, summary)
		summaries = append(summaries, summary)
	}

	return summaries
}

// Run plays any remaining rounds and returns the final standings of every
// universe in universe order.
func (t *Tournament) Run() [][]Player {
	for !t.Finished() {
		t.PlayRound()
	}

	standings := make([][]Player, len(t.universes))
	for i, u := range t.universes {
		standings[i] = Rank(u.Players)
	}

	return standings
}
