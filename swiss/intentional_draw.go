/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// The penultimate-round projection reads a fixed boundary: the 7th best of
// the other players, i.e. the player who would finish 9th behind the pair in
// a top 8 cut. It is not derived from the caller's cut size; see
// PenultimateCutWarning.
const (
	penultimateCutSize       = 8
	penultimateBoundaryIndex = penultimateCutSize - 2
	penultimateProjectRounds = 2
)

// DrawContext carries what a table needs to know to consider an intentional
// draw: the live standings of the round in progress and where the event
// stands.
type DrawContext struct {
	Players      []Player
	CutSize      int
	CurrentRound int
	TotalRounds  int
}

func (idc *DrawContext) RoundsRemaining() int {
	return idc.TotalRounds - idc.CurrentRound
}

// IsSafeForCut reports whether player still makes the top cutSize after
// drawing with opponent in currentRound (1-indexed). It only looks at the
// player's side of the table; both sides must be safe for the pair to draw.
//
// Final round: safe iff the score after the draw strictly beats the best
// finish of the (cutSize-1)th best other player, assuming that player wins.
// Ties are treated as unsafe since tiebreaks could go either way.
//
// Penultimate round: safe iff the score after drawing twice beats the
// Swiss-constrained two round projection of the rank-7 boundary.
//
// Earlier: count the other players who could still pass the score after the
// draw by winning out, and assume at most half of each score group can win
// next round. Safe iff that count is below cutSize.
func IsSafeForCut(player, opponent *Player, allPlayers []Player, cutSize int,
	currentRound int, totalRounds int) bool {

	afterDraw := player.Points + PointsPerDraw
	roundsRemaining := totalRounds - currentRound

	others := make([]int, 0, len(allPlayers))
	for i := range allPlayers {
		p := &allPlayers[i]
		if p.ID == player.ID || p.ID == opponent.ID {
			continue
		}
		others = append(others, p.Points)
	}

	switch {
	case roundsRemaining <= 0:
		if len(others) < cutSize {
			return true
		}
		sortDescending(others)
		idx := cutSize - 2
		// a lone qualifier is measured against the best other player
		if idx < 0 {
			idx = 0
		}
		maxBoundaryFinal := others[idx] + PointsPerWin
		return afterDraw > maxBoundaryFinal

	case roundsRemaining == 1:
		afterTwoDraws := player.Points + penultimateProjectRounds*PointsPerDraw
		projected := ProjectSwissScores(others, penultimateProjectRounds)
		if len(projected) <= penultimateBoundaryIndex {
			return true
		}
		return afterTwoDraws > projected[penultimateBoundaryIndex]

	default:
		threatsByScore := make(map[int]int)
		for _, pts := range others {
			maxPossible := pts + PointsPerWin*(1+roundsRemaining)
			if maxPossible > afterDraw {
				threatsByScore[pts]++
			}
		}
		realistic := 0
		for _, count := range threatsByScore {
			realistic += ceilHalf(count)
		}
		return realistic < cutSize
	}
}

// ProjectSwissScores returns the best plausible scores of the given players
// after rounds more rounds of Swiss pairing, sorted descending. Within each
// score group at most ceil(n/2) players can win since they are paired
// against each other; the rest stay put.
func ProjectSwissScores(scores []int, rounds int) []int {
	current := append([]int(nil), scores...)
	for r := 0; r < rounds; r++ {
		groups := make(map[int]int)
		for _, s := range current {
			groups[s]++
		}
		next := make([]int, 0, len(current))
		for score, count := range groups {
			winners := ceilHalf(count)
			for i := 0; i < winners; i++ {
				next = append(next, score+PointsPerWin)
			}
			for i := winners; i < count; i++ {
				next = append(next, score)
			}
		}
		current = next
	}
	sortDescending(current)

	return current
}

func ceilHalf(n int) int {
	return (n + 1) / 2
}

func sortDescending(vals []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(vals)))
}
