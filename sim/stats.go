/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"github.com/mikeb26/swisssim/swiss"
)

// BubbleSize returns how many players ranked below the cut share the points
// of the last player inside it. Fields smaller than the cut have no bubble.
func BubbleSize(standings []swiss.Player, cutSize int) int {
	if cutSize < 1 || len(standings) < cutSize {
		return 0
	}
	boundary := standings[cutSize-1].Points
	bubble := 0
	for i := cutSize; i < len(standings); i++ {
		if standings[i].Points != boundary {
			break
		}
		bubble++
	}

	return bubble
}

// TargetRecords lists the near-perfect records tracked for a rounds-round
// event, best first. Records that would need negative wins are skipped.
func TargetRecords(rounds int) []swiss.Record {
	candidates := []swiss.Record{
		{Wins: rounds},
		{Wins: rounds - 1, Draws: 1},
		{Wins: rounds - 1, Losses: 1},
		{Wins: rounds - 2, Losses: 1, Draws: 1},
		{Wins: rounds - 2, Losses: 2},
	}
	ret := make([]swiss.Record, 0, len(candidates))
	for _, rec := range candidates {
		if rec.Wins < 0 {
			continue
		}
		ret = append(ret, rec)
	}

	return ret
}

// RecordOrBetter counts players finishing on a tracked record at least as
// good as target.
func RecordOrBetter(standings []swiss.Player, target swiss.Record) int {
	count := 0
	for i := range standings {
		rec, ok := standings[i].Record().Canonical()
		if ok && rec.Compare(target) <= 0 {
			count++
		}
	}

	return count
}

// Discrepancy counts players inside the top cutSize of standard who fall
// out of it in withIDs.
func Discrepancy(standard, withIDs []swiss.Player, cutSize int) int {
	idTop := make(map[int]struct{}, cutSize)
	for i := 0; i < cutSize && i < len(withIDs); i++ {
		idTop[withIDs[i].ID] = struct{}{}
	}
	pushedOut := 0
	for i := 0; i < cutSize && i < len(standard); i++ {
		if _, ok := idTop[standard[i].ID]; !ok {
			pushedOut++
		}
	}

	return pushedOut
}
