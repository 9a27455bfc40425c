/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// Pairing is one board of a round. P2 is nil when P1 received the bye.
type Pairing struct {
	P1 *Player
	P2 *Player
}

func (p Pairing) IsBye() bool {
	return p.P2 == nil
}

// Key returns the canonical unordered id pair (lower id first).
func (p Pairing) Key() [2]int {
	if p.IsBye() {
		return [2]int{p.P1.ID, -1}
	}
	a, b := p.P1.ID, p.P2.ID
	if b < a {
		a, b = b, a
	}
	return [2]int{a, b}
}

// SeedOrder sorts by points descending, then id ascending. This is the
// canonical seed for every round.
func SeedOrder(players []Player) []*Player {
	sorted := make([]*Player, len(players))
	for i := range players {
		sorted[i] = &players[i]
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].ID < sorted[j].ID
	})

	return sorted
}

// Pair builds the next round's pairings. Players are taken in seed order
// and each unpaired player meets the next unpaired player below it; with an
// odd count the last player gets the bye. There is deliberately no rematch
// avoidance. The returned pairings point into players.
func Pair(players []Player) []Pairing {
	sorted := SeedOrder(players)

	pairings := make([]Pairing, 0, (len(sorted)+1)/2)
	for i := 0; i+1 < len(sorted); i += 2 {
		pairings = append(pairings, Pairing{P1: sorted[i], P2: sorted[i+1]})
	}
	if len(sorted)%2 == 1 {
		pairings = append(pairings, Pairing{P1: sorted[len(sorted)-1]})
	}

	return pairings
}
