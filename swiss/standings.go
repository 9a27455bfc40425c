/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"sort"
	"strings"
)

// Rank computes each player's opponent win percentage and returns a deep
// copy of players ordered by points desc, OWP desc, id asc. The input is
// not modified.
func Rank(players []Player) []Player {
	byID := make(map[int]*Player, len(players))
	for i := range players {
		byID[players[i].ID] = &players[i]
	}

	standings := ClonePlayers(players)
	for i := range standings {
		p := &standings[i]
		p.OpponentWinPct = opponentWinPct(p, byID)
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := &standings[i], &standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.OpponentWinPct != b.OpponentWinPct {
			return a.OpponentWinPct > b.OpponentWinPct
		}
		return a.ID < b.ID
	})

	return standings
}

// one term per match, so a repeat opponent counts once per meeting
func opponentWinPct(p *Player, byID map[int]*Player) float64 {
	if len(p.Opponents) == 0 {
		return 0
	}
	sum := 0.0
	for _, oppID := range p.Opponents {
		if opp, ok := byID[oppID]; ok {
			sum += opp.MatchWinPct()
		}
	}

	return sum / float64(len(p.Opponents))
}

// CountAtTop returns how many players share the leader's points; 1 means a
// sole leader.
func CountAtTop(standings []Player) int {
	if len(standings) == 0 {
		return 0
	}
	top := standings[0].Points
	count := 0
	for i := range standings {
		if standings[i].Points != top {
			break
		}
		count++
	}

	return count
}

// BuildStandingsOutput formats ranked standings into an aligned table with
// a marker under the last player making the cut.
func BuildStandingsOutput(standings []Player, cutSize int) string {
	type row struct{ place, player, record, points, owp string }
	var rows []row
	priorPoints := -1
	for idx, p := range standings {
		// only number the first player of each score group
		place := ""
		if idx == 0 || p.Points != priorPoints {
			place = fmt.Sprintf("%v.", idx+1)
			priorPoints = p.Points
		}
		rows = append(rows, row{
			place:  place,
			player: fmt.Sprintf("Player %v", p.ID),
			record: p.Record().String(),
			points: fmt.Sprintf("%v", p.Points),
			owp:    fmt.Sprintf("%.3f", p.OpponentWinPct),
		})
	}

	// Compute column widths
	maxP, maxN, maxR, maxS, maxO := len("Place"), len("Name"), len("Record"),
		len("Pts"), len("OWP")
	for _, r := range rows {
		if l := len(r.place); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.record); l > maxR {
			maxR = l
		}
		if l := len(r.points); l > maxS {
			maxS = l
		}
		if l := len(r.owp); l > maxO {
			maxO = l
		}
	}

	var sb strings.Builder
	line := func(a, b, c, d, e string) {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s\n", maxP, a,
			maxN, b, maxR, c, maxS, d, maxO, e))
	}
	line("Place", "Name", "Record", "Pts", "OWP")
	for idx, r := range rows {
		line(r.place, r.player, r.record, r.points, r.owp)
		if idx == cutSize-1 && idx != len(rows)-1 {
			sb.WriteString(strings.Repeat("-", maxP+maxN+maxR+maxS+maxO+8))
			sb.WriteString(fmt.Sprintf(" top %v cut\n", cutSize))
		}
	}

	return sb.String()
}
