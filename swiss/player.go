/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	PointsPerWin  = 3
	PointsPerDraw = 1
)

// Player holds one participant's running record within a single simulated
// event. Players are owned by exactly one universe and are never shared.
type Player struct {
	ID     int
	Points int
	Wins   int
	Losses int
	Draws  int
	Byes   int
	// one entry per played match; byes are not recorded
	Opponents []int

	// only meaningful after Rank()
	OpponentWinPct float64
}

// NewPlayers returns n zeroed players with ids 0..n-1; ids double as the
// index into the returned slice.
func NewPlayers(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i].ID = i
	}

	return players
}

func (p *Player) AddWin(opponentID int) {
	p.Points += PointsPerWin
	p.Wins++
	p.Opponents = append(p.Opponents, opponentID)
}

func (p *Player) AddLoss(opponentID int) {
	p.Losses++
	p.Opponents = append(p.Opponents, opponentID)
}

func (p *Player) AddDraw(opponentID int) {
	p.Points += PointsPerDraw
	p.Draws++
	p.Opponents = append(p.Opponents, opponentID)
}

// AddBye credits a full win without an opponent.
func (p *Player) AddBye() {
	p.Points += PointsPerWin
	p.Wins++
	p.Byes++
}

func (p *Player) GamesPlayed() int {
	return p.Wins + p.Losses + p.Draws
}

// MatchWinPct is this player's contribution to an opponent's OWP.
func (p *Player) MatchWinPct() float64 {
	total := p.GamesPlayed()
	if total == 0 {
		return 0
	}
	return (float64(p.Wins) + 0.5*float64(p.Draws)) / float64(total)
}

func (p *Player) Record() Record {
	return Record{Wins: p.Wins, Losses: p.Losses, Draws: p.Draws}
}

func (p Player) String() string {
	return fmt.Sprintf("Player(%d, %v, %dpts)", p.ID, p.Record(), p.Points)
}

// Clone returns a deep copy of p.
func (p *Player) Clone() Player {
	ret := *p
	if p.Opponents != nil {
		ret.Opponents = append(make([]int, 0, cap(p.Opponents)), p.Opponents...)
	}
	return ret
}

// ClonePlayers deep copies every player so the result shares no state with
// the input.
func ClonePlayers(players []Player) []Player {
	ret := make([]Player, len(players))
	for i := range players {
		ret[i] = players[i].Clone()
	}

	return ret
}

// Record is a W-L-D match record.
type Record struct {
	Wins   int
	Losses int
	Draws  int
}

func (r Record) Points() int {
	return PointsPerWin*r.Wins + PointsPerDraw*r.Draws
}

func (r Record) String() string {
	if r.Draws > 0 {
		return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Draws)
	}
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

// parseRecord accepts "W-L" or "W-L-D".
func parseRecord(s string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) < 2 || len(parts) > 3 {
		return Record{}, fmt.Errorf("invalid record %q", s)
	}
	vals := make([]int, 3)
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Record{}, fmt.Errorf("invalid record %q: %w", s, err)
		}
		vals[i] = v
	}

	return Record{Wins: vals[0], Losses: vals[1], Draws: vals[2]}, nil
}

// Canonical reports whether r is one of the tracked near-perfect patterns:
// W-0, W-0-1, W-1, W-1-1 or W-2.
func (r Record) Canonical() (Record, bool) {
	switch {
	case r.Losses == 0 && r.Draws <= 1:
	case r.Losses == 1 && r.Draws <= 1:
	case r.Losses == 2 && r.Draws == 0:
	default:
		return Record{}, false
	}

	return r, true
}

// Compare orders records best first: more points, then fewer losses, then
// fewer draws. It returns a negative value when r is better than other.
func (r Record) Compare(other Record) int {
	if r.Points() != other.Points() {
		return other.Points() - r.Points()
	}
	if r.Losses != other.Losses {
		return r.Losses - other.Losses
	}
	return r.Draws - other.Draws
}
