/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"testing"
)

func checkPlayerInvariants(t *testing.T, p *Player) {
	t.Helper()
	if p.Points != 3*p.Wins+p.Draws {
		t.Errorf("player %v: points %v != 3*%v+%v", p.ID, p.Points, p.Wins,
			p.Draws)
	}
	if len(p.Opponents) != p.Wins+p.Losses+p.Draws-p.Byes {
		t.Errorf("player %v: %v opponents for record %v with %v byes", p.ID,
			len(p.Opponents), p.Record(), p.Byes)
	}
}

func TestPlayerResults(t *testing.T) {
	p := Player{ID: 4}
	p.AddWin(1)
	p.AddDraw(2)
	p.AddLoss(3)
	p.AddBye()

	if p.Points != 7 {
		t.Errorf("Points = %v; want 7", p.Points)
	}
	if got := p.Record().String(); got != "2-1-1" {
		t.Errorf("Record = %q; want 2-1-1", got)
	}
	if len(p.Opponents) != 3 {
		t.Errorf("Opponents = %v; want 3 entries", p.Opponents)
	}
	checkPlayerInvariants(t, &p)
}

func TestNewPlayers(t *testing.T) {
	players := NewPlayers(5)
	for i, p := range players {
		if p.ID != i || p.Points != 0 || len(p.Opponents) != 0 {
			t.Errorf("players[%v] = %v; want fresh player %v", i, p, i)
		}
	}
}

func TestClonePlayersIsDeep(t *testing.T) {
	players := NewPlayers(2)
	players[0].AddWin(1)
	players[1].AddLoss(0)

	clone := ClonePlayers(players)
	clone[0].AddWin(1)
	clone[0].Opponents[0] = 99

	if players[0].Wins != 1 || players[0].Opponents[0] != 1 {
		t.Errorf("mutating clone changed original: %v %v", players[0],
			players[0].Opponents)
	}
}

func TestMatchWinPct(t *testing.T) {
	cases := []struct {
		name string
		p    Player
		want float64
	}{
		{"no games", Player{}, 0},
		{"all wins", Player{Wins: 2}, 1},
		{"draw counts half", Player{Wins: 1, Losses: 2, Draws: 1}, 0.375},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.p.MatchWinPct(); got != c.want {
				t.Errorf("MatchWinPct = %v; want %v", got, c.want)
			}
		})
	}
}

func TestParseRecord(t *testing.T) {
	cases := []struct {
		in      string
		want    Record
		wantErr bool
	}{
		{"5-0", Record{5, 0, 0}, false},
		{"4-0-1", Record{4, 0, 1}, false},
		{" 3-2 ", Record{3, 2, 0}, false},
		{"3", Record{}, true},
		{"a-1", Record{}, true},
		{"1-2-3-4", Record{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseRecord(c.in)
			if (err != nil) != c.wantErr {
				t.Fatalf("parseRecord(%q) err = %v; wantErr %v", c.in, err,
					c.wantErr)
			}
			if got != c.want {
				t.Errorf("parseRecord(%q) = %v; want %v", c.in, got, c.want)
			}
		})
	}
}

func TestRecordCanonical(t *testing.T) {
	cases := []struct {
		rec  Record
		want bool
	}{
		{Record{5, 0, 0}, true},
		{Record{4, 0, 1}, true},
		{Record{4, 1, 0}, true},
		{Record{3, 1, 1}, true},
		{Record{3, 2, 0}, true},
		{Record{3, 0, 2}, false},
		{Record{2, 2, 1}, false},
		{Record{2, 3, 0}, false},
	}
	for _, c := range cases {
		t.Run(c.rec.String(), func(t *testing.T) {
			if _, ok := c.rec.Canonical(); ok != c.want {
				t.Errorf("Canonical(%v) = %v; want %v", c.rec, ok, c.want)
			}
		})
	}
}

func TestRecordCompare(t *testing.T) {
	// best first
	ordered := []string{"5-0", "4-0-1", "4-1", "3-1-1", "3-2"}
	for i := 0; i+1 < len(ordered); i++ {
		a, _ := parseRecord(ordered[i])
		b, _ := parseRecord(ordered[i+1])
		if a.Compare(b) >= 0 {
			t.Errorf("%v.Compare(%v) = %v; want < 0", a, b, a.Compare(b))
		}
		if b.Compare(a) <= 0 {
			t.Errorf("%v.Compare(%v) = %v; want > 0", b, a, b.Compare(a))
		}
	}

	// equal points: fewer losses wins, then fewer draws
	if (Record{3, 0, 0}).Compare(Record{2, 2, 3}) >= 0 {
		t.Errorf("3-0 should beat 2-2-3")
	}
	if (Record{2, 0, 0}).Compare(Record{2, 0, 0}) != 0 {
		t.Errorf("identical records should compare equal")
	}
}
