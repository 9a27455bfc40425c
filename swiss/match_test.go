/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"math/rand/v2"
	"testing"
)

func TestResolveBye(t *testing.T) {
	players := NewPlayers(1)
	r := Resolve(Pairing{P1: &players[0]}, 50, nil, 0)
	if r.Outcome != OutcomeBye || r.Winner != &players[0] {
		t.Fatalf("Resolve(bye) = %v", r)
	}

	Apply(r)
	if players[0].Points != 3 || players[0].Byes != 1 ||
		len(players[0].Opponents) != 0 {
		t.Errorf("after bye: %v opponents=%v", players[0], players[0].Opponents)
	}
	checkPlayerInvariants(t, &players[0])
}

func TestResolveRollBands(t *testing.T) {
	cases := []struct {
		name  string
		draw  float64
		roll  float64
		want  Outcome
		p1Won bool
	}{
		{"inside draw band", 10, 5, OutcomeDraw, false},
		{"draw band edge", 10, 10, OutcomeDecisive, true},
		{"p1 band top", 10, 54.9, OutcomeDecisive, true},
		{"p2 band start", 10, 55, OutcomeDecisive, false},
		{"p2 band top", 10, 99, OutcomeDecisive, false},
		{"no draws", 0, 0, OutcomeDecisive, true},
		{"all draws", 100, 99.9, OutcomeDraw, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			players := NewPlayers(2)
			p := Pairing{P1: &players[0], P2: &players[1]}
			r := Resolve(p, c.draw, nil, c.roll)
			if r.Outcome != c.want {
				t.Fatalf("Resolve(draw=%v, roll=%v) = %v; want %v", c.draw,
					c.roll, r.Outcome, c.want)
			}
			if r.Intentional {
				t.Errorf("unexpected intentional draw")
			}
			if r.Outcome != OutcomeDecisive {
				return
			}
			if got := r.Winner == p.P1; got != c.p1Won {
				t.Errorf("p1 won = %v; want %v", got, c.p1Won)
			}
		})
	}
}

func TestResolveForcedIntentionalDraw(t *testing.T) {
	players := NewPlayers(4)
	idc := &DrawContext{
		Players:      players,
		CutSize:      8,
		CurrentRound: 1,
		TotalRounds:  1,
	}
	p := Pairing{P1: &players[0], P2: &players[1]}

	// a roll deep in P2's band is ignored
	r := Resolve(p, 0, idc, 99)
	if r.Outcome != OutcomeDraw || !r.Intentional {
		t.Errorf("Resolve = %v; want intentional draw", r)
	}
}

func TestResolveNoIntentionalDrawEarly(t *testing.T) {
	players := NewPlayers(4)
	idc := &DrawContext{
		Players:      players,
		CutSize:      8,
		CurrentRound: 1,
		TotalRounds:  5,
	}
	p := Pairing{P1: &players[0], P2: &players[1]}

	r := Resolve(p, 0, idc, 99)
	if r.Outcome != OutcomeDecisive || r.Winner != p.P2 {
		t.Errorf("Resolve = %v; want P2 win", r)
	}
}

func TestApplyConservesPoints(t *testing.T) {
	players := NewPlayers(2)
	p := Pairing{P1: &players[0], P2: &players[1]}

	Apply(Resolve(p, 0, nil, 10))
	Apply(Resolve(p, 100, nil, 10))
	Apply(Resolve(p, 0, nil, 90))

	total := players[0].Points + players[1].Points
	if total != 3+2+3 {
		t.Errorf("total points = %v; want 8", total)
	}
	if players[0].Record() != (Record{1, 1, 1}) {
		t.Errorf("p0 record = %v; want 1-1-1", players[0].Record())
	}
	for i := range players {
		checkPlayerInvariants(t, &players[i])
	}
}

func TestRollCache(t *testing.T) {
	players := NewPlayers(3)
	cache := NewRollCache(rand.New(rand.NewPCG(1, 2)))

	a := cache.Roll(Pairing{P1: &players[0], P2: &players[1]})
	b := cache.Roll(Pairing{P1: &players[1], P2: &players[0]})
	if a != b {
		t.Errorf("reversed pairing rolled %v then %v", a, b)
	}
	if a < 0 || a >= 100 {
		t.Errorf("roll %v out of [0,100)", a)
	}

	if got := cache.Roll(Pairing{P1: &players[2]}); got != 0 {
		t.Errorf("bye roll = %v; want 0", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %v; want 1", cache.Len())
	}
}

func TestRollCacheDeterministic(t *testing.T) {
	players := NewPlayers(4)
	pairings := Pair(players)

	roll := func() []float64 {
		cache := NewRollCache(rand.New(rand.NewPCG(7, 0)))
		var ret []float64
		for _, p := range pairings {
			ret = append(ret, cache.Roll(p))
		}
		return ret
	}

	first, second := roll(), roll()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("roll %v: %v != %v", i, first[i], second[i])
		}
	}
}
