/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func totalPoints(players []Player) int {
	total := 0
	for i := range players {
		total += players[i].Points
	}
	return total
}

func TestPlayRoundConservesPoints(t *testing.T) {
	for _, idCut := range []int{0, 4} {
		intentional := 0
		rng := rand.New(rand.NewPCG(11, uint64(idCut)))
		for _, n := range []int{2, 7, 16, 33} {
			players := NewPlayers(n)
			for round := 1; round <= 5; round++ {
				before := totalPoints(players)
				results, summary := PlayRound(players, round, 5, 20, idCut,
					NewRollCache(rng))

				want := 0
				ids := 0
				for _, r := range results {
					switch r.Outcome {
					case OutcomeDecisive, OutcomeBye:
						want += PointsPerWin
					case OutcomeDraw:
						want += 2 * PointsPerDraw
					}
					if r.Intentional {
						ids++
					}
				}
				if got := totalPoints(players) - before; got != want {
					t.Errorf("cut %v n=%v round %v: points grew by %v; want %v",
						idCut, n, round, got, want)
				}
				if len(results) != (n+1)/2 {
					t.Errorf("n=%v: %v results", n, len(results))
				}
				if summary.Round != round || summary.IntentionalDraws != ids {
					t.Errorf("cut %v n=%v: summary %+v with %v intentional",
						idCut, n, summary, ids)
				}
				if ids > 0 && (idCut == 0 || round < 3) {
					t.Errorf("cut %v n=%v: %v intentional draws in round %v",
						idCut, n, ids, round)
				}
				intentional += ids
				for i := range players {
					checkPlayerInvariants(t, &players[i])
				}
			}
		}
		// a 2 player field is always safe in the last rounds
		if idCut > 0 && intentional == 0 {
			t.Errorf("cut %v: no intentional draws", idCut)
		}
	}
}

func TestPlayRoundAppliesBoardsInOrder(t *testing.T) {
	// Round 3 of 5, top 2 cut. Board 1 (players 0 and 1, tied on 6) is
	// unsafe because 2 and 3 sit in different score groups, so it is played
	// out. Against the pre-round standings board 2 would be safe since 0
	// and 1 form a single threat, but once board 1 splits them there are
	// two.
	players := NewPlayers(4)
	for i, pts := range []int{6, 6, 3, 0} {
		players[i].Points = pts
	}

	pre := ClonePlayers(players)
	preIdc := &DrawContext{Players: pre, CutSize: 2, CurrentRound: 3,
		TotalRounds: 5}
	if r := Resolve(Pairing{P1: &pre[2], P2: &pre[3]}, 0, preIdc, 0); !r.Intentional {
		t.Fatalf("board 2 not safe against pre-round standings: %v", r)
	}

	results, summary := PlayRound(players, 3, 5, 0, 2,
		NewRollCache(rand.New(rand.NewPCG(4, 4))))
	if len(results) != 2 {
		t.Fatalf("%v results; want 2", len(results))
	}
	if results[0].P1.ID != 0 || results[0].Outcome != OutcomeDecisive {
		t.Errorf("board 1 = %v; want decisive between 0 and 1", results[0])
	}
	if results[1].P1.ID != 2 || results[1].Outcome != OutcomeDecisive {
		t.Errorf("board 2 = %v; want decisive after board 1 applied",
			results[1])
	}
	if summary.IntentionalDraws != 0 {
		t.Errorf("%v intentional draws; want 0", summary.IntentionalDraws)
	}
}

func TestTournamentDeterministic(t *testing.T) {
	cfg := Config{
		NumPlayers:            24,
		NumRounds:             5,
		DrawPercent:           15,
		CutSize:               8,
		AllowIntentionalDraws: true,
	}
	run := func() [][]Player {
		return NewTournament(cfg, rand.New(rand.NewPCG(3, 9))).Run()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different standings")
	}
	if len(a) != 2 {
		t.Errorf("%v universes; want 2", len(a))
	}

	for u, standings := range a {
		for i := 1; i < len(standings); i++ {
			prev, cur := &standings[i-1], &standings[i]
			ordered := prev.Points > cur.Points ||
				(prev.Points == cur.Points &&
					(prev.OpponentWinPct > cur.OpponentWinPct ||
						(prev.OpponentWinPct == cur.OpponentWinPct &&
							prev.ID < cur.ID)))
			if !ordered {
				t.Errorf("universe %v: %v ranked above %v", u, prev, cur)
			}
		}
	}
}

func TestUniversesDivergeOnlyLate(t *testing.T) {
	cfg := Config{
		NumPlayers:            32,
		NumRounds:             6,
		DrawPercent:           10,
		CutSize:               8,
		AllowIntentionalDraws: true,
	}
	tour := NewTournament(cfg, rand.New(rand.NewPCG(5, 5)))
	for i := 0; i < 3; i++ {
		tour.PlayRound()
	}
	us := tour.Universes()
	if !reflect.DeepEqual(us[0].Players, us[1].Players) {
		t.Errorf("universes diverged before the last two rounds")
	}

	tour.Run()
	for _, rs := range us[0].Rounds {
		if rs.IntentionalDraws != 0 {
			t.Errorf("baseline round %v had %v intentional draws", rs.Round,
				rs.IntentionalDraws)
		}
	}
	for _, rs := range us[1].Rounds[:3] {
		if rs.IntentionalDraws != 0 {
			t.Errorf("round %v had %v intentional draws", rs.Round,
				rs.IntentionalDraws)
		}
	}
}

func TestTinyEventAllDraws(t *testing.T) {
	cfg := Config{NumPlayers: 4, NumRounds: 2, CutSize: 8}
	tour := NewTournament(cfg, rand.New(rand.NewPCG(1, 1)),
		IntentionalDrawVariant(8))

	standings := tour.Run()
	if len(standings) != 1 {
		t.Fatalf("%v universes; want 1", len(standings))
	}
	for _, p := range standings[0] {
		if p.Points != 2 || p.Draws != 2 {
			t.Errorf("player %v: %v", p.ID, p)
		}
	}
	for _, rs := range tour.Universes()[0].Rounds {
		if rs.IntentionalDraws != 2 {
			t.Errorf("round %v: %v intentional draws; want 2", rs.Round,
				rs.IntentionalDraws)
		}
		if rs.LeadersTied != 4 {
			t.Errorf("round %v: %v leaders tied; want 4", rs.Round,
				rs.LeadersTied)
		}
	}
}

func TestTournamentRoundCounter(t *testing.T) {
	cfg := Config{NumPlayers: 5, NumRounds: 3, CutSize: 4}
	tour := NewTournament(cfg, rand.New(rand.NewPCG(2, 2)))
	if tour.Round() != 0 || tour.Finished() {
		t.Fatalf("fresh tournament at round %v", tour.Round())
	}
	if len(tour.Universes()) != 1 || tour.Universes()[0].Name != "standard" {
		t.Errorf("universes = %v", tour.Universes())
	}
	for i := 1; i <= 3; i++ {
		if got := len(tour.PlayRound()); got != 1 {
			t.Errorf("round %v: %v summaries", i, got)
		}
		if tour.Round() != i {
			t.Errorf("Round = %v; want %v", tour.Round(), i)
		}
	}
	if !tour.Finished() {
		t.Errorf("not finished after 3 rounds")
	}
	if tour.PlayRound() != nil {
		t.Errorf("PlayRound after the last round returned summaries")
	}
}
