/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"context"

	"github.com/mikeb26/swisssim/swiss"
)

type RoundProbability struct {
	Rounds      int     `json:"rounds"`
	Probability float64 `json:"probability"`
}

// LeaderResult answers how many rounds an event needs before a single
// player usually finishes alone on top.
type LeaderResult struct {
	// minimum rounds reaching the target, or maxRounds when never reached
	Rounds      int     `json:"rounds"`
	Probability float64 `json:"probability"`
	Reached     bool    `json:"reached"`
	// one entry per round count tried, starting at 1
	ByRound []RoundProbability `json:"byRound"`
}

func soleLeaderFraction(res *Result) float64 {
	if res.Trials == 0 {
		return 0
	}
	for _, b := range res.Leaders.Distribution {
		if b.Value == 1 {
			return float64(b.Count) / float64(res.Trials)
		}
	}
	return 0
}

// ProbabilitySingleLeader returns the fraction of cfg's baseline events
// that end with exactly one player on the most points.
func ProbabilitySingleLeader(ctx context.Context, cfg Config) (float64, error) {
	cfg.IntentionalDraws = false
	if len(cfg.CutSizes) == 0 {
		cfg.CutSizes = []int{1}
	}
	cfg.KeepPartial = false

	res, err := RunBatch(ctx, cfg)
	if err != nil {
		return 0, err
	}

	return soleLeaderFraction(res), nil
}

// RoundsForSingleLeader searches round counts 1..maxRounds for the first
// whose sole leader probability reaches target. cfg.Rounds is ignored.
func RoundsForSingleLeader(ctx context.Context, cfg Config, target float64,
	maxRounds int) (*LeaderResult, error) {

	if !(target >= 0 && target <= 1) {
		return nil, &swiss.ConfigError{Field: "target", Value: target,
			Reason: "must be within [0,1]"}
	}
	if maxRounds < 1 {
		return nil, &swiss.ConfigError{Field: "maxrounds", Value: maxRounds,
			Reason: "need at least 1 round"}
	}

	ret := &LeaderResult{}
	for r := 1; r <= maxRounds; r++ {
		cfg.Rounds = r
		prob, err := ProbabilitySingleLeader(ctx, cfg)
		if err != nil {
			return nil, err
		}
		ret.ByRound = append(ret.ByRound,
			RoundProbability{Rounds: r, Probability: prob})
		ret.Rounds = r
		ret.Probability = prob
		if prob >= target {
			ret.Reached = true
			break
		}
	}

	return ret, nil
}
