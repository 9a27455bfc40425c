/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"runtime"

	"github.com/mikeb26/swisssim/swiss"
)

// Config describes a batch of simulated events.
type Config struct {
	Players     int
	Rounds      int
	DrawPercent float64
	// each cut size gets its own bubble statistics and, when
	// IntentionalDraws is set, its own intentional draw universe
	CutSizes         []int
	IntentionalDraws bool
	Simulations      int
	// 0 picks a random seed which is reported in Result.Params
	Seed uint64

	// <= 0 means runtime.NumCPU()
	Workers int
	// return the aggregate of completed trials alongside ErrCancelled
	KeepPartial bool
	// called after each completed trial; never called concurrently
	Progress func(done, total int)
}

func (cfg Config) Validate() error {
	if cfg.Players < 2 {
		return &swiss.ConfigError{Field: "players", Value: cfg.Players,
			Reason: "need at least 2 players"}
	}
	if cfg.Rounds < 1 {
		return &swiss.ConfigError{Field: "rounds", Value: cfg.Rounds,
			Reason: "need at least 1 round"}
	}
	if err := swiss.ValidateDrawPercent(cfg.DrawPercent); err != nil {
		return err
	}
	if len(cfg.CutSizes) == 0 {
		return &swiss.ConfigError{Field: "cut", Value: cfg.CutSizes,
			Reason: "need at least one cut size"}
	}
	seen := make(map[int]struct{}, len(cfg.CutSizes))
	for _, cut := range cfg.CutSizes {
		if err := swiss.ValidateCutSize(cut); err != nil {
			return err
		}
		if _, ok := seen[cut]; ok {
			return &swiss.ConfigError{Field: "cut", Value: cut,
				Reason: "duplicate cut size"}
		}
		seen[cut] = struct{}{}
	}
	if cfg.Simulations < 1 {
		return &swiss.ConfigError{Field: "simulations", Value: cfg.Simulations,
			Reason: "need at least 1 simulation"}
	}

	return nil
}

// Warnings returns non-fatal caveats about cfg.
func (cfg Config) Warnings() []string {
	if !cfg.IntentionalDraws {
		return nil
	}
	var ret []string
	for _, cut := range cfg.CutSizes {
		if w := swiss.PenultimateCutWarning(cut, cfg.Rounds); w != "" {
			ret = append(ret, w)
		}
	}
	return ret
}

func (cfg Config) workers() int {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Simulations {
		workers = cfg.Simulations
	}

	return workers
}

func (cfg Config) event() swiss.Config {
	return swiss.Config{
		NumPlayers:            cfg.Players,
		NumRounds:             cfg.Rounds,
		DrawPercent:           cfg.DrawPercent,
		CutSize:               cfg.CutSizes[0],
		AllowIntentionalDraws: cfg.IntentionalDraws,
	}
}

// variants returns the baseline universe followed by one intentional draw
// universe per cut size.
func (cfg Config) variants() []swiss.Variant {
	ret := []swiss.Variant{swiss.Baseline()}
	if !cfg.IntentionalDraws {
		return ret
	}
	for _, cut := range cfg.CutSizes {
		ret = append(ret, swiss.IntentionalDrawVariant(cut))
	}

	return ret
}
