/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/mikeb26/swisssim/swiss"
	"golang.org/x/sync/errgroup"
)

// SweepResult holds one baseline batch per player count, in ascending
// player count order.
type SweepResult struct {
	CutSize      int
	Seed         uint64
	PlayerCounts []int
	Results      []*Result
}

// Sweep runs a batch for every player count in [minPlayers, maxPlayers] in
// steps of step, using base for everything else. Intentional draws are
// disabled and only the first cut size is measured. Up to base.Workers
// batches run at once, each on a single worker; base.Progress reports
// completed player counts.
func Sweep(ctx context.Context, base Config, minPlayers int, maxPlayers int,
	step int) (*SweepResult, error) {

	if step < 1 {
		return nil, &swiss.ConfigError{Field: "step", Value: step,
			Reason: "must be at least 1"}
	}
	if minPlayers > maxPlayers {
		return nil, &swiss.ConfigError{Field: "maxplayers", Value: maxPlayers,
			Reason: fmt.Sprintf("must be at least minplayers=%v", minPlayers)}
	}
	probe := base
	probe.Players = minPlayers
	if err := probe.Validate(); err != nil {
		return nil, err
	}

	seed := base.Seed
	if seed == 0 {
		var err error
		seed, err = RandomSeed()
		if err != nil {
			return nil, err
		}
	}

	sr := &SweepResult{CutSize: base.CutSizes[0], Seed: seed}
	for p := minPlayers; p <= maxPlayers; p += step {
		sr.PlayerCounts = append(sr.PlayerCounts, p)
	}
	sr.Results = make([]*Result, len(sr.PlayerCounts))

	var progressLock sync.Mutex
	done := 0

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(base.workers())
	for i, players := range sr.PlayerCounts {
		cfg := base
		cfg.Players = players
		cfg.CutSizes = []int{sr.CutSize}
		cfg.IntentionalDraws = false
		cfg.Seed = seed
		cfg.Workers = 1
		cfg.KeepPartial = false
		cfg.Progress = nil

		g.Go(func() error {
			res, err := RunBatch(ctx, cfg)
			if err != nil {
				return fmt.Errorf("sweep %v players: %w", cfg.Players, err)
			}
			sr.Results[i] = res

			if base.Progress != nil {
				progressLock.Lock()
				done++
				base.Progress(done, len(sr.PlayerCounts))
				progressLock.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sr, nil
}

// WriteBubbleCSV writes one column per player count and one row per
// observed bubble size, each cell the percentage of trials with that
// bubble.
func WriteBubbleCSV(w io.Writer, sr *SweepResult) error {
	observed := make(map[int]struct{})
	for _, res := range sr.Results {
		for _, b := range res.Universes[0].Bubbles[0].Distribution {
			observed[b.Value] = struct{}{}
		}
	}
	sizes := make([]int, 0, len(observed))
	for size := range observed {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	cw := csv.NewWriter(w)
	header := []string{"bubble size"}
	for _, p := range sr.PlayerCounts {
		header = append(header, strconv.Itoa(p))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, size := range sizes {
		row := []string{strconv.Itoa(size)}
		for _, res := range sr.Results {
			pct, _ := res.Universes[0].Bubbles[0].Distribution.Percent(size)
			row = append(row, fmt.Sprintf("%.1f", pct))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
