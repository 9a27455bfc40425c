/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/mikeb26/swisssim/swiss"
	"golang.org/x/sync/errgroup"
)

var ErrCancelled = errors.New("simulation cancelled")

// Params echoes the result-affecting parts of the Config a Result was
// produced from, with the seed actually used.
type Params struct {
	Players          int     `json:"players"`
	Rounds           int     `json:"rounds"`
	DrawPercent      float64 `json:"drawPercent"`
	CutSizes         []int   `json:"cutSizes"`
	IntentionalDraws bool    `json:"intentionalDraws"`
	Simulations      int     `json:"simulations"`
	Seed             uint64  `json:"seed"`
}

type CutSummary struct {
	CutSize int `json:"cutSize"`
	Summary
}

type RecordSummary struct {
	Record       string       `json:"record"`
	Distribution Distribution `json:"distribution"`
}

// UniverseStats aggregates one universe across all trials.
type UniverseStats struct {
	Name             string          `json:"name"`
	CutSize          int             `json:"cutSize,omitempty"`
	IntentionalDraws bool            `json:"intentionalDraws"`
	Bubbles          []CutSummary    `json:"bubbles"`
	Records          []RecordSummary `json:"records"`
	// indexed by round-1; empty for universes without intentional draws
	IntentionalDrawsPerRound []Distribution `json:"intentionalDrawsPerRound,omitempty"`
}

type Result struct {
	Params Params `json:"params"`
	// completed trials; less than Params.Simulations for a partial result
	Trials    int             `json:"trials"`
	Universes []UniverseStats `json:"universes"`
	// players pushed out of each cut by intentional draws; empty unless
	// intentional draws are enabled
	Discrepancy []CutSummary `json:"discrepancy,omitempty"`
	// players tied for first in the baseline universe
	Leaders  Summary  `json:"leaders"`
	Warnings []string `json:"warnings,omitempty"`
}

type universeAcc struct {
	bubbles     []Histogram
	records     []Histogram
	idsPerRound []Histogram
}

// accumulator is owned by a single worker until RunBatch merges them.
type accumulator struct {
	trials      int
	universes   []universeAcc
	discrepancy []Histogram
	leaders     Histogram
}

func newHistograms(n int) []Histogram {
	ret := make([]Histogram, n)
	for i := range ret {
		ret[i] = make(Histogram)
	}
	return ret
}

func newAccumulator(cfg Config, variants []swiss.Variant,
	targets []swiss.Record) *accumulator {

	acc := &accumulator{
		universes: make([]universeAcc, len(variants)),
		leaders:   make(Histogram),
	}
	for i, v := range variants {
		acc.universes[i].bubbles = newHistograms(len(cfg.CutSizes))
		acc.universes[i].records = newHistograms(len(targets))
		if v.IntentionalDraws {
			acc.universes[i].idsPerRound = newHistograms(cfg.Rounds)
		}
	}
	if cfg.IntentionalDraws {
		acc.discrepancy = newHistograms(len(cfg.CutSizes))
	}

	return acc
}

// addTrial records one finished trial. Universe 0 is the baseline and
// universe i+1 is the intentional draw universe for cfg.CutSizes[i].
func (acc *accumulator) addTrial(cfg Config, targets []swiss.Record,
	universes []*swiss.Universe, standings [][]swiss.Player) {

	acc.trials++
	for u := range universes {
		ua := &acc.universes[u]
		for c, cut := range cfg.CutSizes {
			ua.bubbles[c].Add(BubbleSize(standings[u], cut))
		}
		for r, target := range targets {
			ua.records[r].Add(RecordOrBetter(standings[u], target))
		}
		if ua.idsPerRound != nil {
			for _, rs := range universes[u].Rounds {
				ua.idsPerRound[rs.Round-1].Add(rs.IntentionalDraws)
			}
		}
	}
	for c, cut := range cfg.CutSizes {
		if acc.discrepancy == nil {
			break
		}
		acc.discrepancy[c].Add(Discrepancy(standings[0], standings[c+1], cut))
	}
	acc.leaders.Add(swiss.CountAtTop(standings[0]))
}

func mergeAll(dst, src []Histogram) {
	for i := range src {
		dst[i].Merge(src[i])
	}
}

func (acc *accumulator) merge(other *accumulator) {
	acc.trials += other.trials
	for u := range acc.universes {
		mergeAll(acc.universes[u].bubbles, other.universes[u].bubbles)
		mergeAll(acc.universes[u].records, other.universes[u].records)
		mergeAll(acc.universes[u].idsPerRound, other.universes[u].idsPerRound)
	}
	mergeAll(acc.discrepancy, other.discrepancy)
	acc.leaders.Merge(other.leaders)
}

func (acc *accumulator) result(cfg Config, params Params,
	variants []swiss.Variant, targets []swiss.Record) *Result {

	res := &Result{
		Params:    params,
		Trials:    acc.trials,
		Universes: make([]UniverseStats, len(variants)),
		Leaders:   acc.leaders.Summarize(acc.trials),
		Warnings:  cfg.Warnings(),
	}
	for u, v := range variants {
		ua := &acc.universes[u]
		us := UniverseStats{
			Name:             v.Name,
			CutSize:          v.CutSize,
			IntentionalDraws: v.IntentionalDraws,
		}
		for c, cut := range cfg.CutSizes {
			us.Bubbles = append(us.Bubbles, CutSummary{
				CutSize: cut,
				Summary: ua.bubbles[c].Summarize(acc.trials),
			})
		}
		for r, target := range targets {
			us.Records = append(us.Records, RecordSummary{
				Record:       target.String(),
				Distribution: ua.records[r].Distribution(acc.trials),
			})
		}
		for _, h := range ua.idsPerRound {
			us.IntentionalDrawsPerRound = append(us.IntentionalDrawsPerRound,
				h.Distribution(acc.trials))
		}
		res.Universes[u] = us
	}
	for c, h := range acc.discrepancy {
		res.Discrepancy = append(res.Discrepancy, CutSummary{
			CutSize: cfg.CutSizes[c],
			Summary: h.Summarize(acc.trials),
		})
	}

	return res
}

// RandomSeed returns a non-zero seed from crypto/rand.
func RandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := binary.LittleEndian.Uint64(b[:])
	if seed == 0 {
		seed = 1
	}

	return seed, nil
}

// runTrial plays one event in every universe. Each trial draws from its own
// PCG stream keyed by (seed, trial), so results do not depend on which
// worker runs it.
func runTrial(cfg Config, variants []swiss.Variant, seed uint64,
	trial int) ([]*swiss.Universe, [][]swiss.Player) {

	rng := rand.New(rand.NewPCG(seed, uint64(trial)))
	tour := swiss.NewTournament(cfg.event(), rng, variants...)
	standings := tour.Run()

	return tour.Universes(), standings
}

// RunBatch runs cfg.Simulations independent events across a pool of
// workers and aggregates their statistics. Cancelling ctx stops the batch
// between trials; the returned error then wraps ErrCancelled and, when
// cfg.KeepPartial is set, the result covers the completed trials.
func RunBatch(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings() {
		log.Printf("sim.RunBatch: warning: %v", w)
	}

	seed := cfg.Seed
	if seed == 0 {
		var err error
		seed, err = RandomSeed()
		if err != nil {
			return nil, err
		}
	}
	params := Params{
		Players:          cfg.Players,
		Rounds:           cfg.Rounds,
		DrawPercent:      cfg.DrawPercent,
		CutSizes:         append([]int(nil), cfg.CutSizes...),
		IntentionalDraws: cfg.IntentionalDraws,
		Simulations:      cfg.Simulations,
		Seed:             seed,
	}

	variants := cfg.variants()
	targets := TargetRecords(cfg.Rounds)
	workers := cfg.workers()
	accs := make([]*accumulator, workers)

	var progressLock sync.Mutex
	done := 0
	reportProgress := func() {
		if cfg.Progress == nil {
			return
		}
		progressLock.Lock()
		defer progressLock.Unlock()
		done++
		cfg.Progress(done, cfg.Simulations)
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		acc := newAccumulator(cfg, variants, targets)
		accs[w] = acc
		g.Go(func() error {
			for trial := w; trial < cfg.Simulations; trial += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				universes, standings := runTrial(cfg, variants, seed, trial)
				acc.addTrial(cfg, targets, universes, standings)
				reportProgress()
			}
			return nil
		})
	}
	waitErr := g.Wait()

	merged := accs[0]
	for _, acc := range accs[1:] {
		merged.merge(acc)
	}

	if waitErr != nil {
		err := fmt.Errorf("%w after %v of %v trials: %w", ErrCancelled,
			merged.trials, cfg.Simulations, waitErr)
		if !cfg.KeepPartial {
			return nil, err
		}
		return merged.result(cfg, params, variants, targets), err
	}

	return merged.result(cfg, params, variants, targets), nil
}
