/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/mikeb26/swisssim/internal"
	"github.com/mikeb26/swisssim/sim"
)

// this program exists just to seed the result cache with the batches the
// simulate command is most often asked for

// the seed the cached grid is computed with; `swisssim simulate -seed` with
// this value hits the cache
const gridSeed = 20260101

var (
	gridPlayers = []int{16, 24, 32, 48, 64, 96, 128}
	gridRounds  = []int{4, 5, 6, 7}
	gridDraws   = []float64{0, 5, 10}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sims := flag.Int("sims", 10000, "Number of simulated events per batch")
	flag.Parse()

	env, err := internal.LoadEnv()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	if env.NoCache {
		log.Fatalf("SWISSSIM_NO_CACHE is set; nothing to seed")
	}
	cache := internal.NewResultCache(ctx, env)

	for _, players := range gridPlayers {
		for _, rounds := range gridRounds {
			for _, draw := range gridDraws {
				cfg := sim.Config{
					Players:          players,
					Rounds:           rounds,
					DrawPercent:      draw,
					CutSizes:         []int{4, 8},
					IntentionalDraws: true,
					Simulations:      *sims,
					Seed:             gridSeed,
					Workers:          env.Workers,
				}
				_, err := sim.RunBatchCached(ctx, cache, cfg)
				if err != nil {
					if ctx.Err() != nil {
						log.Fatalf("interrupted: %v", err)
					}
					// best effort
					log.Printf("cacheseed: %v players %v rounds draw %v: %v",
						players, rounds, draw, err)
					continue
				}

				fmt.Printf("seeded %v players, %v rounds, draw %v%%\n", players,
					rounds, draw)
			}
		}
	}
}
