/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/mikeb26/swisssim/internal"
	"github.com/mikeb26/swisssim/sim"
	"github.com/mikeb26/swisssim/swiss"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, env internal.Env, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":     handleHelp,
	"simulate": handleSimulate,
	"sweep":    handleSweep,
	"leader":   handleLeader,
	"event":    handleEvent,
	"version":  handleVersion,
}

func init() {
	log.SetFlags(0)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	env, err := internal.LoadEnv()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, env, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, env internal.Env, args []string) {
	usage()
}

func handleVersion(ctx context.Context, env internal.Env, args []string) {
	fmt.Printf("swisssim %v\n", internal.Version)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Error encoding output: %v", err)
	}
}

// progressPrinter reports roughly every percent of total on stderr.
func progressPrinter(label string) func(done, total int) {
	return func(done, total int) {
		step := total / 100
		if step < 1 {
			step = 1
		}
		if done%step != 0 && done != total {
			return
		}
		fmt.Fprintf(os.Stderr, "\r%v: %v/%v", label, done, total)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	}
}

func handleSimulate(ctx context.Context, env internal.Env, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	players := fs.Int("players", 32, "Number of players")
	rounds := fs.Int("rounds", 5, "Number of rounds")
	draw := fs.Float64("draw", 5, "Chance of a natural draw in percent (0-100)")
	cuts := fs.String("cuts", "4,8", "Comma separated cut sizes")
	ids := fs.Bool("ids", true, "Simulate intentional draws for each cut size")
	sims := fs.Int("sims", 10000, "Number of simulated events")
	seed := fs.Uint64("seed", 0, "Random seed; 0 picks one")
	workers := fs.Int("workers", env.Workers, "Worker goroutines; 0 uses every CPU")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	progress := fs.Bool("progress", false, "Report progress on stderr")
	partial := fs.Bool("partial", false, "Print completed trials when interrupted")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	cutSizes, err := internal.ParseIntList(*cuts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Please provide valid --cuts: %v\n", err)
		fs.Usage()
		os.Exit(1)
	}

	cfg := sim.Config{
		Players:          *players,
		Rounds:           *rounds,
		DrawPercent:      *draw,
		CutSizes:         cutSizes,
		IntentionalDraws: *ids,
		Simulations:      *sims,
		Seed:             *seed,
		Workers:          *workers,
		KeepPartial:      *partial,
	}
	if *progress {
		cfg.Progress = progressPrinter("simulate")
	}

	var cache sim.Cache
	if cfg.Seed != 0 {
		cache = internal.NewResultCache(ctx, env)
	}
	res, err := sim.RunBatchCached(ctx, cache, cfg)
	if err != nil && !(errors.Is(err, sim.ErrCancelled) && res != nil) {
		log.Fatalf("Error running simulation: %v", err)
	}

	if *asJSON {
		printJSON(res)
	} else {
		fmt.Print(sim.BuildReport(res))
	}
	if err != nil {
		log.Fatalf("Simulation interrupted: %v", err)
	}
}

func handleSweep(ctx context.Context, env internal.Env, args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	minPlayers := fs.Int("minplayers", 8, "Smallest player count")
	maxPlayers := fs.Int("maxplayers", 128, "Largest player count")
	step := fs.Int("step", 8, "Player count increment")
	rounds := fs.Int("rounds", 5, "Number of rounds")
	draw := fs.Float64("draw", 5, "Chance of a natural draw in percent (0-100)")
	cut := fs.Int("cut", 8, "Cut size")
	sims := fs.Int("sims", 2000, "Number of simulated events per player count")
	seed := fs.Uint64("seed", 0, "Random seed; 0 picks one")
	workers := fs.Int("workers", env.Workers, "Concurrent batches; 0 uses every CPU")
	out := fs.String("o", "-", "CSV output file; - for stdout")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	base := sim.Config{
		Rounds:      *rounds,
		DrawPercent: *draw,
		CutSizes:    []int{*cut},
		Simulations: *sims,
		Seed:        *seed,
		Workers:     *workers,
		Progress:    progressPrinter("sweep"),
	}
	sr, err := sim.Sweep(ctx, base, *minPlayers, *maxPlayers, *step)
	if err != nil {
		log.Fatalf("Error running sweep: %v", err)
	}

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Error creating %v: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	if err := sim.WriteBubbleCSV(w, sr); err != nil {
		log.Fatalf("Error writing csv: %v", err)
	}
	fmt.Fprintf(os.Stderr, "sweep seed: %v\n", sr.Seed)
}

func handleLeader(ctx context.Context, env internal.Env, args []string) {
	fs := flag.NewFlagSet("leader", flag.ExitOnError)
	players := fs.Int("players", 64, "Number of players")
	draw := fs.Float64("draw", 5, "Chance of a natural draw in percent (0-100)")
	target := fs.Float64("target", 0.9, "Target probability of a sole leader (0-1)")
	sims := fs.Int("sims", 3000, "Number of simulated events per round count")
	maxRounds := fs.Int("maxrounds", 25, "Largest round count to try")
	seed := fs.Uint64("seed", 0, "Random seed; 0 picks one per round count")
	workers := fs.Int("workers", env.Workers, "Worker goroutines; 0 uses every CPU")
	asJSON := fs.Bool("json", false, "Print the result as JSON")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := sim.Config{
		Players:     *players,
		DrawPercent: *draw,
		Simulations: *sims,
		Seed:        *seed,
		Workers:     *workers,
	}
	res, err := sim.RoundsForSingleLeader(ctx, cfg, *target, *maxRounds)
	if err != nil {
		log.Fatalf("Error running leader analysis: %v", err)
	}
	if *asJSON {
		printJSON(res)
		return
	}

	fmt.Printf("Players: %v, Draw: %v%%, Target P(single leader): %.0f%%, Sims: %v\n",
		*players, *draw, 100*(*target), *sims)
	if res.Reached {
		fmt.Printf("Rounds needed for >=%.0f%% single leader: %v\n",
			100*(*target), res.Rounds)
	} else {
		fmt.Printf("Target not reached within %v rounds\n", res.Rounds)
	}
	fmt.Printf("Empirical P(single leader) at %v rounds: %.1f%%\n", res.Rounds,
		100*res.Probability)
	fmt.Println("By round (round, P(single leader)):")
	for _, rp := range res.ByRound {
		fmt.Printf("  %v: %.1f%%\n", rp.Rounds, 100*rp.Probability)
	}
}

func handleEvent(ctx context.Context, env internal.Env, args []string) {
	fs := flag.NewFlagSet("event", flag.ExitOnError)
	players := fs.Int("players", 32, "Number of players")
	rounds := fs.Int("rounds", 5, "Number of rounds")
	draw := fs.Float64("draw", 5, "Chance of a natural draw in percent (0-100)")
	cut := fs.Int("cut", 8, "Cut size")
	ids := fs.Bool("ids", true, "Also play the event with intentional draws")
	seed := fs.Uint64("seed", 0, "Random seed; 0 picks one")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := swiss.Config{
		NumPlayers:            *players,
		NumRounds:             *rounds,
		DrawPercent:           *draw,
		CutSize:               *cut,
		AllowIntentionalDraws: *ids,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}
	for _, w := range cfg.Warnings() {
		log.Printf("warning: %v", w)
	}
	if *seed == 0 {
		s, err := sim.RandomSeed()
		if err != nil {
			log.Fatalf("Error picking seed: %v", err)
		}
		*seed = s
	}

	tour := swiss.NewTournament(cfg, rand.New(rand.NewPCG(*seed, 0)))
	standings := tour.Run()
	fmt.Printf("Seed: %v\n", *seed)
	for i, u := range tour.Universes() {
		fmt.Printf("\n%v\n", u.Name)
		for _, rs := range u.Rounds {
			if rs.IntentionalDraws > 0 {
				fmt.Printf("  round %v: %v intentional draws\n", rs.Round,
					rs.IntentionalDraws)
			}
		}
		fmt.Print(swiss.BuildStandingsOutput(standings[i], *cut))
	}
}
