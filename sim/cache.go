/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
)

// Cache stores encoded results by key. It is the method set of
// httpcache.Cache, so s3cache.Cache and httpcache.NewMemoryCache() both
// satisfy it.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, data []byte)
}

// bump when the encoded Result changes shape
const cacheKeyVersion = 1

// CacheKey identifies the result cfg deterministically produces. Execution
// settings that do not change the result (workers, progress, partial
// results) are excluded.
func CacheKey(cfg Config) string {
	keyed := struct {
		Version int
		Params
	}{
		Version: cacheKeyVersion,
		Params: Params{
			Players:          cfg.Players,
			Rounds:           cfg.Rounds,
			DrawPercent:      cfg.DrawPercent,
			CutSizes:         cfg.CutSizes,
			IntentionalDraws: cfg.IntentionalDraws,
			Simulations:      cfg.Simulations,
			Seed:             cfg.Seed,
		},
	}
	// marshalling a struct of plain fields cannot fail
	data, _ := json.Marshal(keyed)
	sum := sha256.Sum256(data)

	return "batch-" + hex.EncodeToString(sum[:])
}

// RunBatchCached returns the cached result for cfg if present, otherwise
// runs the batch and caches it. Only seeded configurations are cached
// since an unseeded run is never reproduced; cancelled and partial results
// are never cached.
func RunBatchCached(ctx context.Context, cache Cache, cfg Config) (*Result,
	error) {

	if cache == nil || cfg.Seed == 0 {
		return RunBatch(ctx, cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := CacheKey(cfg)
	if data, ok := cache.Get(key); ok {
		var res Result
		err := json.Unmarshal(data, &res)
		if err == nil {
			return &res, nil
		}
		log.Printf("sim.RunBatchCached: discarding corrupt entry %v: %v", key,
			err)
	}

	res, err := RunBatch(ctx, cfg)
	if err != nil {
		return res, err
	}
	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("sim.RunBatchCached: encode %v: %w", key, err)
	}
	cache.Set(key, data)

	return res, nil
}
