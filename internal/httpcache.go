/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"context"
	"log"

	"github.com/gregjones/httpcache"
	"github.com/mikeb26/swisssim/s3cache"
)

// NewResultCache returns an S3-backed cache for batch results. If the
// bucket cannot be reached it falls back to an in-memory cache instead of no
// cache, so repeated batches within one process are still shared.
func NewResultCache(ctx context.Context, e Env) httpcache.Cache {
	if e.NoCache || e.ResultBucket == "" {
		return httpcache.NewMemoryCache()
	}

	cache := s3cache.New(ctx, s3cache.Options{
		Bucket:    e.ResultBucket,
		Gzip:      e.ResultGzip,
		LogErrors: e.CacheLogErrors,
	})
	if err := cache.Init(); err != nil {
		log.Printf("internal.NewResultCache: warning failed to init S3 cache: %v; falling back to in-memory cache",
			err)
		return httpcache.NewMemoryCache()
	}

	return cache
}
