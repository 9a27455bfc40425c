/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env is the process configuration shared by every command. Command line
// flags override it.
type Env struct {
	ResultBucket   string `env:"SWISSSIM_RESULT_BUCKET"`
	ResultGzip     bool   `env:"SWISSSIM_RESULT_GZIP" envDefault:"true"`
	CacheLogErrors bool   `env:"SWISSSIM_CACHE_LOG_ERRORS" envDefault:"true"`
	// skip S3 entirely and cache in memory
	NoCache bool `env:"SWISSSIM_NO_CACHE"`
	// 0 means one worker per CPU
	Workers int `env:"SWISSSIM_WORKERS" envDefault:"0"`
}

// LoadEnv reads an optional .env file (SWISSSIM_ENV_FILE, default .env) and
// then parses Env from the environment. Variables already set in the
// environment take precedence over the file.
func LoadEnv() (Env, error) {
	envFile := os.Getenv("SWISSSIM_ENV_FILE")
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil &&
		!errors.Is(err, fs.ErrNotExist) {

		return Env{}, fmt.Errorf("load %v: %w", envFile, err)
	}

	var ret Env
	if err := env.Parse(&ret); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if ret.Workers < 0 {
		return Env{}, fmt.Errorf("parse env: SWISSSIM_WORKERS=%v must not be negative",
			ret.Workers)
	}
	if ret.ResultBucket == "" {
		ret.ResultBucket = DefaultResultBucket
	}

	return ret, nil
}
