/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError describes a single rejected configuration field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %v=%v: %v", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// Config describes one event.
type Config struct {
	NumPlayers            int
	NumRounds             int
	DrawPercent           float64
	CutSize               int
	AllowIntentionalDraws bool
}

func (cfg Config) Validate() error {
	if cfg.NumPlayers < 2 {
		return &ConfigError{"players", cfg.NumPlayers, "need at least 2 players"}
	}
	if cfg.NumRounds < 1 {
		return &ConfigError{"rounds", cfg.NumRounds, "need at least 1 round"}
	}
	if err := ValidateDrawPercent(cfg.DrawPercent); err != nil {
		return err
	}
	if err := ValidateCutSize(cfg.CutSize); err != nil {
		return err
	}

	return nil
}

func ValidateDrawPercent(drawPercent float64) error {
	// written to also reject NaN
	if !(drawPercent >= 0 && drawPercent <= 100) {
		return &ConfigError{"draw", drawPercent, "must be within [0,100]"}
	}
	return nil
}

func ValidateCutSize(cutSize int) error {
	if cutSize < 1 {
		return &ConfigError{"cut", cutSize, "must be at least 1"}
	}
	return nil
}

// Warnings returns non-fatal caveats for cfg.
func (cfg Config) Warnings() []string {
	if !cfg.AllowIntentionalDraws {
		return nil
	}
	if w := PenultimateCutWarning(cfg.CutSize, cfg.NumRounds); w != "" {
		return []string{w}
	}
	return nil
}

// PenultimateCutWarning flags that the penultimate-round draw check always
// projects the rank-7 boundary, which only matches a top 8 cut.
func PenultimateCutWarning(cutSize int, numRounds int) string {
	if numRounds < 2 || cutSize == penultimateCutSize {
		return ""
	}
	return fmt.Sprintf("cut %v: penultimate-round intentional draw check projects the top %v boundary regardless of cut size",
		cutSize, penultimateCutSize)
}
