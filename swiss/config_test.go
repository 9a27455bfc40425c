/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{NumPlayers: 8, NumRounds: 3, DrawPercent: 0, CutSize: 1}
	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"valid", valid, ""},
		{"players", Config{NumPlayers: 1, NumRounds: 3, CutSize: 1}, "players"},
		{"rounds", Config{NumPlayers: 8, NumRounds: 0, CutSize: 1}, "rounds"},
		{"draw", Config{NumPlayers: 8, NumRounds: 3, DrawPercent: 101,
			CutSize: 1}, "draw"},
		{"cut", Config{NumPlayers: 8, NumRounds: 3}, "cut"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) || cerr.Field != c.field ||
				!errors.Is(err, ErrInvalidConfig) {

				t.Errorf("Validate() = %v; want %v error", err, c.field)
			}
		})
	}
}

func TestConfigWarnings(t *testing.T) {
	cfg := Config{NumPlayers: 32, NumRounds: 5, CutSize: 4}
	if w := cfg.Warnings(); w != nil {
		t.Errorf("warned without intentional draws: %v", w)
	}
	cfg.AllowIntentionalDraws = true
	if w := cfg.Warnings(); len(w) != 1 {
		t.Errorf("Warnings() = %v; want one", w)
	}
	cfg.CutSize = 8
	if w := cfg.Warnings(); w != nil {
		t.Errorf("warned for cut 8: %v", w)
	}
}
