/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatOneIn renders a percentage as an approximate "1 in N" frequency.
func FormatOneIn(pct float64) string {
	switch {
	case pct <= 0.05:
		return fmt.Sprintf("Never (%.1f%%)", pct)
	case pct >= 99.95:
		return fmt.Sprintf("Always (%.1f%%)", pct)
	}
	return fmt.Sprintf("~1 in %v tournaments (%.1f%%)", math.Round(100/pct),
		pct)
}

// ParseIntList parses a comma separated list such as "4,8".
func ParseIntList(s string) ([]int, error) {
	var ret []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid list %q: %w", s, err)
		}
		ret = append(ret, v)
	}

	return ret, nil
}
