/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"math"
	"sort"
)

// Histogram counts how many trials observed each integer value.
type Histogram map[int]int

func (h Histogram) Add(value int) {
	h[value]++
}

func (h Histogram) Merge(other Histogram) {
	for v, c := range other {
		h[v] += c
	}
}

func (h Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

func (h Histogram) values() []int {
	ret := make([]int, 0, len(h))
	for v := range h {
		ret = append(ret, v)
	}
	sort.Ints(ret)

	return ret
}

// nth returns the idx'th smallest observation (0-indexed).
func (h Histogram) nth(idx int) int {
	seen := 0
	for _, v := range h.values() {
		seen += h[v]
		if idx < seen {
			return v
		}
	}
	panic("BUG: histogram index out of range")
}

// Bucket is one value of a distribution. Percent is relative to the number
// of trials and rounded to one decimal.
type Bucket struct {
	Value   int     `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution is ordered by ascending Value.
type Distribution []Bucket

// Percent returns the percentage recorded for value, if any.
func (d Distribution) Percent(value int) (float64, bool) {
	for _, b := range d {
		if b.Value == value {
			return b.Percent, true
		}
	}
	return 0, false
}

// Distribution converts h to percentages of trials.
func (h Histogram) Distribution(trials int) Distribution {
	ret := make(Distribution, 0, len(h))
	for _, v := range h.values() {
		ret = append(ret, Bucket{
			Value:   v,
			Count:   h[v],
			Percent: percentOf(h[v], trials),
		})
	}

	return ret
}

// Summary is the average, median, and non-zero frequency of a per-trial
// statistic together with its distribution.
type Summary struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	// percent of trials with a value > 0
	Frequency    float64      `json:"frequency"`
	Distribution Distribution `json:"distribution"`
}

func (h Histogram) Summarize(trials int) Summary {
	n := h.Total()
	if n == 0 {
		return Summary{Distribution: Distribution{}}
	}

	sum, nonZero := 0, 0
	for v, c := range h {
		sum += v * c
		if v > 0 {
			nonZero += c
		}
	}

	var median float64
	if n%2 == 1 {
		median = float64(h.nth(n / 2))
	} else {
		median = float64(h.nth(n/2-1)+h.nth(n/2)) / 2
	}

	return Summary{
		Average:      float64(sum) / float64(n),
		Median:       median,
		Frequency:    percentOf(nonZero, n),
		Distribution: h.Distribution(trials),
	}
}

func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(1000*float64(count)/float64(total)) / 10
}
