/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package sim

import (
	"fmt"
	"strings"

	"github.com/mikeb26/swisssim/internal"
)

// BuildReport renders res as plain text.
func BuildReport(res *Result) string {
	var sb strings.Builder
	p := res.Params

	sb.WriteString(fmt.Sprintf("Params: %v players, %v rounds, draw %v%%, %v sims, seed %v\n",
		p.Players, p.Rounds, p.DrawPercent, p.Simulations, p.Seed))
	if res.Trials < p.Simulations {
		sb.WriteString(fmt.Sprintf("Partial result: %v of %v trials completed\n",
			res.Trials, p.Simulations))
	}
	for _, w := range res.Warnings {
		sb.WriteString(fmt.Sprintf("Warning: %v\n", w))
	}

	if len(res.Discrepancy) > 0 {
		sb.WriteString("\n--- Impact of intentional draws (pushed out of cut) ---\n")
		for _, d := range res.Discrepancy {
			sb.WriteString(fmt.Sprintf("top %v: avg pushed out = %.2f, median = %.2f\n",
				d.CutSize, d.Average, d.Median))
			writeDistribution(&sb, d.Distribution, "pushed out")
		}
	}

	for _, u := range res.Universes {
		sb.WriteString(fmt.Sprintf("\n--- Bubble (%v) ---\n", u.Name))
		for _, b := range u.Bubbles {
			sb.WriteString(fmt.Sprintf("top %v: avg bubble = %.2f, median = %.2f, frequency = %.1f%%\n",
				b.CutSize, b.Average, b.Median, b.Frequency))
			writeDistribution(&sb, b.Distribution, "bubble")
		}
	}

	for _, u := range res.Universes {
		sb.WriteString(fmt.Sprintf("\n--- Record analysis (%v) ---\n", u.Name))
		for _, r := range u.Records {
			sb.WriteString(fmt.Sprintf("%v or better:\n", r.Record))
			writeDistribution(&sb, r.Distribution, "players")
		}
	}

	for _, u := range res.Universes {
		if len(u.IntentionalDrawsPerRound) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n--- Intentional draws per round (%v) ---\n",
			u.Name))
		rows := make([][]string, 0, len(u.IntentionalDrawsPerRound))
		for idx, dist := range u.IntentionalDrawsPerRound {
			avg, maxIDs, anyPct := 0.0, 0, 0.0
			for _, b := range dist {
				if res.Trials > 0 {
					avg += float64(b.Value*b.Count) / float64(res.Trials)
				}
				if b.Value > maxIDs {
					maxIDs = b.Value
				}
				if b.Value > 0 {
					anyPct += b.Percent
				}
			}
			rows = append(rows, []string{
				fmt.Sprintf("%v", idx+1),
				fmt.Sprintf("%.2f", avg),
				fmt.Sprintf("%v", maxIDs),
				fmt.Sprintf("%.1f%%", anyPct),
			})
		}
		writeTable(&sb, []string{"Round", "Avg", "Max", "Any"}, rows)
	}

	sb.WriteString(fmt.Sprintf("\n--- Leaders (%v) ---\n", res.Universes[0].Name))
	soleLeader, _ := res.Leaders.Distribution.Percent(1)
	sb.WriteString(fmt.Sprintf("tied for first: avg = %.2f, median = %.2f, sole leader = %.1f%%\n",
		res.Leaders.Average, res.Leaders.Median, soleLeader))

	return sb.String()
}

func writeDistribution(sb *strings.Builder, dist Distribution, unit string) {
	rows := make([][]string, 0, len(dist))
	for _, b := range dist {
		rows = append(rows, []string{
			fmt.Sprintf("%v %v", b.Value, unit),
			internal.FormatOneIn(b.Percent),
		})
	}
	writeTable(sb, nil, rows)
}

// writeTable left aligns every column to its widest cell, indented by two
// spaces. A nil header is omitted.
func writeTable(sb *strings.Builder, header []string, rows [][]string) {
	var widths []int
	measure := func(cells []string) {
		for i, c := range cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	line := func(cells []string) {
		var lb strings.Builder
		lb.WriteString("  ")
		for i, c := range cells {
			if i > 0 {
				lb.WriteString("  ")
			}
			lb.WriteString(fmt.Sprintf("%-*s", widths[i], c))
		}
		sb.WriteString(strings.TrimRight(lb.String(), " "))
		sb.WriteString("\n")
	}
	if header != nil {
		line(header)
	}
	for _, r := range rows {
		line(r)
	}
}
