package main

import (
	"fmt"

	"github.com/JMMarchant/dnd-demographics/pkg/demographics"
	"github.com/JMMarchant/dnd-demographics/pkg/validation"
)

func printBreakdown(b demographics.Breakdown, expected map[int]float64, population int) {
	fmt.Printf("%5s %15s %15s %10s\n", "Level", "NPCs", "Expected", "Share")
	fmt.Printf("%5s %15s %15s %10s\n", "-----", "---------------", "---------------", "----------")

	levels := b.Levels()
	// Highest level first: the rare entries are the interesting ones.
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		share := 0.0
		if population > 0 {
			share = float64(b[lvl]) / float64(population) * 100
		}
		fmt.Printf("%5d %15s %15.2f %9.4f%%\n", lvl, formatCount(b[lvl]), expected[lvl], share)
	}

	fmt.Printf("\nTotal: %s\n", formatCount(b.Total()))
}

func printResolved(r *demographics.ResolvedDemographics) {
	name := r.WorldName
	if name == "" {
		name = "world"
	}
	fmt.Printf("Demographics for %s\n", name)
	fmt.Printf("Geometric ratio: %.6f (each level %.2fx more common than the one above)\n\n",
		r.GeometricRatio, r.GeometricRatio)

	printBreakdown(r.World, r.Expected, r.TotalPopulation)

	for _, st := range r.Settlements {
		fmt.Println()
		if st.Kind != "" {
			fmt.Printf("%s (%s, population %s)\n", st.Name, st.Kind, formatCount(st.Population))
		} else {
			fmt.Printf("%s (population %s)\n", st.Name, formatCount(st.Population))
		}
		printSettlementLevels(st.Levels)
	}
}

// printSettlementLevels prints a compact one-line-per-level view, skipping
// empty levels above 0.
func printSettlementLevels(b demographics.Breakdown) {
	levels := b.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		lvl := levels[i]
		if b[lvl] == 0 && lvl != 0 {
			continue
		}
		fmt.Printf("  level %2d: %s\n", lvl, formatCount(b[lvl]))
	}
}

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", formatCount(n/1000), n%1000)
}
