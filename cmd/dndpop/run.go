package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/JMMarchant/dnd-demographics/internal/server"
	"github.com/JMMarchant/dnd-demographics/pkg/demographics"
	"github.com/JMMarchant/dnd-demographics/pkg/spec"
	"github.com/JMMarchant/dnd-demographics/pkg/validation"
)

// rngForSeed returns a seeded source for reproducible runs, or nil to use
// the process-wide source.
func rngForSeed(seed int64) demographics.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func runDemographic(population, levels int, ratio float64, seed int64) error {
	if population < 0 {
		return fmt.Errorf("population must be non-negative (got %d)", population)
	}

	cfg := demographics.Config{TopLevelRatio: ratio, NumLevels: levels}
	breakdown, err := demographics.Allocate(population, cfg, rngForSeed(seed))
	if err != nil {
		return fmt.Errorf("computing demographic: %w", err)
	}
	expected, err := demographics.Expected(population, cfg)
	if err != nil {
		return fmt.Errorf("computing expected counts: %w", err)
	}

	fmt.Printf("Level breakdown for a population of %s (1 in %s at level %d)\n\n",
		formatCount(population), formatCount(int(ratio)), levels)
	printBreakdown(breakdown, expected, population)
	return nil
}

func loadAndValidate(projectPath string) (*spec.WorldSpec, *validation.Report, error) {
	worldSpec, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	schemaReport := validation.ValidateSchema(worldSpec)
	return worldSpec, schemaReport, nil
}

func runValidate(projectPath string) error {
	worldSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	// Run resolution for analytical validation
	if schemaReport.Valid {
		_, resolveReport := demographics.Resolve(worldSpec, nil)
		schemaReport.Merge(resolveReport)
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runResolve(projectPath string, seed int64) error {
	worldSpec, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("spec has validation errors")
	}

	resolved, resolveReport := demographics.Resolve(worldSpec, rngForSeed(seed))
	if resolved == nil {
		printValidationReport(resolveReport)
		return fmt.Errorf("resolution failed")
	}

	printResolved(resolved)

	if len(resolveReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(resolveReport)
	}
	return nil
}

func runServe(projectPath string, port int) error {
	if port == 0 {
		cfg, err := server.ConfigFromEnv()
		if err != nil {
			return fmt.Errorf("reading server config: %w", err)
		}
		port = cfg.Port
	}
	return server.New(projectPath, port).Start()
}
