package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dndpop",
		Short: "Levelled NPC demographics for fantasy world populations",
	}

	rootCmd.AddCommand(demographicCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func demographicCmd() *cobra.Command {
	var (
		population int
		levels     int
		ratio      float64
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "demographic",
		Short: "Compute the level breakdown for a single population",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemographic(population, levels, ratio, seed)
		},
	}
	cmd.Flags().IntVar(&population, "population", 0, "population to distribute across levels")
	cmd.Flags().IntVar(&levels, "levels", 20, "number of non-zero levels")
	cmd.Flags().Float64Var(&ratio, "ratio", 1_000_000, "one in this many NPCs reaches the top level")
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed seed for reproducible rounding (0 = random)")
	cmd.MarkFlagRequired("population")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a world project's spec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func resolveCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "resolve [project-path]",
		Short: "Compute world and settlement level breakdowns for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], seed)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "fixed seed for reproducible rounding (0 = random)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Serve a world project over a local HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(args[0], port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default from DNDPOP_PORT, else 8080)")
	return cmd
}
