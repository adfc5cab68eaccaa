package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oaknee-backend/internal/recommend"
)

func newBenchmarkCmd() *cobra.Command {
	var (
		age    int
		gender string
		reps   int
	)
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Classify a 30-second sit-to-stand count against age/gender norms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if age < 0 || reps < 0 {
				return fmt.Errorf("age and reps must be non-negative")
			}
			b := recommend.LookupSTSBenchmark(age, recommend.Gender(gender))
			score := recommend.CalculateSTSScore(reps, age, recommend.Gender(gender))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "benchmark:   %s (below <= %d, above >= %d)\n", b.Range(), b.Below, b.Above)
			fmt.Fprintf(out, "performance: %s\n", score.Performance)
			fmt.Fprintf(out, "normalized:  %.2f\n", score.NormalizedScore)
			return nil
		},
	}
	cmd.Flags().IntVar(&age, "age", 65, "age in years")
	cmd.Flags().StringVar(&gender, "gender", "female", "male or female")
	cmd.Flags().IntVar(&reps, "reps", 0, "repetitions completed in 30 seconds")
	return cmd
}
