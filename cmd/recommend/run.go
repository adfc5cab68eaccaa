package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"oaknee-backend/internal/assessments"
	"oaknee-backend/internal/exercises"
	"oaknee-backend/internal/recommend"
)

type runOptions struct {
	answersPath string
	stsPath     string
	catalogPath string
	compact     bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute recommendations and print the result JSON",
		Long: `Reads questionnaire answers and a sit-to-stand assessment (JSON files),
ranks positions and exercises, and prints the result. Without --catalog the
built-in seed catalog is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.answersPath, "answers", "", "questionnaire answers JSON file (required)")
	cmd.Flags().StringVar(&opts.stsPath, "sts", "", "sit-to-stand assessment JSON file (required)")
	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "", "exercise catalog YAML/JSON file")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "print compact JSON")
	_ = cmd.MarkFlagRequired("answers")
	_ = cmd.MarkFlagRequired("sts")
	return cmd
}

// runRecommend validates the files with the same rules as the HTTP API, so
// codes are lowercased and case-colliding codes are rejected here too.
func runRecommend(cmd *cobra.Command, opts *runOptions) error {
	var sub assessments.Submission
	if err := readJSON(opts.answersPath, &sub.Questionnaire); err != nil {
		return err
	}
	if err := readJSON(opts.stsPath, &sub.STS); err != nil {
		return err
	}
	if err := assessments.ValidateSubmission(sub); err != nil {
		return err
	}
	answers, sts := sub.EngineInputs()

	catalog, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return err
	}

	result, err := recommend.Calculate(answers, sts, catalog)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(result)
}

func loadCatalog(path string) ([]recommend.Exercise, error) {
	if path == "" {
		return exercises.SeedCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return exercises.DecodeCatalog(data)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
