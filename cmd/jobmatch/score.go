package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"jobmatch/internal/config"
	"jobmatch/internal/ingestion"
	"jobmatch/internal/pipeline"
)

var (
	resumePath string
	jobPath    string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long: "Read a resume and a job description (plain text or HTML), run the match " +
		"pipeline and print the full result as JSON.",
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&resumePath, "resume", "", "path to the resume file (required)")
	scoreCmd.Flags().StringVar(&jobPath, "job", "", "path to the job description file (required)")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")

	scoreCmd.Flags().Int("top-k-evidence", config.DefaultTopKEvidence, "evidence sentences cited per requirement")
	scoreCmd.Flags().Float64("similarity-threshold", config.DefaultSimilarityThreshold, "minimum similarity for a sentence to count as evidence")
	scoreCmd.Flags().Float64("target-threshold", config.DefaultTargetThreshold, "similarity below which a counterfactual is proposed")
	scoreCmd.Flags().Float64("high-score", config.DefaultHighScore, "score at or above which an interview is recommended")
	scoreCmd.Flags().Float64("low-score", config.DefaultLowScore, "score below which a learning path is suggested")
	scoreCmd.Flags().Float64("min-confidence", config.DefaultMinConfidence, "confidence gating the interview recommendation")
	scoreCmd.Flags().Float64("must-have-weight", config.DefaultMustHaveWeight, "weight of must-have requirements relative to nice-to-haves")

	for _, flag := range []string{"top-k-evidence", "similarity-threshold", "target-threshold", "high-score", "low-score", "min-confidence", "must-have-weight"} {
		_ = viper.BindPFlag(flag, scoreCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts, err := getOptions()
	if err != nil {
		return err
	}

	resumeText, err := ingestion.ReadDocument(resumePath)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	jobText, err := ingestion.ReadDocument(jobPath)
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	log.Debug("documents loaded",
		zap.Int("resume_bytes", len(resumeText)),
		zap.Int("job_bytes", len(jobText)),
	)

	result, err := pipeline.Score(resumeText, jobText, opts)
	if err != nil {
		return err
	}

	log.Info("match computed",
		zap.Float64("score", result.Score),
		zap.Float64("confidence", result.Confidence),
		zap.String("action", string(result.Action)),
		zap.Int("requirements", len(result.Requirements)),
		zap.Int("counterfactuals", len(result.Counterfactuals)),
	)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
