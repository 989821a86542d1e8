// Package main provides the entry point for the jobmatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const app = "jobmatch"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "jobmatch scores a resume against a job description",
	Long: "jobmatch matches a candidate resume against a job description, producing " +
		"a match score, per-requirement evidence, non-fabricated edit suggestions " +
		"and a recommended next action.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
