// Package main provides the entry point for the CV checker CLI and API
// server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_checker",
	Short: "CV vs job posting compatibility analyzer",
	Long:  "cv_checker scores a CV against a job posting using deterministic skill and experience matching blended with semantic judgment, and produces graded reports with actionable recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
