// Package main provides the interview_agent CLI: question bank management,
// adaptive session assembly and response evaluation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Adaptive interview question bank",
	Long:  "interview_agent maintains a bank of interview questions with usage and effectiveness statistics, assembles difficulty-balanced sessions per candidate role, and feeds evaluation scores back into the bank.",
}

var (
	flagBank    string
	flagConfig  string
	flagVerbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBank, "bank", "b", "", "Path to the question bank JSON document")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed session information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
