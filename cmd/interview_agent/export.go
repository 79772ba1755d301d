package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-agent/internal/schemas"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the bank document to a file",
	Long:  "Writes the bank document to a destination file and validates it against the question bank schema.",
	RunE:  runExport,
}

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "out", "o", "", "Path to the output JSON file (required)")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	questions := bank.All()

	output, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal question bank: %w", err)
	}

	outputDir := filepath.Dir(exportOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(exportOutput, output, 0644); err != nil {
		return fmt.Errorf("failed to write bank export to %s: %w", exportOutput, err)
	}

	// Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath("schemas/question_bank.schema.json")
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, exportOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Exported %d questions to %s\n", len(questions), exportOutput)
	return nil
}
