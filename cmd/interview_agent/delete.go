package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a question from the bank",
	Long:  "Hard-deletes a question by id. The id is never reused by later creates.",
	RunE:  runDelete,
}

var deleteID int64

func init() {
	deleteCmd.Flags().Int64VarP(&deleteID, "id", "i", 0, "Question id (required)")

	if err := deleteCmd.MarkFlagRequired("id"); err != nil {
		panic(fmt.Sprintf("failed to mark id flag as required: %v", err))
	}

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	bank := openBank(cfg)
	removed, err := bank.Delete(deleteID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("question %d not found in %s", deleteID, bank.Path())
	}

	_, _ = fmt.Fprintf(os.Stdout, "Deleted question %d from %s\n", deleteID, bank.Path())
	return nil
}
