// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/interview-agent/internal/feedback"
	"github.com/jonathan/interview-agent/internal/selection"
	"github.com/jonathan/interview-agent/internal/store"
	"github.com/jonathan/interview-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSession outputs a human-readable summary of an assembled session.
func (p *Printer) PrintSession(session *selection.Session) {
	if session == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", session.Role))
	sb.WriteString(fmt.Sprintf("Questions: %d\n", len(session.Questions)))
	sb.WriteString("\n")

	for i, q := range session.Questions {
		sb.WriteString(fmt.Sprintf("%d. [%s/%s] %s\n", i+1, q.Difficulty, q.Category, q.Question))
	}

	p.printBox(fmt.Sprintf("Session %s", session.ID), sb.String())
}

// PrintFeedback outputs a human-readable summary of one feedback record.
func (p *Printer) PrintFeedback(record *feedback.Record) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %.1f / 100\n", record.Score))
	sb.WriteString(fmt.Sprintf("Source: %s\n", record.Source))
	sb.WriteString("\n")
	sb.WriteString(record.Feedback)
	sb.WriteString("\n")

	if len(record.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(record.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Strengths[i]))
		}
	}
	if len(record.Improvements) > 0 {
		sb.WriteString("\nImprovements:\n")
		count := min(len(record.Improvements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", record.Improvements[i]))
		}
	}

	p.printBox(fmt.Sprintf("Question %d", record.QuestionID), sb.String())
}

// PrintAnalytics outputs a human-readable summary of the bank analytics.
func (p *Printer) PrintAnalytics(report *store.Analytics) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Questions:     %d\n", report.TotalQuestions))
	sb.WriteString(fmt.Sprintf("Total usage:   %d\n", report.TotalUsage))
	sb.WriteString(fmt.Sprintf("Avg. quality:  %.3f\n", report.AverageEffectiveness))
	sb.WriteString("\nBy difficulty:\n")
	for _, difficulty := range types.DifficultyProgression {
		if n, ok := report.DifficultyDistribution[string(difficulty)]; ok {
			sb.WriteString(fmt.Sprintf("  %-14s %d\n", difficulty, n))
		}
	}
	sb.WriteString("\nTop questions:\n")
	for _, top := range report.TopQuestions {
		sb.WriteString(fmt.Sprintf("  %.3f  #%d %s\n", top.Effectiveness, top.ID, top.Question))
	}

	p.printBox("Question Bank Analytics", sb.String())
}
