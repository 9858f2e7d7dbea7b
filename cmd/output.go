package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/ai"
	"github.com/mockinterview/interview-coach/internal/export"
	"github.com/mockinterview/interview-coach/internal/feedback"
)

const narrateTimeout = 60 * time.Second

func writeFeedbackJSON(w io.Writer, fb *feedback.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fb)
}

func dumpToTmpFile(fb *feedback.Result) (string, error) {
	file, err := os.CreateTemp("", "feedback_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := writeFeedbackJSON(file, fb); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// exportPath picks a unique workbook name in dir.
func exportPath(dir, candidate string) string {
	name := "feedback"
	if candidate = strings.TrimSpace(candidate); candidate != "" {
		name += "_" + strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
				return r
			}
			return '_'
		}, candidate)
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%s.xlsx", name, uuid.NewString()[:8]))
}

func exportExcel(path, candidate string, fb *feedback.Result, narrative string) (string, error) {
	return export.ToExcel(fb, export.Meta{
		Candidate:   candidate,
		GeneratedAt: time.Now(),
		Narrative:   narrative,
	}, path)
}

// narrate returns an empty string when narratives are disabled or fail.
func narrate(ctx context.Context, narrator ai.Narrator, fb *feedback.Result, logger *zap.Logger) string {
	if narrator == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, narrateTimeout)
	defer cancel()

	narrative, err := narrator.Narrate(ctx, fb)
	if err != nil {
		logger.Warn("skipping coach notes", zap.Error(err))
		return ""
	}

	return narrative.Text
}

func printSummary(w io.Writer, fb *feedback.Result, narrative string) {
	fmt.Fprintf(w, "Overall score: %d%%\n\n", fb.OverallScore)

	for _, c := range fb.Categories {
		fmt.Fprintf(w, "%-20s %3d%%  %s\n", c.Name, c.Score, c.Feedback)
	}

	printList(w, "Strengths", fb.Strengths)
	printList(w, "Areas to improve", fb.Improvements)

	if narrative != "" {
		fmt.Fprintf(w, "\nCoach notes:\n%s\n", narrative)
	}
}

func printExamples(w io.Writer, fb *feedback.Result) {
	if len(fb.Examples.Strong) == 0 && len(fb.Examples.NeedsImprovement) == 0 {
		fmt.Fprintln(w, "No answered questions to show.")
		return
	}

	for _, ex := range fb.Examples.Strong {
		fmt.Fprintf(w, "[strong] %s\n  Answer: %s\n  Why: %s\n\n", ex.Question, ex.Answer, ex.Reason)
	}
	for _, ex := range fb.Examples.NeedsImprovement {
		fmt.Fprintf(w, "[needs improvement] %s\n  Answer: %s\n  %s\n\n", ex.Question, ex.Answer, ex.BetterApproach)
	}
}

func printResources(w io.Writer, fb *feedback.Result) {
	for _, r := range fb.Resources {
		fmt.Fprintf(w, "- %s: %s\n", r.Title, r.Description)
		if r.Link != "" {
			fmt.Fprintf(w, "  %s\n", r.Link)
		}
	}
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "- %s\n", item)
	}
}
