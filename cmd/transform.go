package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/feedback"
	"github.com/mockinterview/interview-coach/internal/schema"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Transform a raw metrics JSON document into feedback",
	Run: func(cmd *cobra.Command, _ []string) {
		transform(cmd)
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringP("in", "i", "-", "raw metrics JSON file, - for stdin")
	transformCmd.Flags().StringP("out", "o", "", "write feedback JSON to this file instead of stdout")
	transformCmd.Flags().String("xlsx", "", "also export the feedback to this Excel workbook")
	transformCmd.Flags().String("candidate", "", "candidate name shown in the Excel export")
	transformCmd.Flags().Bool("narrative", false, "ask the configured AI provider for coach notes")
}

func transform(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup("transform")

	in, _ := cmd.Flags().GetString("in")
	raw, err := readMetrics(in, cmd.InOrStdin())
	if err != nil {
		logger.Fatal("reading metrics", zap.String("in", in), zap.Error(err))
	}

	fb := feedback.Transform(raw)
	logger.Info("feedback produced", zap.Int("overall_score", fb.OverallScore))

	narrative := ""
	if want, _ := cmd.Flags().GetBool("narrative"); want {
		narrator, err := newNarrator(ctx, config.AI, logger)
		if err != nil {
			logger.Fatal("building ai narrator", zap.Error(err))
		}
		if narrator == nil {
			logger.Warn("coach notes requested but ai.enabled is false")
		}
		narrative = narrate(ctx, narrator, &fb, logger)
		if narrative != "" {
			logger.Info("coach notes", zap.String("narrative", narrative))
		}
	}

	if err := writeOutput(cmd, &fb); err != nil {
		logger.Fatal("writing feedback", zap.Error(err))
	}

	if path, _ := cmd.Flags().GetString("xlsx"); path != "" {
		candidate, _ := cmd.Flags().GetString("candidate")
		written, err := exportExcel(path, candidate, &fb, narrative)
		if err != nil {
			logger.Fatal("exporting feedback", zap.Error(err))
		}
		logger.Info("exported feedback", zap.String("filename", written))
	}
}

// readMetrics reads and validates a RawMetrics document from path or stdin.
func readMetrics(path string, stdin io.Reader) (feedback.RawMetrics, error) {
	var raw feedback.RawMetrics

	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return raw, err
	}

	if err := schema.ValidateRawMetrics(data); err != nil {
		return raw, err
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return raw, fmt.Errorf("decode metrics: %w", err)
	}

	return raw, nil
}

func writeOutput(cmd *cobra.Command, fb *feedback.Result) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return writeFeedbackJSON(cmd.OutOrStdout(), fb)
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeFeedbackJSON(file, fb)
}
