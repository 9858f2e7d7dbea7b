package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/feedback"
	"github.com/mockinterview/interview-coach/internal/interviewer"
	"github.com/mockinterview/interview-coach/internal/logger"
	"github.com/mockinterview/interview-coach/internal/metrics"
)

const (
	PromptSummary   = "Show summary"
	PromptExamples  = "Show examples"
	PromptResources = "Show resources"
	PromptExport    = "Export to Excel"
	PromptDump      = "Dump feedback to file"
	PromptExit      = "Exit"
)

var errExit = errors.New("exit requested")

var reviewPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptSummary, PromptExamples, PromptResources, PromptExport, PromptDump, PromptExit},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch the interview report from the backend and review the feedback",
	Run: func(cmd *cobra.Command, _ []string) {
		report(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addReportFlags(reportCmd)

	reportCmd.Flags().Int("user-id", 0, "backend user id")
	reportCmd.MarkFlagRequired("user-id")
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "print the summary and exit without asking")
	cmd.Flags().Bool("mock-fallback", false, "use the sample metrics when the backend has no report")
	cmd.Flags().String("candidate", "", "candidate name shown in exports")
}

// review holds everything the interactive loop works on.
type review struct {
	candidate string
	exportDir string
	feedback  *feedback.Result
	narrative string
	out       io.Writer
	logger    *zap.Logger
}

func report(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup("report")

	userID, _ := cmd.Flags().GetInt("user-id")

	client, err := newBackend(config.Backend, logger)
	if err != nil {
		logger.Fatal("creating backend client", zap.Error(err))
	}

	if err := reportFor(ctx, cmd, client, config, logger, userID); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

// reportFor fetches, transforms and reviews the report of userID.
func reportFor(ctx context.Context, cmd *cobra.Command, client *interviewer.Client, config *Config, log *zap.Logger, userID int) error {
	raw, source, err := fetchMetrics(ctx, cmd, client, log, userID)
	if err != nil {
		return err
	}

	fb := feedback.Transform(raw)
	metrics.ObserveFeedback(source, &fb)
	log.Info("feedback produced", logger.FeedbackFields(strconv.Itoa(userID), &fb)...)

	narrator, err := newNarrator(ctx, config.AI, log)
	if err != nil {
		log.Warn("skipping coach notes", zap.Error(err))
	}

	candidate, _ := cmd.Flags().GetString("candidate")

	r := &review{
		candidate: candidate,
		exportDir: config.Export.Dir,
		feedback:  &fb,
		narrative: narrate(ctx, narrator, &fb, log),
		out:       cmd.OutOrStdout(),
		logger:    log,
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return r.handleAction(PromptSummary)
	}

	for {
		_, action, err := reviewPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		if err := r.handleAction(action); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			return err
		}
	}
}

// fetchMetrics returns the report metrics and the source label they came from.
func fetchMetrics(ctx context.Context, cmd *cobra.Command, client *interviewer.Client, log *zap.Logger, userID int) (feedback.RawMetrics, string, error) {
	rep, err := client.GenerateReport(ctx, userID)
	if err == nil {
		if rep.Abbreviated {
			log.Warn("interview was ended early, feedback is limited", zap.Int(logger.FieldUserID, userID))
		}
		return rep.Metrics, metrics.SourceBackend, nil
	}

	if fallback, _ := cmd.Flags().GetBool("mock-fallback"); fallback {
		log.Warn("using sample metrics", zap.Int(logger.FieldUserID, userID), zap.Error(err))
		return feedback.MockMetrics(), metrics.SourceMock, nil
	}

	return feedback.RawMetrics{}, "", fmt.Errorf("getting report: %w", err)
}

func (r *review) handleAction(action string) error {
	switch action {
	case PromptSummary:
		printSummary(r.out, r.feedback, r.narrative)
		return nil
	case PromptExamples:
		printExamples(r.out, r.feedback)
		return nil
	case PromptResources:
		printResources(r.out, r.feedback)
		return nil
	case PromptExport:
		path, err := exportExcel(exportPath(r.exportDir, r.candidate), r.candidate, r.feedback, r.narrative)
		if err != nil {
			return fmt.Errorf("export feedback: %w", err)
		}
		r.logger.Info("exported feedback", zap.String("filename", path))
		return nil
	case PromptDump:
		filename, err := dumpToTmpFile(r.feedback)
		if err != nil {
			return fmt.Errorf("dump feedback to file: %w", err)
		}
		r.logger.Info("dumping feedback to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		r.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
