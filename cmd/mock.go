package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/feedback"
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Print the feedback for the built-in sample metrics",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _ := setup("mock")

		fb := feedback.Transform(feedback.MockMetrics())
		if err := writeOutput(cmd, &fb); err != nil {
			logger.Fatal("writing feedback", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(mockCmd)

	mockCmd.Flags().StringP("out", "o", "", "write feedback JSON to this file instead of stdout")
}
