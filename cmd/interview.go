package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/interviewer"
)

// endCommand lets the candidate stop the chat without relying on the
// backend recognising a closing phrase.
const endCommand = "/end"

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview against the backend and review the feedback",
	Run: func(cmd *cobra.Command, _ []string) {
		interview(cmd)
	},
}

func init() {
	rootCmd.AddCommand(interviewCmd)
	addReportFlags(interviewCmd)

	interviewCmd.Flags().Int("user-id", 0, "backend user id")
	interviewCmd.Flags().String("job-description", "", "job description the interview is tailored to")
	interviewCmd.Flags().String("resume", "", "resume file to upload before the interview")
	interviewCmd.Flags().String("type", interviewer.DefaultInterviewType, "interview type: technical, behavioral or hr")
	interviewCmd.Flags().String("company", "", "target company")
	interviewCmd.Flags().String("role", "", "target role")
	interviewCmd.Flags().String("skill", "", "skill to focus on")
	interviewCmd.Flags().String("round", "", "interview round")

	interviewCmd.MarkFlagRequired("user-id")
	interviewCmd.MarkFlagRequired("job-description")
}

func interview(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup("interview")

	client, err := newBackend(config.Backend, logger)
	if err != nil {
		logger.Fatal("creating backend client", zap.Error(err))
	}

	flags := cmd.Flags()
	userID, _ := flags.GetInt("user-id")
	jobDescription, _ := flags.GetString("job-description")

	if resume, _ := flags.GetString("resume"); resume != "" {
		details, err := client.UploadResume(ctx, interviewer.UploadResumeRequest{
			Path:           resume,
			JobDescription: jobDescription,
			UserID:         userID,
		})
		if err != nil {
			logger.Fatal("uploading resume", zap.Error(err))
		}
		logger.Info("resume uploaded", zap.Any("details", details.Details))
	}

	req := interviewer.StartInterviewRequest{
		UserID:         userID,
		JobDescription: jobDescription,
	}
	req.InterviewType, _ = flags.GetString("type")
	req.Company, _ = flags.GetString("company")
	req.Role, _ = flags.GetString("role")
	req.Skill, _ = flags.GetString("skill")
	req.Round, _ = flags.GetString("round")

	session, err := client.StartInterview(ctx, req)
	if err != nil {
		logger.Fatal("starting interview", zap.Error(err))
	}

	if err := chat(ctx, cmd, client, logger, userID, session.Question); err != nil {
		logger.Fatal("interview chat", zap.Error(err))
	}

	if err := reportFor(ctx, cmd, client, config, logger, userID); err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

// chat runs the question and answer loop until the interview ends.
func chat(ctx context.Context, cmd *cobra.Command, client *interviewer.Client, logger *zap.Logger, userID int, question string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Type %s to finish the interview.\n", endCommand)

	for {
		fmt.Fprintf(out, "\nInterviewer: %s\n", question)

		answerPrompt := promptui.Prompt{
			Label: "You",
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("answer must not be empty")
				}
				return nil
			},
		}

		answer, err := answerPrompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				logger.Info("interview stopped", zap.String("reason", "prompt closed"))
				return nil
			}
			return err
		}

		if strings.TrimSpace(answer) == endCommand {
			logger.Info("interview stopped", zap.String("reason", "end command"))
			return nil
		}

		reply, err := client.SendChat(ctx, interviewer.ChatRequest{Message: answer, UserID: userID})
		if err != nil {
			logger.Warn("chat message failed", zap.Error(err))
		}
		if reply == nil {
			return err
		}

		question = reply.Response
		if reply.EndInterview {
			fmt.Fprintf(out, "\nInterviewer: %s\n", question)
			logger.Info("interview finished by the interviewer")
			return nil
		}
	}
}
