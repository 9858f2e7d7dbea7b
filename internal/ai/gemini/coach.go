package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mockinterview/interview-coach/internal/ai"
	"github.com/mockinterview/interview-coach/internal/feedback"
	"github.com/mockinterview/interview-coach/internal/logger"
	"github.com/mockinterview/interview-coach/internal/utils"
)

const (
	providerName        = "gemini"
	defaultMaxLogLength = 200
	systemInstruction   = "You write concise, supportive interview coaching notes in plain text."
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Coach writes coaching notes for feedback reports with a Gemini model.
type Coach struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Narrator = (*Coach)(nil)

func NewCoach(generator contentGenerator, log *zap.Logger, maxLogLength int) *Coach {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Coach{
		generator: generator,
		logger:    logger.WithCommonFields(log, providerName, generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (c *Coach) Narrate(ctx context.Context, fb *feedback.Result) (*ai.Narrative, error) {
	if fb == nil {
		return nil, errors.New("feedback is required")
	}

	payload, err := json.MarshalIndent(fb, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feedback payload: %w", err)
	}

	prompt := buildPrompt(string(payload))

	c.logger.Debug("gemini generate content request",
		zap.Int(logger.FieldOverallScore, fb.OverallScore),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, c.maxLogLen)),
	)

	raw, err := c.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, c.maxLogLen)),
	)

	text := cleanText(raw)
	if text == "" {
		return nil, errors.New("gemini api returned empty narrative")
	}

	return &ai.Narrative{Text: text, Model: c.generator.Model()}, nil
}

func buildPrompt(feedbackJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Feedback report (JSON):\n{{FEEDBACK_JSON}}\n\nCoaching note:"
	}
	return strings.ReplaceAll(template, "{{FEEDBACK_JSON}}", feedbackJSON)
}

// cleanText drops markdown code fences some models wrap plain answers in.
func cleanText(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		if idx := strings.Index(raw, "\n"); idx != -1 {
			raw = raw[idx+1:]
		} else {
			raw = strings.TrimPrefix(raw, "```")
		}
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}
	return strings.TrimSpace(raw)
}
