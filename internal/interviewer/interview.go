package interviewer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultInterviewType = "technical"

	// Greeting is used when the backend starts an interview without a question.
	Greeting = "Hello! I'll be conducting your interview today. Could you start by telling me a bit about yourself and your background?"
	// FallbackReply stands in for an interviewer turn that could not be fetched.
	FallbackReply = "I'm having trouble understanding. Could you tell me more about your experience?"
)

type StartInterviewRequest struct {
	UserID         int    `json:"user_id" validate:"required,gt=0"`
	JobDescription string `json:"job_description" validate:"required"`
	InterviewType  string `json:"interview_type" validate:"omitempty,oneof=technical behavioral hr"`
	Company        string `json:"company,omitempty"`
	Role           string `json:"role,omitempty"`
	Skill          string `json:"skill,omitempty"`
	Round          string `json:"round,omitempty"`
}

type Session struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Question string `json:"question"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  int    `json:"user_id" validate:"required,gt=0"`
}

type ChatReply struct {
	Response     string `json:"response"`
	EndInterview bool   `json:"end_interview"`
}

// StartInterview opens a new interview session and returns its first question.
func (c *Client) StartInterview(ctx context.Context, req StartInterviewRequest) (*Session, error) {
	if req.InterviewType == "" {
		req.InterviewType = DefaultInterviewType
	}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid interview setup: %w", err)
	}

	var session Session
	if err := c.postJSON(ctx, c.endpoint(startInterviewPath), req, &session); err != nil {
		return nil, fmt.Errorf("start interview: %w", err)
	}

	if strings.TrimSpace(session.Question) == "" {
		session.Question = Greeting
	}
	session.Success = true

	return &session, nil
}

// SendChat sends a candidate answer and returns the interviewer's next turn.
//
// On failure the returned reply is still usable: it carries FallbackReply so
// a chat loop can keep going while the error is reported.
func (c *Client) SendChat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid chat message: %w", err)
	}

	var reply ChatReply
	if err := c.postJSON(ctx, c.endpoint(chatPath), req, &reply); err != nil {
		c.logger.Warn("chat request failed, using fallback reply", zap.Error(err))
		return &ChatReply{Response: FallbackReply}, fmt.Errorf("send chat message: %w", err)
	}

	if strings.TrimSpace(reply.Response) == "" {
		reply.Response = FallbackReply
	}

	return &reply, nil
}
