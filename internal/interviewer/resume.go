package interviewer

import (
	"context"
	"fmt"
	"strconv"
)

type UploadResumeRequest struct {
	Path           string `validate:"required,file"`
	JobDescription string `validate:"required"`
	UserID         int    `validate:"required,gt=0"`
}

// ResumeDetails is what the backend extracted from an uploaded resume.
type ResumeDetails struct {
	Success  bool           `json:"success"`
	Details  map[string]any `json:"details"`
	UserInfo any            `json:"user_info"`
}

func (c *Client) UploadResume(ctx context.Context, req UploadResumeRequest) (*ResumeDetails, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid resume upload: %w", err)
	}

	fields := map[string]string{
		"job_description": req.JobDescription,
		"user_id":         strconv.Itoa(req.UserID),
	}

	var details ResumeDetails
	if err := c.postFile(ctx, c.endpoint(uploadResumePath), "file", req.Path, fields, &details); err != nil {
		return nil, fmt.Errorf("upload resume: %w", err)
	}

	if details.Details == nil {
		details.Details = make(map[string]any)
	}

	return &details, nil
}
