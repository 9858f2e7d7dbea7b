// Package ai defines the optional language-model layer that writes a short
// coaching note on top of a computed feedback report.
package ai

import (
	"context"

	"github.com/mockinterview/interview-coach/internal/feedback"
)

// Narrative is a free-text coaching note for a candidate.
type Narrative struct {
	Text  string
	Model string
}

// Narrator writes a Narrative for a feedback report. Implementations must not
// modify the report.
type Narrator interface {
	Narrate(ctx context.Context, fb *feedback.Result) (*Narrative, error)
}
