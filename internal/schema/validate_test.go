package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRawMetricsAccepts(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"empty object": `{}`,
		"nulls":        `{"f1Score": null, "rougeScore": null, "bleuScore": null, "questionAnswers": null}`,
		"full": `{
			"f1Score": 0.75, "rougeScore": 0.68, "bleuScore": 0.72,
			"questionAnswers": [
				{"question": "q", "userAnswer": "a", "idealAnswer": "i", "score": 0.5}
			]
		}`,
		"extra fields are ignored": `{"f1Score": 1, "sessionId": "abc"}`,
	}

	for name, doc := range docs {
		if err := ValidateRawMetrics([]byte(doc)); err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
	}
}

func TestValidateRawMetricsRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		doc    string
		fields []string
	}{
		{name: "score above range", doc: `{"f1Score": 1.2}`, fields: []string{"f1Score"}},
		{name: "score is a string", doc: `{"bleuScore": "high"}`, fields: []string{"bleuScore"}},
		{name: "answer missing ideal", doc: `{"questionAnswers": [{"question": "q", "userAnswer": "a", "score": 0.1}]}`, fields: []string{"idealAnswer", "questionAnswers.0"}},
		{name: "answer score negative", doc: `{"questionAnswers": [{"question": "q", "userAnswer": "a", "idealAnswer": "i", "score": -1}]}`, fields: []string{"questionAnswers.0.score"}},
		{name: "not an object", doc: `[1, 2]`, fields: []string{"(root)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRawMetrics([]byte(tt.doc))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}

			found := false
			for _, fe := range verr.Errors {
				for _, field := range tt.fields {
					if fe.Field == field {
						found = true
					}
				}
			}
			if !found {
				t.Fatalf("expected error on one of %v, got %+v", tt.fields, verr.Errors)
			}
			if !strings.HasPrefix(verr.Error(), "validation failed:") {
				t.Fatalf("unexpected message: %s", verr.Error())
			}
		})
	}
}

func TestValidateRawMetricsMalformed(t *testing.T) {
	t.Parallel()

	err := ValidateRawMetrics([]byte(`{"f1Score": `))
	if err == nil {
		t.Fatalf("expected error for malformed JSON")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("malformed JSON must not be reported as a validation error")
	}
}
