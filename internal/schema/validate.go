// Package schema validates incoming metrics documents before they reach the
// transformer.
package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed raw_metrics.schema.json
var rawMetricsSchema string

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateRawMetrics checks a RawMetrics JSON document. It returns a
// *ValidationError when the document is well formed but does not match.
func ValidateRawMetrics(doc []byte) error {
	s, err := rawMetrics()
	if err != nil {
		return err
	}
	return validate(s, gojsonschema.NewBytesLoader(doc))
}

func rawMetrics() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(rawMetricsSchema))
		if compileErr != nil {
			compileErr = fmt.Errorf("load raw metrics schema: %w", compileErr)
		}
	})
	return compiled, compileErr
}

func validate(s *gojsonschema.Schema, doc gojsonschema.JSONLoader) error {
	result, err := s.Validate(doc)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
