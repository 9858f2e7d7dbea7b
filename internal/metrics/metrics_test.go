package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/mockinterview/interview-coach/internal/feedback"
)

func histogramCount(t *testing.T) (uint64, float64) {
	t.Helper()

	m := &dto.Metric{}
	if err := OverallScore.Write(m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestObserveFeedback(t *testing.T) {
	before := testutil.ToFloat64(TransformsTotal.WithLabelValues(SourceMock))
	count, sum := histogramCount(t)

	fb := feedback.Transform(feedback.MockMetrics())
	ObserveFeedback(SourceMock, &fb)
	ObserveFeedback(SourceMock, nil)

	if got := testutil.ToFloat64(TransformsTotal.WithLabelValues(SourceMock)); got != before+2 {
		t.Fatalf("transforms = %v, want %v", got, before+2)
	}

	gotCount, gotSum := histogramCount(t)
	if gotCount != count+1 {
		t.Fatalf("histogram samples = %d, want %d", gotCount, count+1)
	}
	if gotSum != sum+72 {
		t.Fatalf("histogram sum = %v, want %v", gotSum, sum+72)
	}
}
