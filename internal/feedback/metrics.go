// Package feedback turns raw answer-evaluation metrics into the feedback
// report shown to a candidate after a mock interview.
package feedback

import "math"

// RawMetrics holds the evaluation scores produced by the interview backend.
//
// The three aggregate scores are optional: a nil pointer means the metric was
// not computed and is read as 0 by every rule in this package. NaN is read as
// 0 as well.
type RawMetrics struct {
	F1Score         *float64         `json:"f1Score,omitempty" mapstructure:"f1Score"`
	RougeScore      *float64         `json:"rougeScore,omitempty" mapstructure:"rougeScore"`
	BleuScore       *float64         `json:"bleuScore,omitempty" mapstructure:"bleuScore"`
	QuestionAnswers []QuestionAnswer `json:"questionAnswers,omitempty" mapstructure:"questionAnswers"`
}

// QuestionAnswer is one interview exchange together with its score.
type QuestionAnswer struct {
	Question    string  `json:"question" mapstructure:"question"`
	UserAnswer  string  `json:"userAnswer" mapstructure:"userAnswer"`
	IdealAnswer string  `json:"idealAnswer" mapstructure:"idealAnswer"`
	Score       float64 `json:"score" mapstructure:"score"`
}

// Score returns a pointer to v for filling the optional RawMetrics fields.
func Score(v float64) *float64 {
	return &v
}

// F1 returns the F1 score, 0 when absent.
func (m RawMetrics) F1() float64 { return valueOrZero(m.F1Score) }

// Rouge returns the ROUGE score, 0 when absent.
func (m RawMetrics) Rouge() float64 { return valueOrZero(m.RougeScore) }

// Bleu returns the BLEU score, 0 when absent.
func (m RawMetrics) Bleu() float64 { return valueOrZero(m.BleuScore) }

// score returns the raw value backing the given category.
func (m RawMetrics) score(c Category) float64 {
	switch c {
	case TechnicalKnowledge:
		return m.F1()
	case Communication:
		return m.Rouge()
	case ProblemSolving:
		return m.Bleu()
	default:
		return 0
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
