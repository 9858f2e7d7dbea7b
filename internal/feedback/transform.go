package feedback

import (
	"math"
	"sort"
	"unicode/utf8"
)

// Weights of the aggregate scores in the overall score.
const (
	f1Weight    = 0.4
	rougeWeight = 0.3
	bleuWeight  = 0.3
)

// Transform builds the feedback report for raw. It has no side effects and
// always returns a complete report, whatever the input.
func Transform(raw RawMetrics) Result {
	return Result{
		OverallScore: OverallScore(raw),
		Categories:   categoryScores(raw),
		Strengths:    strengths(raw),
		Improvements: improvements(raw),
		Examples:     extractExamples(raw.QuestionAnswers),
		Resources:    suggestResources(raw),
	}
}

// OverallScore is the weighted percentage of the three aggregate scores.
func OverallScore(raw RawMetrics) int {
	// The conversions keep the compiler from fusing multiply-adds, so the
	// result is identical on every platform.
	weighted := float64(raw.F1()*f1Weight) + float64(raw.Rouge()*rougeWeight) + float64(raw.Bleu()*bleuWeight)
	return percent(weighted)
}

// percent converts a [0,1] score to a rounded percentage clamped to [0,100].
// Halves round up, so 0.005 becomes 1 and -0.005 becomes 0.
func percent(score float64) int {
	p := math.Floor(float64(score*100) + 0.5)
	if math.IsNaN(p) {
		return 0
	}
	return int(math.Min(math.Max(p, 0), 100))
}

func categoryScores(raw RawMetrics) []CategoryScore {
	out := make([]CategoryScore, 0, len(Categories))
	for _, c := range Categories {
		score := raw.score(c)
		out = append(out, CategoryScore{
			Name:     c.String(),
			Score:    percent(score),
			Feedback: TierFeedback(c, TierFor(score)),
		})
	}
	return out
}

func strengths(raw RawMetrics) []string {
	set := newOrderedSet()

	for _, c := range Categories {
		score := raw.score(c)
		wording := metricStrengths[c]
		switch {
		case score > strongStrengthAbove:
			set.Add(wording.strong)
		case score > moderateStrengthAbove:
			set.Add(wording.moderate)
		}
	}

	if anyAnswer(raw.QuestionAnswers, func(n int) bool { return n > detailedAnswerOver }) {
		set.Add(strengthDetailedResponses)
	}
	if len(raw.QuestionAnswers) >= consistentAnswers {
		set.Add(strengthConsistentEngagement)
	}

	if set.Len() == 0 {
		for _, s := range defaultStrengths {
			set.Add(s)
		}
	}

	return set.Items()
}

func improvements(raw RawMetrics) []string {
	set := newOrderedSet()

	for _, c := range Categories {
		if raw.score(c) < improvementBelow {
			set.Add(metricImprovements[c])
		}
	}

	answers := raw.QuestionAnswers
	if anyAnswer(answers, func(n int) bool { return n < shortAnswerUnder }) {
		set.Add(improvementExpandShortAnswers)
	}
	// With no answers at all there is nothing to judge the practice volume on.
	if len(answers) > 0 && len(answers) < consistentAnswers {
		set.Add(improvementPracticeMore)
	}

	if set.Len() == 0 {
		for _, s := range defaultImprovements {
			set.Add(s)
		}
	}

	return set.Items()
}

// anyAnswer reports whether the character count of some user answer satisfies match.
func anyAnswer(answers []QuestionAnswer, match func(int) bool) bool {
	for _, qa := range answers {
		if match(utf8.RuneCountInString(qa.UserAnswer)) {
			return true
		}
	}
	return false
}

func extractExamples(answers []QuestionAnswer) Examples {
	examples := Examples{
		Strong:           []StrongExample{},
		NeedsImprovement: []WeakExample{},
	}
	if len(answers) == 0 {
		return examples
	}

	sorted := make([]QuestionAnswer, len(answers))
	copy(sorted, answers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	n := min(maxExamples, len(sorted))
	for _, qa := range sorted[:n] {
		examples.Strong = append(examples.Strong, StrongExample{
			Question: qa.Question,
			Answer:   qa.UserAnswer,
			Reason:   strongExampleReason,
		})
	}
	for _, qa := range sorted[len(sorted)-n:] {
		examples.NeedsImprovement = append(examples.NeedsImprovement, WeakExample{
			Question:       qa.Question,
			Answer:         qa.UserAnswer,
			BetterApproach: betterApproach(qa.IdealAnswer),
		})
	}

	return examples
}

func betterApproach(ideal string) string {
	return `Consider: "` + prefixRunes(ideal, betterApproachRunes) + `..."`
}

func prefixRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func suggestResources(raw RawMetrics) []Resource {
	out := make([]Resource, 0, len(Categories)+1)
	for _, c := range Categories {
		if raw.score(c) < improvementBelow {
			out = append(out, metricResources[c])
		}
	}
	return append(out, practiceResource)
}
