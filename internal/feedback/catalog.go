package feedback

// Category identifies one of the three scored feedback areas.
type Category int

const (
	TechnicalKnowledge Category = iota
	Communication
	ProblemSolving
)

// Categories lists the scored areas in report order.
var Categories = []Category{TechnicalKnowledge, Communication, ProblemSolving}

var categoryNames = [...]string{
	TechnicalKnowledge: "Technical Knowledge",
	Communication:      "Communication",
	ProblemSolving:     "Problem Solving",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Tier is a feedback band selected by score thresholds.
type Tier int

const (
	TierNeedsImprovement Tier = iota
	TierAdequate
	TierStrong
	TierExcellent
)

var tierNames = [...]string{
	TierNeedsImprovement: "needs improvement",
	TierAdequate:         "adequate",
	TierStrong:           "strong",
	TierExcellent:        "excellent",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return "unknown"
	}
	return tierNames[t]
}

// Tier thresholds are exclusive: a score equal to a bound falls in the lower tier.
const (
	excellentAbove = 0.85
	strongAbove    = 0.70
	adequateAbove  = 0.50
)

// TierFor returns the feedback band for a raw score.
func TierFor(score float64) Tier {
	switch {
	case score > excellentAbove:
		return TierExcellent
	case score > strongAbove:
		return TierStrong
	case score > adequateAbove:
		return TierAdequate
	default:
		return TierNeedsImprovement
	}
}

var tierFeedback = map[Category][4]string{
	TechnicalKnowledge: {
		TierExcellent:        "Excellent technical knowledge demonstrated. Key concepts explained accurately and comprehensively.",
		TierStrong:           "Strong understanding of core concepts. Consider deepening knowledge in advanced topics.",
		TierAdequate:         "Adequate technical knowledge shown. Focus on explaining concepts more thoroughly and accurately.",
		TierNeedsImprovement: "Technical knowledge needs improvement. Consider studying fundamental concepts more deeply.",
	},
	Communication: {
		TierExcellent:        "Excellent communication skills. Explanations were clear, concise, and well-structured.",
		TierStrong:           "Good communication overall. Try providing more concrete examples to illustrate your points.",
		TierAdequate:         "Communication is adequate but could be improved with clearer structure and more precise language.",
		TierNeedsImprovement: "Focus on improving communication clarity. Structure your answers and use specific terminology.",
	},
	ProblemSolving: {
		TierExcellent:        "Excellent problem-solving approach with methodical thinking and optimal solutions.",
		TierStrong:           "Good problem-solving skills demonstrated. Work on optimizing your solutions further.",
		TierAdequate:         "Adequate problem-solving shown. Focus on breaking down problems more systematically.",
		TierNeedsImprovement: "Problem-solving approach needs improvement. Practice analyzing problems step-by-step.",
	},
}

// TierFeedback returns the canned comment for a category in a tier.
func TierFeedback(c Category, t Tier) string {
	texts, ok := tierFeedback[c]
	if !ok || t < 0 || int(t) >= len(texts) {
		return ""
	}
	return texts[t]
}

// Tier returns the band whose comment the category carries. Scores are
// rounded for display, so the band cannot be recovered from Score alone
// near a threshold.
func (c CategoryScore) Tier() Tier {
	for cat, texts := range tierFeedback {
		if cat.String() != c.Name {
			continue
		}
		for t, text := range texts {
			if text == c.Feedback {
				return Tier(t)
			}
		}
	}
	return TierFor(float64(c.Score) / 100)
}

// Strength thresholds. Only the higher matching wording is used per metric.
const (
	strongStrengthAbove   = 0.8
	moderateStrengthAbove = 0.7
)

type strengthWording struct {
	strong   string
	moderate string
}

var metricStrengths = map[Category]strengthWording{
	TechnicalKnowledge: {
		strong:   "Strong engagement throughout the interview process",
		moderate: "Good level of engagement during the interview",
	},
	Communication: {
		strong:   "Excellent communication with thorough answers",
		moderate: "Clear and effective communication style",
	},
	ProblemSolving: {
		strong:   "Demonstrated consistent quality in responses",
		moderate: "Good overall performance throughout the interview",
	},
}

const (
	strengthDetailedResponses    = "Provided detailed responses to complex questions"
	strengthConsistentEngagement = "Maintained consistent engagement throughout the interview"
)

var defaultStrengths = []string{
	"Willingness to engage with the interview process",
	"Attempting to provide structured responses",
}

// A metric strictly below this bound yields an improvement and a resource.
const improvementBelow = 0.7

var metricImprovements = map[Category]string{
	TechnicalKnowledge: "Consider providing more complete answers to demonstrate deeper knowledge",
	Communication:      "Try to elaborate more in your responses with specific examples",
	ProblemSolving:     "Focus on maintaining consistent quality across all your answers",
}

const (
	improvementExpandShortAnswers = "Expand on shorter answers to demonstrate deeper knowledge and experience"
	improvementPracticeMore       = "Continue practicing with more mock interviews to build confidence"
)

var defaultImprovements = []string{
	"Continue building depth in your responses with concrete examples",
	"Practice explaining complex concepts in simple terms",
}

// Answer length rules, counted in characters.
const (
	detailedAnswerOver = 100
	shortAnswerUnder   = 50
	consistentAnswers  = 3
)

const (
	maxExamples         = 2
	betterApproachRunes = 100
	strongExampleReason = "Your answer demonstrated clear understanding and effective communication."
)

var metricResources = map[Category]Resource{
	TechnicalKnowledge: {
		Title:       "Technical Foundations",
		Description: "Review core technical concepts to strengthen your fundamental knowledge.",
		Link:        "https://www.codecademy.com/",
	},
	Communication: {
		Title:       "Technical Communication",
		Description: "Practice explaining technical concepts clearly and concisely.",
		Link:        "https://www.toastmasters.org/",
	},
	ProblemSolving: {
		Title:       "Problem-Solving Techniques",
		Description: "Enhance your analytical thinking and problem decomposition skills.",
		Link:        "https://leetcode.com/",
	},
}

var practiceResource = Resource{
	Title:       "Interview Preparation",
	Description: "Continue practicing with mock interviews to build confidence.",
	Link:        "https://www.pramp.com/",
}
