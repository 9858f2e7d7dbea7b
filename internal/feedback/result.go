package feedback

// Result is the presentation-ready feedback report.
type Result struct {
	OverallScore int             `json:"overallScore"`
	Categories   []CategoryScore `json:"categories"`
	Strengths    []string        `json:"strengths"`
	Improvements []string        `json:"improvements"`
	Examples     Examples        `json:"examples"`
	Resources    []Resource      `json:"resources"`
}

// CategoryScore is the percentage score and tiered comment for one category.
type CategoryScore struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Examples groups the highlighted answers.
type Examples struct {
	Strong           []StrongExample `json:"strong"`
	NeedsImprovement []WeakExample   `json:"needsImprovement"`
}

// StrongExample is a well scored answer with the reason it was picked.
type StrongExample struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Reason   string `json:"reason"`
}

// WeakExample is a poorly scored answer with a hint taken from the ideal answer.
type WeakExample struct {
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	BetterApproach string `json:"betterApproach"`
}

// Resource is a suggested learning resource.
type Resource struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

// Category returns the entry with the given name, or nil.
func (r *Result) Category(name string) *CategoryScore {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i]
		}
	}
	return nil
}
