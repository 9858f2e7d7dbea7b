package feedback

import "testing"

func TestTierFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Tier
	}{
		{score: 1, want: TierExcellent},
		{score: 0.851, want: TierExcellent},
		{score: 0.85, want: TierStrong},
		{score: 0.71, want: TierStrong},
		{score: 0.7, want: TierAdequate},
		{score: 0.51, want: TierAdequate},
		{score: 0.5, want: TierNeedsImprovement},
		{score: 0, want: TierNeedsImprovement},
		{score: -1, want: TierNeedsImprovement},
	}

	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Fatalf("TierFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestCatalogIsComplete(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, c := range Categories {
		for tier := TierNeedsImprovement; tier <= TierExcellent; tier++ {
			text := TierFeedback(c, tier)
			if text == "" {
				t.Fatalf("missing feedback for %s/%s", c, tier)
			}
			if seen[text] {
				t.Fatalf("feedback text reused: %q", text)
			}
			seen[text] = true
		}

		if metricImprovements[c] == "" {
			t.Fatalf("missing improvement for %s", c)
		}
		if metricResources[c].Title == "" {
			t.Fatalf("missing resource for %s", c)
		}
		wording := metricStrengths[c]
		if wording.strong == "" || wording.moderate == "" || wording.strong == wording.moderate {
			t.Fatalf("invalid strength wording for %s: %+v", c, wording)
		}
	}

	if len(seen) != 12 {
		t.Fatalf("expected 12 feedback texts, got %d", len(seen))
	}
	if len(defaultStrengths) != 2 || len(defaultImprovements) != 2 {
		t.Fatalf("expected two defaults each")
	}
}

func TestCategoryNames(t *testing.T) {
	t.Parallel()

	want := []string{"Technical Knowledge", "Communication", "Problem Solving"}
	for i, c := range Categories {
		if c.String() != want[i] {
			t.Fatalf("category %d: expected %q, got %q", i, want[i], c.String())
		}
	}

	if Category(7).String() != "unknown" || Tier(-1).String() != "unknown" {
		t.Fatalf("expected unknown for out of range values")
	}
	if TierFeedback(Category(9), TierExcellent) != "" {
		t.Fatalf("expected empty feedback for unknown category")
	}
}

func TestCategoryScoreTier(t *testing.T) {
	t.Parallel()

	fb := Transform(RawMetrics{F1Score: Score(0.704), RougeScore: Score(0.854)})

	tests := map[string]struct {
		score int
		want  Tier
	}{
		TechnicalKnowledge.String(): {score: 70, want: TierStrong},
		Communication.String():      {score: 85, want: TierExcellent},
		ProblemSolving.String():     {score: 0, want: TierNeedsImprovement},
	}

	for name, tt := range tests {
		c := fb.Category(name)
		if c == nil {
			t.Fatalf("missing category %q", name)
		}
		if c.Score != tt.score {
			t.Fatalf("%s: expected score %d, got %d", name, tt.score, c.Score)
		}
		if got := c.Tier(); got != tt.want {
			t.Fatalf("%s: expected tier %v, got %v", name, tt.want, got)
		}
	}

	unknown := CategoryScore{Name: "Other", Score: 90, Feedback: "custom"}
	if got := unknown.Tier(); got != TierExcellent {
		t.Fatalf("expected fallback tier excellent, got %v", got)
	}
}
