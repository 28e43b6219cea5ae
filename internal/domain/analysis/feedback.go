package analysis

// FeedbackItem is one dimension-level note produced by the feedback
// generator.  Priority runs 1 (most urgent) to 5; the list is sorted by
// priority ascending.
type FeedbackItem struct {
	Category       string `json:"category"`
	Assessment     string `json:"assessment"`
	Recommendation string `json:"recommendation"`
	Priority       int    `json:"priority"`
}

// StrengthPoint names something the concept already does well.
type StrengthPoint struct {
	Area   string `json:"area"`
	Detail string `json:"detail"`
}

// ImprovementArea is a concrete rewrite suggestion with a worked example.
// Impact runs 1–10; the list is sorted by impact descending.
type ImprovementArea struct {
	Area          string `json:"area"`
	Issue         string `json:"issue"`
	Suggestion    string `json:"suggestion"`
	ExampleBefore string `json:"exampleBefore,omitempty"`
	ExampleAfter  string `json:"exampleAfter,omitempty"`
	Impact        int    `json:"impact"`
}
