// Package feedback derives actionable notes from a finished score breakdown:
// prioritized feedback items, strength points, and improvement areas with
// worked before/after examples.  Pure functions of the breakdown; no I/O, no
// randomness.
package feedback

import (
	"fmt"
	"sort"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// Sub-score thresholds driving the template tables below.
const (
	protagonistStrengthMin = 12
	conflictWeakBelow      = 12
	stakesWeakBelow        = 8
	hookStrengthMin        = 12
	hookWeakBelow          = 8
	genreClarityWeakBelow  = 6
	concisionStrengthMin   = 10
	emotionalWeakBelow     = 4
	synopsisThinBelowWords = 75
)

// Generator turns an analysis breakdown into feedback, strengths, and
// improvement areas.
type Generator struct{}

// NewGenerator constructs a Generator.
func NewGenerator() *Generator { return &Generator{} }

// feedbackRule is one threshold-gated feedback template.
type feedbackRule struct {
	applies func(b analysis.LoglineScoreBreakdown, c concept.Concept) bool
	item    analysis.FeedbackItem
}

var feedbackRules = []feedbackRule{
	{
		applies: func(b analysis.LoglineScoreBreakdown, _ concept.Concept) bool {
			return b.Conflict < conflictWeakBelow
		},
		item: analysis.FeedbackItem{
			Category:       "Conflict",
			Assessment:     "The central conflict is underpowered or missing.",
			Recommendation: "Name the opposing force and state what the protagonist must do about it.",
			Priority:       1,
		},
	},
	{
		applies: func(b analysis.LoglineScoreBreakdown, _ concept.Concept) bool {
			return b.Stakes < stakesWeakBelow
		},
		item: analysis.FeedbackItem{
			Category:       "Stakes",
			Assessment:     "The cost of failure is not legible from the logline.",
			Recommendation: "State what is irreversibly lost if the protagonist fails, ideally with time pressure.",
			Priority:       2,
		},
	},
	{
		applies: func(b analysis.LoglineScoreBreakdown, _ concept.Concept) bool {
			return b.Protagonist < protagonistStrengthMin
		},
		item: analysis.FeedbackItem{
			Category:       "Protagonist",
			Assessment:     "The protagonist lacks a role or defining trait buyers can picture.",
			Recommendation: "Give the lead a profession and one adjective that creates friction with the plot.",
			Priority:       2,
		},
	},
	{
		applies: func(b analysis.LoglineScoreBreakdown, _ concept.Concept) bool {
			return b.UniqueHook < hookWeakBelow
		},
		item: analysis.FeedbackItem{
			Category:       "Hook",
			Assessment:     "The premise reads familiar next to existing titles.",
			Recommendation: "Add the one element no comparable title has: an inversion, a constraint, or a collision of genres.",
			Priority:       3,
		},
	},
	{
		applies: func(b analysis.LoglineScoreBreakdown, _ concept.Concept) bool {
			return b.GenreClarity < genreClarityWeakBelow
		},
		item: analysis.FeedbackItem{
			Category:       "Genre Clarity",
			Assessment:     "The logline does not signal its declared genre.",
			Recommendation: "Work two or three genre-native words into the premise so a buyer shelves it instantly.",
			Priority:       4,
		},
	},
	{
		applies: func(_ analysis.LoglineScoreBreakdown, c concept.Concept) bool {
			return wordCount(c.Synopsis) > 0 && wordCount(c.Synopsis) < synopsisThinBelowWords
		},
		item: analysis.FeedbackItem{
			Category:       "Synopsis",
			Assessment:     "The synopsis is too thin to support a coverage read.",
			Recommendation: "Expand to at least two paragraphs covering setup, escalation, and resolution direction.",
			Priority:       4,
		},
	},
	{
		applies: func(b analysis.LoglineScoreBreakdown, _ concept.Concept) bool {
			return b.EmotionalResonance < emotionalWeakBelow
		},
		item: analysis.FeedbackItem{
			Category:       "Emotional Resonance",
			Assessment:     "There is no emotional anchor beyond the plot mechanics.",
			Recommendation: "Tie the external goal to a personal relationship or an internal wound.",
			Priority:       5,
		},
	},
}

// Feedback returns the threshold-selected feedback items sorted by priority
// ascending (1 = most urgent first).
func (g *Generator) Feedback(b analysis.LoglineScoreBreakdown, c concept.Concept) []analysis.FeedbackItem {
	items := []analysis.FeedbackItem{}
	for _, r := range feedbackRules {
		if r.applies(b, c) {
			items = append(items, r.item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Priority < items[j].Priority })
	return items
}

// Strengths returns the concept's strong points per the threshold table.
func (g *Generator) Strengths(b analysis.LoglineScoreBreakdown, c concept.Concept) []analysis.StrengthPoint {
	points := []analysis.StrengthPoint{}
	if b.Protagonist >= protagonistStrengthMin {
		points = append(points, analysis.StrengthPoint{
			Area:   "Protagonist",
			Detail: "Clearly drawn lead with an active drive; castable as written.",
		})
	}
	if b.Conflict >= conflictWeakBelow {
		points = append(points, analysis.StrengthPoint{
			Area:   "Conflict",
			Detail: "Strong opposition with a concrete goal.",
		})
	}
	if b.Stakes >= stakesWeakBelow {
		points = append(points, analysis.StrengthPoint{
			Area:   "Stakes",
			Detail: "The cost of failure is high and legible.",
		})
	}
	if b.UniqueHook >= hookStrengthMin {
		points = append(points, analysis.StrengthPoint{
			Area:   "Hook",
			Detail: "Distinctive premise that separates the concept from the submission pile.",
		})
	}
	if b.Concision >= concisionStrengthMin {
		points = append(points, analysis.StrengthPoint{
			Area:   "Concision",
			Detail: "Logline length sits in the salable sweet spot.",
		})
	}
	if len(c.ComparableTitles) > 0 {
		points = append(points, analysis.StrengthPoint{
			Area:   "Positioning",
			Detail: fmt.Sprintf("Declared comparables (%d) give buyers an instant market frame.", len(c.ComparableTitles)),
		})
	}
	return points
}

// Improvements returns rewrite suggestions for weak dimensions, sorted by
// impact descending.
func (g *Generator) Improvements(b analysis.LoglineScoreBreakdown, c concept.Concept) []analysis.ImprovementArea {
	areas := []analysis.ImprovementArea{}
	if b.Conflict < conflictWeakBelow {
		areas = append(areas, analysis.ImprovementArea{
			Area:          "Conflict",
			Issue:         "No named antagonist or opposing force.",
			Suggestion:    "Introduce a specific adversary and the action the protagonist must take against them.",
			ExampleBefore: "A detective investigates strange events in her town.",
			ExampleAfter:  "A detective must stop a copycat killer recreating her own cold cases before he reaches her family.",
			Impact:        9,
		})
	}
	if b.Stakes < stakesWeakBelow {
		areas = append(areas, analysis.ImprovementArea{
			Area:          "Stakes",
			Issue:         "Failure has no visible cost.",
			Suggestion:    "Attach a life-or-death or deeply personal consequence, ideally under time pressure.",
			ExampleBefore: "A lawyer takes on a difficult case.",
			ExampleAfter:  "A lawyer has 72 hours to overturn a conviction before her brother is executed for a crime she helped prosecute.",
			Impact:        8,
		})
	}
	if b.UniqueHook < hookWeakBelow {
		areas = append(areas, analysis.ImprovementArea{
			Area:          "Hook",
			Issue:         "Premise tracks too closely to existing titles.",
			Suggestion:    "Invert one expected element of the genre or collide it with a second genre.",
			ExampleBefore: "A soldier returns home from war.",
			ExampleAfter:  "A soldier returns home from war to find someone else has been living her life, and everyone insists it was always so.",
			Impact:        7,
		})
	}
	if b.Protagonist < protagonistStrengthMin {
		areas = append(areas, analysis.ImprovementArea{
			Area:       "Protagonist",
			Issue:      "Lead is generic or unnamed.",
			Suggestion: "Specify role plus one defining trait that complicates the central conflict.",
			Impact:     6,
		})
	}
	if b.GenreClarity < genreClarityWeakBelow {
		areas = append(areas, analysis.ImprovementArea{
			Area:       "Genre Clarity",
			Issue:      "Genre is declared but not demonstrated.",
			Suggestion: "Use vocabulary native to the genre in the logline itself.",
			Impact:     4,
		})
	}
	sort.SliceStable(areas, func(i, j int) bool { return areas[i].Impact > areas[j].Impact })
	return areas
}

func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
	return n
}
