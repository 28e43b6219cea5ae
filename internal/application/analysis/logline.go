// Package analysis implements the scoring pipeline: logline analyzer, market
// analyzer, synopsis and format evaluator, similarity-risk assessor, and the
// score synthesizer that combines them into one AnalysisResult.  Everything in
// this package is deterministic for a fixed seed; the only randomness is the
// injected jitter source.
package analysis

import (
	"fmt"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// LoglineAnalyzer extracts the seven-dimension score breakdown from a logline
// using the rule tables in rules.go.  It is stateless and safe for concurrent
// use; for fixed input text and fixed tables the output is bit-identical on
// every call.
type LoglineAnalyzer struct{}

// NewLoglineAnalyzer constructs a LoglineAnalyzer.
func NewLoglineAnalyzer() *LoglineAnalyzer { return &LoglineAnalyzer{} }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Analyze scores a concept's logline across the seven dimensions.  An empty
// logline produces a degenerate-but-valid breakdown (floors, never an error).
func (a *LoglineAnalyzer) Analyze(c concept.Concept) analysis.LoglineScoreBreakdown {
	text := newLoglineText(c.Logline)
	notes := make(map[analysis.Dimension]string, len(analysis.AllDimensions))

	b := analysis.LoglineScoreBreakdown{
		Protagonist:        a.scoreProtagonist(text, notes),
		Conflict:           a.scoreConflict(text, notes),
		Stakes:             a.scoreStakes(text, notes),
		UniqueHook:         a.scoreUniqueHook(text, c, notes),
		GenreClarity:       a.scoreGenreClarity(text, c, notes),
		Concision:          a.scoreConcision(c.Logline, notes),
		EmotionalResonance: a.scoreEmotional(text, notes),
		Notes:              notes,
	}
	b.TotalLoglineScore = b.Protagonist + b.Conflict + b.Stakes + b.UniqueHook +
		b.GenreClarity + b.Concision + b.EmotionalResonance
	return b
}

func (a *LoglineAnalyzer) scoreProtagonist(t loglineText, notes map[analysis.Dimension]string) int {
	score := 0
	hits := []string{}
	for _, f := range []PatternFamily{protagonistRoleFamily, protagonistActiveVoiceFamily, protagonistTraitFamily} {
		if f.matches(t) {
			score += f.Weight
			hits = append(hits, f.Name)
		}
	}
	score = clampInt(score, 0, analysis.MaxProtagonistScore)
	switch {
	case score >= 10:
		notes[analysis.DimProtagonist] = fmt.Sprintf("clearly drawn protagonist (%v)", hits)
	case score > 0:
		notes[analysis.DimProtagonist] = "protagonist is present but thinly characterized"
	default:
		notes[analysis.DimProtagonist] = "no identifiable protagonist; name a specific character with a role or trait"
	}
	return score
}

func (a *LoglineAnalyzer) scoreConflict(t loglineText, notes map[analysis.Dimension]string) int {
	score := 0
	families := 0
	for _, f := range conflictFamilies {
		if families == 3 {
			break
		}
		if f.matches(t) {
			score += f.Weight
			families++
		}
	}
	goal := conflictGoalFamily.matches(t)
	if goal {
		score += conflictGoalFamily.Weight
	}
	score = clampInt(score, 0, analysis.MaxConflictScore)
	switch {
	case score >= 13:
		notes[analysis.DimConflict] = "strong central conflict with a concrete goal"
	case score > 0:
		notes[analysis.DimConflict] = "conflict is implied but underpowered; name the opposing force"
	default:
		notes[analysis.DimConflict] = "no conflict detected; every salable logline needs someone or something in the way"
	}
	return score
}

func (a *LoglineAnalyzer) scoreStakes(t loglineText, notes map[analysis.Dimension]string) int {
	score := 0
	for _, f := range stakesFamilies {
		if f.matches(t) {
			score += f.Weight
		}
	}
	score = clampInt(score, 0, analysis.MaxStakesScore)
	switch {
	case score >= 8:
		notes[analysis.DimStakes] = "stakes are high and legible"
	case score > 0:
		notes[analysis.DimStakes] = "stakes exist but feel survivable; raise the cost of failure"
	default:
		notes[analysis.DimStakes] = "no stakes detected; state what is lost if the protagonist fails"
	}
	return score
}

func (a *LoglineAnalyzer) scoreUniqueHook(t loglineText, c concept.Concept, notes map[analysis.Dimension]string) int {
	score := 0
	if hookWhatIfFamily.matches(t) {
		score += hookWhatIfFamily.Weight
	}
	for _, f := range hookFreshFamilies {
		if f.matches(t) {
			score += f.Weight
		}
	}
	if c.HasSecondaryGenre() {
		score += hookSecondaryGenreBonus
	}
	score = clampInt(score, 0, analysis.MaxUniqueHookScore)
	switch {
	case score >= 10:
		notes[analysis.DimUniqueHook] = "distinctive hook that separates the concept from the pile"
	case score > 0:
		notes[analysis.DimUniqueHook] = "some freshness, but the hook needs one more unexpected turn"
	default:
		notes[analysis.DimUniqueHook] = "premise reads familiar; find the element no comparable title has"
	}
	return score
}

func (a *LoglineAnalyzer) scoreGenreClarity(t loglineText, c concept.Concept, notes map[analysis.Dimension]string) int {
	score := 0
	genre, _ := concept.ParseGenre(string(c.Genre))
	for _, kw := range genreKeywords[genre] {
		f := PatternFamily{Terms: []string{kw}}
		if f.matches(t) {
			score += genreKeywordWeight
		}
	}
	if c.HasTone() {
		score += genreClarityToneAdd
	}
	score = clampInt(score, 0, analysis.MaxGenreClarityScore)
	if score >= 6 {
		notes[analysis.DimGenreClarity] = fmt.Sprintf("logline signals %s clearly", genre)
	} else {
		notes[analysis.DimGenreClarity] = fmt.Sprintf("logline does not read as %s; work genre vocabulary into the premise", genre)
	}
	return score
}

func (a *LoglineAnalyzer) scoreConcision(logline string, notes map[analysis.Dimension]string) int {
	words := wordCount(logline)
	score := concisionBand(words)
	switch {
	case score == 10:
		notes[analysis.DimConcision] = fmt.Sprintf("%d words, inside the 25-50 sweet spot", words)
	case words < 15:
		notes[analysis.DimConcision] = fmt.Sprintf("%d words is too thin to carry a premise", words)
	default:
		notes[analysis.DimConcision] = fmt.Sprintf("%d words; tighten toward 25-50", words)
	}
	return score
}

func (a *LoglineAnalyzer) scoreEmotional(t loglineText, notes map[analysis.Dimension]string) int {
	score := 0
	for _, f := range emotionalFamilies {
		if f.matches(t) {
			score += f.Weight
		}
	}
	score = clampInt(score, 0, analysis.MaxEmotionalScore)
	if score >= 4 {
		notes[analysis.DimEmotional] = "emotional throughline is present"
	} else {
		notes[analysis.DimEmotional] = "no emotional anchor; give the audience a reason to care beyond the plot"
	}
	return score
}
