// Package reporting renders analysis output as human-readable markdown for
// CLI display and file export.
package reporting

import (
	"fmt"
	"strings"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/version"
)

// Markdown renders a full concept report.
func Markdown(r *analysis.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Concept Assessment\n\n")
	fmt.Fprintf(&b, "**Overall Score:** %d / 100\n", r.FinalScore)
	fmt.Fprintf(&b, "**Verdict:** %s\n\n", r.Verdict.Verdict)
	fmt.Fprintf(&b, "%s\n\n", r.Verdict.Description)
	fmt.Fprintf(&b, "**Next steps:** %s\n\n", r.Verdict.NextSteps)

	fmt.Fprintf(&b, "## Logline Breakdown (%d/100)\n\n", r.Logline.TotalLoglineScore)
	fmt.Fprintf(&b, "| Dimension | Score | Max | Note |\n|---|---|---|---|\n")
	for _, d := range analysis.AllDimensions {
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n",
			d, r.Logline.Score(d), analysis.MaxFor(d), r.Logline.Notes[d])
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Market Position: %s\n\n", r.Market.Genre)
	fmt.Fprintf(&b, "- Market share: %.1f%%, growth %.1f%%/yr\n", r.Market.MarketShare, r.Market.GrowthRate)
	fmt.Fprintf(&b, "- Saturation: %s, streaming demand %d/100, avg ROI %.1fx\n",
		r.Market.Saturation, r.Market.StreamingDemand, r.Market.AverageROI)
	fmt.Fprintf(&b, "- Genre bonus applied: %+d\n\n", r.Market.GenreBonus)
	if len(r.MarketInsights) > 0 {
		b.WriteString("### Market Insights\n\n")
		for _, ins := range r.MarketInsights {
			fmt.Fprintf(&b, "- %s\n", ins)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Similarity Risk: %s (%d)\n\n%s\n\n", r.Risk.Tier, r.Risk.RiskScore, r.Risk.Description)
	if len(r.Risk.MatchedTropes) > 0 {
		fmt.Fprintf(&b, "Flagged tropes: %s\n\n", strings.Join(r.Risk.MatchedTropes, ", "))
	}

	if len(r.BuyerMatches) > 0 {
		b.WriteString("## Buyer Matches\n\n")
		for i, m := range r.BuyerMatches {
			fmt.Fprintf(&b, "%d. **%s** (%s) - %d%%. %s\n", i+1, m.Name, m.Type, m.MatchScore, m.Reason)
		}
		b.WriteString("\n")
	}
	if len(r.ProducerMatches) > 0 {
		b.WriteString("## Producer Matches\n\n")
		for i, m := range r.ProducerMatches {
			fmt.Fprintf(&b, "%d. **%s** (%s) - %d%%. %s\n", i+1, m.Name, m.Specialty, m.MatchScore, m.Reason)
		}
		b.WriteString("\n")
	}
	if len(r.ComparableTitles) > 0 {
		b.WriteString("## Comparable Titles\n\n")
		for i, m := range r.ComparableTitles {
			fmt.Fprintf(&b, "%d. **%s** (%d) - %d%% similar. %s. %s\n",
				i+1, m.Title, m.Year, m.MatchScore, m.Performance, m.Reason)
		}
		b.WriteString("\n")
	}

	if len(r.Strengths) > 0 {
		b.WriteString("## Strengths\n\n")
		for _, s := range r.Strengths {
			fmt.Fprintf(&b, "- **%s** - %s\n", s.Area, s.Detail)
		}
		b.WriteString("\n")
	}
	if len(r.Improvements) > 0 {
		b.WriteString("## Improvement Areas\n\n")
		for _, imp := range r.Improvements {
			fmt.Fprintf(&b, "### %s (impact %d/10)\n\n%s\n\n%s\n\n", imp.Area, imp.Impact, imp.Issue, imp.Suggestion)
			if imp.ExampleBefore != "" {
				fmt.Fprintf(&b, "> Before: %s\n>\n> After: %s\n\n", imp.ExampleBefore, imp.ExampleAfter)
			}
		}
	}
	if len(r.Feedback) > 0 {
		b.WriteString("## Development Notes\n\n")
		for _, f := range r.Feedback {
			fmt.Fprintf(&b, "- [P%d] **%s** - %s %s\n", f.Priority, f.Category, f.Assessment, f.Recommendation)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HistoryMarkdown renders a project's version history as a table.
func HistoryMarkdown(history []version.ConceptVersion) string {
	var b strings.Builder
	b.WriteString("# Version History\n\n")
	if len(history) == 0 {
		b.WriteString("No versions saved yet.\n")
		return b.String()
	}
	b.WriteString("| # | Score | Delta | Verdict | Changes |\n|---|---|---|---|---|\n")
	for _, v := range history {
		delta := "-"
		if v.ScoreDelta != nil {
			delta = fmt.Sprintf("%+d", *v.ScoreDelta)
		}
		changes := strings.Join(v.ChangesFromPrevious, "; ")
		if changes == "" {
			changes = v.ChangeDescription
		}
		fmt.Fprintf(&b, "| %d | %d | %s | %s | %s |\n", v.VersionNumber, v.Score, delta, v.Verdict, changes)
	}
	return b.String()
}
