package development

import (
	"context"
	"math/rand"
	"strings"
	"unicode"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	domanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/domain/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// Rewrite thresholds: a dimension below its threshold gets a templated
// replacement segment from the genre's phrase bank.
const (
	rewriteProtagonistBelow = 10
	rewriteConflictBelow    = 13
	rewriteStakesBelow      = 8
	rewriteHookBelow        = 10
)

// phraseBank holds the per-genre segments the rewriter assembles from.
// Segments are written to compose in subject → conflict → stakes → hook
// order.
type phraseBank struct {
	Protagonists []string // noun phrases: "A disgraced detective"
	Conflicts    []string // verb phrases: "must take down the syndicate ..."
	Stakes       []string // consequence clauses: "before the city pays the price"
	Hooks        []string // framing clauses: "in a world where ..."
}

var genrePhraseBanks = map[concept.Genre]phraseBank{
	concept.GenreThriller: {
		Protagonists: []string{
			"A disgraced federal agent", "A witness with a hidden past",
			"A burned-out investigator",
		},
		Conflicts: []string{
			"must stop a killer who is always one step ahead",
			"must expose a conspiracy reaching the highest office",
			"must outwit the syndicate that owns the city",
		},
		Stakes: []string{
			"before the next victim is someone she loves",
			"before the cover-up buries the truth for good",
		},
		Hooks: []string{
			"in a city where no one can be trusted",
			"where the only witness is the prime suspect",
		},
	},
	concept.GenreHorror: {
		Protagonists: []string{
			"A grieving mother", "A skeptical paranormal investigator",
		},
		Conflicts: []string{
			"must confront the presence feeding on her family",
			"must break a curse that claims a life every generation",
		},
		Stakes: []string{
			"before her children are taken one by one",
			"before dawn never comes again",
		},
		Hooks: []string{
			"in a house that remembers everyone who died there",
			"where the haunting only she can see is real",
		},
	},
	concept.GenreDrama: {
		Protagonists: []string{
			"An estranged daughter", "A washed-up musician",
		},
		Conflicts: []string{
			"must confront the family secret that broke them apart",
			"must fight for one last chance at redemption",
		},
		Stakes: []string{
			"before the only person who believed in him is gone",
			"before the family home, and everything it holds, is sold",
		},
		Hooks: []string{
			"in a town that never forgave her",
			"where forgiveness costs more than the truth",
		},
	},
	concept.GenreSciFi: {
		Protagonists: []string{
			"A colony engineer", "The last human translator",
		},
		Conflicts: []string{
			"must stop the machine intelligence rewriting human memory",
			"must cross a dying planet to reach the final launch",
		},
		Stakes: []string{
			"before humanity forgets it was ever free",
			"before the window to escape closes forever",
		},
		Hooks: []string{
			"in a future where memories are currency",
			"where the simulation has started editing its inhabitants",
		},
	},
}

// defaultPhraseBank serves genres without a dedicated bank.
var defaultPhraseBank = phraseBank{
	Protagonists: []string{"A determined outsider", "An unlikely hero"},
	Conflicts: []string{
		"must defeat the force that upended their world",
		"must win a fight everyone says is already lost",
	},
	Stakes: []string{
		"before everything they love is lost",
		"before time runs out",
	},
	Hooks: []string{
		"against impossible odds",
		"where the rules no longer apply",
	},
}

// RewriteSuggestion is the output of one rewrite call.
type RewriteSuggestion struct {
	Original            string   `json:"original"`
	Rewritten           string   `json:"rewritten"`
	AddressedDimensions []string `json:"addressedDimensions"`
	Note                string   `json:"note"`
}

func pick(rng *rand.Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[rng.Intn(len(options))]
}

// normalizeSentence collapses whitespace, strips dangling punctuation,
// capitalizes the first letter, and closes with a period.
func normalizeSentence(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimRight(s, " .,;:!?")
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes) + "."
}

// bankFor returns the genre's phrase bank or the default.
func bankFor(g concept.Genre) phraseBank {
	if b, ok := genrePhraseBanks[g]; ok {
		return b
	}
	return defaultPhraseBank
}

// Rewrite suggests a stronger logline.  Each sub-score below its threshold is
// replaced with a segment from the genre's phrase bank; the selection is
// driven by the injected seed, so output is deterministic per seed.  When the
// protagonist segment is replaced, the whole sentence is reassembled from the
// bank; otherwise the original logline is kept as the lead-in and weak
// segments are appended.
func (s *Service) Rewrite(ctx context.Context, c concept.Concept, opts appanalysis.Options) (*RewriteSuggestion, error) {
	result, err := s.analyzer.Analyze(ctx, c, opts)
	if err != nil {
		return nil, err
	}
	b := result.Logline
	weak := map[domanalysis.Dimension]bool{
		domanalysis.DimProtagonist: b.Protagonist < rewriteProtagonistBelow,
		domanalysis.DimConflict:    b.Conflict < rewriteConflictBelow,
		domanalysis.DimStakes:      b.Stakes < rewriteStakesBelow,
		domanalysis.DimUniqueHook:  b.UniqueHook < rewriteHookBelow,
	}

	addressed := []string{}
	for _, d := range []domanalysis.Dimension{
		domanalysis.DimProtagonist, domanalysis.DimConflict,
		domanalysis.DimStakes, domanalysis.DimUniqueHook,
	} {
		if weak[d] {
			addressed = append(addressed, string(d))
		}
	}
	if len(addressed) == 0 {
		return &RewriteSuggestion{
			Original:            c.Logline,
			Rewritten:           normalizeSentence(c.Logline),
			AddressedDimensions: []string{},
			Note:                "All core dimensions clear their thresholds; only light cleanup applied.",
		}, nil
	}

	rng := opts.Rand()
	bank := bankFor(result.Concept.Genre)
	kernel := strings.TrimRight(strings.TrimSpace(c.Logline), " .,;:!?")

	var parts []string
	if weak[domanalysis.DimProtagonist] || kernel == "" {
		// Without a usable lead-in the sentence is assembled entirely
		// from the bank, regardless of individual thresholds.
		parts = append(parts, pick(rng, bank.Protagonists), pick(rng, bank.Conflicts),
			pick(rng, bank.Stakes)+",", pick(rng, bank.Hooks))
	} else {
		parts = append(parts, kernel)
		if weak[domanalysis.DimConflict] {
			parts = append(parts, "and", pick(rng, bank.Conflicts))
		}
		if weak[domanalysis.DimStakes] {
			parts = append(parts, pick(rng, bank.Stakes))
		}
		if weak[domanalysis.DimUniqueHook] {
			parts = append(parts, pick(rng, bank.Hooks))
		}
	}

	return &RewriteSuggestion{
		Original:            c.Logline,
		Rewritten:           normalizeSentence(strings.Join(parts, " ")),
		AddressedDimensions: addressed,
		Note:                "Template-assembled suggestion; adapt the specifics to your story before using it.",
	}, nil
}
