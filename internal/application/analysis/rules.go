package analysis

import (
	"strings"
	"unicode"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// ─────────────────────────────────────────────────────────────────────────────
// Rule tables
//
// Every pattern the scoring pipeline tests against free text lives here as a
// named, reviewable data structure.  The analyzers iterate these tables; they
// contain no inline patterns of their own.  Matching is case-insensitive:
// single-word terms match whole tokens, multi-word terms match as substrings
// of the normalized text.
// ─────────────────────────────────────────────────────────────────────────────

// PatternFamily is one named group of equivalent terms with a single weight.
// A family contributes its weight at most once per text, no matter how many
// of its terms match.
type PatternFamily struct {
	Name   string
	Weight int
	Terms  []string
}

// loglineText is a logline pre-processed for rule matching: the lower-cased
// raw text for phrase matching and a token set for whole-word matching.
type loglineText struct {
	lower  string
	tokens map[string]bool
}

func newLoglineText(s string) loglineText {
	lower := strings.ToLower(s)
	tokens := map[string]bool{}
	for _, tok := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-'
	}) {
		tokens[tok] = true
	}
	return loglineText{lower: lower, tokens: tokens}
}

// matches reports whether any term of the family appears in the text.
func (f PatternFamily) matches(t loglineText) bool {
	for _, term := range f.Terms {
		if strings.Contains(term, " ") {
			if strings.Contains(t.lower, term) {
				return true
			}
		} else if t.tokens[term] {
			return true
		}
	}
	return false
}

// wordCount counts whitespace-delimited words.
func wordCount(s string) int {
	return len(strings.Fields(s))
}

// ── Protagonist (max 15) ────────────────────────────────────────────────────

var protagonistRoleFamily = PatternFamily{
	Name: "role", Weight: 5,
	Terms: []string{
		"agent", "detective", "cop", "officer", "doctor", "surgeon", "nurse",
		"lawyer", "soldier", "veteran", "teacher", "professor", "scientist",
		"journalist", "reporter", "writer", "mother", "father", "widow",
		"priest", "nun", "hacker", "thief", "assassin", "chef", "student",
		"astronaut", "pilot", "boxer", "fisherman", "farmer", "musician",
		"athlete", "heiress", "con artist", "bounty hunter", "firefighter",
	},
}

var protagonistActiveVoiceFamily = PatternFamily{
	Name: "active voice", Weight: 5,
	Terms: []string{
		"must", "has to", "needs to", "fights to", "struggles to",
		"races to", "sets out to", "vows to", "is forced to",
	},
}

var protagonistTraitFamily = PatternFamily{
	Name: "defining trait", Weight: 5,
	Terms: []string{
		"disgraced", "reclusive", "brilliant", "haunted", "grieving",
		"obsessive", "idealistic", "cynical", "fearless", "estranged",
		"washed-up", "rookie", "retired", "young", "aging", "struggling",
		"ambitious", "self-destructive", "blind", "widowed", "orphaned",
	},
}

// ── Conflict (max 20) ───────────────────────────────────────────────────────

// conflictFamilies contribute +7 each, at most three families counted.
var conflictFamilies = []PatternFamily{
	{
		Name: "opposition verbs", Weight: 7,
		Terms: []string{
			"fight", "fights", "battle", "battles", "confront", "confronts",
			"oppose", "resist", "defy", "defies", "expose", "exposes",
			"escape", "escapes", "stop", "stops", "overthrow", "hunt",
			"hunts", "outwit", "survive", "take down", "bring down",
		},
	},
	{
		Name: "antagonist nouns", Weight: 7,
		Terms: []string{
			"killer", "murderer", "bomber", "kidnapper", "stalker",
			"cartel", "mob", "gang", "cult", "syndicate", "corporation",
			"dictator", "warlord", "hitman", "terrorist", "rival",
			"serial killer", "crime lord",
		},
	},
	{
		Name: "crime and war nouns", Weight: 7,
		Terms: []string{
			"murder", "heist", "war", "conspiracy", "robbery",
			"kidnapping", "assassination", "invasion", "uprising",
			"smuggling", "corruption", "bombing", "massacre", "siege",
		},
	},
}

var conflictGoalFamily = PatternFamily{
	Name: "explicit goal", Weight: 6,
	Terms: []string{
		"to save", "to stop", "to find", "to rescue", "to uncover",
		"to expose", "to win", "to protect", "to avenge", "to clear",
		"to escape", "to survive",
	},
}

// ── Stakes (max 15) ─────────────────────────────────────────────────────────

// stakesFamilies are additive and independently gated before the clamp.
var stakesFamilies = []PatternFamily{
	{
		Name: "life and death", Weight: 8,
		Terms: []string{
			"death", "die", "dies", "dying", "kill", "killed", "kills",
			"survive", "survival", "fatal", "deadly", "burns", "execution",
			"extinction", "life or death",
		},
	},
	{
		Name: "world and society", Weight: 5,
		Terms: []string{
			"world", "city", "nation", "country", "humanity", "mankind",
			"civilization", "society", "planet", "global",
		},
	},
	{
		Name: "personal and family", Weight: 5,
		Terms: []string{
			"family", "daughter", "son", "wife", "husband", "mother",
			"father", "brother", "sister", "marriage", "home", "child",
			"children",
		},
	},
	{
		Name: "time pressure", Weight: 4,
		Terms: []string{
			"before", "deadline", "countdown", "ticking", "midnight",
			"hours left", "days left", "race against", "running out",
			"48 hours", "24 hours",
		},
	},
}

// ── Unique hook (max 20) ────────────────────────────────────────────────────

var hookWhatIfFamily = PatternFamily{
	Name: "what-if framing", Weight: 5,
	Terms: []string{"what if", "in a world", "imagine a"},
}

// hookFreshFamilies contribute +5 each.
var hookFreshFamilies = []PatternFamily{
	{
		Name: "unexpected juxtaposition", Weight: 5,
		Terms: []string{
			"unlikely", "unexpected", "last person", "only one who",
			"against all odds", "least qualified",
		},
	},
	{
		Name: "speculative twist", Weight: 5,
		Terms: []string{
			"time travel", "parallel", "alternate", "supernatural",
			"artificial intelligence", "clone", "simulation", "immortal",
			"memory", "afterlife",
		},
	},
	{
		Name: "role reversal", Weight: 5,
		Terms: []string{
			"turns the tables", "becomes the", "hunted becomes",
			"roles reversed", "switches places",
		},
	},
}

// hookSecondaryGenreBonus is credited when the concept declares a secondary
// genre, independent of the logline text.
const hookSecondaryGenreBonus = 5

// ── Genre clarity (max 10) ──────────────────────────────────────────────────

// genreKeywords credits +3 per matched keyword of the concept's genre.
var genreKeywords = map[concept.Genre][]string{
	concept.GenreAction:      {"chase", "explosion", "mission", "combat", "showdown", "elite", "operative"},
	concept.GenreComedy:      {"hilarious", "awkward", "mishap", "hapless", "bumbling", "antics", "disaster"},
	concept.GenreDrama:       {"struggle", "redemption", "loss", "relationship", "secret", "legacy", "forgiveness"},
	concept.GenreFantasy:     {"magic", "kingdom", "prophecy", "quest", "dragon", "realm", "curse"},
	concept.GenreHorror:      {"haunted", "demon", "possession", "terror", "nightmare", "evil", "sinister"},
	concept.GenreMystery:     {"clue", "disappearance", "investigation", "vanished", "unsolved", "suspect", "secret"},
	concept.GenreRomance:     {"love", "heart", "romance", "wedding", "soulmate", "passion", "second chance"},
	concept.GenreSciFi:       {"space", "future", "technology", "alien", "robot", "colony", "experiment"},
	concept.GenreThriller:    {"conspiracy", "bomber", "hostage", "agent", "assassin", "cover-up", "manhunt"},
	concept.GenreDocumentary: {"true story", "real", "untold", "archival", "investigation", "testimony"},
}

const (
	genreKeywordWeight  = 3
	genreClarityToneAdd = 3
)

// ── Emotional resonance (max 10) ────────────────────────────────────────────

// emotionalFamilies contribute +4 each; three families are defined.
var emotionalFamilies = []PatternFamily{
	{
		Name: "loss and grief", Weight: 4,
		Terms: []string{"loss", "grief", "mourning", "death of", "widow", "orphan", "goodbye"},
	},
	{
		Name: "love and connection", Weight: 4,
		Terms: []string{"love", "friendship", "family", "bond", "reunion", "belonging", "loyalty"},
	},
	{
		Name: "redemption and identity", Weight: 4,
		Terms: []string{"redemption", "forgiveness", "identity", "self-discovery", "second chance", "sacrifice", "hope"},
	},
}

// ── Concision bands (max 10) ────────────────────────────────────────────────

// concisionBand returns the concision score for a word count.
// 25–50 words is the sweet spot for a salable logline.
func concisionBand(words int) int {
	switch {
	case words >= 25 && words <= 50:
		return 10
	case words >= 20 && words <= 60:
		return 7
	case words >= 15 && words <= 70:
		return 5
	case words < 15:
		return 3
	default:
		return 2
	}
}

// ── Similarity-risk tropes ──────────────────────────────────────────────────

// TropeRule is one overused-trope phrase and its risk weight.
type TropeRule struct {
	Phrase string
	Weight int
}

// tropeRules are matched as case-insensitive substrings of logline + synopsis.
var tropeRules = []TropeRule{
	{"chosen one", 3},
	{"love triangle", 3},
	{"one last job", 3},
	{"dead wife", 3},
	{"zombie apocalypse", 3},
	{"save the world", 2},
	{"fish out of water", 2},
	{"amnesia", 2},
	{"haunted house", 2},
	{"serial killer", 2},
	{"time travel", 2},
	{"reluctant hero", 2},
	{"buddy cop", 2},
	{"secret billionaire", 2},
	{"ancient prophecy", 2},
}

// ── Synopsis quality keywords ───────────────────────────────────────────────

var synopsisStructureTerms = []string{
	"begins", "when", "until", "ultimately", "finally", "climax",
	"discovers", "forced to", "turning point",
}

var synopsisCharacterArcTerms = []string{
	"transforms", "learns", "realizes", "grows", "changes", "confronts",
	"comes to terms", "must choose",
}

var synopsisThemeTerms = []string{
	"explores", "examines", "questions", "meditation on", "story about",
	"at its heart",
}

// ── Format / genre synergy ──────────────────────────────────────────────────

// formatSynergy lists genre pairings with proven marketplace traction per
// format; a hit earns the +4 synergy bonus.
var formatSynergy = map[concept.Format][]concept.Genre{
	concept.FormatFeature: {
		concept.GenreAction, concept.GenreHorror, concept.GenreComedy,
		concept.GenreRomance, concept.GenreThriller,
	},
	concept.FormatLimitedSeries: {
		concept.GenreDrama, concept.GenreMystery, concept.GenreThriller,
		concept.GenreDocumentary,
	},
	concept.FormatTVSeries: {
		concept.GenreComedy, concept.GenreDrama, concept.GenreSciFi,
		concept.GenreFantasy,
	},
	concept.FormatShort: {
		concept.GenreHorror, concept.GenreComedy, concept.GenreDrama,
		concept.GenreDocumentary,
	},
}

// seriesEngineGenres support an ongoing episodic engine; a series concept in
// one of these earns the +2 structure bonus.
var seriesEngineGenres = map[concept.Genre]bool{
	concept.GenreDrama:    true,
	concept.GenreMystery:  true,
	concept.GenreSciFi:    true,
	concept.GenreFantasy:  true,
	concept.GenreThriller: true,
}

// seriesShapeTerms in the synopsis earn the +1 structure bonus for series.
var seriesShapeTerms = []string{
	"each episode", "season", "episodic", "case of the week", "over the series",
}

// prestigeAudienceTerms identify an awards-corridor target audience.
var prestigeAudienceTerms = []string{
	"prestige", "awards", "adult drama", "critics", "festival", "arthouse",
}
