// Package concept defines the screenwriting concept entity, the single input
// to every analysis call, together with the closed genre, format, and budget
// vocabularies the engine scores against.
package concept

import (
	"strings"
)

// Genre is the closed genre vocabulary.  Free-form caller strings are
// canonicalised through ParseGenre; lookups against catalogs apply the
// documented fallback rules (Drama for market statistics, Thriller for the
// comparable-title shelf) rather than erroring on unknown values.
type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDrama       Genre = "Drama"
	GenreFantasy     Genre = "Fantasy"
	GenreHorror      Genre = "Horror"
	GenreMystery     Genre = "Mystery"
	GenreRomance     Genre = "Romance"
	GenreSciFi       Genre = "Sci-Fi"
	GenreThriller    Genre = "Thriller"
	GenreDocumentary Genre = "Documentary"
)

// AllGenres lists every canonical genre in stable order.
var AllGenres = []Genre{
	GenreAction, GenreComedy, GenreDrama, GenreFantasy, GenreHorror,
	GenreMystery, GenreRomance, GenreSciFi, GenreThriller, GenreDocumentary,
}

// genreAliases maps lower-cased caller spellings to canonical genres.
var genreAliases = map[string]Genre{
	"action":          GenreAction,
	"comedy":          GenreComedy,
	"drama":           GenreDrama,
	"fantasy":         GenreFantasy,
	"horror":          GenreHorror,
	"mystery":         GenreMystery,
	"romance":         GenreRomance,
	"sci-fi":          GenreSciFi,
	"scifi":           GenreSciFi,
	"science fiction": GenreSciFi,
	"thriller":        GenreThriller,
	"documentary":     GenreDocumentary,
	"doc":             GenreDocumentary,
}

// ParseGenre canonicalises a caller-supplied genre string.  The second return
// value reports whether the string named a known genre; when false the first
// value echoes the trimmed input so downstream fallback rules can log it.
func ParseGenre(s string) (Genre, bool) {
	trimmed := strings.TrimSpace(s)
	if g, ok := genreAliases[strings.ToLower(trimmed)]; ok {
		return g, true
	}
	return Genre(trimmed), false
}

// Format is the closed production-format vocabulary.
type Format string

const (
	FormatFeature       Format = "Feature Film"
	FormatLimitedSeries Format = "Limited Series"
	FormatTVSeries      Format = "TV Series"
	FormatShort         Format = "Short Film"
)

// IsSeries reports whether the format is an episodic structure.
func (f Format) IsSeries() bool {
	return f == FormatLimitedSeries || f == FormatTVSeries
}

var formatAliases = map[string]Format{
	"feature film":   FormatFeature,
	"feature":        FormatFeature,
	"film":           FormatFeature,
	"limited series": FormatLimitedSeries,
	"miniseries":     FormatLimitedSeries,
	"tv series":      FormatTVSeries,
	"series":         FormatTVSeries,
	"tv":             FormatTVSeries,
	"short film":     FormatShort,
	"short":          FormatShort,
}

// ParseFormat canonicalises a caller-supplied format string.  Unknown
// spellings fall back to Feature Film, the engine's default production shape.
func ParseFormat(s string) (Format, bool) {
	trimmed := strings.TrimSpace(s)
	if f, ok := formatAliases[strings.ToLower(trimmed)]; ok {
		return f, true
	}
	return FormatFeature, false
}

// BudgetTier is the closed budget vocabulary.
type BudgetTier string

const (
	BudgetMicro    BudgetTier = "Micro"    // under $1M
	BudgetLow      BudgetTier = "Low"      // $1M–$5M
	BudgetMedium   BudgetTier = "Medium"   // $5M–$20M
	BudgetHigh     BudgetTier = "High"     // $20M–$60M
	BudgetTentpole BudgetTier = "Tentpole" // over $60M
)

// AllBudgetTiers lists every budget tier from smallest to largest.
var AllBudgetTiers = []BudgetTier{
	BudgetMicro, BudgetLow, BudgetMedium, BudgetHigh, BudgetTentpole,
}

// Concept is the screenwriter's pitch: logline, synopsis, genre, format, and
// optional positioning metadata.  A Concept is immutable once submitted to an
// analysis call; the development service copies it before mutation in what-if
// scenarios.
type Concept struct {
	Logline  string `json:"logline"`
	Synopsis string `json:"synopsis"`
	Genre    Genre  `json:"genre"`
	Format   Format `json:"format"`

	// Optional positioning metadata.  Empty strings mean "not declared".
	SecondaryGenre   Genre      `json:"secondaryGenre,omitempty"`
	Tone             string     `json:"tone,omitempty"`
	TargetAudience   string     `json:"targetAudience,omitempty"`
	BudgetTier       BudgetTier `json:"budgetTier,omitempty"`
	ComparableTitles []string   `json:"comparableTitles,omitempty"`
	SettingPeriod    string     `json:"settingPeriod,omitempty"`
	ProtagonistType  string     `json:"protagonistType,omitempty"`
}

// MaxComparableTitles is the number of declared comparable titles the scoring
// model credits; extra entries are ignored, not rejected.
const MaxComparableTitles = 3

// Normalize returns a copy with canonicalised genre/format spellings and at
// most MaxComparableTitles comparables.  The engine never rejects a
// syntactically valid Concept; normalisation is lossy only in casing.
func (c Concept) Normalize() Concept {
	out := c
	if g, ok := ParseGenre(string(c.Genre)); ok {
		out.Genre = g
	}
	if c.SecondaryGenre != "" {
		if g, ok := ParseGenre(string(c.SecondaryGenre)); ok {
			out.SecondaryGenre = g
		}
	}
	if f, ok := ParseFormat(string(c.Format)); ok {
		out.Format = f
	}
	if len(c.ComparableTitles) > MaxComparableTitles {
		out.ComparableTitles = append([]string(nil), c.ComparableTitles[:MaxComparableTitles]...)
	}
	return out
}

// HasSecondaryGenre reports whether a secondary genre was declared.
func (c Concept) HasSecondaryGenre() bool { return strings.TrimSpace(string(c.SecondaryGenre)) != "" }

// HasTone reports whether a tone was declared.
func (c Concept) HasTone() bool { return strings.TrimSpace(c.Tone) != "" }
