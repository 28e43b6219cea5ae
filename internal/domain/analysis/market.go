package analysis

// SaturationLevel describes how crowded a genre's market currently is.
type SaturationLevel string

const (
	SaturationLow    SaturationLevel = "low"
	SaturationMedium SaturationLevel = "medium"
	SaturationHigh   SaturationLevel = "high"
)

// Genre-bonus clamp range.  The bonus is a bounded adjustment, never a
// dominant term in the final score.
const (
	MinGenreBonus = -10
	MaxGenreBonus = 15
)

// GenreMarketAnalysis is the derived, read-only market picture for one genre.
// Built by the market analyzer from static catalog statistics; unknown genres
// resolve to the Drama record rather than erroring.
type GenreMarketAnalysis struct {
	Genre           string          `json:"genre"`
	MarketShare     float64         `json:"marketShare"`     // percentage of annual sales volume
	GrowthRate      float64         `json:"growthRate"`      // year-over-year, percent; negative = shrinking
	Saturation      SaturationLevel `json:"saturationLevel"` // low | medium | high
	StreamingDemand int             `json:"streamingDemand"` // 0–100 demand index
	AverageROI      float64         `json:"averageROI"`      // multiple of budget

	// GenreBonus is the bounded score adjustment derived from the fields
	// above, clamped to [MinGenreBonus, MaxGenreBonus].
	GenreBonus int `json:"genreBonus"`

	// Fallback reports that the requested genre was unknown and the Drama
	// default record was used.
	Fallback bool `json:"fallback,omitempty"`
}
