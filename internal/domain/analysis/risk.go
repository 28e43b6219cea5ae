package analysis

// RiskTier is the categorical similarity-risk level for a concept.
type RiskTier string

const (
	RiskHigh     RiskTier = "HIGH"
	RiskModerate RiskTier = "MODERATE"
	RiskLow      RiskTier = "LOW"
)

// riskTierPresentation fixes the display color and narrative per tier.
var riskTierPresentation = map[RiskTier]struct {
	Color       string
	Description string
}{
	RiskHigh: {
		Color:       "#e5484d",
		Description: "The concept leans on heavily-traded tropes in a crowded genre; buyers will ask what separates it from the last five submissions they read.",
	},
	RiskModerate: {
		Color:       "#f5a623",
		Description: "Some familiar elements are present; the hook carries the concept but the pitch should address the overlaps head-on.",
	},
	RiskLow: {
		Color:       "#30a46c",
		Description: "No significant overlap with saturated material was detected.",
	},
}

// SimilarityRisk is the derived risk assessment: the raw trope-weight score,
// the tier it maps to, the tropes that contributed, and fixed presentation.
type SimilarityRisk struct {
	RiskScore     int      `json:"riskScore"`
	Tier          RiskTier `json:"tier"`
	MatchedTropes []string `json:"matchedTropes"`
	Color         string   `json:"color"`
	Description   string   `json:"description"`
}

// TierForRisk maps a raw risk score and the genre's saturation level to a
// tier.  High saturation alone is enough for HIGH; medium saturation alone is
// enough for MODERATE.
func TierForRisk(riskScore int, saturation SaturationLevel) RiskTier {
	if riskScore >= 6 || saturation == SaturationHigh {
		return RiskHigh
	}
	if riskScore >= 3 || saturation == SaturationMedium {
		return RiskModerate
	}
	return RiskLow
}

// NewSimilarityRisk assembles the full record for a computed score and tier.
func NewSimilarityRisk(riskScore int, saturation SaturationLevel, tropes []string) SimilarityRisk {
	tier := TierForRisk(riskScore, saturation)
	p := riskTierPresentation[tier]
	if tropes == nil {
		tropes = []string{}
	}
	return SimilarityRisk{
		RiskScore:     riskScore,
		Tier:          tier,
		MatchedTropes: tropes,
		Color:         p.Color,
		Description:   p.Description,
	}
}
