package analysis

// Clamp ranges and list bounds for catalog-derived match records.
const (
	MinBuyerMatchScore = 50
	MaxBuyerMatchScore = 98

	// BuyerMatchThreshold is the minimum score for a buyer or producer to
	// appear in the result at all.
	BuyerMatchThreshold = 60

	MinComparableMatchScore = 25
	MaxComparableMatchScore = 85

	// MaxMatches bounds every match list.
	MaxMatches = 10
)

// BuyerMatch is one ranked buyer recommendation.
type BuyerMatch struct {
	Name       string `json:"name"`
	Type       string `json:"type"` // Studio | Streamer | Network | Independent
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason"`
}

// ProducerMatch is one ranked production-company recommendation.
type ProducerMatch struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason"`
}

// ComparableTitle is one ranked market comparable.
type ComparableTitle struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Performance string `json:"performance"`
	MatchScore  int    `json:"matchScore"`
	Reason      string `json:"reason"`
}
