package handlers

import (
	"github.com/gin-gonic/gin"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/application/reporting"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// AnalysisHandler serves the stateless scoring endpoints.
type AnalysisHandler struct {
	service *appanalysis.Service
}

// NewAnalysisHandler constructs the handler.
func NewAnalysisHandler(service *appanalysis.Service) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// analyzeRequest is the wire shape of a scoring request.
type analyzeRequest struct {
	Concept concept.Concept `json:"concept"`
	Seed    *int64          `json:"seed,omitempty"`
}

// Analyze handles POST /api/v1/analysis.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := h.service.Analyze(c.Request.Context(), req.Concept, appanalysis.Options{Seed: req.Seed})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, result)
}

// Report handles POST /api/v1/analysis/report: same computation, rendered as
// a markdown document.
func (h *AnalysisHandler) Report(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	result, err := h.service.Analyze(c.Request.Context(), req.Concept, appanalysis.Options{Seed: req.Seed})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"report": reporting.Markdown(result)})
}
