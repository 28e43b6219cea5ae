package handlers

import (
	"github.com/gin-gonic/gin"

	appanalysis "github.com/slatedeck/GreenLight-Intelligence/internal/application/analysis"
	"github.com/slatedeck/GreenLight-Intelligence/internal/application/development"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
	"github.com/slatedeck/GreenLight-Intelligence/pkg/types/common"
)

// DevelopmentHandler serves the stateful concept-development endpoints.
type DevelopmentHandler struct {
	service *development.Service
}

// NewDevelopmentHandler constructs the handler.
func NewDevelopmentHandler(service *development.Service) *DevelopmentHandler {
	return &DevelopmentHandler{service: service}
}

type saveVersionRequest struct {
	Concept           concept.Concept `json:"concept"`
	ChangeDescription string          `json:"changeDescription"`
	Seed              *int64          `json:"seed,omitempty"`
}

// SaveVersion handles POST /api/v1/projects/:id/versions.
func (h *DevelopmentHandler) SaveVersion(c *gin.Context) {
	var req saveVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	outcome, err := h.service.SaveVersion(c.Request.Context(),
		common.ProjectID(c.Param("id")), req.Concept, req.ChangeDescription,
		appanalysis.Options{Seed: req.Seed})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, outcome)
}

// History handles GET /api/v1/projects/:id/versions.
func (h *DevelopmentHandler) History(c *gin.Context) {
	history, err := h.service.History(c.Request.Context(), common.ProjectID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, history)
}

type compareRequest struct {
	ConceptA concept.Concept `json:"conceptA"`
	ConceptB concept.Concept `json:"conceptB"`
	Seed     *int64          `json:"seed,omitempty"`
}

// Compare handles POST /api/v1/compare.
func (h *DevelopmentHandler) Compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	cmp, err := h.service.Compare(c.Request.Context(), req.ConceptA, req.ConceptB,
		appanalysis.Options{Seed: req.Seed})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, cmp)
}

type whatIfRequest struct {
	Concept concept.Concept             `json:"concept"`
	Field   development.ScenarioField   `json:"field"`
	Seed    *int64                      `json:"seed,omitempty"`
}

// WhatIf handles POST /api/v1/whatif.
func (h *DevelopmentHandler) WhatIf(c *gin.Context) {
	var req whatIfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	scenarios, err := h.service.WhatIf(c.Request.Context(), req.Concept, req.Field,
		appanalysis.Options{Seed: req.Seed})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, scenarios)
}

type rewriteRequest struct {
	Concept concept.Concept `json:"concept"`
	Seed    *int64          `json:"seed,omitempty"`
}

// Rewrite handles POST /api/v1/rewrite.
func (h *DevelopmentHandler) Rewrite(c *gin.Context) {
	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	suggestion, err := h.service.Rewrite(c.Request.Context(), req.Concept,
		appanalysis.Options{Seed: req.Seed})
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, suggestion)
}
