// Package http wires the gin router and the API server lifecycle.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/logging"
	prommetrics "github.com/slatedeck/GreenLight-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/slatedeck/GreenLight-Intelligence/internal/interfaces/http/handlers"
	"github.com/slatedeck/GreenLight-Intelligence/internal/interfaces/http/middleware"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Analysis    *handlers.AnalysisHandler
	Development *handlers.DevelopmentHandler
	Catalog     catalog.Provider
	Metrics     *prommetrics.Metrics
	Logger      logging.Logger
	Version     string
}

// NewRouter builds the full route table.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.AccessLog(deps.Logger))
	r.Use(middleware.CORS())
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	health := handlers.NewHealthHandler(deps.Version)
	r.GET("/healthz", health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	catalogH := handlers.NewCatalogHandler(deps.Catalog)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analysis", deps.Analysis.Analyze)
		v1.POST("/analysis/report", deps.Analysis.Report)

		v1.POST("/compare", deps.Development.Compare)
		v1.POST("/whatif", deps.Development.WhatIf)
		v1.POST("/rewrite", deps.Development.Rewrite)
		v1.POST("/projects/:id/versions", deps.Development.SaveVersion)
		v1.GET("/projects/:id/versions", deps.Development.History)

		v1.GET("/catalog/buyers", catalogH.Buyers)
		v1.GET("/catalog/titles", catalogH.Titles)
		v1.GET("/catalog/market", catalogH.Market)
	}
	return r
}
