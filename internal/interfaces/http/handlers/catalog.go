package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/catalog"
	"github.com/slatedeck/GreenLight-Intelligence/internal/domain/concept"
)

// CatalogHandler exposes read-only catalog browsing.
type CatalogHandler struct {
	provider catalog.Provider
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(provider catalog.Provider) *CatalogHandler {
	return &CatalogHandler{provider: provider}
}

type buyerView struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	PreferredGenres []string `json:"preferredGenres"`
	Formats         []string `json:"formats"`
	Appetite        string   `json:"appetite"`
}

// Buyers handles GET /api/v1/catalog/buyers?genre=.  With a genre parameter
// only buyers that list the genre as a preference are returned.
func (h *CatalogHandler) Buyers(c *gin.Context) {
	buyers, err := h.provider.Buyers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	var genreFilter concept.Genre
	if q := c.Query("genre"); q != "" {
		genreFilter, _ = concept.ParseGenre(q)
	}
	views := []buyerView{}
	for _, b := range buyers {
		if genreFilter != "" && !b.PrefersGenre(genreFilter) {
			continue
		}
		v := buyerView{Name: b.Name, Type: string(b.Type), Appetite: b.Appetite}
		for _, g := range b.PreferredGenres {
			v.PreferredGenres = append(v.PreferredGenres, string(g))
		}
		for _, f := range b.Formats {
			v.Formats = append(v.Formats, string(f))
		}
		views = append(views, v)
	}
	respondOK(c, views)
}

// Titles handles GET /api/v1/catalog/titles?genre=.
func (h *CatalogHandler) Titles(c *gin.Context) {
	genre, _ := concept.ParseGenre(c.Query("genre"))
	titles, fellBack, err := h.provider.TitlesForGenre(c.Request.Context(), genre)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"titles": titles, "fallback": fellBack})
}

// Market handles GET /api/v1/catalog/market?genre=.
func (h *CatalogHandler) Market(c *gin.Context) {
	genre, _ := concept.ParseGenre(c.Query("genre"))
	stats, fellBack, err := h.provider.MarketStats(c.Request.Context(), genre)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"stats": stats, "fallback": fellBack})
}
