package handlers

import (
	"net/http"

	"travelmap/internal/domain"
	"travelmap/internal/http/middleware"
	"travelmap/internal/services"
	"travelmap/internal/utils"

	"github.com/gin-gonic/gin"
)

// API bundles the services behind the HTTP surface.
type API struct {
	Catalog  *services.CatalogService
	Resolver *services.ResolverService
	View     *services.ViewStateService
	Ledger   *services.BookingService
	Widget   *WidgetQueue
}

// GET /api/search?q=
// Resolves the query and publishes the outcome into the view state (markers,
// auto-selection, recentring). A geocoder failure yields an empty result set
// with a note, never an error status: search failure is non-blocking.
func (a *API) Search(c *gin.Context) {
	query := c.Query("q")
	reqID := middleware.GetRequestID(c)

	res, err := a.Resolver.Resolve(c.Request.Context(), query)
	if err != nil {
		if domain.IsResolution(err) {
			state := a.View.ApplyResolution(services.Resolution{
				Query:   res.Query,
				Results: []domain.Destination{},
				Source:  res.Source,
			})
			c.JSON(http.StatusOK, gin.H{
				"query":   res.Query,
				"source":  res.Source,
				"results": state.Results,
				"state":   state,
				"note":    "search service unavailable, showing no results",
			})
			return
		}
		RespondDomainError(c, err)
		return
	}

	if res.Stale {
		// A newer search already owns the result set; report current state.
		utils.LogEvent(reqID, "search", "resolve", "superseded response for "+res.Query)
		state := a.View.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"query":   res.Query,
			"source":  res.Source,
			"results": state.Results,
			"state":   state,
			"stale":   true,
		})
		return
	}

	state := a.View.ApplyResolution(res)
	c.JSON(http.StatusOK, gin.H{
		"query":   res.Query,
		"source":  res.Source,
		"results": state.Results,
		"state":   state,
	})
}

// GET /api/destinations
func (a *API) GetDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"destinations": a.Catalog.All()})
}
