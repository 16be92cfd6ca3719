package handlers

import (
	"net/http"

	"travelmap/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/viewport
func (a *API) GetViewState(c *gin.Context) {
	c.JSON(http.StatusOK, a.View.Snapshot())
}

// POST /api/viewport
// Partial update; omitted fields keep their current value.
func (a *API) SetViewport(c *gin.Context) {
	var patch domain.ViewportPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "body must be JSON with lat/lon/zoom", nil)
		return
	}
	if patch.Lat == nil && patch.Lon == nil && patch.Zoom == nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "at least one of lat, lon, zoom is required", nil)
		return
	}
	if patch.Lat != nil || patch.Lon != nil {
		lat, lon := 0.0, 0.0
		if patch.Lat != nil {
			lat = *patch.Lat
		}
		if patch.Lon != nil {
			lon = *patch.Lon
		}
		probe := domain.Coordinates{Lat: lat, Lon: lon}
		if !probe.Valid() {
			RespondDomainError(c, domain.ValidationError{Field: "center", Msg: "latitude or longitude out of range"})
			return
		}
	}

	vp := a.View.SetViewport(patch)
	c.JSON(http.StatusOK, gin.H{"viewport": vp})
}

type gestureRequest struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom float64 `json:"zoom"`
}

// POST /api/viewport/gesture
// End-of-gesture report from the widget; adopted without echoing a SetView.
func (a *API) ReportGesture(c *gin.Context) {
	var req gestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "body must be JSON with lat, lon and zoom", nil)
		return
	}
	center := domain.Coordinates{Lat: req.Lat, Lon: req.Lon}
	if !center.Valid() {
		RespondDomainError(c, domain.ValidationError{Field: "center", Msg: "latitude or longitude out of range"})
		return
	}

	vp := a.View.ReportGesture(center, req.Zoom)
	c.JSON(http.StatusOK, gin.H{"viewport": vp})
}

// GET /api/viewport/commands
// Drains pending widget commands for the frontend to replay.
func (a *API) DrainWidgetCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": a.Widget.Drain()})
}

type selectRequest struct {
	ID       string `json:"id"`
	Recenter bool   `json:"recenter"`
}

// POST /api/select
// Highlights a result-set entry; optionally recenters onto it.
func (a *API) Select(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		respondError(c, http.StatusBadRequest, "invalid_body", "body must be JSON with a destination id", nil)
		return
	}

	state := a.View.Snapshot()
	for _, d := range state.Results {
		if d.ID == req.ID {
			a.View.Select(d, req.Recenter)
			c.JSON(http.StatusOK, a.View.Snapshot())
			return
		}
	}
	RespondDomainError(c, domain.NotFoundError{Resource: "destination"})
}
