package handlers

import (
	"net/http"
	"strings"

	"travelmap/internal/domain"
	"travelmap/internal/http/middleware"
	"travelmap/internal/services"

	"github.com/gin-gonic/gin"
)

type createBookingRequest struct {
	DestinationID string `json:"destinationId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
}

// GET /api/bookings
func (a *API) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": a.Ledger.List()})
}

// POST /api/bookings
// Books a destination from the current result set (falling back to the
// catalog); the ledger stores a snapshot copy.
func (a *API) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", "body must be JSON with destinationId, name and email", nil)
		return
	}
	if strings.TrimSpace(req.DestinationID) == "" {
		RespondDomainError(c, domain.ValidationError{Field: "destinationId", Msg: "destination is required"})
		return
	}

	dest, ok := a.findDestination(req.DestinationID)
	if !ok {
		RespondDomainError(c, domain.NotFoundError{Resource: "destination"})
		return
	}

	booking, err := a.Ledger.Create(c.Request.Context(), dest, domain.Contact{Name: req.Name, Email: req.Email})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// DELETE /api/bookings/:id?confirm=true
// Cancellation needs the explicit confirm flag; an unknown id is a no-op.
func (a *API) CancelBooking(c *gin.Context) {
	id := c.Param("id")
	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	if err := a.Ledger.Cancel(c.Request.Context(), id, confirmed); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// GET /api/bookings/:id/itinerary
func (a *API) GetBookingItinerary(c *gin.Context) {
	docs := services.DocsService{Ledger: a.Ledger, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := docs.GenerateItinerary(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// findDestination searches the live result set first, then the catalog, so
// geocoder-derived entries stay bookable while they are on screen.
func (a *API) findDestination(id string) (domain.Destination, bool) {
	for _, d := range a.View.Snapshot().Results {
		if d.ID == id {
			return d, true
		}
	}
	for _, d := range a.Catalog.All() {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}
