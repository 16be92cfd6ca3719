package domain

import "fmt"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point is inside the usual lat/lon ranges.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon)
}

// Destination is one place the user can view or book. Catalog entries carry a
// numeric id assigned by the database; geocoder hits get a synthetic string id
// and live only inside the result set that produced them.
type Destination struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Summary     string      `json:"summary"`
}

// Viewport is the map's current center and zoom.
type Viewport struct {
	Center Coordinates `json:"center"`
	Zoom   float64     `json:"zoom"`
}

// ViewportPatch merges partial center/zoom updates; nil fields stay untouched.
type ViewportPatch struct {
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
	Zoom *float64 `json:"zoom"`
}

const (
	// DefaultZoom is the world overview shown before any search.
	DefaultZoom = 2.5
	// FoundZoom is applied when a search result is auto-selected.
	FoundZoom = 6
)

// DefaultViewport is the startup view, centered on Paris.
func DefaultViewport() Viewport {
	return Viewport{Center: Coordinates{Lat: 48.8566, Lon: 2.3522}, Zoom: DefaultZoom}
}
