package services

import (
	"math"
	"sync"

	"travelmap/internal/domain"
)

// MapWidget is the outbound capability of the embedded map. Both calls are
// fire-and-forget; implementations must not call back into the view state
// service synchronously.
type MapWidget interface {
	RenderMarkers(dests []domain.Destination)
	SetView(center domain.Coordinates, zoom float64)
}

// applyState tracks which direction a viewport change is currently flowing,
// so the state->widget push and the widget->state report can never feed each
// other.
type applyState int

const (
	stateIdle applyState = iota
	stateApplyingProgrammatic
	stateApplyingGesture
)

// ViewStateService owns the authoritative viewport, the selected destination
// and the current result set. Programmatic changes go out to the widget as
// exactly one SetView push; widget gesture reports come in through
// ReportGesture and are adopted without echoing a push back.
type ViewStateService struct {
	Widget MapWidget

	mu       sync.Mutex
	state    applyState
	viewport domain.Viewport
	pushed   domain.Viewport
	selected *domain.Destination
	results  []domain.Destination
}

func NewViewStateService(widget MapWidget) *ViewStateService {
	return &ViewStateService{
		Widget:   widget,
		viewport: domain.DefaultViewport(),
		results:  []domain.Destination{},
	}
}

// ViewState is a read snapshot for the HTTP layer.
type ViewState struct {
	Viewport domain.Viewport      `json:"viewport"`
	Selected *domain.Destination  `json:"selected"`
	Results  []domain.Destination `json:"results"`
}

func (s *ViewStateService) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *ViewStateService) snapshotLocked() ViewState {
	results := make([]domain.Destination, len(s.results))
	copy(results, s.results)
	var sel *domain.Destination
	if s.selected != nil {
		c := *s.selected
		sel = &c
	}
	return ViewState{Viewport: s.viewport, Selected: sel, Results: results}
}

// SetViewport merges the given fields into the viewport and issues one
// imperative SetView to the widget. This is the only path by which other
// components change the viewport.
func (s *ViewStateService) SetViewport(p domain.ViewportPatch) domain.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setViewportLocked(p)
}

func (s *ViewStateService) setViewportLocked(p domain.ViewportPatch) domain.Viewport {
	if p.Lat != nil {
		s.viewport.Center.Lat = *p.Lat
	}
	if p.Lon != nil {
		s.viewport.Center.Lon = *p.Lon
	}
	if p.Zoom != nil {
		s.viewport.Zoom = *p.Zoom
	}

	s.state = stateApplyingProgrammatic
	s.pushed = s.viewport
	s.Widget.SetView(s.viewport.Center, s.viewport.Zoom)
	return s.viewport
}

// ReportGesture adopts a widget-reported end-of-gesture position. It never
// pushes a SetView back; a report matching the viewport we just pushed is the
// widget acknowledging that push and changes nothing.
func (s *ViewStateService) ReportGesture(center domain.Coordinates, zoom float64) domain.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateApplyingProgrammatic && sameView(s.pushed, center, zoom) {
		s.state = stateIdle
		return s.viewport
	}

	s.state = stateApplyingGesture
	s.viewport = domain.Viewport{Center: center, Zoom: zoom}
	s.state = stateIdle
	return s.viewport
}

// Select highlights a destination independent of the viewport; recenter
// additionally moves the view onto it at the found zoom.
func (s *ViewStateService) Select(dest domain.Destination, recenter bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := dest
	s.selected = &d
	if recenter {
		zoom := float64(domain.FoundZoom)
		s.setViewportLocked(domain.ViewportPatch{
			Lat:  &d.Coordinates.Lat,
			Lon:  &d.Coordinates.Lon,
			Zoom: &zoom,
		})
	}
}

// ApplyResolution publishes a search outcome: the widget re-renders markers,
// a blank-query reset returns to the world view, and a non-empty result set
// auto-selects its first entry at the found zoom. An empty result set leaves
// selection and viewport untouched.
func (s *ViewStateService) ApplyResolution(res Resolution) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = make([]domain.Destination, len(res.Results))
	copy(s.results, res.Results)
	s.Widget.RenderMarkers(s.results)

	switch {
	case res.Reset:
		s.selected = nil
		def := domain.DefaultViewport()
		s.setViewportLocked(domain.ViewportPatch{
			Lat:  &def.Center.Lat,
			Lon:  &def.Center.Lon,
			Zoom: &def.Zoom,
		})
	case len(s.results) > 0:
		first := s.results[0]
		s.selected = &first
		zoom := float64(domain.FoundZoom)
		s.setViewportLocked(domain.ViewportPatch{
			Lat:  &first.Coordinates.Lat,
			Lon:  &first.Coordinates.Lon,
			Zoom: &zoom,
		})
	}

	return s.snapshotLocked()
}

const coordEpsilon = 1e-6

func sameView(v domain.Viewport, center domain.Coordinates, zoom float64) bool {
	return math.Abs(v.Center.Lat-center.Lat) < coordEpsilon &&
		math.Abs(v.Center.Lon-center.Lon) < coordEpsilon &&
		math.Abs(v.Zoom-zoom) < coordEpsilon
}
