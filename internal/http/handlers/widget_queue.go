package handlers

import (
	"sync"

	"travelmap/internal/domain"
)

// WidgetCommand is one imperative instruction for the browser-side map
// widget.
type WidgetCommand struct {
	Op      string               `json:"op"` // "setView" or "renderMarkers"
	Center  *domain.Coordinates  `json:"center,omitempty"`
	Zoom    *float64             `json:"zoom,omitempty"`
	Markers []domain.Destination `json:"markers,omitempty"`
}

// WidgetQueue implements the map widget port as a drainable command queue.
// The frontend polls it and replays commands against the real widget, which
// keeps the state->widget channel strictly one-directional.
type WidgetQueue struct {
	mu      sync.Mutex
	pending []WidgetCommand
}

func (q *WidgetQueue) RenderMarkers(dests []domain.Destination) {
	markers := make([]domain.Destination, len(dests))
	copy(markers, dests)
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, WidgetCommand{Op: "renderMarkers", Markers: markers})
}

func (q *WidgetQueue) SetView(center domain.Coordinates, zoom float64) {
	c, z := center, zoom
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, WidgetCommand{Op: "setView", Center: &c, Zoom: &z})
}

// Drain returns and clears the pending commands.
func (q *WidgetQueue) Drain() []WidgetCommand {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	if out == nil {
		out = []WidgetCommand{}
	}
	return out
}
