package services

import (
	"testing"

	"travelmap/internal/domain"
)

type widgetRecorder struct {
	views   []domain.Viewport
	markers [][]domain.Destination
}

func (w *widgetRecorder) SetView(center domain.Coordinates, zoom float64) {
	w.views = append(w.views, domain.Viewport{Center: center, Zoom: zoom})
}

func (w *widgetRecorder) RenderMarkers(dests []domain.Destination) {
	w.markers = append(w.markers, dests)
}

func TestSetViewportPushesExactlyOneSetView(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	lat, lon, zoom := 35.6895, 139.6917, 6.0
	vp := vs.SetViewport(domain.ViewportPatch{Lat: &lat, Lon: &lon, Zoom: &zoom})

	if len(rec.views) != 1 {
		t.Fatalf("expected exactly 1 SetView push, got %d", len(rec.views))
	}
	if vp.Center.Lat != lat || vp.Center.Lon != lon || vp.Zoom != zoom {
		t.Fatalf("viewport not updated: %+v", vp)
	}
}

func TestSetViewportMergesPartialFields(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	zoom := 8.0
	vp := vs.SetViewport(domain.ViewportPatch{Zoom: &zoom})

	def := domain.DefaultViewport()
	if vp.Center != def.Center {
		t.Fatalf("center should be untouched, got %+v", vp.Center)
	}
	if vp.Zoom != zoom {
		t.Fatalf("zoom not merged, got %v", vp.Zoom)
	}
}

func TestReportGestureAdoptsWithoutEcho(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	center := domain.Coordinates{Lat: 10, Lon: 20}
	vp := vs.ReportGesture(center, 4)

	if len(rec.views) != 0 {
		t.Fatalf("gesture report must not push SetView, got %d pushes", len(rec.views))
	}
	if vp.Center != center || vp.Zoom != 4 {
		t.Fatalf("gesture position not adopted: %+v", vp)
	}
}

func TestGestureMatchingOwnPushIsAcknowledged(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	lat, lon, zoom := 48.8566, 2.3522, 6.0
	vs.SetViewport(domain.ViewportPatch{Lat: &lat, Lon: &lon, Zoom: &zoom})

	// The widget reporting back the view we just set is our own push coming
	// home, not a user gesture.
	vp := vs.ReportGesture(domain.Coordinates{Lat: lat, Lon: lon}, zoom)

	if len(rec.views) != 1 {
		t.Fatalf("ack must not trigger another push, got %d", len(rec.views))
	}
	if vp.Center.Lat != lat || vp.Zoom != zoom {
		t.Fatalf("viewport changed on ack: %+v", vp)
	}
}

func TestApplyResolutionAutoSelectsFirstResult(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	tokyo := domain.Destination{ID: "2", Name: "Tokyo, Japan", Coordinates: domain.Coordinates{Lat: 35.6895, Lon: 139.6917}}
	state := vs.ApplyResolution(Resolution{Query: "tokyo", Results: []domain.Destination{tokyo}, Source: "catalog"})

	if len(rec.markers) != 1 || len(rec.markers[0]) != 1 {
		t.Fatalf("markers not rendered from result set")
	}
	if state.Selected == nil || state.Selected.ID != tokyo.ID {
		t.Fatalf("first result not auto-selected: %+v", state.Selected)
	}
	if state.Viewport.Center != tokyo.Coordinates || state.Viewport.Zoom != domain.FoundZoom {
		t.Fatalf("viewport not recentered on first result: %+v", state.Viewport)
	}
}

func TestApplyResolutionEmptyLeavesSelectionAlone(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	tokyo := domain.Destination{ID: "2", Name: "Tokyo, Japan", Coordinates: domain.Coordinates{Lat: 35.6895, Lon: 139.6917}}
	vs.ApplyResolution(Resolution{Query: "tokyo", Results: []domain.Destination{tokyo}})
	before := vs.Snapshot()

	state := vs.ApplyResolution(Resolution{Query: "nonexistentplace123", Results: []domain.Destination{}})

	if len(state.Results) != 0 {
		t.Fatalf("result set should be empty, got %d", len(state.Results))
	}
	if state.Selected == nil || state.Selected.ID != before.Selected.ID {
		t.Fatalf("selection must not change on empty results")
	}
	if state.Viewport != before.Viewport {
		t.Fatalf("viewport must not move on empty results")
	}
}

func TestApplyResolutionResetReturnsToDefaultView(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	tokyo := domain.Destination{ID: "2", Name: "Tokyo, Japan", Coordinates: domain.Coordinates{Lat: 35.6895, Lon: 139.6917}}
	vs.ApplyResolution(Resolution{Query: "tokyo", Results: []domain.Destination{tokyo}})

	all := []domain.Destination{tokyo, {ID: "1", Name: "Paris, France"}}
	state := vs.ApplyResolution(Resolution{Results: all, Reset: true})

	if state.Selected != nil {
		t.Fatalf("reset must clear selection")
	}
	if state.Viewport != domain.DefaultViewport() {
		t.Fatalf("reset must restore default viewport, got %+v", state.Viewport)
	}
}

func TestSelectWithRecenter(t *testing.T) {
	rec := &widgetRecorder{}
	vs := NewViewStateService(rec)

	dest := domain.Destination{ID: "5", Name: "Bangkok, Thailand", Coordinates: domain.Coordinates{Lat: 13.7563, Lon: 100.5018}}

	vs.Select(dest, false)
	if got := vs.Snapshot().Viewport; got != domain.DefaultViewport() {
		t.Fatalf("selection without recenter moved the viewport: %+v", got)
	}

	vs.Select(dest, true)
	got := vs.Snapshot()
	if got.Viewport.Center != dest.Coordinates || got.Viewport.Zoom != domain.FoundZoom {
		t.Fatalf("recentring selection did not move the viewport: %+v", got.Viewport)
	}
}
