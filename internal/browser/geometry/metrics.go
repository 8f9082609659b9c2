// internal/browser/geometry/metrics.go
package geometry

import (
	"math"

	"go.uber.org/zap"
)

// Metrics holds the canonical sizes of one window, derived per call.
type Metrics struct {
	DocWidth       float64 `json:"doc_width"`
	DocHeight      float64 `json:"doc_height"`
	ViewportWidth  float64 `json:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height"`
}

// roots returns the standards and quirks roots of the window's document.
// Either may be nil.
func (r *Resolver) roots(w Window) (doc Document, standards, quirks Element) {
	if w == nil {
		return nil, nil, nil
	}
	doc = r.env.DocumentOf(w)
	if doc == nil {
		return nil, nil, nil
	}
	return doc, doc.DocumentElement(), doc.Body()
}

// metricOf reads m from el, treating a nil element as not reporting.
func metricOf(el Element, m Metric) (float64, bool) {
	if el == nil {
		return 0, false
	}
	v, ok := el.Metric(m)
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// truthyMetric mirrors the `a || b || 0` fallback: a zero or missing reading yields to the next source.
func truthyMetric(m Metric, els ...Element) float64 {
	for _, el := range els {
		if v, ok := metricOf(el, m); ok && v != 0 {
			return v
		}
	}
	return 0
}

// ScrollPosition resolves the current scroll offset of a window along an axis.
// The page offset wins, then the standards root, then the quirks root. Zero is a valid reading.
func (r *Resolver) ScrollPosition(w Window, axis Axis) float64 {
	if w == nil {
		return 0
	}
	if v, ok := w.PageOffset(axis); ok && !math.IsNaN(v) {
		return v
	}
	_, standards, quirks := r.roots(w)
	if v, ok := metricOf(standards, scrollOffset(axis)); ok {
		return v
	}
	if v, ok := metricOf(quirks, scrollOffset(axis)); ok {
		return v
	}
	return 0
}

// SetWindowScroll scrolls w along one axis, holding the other at its resolved value.
func (r *Resolver) SetWindowScroll(w Window, axis Axis, value float64) {
	if w == nil {
		return
	}
	left, top := value, value
	if axis == Horizontal {
		top = r.ScrollPosition(w, Vertical)
	} else {
		left = r.ScrollPosition(w, Horizontal)
	}
	r.logger.Debug("Scrolling window.", zap.Stringer("axis", axis), zap.Float64("left", left), zap.Float64("top", top))
	w.ScrollTo(left, top)
}

// ViewportSize returns the visible width or height of a window.
// Standards documents read the root element; quirks documents read the body, falling back
// to the root element when the body reports nothing.
func (r *Resolver) ViewportSize(w Window, dim Dimension) float64 {
	doc, standards, quirks := r.roots(w)
	if doc == nil {
		return 0
	}
	prop := clientSize(dim)
	standardsValue, _ := metricOf(standards, prop)
	if r.env.CompatibilityMode(doc) == StandardsMode && standardsValue != 0 {
		return standardsValue
	}
	if v, ok := metricOf(quirks, prop); ok && v != 0 {
		return v
	}
	return standardsValue
}

// DocumentSize returns the full scrollable extent of a window's document.
// Engines attribute the size to different roots, so the largest reading wins; the
// viewport is a lower bound for documents smaller than the window.
func (r *Resolver) DocumentSize(w Window, dim Dimension) float64 {
	doc, standards, quirks := r.roots(w)
	if doc == nil {
		return 0
	}
	prop := scrollSize(dim)
	s, _ := metricOf(standards, prop)
	q, _ := metricOf(quirks, prop)
	return math.Max(math.Max(s, q), r.ViewportSize(w, dim))
}

// MetricsOf snapshots the canonical sizes of w. A nil window means the current window.
func (r *Resolver) MetricsOf(w Window) Metrics {
	w = r.windowOrCurrent(w)
	return Metrics{
		DocWidth:       r.DocumentSize(w, Width),
		DocHeight:      r.DocumentSize(w, Height),
		ViewportWidth:  r.ViewportSize(w, Width),
		ViewportHeight: r.ViewportSize(w, Height),
	}
}
