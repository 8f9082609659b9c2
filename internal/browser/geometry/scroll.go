// internal/browser/geometry/scroll.go
package geometry

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Scroller is a resolved scroll container: exactly one of Window and Element is set.
type Scroller struct {
	Window  Window
	Element Element
}

// IsWindow reports whether the container is a window.
func (s Scroller) IsWindow() bool { return s.Window != nil }

// AxisPlan is the outcome of planning one axis.
type AxisPlan struct {
	// DiffTop is the distance from the visible area's near edge to the element's near edge.
	DiffTop float64 `json:"diff_top"`
	// DiffBottom is the distance from the visible area's far edge to the element's far edge.
	DiffBottom float64 `json:"diff_bottom"`
	// From is the container's scroll position when the plan was made.
	From float64 `json:"from"`
	// To is the scroll position to apply; only meaningful when Scroll is true.
	To     float64 `json:"to"`
	Scroll bool    `json:"scroll"`
}

// ScrollPlan holds the per-axis decisions for one ScrollIntoView call.
type ScrollPlan struct {
	Container  Scroller        `json:"-"`
	Policy     AlignmentPolicy `json:"-"`
	Vertical   AxisPlan        `json:"vertical"`
	Horizontal AxisPlan        `json:"horizontal"`
}

// Axis returns the plan for one axis.
func (p ScrollPlan) Axis(axis Axis) AxisPlan {
	if axis == Horizontal {
		return p.Horizontal
	}
	return p.Vertical
}

// parseLength reads the leading integer of a CSS length the way parseInt does:
// "12.7px" is 12, "auto" and "" are not numbers.
func parseLength(value string) (int, bool) {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// styleLength returns the integer value of a computed length, 0 when unparseable.
func (r *Resolver) styleLength(el Element, property string) float64 {
	n, _ := parseLength(r.access.ComputedStyle(el, property))
	return float64(n)
}

// outerSize is the border-box extent of el along a dimension.
func outerSize(el Element, dim Dimension) float64 {
	if v, ok := metricOf(el, offsetSize(dim)); ok {
		return v
	}
	if box, ok := el.BoundingClientRect(); ok {
		return box.Size(dim)
	}
	return 0
}

// scrollerPosition reads the current scroll offset of a container.
func (r *Resolver) scrollerPosition(s Scroller, axis Axis) float64 {
	if s.IsWindow() {
		return r.ScrollPosition(s.Window, axis)
	}
	v, _ := metricOf(s.Element, scrollOffset(axis))
	return v
}

// setScrollerPosition writes a scroll offset to a container.
func (r *Resolver) setScrollerPosition(s Scroller, axis Axis, value float64) {
	if s.IsWindow() {
		r.SetWindowScroll(s.Window, axis, value)
		return
	}
	if s.Element != nil {
		s.Element.SetScroll(axis, value)
	}
}

// PlanScroll computes, without applying them, the scroll positions that bring el into
// view inside container under policy.
func (r *Resolver) PlanScroll(el Element, container Scroller, policy AlignmentPolicy) ScrollPlan {
	plan := ScrollPlan{Container: container, Policy: policy}
	if el == nil || (container.Window == nil && container.Element == nil) {
		return plan
	}

	elemOffset := r.OffsetAcrossFrames(el, nil)
	for _, axis := range []Axis{Vertical, Horizontal} {
		dim := dimensionOf(axis)
		near := elemOffset.On(axis)
		far := near + outerSize(el, dim)

		var ap AxisPlan
		ap.From = r.scrollerPosition(container, axis)

		if container.IsWindow() {
			visible := r.ViewportSize(container.Window, dim)
			ap.DiffTop = near - ap.From
			ap.DiffBottom = far - (ap.From + visible)
		} else {
			// The container offset is measured to its border edge while its client box
			// excludes the border, so border widths are added back on each side.
			origin := r.OffsetAcrossFrames(container.Element, nil).On(axis)
			visible, _ := metricOf(container.Element, clientSize(dim))
			nearBorder, farBorder := "border-top-width", "border-bottom-width"
			if axis == Horizontal {
				nearBorder, farBorder = "border-left-width", "border-right-width"
			}
			ap.DiffTop = near - (origin + r.styleLength(container.Element, nearBorder))
			ap.DiffBottom = far - (origin + visible + r.styleLength(container.Element, farBorder))
		}

		if axis == Horizontal && !policy.AllowHorizontalScroll {
			plan.Horizontal = ap
			continue
		}
		if d, ok := policy.delta(ap.DiffTop, ap.DiffBottom); ok {
			ap.Scroll = true
			ap.To = ap.From + d
		}

		if axis == Horizontal {
			plan.Horizontal = ap
		} else {
			plan.Vertical = ap
		}
	}
	return plan
}

// ApplyScroll writes every axis of plan that needs adjustment.
func (r *Resolver) ApplyScroll(plan ScrollPlan) {
	for _, axis := range []Axis{Vertical, Horizontal} {
		ap := plan.Axis(axis)
		if !ap.Scroll {
			continue
		}
		r.logger.Debug("Scrolling container into alignment.",
			zap.Stringer("axis", axis),
			zap.Bool("window", plan.Container.IsWindow()),
			zap.Float64("from", ap.From),
			zap.Float64("to", ap.To))
		r.setScrollerPosition(plan.Container, axis, ap.To)
	}
}

// ScrollElementIntoView plans and applies the scroll for an already resolved element.
func (r *Resolver) ScrollElementIntoView(el Element, container Scroller, policy AlignmentPolicy) ScrollPlan {
	plan := r.PlanScroll(el, container, policy)
	r.ApplyScroll(plan)
	return plan
}
