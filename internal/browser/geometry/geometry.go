// internal/browser/geometry/geometry.go
//
// Package geometry resolves document-relative element positions across nested frames,
// reconciles engine-specific viewport and scroll metrics, and plans the scroll
// corrections that bring an element into view inside a window or scrollable element.
//
// Nothing is cached: every call re-reads the live layout through the injected
// Environment and AccessLayer.
package geometry

import "go.uber.org/zap"

// Resolver is the entry point for every geometry operation. It is not safe for
// concurrent use against a single host.
type Resolver struct {
	env    Environment
	access AccessLayer
	logger *zap.Logger
}

// NewResolver creates a resolver over an environment and an element access layer.
func NewResolver(env Environment, access AccessLayer, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		env:    env,
		access: access,
		logger: logger.Named("geometry"),
	}
}

// NewHostResolver creates a resolver over a host that provides both capabilities.
func NewHostResolver(host Host, logger *zap.Logger) *Resolver {
	return NewResolver(host, host, logger)
}

func (r *Resolver) windowOrCurrent(w Window) Window {
	if w != nil {
		return w
	}
	return r.env.CurrentWindow()
}

// -- Scroll-Into-View --

// containerFor picks the scroll container for el. An unspecified or unresolvable
// container falls back to the element's own document, which scrolls through its window.
func (r *Resolver) containerFor(el Element, container Target) Scroller {
	if !container.IsZero() {
		if s, ok := r.scroller(container); ok {
			return s
		}
		r.logger.Debug("Scroll container did not resolve; using the element's document.",
			zap.Stringer("container", container))
	}
	if doc := el.OwnerDocument(); doc != nil {
		if w := r.env.WindowOf(doc); w != nil {
			return Scroller{Window: w}
		}
	}
	return Scroller{Window: r.access.OwnerWindow(el)}
}

// PlanScrollIntoView resolves the arguments of ScrollIntoView and returns the plan without
// applying it. ok is false when selector matches nothing.
func (r *Resolver) PlanScrollIntoView(selector string, container Target, alignment Alignment, allowHorizontalScroll ...bool) (ScrollPlan, bool) {
	el := r.access.Resolve(selector)
	if el == nil {
		r.logger.Debug("Element not found; nothing to scroll.", zap.String("selector", selector))
		return ScrollPlan{}, false
	}

	var allow *bool
	if len(allowHorizontalScroll) > 0 {
		allow = Bool(allowHorizontalScroll[0])
	}
	policy := ResolveAlignment(alignment, allow)
	return r.PlanScroll(el, r.containerFor(el, container), policy), true
}

// ScrollIntoView scrolls container so the first element matching selector satisfies the
// alignment. A nil alignment aligns the top unconditionally. The optional trailing flag
// controls horizontal scrolling for the boolean form and is ignored when alignment is
// an AlignmentOptions.
func (r *Resolver) ScrollIntoView(selector string, container Target, alignment Alignment, allowHorizontalScroll ...bool) {
	plan, ok := r.PlanScrollIntoView(selector, container, alignment, allowHorizontalScroll...)
	if !ok {
		return
	}
	r.ApplyScroll(plan)
}

// -- Scroll Position Accessors --

// ScrollPositionOf returns the scroll offset of a target along an axis. The zero target is
// the current window. ok is false when the target does not resolve.
func (r *Resolver) ScrollPositionOf(target Target, axis Axis) (float64, bool) {
	if target.IsZero() {
		target = WindowTarget(r.env.CurrentWindow())
	}
	s, ok := r.scroller(target)
	if !ok {
		return 0, false
	}
	return r.scrollerPosition(s, axis), true
}

// SetScrollPosition scrolls a target along one axis. The zero target is the current window.
func (r *Resolver) SetScrollPosition(target Target, axis Axis, value float64) {
	if target.IsZero() {
		target = WindowTarget(r.env.CurrentWindow())
	}
	s, ok := r.scroller(target)
	if !ok {
		r.logger.Debug("Scroll target did not resolve.", zap.Stringer("target", target))
		return
	}
	r.setScrollerPosition(s, axis, value)
}

// ScrollTop returns the vertical scroll offset of a target.
func (r *Resolver) ScrollTop(target Target) (float64, bool) {
	return r.ScrollPositionOf(target, Vertical)
}

// SetScrollTop sets the vertical scroll offset of a target.
func (r *Resolver) SetScrollTop(target Target, value float64) {
	r.SetScrollPosition(target, Vertical, value)
}

// ScrollLeft returns the horizontal scroll offset of a target.
func (r *Resolver) ScrollLeft(target Target) (float64, bool) {
	return r.ScrollPositionOf(target, Horizontal)
}

// SetScrollLeft sets the horizontal scroll offset of a target.
func (r *Resolver) SetScrollLeft(target Target, value float64) {
	r.SetScrollPosition(target, Horizontal, value)
}

// -- Document and Viewport Sizes --

// DocWidth returns the document width of w (nil means the current window).
func (r *Resolver) DocWidth(w Window) float64 {
	return r.DocumentSize(r.windowOrCurrent(w), Width)
}

// DocHeight returns the document height of w (nil means the current window).
func (r *Resolver) DocHeight(w Window) float64 {
	return r.DocumentSize(r.windowOrCurrent(w), Height)
}

// ViewportWidth returns the viewport width of w (nil means the current window).
func (r *Resolver) ViewportWidth(w Window) float64 {
	return r.ViewportSize(r.windowOrCurrent(w), Width)
}

// ViewportHeight returns the viewport height of w (nil means the current window).
func (r *Resolver) ViewportHeight(w Window) float64 {
	return r.ViewportSize(r.windowOrCurrent(w), Height)
}
