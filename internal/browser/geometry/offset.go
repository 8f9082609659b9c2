// internal/browser/geometry/offset.go
package geometry

import (
	"strconv"

	"go.uber.org/zap"
)

// Coordinates is a partial document position. Nil fields are left untouched.
type Coordinates struct {
	Left *float64
	Top  *float64
}

// At is shorthand for Coordinates with both fields set.
func At(left, top float64) Coordinates {
	return Coordinates{Left: &left, Top: &top}
}

// GetOffset returns the document position of the first element matching selector.
// ok is false when nothing matches.
func (r *Resolver) GetOffset(selector string) (Point, bool) {
	return r.GetOffsetRelativeTo(selector, nil)
}

// GetOffsetRelativeTo is GetOffset measured against the document of an ancestor window.
// A nil window means the element's own window.
func (r *Resolver) GetOffsetRelativeTo(selector string, relative Window) (Point, bool) {
	el := r.access.Resolve(selector)
	if el == nil {
		r.logger.Debug("Element not found; no offset.", zap.String("selector", selector))
		return Point{}, false
	}
	return r.OffsetAcrossFrames(el, relative), true
}

// SetOffset moves every element matching selector so its document position matches
// target. Elements are processed from the last match to the first.
func (r *Resolver) SetOffset(selector string, target Coordinates) {
	els := r.access.ResolveAll(selector)
	for i := len(els) - 1; i >= 0; i-- {
		r.SetElementOffset(els[i], target)
	}
}

// SetElementOffset moves el so its document position matches target.
//
// The document position and the left/top style live in different coordinate spaces
// (ancestor offsets separate them), so only the requested difference is applied on top
// of the current style value.
func (r *Resolver) SetElementOffset(el Element, target Coordinates) {
	if el == nil || (target.Left == nil && target.Top == nil) {
		return
	}
	// left/top have no effect on statically positioned elements.
	if r.access.ComputedStyle(el, "position") == "static" {
		r.access.SetStyle(el, map[string]string{"position": "relative"})
	}

	old := r.OffsetAcrossFrames(el, nil)
	props := make(map[string]string, 2)
	if target.Left != nil {
		props["left"] = pixels(r.styleLength(el, "left") + *target.Left - old.Left)
	}
	if target.Top != nil {
		props["top"] = pixels(r.styleLength(el, "top") + *target.Top - old.Top)
	}
	r.logger.Debug("Applying offset delta.", zap.Any("style", props))
	r.access.SetStyle(el, props)
}

// pixels formats v as a CSS pixel length.
func pixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
