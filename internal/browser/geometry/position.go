// internal/browser/geometry/position.go
package geometry

// ClientPosition returns the top-left corner of el relative to its own window's viewport.
//
// Some engines render an implicit inset border on the root viewport; its width is read
// from the standards root first and the quirks root second, because it changes with
// explicit zero-border overrides and with the rendering mode. An element without a
// bounding-box primitive sits at the origin.
func (r *Resolver) ClientPosition(el Element) Point {
	if el == nil {
		return Point{}
	}
	box, ok := el.BoundingClientRect()
	if !ok {
		return Point{}
	}

	var standards, quirks Element
	if doc := el.OwnerDocument(); doc != nil {
		standards, quirks = doc.DocumentElement(), doc.Body()
	}

	return Point{
		Left: box.Left - truthyMetric(clientInset(Horizontal), standards, quirks),
		Top:  box.Top - truthyMetric(clientInset(Vertical), standards, quirks),
	}
}

// PageOffset returns the position of el relative to the top of its own document.
// Ancestor frames are not crossed.
func (r *Resolver) PageOffset(el Element) Point {
	pos := r.ClientPosition(el)
	if el == nil {
		return pos
	}
	w := r.access.OwnerWindow(el)
	pos.Left += r.ScrollPosition(w, Horizontal)
	pos.Top += r.ScrollPosition(w, Vertical)
	return pos
}

// OffsetAcrossFrames returns the position of el relative to the document of relative.
//
// relative defaults to the element's own window. When relative is not an ancestor of the
// element's window, the sum accumulated up to the top-most window is returned.
func (r *Resolver) OffsetAcrossFrames(el Element, relative Window) Point {
	var position Point
	chain := r.ViewingContextChain(el, relative)
	for i, link := range chain.Links {
		// The reference window contributes a page offset. Inner frames contribute only
		// their viewport position so the outer document's scroll is counted once.
		if i == len(chain.Links)-1 && chain.ReachedReference {
			position = position.Add(r.PageOffset(link.Element))
			break
		}
		position = position.Add(r.ClientPosition(link.Element))
	}
	return position
}
