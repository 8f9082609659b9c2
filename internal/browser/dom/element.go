// internal/browser/dom/element.go
package dom

import (
	"math"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

// Element wraps an element node with its declared layout and scroll state.
//
// The declared layout is the border box at the element's static position in document
// coordinates. Reported boxes add the left/top shifts of every positioned ancestor-or-self,
// subtract ancestor element scroll, and subtract the window scroll unless the element
// sits inside a fixed-position subtree.
type Element struct {
	node    *html.Node
	doc     *Document
	layout  geometry.Box
	laidOut bool
	scroll  geometry.Point
}

// Node returns the underlying HTML node.
func (e *Element) Node() *html.Node { return e.node }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Layout returns the declared layout and whether one is set.
func (e *Element) Layout() (geometry.Box, bool) { return e.layout, e.laidOut }

// SetLayout declares the element's static border box.
func (e *Element) SetLayout(box geometry.Box) {
	e.layout = box
	e.laidOut = true
}

// Attr returns an attribute value.
func (e *Element) Attr(key string) (string, bool) { return attr(e.node, key) }

// Style returns the computed value of a CSS property.
func (e *Element) Style(prop string) string { return e.inlineStyle().computed(prop) }

// XPath returns a unique XPath for the element.
func (e *Element) XPath() string { return XPathOf(e.node) }

// ScrollOffset returns the element's own scroll offsets. Scroll roots report the window's.
func (e *Element) ScrollOffset() geometry.Point {
	left, _ := e.Metric(geometry.ScrollLeft)
	top, _ := e.Metric(geometry.ScrollTop)
	return geometry.Point{Left: left, Top: top}
}

func (e *Element) inlineStyle() *inlineStyle {
	v, _ := attr(e.node, "style")
	return parseInlineStyle(v)
}

// setStyle merges props into the inline style attribute. Keys are applied in sorted
// order so the serialized attribute is stable.
func (e *Element) setStyle(props map[string]string) {
	s := e.inlineStyle()
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		s.setExpanded(k, props[k])
	}
	setAttr(e.node, "style", s.String())
}

func (e *Element) parent() *Element {
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return e.doc.element(p)
		}
	}
	return nil
}

func (e *Element) isRoot() bool {
	return e.node.DataAtom == atom.Html || e.node.DataAtom == atom.Body
}

func (e *Element) isViewportRoot() bool {
	if e.doc.mode == geometry.StandardsMode {
		return e.node.DataAtom == atom.Html
	}
	return e.node.DataAtom == atom.Body
}

func (e *Element) border(side string) float64 {
	return e.inlineStyle().length("border-" + side + "-width")
}

func (e *Element) clientSize(dim geometry.Dimension) float64 {
	if e.isViewportRoot() && e.doc.window != nil {
		return e.doc.window.viewport.Size(dim)
	}
	if !e.laidOut {
		return 0
	}
	if dim == geometry.Width {
		return math.Max(0, e.layout.Width-e.border("left")-e.border("right"))
	}
	return math.Max(0, e.layout.Height-e.border("top")-e.border("bottom"))
}

// contentExtent is the distance from the padding edge to the furthest laid out descendant edge.
func (e *Element) contentExtent(dim geometry.Dimension) float64 {
	var max float64
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if d, ok := e.doc.elements[c]; ok && d.laidOut {
				edge := d.layout.Right() - e.layout.Left - e.border("left")
				if dim == geometry.Height {
					edge = d.layout.Bottom() - e.layout.Top - e.border("top")
				}
				max = math.Max(max, edge)
			}
			walk(c)
		}
	}
	walk(e.node)
	return max
}

func (e *Element) scrollSize(dim geometry.Dimension) float64 {
	if e.isRoot() {
		return e.doc.extent(dim)
	}
	return math.Max(e.clientSize(dim), e.contentExtent(dim))
}

// BoundingClientRect implements geometry.Element. Elements without a declared layout
// report no box.
func (e *Element) BoundingClientRect() (geometry.Box, bool) {
	if !e.laidOut {
		return geometry.Box{}, false
	}
	box := e.layout
	fixed := false
	for a := e; a != nil; a = a.parent() {
		s := a.inlineStyle()
		if pos := s.computed("position"); pos != "static" {
			box.Left += s.length("left")
			box.Top += s.length("top")
			if pos == "fixed" {
				fixed = true
			}
		}
		if a != e && !a.isRoot() {
			box.Left -= a.scroll.Left
			box.Top -= a.scroll.Top
		}
	}
	if w := e.doc.window; w != nil && !fixed {
		box.Left -= w.scroll.Left
		box.Top -= w.scroll.Top
	}
	box.Left += e.doc.rootInset(geometry.Horizontal)
	box.Top += e.doc.rootInset(geometry.Vertical)
	return box, true
}

// Metric implements geometry.Element.
func (e *Element) Metric(m geometry.Metric) (float64, bool) {
	switch m {
	case geometry.ClientLeft:
		return e.border("left"), true
	case geometry.ClientTop:
		return e.border("top"), true
	case geometry.ClientWidth:
		return e.clientSize(geometry.Width), true
	case geometry.ClientHeight:
		return e.clientSize(geometry.Height), true
	case geometry.ScrollWidth:
		return e.scrollSize(geometry.Width), true
	case geometry.ScrollHeight:
		return e.scrollSize(geometry.Height), true
	case geometry.ScrollLeft, geometry.ScrollTop:
		axis := geometry.Horizontal
		if m == geometry.ScrollTop {
			axis = geometry.Vertical
		}
		if e.isRoot() {
			if e == e.doc.scrollRoot() && e.doc.window != nil {
				return e.doc.window.scroll.On(axis), true
			}
			return 0, true
		}
		return e.scroll.On(axis), true
	case geometry.OffsetWidth:
		if !e.laidOut {
			return 0, true
		}
		return e.layout.Width, true
	case geometry.OffsetHeight:
		if !e.laidOut {
			return 0, true
		}
		return e.layout.Height, true
	}
	return 0, false
}

// SetScroll implements geometry.Element. Writing the scroll root scrolls the window;
// the other root ignores writes. Element offsets are clamped to the scrollable range.
func (e *Element) SetScroll(axis geometry.Axis, value float64) {
	if e.isRoot() {
		w := e.doc.window
		if e != e.doc.scrollRoot() || w == nil {
			return
		}
		left, top := w.scroll.Left, w.scroll.Top
		if axis == geometry.Horizontal {
			left = value
		} else {
			top = value
		}
		w.ScrollTo(left, top)
		return
	}
	dim := geometry.Width
	if axis == geometry.Vertical {
		dim = geometry.Height
	}
	max := math.Max(0, e.scrollSize(dim)-e.clientSize(dim))
	v := math.Min(math.Max(0, value), max)
	if axis == geometry.Horizontal {
		e.scroll.Left = v
	} else {
		e.scroll.Top = v
	}
}

// OwnerDocument implements geometry.Element.
func (e *Element) OwnerDocument() geometry.Document { return e.doc }

// rootInset is the implicit viewport border: the standards root's client inset, or the
// body's when the root reports none.
func (d *Document) rootInset(axis geometry.Axis) float64 {
	m := geometry.ClientLeft
	if axis == geometry.Vertical {
		m = geometry.ClientTop
	}
	for _, root := range []*Element{d.HTML(), d.BodyElement()} {
		if root == nil {
			continue
		}
		if v, _ := root.Metric(m); v != 0 {
			return v
		}
	}
	return 0
}
