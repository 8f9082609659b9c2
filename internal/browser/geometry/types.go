// internal/browser/geometry/types.go
package geometry

// -- Core Structures --

// Axis selects the horizontal (left/x) or vertical (top/y) component of a measurement.
type Axis int

const (
	// Horizontal is the left/x axis.
	Horizontal Axis = iota
	// Vertical is the top/y axis.
	Vertical
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Dimension selects a width or height measurement.
type Dimension int

const (
	Width Dimension = iota
	Height
)

func (d Dimension) String() string {
	if d == Width {
		return "width"
	}
	return "height"
}

// CompatMode is the declared rendering mode of a document.
type CompatMode int

const (
	// QuirksMode covers legacy ("BackCompat") documents. The body is the scroll root.
	QuirksMode CompatMode = iota
	// StandardsMode covers "CSS1Compat" documents. The root element is the scroll root.
	StandardsMode
)

// Point is a 2D offset in CSS pixels.
type Point struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{Left: p.Left + o.Left, Top: p.Top + o.Top}
}

// On returns the component of the point along the axis.
func (p Point) On(axis Axis) float64 {
	if axis == Horizontal {
		return p.Left
	}
	return p.Top
}

// Box is the client-space bounding box of an element as reported by the engine.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the right edge of the box.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the bottom edge of the box.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// Origin returns the top-left corner of the box.
func (b Box) Origin() Point { return Point{Left: b.Left, Top: b.Top} }

// Size returns the extent of the box along a dimension.
func (b Box) Size(dim Dimension) float64 {
	if dim == Width {
		return b.Width
	}
	return b.Height
}

// Metric names a numeric box-model property read from an element.
type Metric string

const (
	ClientLeft   Metric = "clientLeft"
	ClientTop    Metric = "clientTop"
	ClientWidth  Metric = "clientWidth"
	ClientHeight Metric = "clientHeight"
	ScrollLeft   Metric = "scrollLeft"
	ScrollTop    Metric = "scrollTop"
	ScrollWidth  Metric = "scrollWidth"
	ScrollHeight Metric = "scrollHeight"
	OffsetWidth  Metric = "offsetWidth"
	OffsetHeight Metric = "offsetHeight"
)

// clientInset is the border inset metric along an axis.
func clientInset(axis Axis) Metric {
	if axis == Horizontal {
		return ClientLeft
	}
	return ClientTop
}

// scrollOffset is the scroll position metric along an axis.
func scrollOffset(axis Axis) Metric {
	if axis == Horizontal {
		return ScrollLeft
	}
	return ScrollTop
}

// ScrollMetric returns the scroll position metric (scrollLeft or scrollTop) for an axis.
func ScrollMetric(axis Axis) Metric { return scrollOffset(axis) }

func clientSize(dim Dimension) Metric {
	if dim == Width {
		return ClientWidth
	}
	return ClientHeight
}

func scrollSize(dim Dimension) Metric {
	if dim == Width {
		return ScrollWidth
	}
	return ScrollHeight
}

func offsetSize(dim Dimension) Metric {
	if dim == Width {
		return OffsetWidth
	}
	return OffsetHeight
}

// dimensionOf maps an axis to the dimension measured along it.
func dimensionOf(axis Axis) Dimension {
	if axis == Horizontal {
		return Width
	}
	return Height
}

// -- Host Capabilities --

// Element is a node the engine can lay out.
type Element interface {
	// BoundingClientRect reports the border box relative to the owning viewport.
	// ok is false when the node offers no bounding-box primitive (detached or non-renderable).
	BoundingClientRect() (box Box, ok bool)
	// Metric reads a numeric box-model property. ok is false when the engine
	// does not report a number for it.
	Metric(m Metric) (value float64, ok bool)
	// SetScroll writes the element's scrollLeft or scrollTop.
	SetScroll(axis Axis, value float64)
	// OwnerDocument returns the document the element belongs to, or nil.
	OwnerDocument() Document
}

// Document exposes the two scroll roots of a document.
type Document interface {
	// DocumentElement is the standards root, or nil.
	DocumentElement() Element
	// Body is the quirks root, or nil.
	Body() Element
}

// Window is a viewing context. Identity is Go equality, so implementations must hand
// out one comparable value (typically a pointer) per real window.
type Window interface {
	// PageOffset reports pageXOffset (Horizontal) or pageYOffset (Vertical).
	// ok is false when the engine does not expose a numeric page offset.
	PageOffset(axis Axis) (value float64, ok bool)
	// ScrollTo invokes the window's scroll-to primitive.
	ScrollTo(left, top float64)
	// FrameElement is the element embedding this window in its parent, or nil.
	FrameElement() Element
	// Parent is the embedding window, or nil at the top of the frame tree.
	Parent() Window
}

// Environment is the injected host: it replaces ambient window/document globals.
type Environment interface {
	CurrentWindow() Window
	DocumentOf(w Window) Document
	WindowOf(d Document) Window
	CompatibilityMode(d Document) CompatMode
}

// AccessLayer resolves selectors and reads or writes element styles.
type AccessLayer interface {
	// Resolve returns the first element matching selector, or nil.
	Resolve(selector string) Element
	// ResolveAll returns every element matching selector in document order.
	ResolveAll(selector string) []Element
	// ComputedStyle returns the computed value of a CSS property (e.g. "border-top-width").
	ComputedStyle(el Element, property string) string
	// SetStyle writes inline style properties.
	SetStyle(el Element, properties map[string]string)
	// OwnerWindow returns the window whose document contains el, or nil.
	OwnerWindow(el Element) Window
}

// Host bundles both capabilities; the dom and cdp environments implement it.
type Host interface {
	Environment
	AccessLayer
}
