// internal/browser/dom/window.go
package dom

import (
	"errors"
	"math"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

// Window shows one document in a fixed-size viewport.
type Window struct {
	doc      *Document
	viewport geometry.Box
	scroll   geometry.Point
	parent   *Window
	frame    *Element
	frames   map[*Element]*Window

	noPageOffset bool
	scrollCalls  int
}

// WindowOption customizes a new window.
type WindowOption func(*Window)

// WithoutPageOffset models an engine that exposes no pageXOffset/pageYOffset, forcing
// callers to read scroll offsets from the document roots.
func WithoutPageOffset() WindowOption {
	return func(w *Window) { w.noPageOffset = true }
}

// NewWindow attaches doc to a new window with the given viewport size.
func NewWindow(doc *Document, width, height float64, opts ...WindowOption) *Window {
	w := &Window{
		doc:      doc,
		viewport: geometry.Box{Width: width, Height: height},
	}
	for _, opt := range opts {
		opt(w)
	}
	doc.window = w
	return w
}

// Document returns the document shown in the window.
func (w *Window) Document() *Document { return w.doc }

// Scroll returns the current scroll offset.
func (w *Window) Scroll() geometry.Point { return w.scroll }

// ScrollCalls counts ScrollTo invocations, including ones that change nothing.
func (w *Window) ScrollCalls() int { return w.scrollCalls }

// Viewport returns the viewport size as a box at the origin.
func (w *Window) Viewport() geometry.Box { return w.viewport }

// SetViewport resizes the viewport and re-clamps the scroll offset.
func (w *Window) SetViewport(width, height float64) {
	w.viewport = geometry.Box{Width: width, Height: height}
	w.scroll = w.clamp(w.scroll.Left, w.scroll.Top)
}

// Embed places child inside this window's document through frame.
func (w *Window) Embed(frame *Element, child *Window) error {
	if frame == nil || child == nil {
		return errors.New("frame element and child window are required")
	}
	if frame.doc != w.doc {
		return errors.New("frame element does not belong to this window's document")
	}
	if child == w {
		return errors.New("a window cannot embed itself")
	}
	if w.frames == nil {
		w.frames = make(map[*Element]*Window)
	}
	child.parent = w
	child.frame = frame
	w.frames[frame] = child
	return nil
}

// ContentWindow returns the window embedded through frame, or nil.
func (w *Window) ContentWindow(frame *Element) *Window {
	return w.frames[frame]
}

func (w *Window) clamp(left, top float64) geometry.Point {
	maxLeft := math.Max(0, w.doc.extent(geometry.Width)-w.viewport.Width)
	maxTop := math.Max(0, w.doc.extent(geometry.Height)-w.viewport.Height)
	return geometry.Point{
		Left: math.Min(math.Max(0, left), maxLeft),
		Top:  math.Min(math.Max(0, top), maxTop),
	}
}

// PageOffset implements geometry.Window.
func (w *Window) PageOffset(axis geometry.Axis) (float64, bool) {
	if w.noPageOffset {
		return 0, false
	}
	return w.scroll.On(axis), true
}

// ScrollTo implements geometry.Window. Offsets are clamped to the scrollable range.
func (w *Window) ScrollTo(left, top float64) {
	w.scrollCalls++
	w.scroll = w.clamp(left, top)
}

// FrameElement implements geometry.Window.
func (w *Window) FrameElement() geometry.Element {
	if w.frame == nil {
		return nil
	}
	return w.frame
}

// Parent implements geometry.Window.
func (w *Window) Parent() geometry.Window {
	if w.parent == nil {
		return nil
	}
	return w.parent
}
