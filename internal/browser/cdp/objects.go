// internal/browser/cdp/objects.go
package cdp

import (
	"github.com/chromedp/cdproto/runtime"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

type numberResult struct {
	OK    bool    `json:"ok"`
	Value float64 `json:"value"`
}

type rectResult struct {
	OK     bool    `json:"ok"`
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (h *Host) number(id runtime.RemoteObjectID, property string) (float64, bool) {
	var res numberResult
	if !h.callValue(id, property, jsNumberProperty, &res, property) || !res.OK {
		return 0, false
	}
	return res.Value, true
}

// Element is a remote DOM element handle.
type Element struct {
	host *Host
	id   runtime.RemoteObjectID
}

// ObjectID returns the remote object id of the element.
func (e *Element) ObjectID() runtime.RemoteObjectID { return e.id }

// BoundingClientRect implements geometry.Element.
func (e *Element) BoundingClientRect() (geometry.Box, bool) {
	var r rectResult
	if !e.host.callValue(e.id, "getBoundingClientRect", jsBoundingClientRect, &r) || !r.OK {
		return geometry.Box{}, false
	}
	return geometry.Box{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}, true
}

// Metric implements geometry.Element.
func (e *Element) Metric(m geometry.Metric) (float64, bool) {
	return e.host.number(e.id, string(m))
}

// SetScroll implements geometry.Element.
func (e *Element) SetScroll(axis geometry.Axis, value float64) {
	var done bool
	e.host.callValue(e.id, "set "+string(geometry.ScrollMetric(axis)), jsSetProperty, &done, string(geometry.ScrollMetric(axis)), value)
}

// OwnerDocument implements geometry.Element.
func (e *Element) OwnerDocument() geometry.Document {
	if id := e.host.callObject(e.id, "ownerDocument", jsOwnerDocument); id != "" {
		return &Document{host: e.host, id: id}
	}
	return nil
}

// Document is a remote document handle.
type Document struct {
	host *Host
	id   runtime.RemoteObjectID
}

// DocumentElement implements geometry.Document.
func (d *Document) DocumentElement() geometry.Element {
	if id := d.host.callObject(d.id, "documentElement", jsDocumentElement); id != "" {
		return &Element{host: d.host, id: id}
	}
	return nil
}

// Body implements geometry.Document.
func (d *Document) Body() geometry.Element {
	if id := d.host.callObject(d.id, "body", jsBody); id != "" {
		return &Element{host: d.host, id: id}
	}
	return nil
}

// Window is a remote window handle. The host hands out one Window per tagged window, so
// handles compare equal exactly when they refer to the same window.
type Window struct {
	host *Host
	id   runtime.RemoteObjectID
	tag  string
}

// Tag returns the identity tag assigned to the window.
func (w *Window) Tag() string { return w.tag }

// PageOffset implements geometry.Window.
func (w *Window) PageOffset(axis geometry.Axis) (float64, bool) {
	property := "pageYOffset"
	if axis == geometry.Horizontal {
		property = "pageXOffset"
	}
	return w.host.number(w.id, property)
}

// ScrollTo implements geometry.Window.
func (w *Window) ScrollTo(left, top float64) {
	var done bool
	w.host.callValue(w.id, "scrollTo", jsScrollWindowTo, &done, left, top)
}

// FrameElement implements geometry.Window.
func (w *Window) FrameElement() geometry.Element {
	if id := w.host.callObject(w.id, "frameElement", jsFrameElement); id != "" {
		return &Element{host: w.host, id: id}
	}
	return nil
}

// Parent implements geometry.Window.
func (w *Window) Parent() geometry.Window {
	if p := w.host.windowFor(w.host.callObject(w.id, "parent", jsParentWindow)); p != nil {
		return p
	}
	return nil
}
