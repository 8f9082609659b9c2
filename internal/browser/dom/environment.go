// internal/browser/dom/environment.go
package dom

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

// Environment is a geometry.Host over in-memory windows. Selectors are XPath
// expressions evaluated against the current window's document.
type Environment struct {
	current *Window
	logger  *zap.Logger
}

var _ geometry.Host = (*Environment)(nil)

// NewEnvironment creates a host whose current window is current.
func NewEnvironment(current *Window, logger *zap.Logger) *Environment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Environment{current: current, logger: logger.Named("dom")}
}

// SetCurrent changes the window that selectors resolve against.
func (e *Environment) SetCurrent(w *Window) { e.current = w }

// Current returns the current window.
func (e *Environment) Current() *Window { return e.current }

// EnterFrame makes the window embedded through the first frame element matching selector
// the current window.
func (e *Environment) EnterFrame(selector string) error {
	if e.current == nil {
		return errors.New("no current window")
	}
	frame, err := e.current.doc.Query(selector)
	if err != nil {
		return fmt.Errorf("invalid frame selector %q: %w", selector, err)
	}
	if frame == nil {
		return fmt.Errorf("frame %q not found", selector)
	}
	child := e.current.ContentWindow(frame)
	if child == nil {
		return fmt.Errorf("frame %q has no content window", selector)
	}
	e.logger.Debug("Entered frame.", zap.String("frame", frame.XPath()))
	e.current = child
	return nil
}

// CurrentWindow implements geometry.Environment.
func (e *Environment) CurrentWindow() geometry.Window {
	if e.current == nil {
		return nil
	}
	return e.current
}

// DocumentOf implements geometry.Environment.
func (e *Environment) DocumentOf(w geometry.Window) geometry.Document {
	win, ok := w.(*Window)
	if !ok || win == nil || win.doc == nil {
		return nil
	}
	return win.doc
}

// WindowOf implements geometry.Environment.
func (e *Environment) WindowOf(d geometry.Document) geometry.Window {
	doc, ok := d.(*Document)
	if !ok || doc == nil || doc.window == nil {
		return nil
	}
	return doc.window
}

// CompatibilityMode implements geometry.Environment.
func (e *Environment) CompatibilityMode(d geometry.Document) geometry.CompatMode {
	if doc, ok := d.(*Document); ok && doc != nil {
		return doc.mode
	}
	return geometry.QuirksMode
}

// Resolve implements geometry.AccessLayer. Invalid expressions resolve to nothing.
func (e *Environment) Resolve(selector string) geometry.Element {
	if e.current == nil {
		return nil
	}
	el, err := e.current.doc.Query(selector)
	if err != nil {
		e.logger.Warn("Invalid selector.", zap.String("selector", selector), zap.Error(err))
		return nil
	}
	if el == nil {
		return nil
	}
	return el
}

// ResolveAll implements geometry.AccessLayer.
func (e *Environment) ResolveAll(selector string) []geometry.Element {
	if e.current == nil {
		return nil
	}
	els, err := e.current.doc.QueryAll(selector)
	if err != nil {
		e.logger.Warn("Invalid selector.", zap.String("selector", selector), zap.Error(err))
		return nil
	}
	out := make([]geometry.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}

// ComputedStyle implements geometry.AccessLayer.
func (e *Environment) ComputedStyle(el geometry.Element, property string) string {
	if d, ok := el.(*Element); ok && d != nil {
		return d.Style(property)
	}
	return ""
}

// SetStyle implements geometry.AccessLayer.
func (e *Environment) SetStyle(el geometry.Element, properties map[string]string) {
	if d, ok := el.(*Element); ok && d != nil {
		d.setStyle(properties)
	}
}

// OwnerWindow implements geometry.AccessLayer.
func (e *Environment) OwnerWindow(el geometry.Element) geometry.Window {
	d, ok := el.(*Element)
	if !ok || d == nil || d.doc.window == nil {
		return nil
	}
	return d.doc.window
}
