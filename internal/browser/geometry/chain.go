// internal/browser/geometry/chain.go
package geometry

import "go.uber.org/zap"

// ViewingContext pairs a window with the element that represents the measured
// position inside it: the target element in its own window, the embedding frame
// element in every ancestor.
type ViewingContext struct {
	Window  Window
	Element Element
}

// ViewingContextChain is the ordered walk from an element's window up through its
// ancestor frames, stopping at a reference window.
type ViewingContextChain struct {
	Links []ViewingContext
	// ReachedReference reports whether the last link's window is the reference window.
	ReachedReference bool
}

// Depth is the number of frame boundaries crossed by the chain.
func (c ViewingContextChain) Depth() int {
	if len(c.Links) == 0 {
		return 0
	}
	return len(c.Links) - 1
}

// ViewingContextChain builds the chain for el. A nil relative window means the element's
// own window. The walk stops at the reference window, at a window without an embedding
// frame element, at a window without a parent, or at a window already visited.
func (r *Resolver) ViewingContextChain(el Element, relative Window) ViewingContextChain {
	var chain ViewingContextChain
	if el == nil {
		return chain
	}

	current := ViewingContext{Window: r.access.OwnerWindow(el), Element: el}
	if relative == nil {
		relative = current.Window
	}

	visited := make(map[Window]struct{})
	for {
		chain.Links = append(chain.Links, current)
		if current.Window == relative {
			chain.ReachedReference = true
			break
		}
		if current.Window == nil {
			break
		}
		visited[current.Window] = struct{}{}

		frame := current.Window.FrameElement()
		if frame == nil {
			break
		}
		parent := current.Window.Parent()
		if parent == nil {
			break
		}
		if _, seen := visited[parent]; seen {
			r.logger.Warn("Frame chain revisited a window; stopping.", zap.Int("depth", len(chain.Links)))
			break
		}
		current = ViewingContext{Window: parent, Element: frame}
	}

	if !chain.ReachedReference {
		r.logger.Debug("Reference window is not an ancestor; using the top-most window.",
			zap.Int("depth", chain.Depth()))
	}
	return chain
}

// TopWindow walks parent links from w (or the current window) to the outermost
// reachable window.
func (r *Resolver) TopWindow(w Window) Window {
	w = r.windowOrCurrent(w)
	if w == nil {
		return nil
	}
	visited := map[Window]struct{}{w: {}}
	for {
		parent := w.Parent()
		if parent == nil {
			return w
		}
		if _, seen := visited[parent]; seen {
			return w
		}
		visited[parent] = struct{}{}
		w = parent
	}
}
