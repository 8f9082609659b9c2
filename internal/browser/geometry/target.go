// internal/browser/geometry/target.go
package geometry

type targetKind int

const (
	targetUnspecified targetKind = iota
	targetSelector
	targetElement
	targetDocument
	targetWindow
)

// Target names something that can be measured or scrolled: a selector, an element,
// a document or a window. The zero Target is "unspecified" and each operation
// documents its default.
type Target struct {
	kind     targetKind
	selector string
	element  Element
	document Document
	window   Window
}

// SelectorTarget refers to the first element matching selector.
func SelectorTarget(selector string) Target {
	return Target{kind: targetSelector, selector: selector}
}

// ElementTarget refers to an already resolved element.
func ElementTarget(el Element) Target {
	if el == nil {
		return Target{}
	}
	return Target{kind: targetElement, element: el}
}

// DocumentTarget refers to a document; scrolling a document scrolls its window.
func DocumentTarget(d Document) Target {
	if d == nil {
		return Target{}
	}
	return Target{kind: targetDocument, document: d}
}

// WindowTarget refers to a window.
func WindowTarget(w Window) Target {
	if w == nil {
		return Target{}
	}
	return Target{kind: targetWindow, window: w}
}

// IsZero reports whether the target is unspecified.
func (t Target) IsZero() bool { return t.kind == targetUnspecified }

func (t Target) String() string {
	switch t.kind {
	case targetSelector:
		return t.selector
	case targetElement:
		return "<element>"
	case targetDocument:
		return "<document>"
	case targetWindow:
		return "<window>"
	default:
		return "<unspecified>"
	}
}

// scroller resolves a target to a scroll container. Documents become their window.
// ok is false when the target does not resolve.
func (r *Resolver) scroller(t Target) (Scroller, bool) {
	switch t.kind {
	case targetSelector:
		if el := r.access.Resolve(t.selector); el != nil {
			return Scroller{Element: el}, true
		}
	case targetElement:
		return Scroller{Element: t.element}, true
	case targetDocument:
		if w := r.env.WindowOf(t.document); w != nil {
			return Scroller{Window: w}, true
		}
	case targetWindow:
		return Scroller{Window: t.window}, true
	}
	return Scroller{}, false
}
