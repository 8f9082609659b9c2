// internal/browser/dom/frames.go
package dom

import (
	"fmt"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

// frameElements matches every frame element whose content is inlined through srcdoc.
const frameElements = "//*[(local-name()='iframe' or local-name()='frame') and @srcdoc]"

// maxFrameDepth bounds srcdoc nesting.
const maxFrameDepth = 16

// LoadFrames parses the srcdoc of every frame element in w's document into a child
// window sized to the frame's client area and embeds it, recursively. It returns the
// number of windows created.
func LoadFrames(w *Window) (int, error) {
	return loadFrames(w, 0)
}

func loadFrames(w *Window, depth int) (int, error) {
	if depth >= maxFrameDepth {
		return 0, fmt.Errorf("frames nested deeper than %d levels", maxFrameDepth)
	}
	frames, err := w.doc.QueryAll(frameElements)
	if err != nil {
		return 0, err
	}

	var created int
	for _, frame := range frames {
		if w.ContentWindow(frame) != nil {
			continue
		}
		src, _ := frame.Attr("srcdoc")
		doc, err := ParseString(src)
		if err != nil {
			return created, fmt.Errorf("frame %s: %w", frame.XPath(), err)
		}
		child := NewWindow(doc, frame.clientSize(geometry.Width), frame.clientSize(geometry.Height))
		if err := w.Embed(frame, child); err != nil {
			return created, err
		}
		created++

		n, err := loadFrames(child, depth+1)
		created += n
		if err != nil {
			return created, err
		}
	}
	return created, nil
}
