package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
	"github.com/xkilldash9x/scalpel-geometry/internal/mocks"
)

// mockPage wires a host to one window whose document has both roots.
type mockPage struct {
	host      *mocks.MockHost
	win       *mocks.MockWindow
	doc       *mocks.MockDocument
	standards *mocks.MockElement
	quirks    *mocks.MockElement
	resolver  *geometry.Resolver
}

func newMockPage(t *testing.T, mode geometry.CompatMode) *mockPage {
	t.Helper()
	p := &mockPage{
		host:      new(mocks.MockHost),
		win:       new(mocks.MockWindow),
		doc:       new(mocks.MockDocument),
		standards: new(mocks.MockElement),
		quirks:    new(mocks.MockElement),
	}
	p.host.On("CurrentWindow").Return(p.win).Maybe()
	p.host.On("DocumentOf", p.win).Return(p.doc).Maybe()
	p.host.On("WindowOf", p.doc).Return(p.win).Maybe()
	p.host.On("CompatibilityMode", p.doc).Return(mode).Maybe()
	p.doc.On("DocumentElement").Return(p.standards).Maybe()
	p.doc.On("Body").Return(p.quirks).Maybe()
	p.resolver = geometry.NewHostResolver(p.host, zaptest.NewLogger(t))
	return p
}

func TestScrollPosition_Fallbacks(t *testing.T) {
	t.Run("Page offset wins, zero included", func(t *testing.T) {
		p := newMockPage(t, geometry.StandardsMode)
		p.win.On("PageOffset", geometry.Vertical).Return(0.0, true)

		assert.Equal(t, 0.0, p.resolver.ScrollPosition(p.win, geometry.Vertical))
		p.standards.AssertNotCalled(t, "Metric", mock.Anything)
		p.quirks.AssertNotCalled(t, "Metric", mock.Anything)
	})

	t.Run("Standards root, zero included", func(t *testing.T) {
		p := newMockPage(t, geometry.QuirksMode)
		p.win.On("PageOffset", geometry.Vertical).Return(0.0, false)
		p.standards.On("Metric", geometry.ScrollTop).Return(0.0, true)

		assert.Equal(t, 0.0, p.resolver.ScrollPosition(p.win, geometry.Vertical))
		p.quirks.AssertNotCalled(t, "Metric", mock.Anything)
	})

	t.Run("Quirks root", func(t *testing.T) {
		p := newMockPage(t, geometry.QuirksMode)
		p.win.On("PageOffset", geometry.Horizontal).Return(0.0, false)
		p.standards.On("Metric", geometry.ScrollLeft).Return(0.0, false)
		p.quirks.On("Metric", geometry.ScrollLeft).Return(42.0, true)

		assert.Equal(t, 42.0, p.resolver.ScrollPosition(p.win, geometry.Horizontal))
	})

	t.Run("Nothing reports", func(t *testing.T) {
		p := newMockPage(t, geometry.QuirksMode)
		p.win.On("PageOffset", geometry.Vertical).Return(0.0, false)
		p.standards.On("Metric", geometry.ScrollTop).Return(0.0, false)
		p.quirks.On("Metric", geometry.ScrollTop).Return(0.0, false)

		assert.Equal(t, 0.0, p.resolver.ScrollPosition(p.win, geometry.Vertical))
	})
}

func TestViewportSize_ModeAndFallback(t *testing.T) {
	tests := []struct {
		name      string
		mode      geometry.CompatMode
		standards float64
		quirks    float64
		expected  float64
	}{
		{"Standards reads the root", geometry.StandardsMode, 800, 300, 800},
		{"Standards root zero falls to body", geometry.StandardsMode, 0, 300, 300},
		{"Quirks reads the body", geometry.QuirksMode, 800, 300, 300},
		{"Quirks body zero falls to root", geometry.QuirksMode, 800, 0, 800},
		{"Both zero", geometry.QuirksMode, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMockPage(t, tt.mode)
			p.standards.On("Metric", geometry.ClientWidth).Return(tt.standards, true)
			p.quirks.On("Metric", geometry.ClientWidth).Return(tt.quirks, true)

			assert.Equal(t, tt.expected, p.resolver.ViewportWidth(nil))
		})
	}
}

func TestDocumentSize_LargestReadingWins(t *testing.T) {
	p := newMockPage(t, geometry.StandardsMode)
	p.standards.On("Metric", geometry.ScrollHeight).Return(900.0, true)
	p.quirks.On("Metric", geometry.ScrollHeight).Return(1400.0, true)
	p.standards.On("Metric", geometry.ClientHeight).Return(600.0, true)
	p.quirks.On("Metric", geometry.ClientHeight).Return(0.0, true)

	assert.Equal(t, 1400.0, p.resolver.DocHeight(nil))
}

func TestClientPosition_InsetFallback(t *testing.T) {
	p := newMockPage(t, geometry.QuirksMode)
	el := new(mocks.MockElement)
	el.On("BoundingClientRect").Return(geometry.Box{Left: 12, Top: 20, Width: 5, Height: 5}, true)
	el.On("OwnerDocument").Return(p.doc)
	p.standards.On("Metric", geometry.ClientLeft).Return(0.0, true)
	p.quirks.On("Metric", geometry.ClientLeft).Return(2.0, true)
	p.standards.On("Metric", geometry.ClientTop).Return(0.0, false)
	p.quirks.On("Metric", geometry.ClientTop).Return(0.0, true)

	assert.Equal(t, geometry.Point{Left: 10, Top: 20}, p.resolver.ClientPosition(el))
}

func TestClientPosition_NoBox(t *testing.T) {
	p := newMockPage(t, geometry.StandardsMode)
	el := new(mocks.MockElement)
	el.On("BoundingClientRect").Return(geometry.Box{}, false)

	assert.Equal(t, geometry.Point{}, p.resolver.ClientPosition(el))
	el.AssertNotCalled(t, "OwnerDocument")
}

func TestViewingContextChain_CycleTerminates(t *testing.T) {
	host := new(mocks.MockHost)
	a, b, unrelated := new(mocks.MockWindow), new(mocks.MockWindow), new(mocks.MockWindow)
	el, frameA, frameB := new(mocks.MockElement), new(mocks.MockElement), new(mocks.MockElement)

	host.On("OwnerWindow", el).Return(a)
	a.On("FrameElement").Return(frameA)
	a.On("Parent").Return(b)
	b.On("FrameElement").Return(frameB)
	b.On("Parent").Return(a)

	r := geometry.NewHostResolver(host, zaptest.NewLogger(t))
	chain := r.ViewingContextChain(el, unrelated)

	assert.False(t, chain.ReachedReference)
	assert.Len(t, chain.Links, 2)
	assert.Equal(t, geometry.Element(frameA), chain.Links[1].Element)
}

func TestViewingContextChain_StopsWithoutParent(t *testing.T) {
	host := new(mocks.MockHost)
	w, unrelated := new(mocks.MockWindow), new(mocks.MockWindow)
	el := new(mocks.MockElement)

	host.On("OwnerWindow", el).Return(w)
	w.On("FrameElement").Return(new(mocks.MockElement))
	w.On("Parent").Return(nil)

	r := geometry.NewHostResolver(host, zaptest.NewLogger(t))
	chain := r.ViewingContextChain(el, unrelated)
	assert.Len(t, chain.Links, 1)
	assert.False(t, chain.ReachedReference)
	assert.Equal(t, 0, chain.Depth())
}

func TestScrollIntoView_VisibleNeverScrolls(t *testing.T) {
	p := newMockPage(t, geometry.StandardsMode)
	el := new(mocks.MockElement)

	p.host.On("Resolve", "#in-view").Return(el)
	p.host.On("OwnerWindow", el).Return(p.win)
	el.On("OwnerDocument").Return(p.doc)
	el.On("BoundingClientRect").Return(geometry.Box{Left: 10, Top: 10, Width: 20, Height: 20}, true)
	el.On("Metric", mock.Anything).Return(20.0, true)
	p.win.On("PageOffset", mock.Anything).Return(0.0, true)
	// The first matching expectation wins, so the viewport sizes precede the catch-all.
	p.standards.On("Metric", geometry.ClientWidth).Return(800.0, true)
	p.standards.On("Metric", geometry.ClientHeight).Return(600.0, true)
	p.standards.On("Metric", mock.Anything).Return(0.0, true)
	p.quirks.On("Metric", mock.Anything).Return(0.0, true)

	p.resolver.ScrollIntoView("#in-view", geometry.Target{}, geometry.AlignmentOptions{OnlyScrollIfNeeded: true})
	p.win.AssertNotCalled(t, "ScrollTo", mock.Anything, mock.Anything)
}

func TestSetWindowScroll_HoldsOtherAxis(t *testing.T) {
	p := newMockPage(t, geometry.StandardsMode)
	p.win.On("PageOffset", geometry.Horizontal).Return(15.0, true)
	p.win.On("ScrollTo", 15.0, 200.0).Return()

	p.resolver.SetWindowScroll(p.win, geometry.Vertical, 200)
	p.win.AssertExpectations(t)
}
