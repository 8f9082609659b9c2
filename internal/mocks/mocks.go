// File: internal/mocks/mocks.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
	"github.com/xkilldash9x/scalpel-geometry/internal/config"
)

// -- Config Mock --

// MockConfig mocks the config.Interface.
type MockConfig struct {
	mock.Mock
}

var _ config.Interface = (*MockConfig)(nil)

func (m *MockConfig) Logger() config.LoggerConfig {
	args := m.Called()
	return args.Get(0).(config.LoggerConfig)
}

func (m *MockConfig) Browser() config.BrowserConfig {
	args := m.Called()
	return args.Get(0).(config.BrowserConfig)
}

func (m *MockConfig) Geometry() config.GeometryConfig {
	args := m.Called()
	return args.Get(0).(config.GeometryConfig)
}

func (m *MockConfig) SetBrowserHeadless(b bool)               { m.Called(b) }
func (m *MockConfig) SetBrowserViewport(width, height int)    { m.Called(width, height) }
func (m *MockConfig) SetGeometryAlignWithTop(a string)        { m.Called(a) }
func (m *MockConfig) SetGeometryAllowHorizontalScroll(b bool) { m.Called(b) }
func (m *MockConfig) SetGeometryOnlyScrollIfNeeded(b bool)    { m.Called(b) }

// -- Geometry Host Mocks --

// MockElement mocks geometry.Element.
type MockElement struct {
	mock.Mock
}

var _ geometry.Element = (*MockElement)(nil)

func (m *MockElement) BoundingClientRect() (geometry.Box, bool) {
	args := m.Called()
	return args.Get(0).(geometry.Box), args.Bool(1)
}

func (m *MockElement) Metric(metric geometry.Metric) (float64, bool) {
	args := m.Called(metric)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockElement) SetScroll(axis geometry.Axis, value float64) {
	m.Called(axis, value)
}

func (m *MockElement) OwnerDocument() geometry.Document {
	args := m.Called()
	if d, ok := args.Get(0).(geometry.Document); ok {
		return d
	}
	return nil
}

// MockDocument mocks geometry.Document.
type MockDocument struct {
	mock.Mock
}

var _ geometry.Document = (*MockDocument)(nil)

func (m *MockDocument) DocumentElement() geometry.Element {
	args := m.Called()
	if el, ok := args.Get(0).(geometry.Element); ok {
		return el
	}
	return nil
}

func (m *MockDocument) Body() geometry.Element {
	args := m.Called()
	if el, ok := args.Get(0).(geometry.Element); ok {
		return el
	}
	return nil
}

// MockWindow mocks geometry.Window.
type MockWindow struct {
	mock.Mock
}

var _ geometry.Window = (*MockWindow)(nil)

func (m *MockWindow) PageOffset(axis geometry.Axis) (float64, bool) {
	args := m.Called(axis)
	return args.Get(0).(float64), args.Bool(1)
}

func (m *MockWindow) ScrollTo(left, top float64) {
	m.Called(left, top)
}

func (m *MockWindow) FrameElement() geometry.Element {
	args := m.Called()
	if el, ok := args.Get(0).(geometry.Element); ok {
		return el
	}
	return nil
}

func (m *MockWindow) Parent() geometry.Window {
	args := m.Called()
	if w, ok := args.Get(0).(geometry.Window); ok {
		return w
	}
	return nil
}

// MockHost mocks geometry.Host.
type MockHost struct {
	mock.Mock
}

var _ geometry.Host = (*MockHost)(nil)

func (m *MockHost) CurrentWindow() geometry.Window {
	args := m.Called()
	if w, ok := args.Get(0).(geometry.Window); ok {
		return w
	}
	return nil
}

func (m *MockHost) DocumentOf(w geometry.Window) geometry.Document {
	args := m.Called(w)
	if d, ok := args.Get(0).(geometry.Document); ok {
		return d
	}
	return nil
}

func (m *MockHost) WindowOf(d geometry.Document) geometry.Window {
	args := m.Called(d)
	if w, ok := args.Get(0).(geometry.Window); ok {
		return w
	}
	return nil
}

func (m *MockHost) CompatibilityMode(d geometry.Document) geometry.CompatMode {
	args := m.Called(d)
	return args.Get(0).(geometry.CompatMode)
}

func (m *MockHost) Resolve(selector string) geometry.Element {
	args := m.Called(selector)
	if el, ok := args.Get(0).(geometry.Element); ok {
		return el
	}
	return nil
}

func (m *MockHost) ResolveAll(selector string) []geometry.Element {
	args := m.Called(selector)
	if els, ok := args.Get(0).([]geometry.Element); ok {
		return els
	}
	return nil
}

func (m *MockHost) ComputedStyle(el geometry.Element, property string) string {
	args := m.Called(el, property)
	return args.String(0)
}

func (m *MockHost) SetStyle(el geometry.Element, properties map[string]string) {
	m.Called(el, properties)
}

func (m *MockHost) OwnerWindow(el geometry.Element) geometry.Window {
	args := m.Called(el)
	if w, ok := args.Get(0).(geometry.Window); ok {
		return w
	}
	return nil
}
