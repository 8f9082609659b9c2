// internal/browser/cdp/host.go
//
// Package cdp implements geometry.Host over a live browser tab through the Chrome
// DevTools Protocol. Elements, documents and windows are remote object handles held in
// one object group per host.
package cdp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

// DefaultCallTimeout bounds a single protocol round trip when no timeout is configured.
const DefaultCallTimeout = 5 * time.Second

// Host is a geometry.Host backed by a chromedp tab context. Calls are serialized; the
// geometry interfaces carry no errors, so failures are logged, recorded in Err, and
// degrade to zero values.
type Host struct {
	ctx     context.Context
	timeout time.Duration
	logger  *zap.Logger
	group   string

	callMu sync.Mutex

	mu      sync.Mutex
	windows map[string]*Window
	current *Window
	err     error
	onClose func()
}

var _ geometry.Host = (*Host)(nil)

// NewHost creates a host over a tab context created with chromedp.NewContext.
func NewHost(ctx context.Context, callTimeout time.Duration, logger *zap.Logger) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	group := "scalpel-geometry-" + uuid.NewString()
	return &Host{
		ctx:     ctx,
		timeout: callTimeout,
		logger:  logger.Named("cdp").With(zap.String("object_group", group)),
		group:   group,
		windows: make(map[string]*Window),
	}
}

// Err returns the first protocol failure seen by the host, if any.
func (h *Host) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Host) recordErr(op string, err error) {
	h.logger.Warn("CDP call failed.", zap.String("op", op), zap.Error(err))
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err == nil {
		h.err = fmt.Errorf("%s: %w", op, err)
	}
}

// Close releases every remote object handed out by the host and runs any close hook.
func (h *Host) Close() error {
	ctx, cancel := context.WithTimeout(h.ctx, h.timeout)
	defer cancel()

	h.callMu.Lock()
	err := chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		return runtime.ReleaseObjectGroup(h.group).Do(ctx)
	}))
	h.callMu.Unlock()

	h.mu.Lock()
	h.windows = make(map[string]*Window)
	h.current = nil
	onClose := h.onClose
	h.onClose = nil
	h.mu.Unlock()

	if onClose != nil {
		onClose()
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to release object group: %w", err)
	}
	return nil
}

// -- Protocol Primitives --

// run executes actions under the per-call timeout.
func (h *Host) run(op string, actions ...chromedp.Action) bool {
	h.callMu.Lock()
	defer h.callMu.Unlock()

	ctx, cancel := context.WithTimeout(h.ctx, h.timeout)
	defer cancel()

	if err := chromedp.Run(ctx, actions...); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %v: %w", h.timeout, err)
		}
		h.recordErr(op, err)
		return false
	}
	return true
}

func (h *Host) callOptions(id runtime.RemoteObjectID) chromedp.CallOption {
	return func(p *runtime.CallFunctionOnParams) *runtime.CallFunctionOnParams {
		return p.WithObjectID(id).WithObjectGroup(h.group)
	}
}

// callValue invokes fn on the remote object and decodes its JSON result into res.
func (h *Host) callValue(id runtime.RemoteObjectID, op, fn string, res interface{}, args ...interface{}) bool {
	if id == "" {
		return false
	}
	return h.run(op, chromedp.CallFunctionOn(fn, res, h.callOptions(id), args...))
}

// callObject invokes fn on the remote object and returns the id of the object it
// returns, or "" for null and undefined.
func (h *Host) callObject(id runtime.RemoteObjectID, op, fn string, args ...interface{}) runtime.RemoteObjectID {
	if id == "" {
		return ""
	}
	var obj *runtime.RemoteObject
	if !h.run(op, chromedp.CallFunctionOn(fn, &obj, h.callOptions(id), args...)) || obj == nil {
		return ""
	}
	if obj.ObjectID == "" {
		h.logger.Debug("Remote call returned no object.", zap.String("op", op))
	}
	return obj.ObjectID
}

// arrayItems returns the ids of an array object's indexed elements in index order.
func (h *Host) arrayItems(id runtime.RemoteObjectID) []runtime.RemoteObjectID {
	type item struct {
		index int
		id    runtime.RemoteObjectID
	}
	var items []item
	ok := h.run("Runtime.getProperties", chromedp.ActionFunc(func(ctx context.Context) error {
		props, _, _, exc, err := runtime.GetProperties(id).WithOwnProperties(true).Do(ctx)
		if err != nil {
			return err
		}
		if exc != nil {
			return exc
		}
		for _, p := range props {
			i, err := strconv.Atoi(p.Name)
			if err != nil || p.Value == nil || p.Value.ObjectID == "" {
				continue
			}
			items = append(items, item{index: i, id: p.Value.ObjectID})
		}
		return nil
	}))
	if !ok {
		return nil
	}
	sort.Slice(items, func(a, b int) bool { return items[a].index < items[b].index })
	ids := make([]runtime.RemoteObjectID, len(items))
	for i, it := range items {
		ids[i] = it.id
	}
	return ids
}

// windowFor returns the single Window handle for a remote window object, tagging the
// window on first sight.
func (h *Host) windowFor(id runtime.RemoteObjectID) *Window {
	if id == "" {
		return nil
	}
	var tag string
	if !h.callValue(id, "tagWindow", jsTagWindow, &tag, uuid.NewString()) || tag == "" {
		h.logger.Debug("Window is not accessible; treating it as absent.")
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if w, ok := h.windows[tag]; ok {
		return w
	}
	w := &Window{host: h, id: id, tag: tag}
	h.windows[tag] = w
	return w
}

// -- Environment --

// Current returns the window selectors resolve against, evaluating the tab's top-level
// window on first use.
func (h *Host) Current() *Window {
	h.mu.Lock()
	current := h.current
	h.mu.Unlock()
	if current != nil {
		return current
	}

	var obj *runtime.RemoteObject
	ok := h.run("evaluate window", chromedp.Evaluate("window", &obj, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithObjectGroup(h.group)
	}))
	if !ok || obj == nil {
		return nil
	}
	w := h.windowFor(obj.ObjectID)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		h.current = w
	}
	return h.current
}

// EnterFrame makes the content window of the first frame element matching selector the
// current window.
func (h *Host) EnterFrame(selector string) error {
	el, ok := h.Resolve(selector).(*Element)
	if !ok || el == nil {
		return fmt.Errorf("frame %q not found", selector)
	}
	w := h.windowFor(h.callObject(el.id, "contentWindow", jsContentWindow))
	if w == nil {
		return fmt.Errorf("frame %q has no accessible content window", selector)
	}
	h.mu.Lock()
	h.current = w
	h.mu.Unlock()
	return nil
}

// CurrentWindow implements geometry.Environment.
func (h *Host) CurrentWindow() geometry.Window {
	if w := h.Current(); w != nil {
		return w
	}
	return nil
}

// DocumentOf implements geometry.Environment.
func (h *Host) DocumentOf(w geometry.Window) geometry.Document {
	win, ok := w.(*Window)
	if !ok || win == nil {
		return nil
	}
	if id := h.callObject(win.id, "window.document", jsWindowDocument); id != "" {
		return &Document{host: h, id: id}
	}
	return nil
}

// WindowOf implements geometry.Environment.
func (h *Host) WindowOf(d geometry.Document) geometry.Window {
	doc, ok := d.(*Document)
	if !ok || doc == nil {
		return nil
	}
	if w := h.windowFor(h.callObject(doc.id, "document.defaultView", jsDefaultView)); w != nil {
		return w
	}
	return nil
}

// CompatibilityMode implements geometry.Environment.
func (h *Host) CompatibilityMode(d geometry.Document) geometry.CompatMode {
	doc, ok := d.(*Document)
	if !ok || doc == nil {
		return geometry.QuirksMode
	}
	var mode string
	if h.callValue(doc.id, "document.compatMode", jsCompatMode, &mode) && mode == "CSS1Compat" {
		return geometry.StandardsMode
	}
	return geometry.QuirksMode
}

// -- Access Layer --

// Resolve implements geometry.AccessLayer. Selectors are XPath expressions.
func (h *Host) Resolve(selector string) geometry.Element {
	w := h.Current()
	if w == nil {
		return nil
	}
	if id := h.callObject(w.id, "resolve", jsFirstMatch, selector); id != "" {
		return &Element{host: h, id: id}
	}
	return nil
}

// ResolveAll implements geometry.AccessLayer.
func (h *Host) ResolveAll(selector string) []geometry.Element {
	w := h.Current()
	if w == nil {
		return nil
	}
	arr := h.callObject(w.id, "resolveAll", jsAllMatches, selector)
	if arr == "" {
		return nil
	}
	var els []geometry.Element
	for _, id := range h.arrayItems(arr) {
		els = append(els, &Element{host: h, id: id})
	}
	return els
}

// ComputedStyle implements geometry.AccessLayer.
func (h *Host) ComputedStyle(el geometry.Element, property string) string {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return ""
	}
	var v string
	h.callValue(e.id, "computedStyle", jsComputedStyle, &v, property)
	return v
}

// SetStyle implements geometry.AccessLayer.
func (h *Host) SetStyle(el geometry.Element, properties map[string]string) {
	e, ok := el.(*Element)
	if !ok || e == nil || len(properties) == 0 {
		return
	}
	var done bool
	h.callValue(e.id, "setStyle", jsSetStyle, &done, properties)
}

// OwnerWindow implements geometry.AccessLayer.
func (h *Host) OwnerWindow(el geometry.Element) geometry.Window {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return nil
	}
	if w := h.windowFor(h.callObject(e.id, "ownerWindow", jsOwnerWindow)); w != nil {
		return w
	}
	return nil
}
