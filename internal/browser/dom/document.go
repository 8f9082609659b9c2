// internal/browser/dom/document.go
//
// Package dom is an in-memory layout host: HTML documents parsed with x/net/html,
// element boxes declared up front, windows with scroll state and frame embedding.
// It implements geometry.Host and lets measurements and scroll plans run without a
// browser.
package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

// LayoutAttr declares an element's static border box as "left top width height",
// in document coordinates.
const LayoutAttr = "data-layout"

// Document is a parsed HTML document with declared layout.
type Document struct {
	root     *html.Node
	mode     geometry.CompatMode
	window   *Window
	elements map[*html.Node]*Element
}

// Parse reads an HTML document. A "<!DOCTYPE html>" selects standards mode, anything
// else quirks mode. Elements carrying a data-layout attribute are laid out.
func Parse(r io.Reader) (*Document, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	d := &Document{
		root:     root,
		mode:     compatModeOf(root),
		elements: make(map[*html.Node]*Element),
	}
	if err := d.applyLayoutAttrs(root); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseString is Parse over a string.
func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

// MustParse is ParseString for fixtures; it panics on error.
func MustParse(src string) *Document {
	d, err := ParseString(src)
	if err != nil {
		panic(err)
	}
	return d
}

func compatModeOf(root *html.Node) geometry.CompatMode {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode && strings.EqualFold(c.Data, "html") {
			return geometry.StandardsMode
		}
	}
	return geometry.QuirksMode
}

func (d *Document) applyLayoutAttrs(n *html.Node) error {
	if n.Type == html.ElementNode {
		if v, ok := attr(n, LayoutAttr); ok {
			box, err := parseLayout(v)
			if err != nil {
				return fmt.Errorf("element %s: %w", XPathOf(n), err)
			}
			d.element(n).SetLayout(box)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := d.applyLayoutAttrs(c); err != nil {
			return err
		}
	}
	return nil
}

func parseLayout(v string) (geometry.Box, error) {
	fields := strings.Fields(v)
	if len(fields) != 4 {
		return geometry.Box{}, fmt.Errorf("invalid %s %q: want \"left top width height\"", LayoutAttr, v)
	}
	var vals [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil {
			return geometry.Box{}, fmt.Errorf("invalid %s %q: %w", LayoutAttr, v, err)
		}
		vals[i] = n
	}
	return geometry.Box{Left: vals[0], Top: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// element returns the single wrapper for an element node.
func (d *Document) element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{node: n, doc: d}
	d.elements[n] = el
	return el
}

// Mode returns the document's rendering mode.
func (d *Document) Mode() geometry.CompatMode { return d.mode }

// Window returns the window showing the document, or nil before one is attached.
func (d *Document) Window() *Window { return d.window }

// Root returns the parsed document node.
func (d *Document) Root() *html.Node { return d.root }

// Query returns the first element matching an XPath expression, or nil.
func (d *Document) Query(expr string) (*Element, error) {
	n, err := htmlquery.Query(d.root, expr)
	if err != nil {
		return nil, err
	}
	return d.element(n), nil
}

// QueryAll returns every element matching an XPath expression in document order.
func (d *Document) QueryAll(expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, err
	}
	els := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if el := d.element(n); el != nil {
			els = append(els, el)
		}
	}
	return els, nil
}

// MustQuery is Query for fixtures; it panics when nothing matches.
func (d *Document) MustQuery(expr string) *Element {
	el, err := d.Query(expr)
	if err != nil {
		panic(err)
	}
	if el == nil {
		panic(fmt.Sprintf("no element matches %q", expr))
	}
	return el
}

func (d *Document) findAtom(a atom.Atom) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return found
}

// HTML returns the <html> element wrapper, or nil.
func (d *Document) HTML() *Element { return d.element(d.findAtom(atom.Html)) }

// BodyElement returns the <body> element wrapper, or nil.
func (d *Document) BodyElement() *Element { return d.element(d.findAtom(atom.Body)) }

// DocumentElement implements geometry.Document.
func (d *Document) DocumentElement() geometry.Element {
	if el := d.HTML(); el != nil {
		return el
	}
	return nil
}

// Body implements geometry.Document.
func (d *Document) Body() geometry.Element {
	if el := d.BodyElement(); el != nil {
		return el
	}
	return nil
}

// scrollRoot is the element whose scroll offsets mirror the window's.
func (d *Document) scrollRoot() *Element {
	if d.mode == geometry.StandardsMode {
		return d.HTML()
	}
	return d.BodyElement()
}

// extent is the furthest right or bottom edge of any laid out element, no less than
// the viewport.
func (d *Document) extent(dim geometry.Dimension) float64 {
	var max float64
	if d.window != nil {
		max = d.window.viewport.Size(dim)
	}
	for _, el := range d.elements {
		if !el.laidOut {
			continue
		}
		edge := el.layout.Right()
		if dim == geometry.Height {
			edge = el.layout.Bottom()
		}
		if edge > max {
			max = edge
		}
	}
	return max
}

// Render writes the document, including any style changes, as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
