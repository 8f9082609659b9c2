// internal/browser/dom/style.go
package dom

import (
	"strconv"
	"strings"
)

// declaration is a single inline style property.
type declaration struct {
	Property string
	Value    string
}

// inlineStyle keeps declarations in source order so the style attribute can be
// written back the way it was read.
type inlineStyle struct {
	decls []declaration
}

// parseInlineStyle splits a style attribute into declarations. Shorthands are expanded
// into their longhands; "!important" is dropped since inline styles have no cascade here.
func parseInlineStyle(attr string) *inlineStyle {
	s := &inlineStyle{}
	for _, part := range strings.Split(attr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])
		if strings.HasSuffix(strings.ToLower(val), "!important") {
			val = strings.TrimSpace(val[:len(val)-len("!important")])
		}
		s.setExpanded(prop, val)
	}
	return s
}

// setExpanded sets prop, expanding the border shorthands this environment understands.
func (s *inlineStyle) setExpanded(prop, val string) {
	switch prop {
	case "border-width":
		s.expand1To4(val, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
	case "border":
		// Only the width component matters for geometry.
		for _, tok := range strings.Fields(val) {
			if _, ok := leadingNumber(tok); ok {
				s.expand1To4(tok, "border-top-width", "border-right-width", "border-bottom-width", "border-left-width")
				break
			}
		}
	default:
		s.set(prop, val)
	}
}

// expand1To4 applies the CSS 1-to-4 value shorthand rule (top, right, bottom, left).
func (s *inlineStyle) expand1To4(val, top, right, bottom, left string) {
	parts := strings.Fields(val)
	var t, r, b, l string
	switch len(parts) {
	case 1:
		t, r, b, l = parts[0], parts[0], parts[0], parts[0]
	case 2:
		t, r, b, l = parts[0], parts[1], parts[0], parts[1]
	case 3:
		t, r, b, l = parts[0], parts[1], parts[2], parts[1]
	case 4:
		t, r, b, l = parts[0], parts[1], parts[2], parts[3]
	default:
		return
	}
	s.set(top, t)
	s.set(right, r)
	s.set(bottom, b)
	s.set(left, l)
}

func (s *inlineStyle) set(prop, val string) {
	for i := range s.decls {
		if s.decls[i].Property == prop {
			s.decls[i].Value = val
			return
		}
	}
	s.decls = append(s.decls, declaration{Property: prop, Value: val})
}

func (s *inlineStyle) get(prop string) (string, bool) {
	for _, d := range s.decls {
		if d.Property == prop {
			return d.Value, true
		}
	}
	return "", false
}

// String serializes the declarations back into a style attribute value.
func (s *inlineStyle) String() string {
	parts := make([]string, 0, len(s.decls))
	for _, d := range s.decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// initialValues are the computed values reported for properties with no inline declaration.
var initialValues = map[string]string{
	"position":            "static",
	"left":                "auto",
	"top":                 "auto",
	"border-top-width":    "0px",
	"border-right-width":  "0px",
	"border-bottom-width": "0px",
	"border-left-width":   "0px",
}

// computed returns the computed value of prop: the inline declaration or the initial value.
func (s *inlineStyle) computed(prop string) string {
	prop = strings.ToLower(prop)
	if v, ok := s.get(prop); ok {
		return v
	}
	return initialValues[prop]
}

// leadingNumber parses the numeric prefix of a CSS length such as "12.5px".
func leadingNumber(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) {
		c := v[end]
		if (c >= '0' && c <= '9') || c == '.' || ((c == '-' || c == '+') && end == 0) {
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// length returns the pixel value of a computed length; non-lengths ("auto") are 0.
func (s *inlineStyle) length(prop string) float64 {
	f, _ := leadingNumber(s.computed(prop))
	return f
}
