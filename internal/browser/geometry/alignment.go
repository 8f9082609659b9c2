// internal/browser/geometry/alignment.go
package geometry

import (
	"fmt"
	"strings"
)

// Align selects which edge of the visible area an element is aligned with.
type Align int

const (
	// AlignAuto leaves the choice to the planner: the near edge when scrolling is
	// unconditional, the edge the element overflows when scrolling only if needed.
	AlignAuto Align = iota
	// AlignTop aligns the element's near edge (top/left) with the visible area.
	AlignTop
	// AlignBottom aligns the element's far edge (bottom/right) with the visible area.
	AlignBottom
)

func (a Align) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	default:
		return "auto"
	}
}

// ParseAlign converts "auto", "top" or "bottom" (case-insensitive) to an Align.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return AlignAuto, nil
	case "top", "true":
		return AlignTop, nil
	case "bottom", "false":
		return AlignBottom, nil
	}
	return AlignAuto, fmt.Errorf("unknown alignment %q (want auto, top or bottom)", s)
}

// AlignmentPolicy is the canonical, fully resolved form of every alignment argument.
type AlignmentPolicy struct {
	AlignWithTop          Align
	AllowHorizontalScroll bool
	OnlyScrollIfNeeded    bool
}

// DefaultAlignmentPolicy aligns to the top unconditionally on both axes.
func DefaultAlignmentPolicy() AlignmentPolicy {
	return AlignmentPolicy{AlignWithTop: AlignAuto, AllowHorizontalScroll: true}
}

// Alignment is the argument accepted by ScrollIntoView: either AlignWithTop or
// AlignmentOptions. A nil Alignment means the defaults.
type Alignment interface {
	resolve(allowHorizontalScroll *bool) AlignmentPolicy
}

// AlignWithTop is the boolean form: true aligns the top, false the bottom.
type AlignWithTop bool

func (a AlignWithTop) resolve(allowHorizontalScroll *bool) AlignmentPolicy {
	policy := DefaultAlignmentPolicy()
	policy.AlignWithTop = AlignBottom
	if a {
		policy.AlignWithTop = AlignTop
	}
	if allowHorizontalScroll != nil {
		policy.AllowHorizontalScroll = *allowHorizontalScroll
	}
	return policy
}

// AlignmentOptions is the object form. Its fields take precedence over any separately
// supplied horizontal-scroll flag; a nil AllowHorizontalScroll means true.
type AlignmentOptions struct {
	AlignWithTop          Align
	AllowHorizontalScroll *bool
	OnlyScrollIfNeeded    bool
}

func (o AlignmentOptions) resolve(_ *bool) AlignmentPolicy {
	policy := AlignmentPolicy{
		AlignWithTop:          o.AlignWithTop,
		AllowHorizontalScroll: true,
		OnlyScrollIfNeeded:    o.OnlyScrollIfNeeded,
	}
	if o.AllowHorizontalScroll != nil {
		policy.AllowHorizontalScroll = *o.AllowHorizontalScroll
	}
	return policy
}

// AlignmentPolicy satisfies Alignment so a resolved policy can be passed straight through.
func (p AlignmentPolicy) resolve(_ *bool) AlignmentPolicy { return p }

// ResolveAlignment turns a ScrollIntoView alignment argument into a policy.
func ResolveAlignment(a Alignment, allowHorizontalScroll *bool) AlignmentPolicy {
	if a == nil {
		return AlignmentPolicy{}.withHorizontal(allowHorizontalScroll)
	}
	return a.resolve(allowHorizontalScroll)
}

func (p AlignmentPolicy) withHorizontal(allow *bool) AlignmentPolicy {
	p.AllowHorizontalScroll = true
	if allow != nil {
		p.AllowHorizontalScroll = *allow
	}
	return p
}

// Bool returns a pointer to b, for optional flags.
func Bool(b bool) *bool { return &b }

// delta picks the scroll adjustment for one axis. ok is false when the axis is left alone.
func (p AlignmentPolicy) delta(diffTop, diffBottom float64) (float64, bool) {
	if p.OnlyScrollIfNeeded {
		if !(diffTop < 0 || diffBottom > 0) {
			return 0, false
		}
		switch p.AlignWithTop {
		case AlignTop:
			return diffTop, true
		case AlignBottom:
			return diffBottom, true
		default:
			if diffTop < 0 {
				return diffTop, true
			}
			return diffBottom, true
		}
	}

	if p.AlignWithTop == AlignBottom {
		return diffBottom, true
	}
	return diffTop, true
}
