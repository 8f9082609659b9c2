package schemas

import (
	"time"
)

// -- Report Schemas --

// Report is the top level document written for every command invocation.
type Report struct {
	InvocationID string    `json:"invocation_id"`
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	// Source is the URL or file the page was loaded from.
	Source string `json:"source"`
	// Frame is the frame selector the command ran inside, if any.
	Frame string `json:"frame,omitempty"`

	Offset  *OffsetReport  `json:"offset,omitempty"`
	Move    *MoveReport    `json:"move,omitempty"`
	Scroll  *ScrollReport  `json:"scroll,omitempty"`
	Metrics *MetricsReport `json:"metrics,omitempty"`
}

// Point is a position in CSS pixels.
type Point struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Reference windows an offset may be measured against.
const (
	RelativeToOwnDocument = "own"
	RelativeToTopDocument = "top"
)

// OffsetReport holds the document offset of one element.
type OffsetReport struct {
	Selector   string `json:"selector"`
	Found      bool   `json:"found"`
	Offset     *Point `json:"offset,omitempty"`
	RelativeTo string `json:"relative_to"`
	// FrameDepth is the number of frame boundaries crossed to reach the reference window.
	FrameDepth int `json:"frame_depth"`
}

// MoveReport describes a set-offset operation.
type MoveReport struct {
	Selector string `json:"selector"`
	Matched  int    `json:"matched"`
	// Left and Top are the requested coordinates; nil leaves that axis unchanged.
	Left   *float64 `json:"left,omitempty"`
	Top    *float64 `json:"top,omitempty"`
	Before []Point  `json:"before"`
	After  []Point  `json:"after"`
}

// AlignmentReport is the resolved alignment a scroll was planned with.
type AlignmentReport struct {
	AlignWithTop          string `json:"align_with_top"`
	AllowHorizontalScroll bool   `json:"allow_horizontal_scroll"`
	OnlyScrollIfNeeded    bool   `json:"only_scroll_if_needed"`
}

// AxisPlan is the scroll decision for one axis.
type AxisPlan struct {
	DiffTop    float64 `json:"diff_top"`
	DiffBottom float64 `json:"diff_bottom"`
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	Scroll     bool    `json:"scroll"`
}

// ScrollReport describes a scroll-into-view operation.
type ScrollReport struct {
	Selector  string `json:"selector"`
	Container string `json:"container"`
	Found     bool   `json:"found"`
	// Applied is false for dry runs and for elements that were not found.
	Applied    bool            `json:"applied"`
	Alignment  AlignmentReport `json:"alignment"`
	Vertical   AxisPlan        `json:"vertical"`
	Horizontal AxisPlan        `json:"horizontal"`
	Before     Point           `json:"before"`
	After      Point           `json:"after"`
}

// MetricsReport holds the canonical sizes and scroll position of a window.
type MetricsReport struct {
	Mode           string  `json:"mode"`
	DocWidth       float64 `json:"doc_width"`
	DocHeight      float64 `json:"doc_height"`
	ViewportWidth  float64 `json:"viewport_width"`
	ViewportHeight float64 `json:"viewport_height"`
	ScrollLeft     float64 `json:"scroll_left"`
	ScrollTop      float64 `json:"scroll_top"`
}
