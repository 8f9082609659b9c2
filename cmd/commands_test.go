// File: cmd/commands_test.go
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/scalpel-geometry/api/schemas"
)

func TestRootCmd_VersionFlag(t *testing.T) {
	stdout, _, err := executeCommand(t, failingOpener{t: t}, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "scalpel-geometry version Alpha")
}

func TestRootCmd_RequiredFlags(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)

	_, _, err := executeCommand(t, failingOpener{t: t}, "offset", "--static", page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "selector" not set`)

	_, _, err = executeCommand(t, failingOpener{t: t}, "move", "--static", "-s", "//div", page)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--left or --top")

	_, _, err = executeCommand(t, failingOpener{t: t}, "metrics")
	require.Error(t, err)
}

func TestOffsetCmd(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)

	t.Run("Found", func(t *testing.T) {
		report := runReport(t, "offset", "--static", "-s", "//div[@id='box']", page)
		assert.Equal(t, "offset", report.Command)
		assert.Equal(t, page, report.Source)
		assert.NotEmpty(t, report.InvocationID)
		require.NotNil(t, report.Offset)
		assert.True(t, report.Offset.Found)
		assert.Equal(t, &schemas.Point{Left: 100, Top: 200}, report.Offset.Offset)
		assert.Equal(t, schemas.RelativeToOwnDocument, report.Offset.RelativeTo)
		assert.Nil(t, report.Scroll)
	})

	t.Run("Not found", func(t *testing.T) {
		report := runReport(t, "offset", "--static", "-s", "//div[@id='missing']", page)
		require.NotNil(t, report.Offset)
		assert.False(t, report.Offset.Found)
		assert.Nil(t, report.Offset.Offset)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, _, err := executeCommand(t, failingOpener{t: t}, "offset", "--static", "-s", "//div", "does-not-exist.html")
		require.Error(t, err)
	})
}

func TestOffsetCmd_Frames(t *testing.T) {
	page := writeFile(t, "frames.html", framesFixture)

	t.Run("Own document", func(t *testing.T) {
		report := runReport(t, "offset", "--static", "--frame", "//iframe[@id='f1']", "-s", "//div[@id='t']", page)
		assert.Equal(t, "//iframe[@id='f1']", report.Frame)
		assert.Equal(t, &schemas.Point{Left: 5, Top: 7}, report.Offset.Offset)
		assert.Zero(t, report.Offset.FrameDepth)
	})

	t.Run("Top document", func(t *testing.T) {
		report := runReport(t, "offset", "--static", "--frame", "//iframe[@id='f1']", "--relative-top", "-s", "//div[@id='t']", page)
		assert.Equal(t, &schemas.Point{Left: 15, Top: 27}, report.Offset.Offset)
		assert.Equal(t, schemas.RelativeToTopDocument, report.Offset.RelativeTo)
		assert.Equal(t, 1, report.Offset.FrameDepth)
	})

	t.Run("Unknown frame", func(t *testing.T) {
		_, _, err := executeCommand(t, failingOpener{t: t}, "offset", "--static", "--frame", "//iframe[@id='nope']", "-s", "//div", page)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to enter frame")
	})
}

func TestMoveCmd(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)

	report := runReport(t, "move", "--static", "-s", "//div[@id='box']", "--left", "30", page)
	require.NotNil(t, report.Move)
	assert.Equal(t, 1, report.Move.Matched)
	require.NotNil(t, report.Move.Left)
	assert.Equal(t, 30.0, *report.Move.Left)
	assert.Nil(t, report.Move.Top)
	assert.Equal(t, []schemas.Point{{Left: 100, Top: 200}}, report.Move.Before)
	assert.Equal(t, []schemas.Point{{Left: 30, Top: 200}}, report.Move.After)

	t.Run("Every match moves", func(t *testing.T) {
		report := runReport(t, "move", "--static", "-s", "//div[@id='box' or @id='far']", "--left", "7", "--top", "9", page)
		assert.Equal(t, 2, report.Move.Matched)
		assert.Equal(t, []schemas.Point{{Left: 7, Top: 9}, {Left: 7, Top: 9}}, report.Move.After)
	})
}

func TestScrollCmd(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)
	base := []string{"scroll", "--static", "--viewport", "800x600", "-s", "//div[@id='far']"}
	args := func(extra ...string) []string {
		return append(append(append([]string{}, base...), extra...), page)
	}

	t.Run("Default aligns the top on both axes", func(t *testing.T) {
		report := runReport(t, args()...)
		s := report.Scroll
		require.NotNil(t, s)
		assert.True(t, s.Found)
		assert.True(t, s.Applied)
		assert.Equal(t, "auto", s.Alignment.AlignWithTop)
		assert.Equal(t, schemas.Point{}, s.Before)
		assert.Equal(t, schemas.Point{Left: 1000, Top: 1000}, s.After)
		assert.Equal(t, schemas.AxisPlan{DiffTop: 1000, DiffBottom: 440, To: 1000, Scroll: true}, s.Vertical)
	})

	t.Run("Bottom alignment", func(t *testing.T) {
		report := runReport(t, args("--align", "bottom")...)
		assert.Equal(t, "bottom", report.Scroll.Alignment.AlignWithTop)
		assert.Equal(t, schemas.Point{Left: 250, Top: 440}, report.Scroll.After)
	})

	t.Run("Horizontal scrolling disabled", func(t *testing.T) {
		report := runReport(t, args("--no-horizontal")...)
		assert.False(t, report.Scroll.Alignment.AllowHorizontalScroll)
		assert.False(t, report.Scroll.Horizontal.Scroll)
		assert.Equal(t, schemas.Point{Left: 0, Top: 1000}, report.Scroll.After)
	})

	t.Run("Dry run", func(t *testing.T) {
		report := runReport(t, args("--dry-run")...)
		assert.False(t, report.Scroll.Applied)
		assert.True(t, report.Scroll.Vertical.Scroll)
		assert.Equal(t, report.Scroll.Before, report.Scroll.After)
	})

	t.Run("Only if needed leaves a visible element alone", func(t *testing.T) {
		report := runReport(t, "scroll", "--static", "--only-if-needed", "-s", "//div[@id='box']", page)
		assert.True(t, report.Scroll.Alignment.OnlyScrollIfNeeded)
		assert.False(t, report.Scroll.Vertical.Scroll)
		assert.Equal(t, schemas.Point{}, report.Scroll.After)
	})

	t.Run("Missing element", func(t *testing.T) {
		report := runReport(t, "scroll", "--static", "-s", "//div[@id='missing']", page)
		assert.False(t, report.Scroll.Found)
		assert.False(t, report.Scroll.Applied)
	})

	t.Run("Invalid alignment", func(t *testing.T) {
		_, _, err := executeCommand(t, failingOpener{t: t}, args("--align", "sideways")...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "align_with_top")
	})
}

func TestMetricsCmd(t *testing.T) {
	page := writeFile(t, "page.html", pageFixture)

	report := runReport(t, "metrics", "--static", "--viewport", "800x600", page)
	assert.Equal(t, &schemas.MetricsReport{
		Mode:           "CSS1Compat",
		DocWidth:       3000,
		DocHeight:      3000,
		ViewportWidth:  800,
		ViewportHeight: 600,
	}, report.Metrics)

	t.Run("Quirks document", func(t *testing.T) {
		quirks := writeFile(t, "quirks.html", `<html><body><div data-layout="0 0 10 10"></div></body></html>`)
		report := runReport(t, "metrics", "--static", "--viewport", "800x600", quirks)
		assert.Equal(t, "BackCompat", report.Metrics.Mode)
		assert.Equal(t, 800.0, report.Metrics.DocWidth)
		assert.Equal(t, 600.0, report.Metrics.ViewportHeight)
	})
}

func TestLiveOpener(t *testing.T) {
	var sources []string
	opener := fixtureOpener{src: framesFixture, sources: &sources}

	stdout, stderr, err := executeCommand(t, opener, "offset", "--frame", "//iframe[@id='f1']", "--relative-top", "-s", "//div[@id='t']", "https://example.test/")
	require.NoError(t, err, stderr)
	assert.Equal(t, []string{"https://example.test/"}, sources)

	var report schemas.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, &schemas.Point{Left: 15, Top: 27}, report.Offset.Offset)
}
