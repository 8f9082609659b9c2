package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/xkilldash9x/scalpel-geometry/internal/browser/dom"
	"github.com/xkilldash9x/scalpel-geometry/internal/browser/geometry"
)

const framesFixture = `<!DOCTYPE html>
<html>
<body>
	<iframe id="f1" data-layout="10 10 400 300" style="border-width: 2px"
		srcdoc="<!DOCTYPE html><html><body>
			<div id='t' data-layout='5 5 10 10'></div>
			<iframe id='f2' data-layout='0 0 100 100' srcdoc='<html><body><div id=&quot;deep&quot; data-layout=&quot;1 2 3 4&quot;></div></body></html>'></iframe>
		</body></html>"></iframe>
	<iframe id="plain" data-layout="0 500 10 10"></iframe>
</body>
</html>`

func TestLoadFrames(t *testing.T) {
	env, top := setupEnvironment(t, framesFixture)

	n, err := dom.LoadFrames(top)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f1 := top.Document().MustQuery("//iframe[@id='f1']")
	child := top.ContentWindow(f1)
	require.NotNil(t, child)
	assert.Equal(t, geometry.Box{Width: 396, Height: 296}, child.Viewport())
	assert.Equal(t, geometry.Window(top), child.Parent())
	assert.Equal(t, geometry.StandardsMode, child.Document().Mode())
	assert.Nil(t, top.ContentWindow(top.Document().MustQuery("//iframe[@id='plain']")))

	t.Run("Loading twice creates nothing", func(t *testing.T) {
		n, err := dom.LoadFrames(top)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Offsets cross the loaded frames", func(t *testing.T) {
		require.NoError(t, env.EnterFrame("//iframe[@id='f1']"))
		require.NoError(t, env.EnterFrame("//iframe[@id='f2']"))
		assert.Equal(t, geometry.QuirksMode, env.Current().Document().Mode())

		r := geometry.NewHostResolver(env, zaptest.NewLogger(t))
		got, ok := r.GetOffsetRelativeTo("//div[@id='deep']", top)
		require.True(t, ok)
		assert.Equal(t, geometry.Point{Left: 11, Top: 12}, got)
	})
}

func TestLoadFrames_InvalidContent(t *testing.T) {
	_, top := setupEnvironment(t, `<html><body>
		<iframe data-layout="0 0 10 10" srcdoc="<div data-layout='bad'></div>"></iframe>
	</body></html>`)
	_, err := dom.LoadFrames(top)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data-layout")
}

func TestEnterFrame_Errors(t *testing.T) {
	env, _ := setupEnvironment(t, framesFixture)

	assert.Error(t, env.EnterFrame("//iframe[@id='missing']"))
	assert.Error(t, env.EnterFrame("//iframe[@id='f1']"), "frames are not loaded yet")
	assert.Error(t, env.EnterFrame("//*["))

	env.SetCurrent(nil)
	assert.Error(t, env.EnterFrame("//iframe"))
}
