package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
)

func TestRenderBufferClipsWrites(t *testing.T) {
	buf := NewRenderBuffer(4, 2)

	end := buf.SetText(2, 1, "abc", StyleHUD)
	assert.Equal(t, 5, end)

	c, ok := buf.Get(3, 1)
	require.True(t, ok)
	assert.Equal(t, 'b', c.Rune)
	_, ok = buf.Get(4, 1)
	assert.False(t, ok, "c was clipped")

	buf.Set(-1, 0, 'x', StyleHUD)
	buf.Clear()
	c, _ = buf.Get(3, 1)
	assert.Equal(t, emptyCell, c)
}

func TestRenderBufferResizeReusesCapacity(t *testing.T) {
	buf := NewRenderBuffer(10, 10)
	buf.Set(0, 0, 'x', StyleHUD)

	buf.Resize(3, 3)
	w, h := buf.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)
	c, _ := buf.Get(0, 0)
	assert.Equal(t, emptyCell, c, "resize clears")
	assert.Equal(t, 100, cap(buf.cells))
}

func TestRenderContextLayout(t *testing.T) {
	w := engine.NewWorld(engine.NewResources(config.Default().Tuning, nil, nil))
	w.Resources.Time.FixedTicks = 3

	// 8 world units per column, 16 per row: the playfield is 56x32 cells
	ctx := NewRenderContext(w, 112, 32)
	assert.Equal(t, 8.0, ctx.Unit)
	assert.Equal(t, 56, ctx.GameWidth)
	assert.Equal(t, 32, ctx.GameHeight)
	assert.Equal(t, 28, ctx.GameX)
	assert.Equal(t, 0, ctx.GameY)
	assert.Equal(t, uint8(1), ctx.SpriteFrame())

	x, y, ok := ctx.WorldToScreen(0, 0)
	require.True(t, ok)
	assert.Equal(t, 56, x)
	assert.Equal(t, 16, y)

	x, y, ok = ctx.WorldToScreen(parameter.LeftWall, parameter.ScreenHeight/2)
	require.True(t, ok)
	assert.Equal(t, 28, x)
	assert.Equal(t, 0, y)

	_, _, ok = ctx.WorldToScreen(parameter.RightWall, 0)
	assert.False(t, ok, "right edge is exclusive")

	assert.Equal(t, 4, ctx.Columns(parameter.SpriteSize))
	assert.Equal(t, 1, ctx.Columns(parameter.LaserWidth))
}

func TestRenderContextEmptyScreen(t *testing.T) {
	w := engine.NewWorld(engine.NewResources(config.Default().Tuning, nil, nil))
	ctx := NewRenderContext(w, 0, 0)

	_, _, ok := ctx.WorldToScreen(0, 0)
	assert.False(t, ok)
	assert.Equal(t, 1, ctx.Columns(parameter.SpriteSize))
}
