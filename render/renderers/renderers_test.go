package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/system"
)

// 112x32 gives 8 world units per column and a 56x32 playfield at column 28
const (
	screenW = 112
	screenH = 32
)

func newWorld() *engine.World {
	return engine.NewWorld(engine.NewResources(config.Default().Tuning, nil, nil))
}

func renderWith(w *engine.World, renderers ...render.SystemRenderer) (render.RenderContext, *render.RenderBuffer) {
	ctx := render.NewRenderContext(w, screenW, screenH)
	buf := render.NewRenderBuffer(screenW, screenH)
	for _, r := range renderers {
		r.Render(ctx, buf)
	}
	return ctx, buf
}

func runeAt(buf *render.RenderBuffer, x, y int) rune {
	c, _ := buf.Get(x, y)
	return c.Rune
}

func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r := runeAt(buf, x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestSpriteRendererDrawsCannonAtWorldPosition(t *testing.T) {
	w := newWorld()
	system.SpawnCannon(w)
	w.Commands.Flush()

	ctx, buf := renderWith(w, NewSpriteRenderer(w))
	x, y, ok := ctx.WorldToScreen(0, parameter.CannonY)
	require.True(t, ok)
	assert.Equal(t, 'A', runeAt(buf, x, y))
	assert.Equal(t, '_', runeAt(buf, x-1, y))
	assert.Equal(t, '_', runeAt(buf, x+1, y))
}

func TestSpriteRendererTogglesFrameOnFixedTicks(t *testing.T) {
	w := newWorld()
	system.SpawnEnemy(w, 5, 0)
	w.Commands.Flush()
	x, y := system.FormationCell(5, 0)

	ctx, buf := renderWith(w, NewSpriteRenderer(w))
	sx, sy, ok := ctx.WorldToScreen(x, y)
	require.True(t, ok)
	assert.Equal(t, '/', runeAt(buf, sx-1, sy))

	w.Resources.Time.FixedTicks++
	_, buf = renderWith(w, NewSpriteRenderer(w))
	assert.Equal(t, '\\', runeAt(buf, sx-1, sy))
}

func TestSpriteRendererUnknownAssetPlaceholder(t *testing.T) {
	w := newWorld()
	eb := w.Commands.Spawn()
	engine.With(eb, w.Components.Transform, component.TransformComponent{})
	engine.With(eb, w.Components.Sprite, component.SpriteComponent{Asset: "barrier.png"})
	eb.Build()
	w.Commands.Flush()

	ctx, buf := renderWith(w, NewSpriteRenderer(w))
	x, y, _ := ctx.WorldToScreen(0, 0)
	assert.Equal(t, '?', runeAt(buf, x, y))
}

func TestProjectileRendererDrawsLasersAndBombs(t *testing.T) {
	w := newWorld()
	system.SpawnBomb(w, 40, 0)
	eb := w.Commands.Spawn()
	engine.With(eb, w.Components.Laser, component.LaserBeamComponent{})
	engine.With(eb, w.Components.Transform, component.TransformComponent{X: -40, Y: 0})
	eb.Build()
	w.Commands.Flush()

	ctx, buf := renderWith(w, NewProjectileRenderer(w))
	lx, ly, _ := ctx.WorldToScreen(-40, 0)
	bx, by, _ := ctx.WorldToScreen(40, 0)
	assert.Equal(t, '|', runeAt(buf, lx, ly))
	assert.Equal(t, '/', runeAt(buf, bx, by))
}

func TestTextRendererAnchors(t *testing.T) {
	w := newWorld()
	system.SpawnMenu(w, true)
	system.SpawnHUD(w)
	w.Commands.Flush()
	w.Components.Text.Update(w.Components.ScoreUI.All()[0], func(tc *component.TextComponent) {
		tc.Value = "SCORE 120"
	})

	ctx, buf := renderWith(w, NewTextRenderer(w))
	center := ctx.GameY + ctx.GameHeight/2

	assert.Contains(t, rowText(buf, center), " Start Game ")
	assert.Contains(t, rowText(buf, center-2), parameter.LabelGameOver)
	assert.True(t, strings.HasPrefix(rowText(buf, ctx.GameY)[ctx.GameX+1:], "SCORE 120"))

	// Lives text is still empty until the HUD system writes it
	assert.Equal(t, strings.Repeat(" ", screenW), rowText(buf, ctx.GameY+ctx.GameHeight-1))
}

func TestPlayfieldRendererGroundLine(t *testing.T) {
	w := newWorld()
	ctx, buf := renderWith(w, NewPlayfieldRenderer())
	_, y, ok := ctx.WorldToScreen(0, parameter.BottomWall)
	require.True(t, ok)
	assert.Equal(t, '▔', runeAt(buf, ctx.GameX, y))
	assert.Equal(t, '▔', runeAt(buf, ctx.GameX+ctx.GameWidth-1, y))
	assert.Equal(t, rune(0), runeAt(buf, ctx.GameX-1, y))
}

func TestStatusRendererToggle(t *testing.T) {
	w := newWorld()
	w.Resources.Status.Ints.Get("engine.frames").Store(42)
	r := NewStatusRenderer(w)

	assert.False(t, r.IsVisible())
	r.Toggle()
	assert.True(t, r.IsVisible())

	_, buf := renderWith(w, r)
	assert.Contains(t, rowText(buf, 0), "state=Menu")
	assert.Contains(t, rowText(buf, 2), "engine.frames=42")

	r.Toggle()
	assert.False(t, r.IsVisible())
}

func TestFullFrameOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(screenW, screenH)
	t.Cleanup(screen.Fini)

	w := newWorld()
	system.SpawnCannon(w)
	system.SpawnFormation(w)
	w.Commands.Flush()

	o := render.NewRenderOrchestrator(screen)
	o.Register(NewPlayfieldRenderer(), render.PriorityBackground)
	o.Register(NewSpriteRenderer(w), render.PriorityEntities)
	o.RenderFrame(w)

	cells, width, _ := screen.GetContents()
	ctx := render.NewRenderContext(w, screenW, screenH)
	x, y, _ := ctx.WorldToScreen(0, parameter.CannonY)
	require.NotEmpty(t, cells[y*width+x].Runes)
	assert.Equal(t, 'A', cells[y*width+x].Runes[0])
}
