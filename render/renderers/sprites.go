package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/render"
)

// glyph is the terminal stand-in for a two-frame sprite atlas
type glyph struct {
	frames [2]string
	color  tcell.Color
}

var spriteGlyphs = map[string]glyph{
	parameter.AssetCannon:  {frames: [2]string{"_A_", "_A_"}, color: render.RgbCannon},
	parameter.AssetSquid:   {frames: [2]string{"/o\\", "\\o/"}, color: render.RgbSquid},
	parameter.AssetCrab:    {frames: [2]string{"{@}", "}@{"}, color: render.RgbCrab},
	parameter.AssetOctopus: {frames: [2]string{"<W>", ">M<"}, color: render.RgbOctopus},
	parameter.AssetUfo:     {frames: [2]string{"<=>", "=<>"}, color: render.RgbUfo},
}

// missingGlyph is drawn for assets with no terminal glyph
var missingGlyph = glyph{frames: [2]string{"?", "?"}, color: render.RgbMissing}

// SpriteRenderer draws every entity carrying a sprite and a transform
type SpriteRenderer struct {
	world *engine.World
}

// NewSpriteRenderer creates a sprite renderer over w
func NewSpriteRenderer(w *engine.World) *SpriteRenderer {
	return &SpriteRenderer{world: w}
}

// Render implements render.SystemRenderer
func (r *SpriteRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components
	frame := ctx.SpriteFrame()

	for _, e := range r.world.Query().With(c.Sprite).With(c.Transform).Execute() {
		sprite, _ := c.Sprite.Get(e)
		t, _ := c.Transform.Get(e)

		g, ok := spriteGlyphs[sprite.Asset]
		if !ok {
			g = missingGlyph
		}
		text := g.frames[(sprite.Frame^frame)&1]

		sx, sy, visible := ctx.WorldToScreen(t.X, t.Y)
		if !visible {
			continue
		}
		n := len([]rune(text))
		buf.SetText(sx-n/2, sy, text, render.Fg(g.color))
	}
}

// ProjectileRenderer draws lasers and bombs, which carry no sprite
type ProjectileRenderer struct {
	world *engine.World
}

// NewProjectileRenderer creates a projectile renderer over w
func NewProjectileRenderer(w *engine.World) *ProjectileRenderer {
	return &ProjectileRenderer{world: w}
}

// Render implements render.SystemRenderer
func (r *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components

	for _, e := range r.world.Query().With(c.Laser).With(c.Transform).Execute() {
		t, _ := c.Transform.Get(e)
		if sx, sy, ok := ctx.WorldToScreen(t.X, t.Y); ok {
			buf.Set(sx, sy, '|', render.Fg(render.RgbLaser))
		}
	}

	bombRune := '/'
	if ctx.SpriteFrame() == 1 {
		bombRune = '\\'
	}
	for _, e := range r.world.Query().With(c.Bomb).With(c.Transform).Execute() {
		t, _ := c.Transform.Get(e)
		if sx, sy, ok := ctx.WorldToScreen(t.X, t.Y); ok {
			buf.Set(sx, sy, bombRune, render.Fg(render.RgbBomb))
		}
	}
}
