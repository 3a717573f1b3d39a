package renderers

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/invaders/component"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/render"
)

// TextRenderer draws HUD readouts, the menu button and the game-over sign
type TextRenderer struct {
	world *engine.World
}

// NewTextRenderer creates a text renderer over w
func NewTextRenderer(w *engine.World) *TextRenderer {
	return &TextRenderer{world: w}
}

// Render implements render.SystemRenderer
func (r *TextRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	c := &r.world.Components

	for _, e := range r.world.Query().With(c.Text).Execute() {
		text, _ := c.Text.Get(e)
		if text.Value == "" {
			continue
		}

		style := render.StyleHUD
		value := text.Value
		switch {
		case c.MenuButton.Has(e):
			style = tcell.StyleDefault.Background(render.RgbButtonBg).Foreground(render.RgbButtonFg).Bold(true)
			value = " " + value + " "
		case c.GameOverSign.Has(e):
			style = render.Fg(render.RgbGameOver).Bold(true)
		}

		x, y := anchorPosition(ctx, text, utf8.RuneCountInString(value))
		buf.SetText(x, y, value, style)
	}
}

// anchorPosition places a text of width n inside the playfield
func anchorPosition(ctx render.RenderContext, text component.TextComponent, n int) (int, int) {
	switch text.Anchor {
	case component.AnchorBottomLeft:
		return ctx.GameX + 1, ctx.GameY + ctx.GameHeight - 1 + text.Line
	case component.AnchorCenter:
		return ctx.GameX + (ctx.GameWidth-n)/2, ctx.GameY + ctx.GameHeight/2 + text.Line
	default:
		return ctx.GameX + 1, ctx.GameY + text.Line
	}
}
