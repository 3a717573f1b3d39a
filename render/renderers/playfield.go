package renderers

import (
	"github.com/lixenwraith/invaders/parameter"
	"github.com/lixenwraith/invaders/render"
)

// PlayfieldRenderer draws the ground line below the cannon
type PlayfieldRenderer struct{}

// NewPlayfieldRenderer creates a playfield renderer
func NewPlayfieldRenderer() *PlayfieldRenderer {
	return &PlayfieldRenderer{}
}

// Render implements render.SystemRenderer
func (r *PlayfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	_, y, ok := ctx.WorldToScreen(0, parameter.BottomWall)
	if !ok {
		return
	}
	buf.Fill(ctx.GameX, y, ctx.GameWidth, 1, '▔', render.Fg(render.RgbGround))
}
