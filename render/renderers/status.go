package renderers

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/status"
)

// StatusRenderer overlays engine metrics in the top-right corner, hidden until toggled
type StatusRenderer struct {
	world   *engine.World
	reg     *status.Registry
	visible atomic.Bool
}

// NewStatusRenderer creates a hidden status overlay over w's registry
func NewStatusRenderer(w *engine.World) *StatusRenderer {
	return &StatusRenderer{world: w, reg: w.Resources.Status}
}

// Toggle flips visibility; safe to call from the input goroutine
func (r *StatusRenderer) Toggle() {
	for {
		v := r.visible.Load()
		if r.visible.CompareAndSwap(v, !v) {
			return
		}
	}
}

// IsVisible implements render.VisibilityToggle
func (r *StatusRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Render implements render.SystemRenderer
func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	res := r.world.Resources
	lines := append([]string{
		fmt.Sprintf("state=%s", res.State.State),
		fmt.Sprintf("level=%d difficulty=%d", res.Level.Value, res.Difficulty.Value),
	}, r.reg.Lines()...)

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	x := ctx.ScreenWidth - width - 1
	for i, l := range lines {
		if i >= ctx.ScreenHeight {
			return
		}
		buf.Fill(x-1, i, width+2, 1, ' ', render.StyleStatus)
		buf.SetText(x, i, l, render.StyleStatus)
	}
}
