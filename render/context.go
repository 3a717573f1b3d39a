package render

import (
	"math"

	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/parameter"
)

// cellAspect is the height of a terminal cell over its width
const cellAspect = 2.0

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Step counters at the time of the snapshot
	FrameNumber int64
	FixedTicks  int64

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Playfield rectangle in screen cells, centered and aspect-preserving
	GameX      int
	GameY      int
	GameWidth  int
	GameHeight int

	// Unit is the world width covered by one column; a row covers Unit*cellAspect
	Unit float64
}

// NewRenderContext lays the playfield out on a screen of the given size
func NewRenderContext(w *engine.World, screenWidth, screenHeight int) RenderContext {
	ctx := RenderContext{
		FrameNumber:  w.Resources.Time.FrameNumber,
		FixedTicks:   w.Resources.Time.FixedTicks,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	if screenWidth <= 0 || screenHeight <= 0 {
		return ctx
	}

	ctx.Unit = math.Max(parameter.ScreenWidth/float64(screenWidth), parameter.ScreenHeight/(cellAspect*float64(screenHeight)))
	ctx.GameWidth = min(screenWidth, int(parameter.ScreenWidth/ctx.Unit))
	ctx.GameHeight = min(screenHeight, int(parameter.ScreenHeight/(cellAspect*ctx.Unit)))
	ctx.GameX = (screenWidth - ctx.GameWidth) / 2
	ctx.GameY = (screenHeight - ctx.GameHeight) / 2
	return ctx
}

// SpriteFrame is the animation frame shared by all sprites, toggled on every fixed tick
func (rc *RenderContext) SpriteFrame() uint8 {
	return uint8(rc.FixedTicks & 1)
}

// WorldToScreen converts a world position (origin at center, +Y up) to a screen cell
// Returns visible=false when the position falls outside the playfield
func (rc *RenderContext) WorldToScreen(x, y float64) (int, int, bool) {
	if rc.Unit == 0 {
		return 0, 0, false
	}
	col := int(math.Floor((x - parameter.LeftWall) / rc.Unit))
	row := int(math.Floor((parameter.ScreenHeight/2 - y) / (rc.Unit * cellAspect)))
	if col < 0 || col >= rc.GameWidth || row < 0 || row >= rc.GameHeight {
		return 0, 0, false
	}
	return col + rc.GameX, row + rc.GameY, true
}

// Columns returns how many cells a world width spans, at least one
func (rc *RenderContext) Columns(w float64) int {
	if rc.Unit == 0 {
		return 1
	}
	return max(1, int(math.Round(w/rc.Unit)))
}
