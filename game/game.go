package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/invaders/asset"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/manifest"
	"github.com/lixenwraith/invaders/system"
)

// Game owns the world and drives it one frame step at a time
// Step and View serialize on the same mutex so a renderer never reads a half-applied step
type Game struct {
	mu sync.Mutex

	cfg       config.Config
	world     *engine.World
	scheduler *engine.Scheduler
	audio     *system.AudioHandler
	clock     engine.Clock
	logger    *zap.Logger
}

type options struct {
	rng   engine.Rand
	input input.Provider
	audio engine.AudioPlayer
	clock engine.Clock
}

// Option customizes New
type Option func(*options)

// WithRand replaces the seeded PCG source
func WithRand(rng engine.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithInput sets the provider polled by the input system
func WithInput(p input.Provider) Option {
	return func(o *options) { o.input = p }
}

// WithAudio sets the player receiving sound requests
func WithAudio(p engine.AudioPlayer) Option {
	return func(o *options) { o.audio = p }
}

// WithClock sets the wall clock used by Run
func WithClock(c engine.Clock) Option {
	return func(o *options) { o.clock = c }
}

// New assembles world, systems and state graph; the game starts in Menu
func New(cfg config.Config, logger *zap.Logger, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	o := options{clock: engine.NewTimeProvider()}
	for _, opt := range opts {
		opt(&o)
	}

	res := engine.NewResources(cfg.Tuning, o.rng, logger)
	res.Input.Provider = o.input
	res.Audio.Player = o.audio
	res.Player.Session = uuid.NewString()

	w := engine.NewWorld(res)
	s := engine.NewScheduler(w)
	audio := manifest.RegisterSystems(s, w, cfg.Debug.StrictInvariants)

	if err := s.LoadFSM([]byte(asset.DefaultGameFSMConfig), manifest.RegisterFSMComponents); err != nil {
		return nil, fmt.Errorf("game setup: %w", err)
	}

	logger.Info("game created",
		zap.Uint64("seed", cfg.Tuning.Seed),
		zap.String("session", res.Player.Session),
		zap.Strings("frame_systems", s.FrameSystems()),
		zap.Strings("fixed_systems", s.FixedSystems()),
	)

	return &Game{
		cfg:       cfg,
		world:     w,
		scheduler: s,
		audio:     audio,
		clock:     o.clock,
		logger:    logger,
	}, nil
}

// Step advances one frame of duration dt
func (g *Game) Step(dt time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scheduler.Step(dt)
}

// View runs fn with exclusive access to the world between steps
func (g *Game) View(fn func(w *engine.World)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.world)
}

// World returns the world; callers outside the loop goroutine must go through View
func (g *Game) World() *engine.World {
	return g.world
}

// Scheduler exposes the scheduler for handler registration and inspection
func (g *Game) Scheduler() *engine.Scheduler {
	return g.scheduler
}

// State returns the mirrored game state
func (g *Game) State() core.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.world.Resources.State.State
}

// SetMuted toggles playback of sound requests
func (g *Game) SetMuted(muted bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.audio.SetMuted(muted)
}

// Run steps the game on every frame interval until ctx is done
// Frame delta comes from the clock; onFrame, if set, sees the world after each step
func (g *Game) Run(ctx context.Context, onFrame func(w *engine.World)) error {
	ticker := time.NewTicker(g.cfg.Render.FrameInterval)
	defer ticker.Stop()

	last := g.clock.Now()
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped",
				zap.Int64("frames", g.world.Resources.Time.FrameNumber),
				zap.Int64("fixed_ticks", g.world.Resources.Time.FixedTicks),
			)
			return nil
		case <-ticker.C:
		}

		now := g.clock.Now()
		g.Step(now.Sub(last))
		last = now

		if onFrame != nil {
			g.View(onFrame)
		}
	}
}
