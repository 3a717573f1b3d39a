package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/invaders/audio"
	"github.com/lixenwraith/invaders/config"
	"github.com/lixenwraith/invaders/core"
	"github.com/lixenwraith/invaders/engine"
	"github.com/lixenwraith/invaders/game"
	"github.com/lixenwraith/invaders/input"
	"github.com/lixenwraith/invaders/logger"
	"github.com/lixenwraith/invaders/render"
	"github.com/lixenwraith/invaders/render/renderers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFile(config.DefaultPath)
	if err != nil {
		return err
	}
	if cfg.Tuning.Seed == 0 {
		cfg.Tuning.Seed = uint64(time.Now().UnixNano())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(render.StyleBackground)
	screen.HideCursor()
	// Crash path restores the terminal before printing the stack
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	player := audio.NewPlayer(cfg.Audio, log.Named("audio"))
	if err := player.Start(); err != nil {
		log.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer player.Close()

	keyboard := input.NewKeyboard(nil, cfg.Render.KeyHoldWindow, nil)

	g, err := game.New(cfg, log, game.WithInput(keyboard), game.WithAudio(player))
	if err != nil {
		return err
	}

	// Create render orchestrator
	orchestrator := render.NewRenderOrchestrator(screen)
	status := renderers.NewStatusRenderer(g.World())

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewPlayfieldRenderer(), render.PriorityBackground},
		{renderers.NewSpriteRenderer(g.World()), render.PriorityEntities},
		{renderers.NewProjectileRenderer(g.World()), render.PriorityProjectiles},
		{renderers.NewTextRenderer(g.World()), render.PriorityUI},
		{status, render.PriorityOverlay},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Event pump: PollEvent blocks, so shutdown is signalled by Fini from the loop goroutine
	eg.Go(core.Guard(func() error {
		muted := false
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return nil
			case *tcell.EventResize:
				g.View(func(*engine.World) { orchestrator.Resize() })
			case *tcell.EventKey:
				switch keyboard.Feed(ev) {
				case input.KeyQuit:
					cancel()
					return nil
				case input.KeyMute:
					muted = !muted
					g.SetMuted(muted)
				case input.KeyStatus:
					status.Toggle()
				}
			}
		}
	}))

	eg.Go(core.Guard(func() error {
		defer screen.Fini()
		return g.Run(ctx, orchestrator.RenderFrame)
	}))

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("session ended")
	return nil
}
