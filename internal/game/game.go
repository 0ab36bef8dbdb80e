// Package game provides the main game loop and scene lifecycle.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/monsterbattle/internal/gamedata"
	"github.com/samdwyer/monsterbattle/internal/input"
	"github.com/samdwyer/monsterbattle/internal/telemetry"
	"github.com/samdwyer/monsterbattle/internal/ui"
)

// maxFrameStep caps the time advanced by a single frame after a stall.
const maxFrameStep = 250 * time.Millisecond

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	logger   *zap.Logger
	tracer   trace.Tracer

	moves    *gamedata.MoveRegistry
	monsters *gamedata.MonsterRegistry

	collector input.Collector
	session   *Session
	battles   int
}

// New loads the static data, checks the configured monsters and opens the
// terminal screen.
func New(cfg Config, logger *zap.Logger, tracer trace.Tracer) (*Game, error) {
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", cfg.FPS)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracer == nil {
		tracer = telemetry.Tracer("game")
	}

	moves, err := gamedata.LoadMoveRegistry()
	if err != nil {
		return nil, fmt.Errorf("load moves: %w", err)
	}
	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	for _, id := range []string{cfg.PlayerMonster, cfg.EnemyMonster} {
		if _, err := monsters.Lookup(id); err != nil {
			return nil, err
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		logger:   logger,
		tracer:   tracer,
		moves:    moves,
		monsters: monsters,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
// The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "game.run")
	defer func() {
		span.SetAttributes(attribute.Int("battles", g.battles))
		span.End()
	}()
	defer g.Close()

	quit := make(chan struct{})
	defer close(quit)
	events := g.screen.Events(quit)

	if err := g.startSession(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ev)

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > maxFrameStep {
				dt = maxFrameStep
			}

			frame := g.collector.Take()
			if frame.Quit {
				g.logger.Info("quit requested", zap.Int("battles", g.battles))
				return nil
			}

			g.session.Step(frame, dt)
			if g.session.State() == StateDone {
				if err := g.startSession(ctx); err != nil {
					return err
				}
			}
			g.renderer.Render(g.session.Scene())
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.collector.HandleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) startSession(ctx context.Context) error {
	s, err := NewSession(ctx, g.cfg, g.moves, g.monsters, g.logger, nil)
	if err != nil {
		return err
	}
	g.session = s
	g.battles++
	g.logger.Debug("scene started", zap.Int("battle", g.battles))
	return nil
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	g.screen.Close()
}
