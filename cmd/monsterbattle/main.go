// Package main is the entry point for MonsterBattle.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/monsterbattle/internal/config"
	"github.com/samdwyer/monsterbattle/internal/game"
	"github.com/samdwyer/monsterbattle/internal/telemetry"
)

func main() {
	// Load .env file for local development.
	// This makes HONEYCOMB_MONSTERBATTLE_API_KEY available.
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var tracer trace.Tracer
	if cfg.Telemetry {
		telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed, running without observability", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Error("telemetry shutdown", zap.Error(err))
				}
			}()
		}
		tracer = telemetry.Tracer("game")
	} else {
		tracer = telemetry.NoopTracer()
	}

	g, err := game.New(game.Config{
		FPS:           cfg.FPS,
		PlayerMonster: cfg.PlayerMonster,
		EnemyMonster:  cfg.EnemyMonster,
		FadeDuration:  game.DefaultConfig().FadeDuration,
	}, logger, tracer)
	if err != nil {
		logger.Error("failed to initialize game", zap.Error(err))
		log.Fatalf("Failed to initialize game: %v", err)
	}

	logger.Info("game starting",
		zap.String("player", cfg.PlayerMonster),
		zap.String("enemy", cfg.EnemyMonster),
		zap.Int("fps", cfg.FPS),
	)
	if err := g.Run(ctx); err != nil {
		logger.Error("game error", zap.Error(err))
		log.Fatalf("Game error: %v", err)
	}
}

// newLogger writes JSON logs to the configured file, since the terminal is
// owned by the renderer.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Debug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	return zc.Build()
}
