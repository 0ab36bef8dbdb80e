package game

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/monsterbattle/internal/anim"
	"github.com/samdwyer/monsterbattle/internal/battle"
	"github.com/samdwyer/monsterbattle/internal/entity"
	"github.com/samdwyer/monsterbattle/internal/gamedata"
	"github.com/samdwyer/monsterbattle/internal/input"
	"github.com/samdwyer/monsterbattle/internal/ui"
)

// blinkPeriod is the half cycle of the acknowledgment cursor.
const blinkPeriod = 400 * time.Millisecond

// Session is one battle scene: its scheduler, both monsters and the battle
// controller. It implements battle.Scene.
type Session struct {
	sched   *anim.Scheduler
	player  *entity.Monster
	enemy   *entity.Monster
	battle  *battle.Controller
	logger  *zap.Logger
	state   State
	fade    float64
	fadeDur time.Duration
}

// NewSession spawns the configured monsters at full health and starts a
// battle between them.
func NewSession(ctx context.Context, cfg Config, moves *gamedata.MoveRegistry, monsters *gamedata.MonsterRegistry, logger *zap.Logger, tracer trace.Tracer) (*Session, error) {
	playerDef, err := monsters.Lookup(cfg.PlayerMonster)
	if err != nil {
		return nil, fmt.Errorf("player monster: %w", err)
	}
	enemyDef, err := monsters.Lookup(cfg.EnemyMonster)
	if err != nil {
		return nil, fmt.Errorf("enemy monster: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sched := anim.NewScheduler()
	s := &Session{
		sched:   sched,
		player:  entity.NewMonsterFromDef(playerDef, entity.SidePlayer, moves, sched),
		enemy:   entity.NewMonsterFromDef(enemyDef, entity.SideEnemy, moves, sched),
		logger:  logger,
		state:   StateBattle,
		fadeDur: cfg.FadeDuration,
	}

	s.battle, err = battle.New(ctx, battle.Config{
		Player:    s.player.Combatant,
		Enemy:     s.enemy.Combatant,
		Scheduler: sched,
		Scene:     s,
		Logger:    logger,
		Tracer:    tracer,
	})
	if err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}
	s.battle.Start()
	return s, nil
}

// RequestSceneRestart fades the scene out and then marks it done.
func (s *Session) RequestSceneRestart() {
	if s.state != StateBattle {
		return
	}
	s.state = StateFadeOut
	s.logger.Debug("scene restart requested", zap.Duration("fade", s.fadeDur))
	s.sched.Tween(s.fadeDur, func(p float64) {
		s.fade = p
	}, func() {
		s.state = StateDone
	})
}

// Step runs one frame: the battle's queued transition, then input, then time.
// Input is dropped once the scene is fading.
func (s *Session) Step(f input.Frame, dt time.Duration) {
	s.battle.Update()
	if s.state == StateBattle {
		s.battle.HandleInput(f)
	}
	s.sched.Advance(dt)
}

// State returns the scene lifecycle state.
func (s *Session) State() State { return s.state }

// Battle returns the battle controller.
func (s *Session) Battle() *battle.Controller { return s.battle }

// Scene returns what to draw for the current frame.
func (s *Session) Scene() ui.Scene {
	return ui.Scene{
		Player: s.player,
		Enemy:  s.enemy,
		Menu:   s.battle.Menu().View(),
		Blink:  (s.sched.Now()/blinkPeriod)%2 == 0,
		Fade:   s.fade,
	}
}
