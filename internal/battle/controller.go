// Package battle sequences a single encounter between the player's monster and
// a wild monster: intro, bring-out, move selection, turn resolution, faint
// checks, and the hand-off back to the scene when the battle is over.
package battle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/monsterbattle/internal/anim"
	"github.com/samdwyer/monsterbattle/internal/combat"
	"github.com/samdwyer/monsterbattle/internal/fsm"
	"github.com/samdwyer/monsterbattle/internal/menu"
	"github.com/samdwyer/monsterbattle/internal/telemetry"
)

// Scene is the host scene. It is asked to restart once the battle finishes.
type Scene interface {
	RequestSceneRestart()
}

// Timings are the fixed delays between battle steps.
type Timings struct {
	Settle      time.Duration // INTRO wait before the enemy shows up
	BringOut    time.Duration // pause after "go X!" before the menu opens
	PostMessage time.Duration // pause after "X used Y" before the hit lands
}

// DefaultTimings returns the standard pacing.
func DefaultTimings() Timings {
	return Timings{
		Settle:      1200 * time.Millisecond,
		BringOut:    1200 * time.Millisecond,
		PostMessage: 500 * time.Millisecond,
	}
}

// Config holds everything one battle needs.
type Config struct {
	Player    *combat.Combatant
	Enemy     *combat.Combatant
	Scheduler *anim.Scheduler
	Scene     Scene // optional
	Logger    *zap.Logger
	Tracer    trace.Tracer // nil uses telemetry.Tracer("battle")
	Timings   Timings      // zero value uses DefaultTimings
}

// Controller owns both combatants and the menu for the lifetime of a battle.
type Controller struct {
	id      string
	player  *combat.Combatant
	enemy   *combat.Combatant
	menu    *menu.Menu
	sched   *anim.Scheduler
	scene   Scene
	logger  *zap.Logger
	tracer  trace.Tracer
	timings Timings
	machine *fsm.Machine[*Controller]

	ctx  context.Context
	span trace.Span

	playerMove int
	enemyMove  int
	turns      int
	outcome    Outcome
}

// New creates a battle controller. Call Start to begin the battle.
func New(ctx context.Context, cfg Config) (*Controller, error) {
	if cfg.Player == nil {
		return nil, errors.New("battle: player combatant is required")
	}
	if cfg.Enemy == nil {
		return nil, errors.New("battle: enemy combatant is required")
	}
	if cfg.Scheduler == nil {
		return nil, errors.New("battle: scheduler is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("battle")
	}
	timings := cfg.Timings
	if timings == (Timings{}) {
		timings = DefaultTimings()
	}

	moves := cfg.Player.Moves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.Name)
	}

	id := uuid.NewString()
	c := &Controller{
		id:      id,
		player:  cfg.Player,
		enemy:   cfg.Enemy,
		menu:    menu.New(cfg.Player.Name(), names),
		sched:   cfg.Scheduler,
		scene:   cfg.Scene,
		logger:  logger.With(zap.String("battle", id)),
		tracer:  tracer,
		timings: timings,
		ctx:     ctx,
	}
	c.machine = fsm.New("battle", c, c.logger)
	c.registerStates()
	c.machine.OnTransition(c.recordTransition)

	return c, nil
}

func (c *Controller) registerStates() {
	c.machine.AddState(StateIntro, (*Controller).enterIntro)
	c.machine.AddState(StatePreBattleInfo, (*Controller).enterPreBattleInfo)
	c.machine.AddState(StateBringOutMonster, (*Controller).enterBringOutMonster)
	c.machine.AddState(StatePlayerInput, (*Controller).enterPlayerInput)
	c.machine.AddState(StateEnemyInput, (*Controller).enterEnemyInput)
	c.machine.AddState(StateBattle, (*Controller).enterBattle)
	c.machine.AddState(StatePostAttackCheck, (*Controller).enterPostAttackCheck)
	c.machine.AddState(StateFinished, (*Controller).enterFinished)
	c.machine.AddState(StateFleeAttempt, (*Controller).enterFleeAttempt)
}

// Start opens the battle span and enters INTRO.
func (c *Controller) Start() {
	c.ctx, c.span = c.tracer.Start(c.ctx, "battle")
	c.span.SetAttributes(attribute.String("battle.id", c.id))

	_, start := c.tracer.Start(c.ctx, "battle.start")
	start.SetAttributes(
		attribute.String("battle.id", c.id),
		attribute.String("player", c.player.Name()),
		attribute.String("enemy", c.enemy.Name()),
		attribute.Int("player.hp", c.player.CurrentHealth()),
		attribute.Int("enemy.hp", c.enemy.CurrentHealth()),
	)
	start.End()

	c.logger.Info("battle started",
		zap.String("player", c.player.Name()),
		zap.String("enemy", c.enemy.Name()),
	)
	c.machine.SetState(StateIntro)
}

// Update applies at most one queued state transition. Call once per frame,
// before HandleInput.
func (c *Controller) Update() {
	c.machine.Update()
}

// ID returns the battle instance id.
func (c *Controller) ID() string { return c.id }

// State returns the current battle state name.
func (c *Controller) State() string { return c.machine.Current() }

// Menu returns the battle menu for rendering.
func (c *Controller) Menu() *menu.Menu { return c.menu }

// Player returns the player's combatant.
func (c *Controller) Player() *combat.Combatant { return c.player }

// Enemy returns the wild combatant.
func (c *Controller) Enemy() *combat.Combatant { return c.enemy }

// Turns returns the number of resolved turns.
func (c *Controller) Turns() int { return c.turns }

// Outcome returns how the battle ended, or OutcomeNone while it runs.
func (c *Controller) Outcome() Outcome { return c.outcome }

// Flee starts the successful-escape sequence.
func (c *Controller) Flee() {
	c.machine.SetState(StateFleeAttempt)
}

func (c *Controller) recordTransition(from, to string) {
	if c.span == nil {
		return
	}
	c.span.AddEvent("battle.state", trace.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

func (c *Controller) enterIntro() {
	c.sched.After(c.timings.Settle, func() {
		c.machine.SetState(StatePreBattleInfo)
	})
}

// enterPreBattleInfo announces the wild monster once it has finished sliding in.
func (c *Controller) enterPreBattleInfo() {
	c.enemy.PlayAppear(func() {
		c.enemy.PlayHealthBarAppear(nil)
		c.menu.EnqueueMessages([]string{fmt.Sprintf("wild %s appeared!", c.enemy.Name())}, func() {
			c.machine.SetState(StateBringOutMonster)
		})
	})
}

func (c *Controller) enterBringOutMonster() {
	c.player.PlayAppear(func() {
		c.player.PlayHealthBarAppear(nil)
		c.menu.ShowMessageNoInputRequired(fmt.Sprintf("go %s!", c.player.Name()), func() {
			c.sched.After(c.timings.BringOut, func() {
				c.machine.SetState(StatePlayerInput)
			})
		})
	})
}

func (c *Controller) enterPlayerInput() {
	c.menu.ShowMainMenu()
}

func (c *Controller) enterEnemyInput() {
	c.enemyMove = 0
	c.machine.SetState(StateBattle)
}

func (c *Controller) enterFleeAttempt() {
	c.menu.EnqueueMessages([]string{"You got away safely!"}, func() {
		c.outcome = OutcomeFled
		c.machine.SetState(StateFinished)
	})
}

func (c *Controller) enterFinished() {
	_, end := c.tracer.Start(c.ctx, "battle.end")
	end.SetAttributes(
		attribute.String("outcome", c.outcome.String()),
		attribute.Int("turns_taken", c.turns),
	)
	end.End()
	if c.span != nil {
		c.span.End()
	}

	c.logger.Info("battle finished",
		zap.Stringer("outcome", c.outcome),
		zap.Int("turns", c.turns),
	)
	if c.scene != nil {
		c.scene.RequestSceneRestart()
	}
}
