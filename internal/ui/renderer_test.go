package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/monsterbattle/internal/anim"
	"github.com/samdwyer/monsterbattle/internal/entity"
	"github.com/samdwyer/monsterbattle/internal/gamedata"
	"github.com/samdwyer/monsterbattle/internal/input"
	"github.com/samdwyer/monsterbattle/internal/menu"
)

type cellContent struct {
	r     rune
	style tcell.Style
}

// gridCanvas records drawn cells, clipped to the battle screen.
type gridCanvas struct {
	cells map[[2]int]cellContent
	shown int
}

func newGridCanvas() *gridCanvas {
	return &gridCanvas{cells: make(map[[2]int]cellContent)}
}

func (g *gridCanvas) Clear() { g.cells = make(map[[2]int]cellContent) }
func (g *gridCanvas) Show()  { g.shown++ }

func (g *gridCanvas) SetContent(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return
	}
	g.cells[[2]int{x, y}] = cellContent{r: r, style: style}
}

func (g *gridCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < ScreenWidth; x++ {
		if c, ok := g.cells[[2]int{x, y}]; ok {
			b.WriteRune(c.r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (g *gridCanvas) at(x, y int) rune {
	return g.cells[[2]int{x, y}].r
}

func newMonsters(t *testing.T) (*entity.Monster, *entity.Monster, *anim.Scheduler) {
	t.Helper()
	moves := gamedata.MustLoadMoveRegistry()
	monsters := gamedata.MustLoadMonsterRegistry()
	sched := anim.NewScheduler()

	p, err := monsters.Lookup("iguanignite")
	require.NoError(t, err)
	e, err := monsters.Lookup("carnodusk")
	require.NoError(t, err)

	player := entity.NewMonsterFromDef(p, entity.SidePlayer, moves, sched)
	enemy := entity.NewMonsterFromDef(e, entity.SideEnemy, moves, sched)
	return player, enemy, sched
}

func showAll(sched *anim.Scheduler, monsters ...*entity.Monster) {
	for _, m := range monsters {
		m.PlayAppear(nil)
		m.PlayHealthBarAppear(nil)
	}
	sched.Advance(2 * time.Second)
}

func TestRenderHiddenMonsters(t *testing.T) {
	player, enemy, _ := newMonsters(t)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Player: player, Enemy: enemy})

	assert.Equal(t, 1, canvas.shown)
	assert.NotContains(t, canvas.row(2), "C")
	assert.NotContains(t, canvas.row(1), "Carnodusk")
	assert.Equal(t, '─', canvas.at(0, infoTop))
}

func TestRenderMonstersAndPanels(t *testing.T) {
	player, enemy, sched := newMonsters(t)
	showAll(sched, player, enemy)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Player: player, Enemy: enemy})

	assert.Contains(t, canvas.row(1), "Carnodusk  L5")
	assert.Contains(t, canvas.row(2), "HP "+strings.Repeat("█", barWidth))
	assert.Contains(t, canvas.row(2), "/C^C\\")
	assert.Contains(t, canvas.row(3), "|CCC|")
	assert.Contains(t, canvas.row(11), "<III>")
	assert.Contains(t, canvas.row(11), "Iguanignite  L5")
	assert.Contains(t, canvas.row(13), "25/25")
	assert.NotContains(t, canvas.row(3), "25/25", "enemy panel has no health text")
}

func TestRenderSpriteWithoutArt(t *testing.T) {
	def := &gamedata.MonsterDef{
		ID: "blob", Name: "Blob", Asset: "BLOB", Glyph: "b", Color: "#FFFFFF",
		HP: 10, Attack: 1, Level: 1,
	}
	sched := anim.NewScheduler()
	m := entity.NewMonsterFromDef(def, entity.SideEnemy, gamedata.MustLoadMoveRegistry(), sched)
	m.PlayAppear(nil)
	sched.Advance(2 * time.Second)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Enemy: m})

	for y := 2; y < 2+spriteHeight; y++ {
		assert.Contains(t, canvas.row(y), "bbbbb")
	}
}

func TestSpriteArtFitsCell(t *testing.T) {
	for asset, art := range spriteArt {
		for _, line := range art {
			assert.Len(t, []rune(line), spriteWidth, "asset %s", asset)
		}
	}
	assert.Equal(t, blockSprite, sprite("UNKNOWN"))
	assert.Equal(t, spriteArt["CARNODUSK"], sprite("CARNODUSK"))
}

func TestRenderHealthBarAfterDamage(t *testing.T) {
	player, enemy, sched := newMonsters(t)
	showAll(sched, player, enemy)
	player.TakeDamage(15, nil)
	sched.Advance(2 * time.Second)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Player: player, Enemy: enemy})

	row := canvas.row(12)
	assert.Equal(t, 8, strings.Count(row, "█"))
	assert.Equal(t, 12, strings.Count(row, "░"))
	assert.Contains(t, canvas.row(13), "10/25")
}

func TestRenderBlinkHidesSprite(t *testing.T) {
	player, enemy, sched := newMonsters(t)
	showAll(sched, player, enemy)
	enemy.Actor.SpriteHidden = true
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Player: player, Enemy: enemy})

	assert.NotContains(t, canvas.row(2), "/C^C\\")
}

func TestRenderMainMenu(t *testing.T) {
	player, enemy, sched := newMonsters(t)
	showAll(sched, player, enemy)
	m := menu.New("Iguanignite", []string{"Ice Shard"})
	m.ShowMainMenu()
	m.HandleInput(input.Right)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Player: player, Enemy: enemy, Menu: m.View()})

	assert.Contains(t, canvas.row(line1Y), "what should")
	assert.Contains(t, canvas.row(line2Y), "Iguanignite do next")
	assert.Contains(t, canvas.row(line1Y), "FIGHT")
	assert.Contains(t, canvas.row(line1Y), "SWITCH")
	assert.Contains(t, canvas.row(line2Y), "ITEM")
	assert.Contains(t, canvas.row(line2Y), "FLEE")
	assert.Equal(t, cursorRune, canvas.at(menuX+menuColW-2, line1Y))
	assert.NotEqual(t, cursorRune, canvas.at(menuX-2, line1Y))
}

func TestRenderMoveMenu(t *testing.T) {
	m := menu.New("Frostsaber", []string{"Ice Shard", "Tackle"})
	m.ShowMainMenu()
	m.HandleInput(input.Confirm)
	m.HandleInput(input.Down)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Menu: m.View()})

	assert.Contains(t, canvas.row(line1Y), "Ice Shard")
	assert.Contains(t, canvas.row(line1Y), "Tackle")
	assert.Contains(t, canvas.row(line2Y), "-")
	assert.Equal(t, cursorRune, canvas.at(moveX-2, line2Y))
	assert.NotContains(t, canvas.row(line1Y), "what should")
}

func TestRenderAckCursorBlinks(t *testing.T) {
	m := menu.New("Iguanignite", nil)
	m.EnqueueMessages([]string{"wild Carnodusk appeared!"}, nil)
	v := m.View()
	x := textX + len("wild Carnodusk appeared!") + 1

	on := newGridCanvas()
	NewRenderer(on).Render(Scene{Menu: v, Blink: true})
	assert.Equal(t, ackRune, on.at(x, line1Y))

	off := newGridCanvas()
	NewRenderer(off).Render(Scene{Menu: v, Blink: false})
	assert.NotEqual(t, ackRune, off.at(x, line1Y))
}

func TestRenderFade(t *testing.T) {
	m := menu.New("Iguanignite", nil)
	m.ShowMessageNoInputRequired("go Iguanignite!", nil)
	canvas := newGridCanvas()

	NewRenderer(canvas).Render(Scene{Menu: m.View(), Fade: 1})

	fg, _, _ := canvas.cells[[2]int{textX, line1Y}].style.Decompose()
	assert.Equal(t, tcell.ColorBlack, fg)
}

func TestHealthColor(t *testing.T) {
	r, g, _ := HealthColor(1).RGB()
	assert.Greater(t, g, r, "full bar is green")

	r, g, _ = HealthColor(0.05).RGB()
	assert.Greater(t, r, g, "nearly empty bar is red")

	r, g, b := HealthColor(0.5).RGB()
	assert.Greater(t, r, b)
	assert.Greater(t, g, b, "half bar is yellow")
}

func TestFade(t *testing.T) {
	c := tcell.NewRGBColor(200, 100, 50)
	assert.Equal(t, c, Fade(c, 0))
	assert.Equal(t, tcell.ColorBlack, Fade(c, 1))

	r, g, b := Fade(c, 0.5).RGB()
	assert.InDelta(t, 100, r, 1)
	assert.InDelta(t, 50, g, 1)
	assert.InDelta(t, 25, b, 1)

	assert.Equal(t, tcell.ColorDefault, Fade(tcell.ColorDefault, 0.2))
	assert.Equal(t, tcell.ColorBlack, Fade(tcell.ColorDefault, 0.6))
}
