package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/monsterbattle/internal/entity"
	"github.com/samdwyer/monsterbattle/internal/menu"
)

// Layout of the battle screen, in cells.
const (
	ScreenWidth  = 80
	ScreenHeight = 24

	spriteWidth  = 5
	spriteHeight = 3
	barWidth     = 20

	infoTop  = 16
	textX    = 2
	line1Y   = 18
	line2Y   = 20
	menuX    = 52
	menuColW = 12
	moveX    = 4
	moveColW = 22

	cursorRune = '▶'
	ackRune    = '▼'
)

// Canvas is the surface the renderer draws on. *Screen implements it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Scene is everything drawn in one frame.
type Scene struct {
	Player *entity.Monster
	Enemy  *entity.Monster
	Menu   menu.View
	Blink  bool    // on phase of the acknowledgment cursor
	Fade   float64 // 0 is fully visible, 1 is black
}

// Renderer handles drawing the battle to the screen.
type Renderer struct {
	canvas Canvas
	fade   float64
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws both monsters, their status panels and the info panel.
func (r *Renderer) Render(s Scene) {
	r.fade = s.Fade
	r.canvas.Clear()

	for _, m := range []*entity.Monster{s.Enemy, s.Player} {
		if m == nil {
			continue
		}
		r.drawSprite(m)
		r.drawPanel(m)
	}
	r.drawInfoPanel(s.Menu, s.Blink)

	r.canvas.Show()
}

func (r *Renderer) style(fg tcell.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(Fade(fg, r.fade)).
		Background(tcell.ColorBlack)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}

// cell rounds an actor position to a screen cell.
func cell(p entity.Point) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (r *Renderer) drawSprite(m *entity.Monster) {
	a := m.Actor
	if !a.SpriteVisible || a.SpriteHidden {
		return
	}
	x0, y0 := cell(a.SpritePos)
	style := r.style(m.Color()).Bold(true)
	for dy, line := range sprite(m.Asset()) {
		y := y0 + dy
		if y >= infoTop {
			break
		}
		for dx, ch := range []rune(line) {
			switch ch {
			case ' ':
				continue
			case '#':
				ch = m.Glyph()
			}
			r.canvas.SetContent(x0+dx, y, ch, style)
		}
	}
}

func (r *Renderer) drawPanel(m *entity.Monster) {
	a := m.Actor
	if !a.PanelVisible {
		return
	}
	x, y := cell(a.PanelPos)
	r.drawText(x, y, m.Name(), r.style(tcell.ColorWhite).Bold(true))
	r.drawText(x+len(m.Name())+2, y, fmt.Sprintf("L%d", m.Level()), r.style(tcell.ColorSilver))

	r.drawText(x, y+1, "HP", r.style(tcell.ColorYellow))
	fraction := a.Bar.Fraction()
	filled := int(math.Round(fraction * barWidth))
	full := r.style(HealthColor(fraction))
	empty := r.style(tcell.ColorDarkGray)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			r.canvas.SetContent(x+3+i, y+1, '█', full)
		} else {
			r.canvas.SetContent(x+3+i, y+1, '░', empty)
		}
	}

	if a.Profile().ShowHealthText {
		text := fmt.Sprintf("%d/%d", m.CurrentHealth(), m.MaxHealth())
		r.drawText(x+3+barWidth-len(text), y+2, text, r.style(tcell.ColorWhite))
	}
}

func (r *Renderer) drawInfoPanel(v menu.View, blink bool) {
	border := r.style(tcell.ColorGray)
	for x := 0; x < ScreenWidth; x++ {
		r.canvas.SetContent(x, infoTop, '─', border)
	}

	text := r.style(tcell.ColorWhite)
	if v.TextVisible {
		r.drawText(textX, line1Y, v.Line1, text)
		r.drawText(textX, line2Y, v.Line2, text)
		if v.AckCursor && blink {
			r.canvas.SetContent(textX+len([]rune(v.Line1))+1, line1Y, ackRune, r.style(tcell.ColorYellow))
		}
	}

	if v.MainVisible {
		for x := menuX - 2; x < ScreenWidth; x++ {
			r.canvas.SetContent(x, infoTop, '═', border)
		}
		for _, opt := range []menu.MainOption{menu.OptionFight, menu.OptionSwitch, menu.OptionItem, menu.OptionFlee} {
			r.drawOption(menuX, menuColW, int(opt), opt.String(), opt == v.MainOption)
		}
	}

	if v.MoveVisible {
		for i, name := range v.MoveNames {
			r.drawOption(moveX, moveColW, i, name, menu.MoveOption(i) == v.MoveOption)
		}
	}
}

// drawOption draws one entry of a 2x2 option grid and its cursor.
func (r *Renderer) drawOption(left, colWidth, pos int, label string, selected bool) {
	col, row := menu.Cell(pos)
	x := left + col*colWidth
	y := line1Y + row*(line2Y-line1Y)
	r.drawText(x, y, label, r.style(tcell.ColorWhite))
	if selected {
		r.canvas.SetContent(x-2, y, cursorRune, r.style(tcell.ColorYellow))
	}
}
