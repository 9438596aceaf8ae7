package ecosort

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/ecosort/internal/core"
)

// Minimum terminal size for a readable field.
const (
	minScreenW = 40
	minScreenH = 16
)

// ground glyph and color per phase background.
var backgrounds = map[string]struct {
	glyph rune
	color core.Color
}{
	"community":  {'"', core.ColorGreen},
	"industrial": {'=', core.ColorDarkGray},
	"megacenter": {'▒', core.ColorCyan},
	"boss":       {'^', core.ColorRed},
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.SetPen(core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small!")
		dst.SetPen(core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, have %dx%d",
			minScreenW, minScreenH, dst.Width(), dst.Height()))
		return
	}

	s := &g.state
	switch s.Screen {
	case ScreenStart:
		g.renderStart(dst)
	case ScreenIntro:
		page := min(s.StoryPage, len(introPages)-1)
		g.renderStory(dst, "EcoSort", introPages[page],
			fmt.Sprintf("Click to continue (%d/%d)", page+1, len(introPages)))
	case ScreenBossIntro:
		g.renderStory(dst, g.table.Spec(PhaseBoss).Title, bossIntroLines, "Click to face the Baron")
	case ScreenGameplay, ScreenBossFight:
		g.renderPlay(dst)
		if s.Paused {
			g.renderPanel(dst, []string{"PAUSED", "", "Press P to resume"}, core.ColorBrightYellow)
		}
	case ScreenLevelTransition:
		g.renderGround(dst)
		g.renderPanel(dst, s.Message, core.ColorBrightGreen)
		label := "CONTINUE"
		if s.Won {
			label = "MAIN MENU"
		}
		g.renderButton(dst, g.layout.next, label)
	case ScreenDefeat:
		g.renderPlay(dst)
		g.renderPanel(dst, g.defeatLines(), core.ColorBrightRed)
	}
}

// toCell maps a field position to a terminal cell.
func (g *Game) toCell(dst *core.Screen, p core.Vec) (int, int) {
	fs := g.FieldSize()
	x := int(p.X * float64(dst.Width()) / fs.X)
	y := int(p.Y * float64(dst.Height()) / fs.Y)
	return x, y
}

// toRect maps a field box to the terminal cells it covers.
func (g *Game) toRect(dst *core.Screen, b core.Box) core.Rect {
	x0, y0 := g.toCell(dst, core.Vec{X: b.X, Y: b.Y})
	x1, y1 := g.toCell(dst, core.Vec{X: b.Right(), Y: b.Bottom()})
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (g *Game) renderStart(dst *core.Screen) {
	h := dst.Height()

	dst.SetPen(core.ColorBrightGreen)
	dst.DrawTextCentered(h/5, "E C O S O R T")
	dst.SetPen(core.ColorGreen)
	dst.DrawTextCentered(h/5+2, "Sort the waste. Save the city.")

	g.renderButton(dst, g.layout.start, "START")

	mute := "♪"
	if g.muted {
		mute = "x"
	}
	r := g.toRect(dst, g.layout.mute)
	dst.SetPen(core.ColorGray)
	dst.DrawText(r.X, r.Y, "["+mute+"]")

	dst.SetPen(core.ColorGray)
	dst.DrawTextCentered(h-2, "Click START or press Enter  |  M mute  |  Q quit")
	dst.SetPen(core.ColorDefault)
}

// renderButton draws a labelled button; it lights up under the pointer.
func (g *Game) renderButton(dst *core.Screen, b core.Box, label string) {
	r := g.toRect(dst, b)
	if r.H < 3 {
		r.H = 3
	}
	color := core.ColorWhite
	if b.Contains(g.hover) {
		color = core.ColorBrightGreen
	}
	dst.SetPen(color)
	dst.DrawBox(r)
	dst.DrawText(r.X+(r.W-len([]rune(label)))/2, r.Y+r.H/2, label)
	dst.SetPen(core.ColorDefault)
}

func (g *Game) renderStory(dst *core.Screen, title string, lines []string, hint string) {
	h := dst.Height()
	top := (h - len(lines)) / 2

	dst.SetPen(core.ColorBrightGreen)
	dst.DrawTextCentered(top-2, title)
	dst.SetPen(core.ColorWhite)
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line)
	}
	dst.SetPen(core.ColorGray)
	dst.DrawTextCentered(h-2, hint)
	dst.SetPen(core.ColorDefault)
}

// renderPanel draws a framed block of centered lines in the middle of the screen.
func (g *Game) renderPanel(dst *core.Screen, lines []string, color core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2
	r := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2-2, width, height)

	dst.SetPen(core.ColorDefault)
	dst.DrawRect(r, ' ')
	dst.SetPen(color)
	dst.DrawBox(r)
	for i, l := range lines {
		dst.DrawText(r.X+(width-len([]rune(l)))/2, r.Y+1+i, l)
	}
	dst.SetPen(core.ColorDefault)
}

func (g *Game) renderPlay(dst *core.Screen) {
	g.renderGround(dst)
	g.renderBins(dst)
	g.renderWastes(dst)
	g.renderPickups(dst)
	g.renderHUD(dst)
}

func (g *Game) renderGround(dst *core.Screen) {
	bg, ok := backgrounds[g.table.Spec(g.state.Phase).Background]
	if !ok {
		bg = backgrounds["community"]
	}
	dst.SetPen(bg.color)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), bg.glyph)
	dst.SetPen(core.ColorDefault)
}

func (g *Game) renderBins(dst *core.Screen) {
	for _, b := range g.field.Bins() {
		r := g.toRect(dst, b.Bounds)
		dst.SetPen(b.Category.Color())
		dst.DrawBox(r)

		label := b.Category.String()
		if inner := r.W - 2; inner < len(label) {
			label = label[:max(inner, 1)]
		}
		dst.DrawText(r.X+(r.W-len(label))/2, r.Y+r.H/2, label)
	}
	dst.SetPen(core.ColorDefault)
}

func (g *Game) renderWastes(dst *core.Screen) {
	for _, w := range g.field.Wastes() {
		cx, cy := g.toCell(dst, w.Center())
		color := w.Category.Color()
		left, right := '[', ']'
		if w.ID == g.state.Selected {
			color = core.ColorBrightYellow
			left, right = '>', '<'
		}
		dst.SetColor(cx-1, cy, left, color)
		dst.SetColor(cx, cy, w.Category.Glyph(), color)
		dst.SetColor(cx+1, cy, right, color)
	}
}

func (g *Game) renderPickups(dst *core.Screen) {
	for _, p := range g.field.Pickups() {
		cx, cy := g.toCell(dst, p.Bounds().Center())
		color := p.Kind.Color()
		dst.SetColor(cx-1, cy, '(', color)
		dst.SetColor(cx, cy, p.Kind.Glyph(), color)
		dst.SetColor(cx+1, cy, ')', color)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := &g.state
	w := dst.Width()

	dst.SetPen(core.ColorBrightWhite)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d  Combo: %d", s.Score, s.Combo))

	title := g.table.Spec(s.Phase).Title
	dst.SetPen(core.ColorBrightGreen)
	dst.DrawTextCentered(0, title)

	if s.InBoss() {
		bar := resourceBar("You", s.PlayerLife, g.rules.MaxResource)
		dst.SetPen(core.ColorBrightGreen)
		dst.DrawText(w-len([]rune(bar))-1, 0, bar)
		boss := resourceBar("Baron", s.BossLife, g.cfg.Boss.BossLife)
		dst.SetPen(core.ColorBrightRed)
		dst.DrawText(w-len([]rune(boss))-1, 1, boss)
	} else {
		bar := resourceBar("Rep", s.Reputation, g.rules.MaxResource)
		dst.SetPen(reputationColor(s.Reputation, g.rules.MaxResource))
		dst.DrawText(w-len([]rune(bar))-1, 0, bar)
	}

	dst.SetPen(core.ColorBrightCyan)
	dst.DrawText(1, 1, s.Effects.Summary())

	if msg := g.events.active.Message(); msg != "" {
		dst.SetPen(core.ColorOrange)
		dst.DrawTextCentered(2, msg)
	}
	dst.SetPen(core.ColorDefault)
}

// resourceBar renders e.g. "Rep [#######   ] 70".
func resourceBar(label string, value, maxValue int) string {
	const width = 10
	filled := 0
	if maxValue > 0 {
		filled = core.Clamp(value*width/maxValue, 0, width)
	}
	return fmt.Sprintf("%s [%s%s] %d", label,
		strings.Repeat("#", filled), strings.Repeat(" ", width-filled), value)
}

func reputationColor(value, maxValue int) core.Color {
	switch {
	case value*3 <= maxValue:
		return core.ColorBrightRed
	case value*3 <= maxValue*2:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

func (g *Game) defeatLines() []string {
	s := &g.state
	reason := "Your reputation hit zero. The center is closed."
	if s.InBoss() {
		reason = "The Landfill Baron wins this time."
	}
	return []string{
		"GAME OVER",
		"",
		reason,
		scoreLine(s.Score),
		"",
		"Click or press Enter",
	}
}
