//go:build ebiten

package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
)

var (
	colorSky        = color.RGBA{135, 206, 235, 255}
	colorCloud      = color.RGBA{255, 255, 255, 255}
	colorGround     = color.RGBA{76, 153, 0, 255}
	colorTitle      = color.RGBA{0, 100, 0, 255}
	colorText       = color.RGBA{0, 0, 0, 255}
	colorButton     = color.RGBA{70, 130, 180, 255}
	colorHover      = color.RGBA{100, 149, 237, 255}
	colorSelected   = color.RGBA{25, 25, 112, 255}
	colorIndicator  = color.RGBA{255, 215, 0, 255}
	colorPanel      = color.NRGBA{255, 255, 255, 200}
	colorApple      = color.RGBA{255, 0, 0, 255}
	colorStem       = color.RGBA{0, 100, 0, 255}
	colorRock       = color.RGBA{100, 100, 100, 255}
	colorRockSpots  = color.RGBA{80, 80, 80, 255}
	colorBasket     = color.RGBA{139, 69, 19, 255}
	colorBasketTrim = color.RGBA{101, 67, 33, 255}
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// Game adapts a machine to ebiten's Update/Draw cycle.
type Game struct {
	m       *loop.Machine
	decoder *input.Decoder
	snap    loop.Snapshot
	cursorX int
	logger  *log.Logger
}

// Run opens the window and plays until the machine quits or the window is
// closed.
func Run(m *loop.Machine, logger *log.Logger) error {
	ebiten.SetWindowTitle("Catch the Falling Objects")
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetTPS(config.TargetFPS)
	ebiten.SetWindowClosingHandled(true)

	g := &Game{
		m:       m,
		decoder: input.NewDecoder(config.ScreenWidth),
		snap:    m.Snapshot(time.Now()),
		cursorX: -1,
		logger:  logger,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update runs one frame of the machine.
func (g *Game) Update() error {
	now := time.Now()
	g.m.Update(now, g.poll())
	g.snap = g.m.Snapshot(now)
	if !g.m.Running() {
		g.logger.Debug("window closed")
		return ebiten.Termination
	}
	return nil
}

// poll gathers this tick's input. The cursor only moves the pointer when it
// moved, so keyboard nudges survive a still mouse.
func (g *Game) poll() input.Frame {
	mx, my := ebiten.CursorPosition()
	if mx != g.cursorX {
		g.cursorX = mx
		g.decoder.SetPointer(mx)
	}

	events := keyEvents(g.decoder, inpututil.IsKeyJustPressed)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ev, ok := clickEvent(g.snap, mx, my); ok {
			events = append(events, ev)
		}
	}
	if ebiten.IsWindowBeingClosed() {
		events = append(events, input.Quit())
	}
	return input.Frame{PointerX: g.decoder.PointerX(), Events: events}
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Draw renders the last snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.snap
	screen.Fill(colorSky)

	switch s.State {
	case loop.StateMenu:
		drawScenery(screen)
		drawMenu(screen, s)
	case loop.StatePlaying:
		drawGround(screen)
		drawPlayfield(screen, s)
		drawHUD(screen, s)
	case loop.StateGameOver:
		drawScenery(screen)
		drawGameOver(screen, s)
	}
	drawButtons(screen, s)
}

func drawGround(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, config.ScreenHeight-20, config.ScreenWidth, 20, colorGround, false)
}

func drawScenery(screen *ebiten.Image) {
	for i := 0; i < 5; i++ {
		drawCloud(screen, float32(100+i*150), float32(100+(i%3)*50))
	}
	drawGround(screen)
}

func drawCloud(screen *ebiten.Image, x, y float32) {
	vector.DrawFilledCircle(screen, x, y, 30, colorCloud, true)
	vector.DrawFilledCircle(screen, x+20, y-10, 25, colorCloud, true)
	vector.DrawFilledCircle(screen, x+40, y, 30, colorCloud, true)
	vector.DrawFilledCircle(screen, x+20, y+10, 25, colorCloud, true)
}

func drawPlayfield(screen *ebiten.Image, s loop.Snapshot) {
	for _, e := range s.Entities {
		x, y := float32(e.X), float32(e.Y)
		switch e.Category {
		case object.Beneficial:
			vector.DrawFilledCircle(screen, x, y, config.ObjectRadius, colorApple, true)
			vector.StrokeLine(screen, x, y-config.ObjectRadius, x+5, y-config.ObjectRadius-10, 3, colorStem, true)
		case object.Harmful:
			vector.DrawFilledCircle(screen, x, y, config.ObjectRadius, colorRock, true)
			for i := 0; i < 3; i++ {
				vector.DrawFilledCircle(screen, x-5+float32(i*10), y-5, 5, colorRockSpots, true)
			}
		}
	}
	drawBasket(screen, s.Basket)
}

func drawBasket(screen *ebiten.Image, b object.Basket) {
	left := float32(b.Left())
	top := float32(b.Y - b.Height/2)
	w, h := float32(b.Width), float32(b.Height)

	vector.DrawFilledRect(screen, left, top, w, h, colorBasket, false)
	vector.DrawFilledRect(screen, left, top, w, 10, colorBasketTrim, false)

	handleW := w / 2
	vector.StrokeRect(screen, float32(b.X)-handleW/2, top-20, handleW, 20, 3, colorBasketTrim, false)
}

func drawHUD(screen *ebiten.Image, s loop.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, 50, colorPanel, false)
	vector.StrokeLine(screen, 0, 50, config.ScreenWidth, 50, 2, colorText, false)

	ebitenutil.DebugPrintAt(screen, s.ScoreText(), 20, 17)
	centerText(screen, s.TimeText(), 17)
	misses := s.MissesText()
	ebitenutil.DebugPrintAt(screen, misses, config.ScreenWidth-20-len(misses)*glyphW, 17)
}

func drawMenu(screen *ebiten.Image, s loop.Snapshot) {
	drawTitle(screen, loop.Title)
	centerText(screen, loop.DifficultyCue, 250-glyphH/2)
	for i, line := range loop.Instructions {
		centerText(screen, line, 535+i*glyphH)
	}
}

func drawGameOver(screen *ebiten.Image, s loop.Snapshot) {
	drawTitle(screen, loop.GameOverTitle)

	vector.DrawFilledRect(screen, config.ScreenWidth/2-200, 150, 400, 200, colorPanel, false)
	vector.StrokeRect(screen, config.ScreenWidth/2-200, 150, 400, 200, 2, colorText, false)
	for i, line := range s.StatsLines() {
		centerText(screen, line, 200+i*50-glyphH/2)
	}
}

// titles caches rendered title text by string.
var titles = map[string]*ebiten.Image{}

// drawTitle draws the title with a drop shadow. The debug font has a single
// color, so the title is printed onto a small image and tinted.
func drawTitle(screen *ebiten.Image, title string) {
	w := len(title) * glyphW
	img, ok := titles[title]
	if !ok {
		img = ebiten.NewImage(w, glyphH)
		ebitenutil.DebugPrint(img, title)
		titles[title] = img
	}

	const scale = 2
	x := float64(config.ScreenWidth/2 - w*scale/2)
	y := float64(70 - glyphH*scale/2)
	for _, layer := range []struct {
		dx, dy float64
		clr    color.Color
	}{
		{4, 4, colorText},
		{0, 0, colorTitle},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+layer.dx, y+layer.dy)
		op.ColorScale.ScaleWithColor(layer.clr)
		screen.DrawImage(img, op)
	}
}

func drawButtons(screen *ebiten.Image, s loop.Snapshot) {
	mx, my := ebiten.CursorPosition()
	for _, b := range buttonsFor(s) {
		clr := colorButton
		switch {
		case b.Selected:
			clr = colorSelected
			vector.DrawFilledRect(screen, float32(b.X-20), float32(b.Y+20), 10, 20, colorIndicator, false)
		case b.contains(mx, my):
			clr = colorHover
		}
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), clr, false)
		ebitenutil.DebugPrintAt(screen, b.Label, b.X+b.W/2-len(b.Label)*glyphW/2, b.Y+b.H/2-glyphH/2)
	}
}

func centerText(screen *ebiten.Image, text string, y int) {
	ebitenutil.DebugPrintAt(screen, text, config.ScreenWidth/2-len(text)*glyphW/2, y)
}
