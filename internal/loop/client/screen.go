package client

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/aisha947/amazon-q-game-challenge/internal/draw"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
)

// Text styles
const (
	styleReset  = "\033[0m"
	styleTitle  = "\033[1;32m"
	styleBold   = "\033[1m"
	styleDim    = "\033[2m"
	styleSelect = "\033[1;93m"
	styleWarn   = "\033[1;91m"
)

// groundHeight is the strip of grass along the bottom edge.
const groundHeight = 20

// rockJitter gives rocks an irregular outline.
var rockJitter = []float64{1.0, 0.8, 0.95, 0.75, 1.0, 0.85, 0.9}

// Render draws the snapshot.
func (c *Client) Render(s loop.Snapshot) error {
	// On game state or overlay transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	if c.state.needsClear(s.State) {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
	}

	c.canvas.Clear()
	c.drawPlayfield(s)
	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}

	c.drawUI(s)
	return c.chunkWriter.Flush()
}

// drawPlayfield paints the ground, the falling objects and the basket.
func (c *Client) drawPlayfield(s loop.Snapshot) {
	w := float64(s.Screen.Width)
	h := float64(s.Screen.Height)
	c.canvas.FillRect(0, h-groundHeight, w, h, draw.ColorGreen)

	if s.State == loop.StateMenu {
		return
	}
	for _, e := range s.Entities {
		c.drawEntity(e)
	}
	c.drawBasket(s.Basket)
}

// drawEntity draws an apple or a rock.
func (c *Client) drawEntity(e object.Entity) {
	r := float64(config.ObjectRadius)
	switch e.Category {
	case object.Beneficial:
		c.canvas.FillCircle(e.X, e.Y, r, draw.ColorRed)
		c.canvas.FillRect(e.X-2, e.Y-r-8, e.X+2, e.Y-r, draw.ColorBrown)
	case object.Harmful:
		pts := c.canvas.RegularPolygon(e.X, e.Y, r, len(rockJitter), rockJitter)
		c.canvas.DrawPolygon(pts, true, draw.ColorGray)
	}
}

// drawBasket draws the basket as a trapezoid with a rim.
func (c *Client) drawBasket(b object.Basket) {
	top := b.Y - b.Height/2
	bottom := b.Y + b.Height/2
	inset := b.Width / 8

	pts := c.canvas.BorrowPoints(4)
	pts[0] = draw.Point{X: b.Left(), Y: top}
	pts[1] = draw.Point{X: b.Right(), Y: top}
	pts[2] = draw.Point{X: b.Right() - inset, Y: bottom}
	pts[3] = draw.Point{X: b.Left() + inset, Y: bottom}
	c.canvas.DrawPolygon(pts, true, draw.ColorBrown)
	c.canvas.DrawLine(pts[0], pts[1], draw.ColorYellow)
}

// drawUI draws the text overlay for the current state.
func (c *Client) drawUI(s loop.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.shuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}
	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch s.State {
	case loop.StateMenu:
		c.drawMenuScreen(s, centerX, termHeight)
	case loop.StatePlaying:
		c.drawPlayingHUD(s, termWidth)
	case loop.StateGameOver:
		c.drawGameOverScreen(s, centerX, termHeight)
	}
}

// writeCentered writes text centered on column centerX.
func (c *Client) writeCentered(centerX, row int, style, text string) {
	col := max(centerX-utf8.RuneCountInString(text)/2, 1)
	c.chunkWriter.WriteAt(col, row, style, text)
}

// rowAt maps a logical y to a terminal row so text lands where the original
// layout puts it at any terminal size.
func rowAt(y, termHeight int) int {
	return max(y*termHeight/config.ScreenHeight, 0) + 1
}

// drawMenuScreen draws the title screen with the difficulty selector.
func (c *Client) drawMenuScreen(s loop.Snapshot, centerX, termHeight int) {
	c.writeCentered(centerX, rowAt(70, termHeight), styleTitle, loop.Title)
	c.writeCentered(centerX, rowAt(250, termHeight), styleBold, loop.DifficultyCue)

	for i, name := range s.Difficulties {
		style := styleReset
		if name == s.Selected {
			style = styleSelect
		}
		c.writeCentered(centerX, rowAt(300+i*60, termHeight), style, s.DifficultyLabel(i, name))
	}

	for i, line := range loop.Instructions {
		c.writeCentered(centerX, rowAt(470+i*30, termHeight), styleDim, line)
	}
	c.writeCentered(centerX, rowAt(150, termHeight), styleBold, loop.MenuHint)

	if c.hub != nil {
		c.writeCentered(centerX, rowAt(200, termHeight), styleDim, fmt.Sprintf("%d playing on this server", c.hub.Players()))
	}
}

// drawPlayingHUD draws the in-game HUD (score, time, misses).
func (c *Client) drawPlayingHUD(s loop.Snapshot, termWidth int) {
	cw := c.chunkWriter

	// Trailing spaces erase longer previous values.
	cw.WriteAt(2, 1, styleBold, s.ScoreText()+"   ")
	c.writeCentered(termWidth/2, 1, styleBold, s.TimeText()+" ")

	misses := s.MissesText()
	cw.WriteAt(max(termWidth-len(misses)-3, 1), 1, styleBold, " "+misses)
}

// drawGameOverScreen draws the final score panel.
func (c *Client) drawGameOverScreen(s loop.Snapshot, centerX, termHeight int) {
	c.writeCentered(centerX, rowAt(70, termHeight), styleTitle, loop.GameOverTitle)
	for i, line := range s.StatsLines() {
		c.writeCentered(centerX, rowAt(200+i*50, termHeight), styleBold, line)
	}
	c.writeCentered(centerX, rowAt(420, termHeight), styleDim, loop.GameOverHint)
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	title := "INACTIVITY WARNING"
	c.writeCentered(centerX, centerY-2, styleWarn, title)

	left := config.InactivityDisconnect - c.now().Sub(c.state.lastInput)
	msg := fmt.Sprintf("You will be disconnected in %d seconds.", max(int(left/time.Second), 0))
	c.writeCentered(centerX, centerY, styleReset, msg)

	c.writeCentered(centerX, centerY+2, styleDim, "Move the basket to stay connected")
}

// drawShutdownScreen draws the server shutdown notice.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeCentered(centerX, centerY-1, styleWarn, "SERVER SHUTTING DOWN")

	left := c.state.shutdownAt.Sub(c.now())
	msg := fmt.Sprintf("Disconnecting in %d...", max(int(left/time.Second)+1, 1))
	c.writeCentered(centerX, centerY+1, styleReset, msg)
}
