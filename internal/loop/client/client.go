// Package client is the ANSI terminal frontend: it decodes keys and mouse
// reports from a byte stream and draws snapshots with half-block characters.
// It serves both the local raw-mode terminal and SSH sessions.
package client

import (
	"bufio"
	"io"
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/draw"
	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/server"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	hub          *server.Hub // nil for local play
	handle       *server.ClientHandle
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	remote       bool
	now          func() time.Time
}

// Ensure Client satisfies loop.Frontend.
var _ loop.Frontend = (*Client)(nil)

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	// Hub registers the client with an SSH host. Remote clients are also
	// disconnected after a period without input.
	Hub *server.Hub
}

// NewClient creates a client reading input from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ScreenWidth, config.ScreenHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	stream := input.StartStream(r, config.ScreenWidth)
	stream.SetColumnMapper(canvas.ColumnToLogical)

	c := &Client{
		hub:          opts.Hub,
		state:        NewClientState(time.Now()),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  stream,
		termSizeFunc: termSizeFunc,
		remote:       opts.Hub != nil,
		now:          time.Now,
	}
	c.state.lastPointer = stream.PointerX()
	if c.hub != nil {
		c.handle = c.hub.RegisterClient(opts.Username)
	}
	return c
}

// Open prepares the terminal: hidden cursor, clear screen, mouse reporting.
func (c *Client) Open() {
	draw.HideCursor(c.writer)
	draw.ClearScreen(c.writer)
	draw.EnableMouse(c.writer)
}

// Close restores the terminal and leaves the hub.
func (c *Client) Close() {
	draw.DisableMouse(c.writer)
	draw.ClearScreen(c.writer)
	draw.ShowCursor(c.writer)

	if c.hub != nil {
		c.hub.UnregisterClient(c.handle.ID)
		c.hub = nil
	}
}

// Poll drains pending input and returns this frame's pointer and events.
func (c *Client) Poll() input.Frame {
	now := c.now()
	frame := input.ReadInput(c.inputStream)

	c.trackActivity(now, &frame)
	c.processServerEvents(now)
	if c.state.shuttingDown && !now.Before(c.state.shutdownAt) {
		frame.Events = append(frame.Events, input.Quit())
	}

	c.updateScreen()
	return frame
}

// trackActivity resets the idle timer on input and, for remote sessions,
// warns and then disconnects idle players.
func (c *Client) trackActivity(now time.Time, frame *input.Frame) {
	if len(frame.Events) > 0 || frame.PointerX != c.state.lastPointer {
		c.state.lastPointer = frame.PointerX
		c.state.lastInput = now
		c.state.isInactive = false
		return
	}
	if !c.remote {
		return
	}

	idle := now.Sub(c.state.lastInput)
	switch {
	case idle > config.InactivityDisconnect:
		frame.Events = append(frame.Events, input.Quit())
	case idle > config.InactivityWarn:
		c.state.isInactive = true
	}
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents(now time.Time) {
	if c.handle == nil {
		return
	}
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				return
			}
			if event.Type == server.EventServerShutdown && !c.state.shuttingDown {
				c.state.shuttingDown = true
				c.state.shutdownAt = now.Add(time.Duration(config.ShutdownDisplaySeconds * float64(time.Second)))
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.Clear()
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize fits the 4:3 playfield into the terminal, capped at the max
// render resolution, and computes the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 8), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 3), config.MaxTermHeight)

	// 8 columns per 3 rows keeps sub-pixels square.
	if renderWidth*3 > renderHeight*8 {
		renderWidth = renderHeight * 8 / 3
	} else {
		renderHeight = renderWidth * 3 / 8
	}

	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
