package loop

import (
	"bufio"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/aimtrainer/internal/draw"
	"github.com/tomz197/aimtrainer/internal/input"
	"github.com/tomz197/aimtrainer/internal/loop/config"
)

// Options configures a Client. Zero values pick the local-terminal defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Rand         *rand.Rand       // Spawn positions
	Now          func() time.Time // Session clock
}

// Client runs one game session against a terminal connection.
type Client struct {
	session      *Session
	timer        *SpawnTimer
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates a frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	now          func() time.Time
	summaryShown bool
}

// Run plays one session on r/w and returns the final stats.
// It returns once the player quits or dismisses the summary.
func Run(r io.Reader, w io.Writer, opts Options) (Stats, error) {
	return NewClient(r, w, opts).Run()
}

// NewClient creates a client with a fresh session.
func NewClient(r io.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// Canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.Width, config.Height)
	canvas.SetOffset(offsetCol, offsetRow)

	start := now()
	return &Client{
		session:      NewSession(start, rng),
		timer:        NewSpawnTimer(start, config.SpawnInterval),
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(bufio.NewReader(r)),
		termSizeFunc: termSizeFunc,
		now:          now,
	}
}

// Run starts the frame loop. Blocks until the player quits or dismisses the summary.
func (c *Client) Run() (Stats, error) {
	draw.HideCursor(c.writer)
	draw.EnableMouse(c.writer)
	draw.ClearScreen(c.writer)
	defer func() {
		c.inputStream.Stop()
		draw.DisableMouse(c.writer)
		io.WriteString(c.writer, draw.ResetAttributes)
		draw.ClearScreen(c.writer)
		draw.ShowCursor(c.writer)
	}()

	for {
		frameStart := time.Now()

		in := input.ReadInput(c.inputStream)
		resized := c.updateScreen()

		if c.session.State == GameStateEnded {
			// Only input arriving after the summary went up dismisses it
			if in.Quit || in.KeyPressed {
				return c.session.Stats, nil
			}
		} else {
			err := c.session.Tick(c.events(in))
			if errors.Is(err, ErrQuit) {
				return c.session.Stats, nil
			}
			if err != nil {
				return c.session.Stats, err
			}
		}

		if err := c.drawFrame(resized); err != nil {
			return c.session.Stats, err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}

// events converts the frame's raw input into session events.
func (c *Client) events(in input.Input) Events {
	now := c.now()
	ev := Events{
		Now:    now,
		Quit:   in.Quit,
		Spawns: c.timer.Fired(now),
		Clicks: in.Clicks,
	}
	if in.HasPointer {
		ev.Pointer.X, ev.Pointer.Y = c.canvas.TerminalToLogical(in.Pointer.Col, in.Pointer.Row)
	}
	return ev
}

// drawFrame draws the playing screen every frame and the summary only when it
// first appears or the terminal changed size.
func (c *Client) drawFrame(resized bool) error {
	if c.session.State == GameStateRunning {
		return c.drawPlaying()
	}
	if c.summaryShown && !resized {
		return nil
	}
	c.summaryShown = true
	return c.drawSummary()
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area. Reports whether anything changed.
func (c *Client) updateScreen() bool {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return false
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth == c.canvas.TerminalWidth() && renderHeight == c.canvas.TerminalHeight() &&
		offsetCol == c.canvas.OffsetCol() && offsetRow == c.canvas.OffsetRow() {
		return false
	}

	c.chunkWriter.WriteString(draw.ClearSequence)
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.canvas.ForceRedraw()
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
	return true
}

// clampTermSize fits the render area into the terminal at the logical 4:3 aspect
// (cells are twice as tall as wide) and computes the centering offset.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)

	if w := renderHeight * 2 * config.Width / config.Height; renderWidth > w {
		renderWidth = w
	} else if h := renderWidth * config.Height / (2 * config.Width); renderHeight > h {
		renderHeight = h
	}

	renderWidth = max(renderWidth, 1)
	renderHeight = max(renderHeight, 1)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}
