// Package input turns the raw terminal byte stream into per-frame input state.
package input

import (
	"bufio"
	"sync"
)

// Position is a 1-based absolute terminal cell.
type Position struct {
	Col, Row int
}

// Input represents the current frame's input state.
type Input struct {
	Quit       bool     // Quit key or closed stream
	KeyPressed bool     // Any keyboard byte arrived this frame
	Clicks     int      // Mouse button presses this frame
	Pointer    Position // Last known pointer cell
	HasPointer bool     // Pointer has been reported at least once
}

// Stream delivers input bytes via a channel and remembers state across frames.
type Stream struct {
	ch      chan byte
	done    chan struct{}
	stop    sync.Once
	closed  bool
	pending []byte // Incomplete escape sequence carried to the next frame
	pointer Position
	seen    bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:   make(chan byte, 256),
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case <-s.done:
				return
			default:
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine once nobody drains the stream any more.
// A goroutine blocked inside a read exits when that read returns.
func (s *Stream) Stop() {
	s.stop.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream (non-blocking) and parses
// them into keys and mouse reports.
func ReadInput(s *Stream) Input {
	buf := append([]byte(nil), s.pending...)
	carried := len(buf)
	s.pending = s.pending[:0]

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// A partial sequence that got no continuation is a plain Escape key press.
	flush := len(buf) == carried || s.closed
	in := parse(s, buf, flush)
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse applies buf to the stream state and returns the frame's input.
// Unless flush is set, a trailing incomplete escape sequence is kept for the next frame.
func parse(s *Stream, buf []byte, flush bool) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, complete := escapeLength(buf[i:])
			if !complete && !flush {
				s.pending = append(s.pending, buf[i:]...)
				break
			}
			if n > 0 {
				if ev, ok := parseSGRMouse(buf[i : i+n]); ok {
					applyMouse(s, &in, ev)
				} else {
					in.KeyPressed = true
				}
				i += n - 1
				continue
			}
		}

		applyKey(&in, b)
	}

	in.Pointer = s.pointer
	in.HasPointer = s.seen
	return in
}

// escapeLength returns the length of the CSI sequence starting at data[0].
// complete is false when the sequence may continue in the next read.
// A lone ESC (or ESC followed by a non-CSI byte) reports length 0.
func escapeLength(data []byte) (n int, complete bool) {
	if len(data) == 1 {
		return 0, false
	}
	if data[1] != '[' {
		return 0, true
	}
	for end := 2; end < len(data) && end < 32; end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			return end + 1, true
		}
	}
	if len(data) < 32 {
		return 0, false
	}
	return 0, true
}

func applyKey(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03', '\x04':
		in.Quit = true
	}
	in.KeyPressed = true
}

func applyMouse(s *Stream, in *Input, ev mouseEvent) {
	s.pointer = Position{Col: ev.col, Row: ev.row}
	s.seen = true
	if ev.press {
		in.Clicks++
	}
}
