package input

// mouseEvent is one decoded SGR mouse report.
type mouseEvent struct {
	col, row int  // 1-based terminal cell
	press    bool // Left, middle or right button went down
}

// parseSGRMouse decodes a complete SGR report: ESC [ < Btn ; X ; Y M|m
func parseSGRMouse(data []byte) (mouseEvent, bool) {
	// Minimum: ESC [ < 0 ; 1 ; 1 M
	if len(data) < 9 || data[1] != '[' || data[2] != '<' {
		return mouseEvent{}, false
	}
	last := data[len(data)-1]
	if last != 'M' && last != 'm' {
		return mouseEvent{}, false
	}

	btn, x, y, ok := parseSGRParams(data[3 : len(data)-1])
	if !ok {
		return mouseEvent{}, false
	}

	// Bits 0-1: button (3 = release), bit 5: motion, bit 6: scroll
	buttonID := btn & 0x03
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0

	return mouseEvent{
		col:   x,
		row:   y,
		press: last == 'M' && !isMotion && !isScroll && buttonID != 3,
	}, true
}

// parseSGRParams parses "Btn;X;Y" without allocation.
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		if b == ';' {
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		} else if b >= '0' && b <= '9' {
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 {
				return 0, 0, 0, false
			}
		} else {
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	y = val
	return btn, x, y, true
}
