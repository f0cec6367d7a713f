package term

import (
	"log"
	"strconv"
	"strings"
)

// Parser is a byte-oriented ANSI/VT scanner that drives a Screen. State
// (scanner state, collected params/intermediates, in-flight UTF-8 bytes)
// persists across Parse calls, so a multi-byte escape sequence split
// across two Feed calls is handled correctly.
type Parser struct {
	screen *Screen
	logger *log.Logger

	state  scannerState
	params []int
	inter  []byte
	osc    []byte

	utf8Buf   [4]byte
	utf8Len   int
	utf8Count int

	onTitle func(string)
	onOSC   func(cmd int, data string)
}

type scannerState int

const (
	stateGround scannerState = iota
	stateEscape
	stateEscapeInter
	stateCSI
	stateCSIParam
	stateCSIInter
	stateOSC
	stateDCS
)

// NewParser creates a scanner that writes into screen. A nil logger
// defaults to log.Default().
func NewParser(screen *Screen, logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{
		screen: screen,
		logger: logger,
		state:  stateGround,
		params: make([]int, 0, 16),
		inter:  make([]byte, 0, 4),
		osc:    make([]byte, 0, 256),
	}
}

// SetTitleCallback sets the callback invoked on OSC 0/2 (window title).
func (p *Parser) SetTitleCallback(fn func(string)) { p.onTitle = fn }

// SetOSCCallback sets the callback invoked on OSC sequences this parser
// does not otherwise interpret.
func (p *Parser) SetOSCCallback(fn func(cmd int, data string)) { p.onOSC = fn }

// Parse feeds data through the scanner, mutating the underlying screen.
func (p *Parser) Parse(data []byte) {
	for _, b := range data {
		p.processByte(b)
	}
}

func (p *Parser) processByte(b byte) {
	switch p.state {
	case stateGround:
		p.processGround(b)
	case stateEscape:
		p.processEscape(b)
	case stateEscapeInter:
		p.processEscapeInter(b)
	case stateCSI:
		p.processCSI(b)
	case stateCSIParam:
		p.processCSIParam(b)
	case stateCSIInter:
		p.processCSIInter(b)
	case stateOSC:
		p.processOSC(b)
	case stateDCS:
		p.processDCS(b)
	}
}

func (p *Parser) resetToGround(reason string) {
	if reason != "" {
		p.logger.Printf("term: malformed sequence, resetting parser: %s", reason)
	}
	p.state = stateGround
}

func (p *Parser) processGround(b byte) {
	if p.utf8Len > 0 {
		p.processUTF8Continuation(b)
		return
	}

	switch {
	case b == 0x1B: // ESC
		p.state = stateEscape
		p.params = p.params[:0]
		p.inter = p.inter[:0]
	case b == 0x07: // BEL
	case b == 0x08: // BS
		p.screen.MoveCursorRelative(-1, 0)
	case b == 0x09: // HT
		p.handleTab()
	case b == 0x0A, b == 0x0B, b == 0x0C: // LF, VT, FF
		p.screen.LineFeed()
	case b == 0x0D: // CR
		p.screen.CarriageReturn()
	case b >= 0x20 && b < 0x7F:
		p.screen.WriteRune(rune(b))
	case b >= 0xC0 && b < 0xE0:
		p.utf8Buf[0] = b
		p.utf8Len, p.utf8Count = 2, 1
	case b >= 0xE0 && b < 0xF0:
		p.utf8Buf[0] = b
		p.utf8Len, p.utf8Count = 3, 1
	case b >= 0xF0 && b < 0xF8:
		p.utf8Buf[0] = b
		p.utf8Len, p.utf8Count = 4, 1
	case b >= 0x80 && b < 0xC0: // stray continuation byte
		p.screen.WriteRune('�')
	default:
		// other C0 control codes: ignored
	}
}

func (p *Parser) processUTF8Continuation(b byte) {
	if b < 0x80 || b >= 0xC0 {
		p.utf8Len, p.utf8Count = 0, 0
		p.screen.WriteRune('�')
		p.processGround(b)
		return
	}
	p.utf8Buf[p.utf8Count] = b
	p.utf8Count++
	if p.utf8Count == p.utf8Len {
		r := p.decodeUTF8()
		p.utf8Len, p.utf8Count = 0, 0
		p.screen.WriteRune(r)
	}
}

func (p *Parser) decodeUTF8() rune {
	switch p.utf8Len {
	case 2:
		r := rune(p.utf8Buf[0]&0x1F)<<6 | rune(p.utf8Buf[1]&0x3F)
		if r < 0x80 {
			return '�'
		}
		return r
	case 3:
		r := rune(p.utf8Buf[0]&0x0F)<<12 | rune(p.utf8Buf[1]&0x3F)<<6 | rune(p.utf8Buf[2]&0x3F)
		if r < 0x800 || (r >= 0xD800 && r <= 0xDFFF) {
			return '�'
		}
		return r
	case 4:
		r := rune(p.utf8Buf[0]&0x07)<<18 | rune(p.utf8Buf[1]&0x3F)<<12 |
			rune(p.utf8Buf[2]&0x3F)<<6 | rune(p.utf8Buf[3]&0x3F)
		if r < 0x10000 || r > 0x10FFFF {
			return '�'
		}
		return r
	default:
		return '�'
	}
}

func (p *Parser) processEscape(b byte) {
	switch {
	case b == '[':
		p.state = stateCSI
	case b == ']':
		p.state = stateOSC
		p.osc = p.osc[:0]
	case b == 'P':
		p.state = stateDCS
	case b == '7':
		p.screen.SaveCursor()
		p.state = stateGround
	case b == '8':
		p.screen.RestoreCursor()
		p.state = stateGround
	case b == 'D':
		p.screen.LineFeed()
		p.state = stateGround
	case b == 'E':
		p.screen.CarriageReturn()
		p.screen.LineFeed()
		p.state = stateGround
	case b == 'M':
		p.screen.ReverseLineFeed()
		p.state = stateGround
	case b == 'c':
		p.screen.Reset()
		p.state = stateGround
	case b == '\\':
		p.state = stateGround
	case b >= 0x20 && b <= 0x2F:
		p.inter = append(p.inter, b)
		p.state = stateEscapeInter
	case b >= 0x30 && b <= 0x7E:
		p.state = stateGround // charset-selection and similar finals: consumed, no screen effect
	default:
		p.resetToGround("unexpected byte in escape sequence")
	}
}

func (p *Parser) processEscapeInter(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.inter = append(p.inter, b)
	case b >= 0x30 && b <= 0x7E:
		p.state = stateGround
	default:
		p.resetToGround("unexpected byte in escape intermediate")
	}
}

func (p *Parser) processCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		p.params = append(p.params, int(b-'0'))
		p.state = stateCSIParam
	case b == ';':
		p.params = append(p.params, 0)
		p.state = stateCSIParam
	case b == '?', b == '>', b == '!':
		p.inter = append(p.inter, b)
	case b >= 0x20 && b <= 0x2F:
		p.inter = append(p.inter, b)
		p.state = stateCSIInter
	case b >= 0x40 && b <= 0x7E:
		p.handleCSI(b)
		p.state = stateGround
	default:
		p.resetToGround("unexpected byte in CSI sequence")
	}
}

func (p *Parser) processCSIParam(b byte) {
	switch {
	case b >= '0' && b <= '9':
		if len(p.params) == 0 {
			p.params = append(p.params, 0)
		}
		p.params[len(p.params)-1] = p.params[len(p.params)-1]*10 + int(b-'0')
	case b == ';':
		p.params = append(p.params, 0)
	case b >= 0x20 && b <= 0x2F:
		p.inter = append(p.inter, b)
		p.state = stateCSIInter
	case b >= 0x40 && b <= 0x7E:
		p.handleCSI(b)
		p.state = stateGround
	default:
		p.resetToGround("unexpected byte in CSI parameter")
	}
}

func (p *Parser) processCSIInter(b byte) {
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.inter = append(p.inter, b)
	case b >= 0x40 && b <= 0x7E:
		p.handleCSI(b)
		p.state = stateGround
	default:
		p.resetToGround("unexpected byte in CSI intermediate")
	}
}

func (p *Parser) processOSC(b byte) {
	switch {
	case b == 0x07:
		p.handleOSC()
		p.state = stateGround
	case b == 0x1B:
		p.handleOSC()
		p.state = stateEscape
	case b == 0x9C:
		p.handleOSC()
		p.state = stateGround
	default:
		p.osc = append(p.osc, b)
	}
}

func (p *Parser) processDCS(b byte) {
	switch b {
	case 0x1B:
		p.state = stateEscape
	case 0x9C:
		p.state = stateGround
	}
}

func (p *Parser) handleTab() {
	x, _ := p.screen.CursorPos()
	nextTab := ((x / 8) + 1) * 8
	if nextTab >= p.screen.Width() {
		nextTab = p.screen.Width() - 1
	}
	p.screen.MoveCursor(nextTab, -1)
}

func (p *Parser) handleCSI(final byte) {
	private := len(p.inter) > 0 && p.inter[0] == '?'

	switch final {
	case 'A':
		p.screen.MoveCursorRelative(0, -p.param(0, 1))
	case 'B':
		p.screen.MoveCursorRelative(0, p.param(0, 1))
	case 'C':
		p.screen.MoveCursorRelative(p.param(0, 1), 0)
	case 'D':
		p.screen.MoveCursorRelative(-p.param(0, 1), 0)
	case 'E':
		n := p.param(0, 1)
		p.screen.CarriageReturn()
		for i := 0; i < n; i++ {
			p.screen.LineFeed()
		}
	case 'F':
		n := p.param(0, 1)
		p.screen.CarriageReturn()
		for i := 0; i < n; i++ {
			p.screen.ReverseLineFeed()
		}
	case 'G':
		_, y := p.screen.CursorPos()
		p.screen.MoveCursor(p.param(0, 1)-1, y)
	case 'H', 'f':
		p.screen.MoveCursor(p.param(1, 1)-1, p.param(0, 1)-1)
	case 'J':
		switch p.param(0, 0) {
		case 0:
			p.screen.ClearScreenBelow()
		case 1:
			p.screen.ClearScreenAbove()
		case 2, 3:
			p.screen.ClearScreen()
		}
	case 'K':
		switch p.param(0, 0) {
		case 0:
			p.screen.ClearLineRight()
		case 1:
			p.screen.ClearLineLeft()
		case 2:
			p.screen.ClearLine()
		}
	case 'L':
		p.screen.InsertLines(p.param(0, 1))
	case 'M':
		p.screen.DeleteLines(p.param(0, 1))
	case 'P':
		p.screen.DeleteChars(p.param(0, 1))
	case 'S':
		p.screen.ScrollUp(p.param(0, 1))
	case 'T':
		p.screen.ScrollDown(p.param(0, 1))
	case 'X':
		p.screen.EraseChars(p.param(0, 1))
	case '@':
		p.screen.InsertChars(p.param(0, 1))
	case 'd':
		x, _ := p.screen.CursorPos()
		p.screen.MoveCursor(x, p.param(0, 1)-1)
	case 'h':
		if private {
			p.handlePrivateMode(true)
		}
	case 'l':
		if private {
			p.handlePrivateMode(false)
		}
	case 'm':
		p.handleSGR()
	case 'r':
		p.screen.SetScrollRegion(p.param(0, 1)-1, p.param(1, p.screen.Height())-1)
	case 's':
		p.screen.SaveCursor()
	case 'u':
		p.screen.RestoreCursor()
	case 'n', 'c':
		// DSR/DA status reports: no terminal reply channel in a capture-only model
	case 'q':
		if len(p.inter) > 0 && p.inter[0] == ' ' {
			switch p.param(0, 1) {
			case 0, 1, 2:
				p.screen.SetCursorStyle(CursorBlock)
			case 3, 4:
				p.screen.SetCursorStyle(CursorUnderline)
			case 5, 6:
				p.screen.SetCursorStyle(CursorBar)
			}
		}
	default:
		p.logger.Printf("term: unhandled CSI sequence: CSI %s%s%c", string(p.inter), formatParams(p.params), final)
	}
}

func (p *Parser) handlePrivateMode(set bool) {
	for _, mode := range p.params {
		switch mode {
		case 1: // DECCKM
		case 6:
			p.screen.SetOriginMode(set)
		case 7:
			p.screen.SetAutoWrap(set)
		case 12:
		case 25:
			p.screen.SetCursorVisible(set)
		case 47, 1047:
			if set {
				p.screen.EnterAlternateScreen(false)
			} else {
				p.screen.ExitAlternateScreen()
			}
		case 1049:
			if set {
				p.screen.EnterAlternateScreen(true)
			} else {
				p.screen.ExitAlternateScreen()
			}
		case 2004: // bracketed paste
		}
	}
}

// handleSGR parses, but discards, SGR style codes: this module's
// transcript is plain text and never preserves color or attributes.
// Extended-color forms (38/48 ;5;idx or ;2;r;g;b) still consume the
// right number of trailing params so the rest of the sequence parses
// correctly.
func (p *Parser) handleSGR() {
	i := 0
	for i < len(p.params) {
		switch p.params[i] {
		case 38, 48:
			i = p.skipExtendedColor(i)
		}
		i++
	}
}

func (p *Parser) skipExtendedColor(i int) int {
	if i+1 >= len(p.params) {
		return i
	}
	switch p.params[i+1] {
	case 5:
		if i+2 < len(p.params) {
			return i + 2
		}
	case 2:
		if i+4 < len(p.params) {
			return i + 4
		}
	}
	return i
}

func (p *Parser) handleOSC() {
	data := string(p.osc)
	parts := strings.SplitN(data, ";", 2)
	if len(parts) == 0 {
		return
	}
	cmd, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	value := ""
	if len(parts) > 1 {
		value = parts[1]
	}
	switch cmd {
	case 0, 2:
		if p.onTitle != nil {
			p.onTitle(value)
		}
	case 1:
	default:
		if p.onOSC != nil {
			p.onOSC(cmd, value)
		}
	}
}

func (p *Parser) param(index, defaultValue int) int {
	if index < len(p.params) && p.params[index] > 0 {
		return p.params[index]
	}
	return defaultValue
}

func formatParams(params []int) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, v := range params {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ";")
}
