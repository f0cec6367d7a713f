package term

// CursorStyle is the visual cursor shape as set by DECSCUSR.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// Screen is the cell-based screen grid: cursor, scroll region, and an
// alternate-screen buffer. Mutation is not safe for concurrent use; spec
// requires Feed/Resize to run on a single owning goroutine.
type Screen struct {
	width  int
	height int
	lines  []*Line

	cursorX, cursorY int
	cursorVisible    bool
	cursorStyle      CursorStyle

	scrollTop    int
	scrollBottom int

	savedX, savedY int // DECSC/DECRC

	originMode bool // DECOM
	autoWrap   bool // DECAWM

	altScreen    bool
	altLines     []*Line // primary buffer, parked while alt screen is active
	altCursorX   int
	altCursorY   int
	altSavesCurs bool // true only for mode 1049, which saves/restores the cursor too

	// onScroll is invoked with lines pushed off the top of the primary
	// buffer by a scroll region whose top is row 0, so Model can hand them
	// to History. Scrolls while in alt-screen mode, or within a scroll
	// region whose top is below row 0, are discarded rather than reported.
	onScroll func([]*Line)

	dirtyMin   int
	dirtyMax   int // half-open: dirty rows are [dirtyMin, dirtyMax)
	fullRedraw bool
}

// NewScreen creates a screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	if width < 1 {
		width = 80
	}
	if height < 1 {
		height = 24
	}
	s := &Screen{
		width:         width,
		height:        height,
		lines:         make([]*Line, height),
		cursorVisible: true,
		cursorStyle:   CursorBlock,
		scrollTop:     0,
		scrollBottom:  height - 1,
		autoWrap:      true,
	}
	for i := range s.lines {
		s.lines[i] = NewLine(width)
	}
	s.markFullRedraw()
	return s
}

// SetOnScroll installs the scrolled-line hand-off callback.
func (s *Screen) SetOnScroll(fn func([]*Line)) { s.onScroll = fn }

func (s *Screen) markDirty(y int) {
	if y < 0 || y >= s.height {
		return
	}
	if s.dirtyMax == s.dirtyMin {
		s.dirtyMin, s.dirtyMax = y, y+1
		return
	}
	if y < s.dirtyMin {
		s.dirtyMin = y
	}
	if y+1 > s.dirtyMax {
		s.dirtyMax = y + 1
	}
}

func (s *Screen) markDirtyRange(y0, y1 int) {
	for y := y0; y < y1; y++ {
		s.markDirty(y)
	}
}

func (s *Screen) markFullRedraw() {
	s.fullRedraw = true
	s.dirtyMin, s.dirtyMax = 0, s.height
}

// takeDamage returns and clears the accumulated dirty-row range.
func (s *Screen) takeDamage() (start, end int, full bool) {
	start, end, full = s.dirtyMin, s.dirtyMax, s.fullRedraw
	s.dirtyMin, s.dirtyMax, s.fullRedraw = 0, 0, false
	return
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) CursorPos() (x, y int)        { return s.cursorX, s.cursorY }
func (s *Screen) CursorVisible() bool          { return s.cursorVisible }
func (s *Screen) AlternateScreen() bool        { return s.altScreen }

// Cell returns the cell at (x, y), or a blank cell if out of bounds.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return EmptyCell()
	}
	return s.lines[y].Cells[x]
}

// Line returns a copy of the cells in row y, or nil if out of bounds.
func (s *Screen) Line(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	cells := make([]Cell, len(s.lines[y].Cells))
	copy(cells, s.lines[y].Cells)
	return cells
}

func (s *Screen) WriteRune(r rune) {
	if len(s.lines) == 0 || s.width == 0 {
		return
	}
	width := runeWidth(r)

	if s.cursorX+width > s.width {
		if s.autoWrap {
			if s.cursorY >= 0 && s.cursorY < len(s.lines) {
				s.lines[s.cursorY].Wrapped = true
			}
			s.cursorX = 0
			s.lineFeed()
		} else {
			s.cursorX = s.width - width
			if s.cursorX < 0 {
				s.cursorX = 0
			}
		}
	}
	if s.cursorY < 0 || s.cursorY >= len(s.lines) {
		return
	}
	line := s.lines[s.cursorY]
	if s.cursorX < 0 || s.cursorX >= len(line.Cells) {
		return
	}

	line.Cells[s.cursorX] = Cell{Rune: r, Width: width}
	s.markDirty(s.cursorY)
	s.cursorX++
	for i := 1; i < width && s.cursorX < s.width; i++ {
		line.Cells[s.cursorX] = Cell{Rune: r, Width: 0}
		s.cursorX++
	}
}

func (s *Screen) MoveCursor(x, y int) {
	if x < 0 {
		x = 0
	}
	if x >= s.width {
		x = s.width - 1
	}
	top, bottom := 0, s.height-1
	if s.originMode {
		top, bottom = s.scrollTop, s.scrollBottom
		y += top
	}
	if y < top {
		y = top
	}
	if y > bottom {
		y = bottom
	}
	s.cursorX, s.cursorY = x, y
}

func (s *Screen) MoveCursorRelative(dx, dy int) {
	s.MoveCursor(s.cursorX+dx, s.cursorY+dy)
}

func (s *Screen) CarriageReturn() { s.cursorX = 0 }

func (s *Screen) LineFeed() { s.lineFeed() }

func (s *Screen) lineFeed() {
	if s.cursorY >= s.scrollBottom {
		s.scrollUp(1)
	} else {
		s.cursorY++
	}
}

func (s *Screen) ReverseLineFeed() {
	if s.cursorY <= s.scrollTop {
		s.scrollDown(1)
	} else {
		s.cursorY--
	}
}

func (s *Screen) ScrollUp(n int) { s.scrollUp(n) }

func (s *Screen) scrollUp(n int) {
	if n <= 0 || len(s.lines) == 0 {
		return
	}
	top, bottom := s.clampRegion()
	if top > bottom {
		return
	}
	regionSize := bottom - top + 1
	if n > regionSize {
		n = regionSize
	}

	if top == 0 && !s.altScreen && s.onScroll != nil {
		scrolled := make([]*Line, n)
		for i := 0; i < n; i++ {
			scrolled[i] = s.lines[i].clone()
		}
		s.onScroll(scrolled)
	}

	for y := top; y <= bottom-n; y++ {
		s.lines[y] = s.lines[y+n]
	}
	for y := bottom - n + 1; y <= bottom; y++ {
		s.lines[y] = NewLine(s.width)
	}
	s.markDirtyRange(top, bottom+1)
}

func (s *Screen) ScrollDown(n int) { s.scrollDown(n) }

func (s *Screen) scrollDown(n int) {
	if n <= 0 || len(s.lines) == 0 {
		return
	}
	top, bottom := s.clampRegion()
	if top > bottom {
		return
	}
	regionSize := bottom - top + 1
	if n > regionSize {
		n = regionSize
	}
	for y := bottom; y >= top+n; y-- {
		s.lines[y] = s.lines[y-n]
	}
	for y := top; y < top+n; y++ {
		s.lines[y] = NewLine(s.width)
	}
	s.markDirtyRange(top, bottom+1)
}

func (s *Screen) clampRegion() (top, bottom int) {
	top, bottom = s.scrollTop, s.scrollBottom
	if top < 0 {
		top = 0
	}
	if bottom >= len(s.lines) {
		bottom = len(s.lines) - 1
	}
	return
}

func (s *Screen) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom >= s.height {
		bottom = s.height - 1
	}
	if top >= bottom {
		return
	}
	s.scrollTop, s.scrollBottom = top, bottom
	if s.originMode {
		s.cursorX, s.cursorY = 0, top
	} else {
		s.cursorX, s.cursorY = 0, 0
	}
}

func (s *Screen) ResetScrollRegion() {
	s.scrollTop, s.scrollBottom = 0, s.height-1
}

func (s *Screen) ClearScreen() {
	for y := 0; y < s.height; y++ {
		s.lines[y].Clear()
	}
	s.markFullRedraw()
}

func (s *Screen) ClearScreenAbove() {
	for y := 0; y < s.cursorY; y++ {
		s.lines[y].Clear()
	}
	s.lines[s.cursorY].ClearRange(0, s.cursorX+1)
	s.markDirtyRange(0, s.cursorY+1)
}

func (s *Screen) ClearScreenBelow() {
	s.lines[s.cursorY].ClearRange(s.cursorX, s.width)
	for y := s.cursorY + 1; y < s.height; y++ {
		s.lines[y].Clear()
	}
	s.markDirtyRange(s.cursorY, s.height)
}

func (s *Screen) ClearLine() {
	s.lines[s.cursorY].Clear()
	s.markDirty(s.cursorY)
}

func (s *Screen) ClearLineLeft() {
	s.lines[s.cursorY].ClearRange(0, s.cursorX+1)
	s.markDirty(s.cursorY)
}

func (s *Screen) ClearLineRight() {
	s.lines[s.cursorY].ClearRange(s.cursorX, s.width)
	s.markDirty(s.cursorY)
}

func (s *Screen) InsertLines(n int) {
	if s.cursorY < s.scrollTop || s.cursorY > s.scrollBottom {
		return
	}
	oldTop := s.scrollTop
	s.scrollTop = s.cursorY
	s.scrollDown(n)
	s.scrollTop = oldTop
}

func (s *Screen) DeleteLines(n int) {
	if s.cursorY < s.scrollTop || s.cursorY > s.scrollBottom {
		return
	}
	oldTop := s.scrollTop
	s.scrollTop = s.cursorY
	s.scrollUp(n)
	s.scrollTop = oldTop
}

func (s *Screen) InsertChars(n int) {
	if s.cursorY < 0 || s.cursorY >= len(s.lines) {
		return
	}
	line := s.lines[s.cursorY]
	if n <= 0 || s.cursorX >= s.width {
		return
	}
	maxInsert := s.width - s.cursorX
	if n > maxInsert {
		n = maxInsert
	}
	for x := s.width - 1; x >= s.cursorX+n; x-- {
		line.Cells[x] = line.Cells[x-n]
	}
	for x := s.cursorX; x < s.cursorX+n && x < s.width; x++ {
		line.Cells[x] = EmptyCell()
	}
	s.markDirty(s.cursorY)
}

func (s *Screen) DeleteChars(n int) {
	if s.cursorY < 0 || s.cursorY >= len(s.lines) {
		return
	}
	line := s.lines[s.cursorY]
	if n <= 0 || s.cursorX >= s.width {
		return
	}
	maxDelete := s.width - s.cursorX
	if n > maxDelete {
		n = maxDelete
	}
	for x := s.cursorX; x < s.width-n; x++ {
		line.Cells[x] = line.Cells[x+n]
	}
	clearStart := s.width - n
	if clearStart < s.cursorX {
		clearStart = s.cursorX
	}
	for x := clearStart; x < s.width; x++ {
		line.Cells[x] = EmptyCell()
	}
	s.markDirty(s.cursorY)
}

func (s *Screen) EraseChars(n int) {
	if s.cursorY < 0 || s.cursorY >= len(s.lines) {
		return
	}
	line := s.lines[s.cursorY]
	for x := s.cursorX; x < s.cursorX+n && x < s.width; x++ {
		line.Cells[x] = EmptyCell()
	}
	s.markDirty(s.cursorY)
}

func (s *Screen) SaveCursor() { s.savedX, s.savedY = s.cursorX, s.cursorY }

func (s *Screen) RestoreCursor() { s.cursorX, s.cursorY = s.savedX, s.savedY }

func (s *Screen) SetCursorVisible(visible bool) { s.cursorVisible = visible }

func (s *Screen) SetCursorStyle(style CursorStyle) { s.cursorStyle = style }

func (s *Screen) SetOriginMode(enabled bool) { s.originMode = enabled }

func (s *Screen) SetAutoWrap(enabled bool) { s.autoWrap = enabled }

// EnterAlternateScreen switches to a blank alternate buffer, parking the
// primary buffer's lines and (for saveCursor, DECSET 1049) the cursor
// position. A no-op if already in the alternate screen.
func (s *Screen) EnterAlternateScreen(saveCursor bool) {
	if s.altScreen {
		return
	}
	s.altScreen = true
	s.altLines = s.lines
	s.altCursorX, s.altCursorY = s.cursorX, s.cursorY
	s.altSavesCurs = saveCursor

	s.lines = make([]*Line, s.height)
	for i := range s.lines {
		s.lines[i] = NewLine(s.width)
	}
	if saveCursor {
		s.cursorX, s.cursorY = 0, 0
	}
	s.markFullRedraw()
}

// ExitAlternateScreen restores the primary buffer. A no-op if not
// currently in the alternate screen.
func (s *Screen) ExitAlternateScreen() {
	if !s.altScreen {
		return
	}
	s.altScreen = false
	s.lines = s.altLines
	s.altLines = nil
	if s.altSavesCurs {
		s.cursorX, s.cursorY = s.altCursorX, s.altCursorY
	}
	s.markFullRedraw()
}

func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s.lines = resizeLines(s.lines, s.width, width, height)
	if s.altScreen {
		s.altLines = resizeLines(s.altLines, s.width, width, height)
	}
	s.width, s.height = width, height

	if s.scrollTop < 0 || s.scrollTop >= height {
		s.scrollTop = 0
	}
	if s.scrollBottom < 0 || s.scrollBottom >= height {
		s.scrollBottom = height - 1
	}
	if s.scrollTop > s.scrollBottom {
		s.scrollTop, s.scrollBottom = 0, height-1
	}
	s.cursorX = clampInt(s.cursorX, 0, width-1)
	s.cursorY = clampInt(s.cursorY, 0, height-1)
	s.savedX = clampInt(s.savedX, 0, width-1)
	s.savedY = clampInt(s.savedY, 0, height-1)
	s.markFullRedraw()
}

func resizeLines(lines []*Line, oldWidth, width, height int) []*Line {
	out := make([]*Line, height)
	for y := 0; y < height; y++ {
		out[y] = NewLine(width)
		if y < len(lines) && lines[y] != nil {
			n := width
			if len(lines[y].Cells) < n {
				n = len(lines[y].Cells)
			}
			copy(out[y].Cells[:n], lines[y].Cells[:n])
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Reset restores the active buffer to its initial blank state.
func (s *Screen) Reset() {
	for y := 0; y < s.height; y++ {
		s.lines[y].Clear()
	}
	s.cursorX, s.cursorY = 0, 0
	s.cursorVisible = true
	s.cursorStyle = CursorBlock
	s.scrollTop, s.scrollBottom = 0, s.height-1
	s.originMode = false
	s.autoWrap = true
	s.markFullRedraw()
}
