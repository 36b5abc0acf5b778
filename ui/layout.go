package ui

// layout holds screen positions shared by drawing and mouse hit-testing
type layout struct {
	voiceX, voiceY int
	voiceWidth     int
	paramX, paramY int
	labelWidth     int
	barX, barWidth int
	meterY         int
}

func newLayout(voices int) layout {
	l := layout{
		voiceX:     1,
		voiceY:     2,
		voiceWidth: 20,
		labelWidth: 18,
		barWidth:   32,
	}
	l.paramX = l.voiceX + l.voiceWidth + 2
	l.paramY = l.voiceY
	l.barX = l.paramX + l.labelWidth + 1
	l.meterY = l.voiceY + voices + 1
	return l
}

// voiceAt maps a click to a voice index
func (l layout) voiceAt(x, y, voices int) (int, bool) {
	if x < l.voiceX || x >= l.voiceX+l.voiceWidth {
		return 0, false
	}
	i := y - l.voiceY
	if i < 0 || i >= voices {
		return 0, false
	}
	return i, true
}

// paramAt maps a click to a parameter row and, on the bar, a slider fraction
// The row is not checked against the descriptor count; the surface rejects it.
func (l layout) paramAt(x, y int) (row int, frac float64, onBar, ok bool) {
	if x < l.paramX || y < l.paramY {
		return 0, 0, false, false
	}
	row = y - l.paramY
	if x >= l.barX && x < l.barX+l.barWidth {
		return row, float64(x-l.barX) / float64(l.barWidth-1), true, true
	}
	return row, 0, false, true
}
