package ui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fm-drums/surface"
	"github.com/lixenwraith/fm-drums/voice"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	styleFocused  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBar      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleMeter    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleHot      = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

const helpLine = "space trigger  tab/1-0,- voice  up/down param  left/right adjust (shift fast)  e decay  [ ] vol  ^S save  ^L load  q quit"

// Draw renders one frame
func (a *App) Draw() {
	var (
		rows     []surface.Row
		name     string
		mode     string
		active   bool
		selected int
	)
	a.withSurface(func(v voice.Voice) {
		rows = a.surf.Rows()
		name = v.Kind().Name()
		mode = v.DecayMode().String()
		active = v.Active()
	})
	selected = a.eng.Selected()

	peak := a.eng.Tap().Peak()
	a.peakHold = max(peak, a.peakHold*peakFalloff)

	a.screen.Clear()
	a.drawText(a.layout.voiceX, 0, styleTitle, "FM DRUMS")
	header := fmt.Sprintf("%s  decay:%s", name, mode)
	if active {
		header += "  *"
	}
	a.drawText(a.layout.paramX, 0, styleDim, header)

	for i, n := range a.names {
		style := styleDefault
		if i == selected {
			style = styleSelected
		}
		label := fmt.Sprintf("%s %-*s", voiceHotkey(i), a.layout.voiceWidth-2, n)
		a.drawText(a.layout.voiceX, a.layout.voiceY+i, style, label)
	}

	for _, r := range rows {
		a.drawRow(r)
	}

	a.drawMeter()

	if a.height > 2 {
		a.drawText(0, a.height-2, styleDim, helpLine)
	}
	if s := a.Status(); s != "" && a.height > 1 {
		a.drawText(0, a.height-1, styleDefault, s)
	}

	a.screen.Show()
}

func (a *App) drawRow(r surface.Row) {
	y := a.layout.paramY + r.Index
	labelStyle := styleDefault
	if r.Focused {
		labelStyle = styleFocused
	}
	a.drawText(a.layout.paramX, y, labelStyle, fmt.Sprintf("%-*.*s", a.layout.labelWidth, a.layout.labelWidth, r.Label))

	filled := int(r.Fraction*float64(a.layout.barWidth) + 0.5)
	for i := 0; i < a.layout.barWidth; i++ {
		ch, style := '·', styleDim
		if i < filled {
			ch, style = '█', styleBar
		}
		a.setCell(a.layout.barX+i, y, ch, style)
	}

	a.drawText(a.layout.barX+a.layout.barWidth+1, y, labelStyle, formatValue(r))
}

func (a *App) drawMeter() {
	y := a.layout.meterY
	a.drawText(a.layout.voiceX, y, styleDim, "peak")
	width := a.layout.voiceWidth - 5
	filled := int(min(a.peakHold, 1)*float64(width) + 0.5)
	for i := 0; i < width; i++ {
		ch, style := ' ', styleDefault
		if i < filled {
			ch, style = '▮', styleMeter
			if i >= width*4/5 {
				style = styleHot
			}
		}
		a.setCell(a.layout.voiceX+5+i, y, ch, style)
	}
}

func (a *App) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		a.setCell(x, y, r, style)
		x++
	}
}

func (a *App) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= a.width || y >= a.height {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}

func voiceHotkey(i int) string {
	switch {
	case i < 9:
		return strconv.Itoa(i + 1)
	case i == 9:
		return "0"
	case i == 10:
		return "-"
	}
	return " "
}

func formatValue(r surface.Row) string {
	if r.Kind == voice.ParamInt {
		return strconv.Itoa(int(r.Value))
	}
	return strconv.FormatFloat(r.Value, 'f', 3, 64)
}
