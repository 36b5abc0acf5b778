// Package ui is a terminal control surface for the engine: voice list,
// parameter sliders, a peak meter, and save/load commands.
package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fm-drums/dsp"
	"github.com/lixenwraith/fm-drums/engine"
	"github.com/lixenwraith/fm-drums/store"
	"github.com/lixenwraith/fm-drums/surface"
	"github.com/lixenwraith/fm-drums/voice"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	statusTimeout = 3 * time.Second
	volumeStep    = 0.05
	peakFalloff   = 0.9
)

// Mixer is the output gain control, satisfied by audio.Output
type Mixer interface {
	SetVolume(v float64)
	Volume() float64
}

// App runs the control loop on one tcell screen
type App struct {
	screen tcell.Screen
	eng    *engine.Engine
	surf   *surface.Surface
	file   *store.File
	mixer  Mixer

	width, height int
	layout        layout

	status     string
	statusTime time.Time
	peakHold   float64
	names      []string
}

// New builds the app; file and mixer may be nil
func New(screen tcell.Screen, eng *engine.Engine, file *store.File, mixer Mixer) *App {
	a := &App{
		screen: screen,
		eng:    eng,
		surf:   surface.New(),
		file:   file,
		mixer:  mixer,
		names:  eng.Names(),
	}
	a.width, a.height = screen.Size()
	a.layout = newLayout(len(a.names))
	return a
}

// Run polls events and redraws until quit
func (a *App) Run() {
	a.screen.EnableMouse()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.Draw()
		}
	}
}

// HandleEvent applies one event and returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(key tcell.Key, r rune, mod tcell.ModMask) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.selectVoice((a.eng.Selected() + 1) % len(a.names))
	case tcell.KeyBacktab:
		a.selectVoice((a.eng.Selected() + len(a.names) - 1) % len(a.names))
	case tcell.KeyUp:
		a.withSurface(func(v voice.Voice) { a.surf.Prev() })
	case tcell.KeyDown:
		a.withSurface(func(v voice.Voice) { a.surf.Next() })
	case tcell.KeyLeft:
		a.nudge(-1, mod&tcell.ModShift != 0)
	case tcell.KeyRight:
		a.nudge(1, mod&tcell.ModShift != 0)
	case tcell.KeyCtrlS:
		a.save()
	case tcell.KeyCtrlL:
		a.load()
	case tcell.KeyRune:
		return a.handleRune(r)
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch {
	case r == 'q' || r == 'Q':
		return false
	case r == ' ':
		a.eng.RequestTrigger()
	case r >= '1' && r <= '9':
		a.selectVoice(int(r - '1'))
	case r == '0':
		a.selectVoice(9)
	case r == '-':
		a.selectVoice(10)
	case r == 'e':
		a.toggleDecayMode()
	case r == '[':
		a.changeVolume(-volumeStep)
	case r == ']':
		a.changeVolume(volumeStep)
	}
	return true
}

func (a *App) handleMouse(x, y int, btn tcell.ButtonMask) {
	if btn&tcell.Button1 == 0 {
		return
	}
	if i, ok := a.layout.voiceAt(x, y, len(a.names)); ok {
		a.selectVoice(i)
		return
	}
	row, frac, onBar, ok := a.layout.paramAt(x, y)
	if !ok {
		return
	}
	a.withSurface(func(v voice.Voice) {
		if onBar {
			a.surf.SetFraction(row, frac)
			return
		}
		a.surf.Focus(row)
	})
}

// withSurface rebuilds the surface for the selected voice and runs fn, all under the engine lock
func (a *App) withSurface(fn func(v voice.Voice)) {
	a.eng.Do(func(v voice.Voice) {
		a.surf.Rebuild(v)
		fn(v)
	})
}

func (a *App) selectVoice(i int) {
	if err := a.eng.Select(i); err != nil {
		a.setStatus(err.Error())
	}
}

func (a *App) nudge(dir int, fast bool) {
	a.withSurface(func(v voice.Voice) {
		a.surf.Nudge(dir, fast)
	})
}

func (a *App) toggleDecayMode() {
	var msg string
	a.eng.Do(func(v voice.Voice) {
		mode := dsp.DecayExp
		if v.DecayMode() == dsp.DecayExp {
			mode = dsp.DecayIterative
		}
		v.SetDecayMode(mode)
		msg = fmt.Sprintf("%s decay: %s", v.Kind().Name(), mode)
	})
	a.setStatus(msg)
}

func (a *App) changeVolume(delta float64) {
	if a.mixer == nil {
		return
	}
	a.mixer.SetVolume(a.mixer.Volume() + delta)
	a.setStatus(fmt.Sprintf("volume %.0f%%", a.mixer.Volume()*100))
}

func (a *App) save() {
	if a.file == nil {
		return
	}
	if err := a.file.Save(a.eng); err != nil {
		log.Printf("Save %s failed: %v", a.file.Path, err)
		a.setStatus("save failed: " + err.Error())
		return
	}
	log.Printf("Saved parameters to %s", a.file.Path)
	a.setStatus("saved " + a.file.Path)
}

func (a *App) load() {
	if a.file == nil {
		return
	}
	n, err := a.file.Load(a.eng)
	if err != nil {
		log.Printf("Load %s failed after %d fields: %v", a.file.Path, n, err)
		a.setStatus("load failed: " + err.Error())
		return
	}
	log.Printf("Loaded %d fields from %s", n, a.file.Path)
	a.setStatus(fmt.Sprintf("loaded %s (%d fields)", a.file.Path, n))
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusTime = time.Now()
}

// Status returns the current status line
func (a *App) Status() string {
	if time.Since(a.statusTime) > statusTimeout {
		return ""
	}
	return a.status
}
