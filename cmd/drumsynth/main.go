package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"text/tabwriter"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fm-drums/audio"
	"github.com/lixenwraith/fm-drums/config"
	"github.com/lixenwraith/fm-drums/engine"
	"github.com/lixenwraith/fm-drums/store"
	"github.com/lixenwraith/fm-drums/ui"
	"github.com/lixenwraith/fm-drums/voice"
)

// options are the parsed command line
type options struct {
	configPath string
	params     string
	backend    string
	volume     float64
	debug      bool
	render     string
	out        string
	dur        time.Duration
	list       bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("drumsynth", flag.ContinueOnError)
	o := &options{}
	fs.StringVar(&o.configPath, "config", "drumsynth.toml", "TOML config file")
	fs.StringVar(&o.params, "params", "", "parameter file (overrides config)")
	fs.StringVar(&o.backend, "backend", "", "audio backend: oto, beep, null")
	fs.Float64Var(&o.volume, "volume", -1, "master volume 0-1")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.StringVar(&o.render, "render", "", "render one voice by key to WAV and exit")
	fs.StringVar(&o.out, "out", "", "WAV path for -render (default <key>.wav)")
	fs.DurationVar(&o.dur, "dur", 2*time.Second, "length of -render output")
	fs.BoolVar(&o.list, "list", false, "list voice keys and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, nil
}

// loadConfig layers file, environment and flags, then validates
func loadConfig(o *options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if o.params != "" {
		cfg.ParamFile = o.params
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}
	if o.volume >= 0 {
		cfg.MasterVolume = o.volume
	}
	if o.debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine builds the bank with configured decay modes and loads saved parameters
func newEngine(cfg *config.Config, bootstrap bool) (*engine.Engine, *store.File, error) {
	eng := engine.NewDefault()
	for key, mode := range cfg.ParsedDecayModes() {
		if err := eng.SetDecayMode(key, mode); err != nil {
			return nil, nil, err
		}
	}

	file := store.NewFile(cfg.ParamFile)
	if !bootstrap {
		if file.Exists() {
			if _, err := file.Load(eng); err != nil {
				return nil, nil, fmt.Errorf("load %s: %w", file.Path, err)
			}
		}
		return eng, file, nil
	}

	created, n, err := file.Bootstrap(eng)
	if created {
		log.Printf("Wrote default parameters to %s", file.Path)
	}
	if err != nil {
		// Keep built-in defaults for whatever was not read
		log.Printf("Loading %s stopped after %d fields: %v", file.Path, n, err)
	} else if total := store.Fields(voice.DefaultBank()); n < total {
		log.Printf("Short parameter file %s: %d of %d fields", file.Path, n, total)
	}
	return eng, file, nil
}

func listVoices(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, k := range voice.Kinds() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, k.Key(), k.Name())
	}
	tw.Flush()
}

// renderVoice writes one triggered voice to a WAV file using saved parameters
func renderVoice(cfg *config.Config, key, out string, dur time.Duration) (string, error) {
	kind, ok := voice.KindFromKey(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", engine.ErrNoSuchVoice, key)
	}
	if out == "" {
		out = key + ".wav"
	}

	eng, _, err := newEngine(cfg, false)
	if err != nil {
		return "", err
	}
	var v voice.Voice
	eng.WithVoices(func(vs []voice.Voice) { v = vs[kind] })

	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := audio.RenderWAV(f, v, dur); err != nil {
		return "", fmt.Errorf("render %s: %w", key, err)
	}
	return out, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if o.list {
		listVoices(os.Stdout)
		return
	}

	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}

	if o.render != "" {
		path, err := renderVoice(cfg, o.render, o.out, o.dur)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Starting: backend=%s frames=%d volume=%.2f params=%s", cfg.Backend, cfg.BufferFrames, cfg.MasterVolume, cfg.ParamFile)

	eng, file, err := newEngine(cfg, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Engine: %v\n", err)
		os.Exit(1)
	}

	backend, _ := audio.ParseBackend(cfg.Backend)
	out := audio.NewOutput(backend, cfg.BufferFrames, cfg.MasterVolume)
	if err := out.Start(eng); err != nil {
		// Non-fatal, the synth runs silent
		log.Printf("Audio: %v", err)
	}
	defer out.Stop()
	log.Printf("Audio backend: %s", out.Backend())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: the deferred Fini below has already restored the terminal
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Crashed: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mDRUMSYNTH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	ui.New(screen, eng, file, out).Run()
	log.Printf("Exiting")
}
