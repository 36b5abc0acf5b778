package audio

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fm-drums/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// sink is a device that repeatedly pulls buffers from a streamer
// lock/unlock serialize changes to the streamer chain against the pull.
type sink interface {
	start(src beep.Streamer) error
	stop()
	lock()
	unlock()
}

// openSink builds the sink for a backend without starting it
func openSink(b BackendType, frames int) (sink, error) {
	switch b {
	case BackendOto:
		return &otoSink{frames: frames}, nil
	case BackendBeep:
		return &beepSink{frames: frames}, nil
	case BackendNull:
		return newNullSink(frames), nil
	default:
		return nil, ErrNoAudioBackend
	}
}

// oto allows one context per process
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

// otoSink plays interleaved float32 stereo through oto
type otoSink struct {
	frames int
	mu     sync.Mutex // Protects the streamer chain during Read
	reader *frameReader
	player *oto.Player
}

func (s *otoSink) start(src beep.Streamer) error {
	otoOnce.Do(func() {
		var ready chan struct{}
		otoCtx, ready, otoErr = oto.NewContext(&oto.NewContextOptions{
			SampleRate:   constant.AudioSampleRate,
			ChannelCount: constant.AudioChannels,
			Format:       oto.FormatFloat32LE,
			BufferSize:   time.Duration(s.frames) * time.Second / constant.AudioSampleRate,
		})
		if otoErr == nil {
			<-ready
		}
	})
	if otoErr != nil {
		return otoErr
	}

	s.reader = newFrameReader(src, s.frames, &s.mu)
	s.player = otoCtx.NewPlayer(s.reader)
	s.player.Play()
	return nil
}

func (s *otoSink) stop() {
	if s.player != nil {
		s.player.Pause()
		_ = s.player.Close()
		s.player = nil
	}
}

func (s *otoSink) lock()   { s.mu.Lock() }
func (s *otoSink) unlock() { s.mu.Unlock() }

// frameReader adapts a beep streamer to the io.Reader oto pulls from
type frameReader struct {
	src beep.Streamer
	mu  *sync.Mutex
	buf [][2]float64
}

func newFrameReader(src beep.Streamer, frames int, mu *sync.Mutex) *frameReader {
	return &frameReader{
		src: src,
		mu:  mu,
		buf: make([][2]float64, frames),
	}
}

// Read fills p with whole float32 LE stereo frames
func (r *frameReader) Read(p []byte) (int, error) {
	const frameBytes = constant.AudioChannels * 4
	total := len(p) / frameBytes

	r.mu.Lock()
	defer r.mu.Unlock()

	off := 0
	for done := 0; done < total; {
		n := min(total-done, len(r.buf))
		chunk := r.buf[:n]
		got, ok := r.src.Stream(chunk)
		if !ok {
			got = 0
		}
		// Anything the source did not fill is silence
		for i := got; i < n; i++ {
			chunk[i] = [2]float64{}
		}
		for _, f := range chunk {
			binary.LittleEndian.PutUint32(p[off:], math.Float32bits(float32(f[0])))
			binary.LittleEndian.PutUint32(p[off+4:], math.Float32bits(float32(f[1])))
			off += frameBytes
		}
		done += n
	}
	return off, nil
}

// beepSink plays through the beep speaker
type beepSink struct {
	frames int
}

func (s *beepSink) start(src beep.Streamer) error {
	if err := speaker.Init(sampleRate, s.frames); err != nil {
		return err
	}
	speaker.Play(src)
	return nil
}

func (s *beepSink) stop() {
	speaker.Clear()
	speaker.Close()
}

func (s *beepSink) lock()   { speaker.Lock() }
func (s *beepSink) unlock() { speaker.Unlock() }

// nullSink drains the streamer at real-time pace without a device
type nullSink struct {
	frames   int
	period   time.Duration
	mu       sync.Mutex
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func newNullSink(frames int) *nullSink {
	return &nullSink{
		frames: frames,
		period: time.Duration(frames) * time.Second / constant.AudioSampleRate,
	}
}

func (s *nullSink) start(src beep.Streamer) error {
	s.stopChan = make(chan struct{})
	s.wg.Add(1)
	go s.loop(src)
	return nil
}

// loop pulls one buffer per tick and discards it
func (s *nullSink) loop(src beep.Streamer) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	buf := make([][2]float64, s.frames)
	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			src.Stream(buf)
			s.mu.Unlock()
		}
	}
}

func (s *nullSink) stop() {
	close(s.stopChan)
	s.wg.Wait()
}

func (s *nullSink) lock()   { s.mu.Lock() }
func (s *nullSink) unlock() { s.mu.Unlock() }
