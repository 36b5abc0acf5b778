package audio

import (
	"errors"
	"fmt"
)

// BackendType identifies the audio output backend
type BackendType int

const (
	BackendOto  BackendType = iota // float32 stereo straight to oto
	BackendBeep                    // beep speaker
	BackendNull                    // no device, pumped by a ticker
)

func (b BackendType) String() string {
	switch b {
	case BackendOto:
		return "oto"
	case BackendBeep:
		return "beep"
	case BackendNull:
		return "null"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// ParseBackend maps a configured name to a backend
func ParseBackend(s string) (BackendType, error) {
	switch s {
	case "oto":
		return BackendOto, nil
	case "beep":
		return BackendBeep, nil
	case "null":
		return BackendNull, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrNoAudioBackend, s)
	}
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrAlreadyRunning = errors.New("audio output already running")
)
