package voice

import "math"

// Shared shaping of the TRX voices
const (
	trxClipDrive  = 5.0
	trxRampHz     = 1000.0
	trxSnapDecay  = 0.02
	trxBumpHz     = 80.0
	trxNoiseHP    = 400.0
	trxBurstTime  = 0.01
	hihatFadeTime = 0.005
)

// softClip saturates with a drive of 1+5·amount; amount 0 bypasses
func softClip(v, amount float64) float64 {
	if amount <= 0 {
		return v
	}
	return math.Tanh(v * (1 + amount*trxClipDrive))
}
