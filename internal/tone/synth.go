// Package tone synthesizes cue tones and plays them on the system audio device.
package tone

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the PCM rate used for all cues.
const SampleRate = 44100

// Envelope is an exponential gain ramp from Start to End over the tone.
// End must be positive for the ramp to be defined.
type Envelope struct {
	Start float64
	End   float64
}

// DefaultEnvelope fades from 0.3 to near-silence so a tone ends without a click.
var DefaultEnvelope = Envelope{Start: 0.3, End: 0.01}

// Gain returns the envelope value at fraction x (0..1) of the tone.
func (e Envelope) Gain(x float64) float64 {
	if x <= 0 {
		return e.Start
	}
	if x >= 1 {
		return e.End
	}
	return e.Start * math.Pow(e.End/e.Start, x)
}

// Synthesize renders a mono sine tone as signed 16-bit little-endian PCM.
func Synthesize(freq float64, d time.Duration, sampleRate int, env Envelope) []byte {
	n := int(d.Seconds() * float64(sampleRate))
	if n <= 0 || freq <= 0 {
		return nil
	}

	buf := make([]byte, 2*n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		v := math.Sin(2*math.Pi*freq*t) * env.Gain(float64(i)/float64(n))
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(v*math.MaxInt16)))
	}
	return buf
}
