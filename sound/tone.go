package sound

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidTone = errors.New("sound: invalid tone")

// Tone is a sine sweep from Frequency to EndFrequency (Hz) with a linear
// fade out. A zero EndFrequency holds Frequency.
type Tone struct {
	Frequency    float64
	EndFrequency float64
	Duration     time.Duration
}

func (t Tone) Validate() error {
	if t.Frequency <= 0 || t.EndFrequency < 0 {
		return fmt.Errorf("%w: frequency %v..%v", ErrInvalidTone, t.Frequency, t.EndFrequency)
	}
	if t.Duration <= 0 {
		return fmt.Errorf("%w: duration %v", ErrInvalidTone, t.Duration)
	}
	return nil
}

// Synthesize renders t as 16-bit little endian stereo PCM.
func Synthesize(sampleRate int, t Tone) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 || sampleRate <= 0 {
		return nil
	}
	end := t.EndFrequency
	if end == 0 {
		end = t.Frequency
	}

	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.Frequency + (end-t.Frequency)*p
		v := int16(math.Sin(phase) * (1 - p) * math.MaxInt16)
		phase += 2 * math.Pi * freq / float64(sampleRate)
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
