package tone

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep"
)

// PCM adapts a beep stream to signed 16-bit little-endian stereo bytes, the
// format ebiten's audio players read.
type PCM struct {
	s       beep.Streamer
	frames  [][2]float64
	encoded []byte
	pending []byte
	done    bool
}

// NewPCM wraps s.
func NewPCM(s beep.Streamer) *PCM {
	return &PCM{s: s}
}

func (p *PCM) Read(b []byte) (int, error) {
	if len(p.pending) == 0 {
		if p.done {
			return 0, io.EOF
		}
		if err := p.fill(max(len(b)/4, 1)); err != nil {
			return 0, err
		}
		if len(p.pending) == 0 {
			return 0, io.EOF
		}
	}
	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

func (p *PCM) fill(frames int) error {
	if cap(p.frames) < frames {
		p.frames = make([][2]float64, frames)
	}
	buf := p.frames[:frames]
	n, ok := p.s.Stream(buf)
	if !ok {
		p.done = true
		if err := p.s.Err(); err != nil {
			return err
		}
	}

	p.encoded = p.encoded[:0]
	for _, f := range buf[:n] {
		p.encoded = binary.LittleEndian.AppendUint16(p.encoded, uint16(sample16(f[0])))
		p.encoded = binary.LittleEndian.AppendUint16(p.encoded, uint16(sample16(f[1])))
	}
	p.pending = p.encoded
	return nil
}

func sample16(v float64) int16 {
	return int16(math.Round(math.Max(-1, math.Min(1, v)) * math.MaxInt16))
}
