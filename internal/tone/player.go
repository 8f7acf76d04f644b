package tone

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/abhisek/kuku/internal/cue"
)

// ErrNoDevice is returned when no audio output can be opened.
var ErrNoDevice = errors.New("audio device unavailable")

// Player plays cues through an oto context.
type Player struct {
	ctx *oto.Context
	env Envelope

	mu     sync.Mutex
	active []*oto.Player
}

var _ cue.Output = (*Player)(nil)

// Open acquires the system audio device. Only one Player may be opened per
// process.
func Open() (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	<-ready
	return &Player{ctx: ctx, env: DefaultEnvelope}, nil
}

// Play starts the tone for ev and returns without waiting for it to finish.
func (p *Player) Play(ev cue.Event) error {
	pcm := Synthesize(ev.Frequency, ev.Duration, SampleRate, p.env)
	if len(pcm) == 0 {
		return nil
	}

	op := p.ctx.NewPlayer(bytes.NewReader(pcm))
	op.Play()

	p.mu.Lock()
	defer p.mu.Unlock()
	// Keep references to tones still sounding; drop finished ones.
	live := p.active[:0]
	for _, a := range p.active {
		if a.IsPlaying() {
			live = append(live, a)
		} else {
			_ = a.Close()
		}
	}
	p.active = append(live, op)

	return op.Err()
}

// Wait blocks until every started tone has finished or ctx is done.
func (p *Player) Wait(ctx context.Context) error {
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()
	for {
		if !p.playing() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (p *Player) playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, a := range p.active {
		if a.IsPlaying() {
			return true
		}
	}
	return false
}

// Close suspends the audio device.
func (p *Player) Close() error {
	return p.ctx.Suspend()
}
