package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/StevenRydell/littlespace/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps how many effects may overlap. Shots at 60fps would
// otherwise pile up into noise.
const maxVoices = 8

// EffectFor maps a step event to its sound. Events without a sound return false.
func EffectFor(k core.EventKind) (Effect, bool) {
	switch k {
	case core.EventShot:
		return EffectLaser, true
	case core.EventEnemyShot:
		return EffectEnemyLaser, true
	case core.EventTargetDestroyed, core.EventShipDestroyed:
		return EffectExplosion, true
	case core.EventPlayerHit, core.EventGameOver:
		return EffectHit, true
	case core.EventDebrisPush:
		return EffectThud, true
	}
	return 0, false
}

// Player plays effects for step events through the system speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	rng    *rand.Rand
	ready  bool

	// Decremented on the speaker goroutine, so kept outside mu.
	voices atomic.Int32
}

// NewPlayer creates a player. Volume is in beep's log2 units; 0 is unchanged.
func NewPlayer(volume float64) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   volume,
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init opens the speaker. It is safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.ready = true
	return nil
}

// PlayEvents starts the sound of each event that has one.
func (p *Player) PlayEvents(events []core.Event) {
	for _, e := range events {
		if fx, ok := EffectFor(e.Kind); ok {
			p.Play(fx)
		}
	}
}

// Play starts fx unless too many effects are already sounding.
func (p *Player) Play(fx Effect) {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()

	if !ready || p.voices.Load() >= maxVoices {
		return
	}
	p.voices.Add(1)

	s := beep.Seq(fx.Streamer(sampleRate, p.rng), beep.Callback(p.release))
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Voices returns how many effects are sounding.
func (p *Player) Voices() int {
	return int(p.voices.Load())
}

// release runs on the speaker goroutine when an effect ends.
func (p *Player) release() {
	p.voices.Add(-1)
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.voices.Store(0)
	p.ready = false
}
