// Package audio synthesizes the demos' sound effects with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Effect names a sound effect.
type Effect int

const (
	EffectLaser Effect = iota
	EffectEnemyLaser
	EffectExplosion
	EffectHit
	EffectThud
)

func (e Effect) String() string {
	switch e {
	case EffectLaser:
		return "laser"
	case EffectEnemyLaser:
		return "enemy_laser"
	case EffectExplosion:
		return "explosion"
	case EffectHit:
		return "hit"
	case EffectThud:
		return "thud"
	default:
		return "unknown"
	}
}

// Duration returns how long e plays.
func (e Effect) Duration() time.Duration {
	switch e {
	case EffectLaser, EffectEnemyLaser:
		return 90 * time.Millisecond
	case EffectExplosion:
		return 400 * time.Millisecond
	case EffectHit:
		return 200 * time.Millisecond
	default:
		return 120 * time.Millisecond
	}
}

// Streamer builds a fresh streamer for e at rate sr. It ends after e.Duration.
func (e Effect) Streamer(sr beep.SampleRate, rng *rand.Rand) beep.Streamer {
	n := sr.N(e.Duration())
	switch e {
	case EffectLaser:
		return beep.Take(n, &sweep{sr: sr, from: 1800, to: 400, total: n, gain: 0.25})
	case EffectEnemyLaser:
		return beep.Take(n, &sweep{sr: sr, from: 900, to: 250, total: n, gain: 0.15})
	case EffectExplosion:
		return beep.Take(n, &noiseBurst{sr: sr, rng: rng, decay: 9, rumble: 60, gain: 0.5})
	case EffectHit:
		return beep.Take(n, &buzz{sr: sr, freq: 110, total: n, gain: 0.35})
	default:
		return beep.Take(n, &noiseBurst{sr: sr, rng: rng, decay: 25, rumble: 45, gain: 0.2})
	}
}

// sweep is a sine whose pitch slides linearly from one frequency to another.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	gain     float64

	pos   int
	phase float64
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		frac := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*frac
		s.phase += freq / float64(s.sr)
		s.phase -= math.Floor(s.phase)

		v := s.gain * (1 - frac) * math.Sin(2*math.Pi*s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noiseBurst is white noise over a low rumble with an exponential decay.
type noiseBurst struct {
	sr     beep.SampleRate
	rng    *rand.Rand
	decay  float64
	rumble float64 // Hz
	gain   float64

	pos int
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		env := math.Exp(-t * b.decay)
		noise := b.rng.Float64()*2 - 1
		v := b.gain * env * (0.6*noise + 0.4*math.Sin(2*math.Pi*b.rumble*t))
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// buzz is a square-ish tone built from odd harmonics with a linear fade.
type buzz struct {
	sr    beep.SampleRate
	freq  float64
	total int
	gain  float64

	pos int
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		fade := 1 - float64(b.pos)/float64(b.total)
		v := math.Sin(2*math.Pi*b.freq*t) +
			math.Sin(2*math.Pi*b.freq*3*t)/3 +
			math.Sin(2*math.Pi*b.freq*5*t)/5
		v *= b.gain * fade * 0.7
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }
