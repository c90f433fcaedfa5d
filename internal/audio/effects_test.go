package audio

import (
	"math/rand"
	"testing"

	"github.com/gopxl/beep"

	"github.com/StevenRydell/littlespace/internal/core"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
		if len(out) > int(sampleRate)*2 {
			t.Fatal("streamer did not end")
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	return out
}

func TestEffectsLengthAndRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, fx := range []Effect{EffectLaser, EffectEnemyLaser, EffectExplosion, EffectHit, EffectThud} {
		t.Run(fx.String(), func(t *testing.T) {
			samples := drain(t, fx.Streamer(sampleRate, rng))

			if want := sampleRate.N(fx.Duration()); len(samples) != want {
				t.Errorf("Expected %d samples, got %d", want, len(samples))
			}

			loud := false
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[1] < -1 || s[1] > 1 {
					t.Fatalf("Sample %d out of range: %v", i, s)
				}
				if s[0] != s[1] {
					t.Fatalf("Sample %d is not mono: %v", i, s)
				}
				if s[0] > 0.01 || s[0] < -0.01 {
					loud = true
				}
			}
			if !loud {
				t.Error("Expected an audible effect")
			}
		})
	}
}

func TestSweepFadesOut(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	samples := drain(t, EffectLaser.Streamer(sampleRate, rng))

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			if s[0] > m {
				m = s[0]
			} else if -s[0] > m {
				m = -s[0]
			}
		}
		return m
	}

	n := len(samples)
	if head, tail := peak(0, n/4), peak(3*n/4, n); tail >= head {
		t.Errorf("Expected the laser to fade, head peak %f, tail peak %f", head, tail)
	}
}

func TestEffectFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Effect
		ok   bool
	}{
		{core.EventShot, EffectLaser, true},
		{core.EventEnemyShot, EffectEnemyLaser, true},
		{core.EventTargetDestroyed, EffectExplosion, true},
		{core.EventShipDestroyed, EffectExplosion, true},
		{core.EventPlayerHit, EffectHit, true},
		{core.EventGameOver, EffectHit, true},
		{core.EventDebrisPush, EffectThud, true},
		{core.EventFault, 0, false},
	}

	for _, tt := range tests {
		got, ok := EffectFor(tt.kind)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("EffectFor(%v) = %v, %v; want %v, %v", tt.kind, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPlayerIgnoresPlayBeforeInit(t *testing.T) {
	p := NewPlayer(0)
	p.PlayEvents([]core.Event{{Kind: core.EventShot}, {Kind: core.EventShipDestroyed}})

	if p.Voices() != 0 {
		t.Errorf("Expected no voices before Init, got %d", p.Voices())
	}

	// Close without Init is a no-op
	p.Close()
}
