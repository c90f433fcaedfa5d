package config

import "math"

// Pressure is how hard the enemies push at one moment of a run.
type Pressure struct {
	Level     float64 // 0 at the initial level's floor, 1 at full difficulty
	FireScale float64 // multiplies every enemy's shot chance
	ShipCap   int     // enemy ships allowed alive at once
}

// DifficultyManager ramps enemy pressure with score or elapsed ticks.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a manager for cfg. InitialLevel is clamped
// to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		floor: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	switch d.cfg.Progression.Type {
	case "score", "time":
		return d.cfg.Enabled
	}
	return false
}

// progress is how far the run is toward max_at, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	at := float64(score)
	if d.cfg.Progression.Type == "time" {
		at = float64(ticks)
	}
	return clampF(at/math.Max(float64(d.cfg.Progression.MaxAt), 1), 0, 1)
}

// Level returns the difficulty level in [0, 1]. It starts at the initial
// level and reaches 1 at max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	return d.floor + d.progress(score, ticks)*(1-d.floor)
}

// At returns the enemy pressure for a run with the given score and age.
// Extra ships arrive in whole steps as the level rises.
func (d *DifficultyManager) At(baseCap, score, ticks int) Pressure {
	level := d.Level(score, ticks)
	return Pressure{
		Level:     level,
		FireScale: 1 + level*d.cfg.Scaling.FireMultiplier,
		ShipCap:   baseCap + int(math.Floor(level*float64(d.cfg.Scaling.ExtraShips))),
	}
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
