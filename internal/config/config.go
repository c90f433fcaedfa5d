// Package config provides YAML and TOML game configuration loading and
// difficulty management for the space demos.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// CircleConfig contains all configuration for the circle toy.
type CircleConfig struct {
	Screen ScreenConfig `yaml:"screen" toml:"screen"`
	Circle CircleBody   `yaml:"circle" toml:"circle"`
}

// ScreenConfig is the logical drawing surface in world units.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// CircleBody defines the moving circle.
type CircleBody struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Step   float64 `yaml:"step" toml:"step"` // units moved per tick per held direction
}

// FlightConfig contains all configuration for the decorated space flight.
type FlightConfig struct {
	World   WorldConfig   `yaml:"world" toml:"world"`
	Physics PhysicsConfig `yaml:"physics" toml:"physics"`
	Ship    ShipConfig    `yaml:"ship" toml:"ship"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Stars   StarsConfig   `yaml:"stars" toml:"stars"`
	Scenery SceneryConfig `yaml:"scenery" toml:"scenery"`
	Debris  DebrisConfig  `yaml:"debris" toml:"debris"`
}

// SkirmishConfig contains all configuration for the combat demo.
type SkirmishConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Weapons    WeaponsConfig    `yaml:"weapons" toml:"weapons"`
	Enemies    EnemiesConfig    `yaml:"enemies" toml:"enemies"`
	Targets    TargetsConfig    `yaml:"targets" toml:"targets"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// WorldConfig defines the world rectangle and the visible viewport.
type WorldConfig struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	ViewWidth  float64 `yaml:"view_width" toml:"view_width"`
	ViewHeight float64 `yaml:"view_height" toml:"view_height"`
}

// PhysicsConfig defines ship movement parameters.
type PhysicsConfig struct {
	Acceleration  float64 `yaml:"acceleration" toml:"acceleration"`     // units/s² while thrusting
	Friction      float64 `yaml:"friction" toml:"friction"`             // velocity multiplier per frame
	MaxSpeed      float64 `yaml:"max_speed" toml:"max_speed"`           // speed clamp
	MaxVelocity   float64 `yaml:"max_velocity" toml:"max_velocity"`     // per-component clamp
	RotationSpeed float64 `yaml:"rotation_speed" toml:"rotation_speed"` // degrees/s
	MaxFrameMS    int     `yaml:"max_frame_ms" toml:"max_frame_ms"`     // dt clamp
}

// ShipConfig defines ship dimensions.
type ShipConfig struct {
	Size float64 `yaml:"size" toml:"size"`
}

// CameraConfig defines camera smoothing.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing" toml:"smoothing"` // fraction of the gap closed per update
}

// StarsConfig defines the background starfield.
type StarsConfig struct {
	Count       int     `yaml:"count" toml:"count"`
	BrightRatio float64 `yaml:"bright_ratio" toml:"bright_ratio"`
}

// SceneryConfig sets how many of each decoration the flight scene scatters.
type SceneryConfig struct {
	Planets      int `yaml:"planets" toml:"planets"`
	FogBanks     int `yaml:"fog_banks" toml:"fog_banks"`
	Anomalies    int `yaml:"anomalies" toml:"anomalies"`
	Asteroids    int `yaml:"asteroids" toml:"asteroids"`
	Stations     int `yaml:"stations" toml:"stations"`
	Pulsars      int `yaml:"pulsars" toml:"pulsars"`
	Beacons      int `yaml:"beacons" toml:"beacons"`
	DebrisFields int `yaml:"debris_fields" toml:"debris_fields"`
	SolarFlares  int `yaml:"solar_flares" toml:"solar_flares"`
}

// DebrisConfig defines debris fields and their pushback.
type DebrisConfig struct {
	Pieces     int     `yaml:"pieces" toml:"pieces"`
	Spread     float64 `yaml:"spread" toml:"spread"` // pieces lie within ±spread of the field centre
	Radius     float64 `yaml:"radius" toml:"radius"` // quick-reject radius around the centre
	Margin     float64 `yaml:"margin" toml:"margin"`
	PushForce  float64 `yaml:"push_force" toml:"push_force"`
	IntervalMS int     `yaml:"interval_ms" toml:"interval_ms"`
}

// WeaponsConfig defines player projectiles.
type WeaponsConfig struct {
	BulletSpeed float64 `yaml:"bullet_speed" toml:"bullet_speed"`
	Cooldown    float64 `yaml:"cooldown" toml:"cooldown"` // seconds between player shots
	MaxBullets  int     `yaml:"max_bullets" toml:"max_bullets"`
}

// EnemiesConfig defines enemy ship AI.
type EnemiesConfig struct {
	MaxShips         int     `yaml:"max_ships" toml:"max_ships"`
	FollowDistance   float64 `yaml:"follow_distance" toml:"follow_distance"`
	ReverseDistance  float64 `yaml:"reverse_distance" toml:"reverse_distance"`
	TurnFactor       float64 `yaml:"turn_factor" toml:"turn_factor"` // fraction of player rotation speed
	SeparationRadius float64 `yaml:"separation_radius" toml:"separation_radius"`
	CollisionFactor  float64 `yaml:"collision_factor" toml:"collision_factor"` // no-touch radius in ship sizes
	EmergencyForce   float64 `yaml:"emergency_force" toml:"emergency_force"`
	PursuitWeight    float64 `yaml:"pursuit_weight" toml:"pursuit_weight"`
	SeparationWeight float64 `yaml:"separation_weight" toml:"separation_weight"`
	TurnThreshold    float64 `yaml:"turn_threshold" toml:"turn_threshold"` // degrees
	FireRange        float64 `yaml:"fire_range" toml:"fire_range"`
	CooldownMin      float64 `yaml:"cooldown_min" toml:"cooldown_min"`
	CooldownMax      float64 `yaml:"cooldown_max" toml:"cooldown_max"`
	LeadChance       float64 `yaml:"lead_chance" toml:"lead_chance"`
	SpawnDistance    float64 `yaml:"spawn_distance" toml:"spawn_distance"`
	SpawnJitter      float64 `yaml:"spawn_jitter" toml:"spawn_jitter"`
	SpawnMargin      float64 `yaml:"spawn_margin" toml:"spawn_margin"`
}

// TargetsConfig defines static targets.
type TargetsConfig struct {
	MaxTargets  int     `yaml:"max_targets" toml:"max_targets"`
	MinSize     float64 `yaml:"min_size" toml:"min_size"`
	MaxSize     float64 `yaml:"max_size" toml:"max_size"`
	MinDistance float64 `yaml:"min_distance" toml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance" toml:"max_distance"`
	Margin      float64 `yaml:"margin" toml:"margin"`
}

// CollisionConfig defines the collision throttle.
type CollisionConfig struct {
	IntervalMS int `yaml:"interval_ms" toml:"interval_ms"`
}

// GameplayConfig defines scoring and shields.
type GameplayConfig struct {
	Shields     int `yaml:"shields" toml:"shields"`
	TargetScore int `yaml:"target_score" toml:"target_score"`
	ShipScore   int `yaml:"ship_score" toml:"ship_score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FireMultiplier float64 `yaml:"fire_multiplier" toml:"fire_multiplier"` // Added to enemy shot chance multiplier at max difficulty
	ExtraShips     int     `yaml:"extra_ships" toml:"extra_ships"`         // Enemy ships added to the cap at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string is
// accepted and means "keep the config file's difficulty".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed): %w", s, ErrInvalid)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
