package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var circle CircleConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("circle"), &circle))
	assert.Equal(t, DefaultCircleConfig(), circle)

	var flight FlightConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("flight"), &flight))
	assert.Equal(t, DefaultFlightConfig(), flight)

	var skirmish SkirmishConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("skirmish"), &skirmish))
	assert.Equal(t, DefaultSkirmishConfig(), skirmish)

	assert.Nil(t, GetDefaultYAML("unknown"))
}

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultCircleConfig().Validate())
	assert.NoError(t, DefaultFlightConfig().Validate())
	assert.NoError(t, DefaultSkirmishConfig().Validate())
}

func TestSkirmishValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SkirmishConfig)
	}{
		{"zero world", func(c *SkirmishConfig) { c.World.Width = 0 }},
		{"viewport larger than world", func(c *SkirmishConfig) { c.World.ViewWidth = 5000 }},
		{"friction above one", func(c *SkirmishConfig) { c.Physics.Friction = 1.5 }},
		{"negative speed", func(c *SkirmishConfig) { c.Physics.MaxSpeed = -1 }},
		{"no bullets", func(c *SkirmishConfig) { c.Weapons.MaxBullets = 0 }},
		{"inverted cooldown", func(c *SkirmishConfig) { c.Enemies.CooldownMax = 0.1 }},
		{"inverted target sizes", func(c *SkirmishConfig) { c.Targets.MaxSize = 1 }},
		{"reverse beyond follow", func(c *SkirmishConfig) { c.Enemies.ReverseDistance = 500 }},
		{"lead chance above one", func(c *SkirmishConfig) { c.Enemies.LeadChance = 2 }},
		{"unknown progression", func(c *SkirmishConfig) { c.Difficulty.Progression.Type = "lunar" }},
		{"no shields", func(c *SkirmishConfig) { c.Gameplay.Shields = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSkirmishConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestCircleValidate(t *testing.T) {
	cfg := DefaultCircleConfig()
	cfg.Circle.Radius = 400
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestLoadCustomYAMLOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skirmish.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gameplay:\n  shields: 9\n"), 0o644))

	cfg, err := LoadSkirmish(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Gameplay.Shields)
	// Keys not in the file keep their defaults
	assert.Equal(t, 2000.0, cfg.World.Width)
	assert.Equal(t, 0.995, cfg.Physics.Friction)
}

func TestLoadCustomTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flight.toml")
	data := "[physics]\nrotation_speed = 120.0\n\n[debris]\npush_force = 90.0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFlight(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Physics.RotationSpeed)
	assert.Equal(t, 90.0, cfg.Debris.PushForce)
	assert.Equal(t, 5.0, cfg.Ship.Size)
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCircle(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "missing custom file should fail")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("screen: [unclosed"), 0o644))
	_, err = LoadCircle(bad)
	assert.Error(t, err, "malformed YAML should fail")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("circle:\n  radius: -3\n"), 0o644))
	_, err = LoadCircle(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadSkirmish("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSkirmishConfig(), cfg)
}

func TestLoadSearchesLocalConfigs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "circle.toml"), []byte("[circle]\nstep = 5.0\n"), 0o644))

	cfg, err := LoadCircle("")
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.Circle.Step)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "Normal", " hard ", "fixed"} {
		_, err := ParsePreset(s)
		assert.NoError(t, err, s)
	}
	_, err := ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApplySkirmishPreset(t *testing.T) {
	cfg := DefaultSkirmishConfig()
	ApplySkirmishPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.Equal(t, 3, cfg.Gameplay.Shields)

	cfg = DefaultSkirmishConfig()
	ApplySkirmishPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	cfg = DefaultSkirmishConfig()
	ApplySkirmishPreset(&cfg, "")
	assert.Equal(t, DefaultSkirmishConfig(), cfg)
}
