package config

import (
	_ "embed"
)

//go:embed defaults/circle.yaml
var defaultCircleYAML []byte

//go:embed defaults/flight.yaml
var defaultFlightYAML []byte

//go:embed defaults/skirmish.yaml
var defaultSkirmishYAML []byte

// DefaultCircleConfig returns the default circle toy configuration.
func DefaultCircleConfig() CircleConfig {
	return CircleConfig{
		Screen: ScreenConfig{
			Width:  640,
			Height: 360,
		},
		Circle: CircleBody{
			Radius: 10,
			Step:   3,
		},
	}
}

func defaultWorld() WorldConfig {
	return WorldConfig{
		Width:      2000,
		Height:     2000,
		ViewWidth:  640,
		ViewHeight: 360,
	}
}

// DefaultFlightConfig returns the default space flight configuration.
func DefaultFlightConfig() FlightConfig {
	return FlightConfig{
		World: defaultWorld(),
		Physics: PhysicsConfig{
			Acceleration:  240,
			Friction:      0.995,
			MaxSpeed:      50,
			MaxVelocity:   1000,
			RotationSpeed: 180,
			MaxFrameMS:    100,
		},
		Ship:   ShipConfig{Size: 5},
		Camera: CameraConfig{Smoothing: 0.1},
		Stars: StarsConfig{
			Count:       200,
			BrightRatio: 0.2,
		},
		Scenery: SceneryConfig{
			Planets:      4,
			FogBanks:     3,
			Anomalies:    2,
			Asteroids:    3,
			Stations:     5,
			Pulsars:      1,
			Beacons:      4,
			DebrisFields: 3,
			SolarFlares:  1,
		},
		Debris: DebrisConfig{
			Pieces:     8,
			Spread:     30,
			Radius:     60,
			Margin:     20,
			PushForce:  150,
			IntervalMS: 16,
		},
	}
}

// DefaultSkirmishConfig returns the default combat demo configuration.
func DefaultSkirmishConfig() SkirmishConfig {
	return SkirmishConfig{
		World: defaultWorld(),
		Physics: PhysicsConfig{
			Acceleration:  240,
			Friction:      0.995,
			MaxSpeed:      50,
			MaxVelocity:   1000,
			RotationSpeed: 90,
			MaxFrameMS:    100,
		},
		Ship:   ShipConfig{Size: 3.75},
		Camera: CameraConfig{Smoothing: 0.1},
		Stars: StarsConfig{
			Count:       300,
			BrightRatio: 0.2,
		},
		Weapons: WeaponsConfig{
			BulletSpeed: 200,
			Cooldown:    0.5,
			MaxBullets:  8,
		},
		Enemies: EnemiesConfig{
			MaxShips:         2,
			FollowDistance:   100,
			ReverseDistance:  50,
			TurnFactor:       0.8,
			SeparationRadius: 150,
			CollisionFactor:  3,
			EmergencyForce:   10,
			PursuitWeight:    0.4,
			SeparationWeight: 8,
			TurnThreshold:    5,
			FireRange:        200,
			CooldownMin:      0.8,
			CooldownMax:      2.5,
			LeadChance:       0.7,
			SpawnDistance:    150,
			SpawnJitter:      50,
			SpawnMargin:      50,
		},
		Targets: TargetsConfig{
			MaxTargets:  2,
			MinSize:     5,
			MaxSize:     15,
			MinDistance: 50,
			MaxDistance: 200,
			Margin:      25,
		},
		Collision: CollisionConfig{IntervalMS: 16},
		Gameplay: GameplayConfig{
			Shields:     5,
			TargetScore: 10,
			ShipScore:   25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				FireMultiplier: 1.0,
				ExtraShips:     2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "circle":
		return defaultCircleYAML
	case "flight":
		return defaultFlightYAML
	case "skirmish":
		return defaultSkirmishYAML
	default:
		return nil
	}
}
