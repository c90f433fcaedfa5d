package config

import "fmt"

func positive(field string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v: %w", field, v, ErrInvalid)
	}
	return nil
}

func nonNegative(field string, v float64) error {
	if v < 0 {
		return fmt.Errorf("%s must not be negative, got %v: %w", field, v, ErrInvalid)
	}
	return nil
}

func fraction(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be within [0, 1], got %v: %w", field, v, ErrInvalid)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the circle toy configuration.
func (c CircleConfig) Validate() error {
	if err := firstErr(
		positive("screen.width", c.Screen.Width),
		positive("screen.height", c.Screen.Height),
		positive("circle.radius", c.Circle.Radius),
		nonNegative("circle.step", c.Circle.Step),
	); err != nil {
		return err
	}
	if 2*c.Circle.Radius > c.Screen.Width || 2*c.Circle.Radius > c.Screen.Height {
		return fmt.Errorf("circle.radius %v does not fit the screen: %w", c.Circle.Radius, ErrInvalid)
	}
	return nil
}

// Validate checks the world and viewport sizes.
func (w WorldConfig) Validate() error {
	if err := firstErr(
		positive("world.width", w.Width),
		positive("world.height", w.Height),
		positive("world.view_width", w.ViewWidth),
		positive("world.view_height", w.ViewHeight),
	); err != nil {
		return err
	}
	if w.ViewWidth > w.Width || w.ViewHeight > w.Height {
		return fmt.Errorf("viewport %vx%v is larger than world %vx%v: %w",
			w.ViewWidth, w.ViewHeight, w.Width, w.Height, ErrInvalid)
	}
	return nil
}

// Validate checks ship movement parameters.
func (p PhysicsConfig) Validate() error {
	if err := firstErr(
		positive("physics.acceleration", p.Acceleration),
		positive("physics.max_speed", p.MaxSpeed),
		positive("physics.max_velocity", p.MaxVelocity),
		positive("physics.rotation_speed", p.RotationSpeed),
		positive("physics.max_frame_ms", float64(p.MaxFrameMS)),
	); err != nil {
		return err
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("physics.friction must be within (0, 1], got %v: %w", p.Friction, ErrInvalid)
	}
	return nil
}

// Validate checks the flight configuration.
func (c FlightConfig) Validate() error {
	return firstErr(
		c.World.Validate(),
		c.Physics.Validate(),
		positive("ship.size", c.Ship.Size),
		fraction("camera.smoothing", c.Camera.Smoothing),
		nonNegative("stars.count", float64(c.Stars.Count)),
		fraction("stars.bright_ratio", c.Stars.BrightRatio),
		nonNegative("debris.pieces", float64(c.Debris.Pieces)),
		nonNegative("debris.spread", c.Debris.Spread),
		positive("debris.radius", c.Debris.Radius),
		nonNegative("debris.margin", c.Debris.Margin),
		nonNegative("debris.push_force", c.Debris.PushForce),
		positive("debris.interval_ms", float64(c.Debris.IntervalMS)),
	)
}

// Validate checks the skirmish configuration.
func (c SkirmishConfig) Validate() error {
	if err := firstErr(
		c.World.Validate(),
		c.Physics.Validate(),
		positive("ship.size", c.Ship.Size),
		fraction("camera.smoothing", c.Camera.Smoothing),
		nonNegative("stars.count", float64(c.Stars.Count)),
		fraction("stars.bright_ratio", c.Stars.BrightRatio),
		positive("weapons.bullet_speed", c.Weapons.BulletSpeed),
		nonNegative("weapons.cooldown", c.Weapons.Cooldown),
		positive("weapons.max_bullets", float64(c.Weapons.MaxBullets)),
		nonNegative("enemies.max_ships", float64(c.Enemies.MaxShips)),
		positive("enemies.separation_radius", c.Enemies.SeparationRadius),
		positive("enemies.fire_range", c.Enemies.FireRange),
		nonNegative("enemies.cooldown_min", c.Enemies.CooldownMin),
		fraction("enemies.lead_chance", c.Enemies.LeadChance),
		nonNegative("targets.max_targets", float64(c.Targets.MaxTargets)),
		positive("targets.min_size", c.Targets.MinSize),
		positive("collision.interval_ms", float64(c.Collision.IntervalMS)),
		positive("gameplay.shields", float64(c.Gameplay.Shields)),
		fraction("difficulty.initial_level", c.Difficulty.InitialLevel),
	); err != nil {
		return err
	}

	if c.Enemies.ReverseDistance > c.Enemies.FollowDistance {
		return fmt.Errorf("enemies.reverse_distance %v exceeds follow_distance %v: %w",
			c.Enemies.ReverseDistance, c.Enemies.FollowDistance, ErrInvalid)
	}
	if c.Enemies.CooldownMax < c.Enemies.CooldownMin {
		return fmt.Errorf("enemies.cooldown_max %v is below cooldown_min %v: %w",
			c.Enemies.CooldownMax, c.Enemies.CooldownMin, ErrInvalid)
	}
	if c.Targets.MaxSize < c.Targets.MinSize {
		return fmt.Errorf("targets.max_size %v is below min_size %v: %w",
			c.Targets.MaxSize, c.Targets.MinSize, ErrInvalid)
	}
	if c.Targets.MaxDistance < c.Targets.MinDistance {
		return fmt.Errorf("targets.max_distance %v is below min_distance %v: %w",
			c.Targets.MaxDistance, c.Targets.MinDistance, ErrInvalid)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "time", "none":
	default:
		return fmt.Errorf("difficulty.progression.type %q unknown: %w", c.Difficulty.Progression.Type, ErrInvalid)
	}
	return nil
}
