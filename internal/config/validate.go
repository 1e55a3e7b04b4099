package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

// ValidateFight rejects configs the physics core cannot run.
func ValidateFight(cfg FightConfig) error {
	if err := validateWorld(cfg.World); err != nil {
		return err
	}
	if cfg.Players.Width <= 0 || cfg.Players.Height <= 0 {
		return fmt.Errorf("players: size %gx%g: %w", cfg.Players.Width, cfg.Players.Height, ErrInvalid)
	}
	if cfg.Players.Health <= 0 {
		return fmt.Errorf("players: health %d: %w", cfg.Players.Health, ErrInvalid)
	}
	weapons := []struct {
		name string
		b    BulletConfig
	}{{"normal", cfg.Bullets.Normal}, {"heavy", cfg.Bullets.Heavy}}
	for _, w := range weapons {
		name, b := w.name, w.b
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("bullets.%s: size %gx%g: %w", name, b.Width, b.Height, ErrInvalid)
		}
		if b.Speed <= 0 {
			return fmt.Errorf("bullets.%s: speed %g: %w", name, b.Speed, ErrInvalid)
		}
		if b.Cooldown < 0 || b.TTL < 0 {
			return fmt.Errorf("bullets.%s: negative cooldown or ttl: %w", name, ErrInvalid)
		}
	}
	for i, b := range cfg.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("blocks[%d]: size %gx%g: %w", i, b.W, b.H, ErrInvalid)
		}
	}
	return nil
}

// ValidateFlappy rejects configs the physics core cannot run.
func ValidateFlappy(cfg FlappyConfig) error {
	if err := validateWorld(cfg.World); err != nil {
		return err
	}
	if err := validateBird("bird", cfg.Bird); err != nil {
		return err
	}
	return validatePipes(cfg.Pipes, cfg.World)
}

// ValidateFlappy2 rejects configs the physics core cannot run.
func ValidateFlappy2(cfg Flappy2Config) error {
	if err := validateWorld(cfg.World); err != nil {
		return err
	}
	for i, b := range cfg.Birds {
		if err := validateBird(fmt.Sprintf("birds[%d]", i), b); err != nil {
			return err
		}
	}
	return validatePipes(cfg.Pipes, cfg.World)
}

func validateWorld(w WorldConfig) error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("world: size %gx%g: %w", w.Width, w.Height, ErrInvalid)
	}
	return nil
}

func validateBird(name string, b BirdConfig) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%s: size %gx%g: %w", name, b.Width, b.Height, ErrInvalid)
	}
	return nil
}

func validatePipes(p PipeConfig, w WorldConfig) error {
	if p.Width <= 0 || p.Gap <= 0 {
		return fmt.Errorf("pipes: width %g gap %g: %w", p.Width, p.Gap, ErrInvalid)
	}
	if p.SpawnInterval <= 0 {
		return fmt.Errorf("pipes: spawn_interval %d: %w", p.SpawnInterval, ErrInvalid)
	}
	if p.Gap+2*p.Margin > w.Height {
		return fmt.Errorf("pipes: gap %g with margin %g does not fit height %g: %w", p.Gap, p.Margin, w.Height, ErrInvalid)
	}
	return nil
}
