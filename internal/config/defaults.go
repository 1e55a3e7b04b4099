package config

import (
	_ "embed"
)

//go:embed defaults/fight.yaml
var defaultFightYAML []byte

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/flappy2.yaml
var defaultFlappy2YAML []byte

// DefaultFightConfig returns the default fight configuration.
func DefaultFightConfig() FightConfig {
	return FightConfig{
		World: WorldConfig{Width: 1000, Height: 700},
		Physics: FightPhysics{
			Gravity:     0.5,
			JumpImpulse: -10,
			MoveSpeed:   5,
		},
		Players: FightPlayers{
			Width:  40,
			Height: 60,
			Health: 100,
			Spawn1: PointConfig{X: 50, Y: 600},
			Spawn2: PointConfig{X: 910, Y: 600},
		},
		Bullets: FightBullets{
			Normal: BulletConfig{Width: 10, Height: 5, Speed: 10, Damage: 10, Cooldown: 12},
			Heavy:  BulletConfig{Width: 50, Height: 25, Speed: 15, Damage: 45, Cooldown: 90},
		},
		Blocks: []BlockConfig{
			{X: 0, Y: 660, W: 1000, H: 40, Kind: "floor"},
			{X: 150, Y: 580, W: 150, H: 20, Kind: "platform"},
			{X: 350, Y: 520, W: 200, H: 20, Kind: "platform"},
			{X: 600, Y: 460, W: 150, H: 20, Kind: "platform"},
			{X: 100, Y: 400, W: 100, H: 20, Kind: "platform"},
			{X: 450, Y: 350, W: 120, H: 20, Kind: "platform"},
			{X: 800, Y: 500, W: 100, H: 20, Kind: "platform"},
		},
		Grid: GridConfig{CellSize: 32},
	}
}

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{Width: 400, Height: 600},
		Physics: FlappyPhysics{
			Gravity:     0.3,
			FlapImpulse: -6,
		},
		Bird: BirdConfig{X: 50, StartY: 300, Width: 30, Height: 30},
		Pipes: PipeConfig{
			Width:         70,
			Gap:           150,
			Speed:         3,
			SpawnInterval: 90,
			Margin:        50,
		},
		Difficulty: defaultPipeDifficulty(),
	}
}

// DefaultFlappy2Config returns the default two-player flappy configuration.
func DefaultFlappy2Config() Flappy2Config {
	return Flappy2Config{
		World: WorldConfig{Width: 400, Height: 600},
		Physics: FlappyPhysics{
			Gravity:     0.3,
			FlapImpulse: -7,
		},
		Birds: [2]BirdConfig{
			{X: 50, StartY: 300, Width: 30, Height: 30},
			{X: 100, StartY: 300, Width: 30, Height: 30},
		},
		Pipes: PipeConfig{
			Width:         70,
			Gap:           150,
			Speed:         3,
			SpawnInterval: 90,
			Margin:        50,
		},
		Difficulty: defaultPipeDifficulty(),
	}
}

func defaultPipeDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.0,
		Progression: ProgressionConfig{
			Type:  "score",
			MaxAt: 50,
		},
		Scaling: ScalingConfig{
			SpeedMultiplier:   1.0,
			GapReduction:      40,
			IntervalReduction: 30,
			MinGap:            90,
			MinInterval:       45,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "fight":
		return defaultFightYAML
	case "flappy":
		return defaultFlappyYAML
	case "flappy2":
		return defaultFlappy2YAML
	default:
		return nil
	}
}
