// Package config provides YAML-based game configuration loading and
// difficulty management for the flapfight games.
//
// All lengths are world pixels and all durations are ticks.
package config

// WorldConfig is the size of a game's play area.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FightConfig contains all configuration for the fight game.
type FightConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics FightPhysics  `yaml:"physics"`
	Players FightPlayers  `yaml:"players"`
	Bullets FightBullets  `yaml:"bullets"`
	Blocks  []BlockConfig `yaml:"blocks"`
	Grid    GridConfig    `yaml:"grid"`
}

// FightPhysics defines per-tick movement constants.
type FightPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MoveSpeed    float64 `yaml:"move_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the clamp
}

// FightPlayers defines the fighters' size, health and spawn points.
type FightPlayers struct {
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Health int         `yaml:"health"`
	Spawn1 PointConfig `yaml:"spawn1"`
	Spawn2 PointConfig `yaml:"spawn2"`
}

// PointConfig is a world position.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FightBullets holds both weapon kinds.
type FightBullets struct {
	Normal BulletConfig `yaml:"normal"`
	Heavy  BulletConfig `yaml:"heavy"`
}

// BulletConfig defines one weapon.
type BulletConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Damage   int     `yaml:"damage"`
	Cooldown int     `yaml:"cooldown"` // Ticks that must pass between shots
	TTL      int     `yaml:"ttl"`      // 0 = until it leaves the screen
}

// BlockConfig is one static platform. Kind only affects color.
type BlockConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
	Kind string  `yaml:"kind"`
}

// GridConfig tunes the broad-phase obstacle grid.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// FlappyConfig contains all configuration for the single-player Flappy Bird game.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyPhysics defines physics parameters shared by both flappy games.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 disables the clamp
}

// BirdConfig defines bird size and start position.
type BirdConfig struct {
	X      float64 `yaml:"x"`
	StartY float64 `yaml:"start_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PipeConfig defines pipe generation.
type PipeConfig struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	Margin        float64 `yaml:"margin"`         // Minimum pipe height above and below the gap
}

// Flappy2Config contains all configuration for the two-player flappy game.
type Flappy2Config struct {
	World      WorldConfig      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Birds      [2]BirdConfig    `yaml:"birds"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      float64 `yaml:"gap_reduction"`      // Gap shrink in pixels at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval shrink in ticks at max difficulty
	MinGap            float64 `yaml:"min_gap"`
	MinInterval       int     `yaml:"min_interval"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset. Empty means no override.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
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

// ApplyPreset modifies a difficulty block based on a preset.
func ApplyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
	if d.Progression.Type == "" || d.Progression.Type == "none" {
		d.Progression.Type = "score"
	}
}
