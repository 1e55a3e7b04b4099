package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFight loads the fight configuration.
// Search order: customPath -> ~/.flapfight/configs/fight.yaml -> ./configs/fight.yaml -> embedded default
func LoadFight(customPath string) (FightConfig, error) {
	cfg, err := load("fight", customPath, defaultFightYAML, DefaultFightConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateFight(cfg); err != nil {
		return cfg, fmt.Errorf("invalid fight config: %w", err)
	}
	return cfg, nil
}

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.flapfight/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := load("flappy", customPath, defaultFlappyYAML, DefaultFlappyConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateFlappy(cfg); err != nil {
		return cfg, fmt.Errorf("invalid flappy config: %w", err)
	}
	return cfg, nil
}

// LoadFlappy2 loads the two-player flappy configuration.
// Search order: customPath -> ~/.flapfight/configs/flappy2.yaml -> ./configs/flappy2.yaml -> embedded default
func LoadFlappy2(customPath string) (Flappy2Config, error) {
	cfg, err := load("flappy2", customPath, defaultFlappy2YAML, DefaultFlappy2Config)
	if err != nil {
		return cfg, err
	}
	if err := ValidateFlappy2(cfg); err != nil {
		return cfg, fmt.Errorf("invalid flappy2 config: %w", err)
	}
	return cfg, nil
}

// load decodes a game config on top of its hardcoded defaults, so a partial
// YAML file only overrides the keys it names.
func load[T any](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flapfight", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ApplyFlappy2Preset modifies the config based on a difficulty preset.
func ApplyFlappy2Preset(cfg *Flappy2Config, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
}

// ApplyFightPreset adjusts starting health for a difficulty preset.
// Fight has no progression, so fixed and normal leave it untouched.
func ApplyFightPreset(cfg *FightConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Players.Health = 150
	case DifficultyHard:
		cfg.Players.Health = 60
	}
}
