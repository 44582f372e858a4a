package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Balance holds the economy tuning knobs. An optional ~/.arcadia.yaml
// overrides individual fields; everything else keeps the stock value.
type Balance struct {
	// Wheel of Fortune
	WheelSpinCost        int `yaml:"wheel_spin_cost"`
	WheelResetCost       int `yaml:"wheel_reset_cost"`
	WheelCooldownMinutes int `yaml:"wheel_cooldown_minutes"`

	// Arcade clear rewards
	ArcadeFirstClearShards int `yaml:"arcade_first_clear_shards"`
	ArcadeFirstClearExp    int `yaml:"arcade_first_clear_exp"`
	ArcadeRepeatShards     int `yaml:"arcade_repeat_shards"`
	ArcadeRepeatExp        int `yaml:"arcade_repeat_exp"`

	// Letters
	LetterLockMinutes int `yaml:"letter_lock_minutes"`
}

// Default returns the stock balance configuration.
func Default() Balance {
	return Balance{
		WheelSpinCost:          750,
		WheelResetCost:         2000,
		WheelCooldownMinutes:   12 * 60,
		ArcadeFirstClearShards: 500,
		ArcadeFirstClearExp:    150,
		ArcadeRepeatShards:     100,
		ArcadeRepeatExp:        25,
		LetterLockMinutes:      1,
	}
}

func (b Balance) WheelCooldown() time.Duration {
	return time.Duration(b.WheelCooldownMinutes) * time.Minute
}

func (b Balance) LetterLock() time.Duration {
	return time.Duration(b.LetterLockMinutes) * time.Minute
}

// DefaultPath returns the default override file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".arcadia.yaml"), nil
}

// Load reads the balance config from path, layered over Default().
// A missing file is not an error.
func Load(path string) (Balance, error) {
	b := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return b, nil
		}
		return b, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return b, nil
}
