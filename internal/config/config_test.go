package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBalance(t *testing.T) {
	b := Default()
	assert.Equal(t, 750, b.WheelSpinCost)
	assert.Equal(t, 2000, b.WheelResetCost)
	assert.Equal(t, 12*time.Hour, b.WheelCooldown())
	assert.Equal(t, time.Minute, b.LetterLock())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), b)
}

func TestLoadOverridesIndividualFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcadia.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"wheel_spin_cost: 100\nwheel_cooldown_minutes: 5\n"), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, b.WheelSpinCost)
	assert.Equal(t, 5*time.Minute, b.WheelCooldown())
	// Untouched fields keep their defaults.
	assert.Equal(t, 2000, b.WheelResetCost)
	assert.Equal(t, Default().ArcadeFirstClearShards, b.ArcadeFirstClearShards)
}

func TestLoadBadYAMLFailsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcadia.yaml")
	require.NoError(t, os.WriteFile(path, []byte("wheel_spin_cost: [nope"), 0o644))

	b, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, Default(), b)
}
