package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, "iguanignite", cfg.PlayerMonster)
	assert.Equal(t, "carnodusk", cfg.EnemyMonster)
	assert.Equal(t, "monsterbattle.log", cfg.LogFile)
	assert.True(t, cfg.Telemetry)
	assert.Equal(t, "monsterbattle", cfg.HoneycombDataset)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONSTERBATTLE_DEBUG", "true")
	t.Setenv("MONSTERBATTLE_FPS", "60")
	t.Setenv("MONSTERBATTLE_PLAYER_MONSTER", "aquavalor")
	t.Setenv("MONSTERBATTLE_ENEMY_MONSTER", "frostsaber")
	t.Setenv("MONSTERBATTLE_TELEMETRY", "false")
	t.Setenv("HONEYCOMB_MONSTERBATTLE_API_KEY", "key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, "aquavalor", cfg.PlayerMonster)
	assert.Equal(t, "frostsaber", cfg.EnemyMonster)
	assert.False(t, cfg.Telemetry)
	assert.Equal(t, "key", cfg.HoneycombAPIKey)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"fps not a number", "MONSTERBATTLE_FPS", "fast"},
		{"fps zero", "MONSTERBATTLE_FPS", "0"},
		{"fps too high", "MONSTERBATTLE_FPS", "241"},
		{"bad bool", "MONSTERBATTLE_DEBUG", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{FPS: 30, PlayerMonster: "a", EnemyMonster: "b"}
	assert.NoError(t, valid.Validate())

	edge := valid
	edge.FPS = MaxFPS
	assert.NoError(t, edge.Validate())

	noPlayer := valid
	noPlayer.PlayerMonster = ""
	assert.Error(t, noPlayer.Validate())

	noEnemy := valid
	noEnemy.EnemyMonster = ""
	assert.Error(t, noEnemy.Validate())
}
