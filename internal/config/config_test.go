package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/wordrush/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Nil(t, cfg.Game.Difficulty)
	require.Empty(t, cfg.Levels)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigAppliesLevelOverrides(t *testing.T) {
	path := writeConfig(t, `
[game]
difficulty = "hard"
words-file = "/tmp/words.txt"

[levels.hard]
base-time = 30

[levels.easy]
bonus = 7
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "hard", *cfg.Game.Difficulty)
	require.Equal(t, "/tmp/words.txt", *cfg.Game.WordsFile)

	levels, err := cfg.ApplyLevels(model.DefaultLevels())
	require.NoError(t, err)
	require.Equal(t, 30, levels[model.Hard].BaseTimeSeconds)
	require.Equal(t, 2, levels[model.Hard].BonusSeconds)
	require.Equal(t, 40, levels[model.Easy].BaseTimeSeconds)
	require.Equal(t, 7, levels[model.Easy].BonusSeconds)
	require.Equal(t, 25, model.DefaultLevels()[model.Medium].BaseTimeSeconds)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[game]\nspeed = 3\n")
	_, err := LoadConfig(path)
	require.ErrorContains(t, err, "game.speed")
}

func TestApplyLevelsRejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, "[levels.insane]\nbase-time = 5\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	_, err = cfg.ApplyLevels(model.DefaultLevels())
	require.ErrorContains(t, err, "insane")
}

func TestValidate(t *testing.T) {
	valid := model.Config{Difficulty: model.Medium, Levels: model.DefaultLevels()}
	require.NoError(t, Validate(valid))

	badLevel := valid
	badLevel.Difficulty = "nightmare"
	err := Validate(badLevel)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "Difficulty must be one of"), err.Error())

	zeroTime := model.DefaultLevels()
	zeroTime[model.Easy] = model.Level{Name: model.Easy, Label: "Easy", BaseTimeSeconds: 0, BonusSeconds: 5}
	err = Validate(model.Config{Difficulty: model.Easy, Levels: zeroTime})
	require.ErrorContains(t, err, "BaseTimeSeconds must be >= 1")

	negBonus := model.DefaultLevels()
	negBonus[model.Hard] = model.Level{Name: model.Hard, Label: "Hard", BaseTimeSeconds: 18, BonusSeconds: -1}
	err = Validate(model.Config{Difficulty: model.Hard, Levels: negBonus})
	require.ErrorContains(t, err, "BonusSeconds must be >= 0")
}

func TestDefaultPathsHonorOverrides(t *testing.T) {
	t.Setenv("WORDRUSH_DB", "/data/custom.db")
	t.Setenv("WORDRUSH_CONFIG", "/etc/wordrush.toml")
	t.Setenv("XDG_STATE_HOME", "/state")
	require.Equal(t, "/data/custom.db", DefaultDBPath())
	require.Equal(t, "/etc/wordrush.toml", DefaultConfigPath())
	require.Equal(t, filepath.Join("/state", "wordrush", "wordrush.log"), DefaultLogPath())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDRUSH_TEST_VALUE=from-dotenv\n"), 0o644))
	t.Setenv("WORDRUSH_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("WORDRUSH_TEST_VALUE"))
	require.NoError(t, LoadEnv(path))
	require.Equal(t, "from-dotenv", os.Getenv("WORDRUSH_TEST_VALUE"))
}
