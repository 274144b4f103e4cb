package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunables of a game. Zero values are not valid; start
// from DefaultConfig.
type Config struct {
	GridSize          int    // cells per side
	CellSize          int    // pixels per cell in the window front end
	BaseSpeed         int    // ticks per second at level 1
	SpeedIncrement    int    // ticks per second added per level-up
	LevelUpScore      int    // points per level
	ObstaclesPerLevel int    // obstacles added per level above 1
	HighScorePath     string // plain text high score file
	StatsPath         string // JSON run history, empty disables it
	Seed              uint64 // RNG seed, 0 picks one from the clock
}

func DefaultConfig() Config {
	return Config{
		GridSize:          20,
		CellSize:          20,
		BaseSpeed:         10,
		SpeedIncrement:    2,
		LevelUpScore:      5,
		ObstaclesPerLevel: 3,
		HighScorePath:     "highscore.txt",
		StatsPath:         "data/stats.json",
	}
}

// Validate checks that the configuration can run a game.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 3:
		return fmt.Errorf("grid size %d: must be at least 3", c.GridSize)
	case c.CellSize < 1:
		return fmt.Errorf("cell size %d: must be positive", c.CellSize)
	case c.BaseSpeed < 1:
		return fmt.Errorf("base speed %d: must be positive", c.BaseSpeed)
	case c.SpeedIncrement < 0:
		return fmt.Errorf("speed increment %d: must not be negative", c.SpeedIncrement)
	case c.LevelUpScore < 1:
		return fmt.Errorf("level-up score %d: must be positive", c.LevelUpScore)
	case c.ObstaclesPerLevel < 0:
		return fmt.Errorf("obstacles per level %d: must not be negative", c.ObstaclesPerLevel)
	case c.HighScorePath == "":
		return errors.New("high score path is empty")
	}
	return nil
}

// LoadConfig starts from DefaultConfig and applies SNAKE_* overrides, first
// from envFile (skipped when empty or missing) and then from the process
// environment.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()

	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read %s: %w", envFile, err)
		}
		if vars != nil {
			fileVars = vars
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_GRID_SIZE", &cfg.GridSize},
		{"SNAKE_CELL_SIZE", &cfg.CellSize},
		{"SNAKE_BASE_SPEED", &cfg.BaseSpeed},
		{"SNAKE_SPEED_INCREMENT", &cfg.SpeedIncrement},
		{"SNAKE_LEVEL_UP_SCORE", &cfg.LevelUpScore},
		{"SNAKE_OBSTACLES_PER_LEVEL", &cfg.ObstaclesPerLevel},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	if v, ok := lookup("SNAKE_HIGHSCORE_FILE"); ok {
		cfg.HighScorePath = v
	}
	if v, ok := lookup("SNAKE_STATS_FILE"); ok {
		cfg.StatsPath = v
	}
	if v, ok := lookup("SNAKE_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("SNAKE_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}
