package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/dimaq12/minesweeper/models"
)

// Config is read from MINESWEEPER_* environment variables.
type Config struct {
	// Level picks a preset board; 0 keeps Width, Height and Bombs.
	Level  int    `env:"MINESWEEPER_LEVEL" envDefault:"0"`
	Width  uint16 `env:"MINESWEEPER_WIDTH" envDefault:"15"`
	Height uint16 `env:"MINESWEEPER_HEIGHT" envDefault:"15"`
	Bombs  uint16 `env:"MINESWEEPER_BOMBS" envDefault:"30"`

	TileMin     float32 `env:"MINESWEEPER_TILE_MIN" envDefault:"1"`
	TileMax     float32 `env:"MINESWEEPER_TILE_MAX" envDefault:"3"`
	TileFixed   float32 `env:"MINESWEEPER_TILE_FIXED" envDefault:"0"`
	TilePadding float32 `env:"MINESWEEPER_TILE_PADDING" envDefault:"0"`
	OffsetX     float32 `env:"MINESWEEPER_OFFSET_X" envDefault:"0"`
	OffsetY     float32 `env:"MINESWEEPER_OFFSET_Y" envDefault:"0"`
	SafeStart   bool    `env:"MINESWEEPER_SAFE_START" envDefault:"false"`

	Sound    bool   `env:"MINESWEEPER_SOUND" envDefault:"false"`
	LogLevel string `env:"MINESWEEPER_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"MINESWEEPER_LOG_FILE"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// boardDimensions returns the square board size and mine count of a preset
// level.
func boardDimensions(level int) (boardSize, mineQuantity uint16, ok bool) {
	switch level {
	case 1:
		return 10, 10, true
	case 2:
		return 15, 40, true
	case 3:
		return 20, 80, true
	case 4:
		return 25, 125, true
	case 5:
		return 30, 180, true
	}
	return 0, 0, false
}

// BoardOptions converts the configuration and validates the result.
func (c Config) BoardOptions() (models.BoardOptions, error) {
	opts := models.BoardOptions{
		MapWidth:    c.Width,
		MapHeight:   c.Height,
		BombCount:   c.Bombs,
		Position:    models.Centered(models.Vec2{X: c.OffsetX, Y: c.OffsetY}),
		TileSize:    models.AdaptiveSize(c.TileMin, c.TileMax),
		TilePadding: c.TilePadding,
		SafeStart:   c.SafeStart,
	}
	if c.Level != 0 {
		size, mines, ok := boardDimensions(c.Level)
		if !ok {
			return models.BoardOptions{}, fmt.Errorf("unknown level %d, want 1-5", c.Level)
		}
		opts.MapWidth, opts.MapHeight, opts.BombCount = size, size, mines
	}
	if c.TileFixed > 0 {
		opts.TileSize = models.FixedSize(c.TileFixed)
	}
	if err := opts.Validate(); err != nil {
		return models.BoardOptions{}, err
	}
	return opts, nil
}

// LoggerLevel parses the configured log level.
func (c Config) LoggerLevel() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
