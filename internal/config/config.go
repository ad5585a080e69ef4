package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// minWindowSide keeps every one of the three cells at least a pixel wide.
const minWindowSide = 3

var ErrInvalidWindowSize = errors.New("invalid window size")

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	RestartKey   string `yaml:"restart-key" env:"RESTART_KEY" env-default:"R"`
	SnapshotSlot string `yaml:"snapshot-slot" env:"SNAPSHOT_SLOT" env-default:"local"`
	Window       Window `yaml:"window"`
	Status       Status `yaml:"status"`
	Redis        Redis  `yaml:"redis"`
}

type Window struct {
	Title  string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic Tac Toe"`
	Width  int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"600"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"600"`
}

type Status struct {
	Enabled  bool   `yaml:"enabled" env:"STATUS_ENABLED" env-default:"false"`
	HTTPPort string `yaml:"http-port" env:"STATUS_HTTP_PORT" env-default:"9090"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	if err := config.Window.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SlogLevel - parses LogLevel ("debug", "info", "warn", "error"), falling back to info.
func (that *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(that.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func (that *Window) validate() error {
	if that.Width < minWindowSide || that.Height < minWindowSide {
		return fmt.Errorf("%w: %dx%d, each side must be at least %d", ErrInvalidWindowSize, that.Width, that.Height, minWindowSide)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
