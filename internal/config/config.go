package config

import (
	"errors"
	"fmt"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// FileName - config file looked up under the XDG config directories.
const FileName = "tictactoe/config.yml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Engine   Engine `yaml:"engine"`
	Game     Game   `yaml:"game"`
	Redis    Redis  `yaml:"redis"`
}

type Engine struct {
	Depth int `yaml:"depth" env:"ENGINE_DEPTH" env-default:"3"`
}

type Game struct {
	HumanMark string `yaml:"human-mark" env:"GAME_HUMAN_MARK" env-default:"X"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load - reads the config file at path, or the XDG config file when path is empty.
// Without any file the defaults and the environment are used.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if found, err := xdg.SearchConfigFile(FileName); err == nil {
			path = found
		}
	}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Engine.Depth < 1 {
		return fmt.Errorf("%w: engine depth must be at least 1, got %d", ErrInvalidConfig, that.Engine.Depth)
	}

	if _, err := that.Game.Mark(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Mark - the side the human plays.
func (that *Game) Mark() (entity.Mark, error) {
	mark, err := entity.ParseSide(that.HumanMark)
	if err != nil {
		return entity.EmptyCell, fmt.Errorf("failed to parse human mark: %w", err)
	}

	return mark, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
