package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrBadPlayerConfig = errors.New("bad player config")

type Config struct {
	LogLevel   string  `yaml:"log-level" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env-default:"8080"`
	Redis      Redis   `yaml:"redis"`
	Players    Players `yaml:"players"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Players - the per-session player setup: each slot gets a single-character
// board mark and a display color the client renders the mark with.
type Players struct {
	Human PlayerSlot `yaml:"human"`
	Bot   PlayerSlot `yaml:"bot"`
}

type PlayerSlot struct {
	Mark  string `yaml:"mark" env-default:"X"`
	Color string `yaml:"color" env-default:"#8E44AD"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Players.validate(); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Players) validate() error {
	if len(that.Human.Mark) != 1 || len(that.Bot.Mark) != 1 {
		return fmt.Errorf("%w: marks must be single characters", ErrBadPlayerConfig)
	}

	if that.Human.Mark == that.Bot.Mark {
		return fmt.Errorf("%w: marks must differ", ErrBadPlayerConfig)
	}

	return nil
}
