package config

import (
	"errors"
	"os"
	"sync"

	"github.com/knadh/koanf/v2"

	"github.com/creasty/defaults"
	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	_k      *koanf.Koanf
	_config *Config
	once    sync.Once
)

func GetConfig() *Config {
	if _config == nil {
		log.Info().Msg("config is nil trying to init")
		if err := InitConfig(); err != nil {
			log.Error().Msgf("error initializing config: %v", err)
		}
	}

	return _config
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func InitConfig() error {
	var err error
	once.Do(func() {
		_config, err = loadConfig()
		if err != nil {
			return
		}

		zerolog.SetGlobalLevel(_config.APP.LogLevel)
	})

	return err
}

// ReloadConfig re-reads the config file outside the sync.Once guard and
// swaps the package singleton. Used by the list reloader while serving.
func ReloadConfig() (*Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	_config = cfg
	return cfg, nil
}

func loadConfig() (*Config, error) {
	_k = koanf.New(".")

	cfg := &Config{}
	emptyConfig := &Config{}

	configFile := GetEnv("CONFIG_FILE", ".env.toml")

	if err := _k.Load(file.Provider(configFile), toml.Parser()); err != nil {
		log.Warn().Msgf("error loading config [TOML]: %v", err)
	}

	_k.Load(file.Provider(".env"), dotenv.Parser())

	if err := defaults.Set(cfg); err != nil {
		return nil, err
	}

	_k.Unmarshal("", cfg)

	log.Trace().Msgf("k: %+v", cfg)

	if cfg == emptyConfig {
		return nil, errors.New("config is empty")
	}

	return cfg, nil
}

func IsDevMode() bool {
	if _config == nil {
		return true
	}

	return (_config.APP.Environtment == "development")
}
