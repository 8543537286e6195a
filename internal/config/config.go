package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`  // debug, info, warn, error
		Format string `mapstructure:"format"` // text or json
	} `mapstructure:"log"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	viper.SetDefault("server.addr", "0.0.0.0")
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// Allow Viper to read environment variables, e.g. COMMITLENS_SERVER_PORT.
	viper.SetEnvPrefix("COMMITLENS")
	viper.AutomaticEnv()
	viper.BindEnv("server.addr", "COMMITLENS_SERVER_ADDR")
	viper.BindEnv("server.port", "COMMITLENS_SERVER_PORT")
	viper.BindEnv("log.level", "COMMITLENS_LOG_LEVEL")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and env vars cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
