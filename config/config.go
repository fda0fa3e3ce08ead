package config

import (
	"practice/internal/logger"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort int

	DatabaseDbPath string

	DatabaseCacheEnabled bool
	DatabaseCacheAddress string
	DatabaseCachePort    int
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	viper.SetEnvPrefix("PRACTICE")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8271)
	viper.SetDefault("DATABASE_DB_PATH", "data/practice.db")
	viper.SetDefault("DATABASE_CACHE_ENABLED", false)
	viper.SetDefault("DATABASE_CACHE_ADDRESS", "localhost")
	viper.SetDefault("DATABASE_CACHE_PORT", 6379)

	config := Config{
		ServerPort:           viper.GetInt("SERVER_PORT"),
		DatabaseDbPath:       viper.GetString("DATABASE_DB_PATH"),
		DatabaseCacheEnabled: viper.GetBool("DATABASE_CACHE_ENABLED"),
		DatabaseCacheAddress: viper.GetString("DATABASE_CACHE_ADDRESS"),
		DatabaseCachePort:    viper.GetInt("DATABASE_CACHE_PORT"),
	}

	if config.DatabaseDbPath == "" {
		return Config{}, log.ErrMsg("database path is empty")
	}

	log.Info("Config initialized", "serverPort", config.ServerPort, "dbPath", config.DatabaseDbPath)
	return config, nil
}
