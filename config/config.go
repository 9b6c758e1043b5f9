package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server  Server
	Backend Backend
	Session Session
	Upload  Upload
}

type Server struct {
	Port string
}

type Backend struct {
	// BaseURL is fixed for the process lifetime.
	BaseURL string
	// Mode selects the collaborator: "remote" talks to BaseURL,
	// "fixture" serves the seeded in-process backend instead.
	Mode           string
	TimeoutSeconds int
}

type Session struct {
	Dir string
}

type Upload struct {
	MaxFiles      int
	MaxFileSizeMB int64
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("BACKEND_MODE", "remote")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 30)
	viper.SetDefault("SESSION_DIR", ".gradeview")
	viper.SetDefault("UPLOAD_MAX_FILES", 10)
	viper.SetDefault("UPLOAD_MAX_FILE_SIZE_MB", 10)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Backend.BaseURL = viper.GetString("BACKEND_BASE_URL")
	config.Backend.Mode = viper.GetString("BACKEND_MODE")
	config.Backend.TimeoutSeconds = viper.GetInt("BACKEND_TIMEOUT_SECONDS")
	config.Session.Dir = viper.GetString("SESSION_DIR")
	config.Upload.MaxFiles = viper.GetInt("UPLOAD_MAX_FILES")
	config.Upload.MaxFileSizeMB = viper.GetInt64("UPLOAD_MAX_FILE_SIZE_MB")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
