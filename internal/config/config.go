package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Ghostscript GhostscriptConfig
	Upload      UploadConfig
}

type ServerConfig struct {
	Addr            string        `env:"SERVER_PORT" env-default:"4000" validate:"required"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"60s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"120s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"90s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type CORSConfig struct {
	AllowedOrigin string `env:"FRONTEND_ORIGIN" env-default:"http://localhost:3000" validate:"required,url"`
}

type GhostscriptConfig struct {
	// Binary is the Ghostscript executable name or path. An empty value
	// selects the platform default.
	Binary  string        `env:"GS_BINARY"`
	Timeout time.Duration `env:"GS_TIMEOUT" env-default:"120s" validate:"gt=0"`
}

type UploadConfig struct {
	MaxFileSize  int64 `env:"MAX_FILE_SIZE" env-default:"20971520" validate:"gt=0"`
	MaxFileCount int   `env:"MAX_FILES_PER_REQUEST" env-default:"10" validate:"gt=0"`
}

func MustLoad() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cfg.Ghostscript.Binary == "" {
		cfg.Ghostscript.Binary = defaultGhostscriptBinary()
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func defaultGhostscriptBinary() string {
	if runtime.GOOS == "windows" {
		return "gswin64c"
	}
	return "gs"
}
