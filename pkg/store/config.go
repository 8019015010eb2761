package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath = "~/.calnote.db"
	// DefaultKey is the storage key holding the encoded notes.
	DefaultKey = "events"
)

// Config locates the note storage.
type Config interface {
	BasePath() string
	Key() string
}

// LoadConfig resolves configuration from .calnote.yaml, CALNOTE_* env vars
// and an optional .env file in the working directory.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("store: read .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("key", DefaultKey)
	v.SetDefault("log", "")
	v.SetConfigName(".calnote") // .yaml is implicit
	v.SetEnvPrefix("CALNOTE")
	v.AutomaticEnv()

	if override := os.Getenv("CALNOTE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logPath := v.GetString("log")
	if logPath != "" {
		if logPath, err = homedir.Expand(logPath); err != nil {
			return nil, fmt.Errorf("store: expand log path: %w", err)
		}
	}
	return &FileConfig{Path: path, StorageKey: v.GetString("key"), LogPath: logPath}, nil
}

// FileConfig is the resolved on-disk configuration.
type FileConfig struct {
	Path       string `json:"path"`
	StorageKey string `json:"key"`
	LogPath    string `json:"log"`
}

// BasePath implements Config.
func (f *FileConfig) BasePath() string {
	return f.Path
}

// Key implements Config.
func (f *FileConfig) Key() string {
	if f.StorageKey == "" {
		return DefaultKey
	}
	return f.StorageKey
}

// LogFile returns the configured log file, if cfg carries one.
func LogFile(cfg Config) string {
	if f, ok := cfg.(*FileConfig); ok {
		return f.LogPath
	}
	return ""
}
