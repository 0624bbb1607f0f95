package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrConfigNotFound  = errors.New("configuration file not found")
	ErrConfigParse     = errors.New("configuration file is not valid JSON")
	ErrMissingJavaBase = errors.New("configuration is missing required field JavaBase")
)

// Config is loaded once at startup and immutable afterwards. LogPath and
// DefaultVersion are optional; an empty string means the field was absent.
type Config struct {
	// JavaBase is the directory whose immediate subdirectories are the
	// installed JDK versions. Required.
	JavaBase string `mapstructure:"JavaBase"`
	// LogPath is the directory for the audit log. Empty disables logging.
	LogPath string `mapstructure:"LogPath"`
	// DefaultVersion names the candidate selected on empty input. It only
	// takes effect when it matches a discovered directory name.
	DefaultVersion string `mapstructure:"DefaultVersion"`
}

// DefaultPath resolves the fixed config location ../config/config.json
// relative to the real location of the running executable.
func DefaultPath() (string, error) {
	executablePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve current executable: %w", err)
	}

	if resolvedPath, evalErr := filepath.EvalSymlinks(executablePath); evalErr == nil {
		executablePath = resolvedPath
	}

	return filepath.Join(filepath.Dir(executablePath), "..", "config", "config.json"), nil
}

func Load(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w at %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.JavaBase = strings.TrimSpace(cfg.JavaBase)
	cfg.LogPath = strings.TrimSpace(cfg.LogPath)
	cfg.DefaultVersion = strings.TrimSpace(cfg.DefaultVersion)

	if cfg.JavaBase == "" {
		return Config{}, fmt.Errorf("%w (in %s)", ErrMissingJavaBase, path)
	}

	return cfg, nil
}
