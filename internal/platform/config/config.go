package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultAdviceBaseURL  = "https://api.adviceslip.com/"
	DefaultAdviceTimeout  = 10
	DefaultWeeklyGoal     = 300
	DefaultLogLevel       = "info"
	defaultConfigFileName = "config.toml"
)

type AdviceConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type Config struct {
	DataDir           string       `toml:"data_dir"`
	DBPath            string       `toml:"db_path"`
	LogPath           string       `toml:"log_path"`
	LogLevel          string       `toml:"log_level"`
	DefaultWeeklyGoal int          `toml:"default_weekly_goal"`
	Advice            AdviceConfig `toml:"advice"`
}

// Default returns a configuration rooted at dataDir, or at the user config
// directory when dataDir is empty.
func Default(dataDir string) Config {
	if dataDir == "" {
		dataDir = defaultDataDir()
	}
	return Config{
		DataDir:           dataDir,
		DBPath:            filepath.Join(dataDir, "studylog.db"),
		LogPath:           filepath.Join(dataDir, "studylog.log"),
		LogLevel:          DefaultLogLevel,
		DefaultWeeklyGoal: DefaultWeeklyGoal,
		Advice: AdviceConfig{
			BaseURL:        DefaultAdviceBaseURL,
			TimeoutSeconds: DefaultAdviceTimeout,
		},
	}
}

// DefaultPath is where LoadOrCreate looks when no --config flag is given.
func DefaultPath(dataDir string) string {
	if dataDir == "" {
		dataDir = defaultDataDir()
	}
	return filepath.Join(dataDir, defaultConfigFileName)
}

// LoadOrCreate reads the TOML file at path, writing the defaults there first
// when it does not exist. Values from .env and STUDYLOG_* variables win over
// the file.
func LoadOrCreate(path, dataDir string) (Config, error) {
	cfg := Default(dataDir)

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		var file Config
		if err := toml.Unmarshal(raw, &file); err != nil {
			return cfg, fmt.Errorf("decode config: %w", err)
		}
		cfg = merge(cfg, file)
	}

	_ = godotenv.Load()
	applyEnv(&cfg)
	return normalize(cfg)
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	payload, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// merge overlays the non-zero values of file on base. Paths left out of the
// file follow its data_dir.
func merge(base, file Config) Config {
	if file.DataDir != "" {
		base = withDataDir(base, file.DataDir)
	}
	if file.DBPath != "" {
		base.DBPath = file.DBPath
	}
	if file.LogPath != "" {
		base.LogPath = file.LogPath
	}
	if file.LogLevel != "" {
		base.LogLevel = file.LogLevel
	}
	if file.DefaultWeeklyGoal != 0 {
		base.DefaultWeeklyGoal = file.DefaultWeeklyGoal
	}
	if file.Advice.BaseURL != "" {
		base.Advice.BaseURL = file.Advice.BaseURL
	}
	if file.Advice.TimeoutSeconds != 0 {
		base.Advice.TimeoutSeconds = file.Advice.TimeoutSeconds
	}
	return base
}

func withDataDir(cfg Config, dir string) Config {
	cfg.DataDir = dir
	cfg.DBPath = filepath.Join(dir, "studylog.db")
	cfg.LogPath = filepath.Join(dir, "studylog.log")
	return cfg
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("STUDYLOG_DATA_DIR"); ok && strings.TrimSpace(v) != "" {
		*cfg = withDataDir(*cfg, strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv("STUDYLOG_ADVICE_URL"); ok {
		cfg.Advice.BaseURL = v
	}
	if v, ok := os.LookupEnv("STUDYLOG_ADVICE_TIMEOUT"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Advice.TimeoutSeconds = n
		}
	}
	if v, ok := os.LookupEnv("STUDYLOG_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
}

func normalize(cfg Config) (Config, error) {
	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogPath = expandPath(cfg.LogPath)
	cfg.Advice.BaseURL = strings.TrimSpace(cfg.Advice.BaseURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if cfg.DataDir == "" {
		return cfg, fmt.Errorf("data_dir is required")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "studylog.db")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(cfg.DataDir, "studylog.log")
	}
	if cfg.Advice.BaseURL == "" {
		return cfg, fmt.Errorf("advice.base_url is required")
	}
	if !strings.HasSuffix(cfg.Advice.BaseURL, "/") {
		cfg.Advice.BaseURL += "/"
	}
	if cfg.Advice.TimeoutSeconds <= 0 {
		cfg.Advice.TimeoutSeconds = DefaultAdviceTimeout
	}
	if cfg.DefaultWeeklyGoal <= 0 {
		cfg.DefaultWeeklyGoal = DefaultWeeklyGoal
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return cfg, nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "studylog")
	}
	return ".studylog"
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
