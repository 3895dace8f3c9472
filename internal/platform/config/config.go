package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "pushpal/internal/platform/errors"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	DefaultPrompt = "Press space to log a push-up"
)

type Config struct {
	DataDir  string
	DBPath   string
	LogPath  string
	LogLevel string
	Prompt   string
	Store    StoreConfig
}

type StoreConfig struct {
	Backend  string
	FilePath string
	Redis    RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

// fileConfig mirrors config.yaml. Empty fields keep the defaults.
type fileConfig struct {
	LogLevel string `yaml:"log_level"`
	Prompt   string `yaml:"prompt"`
	Store    struct {
		Backend  string `yaml:"backend"`
		FilePath string `yaml:"file_path"`
		Redis    struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       *int   `yaml:"db"`
			Key      string `yaml:"key"`
		} `yaml:"redis"`
	} `yaml:"store"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:  dataDir,
		DBPath:   filepath.Join(dataDir, ".pushpal", "pushpal.db"),
		LogPath:  filepath.Join(dataDir, ".pushpal", "pushpal.log"),
		LogLevel: "info",
		Prompt:   DefaultPrompt,
		Store: StoreConfig{
			Backend:  BackendSQLite,
			FilePath: filepath.Join(dataDir, ".pushpal", "preferences.yaml"),
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "pushpal:prefs",
			},
		},
	}, nil
}

// Load builds the config for dataDir, then layers <dataDir>/.pushpal/config.yaml,
// a .env file in the working directory and PUSHPAL_* variables on top.
func Load(dataDir string) (Config, error) {
	_ = godotenv.Load()
	return loadWith(dataDir, os.Getenv)
}

func loadWith(dataDir string, getenv func(string) string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	if err := applyFile(&cfg, filepath.Join(dataDir, ".pushpal", "config.yaml")); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnsupportedBackend, c.Store.Backend)
	}
	if c.Store.Redis.DB < 0 {
		return fmt.Errorf("%w: redis db must be non-negative", apperrors.ErrInvalidInput)
	}
	return nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	fc := fileConfig{}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	setIfNotEmpty(&cfg.LogLevel, fc.LogLevel)
	setIfNotEmpty(&cfg.Prompt, fc.Prompt)
	setIfNotEmpty(&cfg.Store.Backend, fc.Store.Backend)
	if fc.Store.FilePath != "" {
		cfg.Store.FilePath = resolve(cfg.DataDir, fc.Store.FilePath)
	}
	setIfNotEmpty(&cfg.Store.Redis.Addr, fc.Store.Redis.Addr)
	setIfNotEmpty(&cfg.Store.Redis.Password, fc.Store.Redis.Password)
	setIfNotEmpty(&cfg.Store.Redis.Key, fc.Store.Redis.Key)
	if fc.Store.Redis.DB != nil {
		cfg.Store.Redis.DB = *fc.Store.Redis.DB
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	setIfNotEmpty(&cfg.LogLevel, getenv("PUSHPAL_LOG_LEVEL"))
	setIfNotEmpty(&cfg.Prompt, getenv("PUSHPAL_PROMPT"))
	setIfNotEmpty(&cfg.Store.Backend, strings.ToLower(getenv("PUSHPAL_STORE")))
	if v := getenv("PUSHPAL_STORE_FILE"); v != "" {
		cfg.Store.FilePath = resolve(cfg.DataDir, v)
	}
	setIfNotEmpty(&cfg.Store.Redis.Addr, getenv("PUSHPAL_REDIS_ADDR"))
	setIfNotEmpty(&cfg.Store.Redis.Password, getenv("PUSHPAL_REDIS_PASSWORD"))
	setIfNotEmpty(&cfg.Store.Redis.Key, getenv("PUSHPAL_REDIS_KEY"))
	if v := getenv("PUSHPAL_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PUSHPAL_REDIS_DB=%q", apperrors.ErrInvalidInput, v)
		}
		cfg.Store.Redis.DB = db
	}
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
