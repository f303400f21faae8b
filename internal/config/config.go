package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName    = "listic"
	AppVersion = "1.0.0"
)

// AI holds the extraction provider settings.
type AI struct {
	Provider  string `yaml:"provider"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	RateLimit int    `yaml:"rate_limit"`
}

// Client holds the settings of the item CLI commands.
type Client struct {
	ServerURL string `yaml:"server_url"`
	Token     string `yaml:"token"`
	ProxyURL  string `yaml:"proxy_url"`
}

type Config struct {
	Addr      string `yaml:"addr"`
	DataDir   string `yaml:"data_dir"`
	DBPath    string `yaml:"db_path"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	JWTSecret string `yaml:"jwt_secret"`
	NodeID    int64  `yaml:"node_id"`
	AI        AI     `yaml:"ai"`
	Client    Client `yaml:"client"`

	// MaintenanceInterval is how often the database is optimized.
	MaintenanceInterval time.Duration `yaml:"maintenance_interval"`
}

// Load builds the configuration. Values from the YAML file named by
// LISTIC_CONFIG_FILE are applied first, then environment variables override them.
func Load() (Config, error) {
	cfg := Config{}
	if path := os.Getenv("LISTIC_CONFIG_FILE"); path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}

	overrideString(&cfg.Addr, "LISTIC_ADDR")
	overrideString(&cfg.DataDir, "LISTIC_DATA_DIR")
	overrideString(&cfg.DBPath, "LISTIC_DB_PATH")
	overrideString(&cfg.LogLevel, "LISTIC_LOG_LEVEL")
	overrideString(&cfg.LogFormat, "LISTIC_LOG_FORMAT")
	overrideString(&cfg.JWTSecret, "LISTIC_JWT_SECRET")
	overrideString(&cfg.AI.Provider, "LISTIC_AI_PROVIDER")
	overrideString(&cfg.AI.APIKey, "LISTIC_AI_API_KEY")
	overrideString(&cfg.AI.BaseURL, "LISTIC_AI_BASE_URL")
	overrideString(&cfg.AI.Model, "LISTIC_AI_MODEL")
	overrideString(&cfg.Client.ServerURL, "LISTIC_SERVER_URL")
	overrideString(&cfg.Client.Token, "LISTIC_TOKEN")
	overrideString(&cfg.Client.ProxyURL, "LISTIC_PROXY_URL")
	if v := os.Getenv("LISTIC_MAINTENANCE_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("LISTIC_MAINTENANCE_INTERVAL must be a duration: %w", err)
		}
		cfg.MaintenanceInterval = d
	}
	if err := overrideInt64(&cfg.NodeID, "LISTIC_NODE_ID"); err != nil {
		return Config{}, err
	}
	var rateLimit int64 = int64(cfg.AI.RateLimit)
	if err := overrideInt64(&rateLimit, "LISTIC_AI_RATE_LIMIT"); err != nil {
		return Config{}, err
	}
	cfg.AI.RateLimit = int(rateLimit)

	applyDefaults(&cfg)
	if cfg.MaintenanceInterval < 0 {
		return Config{}, fmt.Errorf("maintenance interval must not be negative")
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "listic.db")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.AI.Provider == "" {
		cfg.AI.Provider = "openai"
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = "http://localhost:8080"
	}
	if cfg.MaintenanceInterval == 0 {
		cfg.MaintenanceInterval = 6 * time.Hour
	}
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.DBPath = filepath.Clean(cfg.DBPath)
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt64(dst *int64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}
