package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string `yaml:"addr"`
	DataFile     string `yaml:"data_file"`
	StaticDir    string `yaml:"static_dir"`
	OpenBrowser  bool   `yaml:"open_browser"`
	AuthEnabled  bool   `yaml:"auth_enabled"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	JWTSecret    string `yaml:"jwt_secret"`
	LogLevel     string `yaml:"log_level"`
	HistoryLimit int    `yaml:"history_limit"`
}

func Default() *Config {
	return &Config{
		Addr:         ":8080",
		DataFile:     "calculator_data.json",
		StaticDir:    "static",
		OpenBrowser:  false,
		AuthEnabled:  false,
		Username:     "user",
		Password:     "123",
		JWTSecret:    "change-me",
		LogLevel:     "info",
		HistoryLimit: 100,
	}
}

// Load - значения по умолчанию, затем YAML файл из CALC_CONFIG_FILE,
// затем переменные окружения (включая .env)
func Load() (*Config, error) {
	// Загрузка .env файла
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg := Default()

	if path := os.Getenv("CALC_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Addr = getEnv("CALC_ADDR", cfg.Addr)
	cfg.DataFile = getEnv("CALC_DATA_FILE", cfg.DataFile)
	cfg.StaticDir = getEnv("CALC_STATIC_DIR", cfg.StaticDir)
	cfg.OpenBrowser = getEnvAsBool("CALC_OPEN_BROWSER", cfg.OpenBrowser)
	cfg.AuthEnabled = getEnvAsBool("CALC_AUTH_ENABLED", cfg.AuthEnabled)
	cfg.Username = getEnv("USERNAME", cfg.Username)
	cfg.Password = getEnv("PASSWORD", cfg.Password)
	cfg.JWTSecret = getEnv("CALC_JWT_SECRET", cfg.JWTSecret)
	cfg.LogLevel = getEnv("CALC_LOG_LEVEL", cfg.LogLevel)
	cfg.HistoryLimit = getEnvAsInt("CALC_HISTORY_LIMIT", cfg.HistoryLimit)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}
