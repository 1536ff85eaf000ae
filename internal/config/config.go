package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	Addr    string
	DataDir string
	DBFile  string

	LogLevel  string
	LogFormat string
}

// Module provides the loaded configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
)

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "billfold"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		Addr:        getenv("BILLFOLD_ADDR", "127.0.0.1:8080"),
		DataDir:     getenv("BILLFOLD_DATA_DIR", defaultDataDir()),
		DBFile:      getenv("BILLFOLD_DB_FILE", "billfold.db"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "json"),
	}
}

func (c Config) Debug() bool {
	return strings.EqualFold(c.Environment, "development")
}

func defaultDataDir() string {
	if base, err := os.UserConfigDir(); err == nil {
		return filepath.Join(base, "billfold")
	}
	return ".billfold"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
