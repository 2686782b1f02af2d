package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Server holds process-wide settings for the API and CLI. The simulator
// binary and UI directory live here rather than in code so deployments can
// point at their own build.
type Server struct {
	Port             string        `mapstructure:"port"`
	Env              string        `mapstructure:"env"`
	StaticDir        string        `mapstructure:"static_dir"`
	SimulatorBin     string        `mapstructure:"simulator_bin"`
	WorkDir          string        `mapstructure:"work_dir"`
	SimulatorTimeout time.Duration `mapstructure:"simulator_timeout"`
	MaxTrades        int           `mapstructure:"max_trades"`
	LogLevel         string        `mapstructure:"log_level"`
	Tracing          bool          `mapstructure:"tracing"`
}

// IsProduction reports whether the server runs with API_ENV=production.
func (s *Server) IsProduction() bool {
	return strings.EqualFold(s.Env, "production")
}

var serverEnv = map[string]string{
	"port":              "API_PORT",
	"env":               "API_ENV",
	"static_dir":        "STATIC_DIR",
	"simulator_bin":     "SIMULATOR_BIN",
	"work_dir":          "SIM_WORK_DIR",
	"simulator_timeout": "SIM_TIMEOUT",
	"max_trades":        "MAX_TRADES",
	"log_level":         "LOG_LEVEL",
	"tracing":           "TRACING_ENABLED",
}

// LoadServer reads server settings from an optional YAML file, then the
// environment (a .env file in the working directory is loaded first if present).
// Environment variables win over the file.
func LoadServer(path string) (*Server, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("env", "development")
	v.SetDefault("static_dir", "./ui")
	v.SetDefault("simulator_bin", "trading-simulator-v2")
	v.SetDefault("work_dir", os.TempDir())
	v.SetDefault("simulator_timeout", time.Duration(0))
	v.SetDefault("max_trades", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("tracing", false)

	for key, env := range serverEnv {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading server config (%s): %w", path, err)
		}
	}

	var s Server
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	if s.SimulatorBin == "" {
		return nil, fmt.Errorf("simulator_bin is required")
	}
	if s.MaxTrades < 0 {
		return nil, fmt.Errorf("max_trades must be >= 0")
	}
	return &s, nil
}
