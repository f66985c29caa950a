package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultHTTPAddr           = ":8099"
	defaultDBPath             = "/data/netis_dashboard.db"
	defaultFrontendDist       = "/app/frontend/dist"
	defaultGatewayIP          = "192.168.1.1"
	defaultPollInterval       = 5 * time.Second
	defaultStatusProbeTimeout = 2 * time.Second
	defaultLoginProbeTimeout  = 3 * time.Second
	defaultLogCapacity        = 1000
	defaultWANInterface       = "ether1"

	TelemetrySimulated = "simulated"
	TelemetryRouterOS  = "routeros"
)

// Config stores runtime settings. Values come from defaults, then the optional
// YAML file named by CONFIG_FILE, then environment variables.
type Config struct {
	HTTPAddr           string          `yaml:"http_addr"`
	DBPath             string          `yaml:"db_path"`
	FrontendDist       string          `yaml:"frontend_dist"`
	LogLevelName       string          `yaml:"log_level"`
	LogLevel           slog.Level      `yaml:"-"`
	DefaultGatewayIP   string          `yaml:"default_gateway_ip"`
	PollInterval       time.Duration   `yaml:"poll_interval"`
	StatusProbeTimeout time.Duration   `yaml:"status_probe_timeout"`
	LoginProbeTimeout  time.Duration   `yaml:"login_probe_timeout"`
	LogCapacity        int             `yaml:"log_capacity"`
	Telemetry          TelemetryConfig `yaml:"telemetry"`
	Gemini             GeminiConfig    `yaml:"gemini"`

	// ConfigPath is the YAML file that was applied, if any.
	ConfigPath string `yaml:"-"`
}

type TelemetryConfig struct {
	Source   string         `yaml:"source"`
	RouterOS RouterOSConfig `yaml:"routeros"`
}

type RouterOSConfig struct {
	Address      string `yaml:"address"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	TLS          bool   `yaml:"tls"`
	WANInterface string `yaml:"wan_interface"`
}

type GeminiConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		HTTPAddr:           defaultHTTPAddr,
		DBPath:             defaultDBPath,
		FrontendDist:       defaultFrontendDist,
		LogLevelName:       "info",
		LogLevel:           slog.LevelInfo,
		DefaultGatewayIP:   defaultGatewayIP,
		PollInterval:       defaultPollInterval,
		StatusProbeTimeout: defaultStatusProbeTimeout,
		LoginProbeTimeout:  defaultLoginProbeTimeout,
		LogCapacity:        defaultLogCapacity,
		Telemetry: TelemetryConfig{
			Source:   TelemetrySimulated,
			RouterOS: RouterOSConfig{WANInterface: defaultWANInterface},
		},
	}
}

// Load builds Config from defaults, the CONFIG_FILE overlay and the environment.
func Load() (Config, error) {
	cfg := Default()
	if path := getenv("CONFIG_FILE", ""); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DBDir returns the target directory for DBPath.
func (c Config) DBDir() string {
	return filepath.Dir(c.DBPath)
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	cfg.ConfigPath = path
	return nil
}

func applyEnv(cfg *Config) {
	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.DBPath = getenv("DB_PATH", cfg.DBPath)
	cfg.FrontendDist = getenv("FRONTEND_DIST", cfg.FrontendDist)
	cfg.LogLevelName = getenv("LOG_LEVEL", cfg.LogLevelName)
	cfg.DefaultGatewayIP = getenv("DEFAULT_GATEWAY_IP", cfg.DefaultGatewayIP)
	cfg.PollInterval = parseDuration("POLL_INTERVAL", cfg.PollInterval)
	cfg.StatusProbeTimeout = parseDuration("STATUS_PROBE_TIMEOUT", cfg.StatusProbeTimeout)
	cfg.LoginProbeTimeout = parseDuration("LOGIN_PROBE_TIMEOUT", cfg.LoginProbeTimeout)
	cfg.LogCapacity = parseInt("LOG_CAPACITY", cfg.LogCapacity)

	cfg.Telemetry.Source = getenv("TELEMETRY_SOURCE", cfg.Telemetry.Source)
	cfg.Telemetry.RouterOS.Address = getenv("ROUTEROS_ADDRESS", cfg.Telemetry.RouterOS.Address)
	cfg.Telemetry.RouterOS.Username = getenv("ROUTEROS_USERNAME", cfg.Telemetry.RouterOS.Username)
	cfg.Telemetry.RouterOS.Password = getenv("ROUTEROS_PASSWORD", cfg.Telemetry.RouterOS.Password)
	cfg.Telemetry.RouterOS.TLS = parseBool("ROUTEROS_TLS", cfg.Telemetry.RouterOS.TLS)
	cfg.Telemetry.RouterOS.WANInterface = getenv("ROUTEROS_WAN_INTERFACE", cfg.Telemetry.RouterOS.WANInterface)

	cfg.Gemini.APIKey = getenv("GEMINI_API_KEY", getenv("API_KEY", cfg.Gemini.APIKey))
	cfg.Gemini.Model = getenv("GEMINI_MODEL", cfg.Gemini.Model)
	cfg.Gemini.BaseURL = getenv("GEMINI_BASE_URL", cfg.Gemini.BaseURL)
}

func (c *Config) normalize() error {
	defaults := Default()
	c.LogLevel = parseLogLevel(c.LogLevelName)
	if strings.TrimSpace(c.DefaultGatewayIP) == "" {
		c.DefaultGatewayIP = defaults.DefaultGatewayIP
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaults.PollInterval
	}
	if c.StatusProbeTimeout <= 0 {
		c.StatusProbeTimeout = defaults.StatusProbeTimeout
	}
	if c.LoginProbeTimeout <= 0 {
		c.LoginProbeTimeout = defaults.LoginProbeTimeout
	}
	if c.LogCapacity <= 0 {
		c.LogCapacity = defaults.LogCapacity
	}

	c.Telemetry.Source = strings.ToLower(strings.TrimSpace(c.Telemetry.Source))
	switch c.Telemetry.Source {
	case "":
		c.Telemetry.Source = TelemetrySimulated
	case TelemetrySimulated:
	case TelemetryRouterOS:
		if strings.TrimSpace(c.Telemetry.RouterOS.Address) == "" {
			return fmt.Errorf("telemetry source %q requires ROUTEROS_ADDRESS", TelemetryRouterOS)
		}
	default:
		return fmt.Errorf("unknown telemetry source %q", c.Telemetry.Source)
	}
	return nil
}

func getenv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

func parseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
