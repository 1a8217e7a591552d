package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	RoleHost  = "host"
	RoleGuest = "guest"

	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

type Config struct {
	Role          string        `yaml:"role" env:"POKER_ROLE" env-default:"host"`
	Name          string        `yaml:"name" env:"POKER_NAME"`
	Address       string        `yaml:"address" env:"POKER_ADDRESS"`
	Transport     string        `yaml:"transport" env:"POKER_TRANSPORT" env-default:"tcp"`
	WebSocketPath string        `yaml:"websocket-path" env:"POKER_WEBSOCKET_PATH" env-default:"/table"`
	StartingChips uint          `yaml:"starting-chips" env:"POKER_STARTING_CHIPS" env-default:"1000"`
	MaxRounds     int           `yaml:"max-rounds" env:"POKER_MAX_ROUNDS" env-default:"0"`
	DialTimeout   time.Duration `yaml:"dial-timeout" env:"POKER_DIAL_TIMEOUT" env-default:"30s"`
	LogLevel      string        `yaml:"log-level" env:"POKER_LOG_LEVEL" env-default:"info"`
	PlainInput    bool          `yaml:"plain-input" env:"POKER_PLAIN_INPUT" env-default:"false"`
	Discovery     Discovery     `yaml:"discovery"`
}

// Discovery announces open tables on the local network.
type Discovery struct {
	Enabled  bool          `yaml:"enabled" env:"POKER_DISCOVERY" env-default:"false"`
	Port     uint16        `yaml:"port" env:"POKER_DISCOVERY_PORT" env-default:"53552"`
	Interval time.Duration `yaml:"interval" env:"POKER_DISCOVERY_INTERVAL" env-default:"1s"`
}

var (
	ErrUnknownRole      = errors.New("unknown role")
	ErrUnknownTransport = errors.New("unknown transport")
	ErrNoChips          = errors.New("starting chips must be positive")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

// Load reads the YAML file at path, if any, then the POKER_* environment
// variables, which take precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad is Load that panics.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) Validate() error {
	var errs []error
	if c.Role != RoleHost && c.Role != RoleGuest {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownRole, c.Role))
	}
	if c.Transport != TransportTCP && c.Transport != TransportWebSocket {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownTransport, c.Transport))
	}
	if c.StartingChips == 0 {
		errs = append(errs, ErrNoChips)
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w %q", ErrUnknownLogLevel, c.LogLevel)
	}
	return level, nil
}

func (c *Config) IsHost() bool {
	return c.Role == RoleHost
}
