package config

import (
	"fmt"
	"time"

	"ctchen222/tic-tac-toe-web/internal/room"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTP      HTTP      `yaml:"http"`
	Room      Room      `yaml:"room"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type HTTP struct {
	Addr            string        `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
	StaticDir       string        `yaml:"static-dir" env:"HTTP_STATIC_DIR" env-default:"./web"`
	ShutdownTimeout time.Duration `yaml:"shutdown-timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `yaml:"allowed-origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
}

type Room struct {
	HeartbeatInterval time.Duration `yaml:"heartbeat-interval" env:"ROOM_HEARTBEAT_INTERVAL" env-default:"10s"`
	PongWait          time.Duration `yaml:"pong-wait" env:"ROOM_PONG_WAIT" env-default:"30s"`
	WriteWait         time.Duration `yaml:"write-wait" env:"ROOM_WRITE_WAIT" env-default:"10s"`
	ReadLimit         int64         `yaml:"read-limit" env:"ROOM_READ_LIMIT" env-default:"512"`
}

type Telemetry struct {
	Enabled        bool   `yaml:"enabled" env:"OTEL_ENABLED" env-default:"false"`
	CollectorAddr  string `yaml:"collector-addr" env:"OTEL_COLLECTOR_ADDR" env-default:"otel-collector:4317"`
	ServiceName    string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe"`
	ServiceVersion string `yaml:"service-version" env:"OTEL_SERVICE_VERSION" env-default:"v0.1.0"`
	StdoutTraces   bool   `yaml:"stdout-traces" env:"OTEL_STDOUT_TRACES" env-default:"false"`
}

// Load reads the yaml file at path, if any, and applies environment overrides.
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad - load all configurations, panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Room.HeartbeatInterval <= 0 {
		return fmt.Errorf("room.heartbeat-interval must be positive, got %s", c.Room.HeartbeatInterval)
	}
	if c.Room.PongWait <= c.Room.HeartbeatInterval {
		return fmt.Errorf("room.pong-wait (%s) must exceed room.heartbeat-interval (%s)", c.Room.PongWait, c.Room.HeartbeatInterval)
	}
	if c.Room.ReadLimit <= 0 {
		return fmt.Errorf("room.read-limit must be positive, got %d", c.Room.ReadLimit)
	}
	return nil
}

// RoomOptions converts the room section for room.NewRoom.
func (r Room) RoomOptions() room.Options {
	return room.Options{
		HeartbeatInterval: r.HeartbeatInterval,
		PongWait:          r.PongWait,
		WriteWait:         r.WriteWait,
		ReadLimit:         r.ReadLimit,
	}
}
