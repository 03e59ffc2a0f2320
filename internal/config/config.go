package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "REMIND_"

type Config struct {
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	Sweep  SweepConfig  `koanf:"sweep"`
	Twilio TwilioConfig `koanf:"twilio"`
	SMTP   SMTPConfig   `koanf:"smtp"`
}

type ServerConfig struct {
	Addr string `koanf:"addr"`
}

type DBConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

type SweepConfig struct {
	// Interval between due-task sweeps, in seconds.
	Interval int `koanf:"interval"`
}

type TwilioConfig struct {
	SID   string `koanf:"sid"`
	Token string `koanf:"token"`
	From  string `koanf:"from"`
}

type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
}

// Enabled reports whether SMS notifications are configured.
func (t TwilioConfig) Enabled() bool {
	return t.SID != "" && t.Token != ""
}

// Enabled reports whether email notifications are configured.
func (s SMTPConfig) Enabled() bool {
	return s.User != "" && s.Password != ""
}

// Load builds the configuration from defaults overridden by REMIND_*
// environment variables (REMIND_DB_HOST -> db.host, etc).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Sweep.Interval <= 0 {
		return fmt.Errorf("sweep interval must be positive, got %d", c.Sweep.Interval)
	}
	if c.DB.Name == "" {
		return fmt.Errorf("db name is required")
	}
	return nil
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode,
	)
}
