package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

type Config struct {
	Token                 string        `env:"TOKEN"`
	ClientID              string        `env:"CLIENT_ID"`
	GuildID               string        `env:"GUILD_ID"`
	Env                   string        `env:"NODE_ENV" envDefault:"development"`
	Host                  string        `env:"HOST"`
	CommandsDir           string        `env:"COMMANDS_DIR" envDefault:"commands"`
	MetricsPort           int           `env:"METRICS_PORT" envDefault:"9090"`
	DatabaseURL           string        `env:"DATABASE_URL"`
	CooldownSweepInterval time.Duration `env:"COOLDOWN_SWEEP_INTERVAL" envDefault:"1m"`
}

// Override adjusts a parsed config before it is validated, e.g. with
// command line flags.
type Override func(*Config)

// Load reads the environment, applies the overrides in order and validates
// everything the bot process needs.
func Load(overrides ...Override) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	for _, o := range overrides {
		o(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse loads the .env cascade and decodes the environment without
// validating it. Callers pick the validation that fits their process.
func Parse() (*Config, error) {
	loadDotEnv(envString("NODE_ENV", EnvDevelopment))

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if token := readSecret("discord_token"); token != "" {
		cfg.Token = token
	}

	if cfg.Host == "" {
		cfg.Host = defaultHost(cfg.Env)
	}

	return &cfg, nil
}

// MetricsAddr is empty when the metrics server is disabled.
func (c *Config) MetricsAddr() string {
	if c.MetricsPort == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Host, c.MetricsPort)
}

var (
	secretsDir = "/run/secrets/"
	dotenvDir  = ""
)

// loadDotEnv applies .env, .env.local, .env.<env> and .env.<env>.local in
// that order, each overriding the previous ones. Missing files are skipped.
func loadDotEnv(environment string) {
	files := []string{
		".env",
		".env.local",
		".env." + environment,
		".env." + environment + ".local",
	}

	for _, name := range files {
		path := filepath.Join(dotenvDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Overload(path)
	}
}

func readSecret(name string) string {
	data, err := os.ReadFile(secretsDir + name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func defaultHost(environment string) string {
	if environment == EnvProduction {
		return "0.0.0.0"
	}
	return "localhost"
}
