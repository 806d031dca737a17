package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Validation constants define acceptable bounds for configuration values
const (
	minTokenLength = 50 // Discord bot tokens are 59+ characters

	minSweepInterval = 1 * time.Second
	maxSweepInterval = 1 * time.Hour

	maxPort = 65535
)

// Validate checks everything the bot process needs and returns all
// violations at once using errors.Join.
//
//   - TOKEN: required, at least 50 characters
//   - CLIENT_ID, GUILD_ID: required Discord snowflakes
//   - NODE_ENV: development, test or production
//   - HOST: an IP address or URL in production
//   - METRICS_PORT: 0 (disabled) to 65535
//   - COOLDOWN_SWEEP_INTERVAL: between 1s and 1h
func (c *Config) Validate() error {
	var errs []error

	if err := c.validateToken(); err != nil {
		errs = append(errs, err)
	}

	if err := validateSnowflake("CLIENT_ID", c.ClientID); err != nil {
		errs = append(errs, err)
	}

	if err := validateSnowflake("GUILD_ID", c.GuildID); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateEnv(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateHost(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateMetricsPort(); err != nil {
		errs = append(errs, err)
	}

	if err := c.validateSweepInterval(); err != nil {
		errs = append(errs, err)
	}

	if c.CommandsDir == "" {
		errs = append(errs, fmt.Errorf("COMMANDS_DIR cannot be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  %w", errors.Join(errs...))
	}

	return nil
}

// ValidateDeploy checks the credentials needed to talk to the command
// registration endpoints. Guild-scoped deployments also need GUILD_ID.
func (c *Config) ValidateDeploy(guildScoped bool) error {
	if c.Token == "" || c.ClientID == "" {
		return errors.New("missing TOKEN or CLIENT_ID in environment variables")
	}

	if guildScoped && c.GuildID == "" {
		return errors.New("GUILD_ID is required for test deployment")
	}

	return nil
}

func (c *Config) validateToken() error {
	if c.Token == "" {
		return fmt.Errorf("TOKEN is required but not set")
	}

	if len(c.Token) < minTokenLength {
		return fmt.Errorf(
			"TOKEN appears invalid (too short: %d chars, expected %d+)",
			len(c.Token), minTokenLength,
		)
	}

	return nil
}

func validateSnowflake(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required but not set", fieldName)
	}

	if _, err := strconv.ParseUint(value, 10, 64); err != nil {
		return fmt.Errorf("%s must be a numeric Discord id, got %q", fieldName, value)
	}

	return nil
}

func (c *Config) validateEnv() error {
	switch c.Env {
	case EnvDevelopment, EnvTest, EnvProduction:
		return nil
	default:
		return fmt.Errorf(
			"NODE_ENV must be one of %s, %s or %s, got %q",
			EnvDevelopment, EnvTest, EnvProduction, c.Env,
		)
	}
}

func (c *Config) validateHost() error {
	if c.Host == "" {
		return fmt.Errorf("HOST cannot be empty")
	}

	if c.Env != EnvProduction {
		return nil
	}

	if net.ParseIP(c.Host) != nil {
		return nil
	}

	if u, err := url.Parse(c.Host); err == nil && u.Scheme != "" && u.Host != "" {
		return nil
	}

	return fmt.Errorf("HOST must be an IP address or URL in production, got %q", c.Host)
}

func (c *Config) validateMetricsPort() error {
	if c.MetricsPort < 0 || c.MetricsPort > maxPort {
		return fmt.Errorf("METRICS_PORT must be between 0 and %d, got %d", maxPort, c.MetricsPort)
	}
	return nil
}

func (c *Config) validateSweepInterval() error {
	if c.CooldownSweepInterval < minSweepInterval {
		return fmt.Errorf(
			"COOLDOWN_SWEEP_INTERVAL must be at least %v, got %v",
			minSweepInterval, c.CooldownSweepInterval,
		)
	}

	if c.CooldownSweepInterval > maxSweepInterval {
		return fmt.Errorf(
			"COOLDOWN_SWEEP_INTERVAL must be at most %v, got %v",
			maxSweepInterval, c.CooldownSweepInterval,
		)
	}

	return nil
}
