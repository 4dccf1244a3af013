// Package config loads gateway settings from an optional YAML file with
// environment overrides.
package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "BLOGREADER_CONFIG"
	addrEnv       = "BLOGREADER_ADDR"
	apiURLEnv     = "BLOGREADER_API_URL"
	redisURLEnv   = "BLOGREADER_REDIS_URL"
	logLevelEnv   = "BLOGREADER_LOG_LEVEL"
)

// Config holds the settings required across the application.
type Config struct {
	Addr      string          `yaml:"addr"`
	API       APIConfig       `yaml:"api"`
	Session   SessionConfig   `yaml:"session"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// APIConfig describes the CMS backend.
type APIConfig struct {
	BaseURL string `yaml:"baseUrl"`
}

// SessionConfig describes credential storage. An empty RedisURL selects the
// in-process store.
type SessionConfig struct {
	RedisURL   string        `yaml:"redisUrl"`
	TTLMinutes int           `yaml:"ttlMinutes"`
	ttl        time.Duration `yaml:"-"`
}

// TTL returns the configured session lifetime.
func (s SessionConfig) TTL() time.Duration {
	if s.ttl > 0 {
		return s.ttl
	}
	return 12 * time.Hour
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// RateLimitConfig throttles engagement mutations per client IP.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTTL()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(addrEnv); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(apiURLEnv); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(redisURLEnv); v != "" {
		c.Session.RedisURL = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) bindTTL() {
	if c.Session.TTLMinutes > 0 {
		c.Session.ttl = time.Duration(c.Session.TTLMinutes) * time.Minute
	}
}

func mergeConfig(base, override Config) Config {
	if override.Addr != "" {
		base.Addr = override.Addr
	}
	if override.API.BaseURL != "" {
		base.API.BaseURL = override.API.BaseURL
	}
	if override.Session.RedisURL != "" {
		base.Session.RedisURL = override.Session.RedisURL
	}
	if override.Session.TTLMinutes > 0 {
		base.Session.TTLMinutes = override.Session.TTLMinutes
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	if override.RateLimit.RPS > 0 {
		base.RateLimit.RPS = override.RateLimit.RPS
	}
	if override.RateLimit.Burst > 0 {
		base.RateLimit.Burst = override.RateLimit.Burst
	}
	return base
}

func defaultConfig() Config {
	return Config{
		Addr:      ":3000",
		API:       APIConfig{BaseURL: "http://localhost:5000"},
		Session:   SessionConfig{TTLMinutes: 720},
		Log:       LogConfig{Level: "INFO"},
		RateLimit: RateLimitConfig{RPS: 2, Burst: 5},
	}
}
