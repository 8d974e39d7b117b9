package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultDataFile  = "/data/timestamps.log"
	DefaultPort      = "8080"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Config holds process-wide settings resolved once at startup.
type Config struct {
	DataFile  string
	Port      string
	LogLevel  string
	LogFormat string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// FromEnv reads the configuration from the environment, applying defaults.
func FromEnv() Config {
	return Config{
		DataFile:  Get("DATA_FILE", DefaultDataFile),
		Port:      Get("PORT", DefaultPort),
		LogLevel:  Get("LOG_LEVEL", DefaultLogLevel),
		LogFormat: Get("LOG_FORMAT", DefaultLogFormat),
	}
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("config: DATA_FILE must not be empty")
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("config: invalid PORT %q", c.Port)
	}

	return nil
}
