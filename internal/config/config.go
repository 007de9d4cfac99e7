// internal/config/config.go
//
// Environment-driven configuration.
// A .env file in the working directory is loaded first (development only);
// real environment variables always win.

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every tunable of the server.
type Config struct {
	Port          string
	LogLevel      string
	WordLength    int
	Rows          int
	WordsFile     string
	HistoryDB     string
	SessionSecret string
	SessionTTL    time.Duration
	ClientOrigin  string
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	c := Config{
		Port:          getEnv("PORT", "5176"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		WordLength:    envInt("WORD_LENGTH", 5),
		Rows:          envInt("ROWS", 5),
		WordsFile:     os.Getenv("WORDS_FILE"),
		HistoryDB:     os.Getenv("HISTORY_DB"),
		SessionSecret: getEnv("SESSION_SECRET", "dev_secret_change_me"),
		SessionTTL:    time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}
	if c.WordLength <= 0 {
		return c, errors.New("config: WORD_LENGTH must be positive")
	}
	if c.Rows <= 0 {
		return c, errors.New("config: ROWS must be positive")
	}
	if c.SessionTTL <= 0 {
		return c, errors.New("config: SESSION_TTL_HOURS must be positive")
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an integer; unset or malformed values yield def.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
