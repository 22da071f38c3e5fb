package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	DataDir    string
	InvitePage string
	AdminPage  string
}

// LoadConfig loads configuration from a .env file if present, then the
// environment, falling back to defaults.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:    getEnv("OPUS_DATA_DIR", "data"),
		InvitePage: getEnv("OPUS_INVITE_PAGE", "invite.html"),
		AdminPage:  getEnv("OPUS_ADMIN_PAGE", "admin.html"),
	}
}

// DatabasePath is the sqlite file backing the keyed-blob store.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "opus-invite.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
