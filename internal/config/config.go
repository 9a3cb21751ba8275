package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/db"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	DB db.ConnConfig

	AdminUsername string
	AdminPassword string
	BcryptCost    int

	ExportDir string

	AlertCommand   []string
	AlertSoundPath string
	AlertBuffer    int

	LogLevel string
	LogFile  string

	Carriers []string
}

// LoadEnv loads the first .env found in dir or up to two parents, falling back
// to .example.env. It returns the file used, or "" when none exists and only
// the process environment applies.
func LoadEnv(dir string) string {
	candidates := []string{
		dir,
		filepath.Join(dir, ".."),
		filepath.Join(dir, "..", ".."),
	}

	for _, name := range []string{".env", ".example.env"} {
		for _, candidate := range candidates {
			path := filepath.Join(candidate, name)
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

func defaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "packcounter")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("EXPORT_DIR", "exports")
	v.SetDefault("ALERT_COMMAND", "")
	v.SetDefault("ALERT_SOUND_PATH", filepath.Join("sounds", "alert.wav"))
	v.SetDefault("ALERT_BUFFER", 16)
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("CARRIERS", "")
}

// Load reads the configuration from the environment after LoadEnv(dir).
func Load(dir string) (*Config, string, error) {
	source := LoadEnv(dir)

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	cfg := &Config{
		DB: db.ConnConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("POSTGRES_USER"),
			Password: v.GetString("POSTGRES_PASSWORD"),
			Name:     v.GetString("POSTGRES_DB"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		AdminUsername:  v.GetString("ADMIN_USERNAME"),
		AdminPassword:  v.GetString("ADMIN_PASSWORD"),
		BcryptCost:     v.GetInt("BCRYPT_COST"),
		ExportDir:      v.GetString("EXPORT_DIR"),
		AlertCommand:   splitCommand(v.GetString("ALERT_COMMAND")),
		AlertSoundPath: v.GetString("ALERT_SOUND_PATH"),
		AlertBuffer:    v.GetInt("ALERT_BUFFER"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFile:        v.GetString("LOG_FILE"),
		Carriers:       splitList(v.GetString("CARRIERS")),
	}

	if err := cfg.validate(); err != nil {
		return nil, source, err
	}
	return cfg, source, nil
}

func (c *Config) validate() error {
	if c.DB.Port <= 0 || c.DB.Port > 65535 {
		return fmt.Errorf("%w: DB_PORT %d", ErrInvalid, c.DB.Port)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: BCRYPT_COST must be between %d and %d", ErrInvalid, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.AlertBuffer <= 0 {
		return fmt.Errorf("%w: ALERT_BUFFER must be positive", ErrInvalid)
	}
	return nil
}

// splitList splits on commas since carrier names may contain spaces.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// splitCommand returns nil for a blank command.
func splitCommand(s string) []string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
