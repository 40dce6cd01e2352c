// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Filename string `yaml:"filename"`
}

type NotifyConfig struct {
	// Recipients receive fixture notifications and the daily digest.
	Recipients []string `yaml:"recipients"`
	Sender     string   `yaml:"sender"`
	Region     string   `yaml:"region"`
	// Loaded from environment
	AccessKeyID     string `yaml:"-"`
	SecretAccessKey string `yaml:"-"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
		Port        int    `yaml:"port"`
		BaseURL     string `yaml:"base_url"`
		// Bcrypt hash of the admin API token; loaded from environment.
		AdminTokenHash string `yaml:"-"`
	} `yaml:"app"`

	Database DatabaseConfig `yaml:"database"`

	Notify NotifyConfig `yaml:"notify"`

	Jobs struct {
		FixtureReminders bool   `yaml:"fixture_reminders"`
		ReminderCron     string `yaml:"reminder_cron"`
	} `yaml:"jobs"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Load sensitive values from environment
	cfg.App.AdminTokenHash = os.Getenv("ADMIN_TOKEN_HASH")
	cfg.Notify.AccessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	cfg.Notify.SecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.App.Port == 0 {
		return fmt.Errorf("app port is required")
	}
	if c.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}
	if c.Database.Driver != "sqlite" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename is required for sqlite")
	}

	if len(c.Notify.Recipients) > 0 {
		if c.Notify.Sender == "" {
			return fmt.Errorf("notify sender is required when recipients are set")
		}
		if c.Notify.Region == "" {
			return fmt.Errorf("notify region is required when recipients are set")
		}
	}

	return nil
}
