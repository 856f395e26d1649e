package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the server and the demo look for the config file
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Enabled         bool   `yaml:"enabled" env:"DB_ENABLED"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Admin struct {
		Username string `yaml:"username" env:"ADMIN_USERNAME"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	Logging struct {
		Level      string `yaml:"level" env:"LOG_LEVEL"`
		Format     string `yaml:"format" env:"LOG_FORMAT"`
		File       string `yaml:"file" env:"LOG_FILE"`
		MaxSizeMB  int    `yaml:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
		MaxBackups int    `yaml:"max_backups" env:"LOG_MAX_BACKUPS"`
		MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS"`
	} `yaml:"logging"`

	College struct {
		Name    string `yaml:"name" env:"COLLEGE_NAME"`
		Address string `yaml:"address" env:"COLLEGE_ADDRESS"`
	} `yaml:"college"`

	// Campus holds the pacing delays of the slow desk operations
	Campus struct {
		HostelFeeDelay       string `yaml:"hostel_fee_delay" env:"CAMPUS_HOSTEL_FEE_DELAY"`
		CanteenRequestDelay  string `yaml:"canteen_request_delay" env:"CAMPUS_CANTEEN_REQUEST_DELAY"`
		LibraryShelvingDelay string `yaml:"library_shelving_delay" env:"CAMPUS_LIBRARY_SHELVING_DELAY"`
	} `yaml:"campus"`

	Activity struct {
		HistorySize int `yaml:"history_size" env:"ACTIVITY_HISTORY_SIZE"`
	} `yaml:"activity"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine, defaults and env vars still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	// Database defaults
	config.Database.Enabled = false
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "collegeadmin"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	// JWT defaults
	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "collegeadmin.app"

	// Admin defaults
	config.Admin.Username = "admin"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "text"
	config.Logging.MaxSizeMB = 50
	config.Logging.MaxBackups = 5
	config.Logging.MaxAgeDays = 30

	// College defaults
	config.College.Name = "Institute of Engineering and Technology, Lucknow"
	config.College.Address = "Sitapur Road, Lucknow"

	// Campus defaults
	config.Campus.HostelFeeDelay = "1s"
	config.Campus.CanteenRequestDelay = "2s"
	config.Campus.LibraryShelvingDelay = "1s"

	config.Activity.HistorySize = 100
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.College.Name) == "" {
		return fmt.Errorf("college name is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	delays := map[string]string{
		"hostel_fee_delay":       config.Campus.HostelFeeDelay,
		"canteen_request_delay":  config.Campus.CanteenRequestDelay,
		"library_shelving_delay": config.Campus.LibraryShelvingDelay,
	}
	for name, value := range delays {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid campus %s: %w", name, err)
		}
		if d < 0 {
			return fmt.Errorf("campus %s must not be negative", name)
		}
	}

	if config.Activity.HistorySize < 0 {
		return fmt.Errorf("activity history size must not be negative")
	}

	if config.Database.Enabled && config.Database.Host == "" {
		return fmt.Errorf("database host is required when the database is enabled")
	}

	return nil
}

// ValidateServer checks the settings only the HTTP server needs
func (c *Config) ValidateServer() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin username and password are required")
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// CampusDelays are the parsed pacing delays of the campus desks
type CampusDelays struct {
	HostelFee       time.Duration
	CanteenRequest  time.Duration
	LibraryShelving time.Duration
}

// Delays parses the campus section. LoadConfig has already validated the
// values, so a parse failure here means the struct was built by hand and
// the delay falls back to zero.
func (c *Config) Delays() CampusDelays {
	parse := func(value string) time.Duration {
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return 0
		}
		return d
	}
	return CampusDelays{
		HostelFee:       parse(c.Campus.HostelFeeDelay),
		CanteenRequest:  parse(c.Campus.CanteenRequestDelay),
		LibraryShelving: parse(c.Campus.LibraryShelvingDelay),
	}
}
