package internal

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap/zapcore"
)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Content   ContentConfig     `yaml:"content"`
	Analytics AnalyticsConfig   `yaml:"analytics"`
	Admin     AdminConfig       `yaml:"admin"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Analytics.Validate(); err != nil {
		return fmt.Errorf("analytics: %w", err)
	}
	if err := c.Admin.Validate(); err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	return nil
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel zapcore.Level `yaml:"log_level"`
	Mode     string        `yaml:"mode"`
	HTTP     HTTPConfig    `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(gin.DebugMode, gin.ReleaseMode, gin.TestMode)),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ContentConfig points at the site content file. An empty Path serves the
// built-in content.
type ContentConfig struct {
	Path      string `yaml:"path"`
	Watch     bool   `yaml:"watch"`
	ImagesDir string `yaml:"images_dir"`
}

// AnalyticsConfig holds the visitor analytics settings.
type AnalyticsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	DBPath        string `yaml:"db_path"`
	RetentionDays int    `yaml:"retention_days"`
	QueueSize     int    `yaml:"queue_size"`
}

// Validate validates the analytics configuration.
func (c *AnalyticsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DBPath, validation.When(c.Enabled, validation.Required)),
		validation.Field(&c.RetentionDays, validation.When(c.Enabled, validation.Required), validation.Min(1)),
		validation.Field(&c.QueueSize, validation.When(c.Enabled, validation.Required), validation.Min(1)),
	)
}

// Retention returns how long visits are kept.
func (c *AnalyticsConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}

// AdminConfig holds the analytics dashboard credentials. The dashboard is
// only mounted when Password is set.
type AdminConfig struct {
	Username      string `yaml:"username"`
	Password      string `yaml:"password"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

// Validate validates the admin configuration.
func (c *AdminConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.When(c.Password != "", validation.Required)),
		validation.Field(&c.Password, validation.When(c.Password != "", validation.Length(8, 0))),
	)
}

// Enabled reports whether the admin area should be served.
func (c *AdminConfig) Enabled() bool {
	return c.Password != ""
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: zapcore.InfoLevel,
			Mode:     gin.ReleaseMode,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Content: ContentConfig{
			Watch:     true,
			ImagesDir: "./images",
		},
		Analytics: AnalyticsConfig{
			Enabled:       true,
			DBPath:        "./analytics.db",
			RetentionDays: 365,
			QueueSize:     256,
		},
		Admin: AdminConfig{
			Username: "admin",
		},
	}
}
