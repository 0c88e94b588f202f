package models

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerEnvVar overrides Config.BaseURL when set.
const ServerEnvVar = "PHONE_VALIDATOR_SERVER"

type Config struct {
	BaseURL      string         `json:"base_url" yaml:"base_url"`
	UserID       string         `json:"user_id" yaml:"user_id"`
	Source       string         `json:"source" yaml:"source"`
	Timeout      time.Duration  `json:"timeout" yaml:"timeout"`
	BatchTimeout time.Duration  `json:"batch_timeout" yaml:"batch_timeout"`
	DownloadDir  string         `json:"download_dir" yaml:"download_dir"`
	TickInterval time.Duration  `json:"tick_interval" yaml:"tick_interval"`
	DebugLog     string         `json:"debug_log" yaml:"debug_log"`
	Columns      ColumnConfig   `json:"columns" yaml:"columns"`
	WhatsApp     BoolFlagConfig `json:"whatsapp" yaml:"whatsapp"`
}

// ColumnConfig names the batch CSV columns. With ByPosition set the
// indices are used instead and the header row is only skipped.
type ColumnConfig struct {
	ByPosition bool `json:"by_position" yaml:"by_position"`

	Phone      string `json:"phone" yaml:"phone"`
	Formatted  string `json:"formatted" yaml:"formatted"`
	Country    string `json:"country" yaml:"country"`
	Carrier    string `json:"carrier" yaml:"carrier"`
	WhatsApp   string `json:"whatsapp" yaml:"whatsapp"`
	Confidence string `json:"confidence" yaml:"confidence"`

	PhoneIndex      int `json:"phone_index" yaml:"phone_index"`
	FormattedIndex  int `json:"formatted_index" yaml:"formatted_index"`
	CountryIndex    int `json:"country_index" yaml:"country_index"`
	CarrierIndex    int `json:"carrier_index" yaml:"carrier_index"`
	WhatsAppIndex   int `json:"whatsapp_index" yaml:"whatsapp_index"`
	ConfidenceIndex int `json:"confidence_index" yaml:"confidence_index"`
}

// BoolFlagConfig lists the literals treated as an affirmative flag value.
type BoolFlagConfig struct {
	Accepted      []string `json:"accepted" yaml:"accepted"`
	CaseSensitive bool     `json:"case_sensitive" yaml:"case_sensitive"`
}

var DefaultColumns = ColumnConfig{
	Phone:           "Original_Phone",
	Formatted:       "Formatted_Number",
	Country:         "Country",
	Carrier:         "Carrier",
	WhatsApp:        "WhatsApp_Available",
	Confidence:      "Confidence_Score",
	PhoneIndex:      0,
	FormattedIndex:  1,
	CountryIndex:    4,
	CarrierIndex:    3,
	WhatsAppIndex:   5,
	ConfidenceIndex: 6,
}

var DefaultConfig = Config{
	BaseURL:      "http://127.0.0.1:8000",
	UserID:       "web_user",
	Source:       "web_ui",
	Timeout:      30 * time.Second,
	BatchTimeout: 10 * time.Minute,
	DownloadDir:  ".",
	TickInterval: 300 * time.Millisecond,
	Columns:      DefaultColumns,
	WhatsApp: BoolFlagConfig{
		Accepted:      []string{"True", "TRUE"},
		CaseSensitive: true,
	},
}

// NewConfig returns a copy of DefaultConfig.
func NewConfig() *Config {
	cfg := DefaultConfig
	cfg.WhatsApp.Accepted = append([]string(nil), DefaultConfig.WhatsApp.Accepted...)
	return &cfg
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty
// path yields the defaults. The server env var is applied afterwards.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if env := os.Getenv(ServerEnvVar); env != "" {
		cfg.BaseURL = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return &ConfigError{Field: "base_url", Message: "server base URL is required"}
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return &ConfigError{Field: "base_url", Message: "server base URL must start with http:// or https://"}
	}

	if c.UserID == "" {
		c.UserID = DefaultConfig.UserID
	}

	if c.Source == "" {
		c.Source = DefaultConfig.Source
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultConfig.Timeout
	}

	if c.BatchTimeout <= 0 {
		c.BatchTimeout = DefaultConfig.BatchTimeout
	}

	if c.TickInterval <= 0 {
		c.TickInterval = DefaultConfig.TickInterval
	}

	if c.DownloadDir == "" {
		c.DownloadDir = DefaultConfig.DownloadDir
	}

	if len(c.WhatsApp.Accepted) == 0 {
		c.WhatsApp = NewConfig().WhatsApp
	}

	return c.Columns.validate()
}

func (cc *ColumnConfig) validate() error {
	if cc.ByPosition {
		indices := map[string]int{
			"phone_index":      cc.PhoneIndex,
			"formatted_index":  cc.FormattedIndex,
			"country_index":    cc.CountryIndex,
			"carrier_index":    cc.CarrierIndex,
			"whatsapp_index":   cc.WhatsAppIndex,
			"confidence_index": cc.ConfidenceIndex,
		}
		for field, idx := range indices {
			if idx < 0 {
				return &ConfigError{Field: "columns." + field, Message: "column index cannot be negative"}
			}
		}
		return nil
	}

	fillName(&cc.Phone, DefaultColumns.Phone)
	fillName(&cc.Formatted, DefaultColumns.Formatted)
	fillName(&cc.Country, DefaultColumns.Country)
	fillName(&cc.Carrier, DefaultColumns.Carrier)
	fillName(&cc.WhatsApp, DefaultColumns.WhatsApp)
	fillName(&cc.Confidence, DefaultColumns.Confidence)
	return nil
}

func fillName(name *string, def string) {
	if strings.TrimSpace(*name) == "" {
		*name = def
	}
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
