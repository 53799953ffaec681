package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/kaito5551995/slack-estimate-bot/internal/layout"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig  `mapstructure:"server"`
	Slack  SlackConfig   `mapstructure:"slack"`
	Issuer layout.Issuer `mapstructure:"issuer"`
	Seal   SealConfig    `mapstructure:"seal"`
	Layout layout.Params `mapstructure:"layout"`
	Fonts  FontsConfig   `mapstructure:"fonts"`
	Logger LoggerConfig  `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// SlackConfig holds Slack API configuration
type SlackConfig struct {
	BotToken      string        `mapstructure:"bot_token"`
	SigningSecret string        `mapstructure:"signing_secret"`
	CommandPath   string        `mapstructure:"command_path"`
	InteractPath  string        `mapstructure:"interact_path"`
	APITimeout    time.Duration `mapstructure:"api_timeout"`
}

// SealConfig holds the three vertical glyph columns of the issuer
// seal, right to left.
type SealConfig struct {
	Right  string `mapstructure:"right"`
	Middle string `mapstructure:"middle"`
	Left   string `mapstructure:"left"`
}

// FontsConfig points at the directory searched for the Japanese
// typefaces; missing fonts fall back to the PDF core fonts.
type FontsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	// Slack defaults
	viper.SetDefault("slack.command_path", "/slack/commands")
	viper.SetDefault("slack.interact_path", "/slack/interactions")
	viper.SetDefault("slack.api_timeout", 30*time.Second)

	// Issuer block defaults
	viper.SetDefault("issuer.name", "株式会社ミナト安全施設")
	viper.SetDefault("issuer.representative", "代表取締役 湊崎義美")
	viper.SetDefault("issuer.postal_code", "680-0914")
	viper.SetDefault("issuer.address", "鳥取県鳥取市南安長１丁目２０番３６号")
	viper.SetDefault("issuer.tel", "0857-30-1121")
	viper.SetDefault("issuer.email", "info@minato-anzen.com")

	viper.SetDefault("seal.right", "㈱ミナト")
	viper.SetDefault("seal.middle", "安全施設")
	viper.SetDefault("seal.left", "之印")

	// Layout defaults. The overflow thresholds are tunable because
	// historical renderer revisions disagreed on them.
	p := layout.DefaultParams()
	viper.SetDefault("layout.page_margin", p.PageMargin)
	viper.SetDefault("layout.new_page_top", p.NewPageTop)
	viper.SetDefault("layout.min_table_top", p.MinTableTop)
	viper.SetDefault("layout.table_gap", p.TableGap)
	viper.SetDefault("layout.table_start_limit", p.TableStartLimit)
	viper.SetDefault("layout.row_overflow_limit", p.RowOverflowLimit)
	viper.SetDefault("layout.remarks_limit", p.RemarksLimit)
	viper.SetDefault("layout.min_row_height", p.MinRowHeight)
	viper.SetDefault("layout.row_padding", p.RowPadding)
	viper.SetDefault("layout.header_row_height", p.HeaderRowHeight)
	viper.SetDefault("layout.summary_height", p.SummaryHeight)
	viper.SetDefault("layout.remarks_height", p.RemarksHeight)

	viper.SetDefault("fonts.dir", "fonts")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	// Sensitive credentials from environment
	viper.BindEnv("slack.bot_token", "SLACK_BOT_TOKEN")
	viper.BindEnv("slack.signing_secret", "SLACK_SIGNING_SECRET")
	viper.BindEnv("server.port", "PORT")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Slack.BotToken == "" {
		return fmt.Errorf("slack.bot_token is required")
	}
	if c.Slack.SigningSecret == "" {
		return fmt.Errorf("slack.signing_secret is required")
	}
	if c.Issuer.Name == "" {
		return fmt.Errorf("issuer.name is required")
	}
	if c.Layout.RowOverflowLimit <= c.Layout.NewPageTop+c.Layout.MinRowHeight {
		return fmt.Errorf("layout.row_overflow_limit leaves no room for rows")
	}
	return nil
}
