package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string         `mapstructure:"port"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Password PasswordConfig `mapstructure:"password"`
	Mail     MailConfig     `mapstructure:"mail"`
	Reset    ResetConfig    `mapstructure:"reset"`
	Static   StaticConfig   `mapstructure:"static"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"driver"` // json | sqlite
	Path       string `mapstructure:"path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type PasswordConfig struct {
	Algorithm  string `mapstructure:"algorithm"` // bcrypt | argon2id
	BcryptCost int    `mapstructure:"bcrypt_cost"`
}

type MailConfig struct {
	Provider string `mapstructure:"provider"` // resend | log
	APIKey   string `mapstructure:"api_key"`
	From     string `mapstructure:"from"`
}

type ResetConfig struct {
	CodeTTL time.Duration `mapstructure:"code_ttl"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

const (
	StoreDriverJSON   = "json"
	StoreDriverSQLite = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3001")
	v.SetDefault("log.level", "info")
	v.SetDefault("store.driver", StoreDriverJSON)
	v.SetDefault("store.path", "db.json")
	v.SetDefault("store.sqlite_path", "app.db")
	v.SetDefault("password.algorithm", "bcrypt")
	v.SetDefault("password.bcrypt_cost", 10)
	v.SetDefault("mail.provider", "resend")
	v.SetDefault("mail.from", "onboarding@resend.dev")
	v.SetDefault("reset.code_ttl", "0s")
	v.SetDefault("static.dir", "public")
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// Load reads config.yml from dir (if present) and overlays environment
// variables: store.path is STORE_PATH, mail.api_key is MAIL_API_KEY or RESEND_API_KEY.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("mail.api_key", "MAIL_API_KEY", "RESEND_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind mail.api_key env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverJSON, StoreDriverSQLite:
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	if c.Reset.CodeTTL < 0 {
		return errors.New("reset.code_ttl must not be negative")
	}
	return nil
}
