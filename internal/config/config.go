package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Storage  *StorageConfig  `mapstructure:"storage"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
	PublicDir          string   `mapstructure:"public_dir"`
	MaxUploadBytes     int64    `mapstructure:"max_upload_bytes"`
}

func (c *APIConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *PostgresConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DB,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}

	return u.String()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", EnvDevelopment)
	v.SetDefault("api.port", "3001")
	v.SetDefault("api.base_url", "localhost:3001")
	v.SetDefault("api.allowed_cors_domains", []string{"*"})
	v.SetDefault("api.public_dir", "public")
	v.SetDefault("api.max_upload_bytes", 5<<20)

	v.SetDefault("gin.mode", "debug")

	v.SetDefault("storage.driver", StorageMemory)

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db", "oktoberfest")
	v.SetDefault("postgres.sslmode", "disable")
}

// Load reads the YAML file at path, if there is one, on top of the defaults.
// Environment variables win over both: API_PORT or PORT, STORAGE_DRIVER, ...
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.port", "API_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("v.BindEnv -> %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.API.IsProduction() {
		conf.Gin.Mode = "release"
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

func (c *AppConfig) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.API.Port == "" {
		return errors.New("api port is empty")
	}

	return nil
}

// Watch calls onChange whenever the file at path is written. Changes are not
// applied to a running server.
func Watch(path string, onChange func(fsnotify.Event)) {
	v := viper.New()
	v.SetConfigFile(path)
	v.OnConfigChange(onChange)
	v.WatchConfig()
}
