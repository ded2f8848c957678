package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DanRulev/wortschatz/pkg/validator"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	HTTP       HTTPConfig       `mapstructure:"http" validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage" validate:"required"`
	Translator TranslatorConfig `mapstructure:"translator"`
	BotToken   string           `mapstructure:"bot_token"`
	DB         DBConfig         `mapstructure:"db" validate:"-"`
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout    time.Duration `mapstructure:"timeout" validate:"min=1"`
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"min=1"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory postgres"`
}

type TranslatorConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"omitempty,url"`
	DictionaryURL string        `mapstructure:"dictionary_url" validate:"omitempty,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"env":              "APP_ENV",
	"bot_token":        "BOT_TOKEN",
	"http.addr":        "HTTP_ADDR",
	"storage.driver":   "STORAGE_DRIVER",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", "10s")
	v.SetDefault("app.session_ttl", "1h")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("translator.base_url", "https://api.mymemory.translated.net")
	v.SetDefault("translator.dictionary_url", "https://ftapi.pythonanywhere.com")
	v.SetDefault("translator.timeout", "5s")
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("db.cfg.conn_max_life_time", "30m")
	v.SetDefault("db.cfg.conn_max_idle_time", "5m")
}

// Init reads configs/<CONFIG_NAME>.yaml (default "default") with environment
// overrides. A missing config file is not an error.
func Init() (*Config, error) {
	return load("configs")
}

func load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath(path)
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Storage.Driver == DriverPostgres {
		if err := validator.ValidateStruct(cfg.DB); err != nil {
			return nil, fmt.Errorf("db config: %w", err)
		}
	}

	return &cfg, nil
}
