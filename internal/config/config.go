// internal/config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Default queries assume the standard two-table schema: "users"
// (username, password, email, enabled) and "authorities"
// (username, authority). Override them in the lookup section when adapting
// to an existing schema; keep the returned column names identical.
const (
	DefUsersByUsernameQuery       = "SELECT username, password, email, enabled FROM users WHERE username = ?"
	DefUsersByEmailQuery          = "SELECT username, password, email, enabled FROM users WHERE email = ?"
	DefAuthoritiesByUsernameQuery = "SELECT username, authority FROM authorities WHERE username = ?"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Lookup   LookupConfig   `mapstructure:"lookup"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	DBname          string `mapstructure:"dbname"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr         string `mapstructure:"addr"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	DialTimeout  int    `mapstructure:"dial_timeout"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	PoolTimeout  int    `mapstructure:"pool_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LookupConfig drives the principal lookup: three parameterized query
// strings, a role prefix prepended to every authority read from the store,
// and the username-based-primary-key flag. The flag records whether the
// users query returns the canonical username rather than an opaque primary
// key; it is stored and reported but consulted by no code path.
type LookupConfig struct {
	UsersByUsernameQuery       string `mapstructure:"users_by_username_query"`
	UsersByEmailQuery          string `mapstructure:"users_by_email_query"`
	AuthoritiesByUsernameQuery string `mapstructure:"authorities_by_username_query"`
	RolePrefix                 string `mapstructure:"role_prefix"`
	UsernameBasedPrimaryKey    bool   `mapstructure:"username_based_primary_key"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	setDefaults()

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("config file not found, using defaults and environment variables")
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Println("config loaded successfully")
	return &cfg, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.mode", "debug")

	// Database defaults
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Redis defaults
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.dial_timeout", 10)
	viper.SetDefault("redis.read_timeout", 30)
	viper.SetDefault("redis.write_timeout", 30)
	viper.SetDefault("redis.pool_timeout", 30)

	// Lookup defaults
	viper.SetDefault("lookup.users_by_username_query", DefUsersByUsernameQuery)
	viper.SetDefault("lookup.users_by_email_query", DefUsersByEmailQuery)
	viper.SetDefault("lookup.authorities_by_username_query", DefAuthoritiesByUsernameQuery)
	viper.SetDefault("lookup.role_prefix", "")
	viper.SetDefault("lookup.username_based_primary_key", true)
}

func validateConfig(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("app name cannot be empty")
	}

	if cfg.App.Port == "" {
		return fmt.Errorf("app port cannot be empty")
	}

	if cfg.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if cfg.Database.Username == "" {
		return fmt.Errorf("database username cannot be empty")
	}
	if cfg.Database.Password == "" {
		return fmt.Errorf("database password cannot be empty")
	}
	if cfg.Database.DBname == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if cfg.Redis.Addr == "" {
		return fmt.Errorf("redis address cannot be empty")
	}

	if cfg.Lookup.UsersByUsernameQuery == "" {
		return fmt.Errorf("lookup users-by-username query cannot be empty")
	}
	if cfg.Lookup.UsersByEmailQuery == "" {
		return fmt.Errorf("lookup users-by-email query cannot be empty")
	}
	if cfg.Lookup.AuthoritiesByUsernameQuery == "" {
		return fmt.Errorf("lookup authorities-by-username query cannot be empty")
	}
	return nil
}
