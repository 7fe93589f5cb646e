package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	DBDriver      string `yaml:"db_driver" env:"DB_DRIVER" env-default:"mysql"`
	DBHost        string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort        string `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBUser        string `yaml:"db_user" env:"DB_USER" env-default:"mytask"`
	DBPassword    string `yaml:"db_password" env:"DB_PASSWORD" env-default:"mytask"`
	DBName        string `yaml:"db_name" env:"DB_NAME" env-default:"mytask"`
	DBPath        string `yaml:"db_path" env:"DB_PATH" env-default:"mytask.db"`
	RedisHost     string `yaml:"redis_host" env:"REDIS_HOST"`
	RedisPort     string `yaml:"redis_port" env:"REDIS_PORT" env-default:"6379"`
	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-default:"default-secret-key-change-me"`
	GinMode       string `yaml:"gin_mode" env:"GIN_MODE" env-default:"debug"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	HTTPAddr      string `yaml:"http_addr" env:"HTTP_ADDR" env-default:":8080"`
	CORSOrigins   string `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"http://localhost:3000"`

	// First admin account, created at startup when AdminEmail is set and unknown
	AdminName     string `yaml:"admin_name" env:"ADMIN_NAME" env-default:"Administrator"`
	AdminEmail    string `yaml:"admin_email" env:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

// Load reads the configuration from the YAML file at path, falling back to
// the environment when path is empty or the file does not exist.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
		return &cfg, cfg.validate()
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return nil, fmt.Errorf("cannot read config %q: %w", path, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
	}

	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "mysql", "postgres", "sqlite":
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// RedisAddr is empty when no Redis host is configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// AllowedOrigins splits CORS_ORIGINS. The local frontend is allowed when
// nothing is configured.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return origins
}

func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}
