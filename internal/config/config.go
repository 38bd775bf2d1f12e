package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // секунды, по умолчанию 3600
	} `yaml:"jwt"`

	// Первый администратор, создается при старте (см. app.seedFirstAdmin).
	// Берется только из переменных окружения.
	FirstAdminName     string `yaml:"-"`
	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

// DefaultJWTTTL - время жизни токена по умолчанию (1 час)
const DefaultJWTTTL = 3600

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		// Режим config.yaml
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		// Режим переменных окружения
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL"))
	}

	cfg.FirstAdminName = os.Getenv("FIRST_ADMIN_NAME")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		// Без host/port сервер не поднимаем
		log.Fatalf("Invalid configuration: %v", err)
	}

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = DefaultJWTTTL
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
}

// Validate проверяет обязательные параметры процесса
func Validate(cfg *Config) error {
	if cfg.Server.Host == "" {
		return errors.New("server host is not configured")
	}
	if cfg.Server.Port == 0 {
		return errors.New("server port is not configured")
	}
	if cfg.Database.DSN == "" {
		return errors.New("database url is not configured")
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt secret is not configured")
	}
	return nil
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
