package config

import (
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
	"net/http"
	"os"
	"time"
)

const (
	defaultUploadMaxBytes = 50 << 20
	defaultRequestTimeout = 10 * time.Second
)

type AppConfig struct {
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	ServerAddr     string         `yaml:"serverAddr"`
	S3Config       S3Config       `yaml:"s3Config"`
	JWT            JWTConfig      `yaml:"jwt"`
	Admin          AdminConfig    `yaml:"admin"`
	Files          FilesConfig    `yaml:"files"`
}

// LoadConfig : читает YAML, подставляя ${VAR} из окружения
func LoadConfig(path string) (*AppConfig, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

func ParseConfig(data []byte) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, err
	}

	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}
	if cfg.S3Config.Driver == "" {
		cfg.S3Config.Driver = "s3"
	}
	if cfg.Files.UploadMaxBytes <= 0 {
		cfg.Files.UploadMaxBytes = defaultUploadMaxBytes
	}

	return &cfg, nil
}

// Timeout : таймаут на мутирующие запросы, по умолчанию 10 секунд
func (c FilesConfig) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return defaultRequestTimeout
	}
	timeout, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || timeout <= 0 {
		return defaultRequestTimeout
	}
	return timeout
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
