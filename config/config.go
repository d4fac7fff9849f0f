package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var GatewayConfig *Config

type (
	// Config -.
	Config struct {
		App        `yaml:"app"`
		HTTP       `yaml:"http"`
		Log        `yaml:"logger"`
		Secrets    `yaml:"secrets"`
		Teamcenter `yaml:"teamcenter"`
		Auth       `yaml:"auth"`
		Cache      `yaml:"cache"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"HTTP_PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Secrets holds the optional Vault connection used to fetch the JWT
	// signing key at startup.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// Teamcenter holds the remote PLM connection settings.
	Teamcenter struct {
		BaseURL   string        `yaml:"base_url" env:"TC_BASE_URL"`
		Timeout   time.Duration `yaml:"timeout" env:"TC_TIMEOUT"`
		Endpoints Endpoints     `yaml:"endpoints"`
	}

	// Endpoints are the remote REST paths, relative to BaseURL.
	Endpoints struct {
		Sessions     string `yaml:"sessions" env:"TC_EP_SESSIONS"`
		Items        string `yaml:"items" env:"TC_EP_ITEMS"`
		Search       string `yaml:"search" env:"TC_EP_SEARCH"`
		SavedQueries string `yaml:"saved_queries" env:"TC_EP_SAVED_QUERIES"`
	}

	// Auth -.
	Auth struct {
		JWTKey        string        `yaml:"jwtKey" env:"AUTH_JWT_KEY"`
		JWTExpiration time.Duration `yaml:"jwtExpiration" env:"AUTH_JWT_EXPIRATION"`
	}

	// Cache controls the in-memory TTL cache for slow-changing remote
	// lookups. Disabled unless a TTL is configured.
	Cache struct {
		TTL time.Duration `yaml:"ttl" env:"CACHE_TTL"`
	}
)

// Validation errors.
var (
	ErrJWTKeyNotConfigured  = errors.New("auth jwt key not configured")
	ErrBaseURLNotConfigured = errors.New("teamcenter base url not configured")
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "gateway",
			Repo:    "plm-management-toolkit/gateway",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "8181",
			AllowedOrigins: []string{"*"},
			AllowedHeaders: []string{"*"},
			TLS: TLS{
				Enabled:  false,
				CertFile: "",
				KeyFile:  "",
			},
		},
		Log: Log{
			Level: "info",
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/gateway",
		},
		Teamcenter: Teamcenter{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
			Endpoints: Endpoints{
				Sessions:     "/tc/rest/sessions",
				Items:        "/tc/rest/items",
				Search:       "/tc/rest/query",
				SavedQueries: "/tc/rest/query/saved",
			},
		},
		Auth: Auth{
			JWTKey:        "",
			JWTExpiration: time.Hour,
		},
		Cache: Cache{
			TTL: 0,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	exPath := filepath.Dir(ex)

	return filepath.Join(exPath, "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		// Write config file out to disk
		configDir := filepath.Dir(configPath)
		if mkErr := os.MkdirAll(configDir, os.ModePerm); mkErr != nil {
			return mkErr
		}

		file, cErr := os.Create(configPath)
		if cErr != nil {
			return cErr
		}
		defer file.Close()

		encoder := yaml.NewEncoder(file)
		defer encoder.Close()

		if encErr := encoder.Encode(cfg); encErr != nil {
			return encErr
		}

		return nil
	}

	return err
}

// Validate refuses an unusable remote or signing setup. The signing key is
// allowed to arrive from the secret store after config load, so this runs
// once the key sources are exhausted.
func (cfg *Config) Validate() error {
	if cfg.Teamcenter.BaseURL == "" {
		return ErrBaseURLNotConfigured
	}

	if cfg.Auth.JWTKey == "" {
		return ErrJWTKeyNotConfigured
	}

	return nil
}

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	// set defaults
	GatewayConfig = defaultConfig()

	// Define a command line flag for the config path
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	// Determine the config path
	configPath, err := resolveConfigPath(configPathFlag)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(configPath, GatewayConfig); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(GatewayConfig); err != nil {
		return nil, err
	}

	return GatewayConfig, nil
}
