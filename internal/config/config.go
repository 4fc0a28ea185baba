package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	JWTSigningKey  string
	AuthCookieName string

	OperatorWorkers int
	LogLevel        string
	MigrateOnStart  bool

	// DevMode permits DevSigningKey. It is never set by default.
	DevMode bool
}

// DevSigningKey is the default JWT key for local docker compose runs only.
const DevSigningKey = "dev-signing-key"

// UsesDevSigningKey reports whether tokens are being signed with the public
// default key.
func (c *Config) UsesDevSigningKey() bool {
	return c.JWTSigningKey == DevSigningKey
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"port":              "9446",
	"postgres_address":  "localhost",
	"postgres_port":     "5433",
	"postgres_db":       "postgres",
	"postgres_username": "postgres",
	"postgres_password": "testpassword",
	"jwt_signing_key":   DevSigningKey,
	"auth_cookie_name":  "budget-auth",
	"operator_workers":  4,
	"log_level":         "info",
	"migrate_on_start":  false,
	"dev_mode":          false,
}

// ProcessEnvironmentVariables layers defaults, an optional YAML file named by
// CONFIG_FILE, and the process environment (highest precedence). A .env file in
// the working directory is loaded into the environment first when present.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	workers, err := strconv.Atoi(k.String("operator_workers"))
	if err != nil {
		return nil, fmt.Errorf("invalid OPERATOR_WORKERS %q: %w", k.String("operator_workers"), err)
	}

	migrateOnStart, err := strconv.ParseBool(k.String("migrate_on_start"))
	if err != nil {
		return nil, fmt.Errorf("invalid MIGRATE_ON_START %q: %w", k.String("migrate_on_start"), err)
	}

	devMode, err := strconv.ParseBool(k.String("dev_mode"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEV_MODE %q: %w", k.String("dev_mode"), err)
	}

	cfg := &Config{
		Port:             k.String("port"),
		PostgresAddress:  k.String("postgres_address"),
		PostgresPort:     k.String("postgres_port"),
		PostgresDB:       k.String("postgres_db"),
		PostgresUsername: k.String("postgres_username"),
		PostgresPassword: k.String("postgres_password"),
		JWTSigningKey:    k.String("jwt_signing_key"),
		AuthCookieName:   k.String("auth_cookie_name"),
		OperatorWorkers:  workers,
		LogLevel:         k.String("log_level"),
		MigrateOnStart:   migrateOnStart,
		DevMode:          devMode,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid PORT %q: must be a number between 1 and 65535", c.Port))
	}
	if c.PostgresAddress == "" || c.PostgresDB == "" {
		problems = append(problems, "POSTGRES_ADDRESS and POSTGRES_DB must be set")
	}
	if c.JWTSigningKey == "" {
		problems = append(problems, "JWT_SIGNING_KEY must be set")
	} else if c.UsesDevSigningKey() && !c.DevMode {
		problems = append(problems, "JWT_SIGNING_KEY must be set outside DEV_MODE")
	}
	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid OPERATOR_WORKERS %d: must be at least 1", c.OperatorWorkers))
	}

	if len(problems) > 0 {
		return errors.New("config: " + strings.Join(problems, "; "))
	}
	return nil
}

// PostgresDSN renders the lib/pq connection URL.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
