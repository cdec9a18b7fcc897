package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Black-And-White-Club/trivia-bot/internal/observability"
)

// Config struct to hold the configuration settings
type Config struct {
	Postgres      PostgresConfig      `yaml:"postgres"`
	NATS          NATSConfig          `yaml:"nats"`
	Dataset       DatasetConfig       `yaml:"dataset"`
	HTTP          HTTPConfig          `yaml:"http"`
	Observability ObservabilityConfig `yaml:"observability"`
	Trivia        TriviaConfig        `yaml:"trivia"`
}

// PostgresConfig holds Postgres configuration.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// NATSConfig holds NATS configuration.
type NATSConfig struct {
	URL string `yaml:"url"`
}

// DatasetConfig points at the recipe/tag/locale dataset.
type DatasetConfig struct {
	Root      string `yaml:"root"`
	Namespace string `yaml:"namespace"`
}

// HTTPConfig holds the HTTP API listener settings.
type HTTPConfig struct {
	Address string `yaml:"address"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	ServiceName    string `yaml:"service_name"`
	Environment    string `yaml:"environment"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddress string `yaml:"metrics_address"`
}

// TriviaConfig holds the game defaults used when a guild has no stored
// override. Timeouts are in seconds.
type TriviaConfig struct {
	JoinTimeout       int     `yaml:"join_timeout"`
	GuessTimeout      int     `yaml:"guess_timeout"`
	RoundCount        int     `yaml:"round_count"`
	MinPlayers        int     `yaml:"min_players"`
	CloseGuessHints   bool    `yaml:"close_guess_hints"`
	EditRatePerSecond float64 `yaml:"edit_rate_per_second"`
}

const (
	DefaultJoinTimeout       = 60
	DefaultGuessTimeout      = 30
	DefaultRoundCount        = 5
	DefaultMinPlayers        = 2
	DefaultNamespace         = "minecraft"
	DefaultHTTPAddress       = ":3000"
	DefaultEditRatePerSecond = 2
)

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Defaults returns a Config with every optional value filled in.
func Defaults() *Config {
	return &Config{
		Dataset: DatasetConfig{Namespace: DefaultNamespace},
		HTTP:    HTTPConfig{Address: DefaultHTTPAddress},
		Observability: ObservabilityConfig{
			ServiceName: "trivia-bot",
			LogLevel:    "info",
		},
		Trivia: TriviaConfig{
			JoinTimeout:       DefaultJoinTimeout,
			GuessTimeout:      DefaultGuessTimeout,
			RoundCount:        DefaultRoundCount,
			MinPlayers:        DefaultMinPlayers,
			CloseGuessHints:   true,
			EditRatePerSecond: DefaultEditRatePerSecond,
		},
	}
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	cfg := Defaults()

	cfg.Postgres.DSN = os.Getenv("DATABASE_URL")
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	cfg.NATS.URL = os.Getenv("NATS_URL")
	if cfg.NATS.URL == "" {
		return nil, fmt.Errorf("NATS_URL environment variable not set")
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("NATS_URL"); v != "" {
		cfg.NATS.URL = v
	}
	if v := os.Getenv("DATASET_ROOT"); v != "" {
		cfg.Dataset.Root = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("METRICS_ADDRESS"); v != "" {
		cfg.Observability.MetricsAddress = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Observability.Environment = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"TRIVIA_JOIN_TIMEOUT", &cfg.Trivia.JoinTimeout},
		{"TRIVIA_GUESS_TIMEOUT", &cfg.Trivia.GuessTimeout},
		{"TRIVIA_ROUND_COUNT", &cfg.Trivia.RoundCount},
		{"TRIVIA_MIN_PLAYERS", &cfg.Trivia.MinPlayers},
	}
	for _, o := range ints {
		v := os.Getenv(o.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %v", o.env, err)
		}
		*o.dst = n
	}
	return nil
}

// Validate rejects game defaults that could never run a session.
func (c *Config) Validate() error {
	var errs []error
	if c.Trivia.JoinTimeout <= 0 {
		errs = append(errs, errors.New("trivia.join_timeout must be positive"))
	}
	if c.Trivia.GuessTimeout <= 0 {
		errs = append(errs, errors.New("trivia.guess_timeout must be positive"))
	}
	if c.Trivia.RoundCount <= 0 {
		errs = append(errs, errors.New("trivia.round_count must be positive"))
	}
	if c.Trivia.MinPlayers <= 0 {
		errs = append(errs, errors.New("trivia.min_players must be positive"))
	}
	return errors.Join(errs...)
}

// ToObsConfig maps application config onto the observability package.
func ToObsConfig(appCfg *Config) observability.Config {
	return observability.Config{
		ServiceName: appCfg.Observability.ServiceName,
		Environment: appCfg.Observability.Environment,
		LogLevel:    appCfg.Observability.LogLevel,
	}
}
