package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "HOTELRES"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env      string
	LogLevel string
	HTTP     HTTP
	Seed     bool
}

type HTTP struct {
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	ConcurrencyLimit  int
	MaxBodyBytes      int64
	LivenessEndpoint  string
}

// NewViper returns a viper instance reading HOTELRES_* variables with the
// defaults applied.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", "3000")
	v.SetDefault("http.read_header_timeout", 20*time.Second)
	v.SetDefault("http.request_timeout", 10*time.Second)
	v.SetDefault("http.shutdown_timeout", 4*time.Second)
	v.SetDefault("http.concurrency_limit", 1024)
	v.SetDefault("http.max_body_bytes", 64<<10)
	v.SetDefault("http.liveness_endpoint", "/liveness")
	v.SetDefault("catalog.seed", true)

	return v
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Env:      strings.ToLower(v.GetString("env")),
		LogLevel: v.GetString("log.level"),
		HTTP: HTTP{
			Host:              v.GetString("http.host"),
			Port:              v.GetString("http.port"),
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			RequestTimeout:    v.GetDuration("http.request_timeout"),
			ShutdownTimeout:   v.GetDuration("http.shutdown_timeout"),
			ConcurrencyLimit:  v.GetInt("http.concurrency_limit"),
			MaxBodyBytes:      v.GetInt64("http.max_body_bytes"),
			LivenessEndpoint:  v.GetString("http.liveness_endpoint"),
		},
		Seed: v.GetBool("catalog.seed"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	var errs []error

	if c.HTTP.Port == "" {
		errs = append(errs, errors.New("http.port is required"))
	}

	if c.HTTP.ReadHeaderTimeout <= 0 {
		errs = append(errs, errors.New("http.read_header_timeout must be positive"))
	}

	if c.HTTP.RequestTimeout <= 0 {
		errs = append(errs, errors.New("http.request_timeout must be positive"))
	}

	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
	}

	if c.HTTP.ConcurrencyLimit <= 0 {
		errs = append(errs, errors.New("http.concurrency_limit must be positive"))
	}

	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("http.max_body_bytes must be positive"))
	}

	if !strings.HasPrefix(c.HTTP.LivenessEndpoint, "/") {
		errs = append(errs, errors.New("http.liveness_endpoint must start with /"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
