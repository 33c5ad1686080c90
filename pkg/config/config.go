package config

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"

	"github.com/c9s/bbgo-wallet/pkg/util"
)

const (
	DefaultRecvWindow = 5 * time.Second
	MaxRecvWindow     = 60 * time.Second
	DefaultTimeout    = 15 * time.Second
)

type BinanceConfig struct {
	Key    string `json:"key" mapstructure:"key"`
	Secret string `json:"-" mapstructure:"secret"`

	// PrivateKeyFile is the PEM (PKCS#8) Ed25519 private key of an Ed25519 api key.
	PrivateKeyFile string `json:"privateKeyFile,omitempty" mapstructure:"privateKeyFile"`

	BaseURL    string        `json:"baseURL,omitempty" mapstructure:"baseURL"`
	RecvWindow time.Duration `json:"recvWindow" mapstructure:"recvWindow"`
	Timeout    time.Duration `json:"timeout" mapstructure:"timeout"`

	// RateLimit uses the b+n/duration syntax, e.g. 10+5/1s, empty disables the limiter.
	RateLimit  string `json:"rateLimit,omitempty" mapstructure:"rateLimit"`
	MaxRetries uint64 `json:"maxRetries" mapstructure:"maxRetries"`

	// SyncServerTime queries the server time before the first signed request.
	SyncServerTime bool `json:"syncServerTime" mapstructure:"syncServerTime"`
}

type LoggingConfig struct {
	Debug bool `json:"debug" mapstructure:"debug"`

	// File enables the json log file, rotated by size.
	File       string `json:"file,omitempty" mapstructure:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" mapstructure:"maxSizeMB"`
	MaxBackups int    `json:"maxBackups" mapstructure:"maxBackups"`
}

type MetricsConfig struct {
	Listen string `json:"listen,omitempty" mapstructure:"listen"`
}

type Config struct {
	Binance BinanceConfig `json:"binance" mapstructure:"binance"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`
}

// SetDefaults registers the defaults and the environment variable names.
// Every key must be known to viper, otherwise Unmarshal ignores the env vars.
func SetDefaults(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("binance.key", "")
	v.SetDefault("binance.secret", "")
	v.SetDefault("binance.privateKeyFile", "")
	v.SetDefault("binance.baseURL", "")
	v.SetDefault("binance.recvWindow", DefaultRecvWindow)
	v.SetDefault("binance.timeout", DefaultTimeout)
	v.SetDefault("binance.rateLimit", "")
	v.SetDefault("binance.maxRetries", 3)
	v.SetDefault("binance.syncServerTime", false)

	v.SetDefault("logging.debug", false)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.maxSizeMB", 50)
	v.SetDefault("logging.maxBackups", 5)

	v.SetDefault("metrics.listen", "")

	_ = v.BindEnv("binance.key", "BINANCE_API_KEY")
	_ = v.BindEnv("binance.secret", "BINANCE_API_SECRET")
	_ = v.BindEnv("binance.privateKeyFile", "BINANCE_PRIVATE_KEY_FILE")
	_ = v.BindEnv("binance.baseURL", "BINANCE_BASE_URL")
	_ = v.BindEnv("binance.recvWindow", "BINANCE_RECV_WINDOW")
}

// Load reads the optional config file, merges env vars and bound flags, and validates the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", configFile)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	return c.Binance.Validate()
}

func (c *BinanceConfig) Validate() (err error) {
	if len(c.Key) == 0 {
		err = multierr.Append(err, errors.New("binance: api key is required"))
	}

	if len(c.Secret) == 0 && len(c.PrivateKeyFile) == 0 {
		err = multierr.Append(err, errors.New("binance: either api secret or privateKeyFile is required"))
	} else if len(c.Secret) > 0 && len(c.PrivateKeyFile) > 0 {
		err = multierr.Append(err, errors.New("binance: api secret and privateKeyFile are exclusive"))
	}

	if c.RecvWindow <= 0 || c.RecvWindow > MaxRecvWindow {
		err = multierr.Append(err, errors.Errorf("binance: recvWindow %s is out of range (0, %s]", c.RecvWindow, MaxRecvWindow))
	}

	if c.Timeout <= 0 {
		err = multierr.Append(err, errors.Errorf("binance: invalid timeout %s", c.Timeout))
	}

	if len(c.RateLimit) > 0 {
		if _, err2 := util.ParseRateLimitSyntax(c.RateLimit); err2 != nil {
			err = multierr.Append(err, errors.Wrap(err2, "binance: rateLimit"))
		}
	}

	return err
}

// RateLimiter returns nil when no rate limit is configured.
func (c *BinanceConfig) RateLimiter() (*rate.Limiter, error) {
	if len(c.RateLimit) == 0 {
		return nil, nil
	}

	return util.ParseRateLimitSyntax(c.RateLimit)
}

// LoadPrivateKey reads the PKCS#8 PEM Ed25519 private key from PrivateKeyFile.
func (c *BinanceConfig) LoadPrivateKey() (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(c.PrivateKeyFile)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read private key file")
	}

	return ParseEd25519PrivateKey(data)
}

func ParseEd25519PrivateKey(data []byte) (ed25519.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, errors.New("private key: no PEM block found")
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "private key: unable to parse PKCS#8 key")
	}

	privateKey, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.Errorf("private key: expect an ed25519 key, got %T", key)
	}

	return privateKey, nil
}
