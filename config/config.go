// Package config loads, validates and persists client layer settings.
package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/kat-co/vala"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/takerfee/cclib/exchanges/account"
	"github.com/takerfee/cclib/log"
)

var (
	// ErrExchangeNotFound is returned when no entry matches a
	// requested exchange name.
	ErrExchangeNotFound = errors.New("exchange not found")

	errNoExchanges = errors.New("no exchange configs found")
)

// LoadConfig reads the JSON configuration file at path, applies
// defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "unable to read config file")
	}

	cfg := new(Config)
	err := v.Unmarshal(cfg,
		viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc()),
		func(dc *mapstructure.DecoderConfig) { dc.TagName = "json" },
	)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode config file")
	}

	if err := cfg.CheckConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the settings to path as indented JSON. Timeout
// fields are stored as nanosecond counts.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// CheckConfig applies the logging section then validates every
// exchange entry.
func (c *Config) CheckConfig() error {
	if err := c.CheckLoggerConfig(); err != nil {
		log.Errorf(log.ConfigMgr, "Failed to configure logger, some logging features unavailable: %v", err)
	}
	return c.CheckExchangeConfigValues()
}

// CheckLoggerConfig applies the logging section to the registered
// subsystem loggers.
func (c *Config) CheckLoggerConfig() error {
	if len(c.Logging) == 0 {
		return nil
	}
	return log.SetupSubLoggers(c.Logging)
}

// CheckExchangeConfigValues validates all exchange entries and applies
// defaults where optional fields are unset. An entry declaring
// authenticated support without a usable key pair is downgraded to
// public access rather than rejected.
func (c *Config) CheckExchangeConfigValues() error {
	if len(c.Exchanges) == 0 {
		return errNoExchanges
	}

	for i := range c.Exchanges {
		e := &c.Exchanges[i]

		err := vala.BeginValidation().Validate(
			vala.StringNotEmpty(e.Name, "name"),
		).Check()
		if err != nil {
			return errors.Wrapf(err, "exchange entry %d invalid", i)
		}

		if e.HTTPTimeout <= 0 {
			e.HTTPTimeout = DefaultHTTPTimeout
		}

		if e.API.AuthenticatedSupport {
			err = vala.BeginValidation().Validate(
				vala.StringNotEmpty(e.API.Credentials.Key, "apiKey"),
				vala.StringNotEmpty(e.API.Credentials.Secret, "apiSecret"),
			).Check()
			if err != nil {
				log.Warnf(log.ConfigMgr, "Exchange %s: authenticated support disabled, invalid credentials: %v", e.Name, err)
				e.API.AuthenticatedSupport = false
			}
		}
	}
	return nil
}

// GetExchangeConfig returns the settings for the named exchange. The
// name match is case insensitive.
func (c *Config) GetExchangeConfig(name string) (*Exchange, error) {
	for i := range c.Exchanges {
		if strings.EqualFold(c.Exchanges[i].Name, name) {
			return &c.Exchanges[i], nil
		}
	}
	return nil, errors.Wrapf(ErrExchangeNotFound, "%q", name)
}

// AccountCredentials converts the stored credentials into the account
// package representation used when signing requests.
func (e *Exchange) AccountCredentials() *account.Credentials {
	return &account.Credentials{
		Key:        e.API.Credentials.Key,
		Secret:     e.API.Credentials.Secret,
		Passphrase: e.API.Credentials.Passphrase,
		SubAccount: e.API.Credentials.SubAccount,
	}
}

// DefaultConfig returns settings with an entry for every supported
// exchange, suitable as a starting point when no file exists.
func DefaultConfig() *Config {
	c := &Config{Name: "cclib"}
	for _, n := range []string{
		"binance", "bybit", "huobi", "okx", "ftx", "backpack", "bitmake",
	} {
		c.Exchanges = append(c.Exchanges, Exchange{
			Name:        n,
			Enabled:     true,
			HTTPTimeout: DefaultHTTPTimeout,
		})
	}
	return c
}
