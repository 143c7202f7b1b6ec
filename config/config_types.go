package config

import (
	"time"

	"github.com/takerfee/cclib/log"
)

// DefaultHTTPTimeout is applied to an exchange entry when the loaded
// file does not set one.
const DefaultHTTPTimeout = time.Second * 15

// Credentials holds the API connection details for an exchange.
type Credentials struct {
	Key        string `json:"key"`
	Secret     string `json:"secret"`
	Passphrase string `json:"passphrase,omitempty"`
	SubAccount string `json:"subAccount,omitempty"`
}

// APIConfig groups authentication settings for an exchange.
type APIConfig struct {
	AuthenticatedSupport bool        `json:"authenticatedSupport"`
	Credentials          Credentials `json:"credentials"`
}

// Exchange holds the per-venue settings loaded from the configuration
// file. BaseURL overrides the venue default when set; HTTPTimeout
// accepts either a duration string ("15s") or a nanosecond count.
type Exchange struct {
	Name          string        `json:"name"`
	Enabled       bool          `json:"enabled"`
	Verbose       bool          `json:"verbose"`
	HTTPTimeout   time.Duration `json:"httpTimeout,omitempty"`
	HTTPUserAgent string        `json:"httpUserAgent,omitempty"`
	HTTPDebugging bool          `json:"httpDebugging,omitempty"`
	ProxyAddress  string        `json:"proxyAddress,omitempty"`
	BaseURL       string        `json:"baseURL,omitempty"`
	API           APIConfig     `json:"api"`
}

// Config holds all settings for the client layer.
type Config struct {
	Name      string                `json:"name"`
	Logging   []log.SubLoggerConfig `json:"logging,omitempty"`
	Exchanges []Exchange            `json:"exchanges"`
}
