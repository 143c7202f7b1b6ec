package account

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// contextCredential is a string flag for use with context values when setting
// credentials internally.
type contextCredential string

const (
	// ContextCredentialsFlag used for retrieving api credentials from context
	ContextCredentialsFlag contextCredential = "apicredentials"
	// ContextSubAccountFlag used for retrieving just the sub account from
	// context, when the default credentials sub account needs to be changed
	// while the same keys can be used.
	ContextSubAccountFlag contextCredential = "subaccountoverride"

	apiKeyDisplaySize = 16
)

var (
	// ErrCredentialsAreEmpty alerts on an operation that requires at least one
	// populated credential field
	ErrCredentialsAreEmpty = errors.New("credentials are empty")

	errRequiresAPIKey    = errors.New("requires API key but default/empty one set")
	errRequiresAPISecret = errors.New("requires API secret but default/empty one set")
)

// Credentials define parameters that allow for an authenticated request.
type Credentials struct {
	Key        string
	Secret     string
	Passphrase string
	SubAccount string
}

// Validate ensures the fields every signing strategy depends on are populated
func (c *Credentials) Validate() error {
	if c.IsEmpty() {
		return ErrCredentialsAreEmpty
	}
	if c.Key == "" {
		return errRequiresAPIKey
	}
	if c.Secret == "" {
		return errRequiresAPISecret
	}
	return nil
}

// String prints out basic credential info (obfuscated) to track key instances
// associated with exchanges.
func (c *Credentials) String() string {
	obfuscated := c.Key
	if len(obfuscated) > apiKeyDisplaySize {
		obfuscated = obfuscated[:apiKeyDisplaySize]
	}
	return fmt.Sprintf("Key:[%s...] SubAccount:[%s]", obfuscated, c.SubAccount)
}

// IsEmpty return true if the underlying credentials type has not been filled
// with at least one item.
func (c *Credentials) IsEmpty() bool {
	return c == nil || c.Key == "" &&
		c.Secret == "" &&
		c.Passphrase == "" &&
		c.SubAccount == ""
}

// Equal determines if the keys are the same.
// Secret omitted because of direct correlation with api key.
func (c *Credentials) Equal(other *Credentials) bool {
	return c != nil &&
		other != nil &&
		c.Key == other.Key &&
		c.SubAccount == other.SubAccount
}

// getInternal returns the values for assignment to an internal context
func (c *Credentials) getInternal() (contextCredential, *ContextCredentialsStore) {
	if c.IsEmpty() {
		return "", nil
	}
	store := &ContextCredentialsStore{}
	store.Load(c)
	return ContextCredentialsFlag, store
}

// ContextCredentialsStore protects the stored credentials for use in a context
type ContextCredentialsStore struct {
	creds *Credentials
	mu    sync.RWMutex
}

// Load stores provided credentials
func (c *ContextCredentialsStore) Load(creds *Credentials) {
	// Segregate from external call
	cpy := *creds
	c.mu.Lock()
	c.creds = &cpy
	c.mu.Unlock()
}

// Get returns the full credentials from the store
func (c *ContextCredentialsStore) Get() *Credentials {
	c.mu.RLock()
	creds := *c.creds
	c.mu.RUnlock()
	return &creds
}

// DeployCredentialsToContext sets credentials for internal use to context which
// can override default credential values.
func DeployCredentialsToContext(ctx context.Context, creds *Credentials) context.Context {
	flag, store := creds.getInternal()
	return context.WithValue(ctx, flag, store)
}

// DeploySubAccountOverrideToContext sets subaccount as override to credentials
// as a separate flag.
func DeploySubAccountOverrideToContext(ctx context.Context, subAccount string) context.Context {
	return context.WithValue(ctx, ContextSubAccountFlag, subAccount)
}

// CredentialsFromContext returns credentials deployed to the context and
// whether they were present.
func CredentialsFromContext(ctx context.Context) (*Credentials, bool) {
	store, ok := ctx.Value(ContextCredentialsFlag).(*ContextCredentialsStore)
	if !ok || store == nil {
		return nil, false
	}
	return store.Get(), true
}

// SubAccountOverrideFromContext returns a sub account override deployed to
// the context and whether it was present.
func SubAccountOverrideFromContext(ctx context.Context) (string, bool) {
	subAccount, ok := ctx.Value(ContextSubAccountFlag).(string)
	return subAccount, ok
}
