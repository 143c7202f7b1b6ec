package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidate(t *testing.T) {
	t.Parallel()
	var c *Credentials
	assert.ErrorIs(t, c.Validate(), ErrCredentialsAreEmpty)

	assert.ErrorIs(t, (&Credentials{}).Validate(), ErrCredentialsAreEmpty)
	assert.ErrorIs(t, (&Credentials{Secret: "s"}).Validate(), errRequiresAPIKey)
	assert.ErrorIs(t, (&Credentials{Key: "k"}).Validate(), errRequiresAPISecret)
	assert.NoError(t, (&Credentials{Key: "k", Secret: "s"}).Validate())
}

func TestCredentialsString(t *testing.T) {
	t.Parallel()
	c := &Credentials{Key: "01234567890123456789", Secret: "supersecret", SubAccount: "sub"}
	out := c.String()
	assert.Contains(t, out, "0123456789012345...")
	assert.Contains(t, out, "sub")
	assert.NotContains(t, out, "supersecret", "secret must never be printed")
}

func TestCredentialsIsEmptyAndEqual(t *testing.T) {
	t.Parallel()
	var c *Credentials
	assert.True(t, c.IsEmpty())
	assert.True(t, (&Credentials{}).IsEmpty())
	assert.False(t, (&Credentials{Key: "k"}).IsEmpty())

	a := &Credentials{Key: "k", SubAccount: "one"}
	b := &Credentials{Key: "k", SubAccount: "one"}
	assert.True(t, a.Equal(b))
	b.SubAccount = "two"
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestDeployCredentialsToContext(t *testing.T) {
	t.Parallel()
	creds := &Credentials{Key: "k", Secret: "s", Passphrase: "p"}
	ctx := DeployCredentialsToContext(context.Background(), creds)

	got, ok := CredentialsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "k", got.Key)
	assert.Equal(t, "s", got.Secret)
	assert.Equal(t, "p", got.Passphrase)

	// mutation of the source must not leak into the context copy
	creds.Key = "changed"
	got, ok = CredentialsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "k", got.Key)

	_, ok = CredentialsFromContext(context.Background())
	assert.False(t, ok)
}

func TestDeploySubAccountOverrideToContext(t *testing.T) {
	t.Parallel()
	ctx := DeploySubAccountOverrideToContext(context.Background(), "alt")
	sub, ok := SubAccountOverrideFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "alt", sub)

	_, ok = SubAccountOverrideFromContext(context.Background())
	assert.False(t, ok)
}
