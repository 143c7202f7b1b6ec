package exchange

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHierarchy(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		kind    error
		parents []error
	}{
		{ErrConnection, []error{ErrNetwork}},
		{ErrTimeout, []error{ErrNetwork}},
		{ErrParseJSON, []error{ErrResponse}},
		{ErrMaintenance, []error{ErrExchange}},
		{ErrAuthentication, []error{ErrExchange}},
		{ErrPermissionDenied, []error{ErrAuthentication, ErrExchange}},
		{ErrRateLimitWarning, []error{ErrExchange}},
		{ErrRateLimit, []error{ErrExchange}},
		{ErrArguments, []error{ErrExchange}},
		{ErrArgumentsRequired, []error{ErrArguments, ErrExchange}},
		{ErrServiceTimeout, []error{ErrExchange}},
	} {
		err := NewError(tc.kind, "9000", "boom", 400, nil)
		assert.ErrorIs(t, err, tc.kind)
		for _, parent := range tc.parents {
			assert.ErrorIsf(t, err, parent, "%v should wrap %v", tc.kind, parent)
		}
	}

	err := NewError(ErrRateLimit, "", "", 429, nil)
	assert.NotErrorIs(t, err, ErrNetwork)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestErrorString(t *testing.T) {
	t.Parallel()
	err := NewError(ErrExchange, "-1022", "Signature for this request is not valid.", 400, nil)
	assert.Equal(t, "Signature for this request is not valid. status code:400. error code:-1022", err.Error())

	err = newLocalError(ErrInvalidMethod, "unsupported HTTP method: TRACE")
	assert.Equal(t, "unsupported HTTP method: TRACE. status code:-1. error code:-1", err.Error())
}

func TestNewErrorDefaults(t *testing.T) {
	t.Parallel()
	err := NewError(nil, "", "m", 500, []byte(`{"a":1}`))
	assert.ErrorIs(t, err, ErrExchange)
	assert.Equal(t, UnknownCode, err.Code)
	assert.Equal(t, 500, err.StatusCode)
	assert.JSONEq(t, `{"a":1}`, string(err.Payload))
}

func TestAsError(t *testing.T) {
	t.Parallel()
	inner := NewError(ErrServiceTimeout, "50002", "service unavailable", 200, nil)
	wrapped := fmt.Errorf("fetching balance: %w", inner)

	got, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "50002", got.Code)
	assert.ErrorIs(t, wrapped, ErrServiceTimeout)
	assert.ErrorIs(t, wrapped, ErrExchange)

	_, ok = AsError(errors.New("plain"))
	assert.False(t, ok)
}
