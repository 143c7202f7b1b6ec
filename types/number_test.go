package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshalJSON(t *testing.T) {
	t.Parallel()
	var n Number

	require.NoError(t, json.Unmarshal([]byte(`"123.45"`), &n))
	assert.Equal(t, 123.45, n.Float64())

	require.NoError(t, json.Unmarshal([]byte(`123.45`), &n))
	assert.Equal(t, 123.45, n.Float64())

	require.NoError(t, json.Unmarshal([]byte(`""`), &n))
	assert.Zero(t, n.Float64())

	require.NoError(t, json.Unmarshal([]byte(`null`), &n))
	assert.Zero(t, n.Float64())

	require.NoError(t, json.Unmarshal([]byte(`"-42"`), &n))
	assert.Equal(t, int64(-42), n.Int64())

	require.Error(t, json.Unmarshal([]byte(`"12b"`), &n))
}

func TestNumberMarshalJSON(t *testing.T) {
	t.Parallel()
	payload, err := json.Marshal(Number(20.522))
	require.NoError(t, err)
	assert.Equal(t, `"20.522"`, string(payload))

	payload, err = json.Marshal(Number(0))
	require.NoError(t, err)
	assert.Equal(t, `"0"`, string(payload))
}

func TestNumberString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "123.45", Number(123.45).String())
	assert.Equal(t, "0", Number(0).String())
}
