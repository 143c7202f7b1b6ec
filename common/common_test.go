package common

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeURLValues(t *testing.T) {
	t.Parallel()
	urlstring := "https://www.test.com"
	expectedOutput := `https://www.test.com?env=TEST%2FDATABASE&format=json`
	values := url.Values{}
	values.Set("format", "json")
	values.Set("env", "TEST/DATABASE")
	assert.Equal(t, expectedOutput, EncodeURLValues(urlstring, values))

	assert.Equal(t, urlstring, EncodeURLValues(urlstring, nil), "no values should leave the path untouched")
}

func TestExtractHost(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "api.hbdm.com", ExtractHost("https://api.hbdm.com"))
	assert.Equal(t, "api.hbdm.com", ExtractHost("https://api.hbdm.com:443/linear-swap-api"))
	assert.Equal(t, "localhost", ExtractHost("http://localhost:8080/path"))
	assert.Equal(t, "www.okx.com", ExtractHost("www.okx.com/api/v5"))
}
