package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHMAC(t *testing.T) {
	t.Parallel()
	expectedSHA256 := "734cc62f32841568f45715aeb9f4d7891324e6d948e4c6c60c0621cdac48623a"
	expectedSHA512 := "6d32239b01dd1750557211629313d95e4f4fcb8ee517e443990ac1afc7562bfd74ffa6118387efd9e168ff86d1da5cef4a55edc63cc4ba289c4c3a8b4f7bdfc2"

	sha256hmac := GetHMAC(HashSHA256, []byte("hello world"), []byte("secret"))
	assert.Equal(t, expectedSHA256, HexEncodeToString(sha256hmac), "SHA256 HMAC should match")

	sha512hmac := GetHMAC(HashSHA512, []byte("hello world"), []byte("secret"))
	assert.Equal(t, expectedSHA512, HexEncodeToString(sha512hmac), "SHA512 HMAC should match")
}

func TestBase64Encode(t *testing.T) {
	t.Parallel()
	mac := GetHMAC(HashSHA256, []byte("hello world"), []byte("secret"))
	assert.Equal(t, "c0zGLzKEFWj0VxWuufTXiRMk5tlI5MbGDAYhzaxIYjo=", Base64Encode(mac), "base64 digest should match")
}

func TestHexEncodeToString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "68656c6c6f", HexEncodeToString([]byte("hello")))
}
