package common

import (
	"net/url"
	"strings"
)

// SimpleTimeFormat is the layout accepted wherever dates arrive as
// command line input
const SimpleTimeFormat = "2006-01-02 15:04:05"

// EncodeURLValues concatenates url values onto a url.URL path
func EncodeURLValues(urlPath string, values url.Values) string {
	u := urlPath
	if len(values) > 0 {
		u += "?" + values.Encode()
	}
	return u
}

// ExtractHost returns the hostname out of a raw URL, stripping any scheme,
// port and path information
func ExtractHost(address string) string {
	host := address
	if idx := strings.Index(host, "//"); idx != -1 {
		host = host[idx+2:]
	}
	if idx := strings.IndexAny(host, ":/"); idx != -1 {
		host = host[:idx]
	}
	return host
}
