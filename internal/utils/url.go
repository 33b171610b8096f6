package utils

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var urlRegex = regexp.MustCompile(`https?://[^\s]+`)

// ExtractURLs returns every http(s) URL found in the content, in order.
func ExtractURLs(content string) []string {
	return urlRegex.FindAllString(content, -1)
}

// NormalizeHost extracts the lowercased, punycoded host of a raw URL. An
// unparseable URL yields the empty string.
func NormalizeHost(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	if asciiHost, err := idna.ToASCII(host); err == nil {
		host = asciiHost
	}
	return host
}
