package render

import (
	"net"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
)

const fallbackLinkLabel = "View"

// HostLabel derives the visible text of an item's link cell from its URL:
// "https://www.Example.co.uk/x" becomes "Example". Anything that does not
// parse as an absolute URL with a host yields "View".
func HostLabel(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fallbackLinkLabel
	}
	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))
	if host == "" {
		return fallbackLinkLabel
	}
	if net.ParseIP(host) != nil {
		return host
	}
	host = strings.TrimPrefix(host, "www.")

	if suffix, _ := publicsuffix.PublicSuffix(host); suffix != "" && suffix != host {
		host = strings.TrimSuffix(host, "."+suffix)
	}
	if host == "" {
		return fallbackLinkLabel
	}
	return capitalize(host)
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}

// ImageLoadable reports whether raw names something an image loader could
// fetch: an absolute http(s) URL with a host, a data:image URL, or a path
// relative to the share page.
func ImageLoadable(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Host != ""
	case "data":
		return strings.HasPrefix(strings.ToLower(u.Opaque), "image/")
	case "":
		return u.Path != ""
	}
	return false
}
