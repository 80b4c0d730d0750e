package location

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"checkout-domains/internal/env"

	"golang.org/x/net/idna"
)

var ErrNoHost = errors.New("no host in location")

// Parse turns a bare host, host:port, or full URL into a Location. The host is
// lowercased and IDN labels are converted to their ASCII form. An empty input
// yields the zero Location.
func Parse(raw string) (env.Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return env.Location{}, nil
	}
	if !hasScheme(raw) {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return env.Location{}, fmt.Errorf("parse location %q: %w", raw, err)
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return env.Location{}, fmt.Errorf("%w: %q", ErrNoHost, raw)
	}
	if net.ParseIP(host) == nil {
		if asciiHost, err := idna.ToASCII(host); err == nil {
			host = asciiHost
		}
	}
	if port := parsed.Port(); port != "" {
		host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	return env.Location{
		Protocol: strings.ToLower(parsed.Scheme),
		Host:     host,
	}, nil
}

// hasScheme reports whether raw starts with a scheme, ignoring any "://" that
// only appears in the path, query, or fragment.
func hasScheme(raw string) bool {
	idx := strings.Index(raw, "://")
	if idx < 0 {
		return false
	}
	return idx < strings.IndexAny(raw, "/?#")
}

// MustParse is Parse for fixed values known at compile time.
func MustParse(raw string) env.Location {
	loc, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return loc
}
