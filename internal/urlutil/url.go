// Package urlutil parses target URLs for the session state machine: host,
// port, request path, and whether the host is a literal IP address (which
// skips DNS resolution).
package urlutil

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// Target is a parsed HTTP GET target.
type Target struct {
	Raw       string
	Scheme    string
	Host      string // hostname or literal IP, without port
	Port      string // numeric port, always set
	Path      string // request-target: path plus "?query" when present
	LiteralIP bool
}

// Parse validates u as an "http" URL and extracts the pieces Session needs.
// Only the "http" scheme is supported; there is no TLS handling.
func Parse(raw string) (Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Target{}, fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Scheme != "http" {
		return Target{}, fmt.Errorf("unsupported scheme %q in %q (only http is supported)", u.Scheme, raw)
	}
	if u.Host == "" {
		return Target{}, fmt.Errorf("missing host in %q", raw)
	}

	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "80"
	}
	if _, err := strconv.Atoi(port); err != nil {
		return Target{}, fmt.Errorf("invalid port in %q: %w", raw, err)
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path = path + "?" + u.RawQuery
	}

	return Target{
		Raw:       raw,
		Scheme:    u.Scheme,
		Host:      host,
		Port:      port,
		Path:      path,
		LiteralIP: net.ParseIP(host) != nil,
	}, nil
}

// Addr returns the host:port pair suitable for net.Dial.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, t.Port)
}
