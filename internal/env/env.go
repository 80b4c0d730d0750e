package env

import (
	"errors"
	"fmt"
	"strings"
)

type Environment string

const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
	Stage      Environment = "stage"
	Local      Environment = "local"
	Test       Environment = "test"
)

var ErrInvalidEnv = errors.New("invalid environment")

var known = []Environment{Production, Sandbox, Stage, Local, Test}

// Parse maps a case-insensitive name onto an Environment. An empty value is production.
func Parse(value string) (Environment, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return Production, nil
	}
	for _, candidate := range known {
		if string(candidate) == lower {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidEnv, value)
}

func (e Environment) String() string {
	return string(e)
}

// Location is the host the caller is currently running on.
type Location struct {
	Protocol string
	Host     string
}

func (l Location) Empty() bool {
	return l.Host == ""
}

// Origin returns protocol://host, or "" when no host is known.
func (l Location) Origin() string {
	if l.Empty() {
		return ""
	}
	protocol := l.Protocol
	if protocol == "" {
		protocol = "https"
	}
	return protocol + "://" + l.Host
}

// Context carries the deployment stage and the current location into every
// resolver call. It is a plain value; callers build a new one instead of
// mutating shared state.
type Context struct {
	Env         Environment
	StageHost   string
	StageDomain string
	Location    Location
}

func (c Context) IsLocal() bool {
	return c.Env == Local
}

func (c Context) IsTest() bool {
	return c.Env == Test
}

// WithLocation returns a copy of c evaluated from a different location.
func (c Context) WithLocation(loc Location) Context {
	c.Location = loc
	return c
}
