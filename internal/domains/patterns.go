package domains

import (
	"regexp"

	"checkout-domains/internal/env"
)

var (
	paypalRegex = regexp.MustCompile(`^(?:[a-z][a-z0-9+.-]*://)?(?:[a-z0-9-]+\.)*paypal\.(?:com|cn)(?::\d+)?$`)
	venmoRegex  = regexp.MustCompile(`^https?://(?:[a-z0-9-]+\.)*venmo\.com(?::\d+)?$`)

	// a localhost label is only a valid venmo subdomain on a developer machine
	venmoLocalhostRegex = regexp.MustCompile(`^https?://(?:[a-z0-9-]+\.)*localhost\.`)
)

// Pattern is a compiled matcher for a brand's first-party domains. A value
// matches when it satisfies allow and does not satisfy deny.
type Pattern struct {
	allow *regexp.Regexp
	deny  *regexp.Regexp
}

func (p *Pattern) MatchString(value string) bool {
	if p == nil || p.allow == nil {
		return false
	}
	if !p.allow.MatchString(value) {
		return false
	}
	return p.deny == nil || !p.deny.MatchString(value)
}

func (p *Pattern) String() string {
	if p == nil || p.allow == nil {
		return ""
	}
	if p.deny == nil {
		return p.allow.String()
	}
	return p.allow.String() + " !" + p.deny.String()
}

// PayPalDomainPattern matches paypal.com and paypal.cn hosts with any number
// of subdomain labels and an optional port. A scheme is accepted but not
// required.
func PayPalDomainPattern(_ env.Context) *Pattern {
	return &Pattern{allow: paypalRegex}
}

// VenmoDomainPattern matches http(s) venmo.com origins. Bare hosts never
// match, and localhost subdomains are only accepted in the local environment.
func VenmoDomainPattern(ctx env.Context) *Pattern {
	if ctx.IsLocal() {
		return &Pattern{allow: venmoRegex}
	}
	return &Pattern{allow: venmoRegex, deny: venmoLocalhostRegex}
}
