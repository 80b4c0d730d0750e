package domains

import (
	"testing"

	"checkout-domains/internal/env"
)

func TestPayPalDomainPatternMatchesValidDomains(t *testing.T) {
	valid := []string{
		"master.qa.paypal.com",
		"test-env.qa.paypal.com:3000",
		"geo.qa.paypal.com",
		"www.paypal.com:3080",
		"www.paypal.cn",
		"www.paypal.cn:3000",
		"www.mschina.qa.paypal.cn",
		"www.paypal.com",
	}

	pattern := PayPalDomainPattern(env.Context{Env: env.Test})
	for _, domain := range valid {
		if !pattern.MatchString(domain) {
			t.Fatalf("%s must match %s", domain, pattern)
		}
	}
}

func TestPayPalDomainPatternRejectsInvalidDomains(t *testing.T) {
	invalid := []string{
		"www.paypal.com.example.com",
		"www.paypal.cn.example.com",
		"www.evilpaypal.com",
		"www.paypal.com:",
		"www.paypal.com:80a",
		"www.paypal.de",
	}

	pattern := PayPalDomainPattern(env.Context{Env: env.Test})
	for _, domain := range invalid {
		if pattern.MatchString(domain) {
			t.Fatalf("%s must not match %s", domain, pattern)
		}
	}
}

func TestVenmoDomainPatternMatchesValidDomains(t *testing.T) {
	valid := []string{
		"https://venmo.com",
		"http://www.venmo.com",
		"https://id.venmo.com",
		"http://www.venmo.com:8000",
		"https://account.qa.venmo.com",
		"http://www.account.qa.venmo.com",
		"https://account.venmo.com",
	}

	for _, environment := range []env.Environment{env.Production, env.Sandbox, env.Test} {
		pattern := VenmoDomainPattern(env.Context{Env: environment})
		for _, domain := range valid {
			if !pattern.MatchString(domain) {
				t.Fatalf("%s must match in %s", domain, environment)
			}
		}
	}
}

func TestVenmoDomainPatternLocalhost(t *testing.T) {
	local := VenmoDomainPattern(env.Context{Env: env.Local})
	if !local.MatchString("https://localhost.venmo.com") {
		t.Fatalf("localhost venmo domain must match in local")
	}

	prod := VenmoDomainPattern(env.Context{Env: env.Production})
	if prod.MatchString("https://localhost.venmo.com") {
		t.Fatalf("localhost venmo domain must not match in production")
	}
	if !prod.MatchString("https://notlocalhost.venmo.com") {
		t.Fatalf("labels containing localhost must still match")
	}
}

func TestVenmoDomainPatternRejectsInvalidDomains(t *testing.T) {
	invalid := []string{
		"www.venmo.com.example.com",
		"www.venmo.cn.example.com",
		"www.venmo.com",
		"https://www.venmo.cn",
		"https://www.venmo.com.example.com",
		"ftp://www.venmo.com",
	}

	for _, environment := range []env.Environment{env.Production, env.Local} {
		pattern := VenmoDomainPattern(env.Context{Env: environment})
		for _, domain := range invalid {
			if pattern.MatchString(domain) {
				t.Fatalf("%s must not match in %s", domain, environment)
			}
		}
	}
}

func TestNilPatternNeverMatches(t *testing.T) {
	var pattern *Pattern
	if pattern.MatchString("www.paypal.com") {
		t.Fatalf("nil pattern must not match")
	}
	if pattern.String() != "" {
		t.Fatalf("nil pattern must render empty")
	}
}
