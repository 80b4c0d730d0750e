package domains

import (
	"strings"

	"checkout-domains/internal/env"
)

const (
	AuthAPIPath   = "/v1/oauth2/token"
	OrderAPIPath  = "/v2/checkout/orders"
	LoggerAPIPath = "/xoplatform/logger/api/logger"

	localOrigin = "http://localhost"
)

var paypalDomains = map[env.Environment]string{
	env.Production: "https://www.paypal.com",
	env.Sandbox:    "https://www.sandbox.paypal.com",
	env.Local:      "http://localhost.paypal.com:8000",
	env.Test:       "mock://www.paypal.com",
}

var paypalAPIDomains = map[env.Environment]string{
	env.Production: "https://api-m.paypal.com",
	env.Sandbox:    "https://api-m.sandbox.paypal.com",
	env.Local:      "http://localhost.paypal.com:8000",
	env.Test:       "mock://api-m.paypal.com",
}

// PayPalDomain returns the web domain for the context's environment. The stage
// environment is served from the configured stage host.
func PayPalDomain(ctx env.Context) (string, error) {
	if ctx.Env == env.Stage {
		if ctx.StageHost == "" {
			return "", missingStageHost()
		}
		return "https://" + ctx.StageHost, nil
	}
	if domain, ok := paypalDomains[ctx.Env]; ok {
		return domain, nil
	}
	return paypalDomains[env.Production], nil
}

// PayPalAPIDomain returns the REST API domain for the context's environment.
func PayPalAPIDomain(ctx env.Context) (string, error) {
	if ctx.Env == env.Stage {
		switch {
		case ctx.StageDomain != "":
			return "https://" + ctx.StageDomain, nil
		case ctx.StageHost != "":
			return "https://api-m." + ctx.StageHost, nil
		default:
			return "", missingStageHost()
		}
	}
	if domain, ok := paypalAPIDomains[ctx.Env]; ok {
		return domain, nil
	}
	return paypalAPIDomains[env.Production], nil
}

// PayPalLoggerDomain returns the domain client logs are shipped to. On a
// developer machine that is the stage host, which must be configured.
func PayPalLoggerDomain(ctx env.Context) (string, error) {
	if ctx.IsLocal() {
		if ctx.StageHost == "" {
			return "", missingStageHost()
		}
		return "https://" + ctx.StageHost, nil
	}
	return PayPalDomain(ctx)
}

// PayPalLoggerURL is the logger API endpoint on the logger domain.
func PayPalLoggerURL(ctx env.Context) (string, error) {
	domain, err := PayPalLoggerDomain(ctx)
	if err != nil {
		return "", err
	}
	return domain + LoggerAPIPath, nil
}

// BuildPayPalURL joins path onto the environment's web domain.
func BuildPayPalURL(ctx env.Context, path string) (string, error) {
	domain, err := PayPalDomain(ctx)
	if err != nil {
		return "", err
	}
	return domain + normalizePath(path), nil
}

// BuildPayPalAPIURL joins path onto the environment's REST API domain.
func BuildPayPalAPIURL(ctx env.Context, path string) (string, error) {
	domain, err := PayPalAPIDomain(ctx)
	if err != nil {
		return "", err
	}
	return domain + normalizePath(path), nil
}

// AuthAPIURL is the OAuth2 token endpoint on the current API origin.
func AuthAPIURL(ctx env.Context) string {
	return apiOrigin(ctx) + AuthAPIPath
}

// OrderAPIURL is the orders endpoint on the current API origin.
func OrderAPIURL(ctx env.Context) string {
	return apiOrigin(ctx) + OrderAPIPath
}

// apiOrigin is the origin same-site API calls are made against: localhost for
// local and test runs, otherwise the page's own origin. Without a known
// location it falls back to the environment's API domain, and to the sandbox
// API when a stage host is missing.
func apiOrigin(ctx env.Context) string {
	if ctx.IsLocal() || ctx.IsTest() {
		return localOrigin
	}
	if origin := ctx.Location.Origin(); origin != "" {
		return origin
	}
	if domain, err := PayPalAPIDomain(ctx); err == nil {
		return domain
	}
	return paypalAPIDomains[env.Sandbox]
}

func normalizePath(path string) string {
	if path == "" || strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
