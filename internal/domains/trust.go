package domains

import "checkout-domains/internal/env"

// IsPayPalTrustedDomain reports whether the context's current location belongs
// to PayPal or Venmo. The local environment is always trusted; an unknown
// location never is.
func IsPayPalTrustedDomain(ctx env.Context) bool {
	if ctx.IsLocal() {
		return true
	}
	if ctx.Location.Empty() {
		return false
	}
	return IsPayPalDomain(ctx) || IsVenmoDomain(ctx)
}

func IsPayPalDomain(ctx env.Context) bool {
	if ctx.Location.Empty() {
		return false
	}
	return PayPalDomainPattern(ctx).MatchString(ctx.Location.Host)
}

func IsVenmoDomain(ctx env.Context) bool {
	if ctx.Location.Empty() {
		return false
	}
	return VenmoDomainPattern(ctx).MatchString(ctx.Location.Origin())
}
