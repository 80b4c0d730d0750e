package auth

import (
	"context"

	"checkout-domains/internal/domains"
	"checkout-domains/internal/env"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Endpoint describes the PayPal token endpoint for ctx. PayPal only issues
// tokens through client credentials, so AuthURL stays empty.
func Endpoint(ctx env.Context) oauth2.Endpoint {
	return oauth2.Endpoint{
		TokenURL:  domains.AuthAPIURL(ctx),
		AuthStyle: oauth2.AuthStyleInHeader,
	}
}

// ClientCredentials builds the token source configuration for a REST app.
// Nothing is requested until the caller asks the config for a token.
func ClientCredentials(ctx env.Context, clientID, clientSecret string) *clientcredentials.Config {
	endpoint := Endpoint(ctx)
	return &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     endpoint.TokenURL,
		AuthStyle:    endpoint.AuthStyle,
	}
}

// TokenSource returns a cached, auto-refreshing source of client-credentials
// tokens issued by the auth API for ec.
func TokenSource(ctx context.Context, ec env.Context, clientID, clientSecret string) oauth2.TokenSource {
	return ClientCredentials(ec, clientID, clientSecret).TokenSource(ctx)
}
