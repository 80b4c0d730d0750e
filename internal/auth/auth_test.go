package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout-domains/internal/domains"
	"checkout-domains/internal/env"
	"checkout-domains/internal/location"

	"golang.org/x/oauth2"
)

func TestClientCredentialsUsesAuthAPI(t *testing.T) {
	cfg := ClientCredentials(env.Context{Env: env.Test}, "client", "secret")
	if cfg.TokenURL != "http://localhost/v1/oauth2/token" {
		t.Fatalf("unexpected token url: %s", cfg.TokenURL)
	}
	if cfg.ClientID != "client" || cfg.ClientSecret != "secret" {
		t.Fatalf("unexpected credentials: %s/%s", cfg.ClientID, cfg.ClientSecret)
	}
	if cfg.AuthStyle != oauth2.AuthStyleInHeader {
		t.Fatalf("expected header auth style, got %v", cfg.AuthStyle)
	}
}

func TestEndpointFollowsLocation(t *testing.T) {
	ctx := env.Context{Env: env.Sandbox, Location: env.Location{Protocol: "https", Host: "www.sandbox.paypal.com"}}
	endpoint := Endpoint(ctx)
	if endpoint.TokenURL != "https://www.sandbox.paypal.com/v1/oauth2/token" {
		t.Fatalf("unexpected token url: %s", endpoint.TokenURL)
	}
	if endpoint.AuthURL != "" {
		t.Fatalf("expected no auth url, got %s", endpoint.AuthURL)
	}
}

func TestTokenSourceFetchesFromAuthAPI(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != domains.AuthAPIPath {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client" || pass != "secret" {
			t.Errorf("expected basic auth client/secret, got %q/%q", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if grant := r.PostForm.Get("grant_type"); grant != "client_credentials" {
			t.Errorf("unexpected grant type: %s", grant)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"A21AA","token_type":"Bearer","expires_in":32400}`))
	}))
	defer srv.Close()

	ec := env.Context{Env: env.Production, Location: location.MustParse(srv.URL)}
	source := TokenSource(context.Background(), ec, "client", "secret")

	token, err := source.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token.AccessToken != "A21AA" || token.TokenType != "Bearer" || !token.Valid() {
		t.Fatalf("unexpected token: %+v", token)
	}

	if _, err := source.Token(); err != nil {
		t.Fatalf("cached token: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one token request, got %d", calls)
	}
}
