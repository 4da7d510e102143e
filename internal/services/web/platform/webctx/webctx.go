// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"
	"net/http"
	"strings"
)

type accessTokenKey struct{}

const bearerPrefix = "Bearer "

// BearerToken returns the bearer credential carried by r's Authorization
// header, or "" when there is none.
func BearerToken(r *http.Request) string {
	if r == nil {
		return ""
	}
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(raw) < len(bearerPrefix) || !strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(raw[len(bearerPrefix):])
}

// WithAccessToken returns ctx carrying token for downstream gateway calls.
func WithAccessToken(ctx context.Context, token string) context.Context {
	token = strings.TrimSpace(token)
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the token attached by WithAccessToken.
func AccessToken(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

// WithRequestAccessToken returns r's context enriched with its bearer token.
func WithRequestAccessToken(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return WithAccessToken(r.Context(), BearerToken(r))
}
