// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyAnonID ctxKey = "anon_id"
	keyUserID ctxKey = "user_id"
	keyRole   ctxKey = "role"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, anonID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if anonID != "" {
		ctx = context.WithValue(ctx, keyAnonID, anonID)
	}
	return ctx
}

// WithAnon annotates context with the anonymous actor token
func WithAnon(ctx context.Context, anonID string) context.Context {
	if anonID != "" {
		ctx = context.WithValue(ctx, keyAnonID, anonID)
	}
	return ctx
}

// WithUser annotates context with the authenticated account id and role
func WithUser(ctx context.Context, userID, role string) context.Context {
	if userID != "" {
		ctx = context.WithValue(ctx, keyUserID, userID)
	}
	if role != "" {
		ctx = context.WithValue(ctx, keyRole, role)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// AnonID returns the anonymous actor token on the context if present
func AnonID(ctx context.Context) string {
	if v, ok := ctx.Value(keyAnonID).(string); ok {
		return v
	}
	return ""
}

// UserID returns the authenticated account id on the context if present
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(keyUserID).(string); ok {
		return v
	}
	return ""
}

// Role returns the authenticated account role on the context if present
func Role(ctx context.Context) string {
	if v, ok := ctx.Value(keyRole).(string); ok {
		return v
	}
	return ""
}
