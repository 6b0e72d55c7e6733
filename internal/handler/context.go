package handlers

import (
	"context"

	"yatube/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser stores the authenticated user in the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the user set by the auth middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok && user != nil
}
