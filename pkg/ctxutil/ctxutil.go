package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey      ctxKey = "user_id"
	displayNameKey ctxKey = "display_name"
	roleKey        ctxKey = "role"
	requestIDKey   ctxKey = "request_id"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithDisplayName stores the operator's display name in the context.
// Movement rows record it as nom_prenom_personne.
func WithDisplayName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, displayNameKey, name)
}

// DisplayNameFromCtx extracts the operator's display name.
// Returns "Utilisateur" when absent, matching what movement rows expect.
func DisplayNameFromCtx(ctx context.Context) string {
	name, ok := ctx.Value(displayNameKey).(string)
	if !ok || name == "" {
		return "Utilisateur"
	}
	return name
}

// WithRole stores the user's role string in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// IsAdminCtx reports whether the context user has the admin role.
func IsAdminCtx(ctx context.Context) bool {
	role, _ := ctx.Value(roleKey).(string)
	return role == "admin"
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
