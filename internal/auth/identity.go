package auth

import "github.com/google/uuid"

// Identity is the authenticated principal carried by an access token.
type Identity struct {
	UserID      uuid.UUID
	Role        string
	DisplayName string
}
