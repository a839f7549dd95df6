package auth

import (
	"github.com/google/uuid"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
)

// minPasswordLen is the shortest accepted password for new accounts.
const minPasswordLen = 8

// LoginInput holds parameters for the password login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateUserInput holds parameters for the admin account creation.
type CreateUserInput struct {
	Username    string
	DisplayName string
	Password    string
	Role        domain.UserRole
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.DisplayName == "" {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
	}
	if len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	}
	if i.Role != "" && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be user or admin"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePasswordInput holds parameters for the admin password reset.
type UpdatePasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// Validate validates the update password input.
func (i UpdatePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(i.NewPassword) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
