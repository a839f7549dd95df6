package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-soudage/outillage-backend/internal/domain"
	"github.com/atelier-soudage/outillage-backend/pkg/ctxutil"
)

// ListUsers returns every account (admin only). Password hashes are
// blanked before the list leaves the service.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth.ListUsers: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// CreateUser creates an operator account (admin only). A duplicate
// username surfaces as ErrAlreadyExists.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	input.Username = strings.TrimSpace(input.Username)
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.CreateUser hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("role", role.String()),
	)

	user.PasswordHash = ""
	return &user, nil
}

// UpdateUserPassword resets an account password (admin only) and revokes
// every refresh token of the account in the same transaction.
func (s *Service) UpdateUserPassword(ctx context.Context, input UpdatePasswordInput) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.UpdateUserPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePassword(txCtx, input.UserID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, input.UserID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.UpdateUserPassword: %w", err)
	}

	s.log.InfoContext(ctx, "user password updated",
		slog.String("target_user_id", input.UserID.String()))
	return nil
}

// DeleteUser removes an account (admin only). Admins cannot delete their
// own account.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}

	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if callerID == id {
		return domain.NewValidationError("id", "cannot delete your own account")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("auth.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("target_user_id", id.String()))
	return nil
}
