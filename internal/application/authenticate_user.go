package application

import (
	"context"

	"github.com/shopkit/commerce-api/internal/domain/identity"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// AuthenticateUserCommand carries the raw login input from the boundary.
type AuthenticateUserCommand struct {
	Email         string
	PlainPassword string
}

// AuthenticateUserResult is returned when the credentials check out. Token
// issuance happens at the boundary after this succeeds.
type AuthenticateUserResult struct {
	UserID int64
}

// AuthenticateUserHandler verifies a credential pair. A missing user and a
// wrong password both collapse to ErrInvalidCredentials so account existence
// never leaks. A malformed email is reported as ErrInvalidEmail instead: it
// is a client input error, not a credential mismatch.
type AuthenticateUserHandler struct {
	users  repository.UserRepository
	hasher PasswordHasher
}

func NewAuthenticateUserHandler(users repository.UserRepository, hasher PasswordHasher) *AuthenticateUserHandler {
	return &AuthenticateUserHandler{users: users, hasher: hasher}
}

func (h *AuthenticateUserHandler) Handle(ctx context.Context, cmd AuthenticateUserCommand) (*AuthenticateUserResult, error) {
	email, err := identity.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	u, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, identity.ErrInvalidCredentials
	}

	if !h.hasher.Verify(cmd.PlainPassword, u.PasswordHash().String()) {
		return nil, identity.ErrInvalidCredentials
	}

	return &AuthenticateUserResult{UserID: u.ID()}, nil
}
