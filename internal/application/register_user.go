package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shopkit/commerce-api/internal/domain/identity"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// RegisterUserCommand carries the raw registration input from the boundary.
type RegisterUserCommand struct {
	Email         string
	PlainPassword string
}

// RegisterUserResult is returned on successful registration.
type RegisterUserResult struct {
	UserID int64
	Email  string
}

// RegisterUserHandler orchestrates user registration: validates the email,
// checks uniqueness against the repository, hashes the credential and
// persists the new aggregate.
//
// The uniqueness check and the save are not atomic with respect to
// concurrent callers; the repository implementation must enforce the unique
// constraint itself (the postgres adapter relies on a unique index).
type RegisterUserHandler struct {
	users     repository.UserRepository
	hasher    PasswordHasher
	ids       IDGenerator
	publisher EventPublisher
	logger    *logrus.Logger
}

func NewRegisterUserHandler(users repository.UserRepository, hasher PasswordHasher, ids IDGenerator, publisher EventPublisher, logger *logrus.Logger) *RegisterUserHandler {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &RegisterUserHandler{users: users, hasher: hasher, ids: ids, publisher: publisher, logger: logger}
}

func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	email, err := identity.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	existing, err := h.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, identity.ErrUserAlreadyExists
	}

	id, err := h.ids.NextID(ctx)
	if err != nil {
		return nil, err
	}

	hashed, err := h.hasher.Hash(cmd.PlainPassword)
	if err != nil {
		return nil, err
	}
	hash, err := identity.NewPasswordHash(hashed)
	if err != nil {
		return nil, err
	}

	u := identity.Register(id, email, hash)
	if err := h.users.Save(ctx, u); err != nil {
		return nil, err
	}

	if err := h.publisher.Publish(ctx, u.PullEvents()); err != nil && h.logger != nil {
		h.logger.WithError(err).WithField("user_id", id).Warn("publish user events failed")
	}

	return &RegisterUserResult{UserID: id, Email: email.String()}, nil
}
