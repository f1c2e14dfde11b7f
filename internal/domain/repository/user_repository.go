package repository

import (
	"context"

	"github.com/shopkit/commerce-api/internal/domain/identity"
)

// UserRepository is the persistence port for the identity context.
// FindByEmail and FindByID return (nil, nil) when no user matches;
// infrastructure errors are returned as-is and stay unclassified.
type UserRepository interface {
	Save(ctx context.Context, u *identity.User) error
	FindByEmail(ctx context.Context, email identity.Email) (*identity.User, error)
	FindByID(ctx context.Context, id int64) (*identity.User, error)
}
