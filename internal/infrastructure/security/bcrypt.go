package security

import (
	"github.com/shopkit/commerce-api/internal/application"
	"github.com/shopkit/commerce-api/pkg/helpers"
)

// BcryptHasher implements the PasswordHasher port on top of bcrypt. The
// domain only ever sees the opaque hash string.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher { return BcryptHasher{} }

func (BcryptHasher) Hash(plain string) (string, error) {
	return helpers.HashPassword(plain)
}

func (BcryptHasher) Verify(plain, hash string) bool {
	return helpers.CompareHashAndPassword(hash, plain)
}

var _ application.PasswordHasher = BcryptHasher{}
