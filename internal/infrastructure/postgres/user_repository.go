package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopkit/commerce-api/internal/domain/identity"
	"github.com/shopkit/commerce-api/internal/domain/repository"
)

// uniqueViolation is the postgres error code raised by the unique index on
// users.email. It backs the uniqueness check the register handler can only
// perform optimistically.
const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *identity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    is_active     = EXCLUDED.is_active,
		    updated_at    = now()
	`, u.ID(), u.Email().String(), u.PasswordHash().String(), u.IsActive())

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return identity.ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email identity.Email) (*identity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, is_active
		FROM users
		WHERE email = $1
	`, email.String())
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	return r.findOne(ctx, `
		SELECT id, email, password_hash, is_active
		FROM users
		WHERE id = $1
	`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*identity.User, error) {
	var (
		id       int64
		rawEmail string
		rawHash  string
		isActive bool
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &rawEmail, &rawHash, &isActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	email, err := identity.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	hash, err := identity.NewPasswordHash(rawHash)
	if err != nil {
		return nil, err
	}
	return identity.Reconstruct(id, email, hash, isActive), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
