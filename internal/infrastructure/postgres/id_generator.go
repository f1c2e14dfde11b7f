package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopkit/commerce-api/internal/application"
)

// SequenceIDGenerator draws integer identifiers from a named postgres
// sequence, one sequence per aggregate type.
type SequenceIDGenerator struct {
	pool     *pgxpool.Pool
	sequence string
}

func NewSequenceIDGenerator(pool *pgxpool.Pool, sequence string) *SequenceIDGenerator {
	return &SequenceIDGenerator{pool: pool, sequence: sequence}
}

func (g *SequenceIDGenerator) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := g.pool.QueryRow(ctx, `SELECT nextval($1::regclass)`, g.sequence).Scan(&id)
	return id, err
}

var _ application.IDGenerator = (*SequenceIDGenerator)(nil)
