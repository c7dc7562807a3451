package orphan

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fredd/aora/internal/domain"
	"github.com/fredd/aora/internal/repositories"
	"github.com/fredd/aora/pkg/logger"

	sq "github.com/Masterminds/squirrel"
)

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("OrphanRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create records an uncompensated remote side effect.
func (p *Pgx) Create(ctx context.Context, orphan domain.Orphan) error {
	query, args, err := repositories.SqBuilder.
		Insert("orphans").
		Columns("kind", "remote_id", "bucket_id", "note", "created_at").
		Values(orphan.Kind, orphan.RemoteID, orphan.BucketID, orphan.Note, time.Now()).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	if _, err := p.pg.Exec(ctx, query, args...); err != nil {
		return ErrCannotCreate
	}
	return nil
}

// ListUnresolved returns open entries of one kind, oldest first.
func (p *Pgx) ListUnresolved(ctx context.Context, kind domain.OrphanKind, limit int) ([]*domain.Orphan, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "kind", "remote_id", "bucket_id", "note", "created_at", "resolved_at").
		From("orphans").
		Where(sq.Eq{"kind": kind, "resolved_at": nil}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orphans []*domain.Orphan
	for rows.Next() {
		var o domain.Orphan
		if err := rows.Scan(&o.ID, &o.Kind, &o.RemoteID, &o.BucketID, &o.Note, &o.CreatedAt, &o.ResolvedAt); err != nil {
			return nil, err
		}
		orphans = append(orphans, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orphans, nil
}

// MarkResolved closes an entry after cleanup succeeded.
func (p *Pgx) MarkResolved(ctx context.Context, id int64) error {
	query, args, err := repositories.SqBuilder.
		Update("orphans").
		Set("resolved_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = p.pg.Exec(ctx, query, args...)
	return err
}
