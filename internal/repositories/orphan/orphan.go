package orphan

import (
	"context"
	"errors"

	"github.com/fredd/aora/internal/domain"
)

var ErrCannotCreate = errors.New("cannot create orphan entry")

//go:generate go run go.uber.org/mock/mockgen -source=orphan.go -destination=mocks/mock.go -package=mocks
type Repository interface {
	// Create records an uncompensated remote side effect.
	Create(ctx context.Context, orphan domain.Orphan) error

	// ListUnresolved returns open entries of one kind, oldest first.
	ListUnresolved(ctx context.Context, kind domain.OrphanKind, limit int) ([]*domain.Orphan, error)

	// MarkResolved closes an entry after cleanup succeeded.
	MarkResolved(ctx context.Context, id int64) error
}
