package posts

import (
	"context"

	"github.com/fredd/aora/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=posts.go -destination=mocks/mock.go -package=mocks

// Service covers the video feed queries and the submission workflow.
type Service interface {
	// All returns every post, newest first.
	All(ctx context.Context) ([]*domain.Post, error)

	// Latest returns the 7 most recent posts, newest first.
	Latest(ctx context.Context) ([]*domain.Post, error)

	// Search returns posts matching the term by title.
	Search(ctx context.Context, term string) ([]*domain.Post, error)

	// ByCreator returns one creator's posts, newest first.
	ByCreator(ctx context.Context, creatorID string) ([]*domain.Post, error)

	// Submit validates the form, uploads both assets concurrently and
	// creates the post document. Either everything is created or no
	// document exists; already-uploaded files are never rolled back,
	// only recorded in the orphan ledger.
	Submit(ctx context.Context, form domain.Form, creatorID string) (*domain.Post, error)
}
