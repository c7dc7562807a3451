package postsimpl

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/internal/domain"
	"github.com/fredd/aora/internal/posts"
	"github.com/fredd/aora/internal/repositories/orphan"
	apperrors "github.com/fredd/aora/pkg/errors"
	"github.com/fredd/aora/pkg/logger"
)

type Opts struct {
	fx.In

	Databases  appwrite.Databases
	Storage    appwrite.Storage
	OrphanRepo orphan.Repository
	Logger     logger.Logger
	Config     *config.Config
}

type PostsImpl struct {
	Databases  appwrite.Databases
	Storage    appwrite.Storage
	OrphanRepo orphan.Repository
	Logger     logger.Logger
	Config     *config.Config
}

func New(opts Opts) *PostsImpl {
	return &PostsImpl{
		Databases:  opts.Databases,
		Storage:    opts.Storage,
		OrphanRepo: opts.OrphanRepo,
		Logger:     opts.Logger.WithComponent("Posts"),
		Config:     opts.Config,
	}
}

var _ posts.Service = (*PostsImpl)(nil)

func (p *PostsImpl) All(ctx context.Context) ([]*domain.Post, error) {
	return p.list(ctx, appwrite.QueryOrderDesc("$createdAt"))
}

func (p *PostsImpl) Latest(ctx context.Context) ([]*domain.Post, error) {
	return p.list(ctx,
		appwrite.QueryOrderDesc("$createdAt"),
		appwrite.QueryLimit(7),
	)
}

func (p *PostsImpl) Search(ctx context.Context, term string) ([]*domain.Post, error) {
	return p.list(ctx, appwrite.QuerySearch("title", term))
}

func (p *PostsImpl) ByCreator(ctx context.Context, creatorID string) ([]*domain.Post, error) {
	return p.list(ctx,
		appwrite.QueryEqual("creator", creatorID),
		appwrite.QueryOrderDesc("$createdAt"),
	)
}

func (p *PostsImpl) list(ctx context.Context, queries ...string) ([]*domain.Post, error) {
	docs, err := p.Databases.ListDocuments(
		ctx,
		p.Config.Appwrite.DatabaseID,
		p.Config.Appwrite.PostCollectionID,
		queries,
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts")
	}

	return lo.Map(docs, func(doc appwrite.Document, _ int) *domain.Post {
		return docToPost(doc)
	}), nil
}

func docToPost(doc appwrite.Document) *domain.Post {
	return &domain.Post{
		ID:           doc.ID,
		Title:        doc.String("title"),
		Prompt:       doc.String("prompt"),
		ThumbnailURL: doc.String("thumbnail"),
		VideoURL:     doc.String("video"),
		CreatorID:    doc.String("creator"),
		CreatedAt:    doc.CreatedAt,
	}
}
