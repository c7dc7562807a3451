package postsimpl

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/domain"
	apperrors "github.com/fredd/aora/pkg/errors"
)

// ThumbnailPreview is the fixed transform requested for image assets.
var ThumbnailPreview = appwrite.PreviewOpts{
	Width:   2000,
	Height:  2000,
	Gravity: "top",
	Quality: 100,
}

// Submit runs the whole workflow: validate, upload video and thumbnail in
// parallel, then create the document. The two uploads are unordered with
// respect to each other; both must succeed before the document is written.
func (p *PostsImpl) Submit(ctx context.Context, form domain.Form, creatorID string) (*domain.Post, error) {
	if !form.Complete() {
		return nil, apperrors.Invalid("posts.submit", "Please fill in all the fields")
	}

	var (
		wg    sync.WaitGroup
		video uploadResult
		thumb uploadResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		video = p.uploadAsset(ctx, form.Video)
	}()
	go func() {
		defer wg.Done()
		thumb = p.uploadAsset(ctx, form.Thumbnail)
	}()
	wg.Wait()

	if video.err != nil || thumb.err != nil {
		// A sibling upload that did land stays in storage; track it.
		if video.err == nil {
			p.recordFileOrphan(video.fileID, "video uploaded, thumbnail upload failed")
		}
		if thumb.err == nil {
			p.recordFileOrphan(thumb.fileID, "thumbnail uploaded, video upload failed")
		}
		if video.err != nil {
			return nil, video.err
		}
		return nil, thumb.err
	}

	doc, err := p.Databases.CreateDocument(
		ctx,
		p.Config.Appwrite.DatabaseID,
		p.Config.Appwrite.PostCollectionID,
		uuid.NewString(),
		map[string]any{
			"title":     form.Title,
			"prompt":    form.Prompt,
			"thumbnail": thumb.url,
			"video":     video.url,
			"creator":   creatorID,
		},
	)
	if err != nil {
		p.recordFileOrphan(video.fileID, "post creation failed after upload")
		p.recordFileOrphan(thumb.fileID, "post creation failed after upload")
		return nil, apperrors.Wrap(err, "failed to create post")
	}

	post := docToPost(*doc)
	p.Logger.Info("Post created", "post_id", post.ID, "creator", creatorID)
	return post, nil
}

type uploadResult struct {
	fileID string
	url    string
	err    error
}

func (p *PostsImpl) uploadAsset(ctx context.Context, asset *domain.Asset) uploadResult {
	if asset == nil {
		return uploadResult{err: apperrors.Invalid("posts.upload", "no asset supplied")}
	}
	// Reject unknown types before touching the network.
	if asset.Type != domain.AssetTypeVideo && asset.Type != domain.AssetTypeImage {
		return uploadResult{err: apperrors.Invalid("posts.upload", "unrecognized asset type "+string(asset.Type))}
	}

	bucket := p.Config.Appwrite.StorageBucketID
	file, err := p.Storage.CreateFile(ctx, bucket, uuid.NewString(), *asset)
	if err != nil {
		return uploadResult{err: apperrors.Wrap(err, "failed to upload "+string(asset.Type))}
	}

	url, err := ResolveFileURL(p.Storage, bucket, file.ID, asset.Type)
	if err != nil {
		return uploadResult{err: err}
	}
	return uploadResult{fileID: file.ID, url: url}
}

// ResolveFileURL derives the retrieval URL for an uploaded asset. Videos
// resolve to the direct file view; images to a fixed-transform preview.
// The derivation is local, it issues no remote call.
func ResolveFileURL(storage appwrite.Storage, bucketID, fileID string, assetType domain.AssetType) (string, error) {
	switch assetType {
	case domain.AssetTypeVideo:
		return storage.FileViewURL(bucketID, fileID), nil
	case domain.AssetTypeImage:
		return storage.FilePreviewURL(bucketID, fileID, ThumbnailPreview), nil
	default:
		return "", apperrors.Invalid("posts.resolveURL", "unrecognized asset type "+string(assetType))
	}
}

func (p *PostsImpl) recordFileOrphan(fileID, note string) {
	if fileID == "" {
		return
	}
	err := p.OrphanRepo.Create(context.Background(), domain.Orphan{
		Kind:     domain.OrphanKindFile,
		RemoteID: fileID,
		BucketID: p.Config.Appwrite.StorageBucketID,
		Note:     note,
	})
	if err != nil {
		p.Logger.Error("Failed to record file orphan", "file_id", fileID, "error", err)
	}
}
