package appwriteimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/domain"
	apperrors "github.com/fredd/aora/pkg/errors"
)

func (c *Client) CreateFile(ctx context.Context, bucketID, fileID string, asset domain.Asset) (*appwrite.File, error) {
	const op = "storage.createFile"

	src, err := os.Open(localPath(asset.URI))
	if err != nil {
		return nil, apperrors.Remote(op, err)
	}
	defer src.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("fileId", fileID); err != nil {
		return nil, apperrors.Remote(op, err)
	}

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, asset.FileName))
	if asset.MimeType != "" {
		hdr.Set("Content-Type", asset.MimeType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, apperrors.Remote(op, err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return nil, apperrors.Remote(op, err)
	}
	if err := mw.Close(); err != nil {
		return nil, apperrors.Remote(op, err)
	}

	path := fmt.Sprintf("/storage/buckets/%s/files", bucketID)
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &body, mw.FormDataContentType())
	if err != nil {
		return nil, apperrors.Remote(op, err)
	}

	var file appwrite.File
	if err := c.do(req, &file); err != nil {
		return nil, apperrors.Remote(op, err)
	}
	return &file, nil
}

func (c *Client) DeleteFile(ctx context.Context, bucketID, fileID string) error {
	path := fmt.Sprintf("/storage/buckets/%s/files/%s", bucketID, fileID)
	if err := c.delete(ctx, path); err != nil {
		return apperrors.Remote("storage.deleteFile", err)
	}
	return nil
}

func (c *Client) FileViewURL(bucketID, fileID string) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/view?project=%s",
		c.endpoint, bucketID, fileID, url.QueryEscape(c.project))
}

func (c *Client) FilePreviewURL(bucketID, fileID string, opts appwrite.PreviewOpts) string {
	params := url.Values{}
	params.Set("width", strconv.Itoa(opts.Width))
	params.Set("height", strconv.Itoa(opts.Height))
	params.Set("gravity", opts.Gravity)
	params.Set("quality", strconv.Itoa(opts.Quality))
	params.Set("project", c.project)
	return fmt.Sprintf("%s/storage/buckets/%s/files/%s/preview?%s",
		c.endpoint, bucketID, fileID, params.Encode())
}

func (c *Client) InitialsURL(name string) string {
	params := url.Values{}
	params.Set("name", name)
	params.Set("project", c.project)
	return fmt.Sprintf("%s/avatars/initials?%s", c.endpoint, params.Encode())
}

// localPath maps a picker URI to a filesystem path.
func localPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
