package appwriteimpl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fredd/aora/internal/appwrite"
	apperrors "github.com/fredd/aora/pkg/errors"
)

func (c *Client) CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]any) (*appwrite.Document, error) {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID)
	payload := map[string]any{
		"documentId": documentID,
		"data":       data,
	}

	var doc appwrite.Document
	if err := c.postJSON(ctx, path, payload, &doc); err != nil {
		return nil, apperrors.Remote("databases.createDocument", err)
	}
	return &doc, nil
}

func (c *Client) ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) ([]appwrite.Document, error) {
	path := fmt.Sprintf("/databases/%s/collections/%s/documents", databaseID, collectionID)

	params := url.Values{}
	for _, q := range queries {
		params.Add("queries[]", q)
	}

	var out struct {
		Total     int                 `json:"total"`
		Documents []appwrite.Document `json:"documents"`
	}
	if err := c.getJSON(ctx, path, params, &out); err != nil {
		return nil, apperrors.Remote("databases.listDocuments", err)
	}
	return out.Documents, nil
}
