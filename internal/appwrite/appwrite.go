package appwrite

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/fredd/aora/internal/domain"
)

// ErrNoSession reports that no authentication session is active. Callers
// treat this as a normal state, not a failure.
var ErrNoSession = errors.New("no active session")

// Account is the remote authentication account.
type Account struct {
	ID    string `json:"$id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is a server-tracked authentication context.
type Session struct {
	ID     string `json:"$id"`
	UserID string `json:"userId"`
	Secret string `json:"secret"`
}

// File is the metadata of a stored object.
type File struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"sizeOriginal"`
}

// Document is one record in a collection. Service-assigned fields are kept
// apart from the user payload.
type Document struct {
	ID           string
	CollectionID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Data         map[string]any
}

// UnmarshalJSON splits the flat wire shape into system fields and payload.
func (d *Document) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	d.Data = make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case "$id":
			if err := json.Unmarshal(v, &d.ID); err != nil {
				return err
			}
		case "$collectionId":
			if err := json.Unmarshal(v, &d.CollectionID); err != nil {
				return err
			}
		case "$createdAt":
			if err := unmarshalTime(v, &d.CreatedAt); err != nil {
				return err
			}
		case "$updatedAt":
			if err := unmarshalTime(v, &d.UpdatedAt); err != nil {
				return err
			}
		case "$databaseId", "$permissions", "$sequence":
			// system fields we do not use
		default:
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			d.Data[k] = val
		}
	}
	return nil
}

func unmarshalTime(b []byte, t *time.Time) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// String returns the string payload field, or "" when absent.
func (d *Document) String(field string) string {
	s, _ := d.Data[field].(string)
	return s
}

//go:generate go run go.uber.org/mock/mockgen -source=appwrite.go -destination=mocks/mock.go -package=mocks

// Accounts wraps the authentication and session operations.
type Accounts interface {
	// Create registers a new account with a client-chosen unique id.
	Create(ctx context.Context, userID, email, password, name string) (*Account, error)

	// CreateEmailSession signs in with credentials and activates the
	// returned session on the client.
	CreateEmailSession(ctx context.Context, email, password string) (*Session, error)

	// Get resolves the active session to its account. Returns
	// ErrNoSession when nobody is signed in.
	Get(ctx context.Context) (*Account, error)

	// DeleteSession terminates the session; "current" targets the
	// active one.
	DeleteSession(ctx context.Context, sessionID string) error
}

// Databases wraps the document-database operations.
type Databases interface {
	CreateDocument(ctx context.Context, databaseID, collectionID, documentID string, data map[string]any) (*Document, error)
	ListDocuments(ctx context.Context, databaseID, collectionID string, queries []string) ([]Document, error)
}

// PreviewOpts are the transform parameters for an image preview URL.
type PreviewOpts struct {
	Width   int
	Height  int
	Gravity string
	Quality int
}

// Storage wraps the file-storage operations. The URL derivations are local
// string building, no remote call.
type Storage interface {
	CreateFile(ctx context.Context, bucketID, fileID string, asset domain.Asset) (*File, error)
	DeleteFile(ctx context.Context, bucketID, fileID string) error
	FileViewURL(bucketID, fileID string) string
	FilePreviewURL(bucketID, fileID string, opts PreviewOpts) string
}

// Avatars derives profile-placeholder URLs.
type Avatars interface {
	InitialsURL(name string) string
}
