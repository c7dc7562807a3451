package appwriteimpl

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/internal/domain"
	apperrors "github.com/fredd/aora/pkg/errors"
	"github.com/fredd/aora/pkg/logger"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Appwrite.Endpoint = srv.URL
	cfg.Appwrite.ProjectID = "proj"
	cfg.Appwrite.Platform = "com.fredd.aora"

	client := New(Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
	return client, srv
}

func TestCreateAccountSendsProjectHeader(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/account", r.URL.Path)
		require.Equal(t, "proj", r.Header.Get("X-Appwrite-Project"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])
		require.Equal(t, "alice", body["name"])
		require.NotEmpty(t, body["userId"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"$id":   body["userId"],
			"email": body["email"],
			"name":  body["name"],
		})
	}))

	account, err := client.Create(context.Background(), "uid-1", "a@b.c", "pw", "alice")
	require.NoError(t, err)
	require.Equal(t, "uid-1", account.ID)
}

func TestSessionSecretIsReplayed(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/account/sessions/email":
			_ = json.NewEncoder(w).Encode(map[string]string{
				"$id":    "sess-1",
				"userId": "acc-1",
				"secret": "s3cr3t",
			})
		case "/account":
			require.Equal(t, "s3cr3t", r.Header.Get("X-Appwrite-Session"))
			_ = json.NewEncoder(w).Encode(map[string]string{"$id": "acc-1"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	session, err := client.CreateEmailSession(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "sess-1", session.ID)

	account, err := client.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "acc-1", account.ID)
}

func TestGetWithoutSessionIsLocal(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s %s", r.Method, r.URL.Path)
	}))

	_, err := client.Get(context.Background())
	require.ErrorIs(t, err, appwrite.ErrNoSession)
}

func TestGetUnauthorizedMapsToNoSession(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "User (role: guests) missing scope (account)",
			"type":    "general_unauthorized_scope",
			"code":    401,
		})
	}))
	client.SetSession("stale")

	_, err := client.Get(context.Background())
	require.ErrorIs(t, err, appwrite.ErrNoSession)
}

func TestListDocumentsEncodesQueries(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/databases/db/collections/videos/documents", r.URL.Path)
		queries := r.URL.Query()["queries[]"]
		require.Equal(t, []string{
			`{"method":"orderDesc","attribute":"$createdAt"}`,
			`{"method":"limit","values":[7]}`,
		}, queries)

		_, _ = w.Write([]byte(`{
			"total": 1,
			"documents": [{
				"$id": "post-1",
				"$collectionId": "videos",
				"$createdAt": "2025-08-01T10:00:00.000+00:00",
				"$updatedAt": "2025-08-01T10:00:00.000+00:00",
				"title": "T",
				"creator": "u1"
			}]
		}`))
	}))

	docs, err := client.ListDocuments(context.Background(), "db", "videos", []string{
		appwrite.QueryOrderDesc("$createdAt"),
		appwrite.QueryLimit(7),
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "post-1", docs[0].ID)
	require.Equal(t, "T", docs[0].String("title"))
	require.Equal(t, 2025, docs[0].CreatedAt.Year())
}

func TestRemoteErrorEnvelopeIsTagged(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "Collection with the requested ID could not be found.",
			"type":    "collection_not_found",
			"code":    404,
		})
	}))

	_, err := client.CreateDocument(context.Background(), "db", "missing", "id", map[string]any{})
	require.Error(t, err)
	require.True(t, apperrors.IsRemote(err))
	require.Contains(t, err.Error(), "collection_not_found")
}

func TestCreateFileUploadsMultipart(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "thumb.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/storage/buckets/media/files", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "file-1", r.FormValue("fileId"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "thumb.png", header.Filename)
		require.Equal(t, "image/png", header.Header.Get("Content-Type"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"$id":          "file-1",
			"name":         "thumb.png",
			"mimeType":     "image/png",
			"sizeOriginal": 9,
		})
	}))

	file, err := client.CreateFile(context.Background(), "media", "file-1", domain.Asset{
		URI:      "file://" + path,
		MimeType: "image/png",
		FileName: "thumb.png",
		FileSize: 9,
		Type:     domain.AssetTypeImage,
	})
	require.NoError(t, err)
	require.Equal(t, "file-1", file.ID)
	require.EqualValues(t, 9, file.Size)
}

func TestURLDerivations(t *testing.T) {
	t.Parallel()

	client, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("URL building must not call the server, got %s", r.URL.Path)
	}))

	require.Equal(t,
		srv.URL+"/storage/buckets/media/files/f1/view?project=proj",
		client.FileViewURL("media", "f1"))

	preview := client.FilePreviewURL("media", "f2", appwrite.PreviewOpts{
		Width: 2000, Height: 2000, Gravity: "top", Quality: 100,
	})
	require.Equal(t,
		srv.URL+"/storage/buckets/media/files/f2/preview?gravity=top&height=2000&project=proj&quality=100&width=2000",
		preview)

	require.Equal(t,
		srv.URL+"/avatars/initials?name=alice&project=proj",
		client.InitialsURL("alice"))
}
