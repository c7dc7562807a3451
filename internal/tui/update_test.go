package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/fredd/aora/internal/domain"
	apperrors "github.com/fredd/aora/pkg/errors"
	"github.com/fredd/aora/pkg/logger"
)

type fakePosts struct {
	submitCalls int
	lastForm    domain.Form
	post        *domain.Post
	err         error
}

func (f *fakePosts) All(context.Context) ([]*domain.Post, error)                { return nil, nil }
func (f *fakePosts) Latest(context.Context) ([]*domain.Post, error)             { return nil, nil }
func (f *fakePosts) Search(context.Context, string) ([]*domain.Post, error)     { return nil, nil }
func (f *fakePosts) ByCreator(context.Context, string) ([]*domain.Post, error)  { return nil, nil }
func (f *fakePosts) Submit(_ context.Context, form domain.Form, _ string) (*domain.Post, error) {
	f.submitCalls++
	f.lastForm = form
	return f.post, f.err
}

type fakeAuth struct {
	user *domain.User
}

func (f *fakeAuth) SignUp(context.Context, string, string, string) (*domain.User, error) {
	return nil, nil
}
func (f *fakeAuth) SignIn(context.Context, string, string) error   { return nil }
func (f *fakeAuth) SignOut(context.Context) error                  { return nil }
func (f *fakeAuth) CurrentUser(context.Context) (*domain.User, error) {
	return f.user, nil
}

func newTestScreen(t *testing.T, posts *fakePosts) *Screen {
	t.Helper()
	s := NewScreen(context.Background(), posts, &fakeAuth{}, logger.New(logger.Opts{}))
	s.user = &domain.User{ID: "user-1", Username: "alice"}
	return s
}

func mediaFiles(t *testing.T) (videoPath, thumbPath string) {
	t.Helper()
	dir := t.TempDir()
	videoPath = filepath.Join(dir, "clip.mp4")
	thumbPath = filepath.Join(dir, "thumb.png")
	require.NoError(t, os.WriteFile(videoPath, []byte("mp4"), 0o644))
	require.NoError(t, os.WriteFile(thumbPath, []byte("png"), 0o644))
	return videoPath, thumbPath
}

func pressEnter(t *testing.T, s *Screen) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestIncompleteFormShowsAlertAndKeepsInput(t *testing.T) {
	t.Parallel()
	posts := &fakePosts{}
	s := newTestScreen(t, posts)

	s.field[fieldTitle] = "T"
	s.field[fieldPrompt] = "P"
	// video and thumbnail left empty

	cmd := pressEnter(t, s)
	require.Nil(t, cmd)
	require.Equal(t, "Please fill in all the fields", s.alert)
	require.Equal(t, stateIdle, s.state)

	// Nothing was submitted and the typed fields survive for a retry.
	require.Zero(t, posts.submitCalls)
	require.Equal(t, "T", s.field[fieldTitle])
	require.Equal(t, "P", s.field[fieldPrompt])
}

func TestSuccessfulSubmissionResetsForm(t *testing.T) {
	t.Parallel()
	posts := &fakePosts{post: &domain.Post{ID: "post-1", Title: "T"}}
	s := newTestScreen(t, posts)
	videoPath, thumbPath := mediaFiles(t)

	s.field[fieldTitle] = "T"
	s.field[fieldPrompt] = "P"
	s.field[fieldVideo] = videoPath
	s.field[fieldThumbnail] = thumbPath

	cmd := pressEnter(t, s)
	require.NotNil(t, cmd)
	require.Equal(t, stateUploading, s.state)

	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)

	require.Equal(t, 1, posts.submitCalls)
	require.Equal(t, "T", posts.lastForm.Title)
	require.Equal(t, domain.AssetTypeVideo, posts.lastForm.Video.Type)
	require.Equal(t, domain.AssetTypeImage, posts.lastForm.Thumbnail.Type)
	require.Equal(t, "file://"+videoPath, posts.lastForm.Video.URI)

	_, _ = s.Update(msg)
	require.Equal(t, stateDone, s.state)
	for i := 0; i < fieldCount; i++ {
		require.Empty(t, s.field[i])
	}

	_, _ = s.Update(settledMsg{})
	require.Equal(t, stateIdle, s.state)
}

func TestFailedSubmissionAlsoResetsForm(t *testing.T) {
	t.Parallel()
	posts := &fakePosts{err: apperrors.Remote("posts.submit", errors.New("quota exceeded"))}
	s := newTestScreen(t, posts)
	videoPath, thumbPath := mediaFiles(t)

	s.field[fieldTitle] = "T"
	s.field[fieldPrompt] = "P"
	s.field[fieldVideo] = videoPath
	s.field[fieldThumbnail] = thumbPath

	cmd := pressEnter(t, s)
	require.NotNil(t, cmd)

	_, _ = s.Update(cmd())
	require.Equal(t, stateFailed, s.state)
	require.Equal(t, "remote service error", s.alert)
	for i := 0; i < fieldCount; i++ {
		require.Empty(t, s.field[i])
	}
}

func TestSubmitWithoutUserIsBlocked(t *testing.T) {
	t.Parallel()
	posts := &fakePosts{}
	s := newTestScreen(t, posts)
	s.user = nil
	videoPath, thumbPath := mediaFiles(t)

	s.field[fieldTitle] = "T"
	s.field[fieldPrompt] = "P"
	s.field[fieldVideo] = videoPath
	s.field[fieldThumbnail] = thumbPath

	cmd := pressEnter(t, s)
	require.Nil(t, cmd)
	require.Equal(t, "Not signed in", s.alert)
	require.Zero(t, posts.submitCalls)
}
