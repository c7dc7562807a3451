package authimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/appwrite/mocks"
	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/internal/domain"
	orphanmocks "github.com/fredd/aora/internal/repositories/orphan/mocks"
	apperrors "github.com/fredd/aora/pkg/errors"
	"github.com/fredd/aora/pkg/logger"
)

type authFixture struct {
	svc      *AuthImpl
	accounts *mocks.MockAccounts
	dbs      *mocks.MockDatabases
	avatars  *mocks.MockAvatars
	orphans  *orphanmocks.MockRepository
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccounts(ctrl)
	dbs := mocks.NewMockDatabases(ctrl)
	avatars := mocks.NewMockAvatars(ctrl)
	orphans := orphanmocks.NewMockRepository(ctrl)

	cfg := &config.Config{}
	cfg.Appwrite.DatabaseID = "db"
	cfg.Appwrite.UserCollectionID = "users"

	svc := New(Opts{
		Accounts:   accounts,
		Databases:  dbs,
		Avatars:    avatars,
		OrphanRepo: orphans,
		Logger:     logger.New(logger.Opts{}),
		Config:     cfg,
	})
	return authFixture{svc: svc, accounts: accounts, dbs: dbs, avatars: avatars, orphans: orphans}
}

func TestSignUpCreatesAccountSessionAndProfile(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	f.accounts.EXPECT().
		Create(gomock.Any(), gomock.Any(), "a@b.c", "secret", "alice").
		Return(&appwrite.Account{ID: "acc-1", Email: "a@b.c", Name: "alice"}, nil)
	f.accounts.EXPECT().
		CreateEmailSession(gomock.Any(), "a@b.c", "secret").
		Return(&appwrite.Session{ID: "sess-1"}, nil)
	f.avatars.EXPECT().
		InitialsURL("alice").
		Return("https://cdn/avatars/alice")
	f.dbs.EXPECT().
		CreateDocument(gomock.Any(), "db", "users", gomock.Any(), map[string]any{
			"accountId": "acc-1",
			"email":     "a@b.c",
			"username":  "alice",
			"avatar":    "https://cdn/avatars/alice",
		}).
		Return(&appwrite.Document{ID: "user-doc-1"}, nil)

	user, err := f.svc.SignUp(ctx, "a@b.c", "secret", "alice")
	require.NoError(t, err)
	require.Equal(t, "user-doc-1", user.ID)
	require.Equal(t, "acc-1", user.AccountID)
	require.Equal(t, "https://cdn/avatars/alice", user.AvatarURL)
}

func TestSignUpMissingFieldIsLocal(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	_, err := f.svc.SignUp(context.Background(), "a@b.c", "", "alice")
	require.True(t, apperrors.IsInvalidInput(err))
}

func TestSignUpProfileFailureRecordsAccountOrphan(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	f.accounts.EXPECT().
		Create(gomock.Any(), gomock.Any(), "a@b.c", "secret", "alice").
		Return(&appwrite.Account{ID: "acc-1"}, nil)
	f.accounts.EXPECT().
		CreateEmailSession(gomock.Any(), "a@b.c", "secret").
		Return(&appwrite.Session{ID: "sess-1"}, nil)
	f.avatars.EXPECT().InitialsURL("alice").Return("av")
	f.dbs.EXPECT().
		CreateDocument(gomock.Any(), "db", "users", gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Remote("databases.createDocument", errors.New("boom")))

	// The account and its session stay; the leftover is tracked.
	f.orphans.EXPECT().
		Create(gomock.Any(), gomock.Cond(func(x any) bool {
			o, ok := x.(domain.Orphan)
			return ok && o.Kind == domain.OrphanKindAccount && o.RemoteID == "acc-1"
		})).
		Return(nil)

	user, err := f.svc.SignUp(ctx, "a@b.c", "secret", "alice")
	require.Nil(t, user)
	require.True(t, apperrors.IsRemote(err))
}

func TestCurrentUserNoSessionIsEmptyNotError(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	f.accounts.EXPECT().
		Get(gomock.Any()).
		Return(nil, appwrite.ErrNoSession)

	user, err := f.svc.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestCurrentUserResolvesProfile(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	f.accounts.EXPECT().
		Get(gomock.Any()).
		Return(&appwrite.Account{ID: "acc-1"}, nil)
	f.dbs.EXPECT().
		ListDocuments(gomock.Any(), "db", "users", []string{
			appwrite.QueryEqual("accountId", "acc-1"),
		}).
		Return([]appwrite.Document{{
			ID: "user-doc-1",
			Data: map[string]any{
				"accountId": "acc-1",
				"email":     "a@b.c",
				"username":  "alice",
				"avatar":    "av",
			},
		}}, nil)

	user, err := f.svc.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "user-doc-1", user.ID)
	require.Equal(t, "alice", user.Username)
}

func TestCurrentUserMissingProfileIsNotFound(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	f.accounts.EXPECT().
		Get(gomock.Any()).
		Return(&appwrite.Account{ID: "acc-1"}, nil)
	f.dbs.EXPECT().
		ListDocuments(gomock.Any(), "db", "users", gomock.Any()).
		Return(nil, nil)

	user, err := f.svc.CurrentUser(context.Background())
	require.Nil(t, user)
	require.True(t, apperrors.IsNotFound(err))
}

func TestSignOutDeletesCurrentSession(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	f.accounts.EXPECT().
		DeleteSession(gomock.Any(), "current").
		Return(nil)

	require.NoError(t, f.svc.SignOut(context.Background()))
}
