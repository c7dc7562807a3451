package authimpl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/fredd/aora/internal/appwrite"
	"github.com/fredd/aora/internal/auth"
	"github.com/fredd/aora/internal/config"
	"github.com/fredd/aora/internal/domain"
	"github.com/fredd/aora/internal/repositories/orphan"
	apperrors "github.com/fredd/aora/pkg/errors"
	"github.com/fredd/aora/pkg/logger"
)

type Opts struct {
	fx.In

	Accounts   appwrite.Accounts
	Databases  appwrite.Databases
	Avatars    appwrite.Avatars
	OrphanRepo orphan.Repository
	Logger     logger.Logger
	Config     *config.Config
}

type AuthImpl struct {
	Accounts   appwrite.Accounts
	Databases  appwrite.Databases
	Avatars    appwrite.Avatars
	OrphanRepo orphan.Repository
	Logger     logger.Logger
	Config     *config.Config
}

func New(opts Opts) *AuthImpl {
	return &AuthImpl{
		Accounts:   opts.Accounts,
		Databases:  opts.Databases,
		Avatars:    opts.Avatars,
		OrphanRepo: opts.OrphanRepo,
		Logger:     opts.Logger.WithComponent("Auth"),
		Config:     opts.Config,
	}
}

var _ auth.Service = (*AuthImpl)(nil)

var errNoAccount = errors.New("account creation returned no account")

func (a *AuthImpl) SignUp(ctx context.Context, email, password, username string) (*domain.User, error) {
	if email == "" || password == "" || username == "" {
		return nil, apperrors.Invalid("auth.signUp", "Please fill in all the fields")
	}

	account, err := a.Accounts.Create(ctx, uuid.NewString(), email, password, username)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create account")
	}
	if account == nil || account.ID == "" {
		return nil, apperrors.Remote("auth.signUp", errNoAccount)
	}

	if _, err := a.Accounts.CreateEmailSession(ctx, email, password); err != nil {
		return nil, apperrors.Wrap(err, "failed to sign in new account")
	}

	avatarURL := a.Avatars.InitialsURL(username)

	doc, err := a.Databases.CreateDocument(
		ctx,
		a.Config.Appwrite.DatabaseID,
		a.Config.Appwrite.UserCollectionID,
		uuid.NewString(),
		map[string]any{
			"accountId": account.ID,
			"email":     email,
			"username":  username,
			"avatar":    avatarURL,
		},
	)
	if err != nil {
		// The account and session stay in place. Track the leftover so
		// it can be reviewed instead of vanishing.
		a.recordAccountOrphan(account.ID, email)
		return nil, apperrors.Wrap(err, "failed to create user profile")
	}

	return &domain.User{
		ID:        doc.ID,
		AccountID: account.ID,
		Email:     email,
		Username:  username,
		AvatarURL: avatarURL,
	}, nil
}

func (a *AuthImpl) SignIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperrors.Invalid("auth.signIn", "Please fill in all the fields")
	}

	if _, err := a.Accounts.CreateEmailSession(ctx, email, password); err != nil {
		return apperrors.Wrap(err, "failed to sign in")
	}
	return nil
}

func (a *AuthImpl) SignOut(ctx context.Context) error {
	if err := a.Accounts.DeleteSession(ctx, "current"); err != nil {
		return apperrors.Wrap(err, "failed to sign out")
	}
	return nil
}

func (a *AuthImpl) CurrentUser(ctx context.Context) (*domain.User, error) {
	account, err := a.Accounts.Get(ctx)
	if err != nil {
		if apperrors.Is(err, appwrite.ErrNoSession) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get current account")
	}

	docs, err := a.Databases.ListDocuments(
		ctx,
		a.Config.Appwrite.DatabaseID,
		a.Config.Appwrite.UserCollectionID,
		[]string{appwrite.QueryEqual("accountId", account.ID)},
	)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to look up user profile")
	}
	if len(docs) == 0 {
		return nil, apperrors.NotFound("auth.currentUser", "no profile for current account")
	}

	doc := docs[0]
	return &domain.User{
		ID:        doc.ID,
		AccountID: doc.String("accountId"),
		Email:     doc.String("email"),
		Username:  doc.String("username"),
		AvatarURL: doc.String("avatar"),
	}, nil
}

func (a *AuthImpl) recordAccountOrphan(accountID, email string) {
	err := a.OrphanRepo.Create(context.Background(), domain.Orphan{
		Kind:     domain.OrphanKindAccount,
		RemoteID: accountID,
		Note:     "profile creation failed for " + email,
	})
	if err != nil {
		a.Logger.Error("Failed to record account orphan", "account_id", accountID, "error", err)
	}
}
