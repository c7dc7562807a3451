package auth

import (
	"context"

	"github.com/fredd/aora/internal/domain"
)

// Service covers registration, sign-in/out and session resolution.
type Service interface {
	// SignUp creates the account, opens a session for it and writes the
	// profile document. A created account whose profile write failed is
	// left in place and recorded in the orphan ledger.
	SignUp(ctx context.Context, email, password, username string) (*domain.User, error)

	// SignIn establishes a session from credentials.
	SignIn(ctx context.Context, email, password string) error

	// SignOut deletes the current session.
	SignOut(ctx context.Context) error

	// CurrentUser resolves the active session to its profile. Returns
	// (nil, nil) when no session is active; "not signed in" is a normal
	// state, not an error.
	CurrentUser(ctx context.Context) (*domain.User, error)
}
