package appwriteimpl

import (
	"context"
	"net/http"

	"github.com/fredd/aora/internal/appwrite"
	apperrors "github.com/fredd/aora/pkg/errors"
)

func (c *Client) Create(ctx context.Context, userID, email, password, name string) (*appwrite.Account, error) {
	payload := map[string]string{
		"userId":   userID,
		"email":    email,
		"password": password,
		"name":     name,
	}

	var account appwrite.Account
	if err := c.postJSON(ctx, "/account", payload, &account); err != nil {
		return nil, apperrors.Remote("account.create", err)
	}
	return &account, nil
}

func (c *Client) CreateEmailSession(ctx context.Context, email, password string) (*appwrite.Session, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var session appwrite.Session
	if err := c.postJSON(ctx, "/account/sessions/email", payload, &session); err != nil {
		return nil, apperrors.Remote("account.createSession", err)
	}

	// The secret authenticates every later call on this client.
	c.SetSession(session.Secret)
	return &session, nil
}

func (c *Client) Get(ctx context.Context) (*appwrite.Account, error) {
	if c.currentSession() == "" {
		return nil, appwrite.ErrNoSession
	}

	var account appwrite.Account
	if err := c.getJSON(ctx, "/account", nil, &account); err != nil {
		if apiErr, ok := err.(*apiError); ok && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, appwrite.ErrNoSession
		}
		return nil, apperrors.Remote("account.get", err)
	}
	return &account, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := c.delete(ctx, "/account/sessions/"+sessionID); err != nil {
		return apperrors.Remote("account.deleteSession", err)
	}
	c.SetSession("")
	return nil
}
