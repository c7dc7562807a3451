package domain

// User is the profile document stored alongside the remote account.
// Created once at registration, read thereafter.
type User struct {
	ID        string
	AccountID string
	Email     string
	Username  string
	AvatarURL string
}
