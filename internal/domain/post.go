package domain

import "time"

// Post is a published video record. Created once per submission, never
// updated or deleted by this client.
type Post struct {
	ID           string
	Title        string
	Prompt       string
	ThumbnailURL string
	VideoURL     string
	CreatorID    string
	CreatedAt    time.Time
}
