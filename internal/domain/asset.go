package domain

// AssetType classifies a local media file for upload-URL resolution.
type AssetType string

const (
	AssetTypeVideo AssetType = "video"
	AssetTypeImage AssetType = "image"
)

// Asset references a device-local media file that has not been uploaded yet.
// Produced by the media picker, consumed only by the upload path.
type Asset struct {
	URI      string
	MimeType string
	FileName string
	FileSize int64
	Type     AssetType
}

// Form is the transient create-screen state for one submission attempt.
type Form struct {
	Title     string
	Prompt    string
	Video     *Asset
	Thumbnail *Asset
}

// Complete reports whether every required field is present.
func (f Form) Complete() bool {
	return f.Title != "" && f.Prompt != "" && f.Video != nil && f.Thumbnail != nil
}
