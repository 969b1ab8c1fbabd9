package model

import "time"

// UploadedFile describes one accepted CV as stored by the upload acceptor.
// It carries no persistence tags and is shared across layers.
type UploadedFile struct {
	OriginalName string    `json:"original_name"`
	StoredName   string    `json:"stored_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	StoragePath  string    `json:"storage_path"`
	CreatedAt    time.Time `json:"created_at"`
}
