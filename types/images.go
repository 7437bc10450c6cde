package types

import (
	"time"
)

// PresignURLInput - input for creating a presigned upload URL
type PresignURLInput struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Folder      string `json:"folder" binding:"required,oneof=hotels trips avatars"`
}

// PresignedURLOutput - result of creating a presigned upload URL
type PresignedURLOutput struct {
	PresignedURL string    `json:"presignedUrl"`
	UploadURL    string    `json:"uploadUrl"`
	ObjectKey    string    `json:"objectKey"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
