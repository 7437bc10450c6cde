package StorageRepository

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
)

const presignExpiry = 5 * time.Minute

func (r *Repository) GeneratePresignedURL(ctx context.Context, input types.PresignURLInput) (*types.PresignedURLOutput, error) {
	objectKey := path.Join(input.Folder, uuid.NewString()+"-"+sanitizeFilename(input.Filename))

	presignClient := s3.NewPresignClient(r.client)

	putObjectRequest, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(input.ContentType),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignExpiry
	})
	if err != nil {
		return nil, fmt.Errorf("create presigned url: %w", err)
	}

	return &types.PresignedURLOutput{
		PresignedURL: putObjectRequest.URL,
		UploadURL:    r.publicURLBase + "/" + objectKey,
		ObjectKey:    objectKey,
		ExpiresAt:    time.Now().Add(presignExpiry),
	}, nil
}

func sanitizeFilename(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	return name
}
