package StorageRepository

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/awebcode/backend-travel-trippz/configs"
)

// Repository wraps the R2 (S3-compatible) bucket that holds hotel and
// trip media. Uploads go browser-direct through presigned URLs; the API
// never proxies file bytes.
type Repository struct {
	client        *s3.Client
	bucketName    string
	publicURLBase string
}

func NewRepository(cfg configs.Config) *Repository {
	s3Client := s3.New(s3.Options{
		Region: "auto",
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(
			cfg.R2AccessKeyID,
			cfg.R2AccessKeySecret,
			"",
		)),
		BaseEndpoint: aws.String(cfg.R2Endpoint),
	})

	return &Repository{
		client:        s3Client,
		bucketName:    cfg.R2BucketName,
		publicURLBase: cfg.R2PublicURLBase,
	}
}
