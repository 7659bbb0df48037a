package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rajraunak/portfolio-site-backend/config"
)

// ImageUploader stores blog cover images in S3 and hands back the public
// URL that goes into a post's imageUrl field.
type ImageUploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewImageUploader builds an uploader from the default AWS credential
// chain. Requires S3_BUCKET; S3_PUBLIC_BASE_URL overrides the default
// bucket URL (for a CDN in front of the bucket).
func NewImageUploader(ctx context.Context) (*ImageUploader, error) {
	cfg := config.New()

	bucket := config.GetString(cfg, "S3_BUCKET", "")
	if bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET environment variable is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	baseURL := config.GetString(cfg, "S3_PUBLIC_BASE_URL", "")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, awsCfg.Region)
	}

	return &ImageUploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload stores one image under a random key, preserving the original
// extension, and returns its public URL.
func (u *ImageUploader) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("blog-images/%s%s", uuid.New(), strings.ToLower(path.Ext(filename)))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}
