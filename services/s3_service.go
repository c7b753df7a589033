package services

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 5 * time.Minute

// Presigner is the subset of the S3 presign client used by MediaService
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// MediaService hands out presigned URLs for composer images. With no bucket
// configured every call returns ErrMediaDisabled.
type MediaService struct {
	Presigner Presigner
	Bucket    string
	Now       func() time.Time
}

// NewMediaService builds an S3 backed media service for bucket
func NewMediaService(ctx context.Context, region, bucket string) (*MediaService, error) {
	if bucket == "" {
		log.Println("⚠️ S3_BUCKET_NAME not set, media uploads disabled")
		return &MediaService{}, nil
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &MediaService{
		Presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		Bucket:    bucket,
		Now:       time.Now,
	}, nil
}

func (m *MediaService) enabled() bool {
	return m.Bucket != "" && m.Presigner != nil
}

// GenerateUploadURL generates a presigned URL for uploading an image or video
func (m *MediaService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	if !m.enabled() {
		return "", "", ErrMediaDisabled
	}

	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "", "", fmt.Errorf("%w: invalid file name %q", ErrInvalidInput, fileName)
	}
	if !strings.HasPrefix(fileType, "image/") && !strings.HasPrefix(fileType, "video/") {
		return "", "", fmt.Errorf("%w: unsupported file type %q", ErrInvalidInput, fileType)
	}

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	key := "posts/" + now().Format("20060102150405") + "-" + base

	presigned, err := m.Presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return presigned.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading an uploaded object
func (m *MediaService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if !m.enabled() {
		return "", ErrMediaDisabled
	}
	if key == "" {
		return "", fmt.Errorf("%w: key is required", ErrInvalidInput)
	}

	presigned, err := m.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(m.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign read: %w", err)
	}
	return presigned.URL, nil
}
