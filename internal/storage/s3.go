package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goalfield/field-scheduler/internal/config"
)

// S3Store keeps service images in an S3-compatible bucket as webp.
type S3Store struct {
	client *s3.Client
	bucket string
	// Public base for object URLs, e.g. https://cdn.example.com.
	baseURL string
	log     zerolog.Logger
}

func NewS3Store(cfg *config.Config, log zerolog.Logger) *S3Store {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.S3Endpoint
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	} else {
		baseURL = fmt.Sprintf("%s/%s", baseURL, cfg.S3Bucket)
	}

	return &S3Store{
		client:  client,
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
		log:     log.With().Str("component", "media").Logger(),
	}
}

func (s *S3Store) Upload(ctx context.Context, r io.Reader) (string, string, error) {
	data, err := EncodeWebP(r)
	if err != nil {
		return "", "", fmt.Errorf("encode image: %w", err)
	}

	key := "services/" + uuid.NewString() + ".webp"

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}

	s.log.Debug().Str("key", key).Int("bytes", len(data)).Msg("image uploaded")

	return fmt.Sprintf("%s/%s", s.baseURL, key), key, nil
}

func (s *S3Store) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

var _ MediaStore = (*S3Store)(nil)
var _ MediaStore = Discard{}
