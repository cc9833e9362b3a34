package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// ImageStore uploads stamp scans to a MinIO bucket. The catalog only ever
// records the resulting URL in a stamp's image_path field; it never
// validates that the object still exists.
type ImageStore struct {
	client         *minio.Client
	bucketName     string
	publicEndpoint string
	useSSL         bool
}

// NewImageStore creates a MinIO-backed image store and ensures the bucket
// exists.
func NewImageStore(endpoint, publicEndpoint, accessKey, secretKey, bucketName string, useSSL bool) (*ImageStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	if publicEndpoint == "" {
		publicEndpoint = endpoint
	}
	publicEndpoint = strings.TrimSuffix(strings.TrimSpace(publicEndpoint), "/")

	store := &ImageStore{
		client:         client,
		bucketName:     bucketName,
		publicEndpoint: publicEndpoint,
		useSSL:         useSSL,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Warn().Err(err).Str("bucket", bucketName).Msg("Failed to check bucket existence (will continue)")
	} else if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Error().Err(err).Str("bucket", bucketName).Msg("Failed to create bucket")
		} else {
			log.Info().Str("bucket", bucketName).Msg("Bucket created")
		}
	}

	log.Info().
		Str("endpoint", endpoint).
		Str("public_endpoint", publicEndpoint).
		Str("bucket", bucketName).
		Msg("Image store initialized")

	return store, nil
}

// Upload stores a stamp scan under a dated, collision-free object key and
// returns the key and the public URL to record as the stamp's image path.
func (s *ImageStore) Upload(ctx context.Context, reader io.Reader, filename, contentType string, size int64) (string, string, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("scans/%s/%s%s", time.Now().Format("2006-01-02"), uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, s.bucketName, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	url := s.ImageURL(key)
	log.Info().Str("filename", filename).Str("key", key).Str("url", url).Msg("Stamp scan uploaded")
	return key, url, nil
}

// Delete removes a stamp scan by its object key.
func (s *ImageStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// ImageURL returns the public URL for an object key.
func (s *ImageStore) ImageURL(key string) string {
	if strings.Contains(s.publicEndpoint, "://") {
		return fmt.Sprintf("%s/%s/%s", s.publicEndpoint, s.bucketName, key)
	}
	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.publicEndpoint, s.bucketName, key)
}

// HealthCheck verifies the MinIO connection and bucket.
func (s *ImageStore) HealthCheck(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("image store health check failed: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %q does not exist", s.bucketName)
	}
	return nil
}
