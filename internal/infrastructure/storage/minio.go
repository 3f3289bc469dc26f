package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/meetingbot-team/meetingbot/pkg/config"
)

// TranscriptArchive stores raw meeting transcripts in an object
// bucket. Archiving is best-effort: callers log failures and move on.
type TranscriptArchive struct {
	client *minio.Client
	bucket string
}

// NewTranscriptArchive creates a MinIO-backed transcript archive and
// ensures the bucket exists.
func NewTranscriptArchive(cfg *config.StorageConfig) (*TranscriptArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &TranscriptArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

// ensureBucket creates the bucket if it does not exist
func (a *TranscriptArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Put archives a meeting transcript under meetings/<id>/transcript.txt
func (a *TranscriptArchive) Put(ctx context.Context, meetingID uuid.UUID, transcript string) error {
	objectName := fmt.Sprintf("meetings/%s/transcript.txt", meetingID)
	reader := strings.NewReader(transcript)

	_, err := a.client.PutObject(ctx, a.bucket, objectName, reader, int64(len(transcript)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to archive transcript: %w", err)
	}

	return nil
}
