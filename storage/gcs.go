package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const uploadTimeout = 50 * time.Second

// GCSUploader writes scan images to a Cloud Storage bucket. Credentials come
// from GOOGLE_APPLICATION_CREDENTIALS or the metadata server.
type GCSUploader struct {
	cl         *storage.Client
	bucketName string
	uploadPath string
}

func NewGCSUploader(ctx context.Context, bucketName, uploadPath string) (*GCSUploader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSUploader{
		cl:         client,
		bucketName: bucketName,
		uploadPath: uploadPath,
	}, nil
}

// Upload stores data under a unique object name and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	objectPath := ObjectPath(u.uploadPath, uuid.NewString(), filename)

	wc := u.cl.Bucket(u.bucketName).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := io.Copy(wc, bytes.NewReader(data)); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("Writer.Close: %w", err)
	}

	return PublicURL(u.bucketName, objectPath), nil
}

func (u *GCSUploader) Close() error {
	return u.cl.Close()
}

// ObjectPath joins prefix, id and a sanitized base name of filename.
func ObjectPath(prefix, id, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." || base == "/" || base == "_" {
		base = "image.jpg"
	}
	return path.Join(prefix, id+"_"+base)
}

func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
