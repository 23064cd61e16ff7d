// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/doniphane/clickandship/internal/config"
)

// FileStorage is the pluggable home for product images. Implementations
// store an uploaded file under a generated name and can delete it again.
type FileStorage interface {
	Store(file multipart.File, header *multipart.FileHeader) (string, error)
	Delete(name string) error
	URL(name string) string
}

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func imageName(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return uuid.New().String() + ext, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported image type %q", ErrInvalidArgument, ext)
}

// NewFileStorage returns the S3 implementation when AWS credentials are
// configured, the local-disk one otherwise.
func NewFileStorage(cfg *config.Config) (FileStorage, error) {
	if cfg.AWS.AccessKeyID == "" {
		return &LocalStorage{Dir: cfg.Storage.UploadDir}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Storage{
		client: s3.New(sess),
		bucket: cfg.AWS.S3Bucket,
		cdnURL: cfg.AWS.CloudFrontURL,
	}, nil
}

// S3Storage keeps product images in an S3 bucket.
type S3Storage struct {
	client *s3.S3
	bucket string
	cdnURL string
}

func (s *S3Storage) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	name, err := imageName(header.Filename)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	key := "products/" + name
	_, err = s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(header.Size),
		ContentType:   aws.String(header.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return name, nil
}

func (s *S3Storage) Delete(name string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String("products/" + name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

func (s *S3Storage) URL(name string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/products/%s", strings.TrimRight(s.cdnURL, "/"), name)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/products/%s", s.bucket, name)
}

// LocalStorage keeps product images on the local disk, for development.
type LocalStorage struct {
	Dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{Dir: dir}
}

func (l *LocalStorage) Store(file multipart.File, header *multipart.FileHeader) (string, error) {
	name, err := imageName(header.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(l.Dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return name, nil
}

func (l *LocalStorage) Delete(name string) error {
	err := os.Remove(filepath.Join(l.Dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image file: %w", err)
	}
	return nil
}

func (l *LocalStorage) URL(name string) string {
	return "/uploads/" + name
}
