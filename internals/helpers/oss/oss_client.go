package oss

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// OSSService wraps one bucket of Aliyun OSS. All gallery/resource files
// live under a configurable prefix (default "uploads/").
type OSSService struct {
	client    *alioss.Client
	bucket    *alioss.Bucket
	bucketURL string
	prefix    string
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// NewOSSServiceFromEnv builds the service from OSS_ENDPOINT, OSS_ACCESS_KEY_ID,
// OSS_ACCESS_KEY_SECRET, OSS_BUCKET (+ optional OSS_PUBLIC_BASE_URL).
func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv("OSS_ENDPOINT")
	keyID := getEnv("OSS_ACCESS_KEY_ID")
	keySecret := getEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss env not complete (OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET)")
	}

	client, err := alioss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	base := getEnv("OSS_PUBLIC_BASE_URL")
	if base == "" {
		host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
		base = fmt.Sprintf("https://%s.%s", bucketName, host)
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &OSSService{
		client:    client,
		bucket:    bucket,
		bucketURL: strings.TrimRight(base, "/"),
		prefix:    prefix,
	}, nil
}

// ObjectKey builds "<prefix><dir>/<yyyy/mm>/<uuid><ext>".
func (s *OSSService) ObjectKey(dir, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	now := time.Now()
	return fmt.Sprintf("%s%s/%04d/%02d/%s%s",
		s.prefix, strings.Trim(dir, "/"), now.Year(), int(now.Month()), uuid.NewString(), ext)
}

// UploadBytes stores raw bytes under key and returns the public URL.
func (s *OSSService) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := []alioss.Option{}
	if contentType != "" {
		opts = append(opts, alioss.ContentType(contentType))
	}
	if err := s.bucket.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", err
	}
	return s.PublicURL(key), nil
}

func (s *OSSService) PublicURL(key string) string {
	return s.bucketURL + "/" + key
}

// KeyFromPublicURL reverses PublicURL; returns "" when the URL does not
// belong to this bucket.
func (s *OSSService) KeyFromPublicURL(publicURL string) string {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return ""
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" || !strings.HasPrefix(publicURL, s.bucketURL) {
		return ""
	}
	return key
}

// DeleteByPublicURL removes the object behind a stored URL.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key := s.KeyFromPublicURL(publicURL)
	if key == "" {
		return fmt.Errorf("url %q is not in this bucket", publicURL)
	}
	return s.bucket.DeleteObject(key)
}
