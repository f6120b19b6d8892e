package oss

import (
	"context"
	"io"
	"mime/multipart"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the upload/delete facade used by controllers. Gallery images
are re-encoded to WebP (display copy + thumbnail); resource files are stored
verbatim. Delete is keyed on the public URL stored in the row.
*/
type BlobService interface {
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, thumbnailURL string, err error)
	UploadRaw(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, contentType string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc *OSSService
}

// DisabledBlobService stands in when the OSS env vars are absent (local dev
// without credentials). Uploads fail with 503; deletes are silently dropped
// so row deletion still works.
type DisabledBlobService struct{}

func (DisabledBlobService) UploadImage(context.Context, string, *multipart.FileHeader) (string, string, error) {
	return "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
}

func (DisabledBlobService) UploadRaw(context.Context, string, *multipart.FileHeader) (string, string, error) {
	return "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
}

func (DisabledBlobService) DeleteByPublicURL(context.Context, string) error {
	return nil
}

// NewOSSBlobServiceFromEnv builds the facade from ENV; prefix is optional
// (e.g. "uploads/").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func readMultipart(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File not found in request")
	}
	if fh.Size > MaxUploadBytes {
		return nil, fiber.NewError(fiber.StatusBadRequest, "File exceeds the upload size limit")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	raw, err := readMultipart(fh)
	if err != nil {
		return "", "", err
	}
	img, err := DecodeImage(raw)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File is not a supported image (jpeg/png/webp)")
	}

	display, err := EncodeWebP(img)
	if err != nil {
		return "", "", err
	}
	thumb, err := EncodeThumbnailWebP(img)
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSuffix(fh.Filename, path.Ext(fh.Filename))
	key := b.svc.ObjectKey(dir, base+".webp")
	displayURL, err := b.svc.UploadBytes(ctx, key, display, "image/webp")
	if err != nil {
		return "", "", err
	}
	thumbKey := strings.TrimSuffix(key, ".webp") + "_thumb.webp"
	thumbURL, err := b.svc.UploadBytes(ctx, thumbKey, thumb, "image/webp")
	if err != nil {
		return "", "", err
	}
	return displayURL, thumbURL, nil
}

func (b *OSSBlobService) UploadRaw(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	raw, err := readMultipart(fh)
	if err != nil {
		return "", "", err
	}
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := b.svc.ObjectKey(dir, fh.Filename)
	url, err := b.svc.UploadBytes(ctx, key, raw, contentType)
	if err != nil {
		return "", "", err
	}
	return url, contentType, nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}
