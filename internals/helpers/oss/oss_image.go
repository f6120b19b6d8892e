package oss

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const (
	maxImageW      = 1600
	maxImageH      = 1600
	thumbW         = 400
	webpQuality    = 80
	MaxUploadBytes = int64(10 * 1024 * 1024)
)

// DecodeImage sniffs the MIME type and decodes jpeg/png/webp bytes.
func DecodeImage(all []byte) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	switch {
	case strings.Contains(ct, "jpeg"):
		return jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		return png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		return webp.Decode(bytes.NewReader(all))
	default:
		return nil, fmt.Errorf("unsupported image type %q", ct)
	}
}

// EncodeWebP downscales to the display bound (keep aspect) and re-encodes
// as lossy WebP.
func EncodeWebP(img image.Image) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > maxImageW || h > maxImageH {
		scale := float64(maxImageW) / float64(w)
		if s := float64(maxImageH) / float64(h); s < scale {
			scale = s
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeThumbnailWebP renders the fixed-width gallery thumbnail.
func EncodeThumbnailWebP(img image.Image) ([]byte, error) {
	thumb := imaging.Resize(img, thumbW, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
