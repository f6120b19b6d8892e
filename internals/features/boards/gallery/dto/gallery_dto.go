package dto

import (
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/boards/gallery/model"
)

type GalleryResponse struct {
	GalleryID           uuid.UUID `json:"gallery_id"`
	GalleryTitle        string    `json:"gallery_title"`
	GalleryDescription  *string   `json:"gallery_description,omitempty"`
	GalleryFileURL      string    `json:"gallery_file_url"`
	GalleryThumbnailURL string    `json:"gallery_thumbnail_url"`
	CreatedAt           time.Time `json:"created_at"`
}

func ToGalleryResponse(m *model.GalleryModel) GalleryResponse {
	return GalleryResponse{
		GalleryID:           m.GalleryID,
		GalleryTitle:        m.GalleryTitle,
		GalleryDescription:  m.GalleryDescription,
		GalleryFileURL:      m.GalleryFileURL,
		GalleryThumbnailURL: m.GalleryThumbnailURL,
		CreatedAt:           m.CreatedAt,
	}
}
