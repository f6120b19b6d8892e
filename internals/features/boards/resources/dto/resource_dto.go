package dto

import (
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/boards/resources/model"
)

type ResourceResponse struct {
	ResourceID            uuid.UUID `json:"resource_id"`
	ResourceTitle         string    `json:"resource_title"`
	ResourceDescription   *string   `json:"resource_description,omitempty"`
	ResourceCategory      *string   `json:"resource_category,omitempty"`
	ResourceFileURL       string    `json:"resource_file_url"`
	ResourceFileName      string    `json:"resource_file_name"`
	ResourceFileSize      int64     `json:"resource_file_size"`
	ResourceDownloadCount int       `json:"resource_download_count"`
	CreatedAt             time.Time `json:"created_at"`
}

func ToResourceResponse(m *model.ResourceModel) ResourceResponse {
	return ResourceResponse{
		ResourceID:            m.ResourceID,
		ResourceTitle:         m.ResourceTitle,
		ResourceDescription:   m.ResourceDescription,
		ResourceCategory:      m.ResourceCategory,
		ResourceFileURL:       m.ResourceFileURL,
		ResourceFileName:      m.ResourceFileName,
		ResourceFileSize:      m.ResourceFileSize,
		ResourceDownloadCount: m.ResourceDownloadCount,
		CreatedAt:             m.CreatedAt,
	}
}
