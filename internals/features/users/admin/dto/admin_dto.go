package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/users/admin/model"
)

type AdminResponse struct {
	AdminID       uuid.UUID `json:"admin_id"`
	AdminEmail    string    `json:"admin_email"`
	AdminName     string    `json:"admin_name"`
	AdminRole     string    `json:"admin_role"`
	AdminIsActive bool      `json:"admin_is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToAdminResponse(m *model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:       m.AdminID,
		AdminEmail:    m.AdminEmail,
		AdminName:     m.AdminName,
		AdminRole:     m.AdminRole,
		AdminIsActive: m.AdminIsActive,
		CreatedAt:     m.CreatedAt,
	}
}

type AdminCreateRequest struct {
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=72"`
	AdminName     string `json:"admin_name" validate:"required,min=1,max=100"`
	AdminRole     string `json:"admin_role" validate:"omitempty,oneof=admin super_admin"`
}

func (r *AdminCreateRequest) Normalize() {
	r.AdminEmail = strings.ToLower(strings.TrimSpace(r.AdminEmail))
	r.AdminName = strings.TrimSpace(r.AdminName)
	if r.AdminRole == "" {
		r.AdminRole = "admin"
	}
}

type AdminUpdateRequest struct {
	AdminName     *string `json:"admin_name" validate:"omitempty,min=1,max=100"`
	AdminPassword *string `json:"admin_password" validate:"omitempty,min=8,max=72"`
	AdminRole     *string `json:"admin_role" validate:"omitempty,oneof=admin super_admin"`
	AdminIsActive *bool   `json:"admin_is_active"`
}
