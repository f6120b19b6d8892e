package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/users/user/model"
)

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserEmail     string     `json:"user_email"`
	UserName      string     `json:"user_name"`
	UserPhone     *string    `json:"user_phone,omitempty"`
	UserBirthDate *time.Time `json:"user_birth_date,omitempty"`
	UserAddress   *string    `json:"user_address,omitempty"`
	UserRole      string     `json:"user_role"`
	UserStatus    string     `json:"user_status"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserEmail:     m.UserEmail,
		UserName:      m.UserName,
		UserPhone:     m.UserPhone,
		UserBirthDate: m.UserBirthDate,
		UserAddress:   m.UserAddress,
		UserRole:      m.UserRole,
		UserStatus:    m.UserStatus,
		CreatedAt:     m.CreatedAt,
	}
}

type UserUpdateRequest struct {
	UserName      *string    `json:"user_name" validate:"omitempty,min=1,max=100"`
	UserPhone     *string    `json:"user_phone" validate:"omitempty,max=30"`
	UserBirthDate *time.Time `json:"user_birth_date"`
	UserAddress   *string    `json:"user_address" validate:"omitempty,max=300"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *UserUpdateRequest) Normalize() {
	if r.UserName != nil {
		t := strings.TrimSpace(*r.UserName)
		r.UserName = &t
	}
	r.UserPhone = trimPtr(r.UserPhone)
	r.UserAddress = trimPtr(r.UserAddress)
}

func (r *UserUpdateRequest) ApplyToModel(m *model.UserModel) {
	if r.UserName != nil && *r.UserName != "" {
		m.UserName = *r.UserName
	}
	if r.UserPhone != nil {
		m.UserPhone = r.UserPhone
	}
	if r.UserBirthDate != nil {
		m.UserBirthDate = r.UserBirthDate
	}
	if r.UserAddress != nil {
		m.UserAddress = r.UserAddress
	}
}

// Admin-side status flip (logical delete included)
type UserStatusUpdateRequest struct {
	UserStatus string `json:"user_status" validate:"required,oneof=active inactive suspended deleted"`
}
