package dto

import (
	"strings"

	userDto "certassoc_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	UserEmail    string  `json:"user_email" validate:"required,email"`
	UserPassword string  `json:"user_password" validate:"required,min=8,max=72"`
	UserName     string  `json:"user_name" validate:"required,min=1,max=100"`
	UserPhone    *string `json:"user_phone" validate:"omitempty,max=30"`
}

func (r *RegisterRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
	r.UserName = strings.TrimSpace(r.UserName)
	if r.UserPhone != nil {
		t := strings.TrimSpace(*r.UserPhone)
		if t == "" {
			r.UserPhone = nil
		} else {
			r.UserPhone = &t
		}
	}
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *AdminLoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type TokenResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token,omitempty"`
	User         *userDto.UserResponse `json:"user,omitempty"`
}

type AdminTokenResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}
