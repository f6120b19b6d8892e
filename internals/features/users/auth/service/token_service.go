package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"certassoc_backend/internals/configs"
	authModel "certassoc_backend/internals/features/users/auth/model"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// Fixed identity behind the env bootstrap credential pair.
const BootstrapAdminID = "00000000-0000-0000-0000-000000000001"

type TokenIdentity struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

// IssueAccessToken signs a 24h HS256 access token carrying {sub,email,role}.
func IssueAccessToken(id TokenIdentity, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}
	claims := jwt.MapClaims{
		"sub":       id.UserID,
		"email":     id.Email,
		"user_name": id.Name,
		"role":      id.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// IssueRefreshToken signs a 7d refresh token and persists its HMAC hash.
func IssueRefreshToken(db *gorm.DB, userID uuid.UUID, userAgent, ip string, now time.Time) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET not configured")
	}
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", err
	}

	row := authModel.RefreshTokenModel{
		UserID:    userID,
		Token:     ComputeRefreshHash(signed),
		ExpiresAt: now.Add(RefreshTTL),
	}
	if userAgent != "" {
		row.UserAgent = &userAgent
	}
	if ip != "" {
		row.IP = &ip
	}
	if err := db.Create(&row).Error; err != nil {
		return "", err
	}
	return signed, nil
}

// ParseRefreshToken verifies the signature/expiry and checks the stored hash.
func ParseRefreshToken(db *gorm.DB, raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.New("refresh token invalid")
	}

	var count int64
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("token = ?", ComputeRefreshHash(raw)).
		Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, errors.New("refresh token unknown")
	}
	return userID, nil
}

// RevokeRefreshToken deletes the stored hash (rotation / logout).
func RevokeRefreshToken(db *gorm.DB, raw string) error {
	return db.Where("token = ?", ComputeRefreshHash(raw)).
		Delete(&authModel.RefreshTokenModel{}).Error
}

// BlacklistAccessToken records a logged-out access token until its expiry.
func BlacklistAccessToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     raw,
		ExpiredAt: expiredAt,
	}).Error
}

// VerifyAccessToken parses the token and returns the decoded claims.
func VerifyAccessToken(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func ComputeRefreshHash(raw string) string {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
