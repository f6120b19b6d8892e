package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"certassoc_backend/internals/configs"
	authModel "certassoc_backend/internals/features/users/auth/model"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
	))
	return db
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	id := TokenIdentity{
		UserID: uuid.NewString(),
		Email:  "member@example.com",
		Name:   "김철수",
		Role:   "user",
	}
	signed, err := IssueAccessToken(id, time.Now())
	require.NoError(t, err)

	claims, err := VerifyAccessToken(signed)
	require.NoError(t, err)
	require.Equal(t, id.UserID, claims["sub"])
	require.Equal(t, id.Email, claims["email"])
	require.Equal(t, id.Name, claims["user_name"])
	require.Equal(t, id.Role, claims["role"])
}

func TestAccessTokenRequiresSecret(t *testing.T) {
	setTestSecrets(t)
	configs.JWTSecret = ""

	_, err := IssueAccessToken(TokenIdentity{UserID: uuid.NewString()}, time.Now())
	require.Error(t, err)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	setTestSecrets(t)
	db := openTestDB(t)
	userID := uuid.New()

	raw, err := IssueRefreshToken(db, userID, "test-agent", "127.0.0.1", time.Now())
	require.NoError(t, err)

	// Only the HMAC hash lands in the table, never the token itself.
	var row authModel.RefreshTokenModel
	require.NoError(t, db.First(&row).Error)
	require.Equal(t, ComputeRefreshHash(raw), row.Token)
	require.NotEqual(t, raw, row.Token)

	parsed, err := ParseRefreshToken(db, raw)
	require.NoError(t, err)
	require.Equal(t, userID, parsed)

	require.NoError(t, RevokeRefreshToken(db, raw))

	// Signature still valid, but the stored hash is gone.
	_, err = ParseRefreshToken(db, raw)
	require.Error(t, err)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	setTestSecrets(t)
	db := openTestDB(t)

	_, err := ParseRefreshToken(db, "not-a-jwt")
	require.Error(t, err)
}
