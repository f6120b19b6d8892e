package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certassoc_backend/internals/configs"
	"certassoc_backend/internals/constants"
	adminModel "certassoc_backend/internals/features/users/admin/model"
	dto "certassoc_backend/internals/features/users/auth/dto"
	service "certassoc_backend/internals/features/users/auth/service"
	userDto "certassoc_backend/internals/features/users/user/dto"
	userModel "certassoc_backend/internals/features/users/user/model"
	helper "certassoc_backend/internals/helpers"
	authMw "certassoc_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user *userModel.UserModel) (*dto.TokenResponse, error) {
	now := time.Now().UTC()
	access, err := service.IssueAccessToken(service.TokenIdentity{
		UserID: user.UserID.String(),
		Email:  user.UserEmail,
		Name:   user.UserName,
		Role:   user.UserRole,
	}, now)
	if err != nil {
		return nil, err
	}
	refresh, err := service.IssueRefreshToken(ctrl.DB, user.UserID, c.Get("User-Agent"), c.IP(), now)
	if err != nil {
		return nil, err
	}
	resp := userDto.ToUserResponse(user)
	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         &resp,
	}, nil
}

// =========================================================
// POST /api/auth/register
// =========================================================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.UserEmail).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
	}

	hashed, err := service.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserEmail:    req.UserEmail,
		UserPassword: &hashed,
		UserName:     req.UserName,
		UserPhone:    req.UserPhone,
		UserRole:     constants.RoleUser,
		UserStatus:   constants.UserStatusActive,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register")
	}

	tokens, err := ctrl.issueTokens(c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonCreated(c, "Registered", tokens)
}

// =========================================================
// POST /api/auth/login
// =========================================================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", req.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}
	if user.UserPassword == nil || !service.CheckPassword(*user.UserPassword, req.UserPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if user.UserStatus != constants.UserStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is not active")
	}

	tokens, err := ctrl.issueTokens(c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Logged in", tokens)
}

// =========================================================
// POST /api/auth/google - Google Sign-In ID token exchange
// =========================================================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	account, err := service.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google token invalid")
	}

	var user userModel.UserModel
	err = ctrl.DB.Where("user_google_sub = ? OR user_email = ?", account.Sub, strings.ToLower(account.Email)).
		First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{
			UserEmail:     strings.ToLower(account.Email),
			UserName:      account.Name,
			UserRole:      constants.RoleUser,
			UserStatus:    constants.UserStatusActive,
			UserGoogleSub: &account.Sub,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
		}
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	default:
		if user.UserGoogleSub == nil {
			// link existing email account
			if err := ctrl.DB.Model(&user).Update("user_google_sub", account.Sub).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link account")
			}
			user.UserGoogleSub = &account.Sub
		}
	}
	if user.UserStatus != constants.UserStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is not active")
	}

	tokens, err := ctrl.issueTokens(c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Logged in", tokens)
}

// =========================================================
// POST /api/auth/refresh-token - rotate refresh, new access
// =========================================================
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var req dto.RefreshRequest
		if err := c.BodyParser(&req); err == nil {
			raw = strings.TrimSpace(req.RefreshToken)
		}
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	userID, err := service.ParseRefreshToken(ctrl.DB, raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account not found")
	}
	if user.UserStatus != constants.UserStatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is not active")
	}

	// ROTATE: drop the presented token before issuing a new pair
	if err := service.RevokeRefreshToken(ctrl.DB, raw); err != nil {
		log.Printf("[refresh] revoke old token: %v", err)
	}

	tokens, err := ctrl.issueTokens(c, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	return helper.JsonOK(c, "Token refreshed", tokens)
}

// =========================================================
// POST /api/auth/logout (authed) - blacklist the access token
// =========================================================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing token")
	}

	expiredAt := time.Now().Add(service.AccessTTL)
	if claims, err := service.VerifyAccessToken(tokenString); err == nil {
		if exp, ok := authMw.TokenExpiry(claims); ok {
			expiredAt = exp
		}
	}
	if err := service.BlacklistAccessToken(ctrl.DB, tokenString, expiredAt); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}

	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		if err := service.RevokeRefreshToken(ctrl.DB, raw); err != nil {
			log.Printf("[logout] revoke refresh: %v", err)
		}
	}
	return helper.JsonOK(c, "Logged out", nil)
}

// =========================================================
// POST /api/auth/admin/login
// Env bootstrap pair first (fixed super_admin identity), then the
// admins table (bcrypt).
// =========================================================
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now().UTC()

	if configs.AdminEmail != "" &&
		strings.EqualFold(req.Email, configs.AdminEmail) &&
		req.Password == configs.AdminPassword {
		access, err := service.IssueAccessToken(service.TokenIdentity{
			UserID: service.BootstrapAdminID,
			Email:  configs.AdminEmail,
			Name:   "관리자",
			Role:   constants.RoleSuperAdmin,
		}, now)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
		}
		return helper.JsonOK(c, "Logged in", dto.AdminTokenResponse{
			AccessToken: access,
			Email:       configs.AdminEmail,
			Role:        constants.RoleSuperAdmin,
		})
	}

	var admin adminModel.AdminModel
	if err := ctrl.DB.First(&admin, "admin_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}
	if !admin.AdminIsActive || !service.CheckPassword(admin.AdminPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	access, err := service.IssueAccessToken(service.TokenIdentity{
		UserID: admin.AdminID.String(),
		Email:  admin.AdminEmail,
		Name:   admin.AdminName,
		Role:   admin.AdminRole,
	}, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "Logged in", dto.AdminTokenResponse{
		AccessToken: access,
		Email:       admin.AdminEmail,
		Role:        admin.AdminRole,
	})
}

// =========================================================
// GET /api/auth/verify - {valid, decoded}
// =========================================================
func (ctrl *AuthController) Verify(c *fiber.Ctx) error {
	tokenString, err := helper.ExtractBearerToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"valid": false})
	}
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"valid": false})
	}
	return c.JSON(fiber.Map{"valid": true, "decoded": claims})
}
