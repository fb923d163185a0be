package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rayk_backend/internals/constants"
	orgModel "rayk_backend/internals/features/organizations/model"
	"rayk_backend/internals/features/users/auth/dto"
	authModel "rayk_backend/internals/features/users/auth/model"
	authService "rayk_backend/internals/features/users/auth/service"
	userModel "rayk_backend/internals/features/users/user/model"
	helper "rayk_backend/internals/helpers"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if helper.ContainsArabic(req.UserName) && !helper.IsArabicName(req.UserName) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid Arabic name")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	lang := req.UserLanguage
	if lang == "" {
		lang = "ar"
	}
	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hashed),
		UserLanguage: lang,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if req.OrgName != "" {
			org := orgModel.OrganizationModel{
				OrgName: req.OrgName,
				OrgSlug: helper.GenerateSlug(req.OrgName) + "-" + uuid.NewString()[:8],
			}
			if err := tx.Create(&org).Error; err != nil {
				return err
			}
			member := orgModel.OrganizationMemberModel{
				OrgMemberOrgID:  org.OrgID,
				OrgMemberUserID: user.UserID,
				OrgMemberRole:   constants.RoleOwner,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		// gorm's pgx path reports duplicates as ErrDuplicatedKey
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key") {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		log.Println("[ERROR] register:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registered", fiber.Map{
		"user_id": user.UserID,
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	// Active organization defaults to the oldest membership.
	var member orgModel.OrganizationMemberModel
	tc := authService.TokenClaims{UserID: user.UserID, UserName: user.UserName}
	if err := ctrl.DB.
		Order("org_member_created_at ASC").
		First(&member, "org_member_user_id = ?", user.UserID).Error; err == nil {
		tc.OrgID = &member.OrgMemberOrgID
		tc.OrgRole = member.OrgMemberRole
	}

	return ctrl.issueTokenPair(c, tc, "Login successful")
}

// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	claims, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is disabled")
	}

	tc := authService.TokenClaims{UserID: user.UserID, UserName: user.UserName}
	if rawOrg, ok := claims["org_id"].(string); ok && rawOrg != "" {
		if orgID, err := uuid.Parse(rawOrg); err == nil {
			// Re-read the membership so a revoked role does not survive refresh.
			var member orgModel.OrganizationMemberModel
			if err := ctrl.DB.First(&member,
				"org_member_user_id = ? AND org_member_org_id = ?", user.UserID, orgID).Error; err == nil {
				tc.OrgID = &member.OrgMemberOrgID
				tc.OrgRole = member.OrgMemberRole
			}
		}
	}

	return ctrl.issueTokenPair(c, tc, "Token refreshed")
}

// POST /api/auth/switch-org
func (ctrl *AuthController) SwitchOrg(c *fiber.Ctx) error {
	var req dto.SwitchOrgRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	orgID, _ := uuid.Parse(req.OrgID)

	var member orgModel.OrganizationMemberModel
	if err := ctrl.DB.First(&member,
		"org_member_user_id = ? AND org_member_org_id = ?", userID, orgID).Error; err != nil {
		return fiber.NewError(fiber.StatusForbidden, "Not a member of this organization")
	}

	userName, _ := c.Locals("user_name").(string)
	uid, _ := uuid.Parse(userID)
	tc := authService.TokenClaims{
		UserID:   uid,
		UserName: userName,
		OrgID:    &member.OrgMemberOrgID,
		OrgRole:  member.OrgMemberRole,
	}
	return ctrl.issueTokenPair(c, tc, "Organization switched")
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing token")
	}

	entry := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     parts[1],
		TokenBlacklistExpiredAt: time.Now().Add(authService.AccessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// Already blacklisted is fine.
		if !strings.Contains(err.Error(), "duplicate key") {
			log.Println("[ERROR] logout blacklist:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to logout")
		}
	}
	return helper.Success(c, "Logged out", nil)
}

func (ctrl *AuthController) issueTokenPair(c *fiber.Ctx, tc authService.TokenClaims, msg string) error {
	access, err := authService.GenerateAccessToken(tc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}
	refresh, err := authService.GenerateRefreshToken(tc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}
	out := dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}
	if tc.OrgID != nil {
		out.OrgID = tc.OrgID.String()
		out.OrgRole = tc.OrgRole
	}
	return helper.Success(c, msg, out)
}
