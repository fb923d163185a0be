package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rayk_backend/internals/constants"
	"rayk_backend/internals/features/organizations/dto"
	"rayk_backend/internals/features/organizations/model"
	userModel "rayk_backend/internals/features/users/user/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

var validateOrg = validator.New()

type OrganizationController struct {
	DB *gorm.DB
}

func NewOrganizationController(db *gorm.DB) *OrganizationController {
	return &OrganizationController{DB: db}
}

// POST /api/u/organizations - creator becomes owner.
func (ctrl *OrganizationController) Create(c *fiber.Ctx) error {
	var req dto.CreateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOrg.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	userID, _ := c.Locals("user_id").(string)
	uid, err := uuid.Parse(userID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	org := model.OrganizationModel{
		OrgName:     strings.TrimSpace(req.OrgName),
		OrgSlug:     helper.GenerateSlug(req.OrgName) + "-" + uuid.NewString()[:8],
		OrgIndustry: req.OrgIndustry,
	}
	if len(req.OrgNameI18n) > 0 {
		raw, _ := json.Marshal(req.OrgNameI18n)
		org.OrgNameI18n = datatypes.JSON(raw)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&org).Error; err != nil {
			return err
		}
		member := model.OrganizationMemberModel{
			OrgMemberOrgID:  org.OrgID,
			OrgMemberUserID: uid,
			OrgMemberRole:   constants.RoleOwner,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		log.Println("[ERROR] create org:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create organization")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Organization created", dto.ToOrganizationDTO(org))
}

// GET /api/u/organizations - organizations the caller belongs to.
func (ctrl *OrganizationController) ListMine(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var members []model.OrganizationMemberModel
	if err := ctrl.DB.Preload("Organization").
		Where("org_member_user_id = ?", userID).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list organizations")
	}

	out := make([]fiber.Map, 0, len(members))
	for _, m := range members {
		if m.Organization == nil {
			continue
		}
		out = append(out, fiber.Map{
			"organization": dto.ToOrganizationDTO(*m.Organization),
			"role":         m.OrgMemberRole,
		})
	}
	return helper.Success(c, "OK", out)
}

// GET /api/a/organization - the active organization.
func (ctrl *OrganizationController) GetActive(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}
	var org model.OrganizationModel
	if err := ctrl.DB.First(&org, "org_id = ?", orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Organization not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load organization")
	}
	return helper.Success(c, "OK", dto.ToOrganizationDTO(org))
}

// PUT /api/a/organization
func (ctrl *OrganizationController) UpdateActive(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpdateOrganizationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOrg.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var org model.OrganizationModel
	if err := ctrl.DB.First(&org, "org_id = ?", orgID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Organization not found")
	}

	updates := map[string]interface{}{}
	if req.OrgName != nil {
		updates["org_name"] = strings.TrimSpace(*req.OrgName)
	}
	if req.OrgIndustry != nil {
		updates["org_industry"] = *req.OrgIndustry
	}
	if len(req.OrgNameI18n) > 0 {
		raw, _ := json.Marshal(req.OrgNameI18n)
		updates["org_name_i18n"] = datatypes.JSON(raw)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&org).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update organization")
		}
	}
	return helper.Success(c, "Organization updated", dto.ToOrganizationDTO(org))
}

// POST /api/a/organization/members
func (ctrl *OrganizationController) AddMember(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateOrg.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "No user with that email")
	}

	member := model.OrganizationMemberModel{
		OrgMemberOrgID:  orgID,
		OrgMemberUserID: user.UserID,
		OrgMemberRole:   req.Role,
	}
	if err := ctrl.DB.Create(&member).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fiber.NewError(fiber.StatusConflict, "User is already a member")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to add member")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Member added", dto.MemberDTO{
		OrgMemberID: member.OrgMemberID.String(),
		UserID:      user.UserID.String(),
		UserName:    user.UserName,
		UserEmail:   user.UserEmail,
		Role:        member.OrgMemberRole,
		JoinedAt:    member.OrgMemberCreatedAt,
	})
}

// GET /api/a/organization/members
func (ctrl *OrganizationController) ListMembers(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	type row struct {
		model.OrganizationMemberModel
		UserName  string `gorm:"column:user_name"`
		UserEmail string `gorm:"column:user_email"`
	}
	var rows []row
	if err := ctrl.DB.Table("organization_members").
		Select("organization_members.*, users.user_name, users.user_email").
		Joins("JOIN users ON users.user_id = organization_members.org_member_user_id").
		Where("org_member_org_id = ? AND org_member_deleted_at IS NULL", orgID).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list members")
	}

	out := make([]dto.MemberDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MemberDTO{
			OrgMemberID: r.OrgMemberID.String(),
			UserID:      r.OrgMemberUserID.String(),
			UserName:    r.UserName,
			UserEmail:   r.UserEmail,
			Role:        r.OrgMemberRole,
			JoinedAt:    r.OrgMemberCreatedAt,
		})
	}
	return helper.Success(c, "OK", out)
}

// DELETE /api/a/organization/members/:id - owners cannot be removed here.
func (ctrl *OrganizationController) RemoveMember(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}
	memberID := c.Params("id")

	var member model.OrganizationMemberModel
	if err := ctrl.DB.First(&member,
		"org_member_id = ? AND org_member_org_id = ?", memberID, orgID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Member not found")
	}
	if member.OrgMemberRole == constants.RoleOwner {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot remove the owner")
	}
	if err := ctrl.DB.Delete(&member).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove member")
	}
	return helper.Success(c, "Member removed", nil)
}
