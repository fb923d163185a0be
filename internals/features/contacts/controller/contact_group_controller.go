package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rayk_backend/internals/features/contacts/dto"
	"rayk_backend/internals/features/contacts/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

type ContactGroupController struct {
	DB *gorm.DB
}

func NewContactGroupController(db *gorm.DB) *ContactGroupController {
	return &ContactGroupController{DB: db}
}

// POST /api/a/contact-groups
func (ctrl *ContactGroupController) Create(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateContactGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	group := model.ContactGroupModel{
		ContactGroupOrgID:       orgID,
		ContactGroupName:        strings.TrimSpace(req.ContactGroupName),
		ContactGroupDescription: req.ContactGroupDescription,
	}
	if err := ctrl.DB.Create(&group).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group created", group)
}

// GET /api/a/contact-groups - with member counts.
func (ctrl *ContactGroupController) List(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	type row struct {
		model.ContactGroupModel
		MemberCount int64 `gorm:"column:member_count" json:"member_count"`
	}
	var rows []row
	if err := ctrl.DB.Table("contact_groups").
		Select("contact_groups.*, COUNT(gm.contact_group_member_id) AS member_count").
		Joins("LEFT JOIN contact_group_members gm ON gm.contact_group_member_group_id = contact_groups.contact_group_id").
		Where("contact_group_org_id = ? AND contact_group_deleted_at IS NULL", orgID).
		Group("contact_groups.contact_group_id").
		Order("contact_group_created_at DESC").
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list groups")
	}
	return helper.Success(c, "OK", rows)
}

// POST /api/a/contact-groups/:id/members - idempotent bulk add.
func (ctrl *ContactGroupController) AddMembers(c *fiber.Ctx) error {
	group, err := ctrl.findOrgGroup(c)
	if err != nil {
		return err
	}

	var req dto.GroupMembersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Only contacts of the same org may join.
	var valid []model.ContactModel
	if err := ctrl.DB.Where("contact_id IN ? AND contact_org_id = ?",
		req.ContactIDs, group.ContactGroupOrgID).Find(&valid).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve contacts")
	}
	if len(valid) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No valid contacts to add")
	}

	added := 0
	for _, contact := range valid {
		member := model.ContactGroupMemberModel{
			ContactGroupMemberGroupID:   group.ContactGroupID,
			ContactGroupMemberContactID: contact.ContactID,
		}
		if err := ctrl.DB.Create(&member).Error; err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to add members")
		}
		added++
	}
	return helper.Success(c, "Members added", fiber.Map{"added": added})
}

// DELETE /api/a/contact-groups/:id/members - bulk remove.
func (ctrl *ContactGroupController) RemoveMembers(c *fiber.Ctx) error {
	group, err := ctrl.findOrgGroup(c)
	if err != nil {
		return err
	}

	var req dto.GroupMembersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Where(
		"contact_group_member_group_id = ? AND contact_group_member_contact_id IN ?",
		group.ContactGroupID, req.ContactIDs,
	).Delete(&model.ContactGroupMemberModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to remove members")
	}
	return helper.Success(c, "Members removed", fiber.Map{"removed": res.RowsAffected})
}

// DELETE /api/a/contact-groups/:id
func (ctrl *ContactGroupController) Delete(c *fiber.Ctx) error {
	group, err := ctrl.findOrgGroup(c)
	if err != nil {
		return err
	}
	if err := ctrl.DB.Delete(group).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete group")
	}
	return helper.Success(c, "Group deleted", nil)
}

func (ctrl *ContactGroupController) findOrgGroup(c *fiber.Ctx) (*model.ContactGroupModel, error) {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var group model.ContactGroupModel
	if err := ctrl.DB.First(&group,
		"contact_group_id = ? AND contact_group_org_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Group not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load group")
	}
	return &group, nil
}
