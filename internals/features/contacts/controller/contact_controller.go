package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rayk_backend/internals/features/contacts/dto"
	"rayk_backend/internals/features/contacts/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

var validateContact = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// POST /api/a/contacts
func (ctrl *ContactController) Create(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.CreateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	contact, errMsg := buildContact(orgID, req)
	if errMsg != "" {
		return fiber.NewError(fiber.StatusBadRequest, errMsg)
	}

	if err := ctrl.DB.Create(contact).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Contact with this email or phone already exists")
		}
		log.Println("[ERROR] create contact:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create contact")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Contact created", dto.ToContactDTO(*contact))
}

// GET /api/a/contacts?search=&opted_out=&group_id=
func (ctrl *ContactController) List(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	q := ctrl.DB.Model(&model.ContactModel{}).Where("contact_org_id = ?", orgID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("contact_name ILIKE ? OR contact_email ILIKE ? OR contact_phone LIKE ?", like, like, like)
	}
	if v := c.Query("opted_out"); v == "true" || v == "false" {
		q = q.Where("contact_opted_out = ?", v == "true")
	}
	if groupID := c.Query("group_id"); groupID != "" {
		q = q.Joins("JOIN contact_group_members gm ON gm.contact_group_member_contact_id = contacts.contact_id").
			Where("gm.contact_group_member_group_id = ?", groupID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count contacts")
	}

	var contacts []model.ContactModel
	if err := q.Order("contact_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&contacts).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list contacts")
	}

	out := make([]dto.ContactDTO, 0, len(contacts))
	for _, m := range contacts {
		out = append(out, dto.ToContactDTO(m))
	}
	return helper.SuccessWithMeta(c, "OK", out, helper.BuildMeta(total, p))
}

// PUT /api/a/contacts/:id
func (ctrl *ContactController) Update(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var req dto.UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var contact model.ContactModel
	if err := ctrl.DB.First(&contact,
		"contact_id = ? AND contact_org_id = ?", c.Params("id"), orgID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Contact not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load contact")
	}

	updates := map[string]interface{}{}
	if req.ContactName != nil {
		updates["contact_name"] = strings.TrimSpace(*req.ContactName)
	}
	if req.ContactEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*req.ContactEmail))
		updates["contact_email"] = email
	}
	if req.ContactPhone != nil {
		if !helper.ValidatePhone(*req.ContactPhone) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid phone number")
		}
		updates["contact_phone"] = helper.NormalizePhone(*req.ContactPhone)
	}
	if req.ContactLanguage != nil {
		updates["contact_language"] = *req.ContactLanguage
	}
	if req.ContactOptedOut != nil {
		updates["contact_opted_out"] = *req.ContactOptedOut
	}
	if len(req.ContactAttributes) > 0 {
		raw, _ := json.Marshal(req.ContactAttributes)
		updates["contact_attributes"] = datatypes.JSON(raw)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&contact).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Contact with this email or phone already exists")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update contact")
		}
	}
	return helper.Success(c, "Contact updated", dto.ToContactDTO(contact))
}

// DELETE /api/a/contacts/:id (soft delete)
func (ctrl *ContactController) Delete(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}
	res := ctrl.DB.Where("contact_id = ? AND contact_org_id = ?",
		c.Params("id"), orgID).Delete(&model.ContactModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete contact")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Contact not found")
	}
	return helper.Success(c, "Contact deleted", nil)
}

func buildContact(orgID uuid.UUID, req dto.CreateContactRequest) (*model.ContactModel, string) {
	if req.ContactEmail == nil && req.ContactPhone == nil {
		return nil, "Contact needs an email or a phone number"
	}

	contact := model.ContactModel{
		ContactOrgID:    orgID,
		ContactName:     strings.TrimSpace(req.ContactName),
		ContactLanguage: req.ContactLanguage,
	}
	if contact.ContactLanguage == "" {
		contact.ContactLanguage = "ar"
	}
	if req.ContactEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*req.ContactEmail))
		contact.ContactEmail = &email
	}
	if req.ContactPhone != nil {
		if !helper.ValidatePhone(*req.ContactPhone) {
			return nil, "Invalid phone number"
		}
		phone := helper.NormalizePhone(*req.ContactPhone)
		contact.ContactPhone = &phone
	}
	if len(req.ContactAttributes) > 0 {
		raw, _ := json.Marshal(req.ContactAttributes)
		contact.ContactAttributes = datatypes.JSON(raw)
	}
	return &contact, ""
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "duplicate key")
}
