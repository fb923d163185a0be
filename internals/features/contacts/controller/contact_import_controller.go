package controller

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rayk_backend/internals/features/contacts/dto"
	"rayk_backend/internals/features/contacts/model"
	helper "rayk_backend/internals/helpers"
	featuresMiddleware "rayk_backend/internals/middlewares/features"
)

// POST /api/a/contacts/import - multipart CSV, header: name,email,phone,language.
// Rows are inserted one by one so a duplicate or bad row is reported with its
// line number instead of failing the whole file.
func (ctrl *ContactController) ImportCSV(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing file field")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Empty or invalid CSV")
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameIdx, ok := col["name"]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "CSV header must contain a name column")
	}
	emailIdx, hasEmail := col["email"]
	phoneIdx, hasPhone := col["phone"]
	langIdx, hasLang := col["language"]
	if !hasEmail && !hasPhone {
		return fiber.NewError(fiber.StatusBadRequest, "CSV header must contain email or phone")
	}

	result := dto.ImportResultDTO{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: "malformed row"})
			continue
		}

		req := dto.CreateContactRequest{ContactName: field(record, nameIdx)}
		if hasEmail {
			if v := strings.TrimSpace(field(record, emailIdx)); v != "" {
				req.ContactEmail = &v
			}
		}
		if hasPhone {
			if v := strings.TrimSpace(field(record, phoneIdx)); v != "" {
				req.ContactPhone = &v
			}
		}
		if hasLang {
			req.ContactLanguage = strings.ToLower(strings.TrimSpace(field(record, langIdx)))
			if req.ContactLanguage != "ar" && req.ContactLanguage != "en" {
				req.ContactLanguage = ""
			}
		}
		if len(req.ContactName) < 2 {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: "name too short"})
			continue
		}

		contact, errMsg := buildContact(orgID, req)
		if errMsg != "" {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: errMsg})
			continue
		}
		if err := ctrl.DB.Create(contact).Error; err != nil {
			result.Skipped++
			msg := "insert failed"
			if isUniqueViolation(err) {
				msg = "duplicate email or phone"
			}
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Message: msg})
			continue
		}
		result.Imported++
	}

	return helper.Success(c, fmt.Sprintf("Imported %d contacts", result.Imported), result)
}

// GET /api/a/contacts/export - CSV download of the active org's contacts.
func (ctrl *ContactController) ExportCSV(c *fiber.Ctx) error {
	orgID, err := featuresMiddleware.OrgIDFromLocals(c)
	if err != nil {
		return err
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write([]string{"name", "email", "phone", "language", "opted_out"})

	var batch []model.ContactModel
	if err := ctrl.DB.Where("contact_org_id = ?", orgID).
		Order("contact_created_at ASC").
		FindInBatches(&batch, 1000, func(tx *gorm.DB, _ int) error {
			for _, m := range batch {
				email, phone := "", ""
				if m.ContactEmail != nil {
					email = *m.ContactEmail
				}
				if m.ContactPhone != nil {
					phone = *m.ContactPhone
				}
				optedOut := "false"
				if m.ContactOptedOut {
					optedOut = "true"
				}
				if err := w.Write([]string{m.ContactName, email, phone, m.ContactLanguage, optedOut}); err != nil {
					return err
				}
			}
			return nil
		}).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to export contacts")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render CSV")
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="contacts.csv"`)
	return c.SendString(sb.String())
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
