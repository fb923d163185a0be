package dto

import (
	"time"

	"gorm.io/datatypes"

	"rayk_backend/internals/features/organizations/model"
)

type OrganizationDTO struct {
	OrgID       string         `json:"org_id"`
	OrgName     string         `json:"org_name"`
	OrgSlug     string         `json:"org_slug"`
	OrgNameI18n datatypes.JSON `json:"org_name_i18n,omitempty"`
	OrgIndustry *string        `json:"org_industry,omitempty"`
	OrgIsActive bool           `json:"org_is_active"`
	CreatedAt   time.Time      `json:"created_at"`
}

type CreateOrganizationRequest struct {
	OrgName     string            `json:"org_name" validate:"required,min=2,max=120"`
	OrgNameI18n map[string]string `json:"org_name_i18n" validate:"omitempty"`
	OrgIndustry *string           `json:"org_industry" validate:"omitempty,max=80"`
}

type UpdateOrganizationRequest struct {
	OrgName     *string           `json:"org_name" validate:"omitempty,min=2,max=120"`
	OrgNameI18n map[string]string `json:"org_name_i18n" validate:"omitempty"`
	OrgIndustry *string           `json:"org_industry" validate:"omitempty,max=80"`
}

type AddMemberRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=owner admin analyst member"`
}

type MemberDTO struct {
	OrgMemberID string    `json:"org_member_id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	Role        string    `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
}

func ToOrganizationDTO(m model.OrganizationModel) OrganizationDTO {
	return OrganizationDTO{
		OrgID:       m.OrgID.String(),
		OrgName:     m.OrgName,
		OrgSlug:     m.OrgSlug,
		OrgNameI18n: m.OrgNameI18n,
		OrgIndustry: m.OrgIndustry,
		OrgIsActive: m.OrgIsActive,
		CreatedAt:   m.OrgCreatedAt,
	}
}
