package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrganizationModel is the tenant. Every survey, contact, campaign and
// feedback row carries the organization ID and every query filters by it.
type OrganizationModel struct {
	OrgID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:org_id" json:"org_id"`
	OrgName string    `gorm:"type:varchar(120);not null;column:org_name" json:"org_name"`
	OrgSlug string    `gorm:"type:varchar(160);not null;uniqueIndex;column:org_slug" json:"org_slug"`

	// Bilingual display name, {"ar": "...", "en": "..."}.
	OrgNameI18n datatypes.JSON `gorm:"type:jsonb;column:org_name_i18n" json:"org_name_i18n,omitempty"`

	OrgIndustry *string `gorm:"type:varchar(80);column:org_industry" json:"org_industry,omitempty"`
	OrgIsActive bool    `gorm:"type:boolean;not null;default:true;column:org_is_active" json:"org_is_active"`

	OrgCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:org_created_at" json:"org_created_at"`
	OrgUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:org_updated_at" json:"org_updated_at"`
	OrgDeletedAt gorm.DeletedAt `gorm:"column:org_deleted_at;index" json:"org_deleted_at,omitempty"`
}

func (OrganizationModel) TableName() string { return "organizations" }

type OrganizationMemberModel struct {
	OrgMemberID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:org_member_id" json:"org_member_id"`
	OrgMemberOrgID  uuid.UUID `gorm:"type:uuid;not null;index:idx_org_member_unique,unique;column:org_member_org_id" json:"org_member_org_id"`
	OrgMemberUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_org_member_unique,unique;column:org_member_user_id" json:"org_member_user_id"`

	// owner | admin | analyst | member
	OrgMemberRole string `gorm:"type:varchar(20);not null;default:'member';column:org_member_role" json:"org_member_role"`

	OrgMemberCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:org_member_created_at" json:"org_member_created_at"`
	OrgMemberDeletedAt gorm.DeletedAt `gorm:"column:org_member_deleted_at;index" json:"org_member_deleted_at,omitempty"`

	Organization *OrganizationModel `gorm:"foreignKey:OrgMemberOrgID;references:OrgID" json:"organization,omitempty"`
}

func (OrganizationMemberModel) TableName() string { return "organization_members" }
