package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactGroupModel struct {
	ContactGroupID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contact_group_id" json:"contact_group_id"`
	ContactGroupOrgID uuid.UUID `gorm:"type:uuid;not null;index;column:contact_group_org_id" json:"contact_group_org_id"`

	ContactGroupName        string  `gorm:"type:varchar(120);not null;column:contact_group_name" json:"contact_group_name"`
	ContactGroupDescription *string `gorm:"type:text;column:contact_group_description" json:"contact_group_description,omitempty"`

	ContactGroupCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:contact_group_created_at" json:"contact_group_created_at"`
	ContactGroupUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:contact_group_updated_at" json:"contact_group_updated_at"`
	ContactGroupDeletedAt gorm.DeletedAt `gorm:"column:contact_group_deleted_at;index" json:"contact_group_deleted_at,omitempty"`
}

func (ContactGroupModel) TableName() string { return "contact_groups" }

type ContactGroupMemberModel struct {
	ContactGroupMemberID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contact_group_member_id" json:"contact_group_member_id"`
	ContactGroupMemberGroupID   uuid.UUID `gorm:"type:uuid;not null;index:idx_group_member_unique,unique;column:contact_group_member_group_id" json:"contact_group_member_group_id"`
	ContactGroupMemberContactID uuid.UUID `gorm:"type:uuid;not null;index:idx_group_member_unique,unique;column:contact_group_member_contact_id" json:"contact_group_member_contact_id"`

	ContactGroupMemberCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:contact_group_member_created_at" json:"contact_group_member_created_at"`

	Contact *ContactModel `gorm:"foreignKey:ContactGroupMemberContactID;references:ContactID" json:"contact,omitempty"`
}

func (ContactGroupMemberModel) TableName() string { return "contact_group_members" }
