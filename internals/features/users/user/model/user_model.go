package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(255);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:text;not null;column:user_password" json:"-"`

	// Preferred UI language, "ar" or "en".
	UserLanguage string `gorm:"type:varchar(5);not null;default:'ar';column:user_language" json:"user_language"`
	UserIsActive bool   `gorm:"type:boolean;not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
