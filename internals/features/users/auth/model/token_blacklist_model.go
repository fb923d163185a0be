package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenBlacklistModel stores revoked tokens until they expire; the cleanup
// scheduler removes rows past token_blacklist_expired_at.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"type:text;not null;uniqueIndex;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `gorm:"type:timestamptz;not null;column:token_blacklist_expired_at" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:token_blacklist_created_at" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
