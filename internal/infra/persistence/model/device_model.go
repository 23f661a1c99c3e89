package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// The fcm_token column is unique; re-registering a token moves the row to the new owner.
type DeviceTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken   string    `gorm:"column:fcm_token;type:text;not null;uniqueIndex"`
	DeviceType *string   `gorm:"type:varchar(20)"`
	DeviceName *string   `gorm:"type:varchar(255)"`
	AppVersion *string   `gorm:"type:varchar(50)"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
