package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                *string   `gorm:"type:varchar(255);unique"`
	FullName             string    `gorm:"type:varchar(255)"`
	IsGuest              bool      `gorm:"not null;default:false"`
	FCMToken             *string   `gorm:"column:fcm_token;type:text"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	Locale               string    `gorm:"type:varchar(10);not null;default:'en'"`
	CurrencyCode         string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Tier                 string    `gorm:"type:varchar(20);not null;default:'free'"`
	TierExpiresAt        *time.Time
	IsAdmin              bool `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`

	Subscriptions []SubscriptionModel `gorm:"foreignKey:UserID"`
	DeviceTokens  []DeviceTokenModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
