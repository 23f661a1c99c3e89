package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// subscription_id is set null when the subscription row is removed.
type NotificationModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	SubscriptionID   *uuid.UUID `gorm:"type:uuid;index"`
	Title            string     `gorm:"type:varchar(255);not null"`
	Message          string     `gorm:"type:text;not null"`
	NotificationType string     `gorm:"type:varchar(20);not null;default:'system'"`
	IsRead           bool       `gorm:"not null;default:false"`
	ReadAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Subscription *SubscriptionModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
