package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions' table.
type SubscriptionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(255);not null"`
	IconURL            *string         `gorm:"type:varchar(255)"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CurrencyCode       string          `gorm:"type:varchar(3);not null;default:'USD'"`
	StartDate          time.Time       `gorm:"type:date;not null"`
	BillingCycleCount  int             `gorm:"not null;default:1"`
	BillingCyclePeriod string          `gorm:"type:varchar(10);not null;default:'month'"`
	Category           *string         `gorm:"type:varchar(255);index"`
	Notes              *string         `gorm:"type:text"`
	IsCancelled        bool            `gorm:"not null;default:false;index"`
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
