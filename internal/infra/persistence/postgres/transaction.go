// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"subtrack/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewSubscriptionRepository() repository.SubscriptionRepository {
	return NewSubscriptionRepository(r.tx)
}

func (r txRepositories) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(r.tx)
}

func (r txRepositories) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(r.tx)
}

// NewTransactionManager is the Fx provider for repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or a panic.
// The error returned by fn is passed through unwrapped so usecases can still
// match their domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}
