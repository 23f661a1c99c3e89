package repository

import "context"

// TransactionManager runs a unit of work atomically, e.g. the tier-limit check
// and insert of a new subscription, or the lookup and upsert of a device token.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the running transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewSubscriptionRepository() SubscriptionRepository
	NewDeviceRepository() DeviceRepository
	NewNotificationRepository() NotificationRepository
}
