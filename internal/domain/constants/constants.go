// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// RoleAdmin is the access token role that unlocks the admin API.
const RoleAdmin = "admin"

// Pagination defaults for list endpoints.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Push data keys sent with every renewal reminder.
const (
	PushDataSubscriptionID = "subscription_id"
	PushDataType           = "type"
	PushDataDaysAhead      = "days_ahead"
)
