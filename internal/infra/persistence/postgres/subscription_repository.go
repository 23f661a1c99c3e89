// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"subtrack/internal/domain/billing"
	"subtrack/internal/domain/constants"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// activeSubscriptionsBatchSize bounds the rows loaded per round trip when scanning every active subscription.
const activeSubscriptionsBatchSize = 1000

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// CreateSubscription persists a new subscription.
func (repo *subscriptionRepository) CreateSubscription(ctx context.Context, sub *entity.Subscription) error {
	subM := fromSubscriptionDomain(sub)

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("subscription violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt
	sub.UpdatedAt = subM.UpdatedAt

	return nil
}

// FindSubscriptionByID retrieves a non-deleted subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subM), nil
}

// FindSubscriptionsByUser lists a user's subscriptions, newest first.
func (repo *subscriptionRepository) FindSubscriptionsByUser(ctx context.Context, userID uuid.UUID, filter entity.SubscriptionFilter) ([]*entity.Subscription, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}
		if filter.IsCancelled != nil {
			db = db.Where("is_cancelled = ?", *filter.IsCancelled)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count subscriptions by user")
	}

	page, perPage := normalizePage(filter.Page, filter.PerPage)

	var subModels []*model.SubscriptionModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&subModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find subscriptions by user")
	}

	return toSubscriptionDomains(subModels), total, nil
}

// FindActiveSubscriptionsByUser retrieves every non-cancelled subscription of a user.
func (repo *subscriptionRepository) FindActiveSubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_cancelled = ?", userID, false).
		Order("start_date ASC").
		Find(&subModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions by user")
	}

	return toSubscriptionDomains(subModels), nil
}

// FindActiveSubscriptions retrieves every non-cancelled subscription, loaded in batches.
func (repo *subscriptionRepository) FindActiveSubscriptions(ctx context.Context) ([]*entity.Subscription, error) {
	subs := make([]*entity.Subscription, 0)

	var batch []*model.SubscriptionModel
	result := repo.db.WithContext(ctx).
		Where("is_cancelled = ?", false).
		FindInBatches(&batch, activeSubscriptionsBatchSize, func(_ *gorm.DB, _ int) error {
			subs = append(subs, toSubscriptionDomains(batch)...)

			return nil
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to find active subscriptions")
	}

	return subs, nil
}

// CountSubscriptionsByUser counts the non-deleted subscriptions of a user.
func (repo *subscriptionRepository) CountSubscriptionsByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count subscriptions by user")
	}

	return count, nil
}

// UpdateSubscription overwrites the editable fields of a subscription.
func (repo *subscriptionRepository) UpdateSubscription(ctx context.Context, sub *entity.Subscription) error {
	subM := fromSubscriptionDomain(sub)

	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", sub.ID).
		Updates(map[string]any{
			"name":                 subM.Name,
			"icon_url":             subM.IconURL,
			"price":                subM.Price,
			"currency_code":        subM.CurrencyCode,
			"start_date":           subM.StartDate,
			"billing_cycle_count":  subM.BillingCycleCount,
			"billing_cycle_period": subM.BillingCyclePeriod,
			"category":             subM.Category,
			"notes":                subM.Notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// CancelSubscription marks a subscription cancelled.
func (repo *subscriptionRepository) CancelSubscription(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_cancelled": true,
			"cancelled_at": cancelledAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to cancel subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// DeleteSubscription soft-deletes a subscription.
func (repo *subscriptionRepository) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// normalizePage clamps pagination input to sane values.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = constants.DefaultPerPage
	}

	return page, min(perPage, constants.MaxPerPage)
}

// --- Mapper Functions ---

func toSubscriptionDomains(models []*model.SubscriptionModel) []*entity.Subscription {
	return lo.Map(models, func(subM *model.SubscriptionModel, _ int) *entity.Subscription {
		return toSubscriptionDomain(subM)
	})
}

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		IconURL:            lo.FromPtr(data.IconURL),
		Price:              data.Price,
		CurrencyCode:       data.CurrencyCode,
		StartDate:          time.Date(data.StartDate.Year(), data.StartDate.Month(), data.StartDate.Day(), 0, 0, 0, 0, time.UTC),
		BillingCycleCount:  data.BillingCycleCount,
		BillingCyclePeriod: billing.Period(data.BillingCyclePeriod),
		Category:           lo.FromPtr(data.Category),
		Notes:              lo.FromPtr(data.Notes),
		IsCancelled:        data.IsCancelled,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Name:               data.Name,
		IconURL:            lo.EmptyableToPtr(data.IconURL),
		Price:              data.Price,
		CurrencyCode:       data.CurrencyCode,
		StartDate:          data.StartDate,
		BillingCycleCount:  data.BillingCycleCount,
		BillingCyclePeriod: string(data.BillingCyclePeriod),
		Category:           lo.EmptyableToPtr(data.Category),
		Notes:              lo.EmptyableToPtr(data.Notes),
		IsCancelled:        data.IsCancelled,
		CancelledAt:        data.CancelledAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
