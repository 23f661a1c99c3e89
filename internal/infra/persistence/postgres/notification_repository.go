// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new audit record.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("invalid user or subscription reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByUser lists a user's notifications newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter) ([]*entity.Notification, int64, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if filter.IsRead != nil {
			db = db.Where("is_read = ?", *filter.IsRead)
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Scopes(scope).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications by user")
	}

	page, perPage := normalizePage(filter.Page, filter.PerPage)

	var notificationModels []*model.NotificationModel
	if err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := lo.Map(notificationModels, func(notificationM *model.NotificationModel, _ int) *entity.Notification {
		return toNotificationDomain(notificationM)
	})

	return notifications, total, nil
}

// MarkAsRead transitions an unread notification to read. Already-read rows are left untouched.
func (repo *notificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": readAt,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:             data.ID,
		UserID:         data.UserID,
		SubscriptionID: data.SubscriptionID,
		Title:          data.Title,
		Message:        data.Message,
		Type:           entity.NotificationType(data.NotificationType),
		IsRead:         data.IsRead,
		ReadAt:         data.ReadAt,
		CreatedAt:      data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:               data.ID,
		UserID:           data.UserID,
		SubscriptionID:   data.SubscriptionID,
		Title:            data.Title,
		Message:          data.Message,
		NotificationType: string(data.Type),
		IsRead:           data.IsRead,
		ReadAt:           data.ReadAt,
		CreatedAt:        data.CreatedAt,
	}
}
