// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "subtrack/internal/delivery/context"
	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the user's account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdatePreferences applies the non-nil preference fields.
func (srv *userService) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entity.UserPreferences) (*entity.User, error) {
	if prefs.CurrencyCode != nil {
		code := strings.ToUpper(*prefs.CurrencyCode)
		prefs.CurrencyCode = &code
	}

	if err := srv.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		srv.log(ctx).Error("Failed to update preferences", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	return srv.GetProfile(ctx, userID)
}

// UpdateFCMToken sets the legacy single-device push token.
func (srv *userService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, fcmToken string) error {
	if err := srv.userRepo.UpdateFCMToken(ctx, userID, fcmToken); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}
