package impl

import (
	"context"
	"testing"

	"subtrack/internal/domain/entity"
	domainerrors "subtrack/internal/domain/errors"
	"subtrack/internal/domain/repository"
	mockRepo "subtrack/internal/mocks/repository"
	"subtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return userServiceFixtures{
		service:  NewUserService(UserServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()}),
		userRepo: userRepo,
	}
}

func TestUserService_GetProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "user@example.com", Tier: entity.TierFree}
	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.EXPECT().FindUserByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePreferences(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	want := entity.UserPreferences{
		NotificationsEnabled: lo.ToPtr(false),
		CurrencyCode:         lo.ToPtr("JPY"),
	}
	updated := &entity.User{ID: id, NotificationsEnabled: false, CurrencyCode: "JPY"}

	fx.userRepo.EXPECT().UpdatePreferences(ctx, id, want).Return(nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, id).Return(updated, nil)

	got, err := fx.service.UpdatePreferences(ctx, id, entity.UserPreferences{
		NotificationsEnabled: lo.ToPtr(false),
		CurrencyCode:         lo.ToPtr("jpy"),
	})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserService_UpdatePreferences_Failure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	prefs := entity.UserPreferences{Locale: lo.ToPtr("fr")}
	fx.userRepo.EXPECT().UpdatePreferences(ctx, id, prefs).Return(errors.New("db down"))

	_, err := fx.service.UpdatePreferences(ctx, id, prefs)
	require.ErrorIs(t, err, domainerrors.ErrUserUpdateFailed)
}

func TestUserService_UpdateFCMToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.EXPECT().UpdateFCMToken(ctx, id, "legacy-token").Return(nil).Once()
	fx.userRepo.EXPECT().UpdateFCMToken(ctx, id, "").Return(repository.ErrUserNotFound).Once()

	require.NoError(t, fx.service.UpdateFCMToken(ctx, id, "legacy-token"))
	require.ErrorIs(t, fx.service.UpdateFCMToken(ctx, id, ""), domainerrors.ErrUserNotFound)
}
