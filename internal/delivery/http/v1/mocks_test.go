package v1_test

import (
	"context"
	"image"

	"tradenomi-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) ListProfiles(ctx context.Context, params domain.ProfileListParams) ([]domain.Profile, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileUsecase) UpdateOwnProfile(ctx context.Context, userID int64, patch *domain.ProfileDataPatch) (*domain.Profile, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileUsecase) ConsentToProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockSettingsUsecase struct {
	mock.Mock
}

func (m *MockSettingsUsecase) GetSettings(ctx context.Context, userID int64) (*domain.ResolvedSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedSettings), args.Error(1)
}

func (m *MockSettingsUsecase) UpdateSettings(ctx context.Context, userID int64, patch *domain.Settings) (*domain.ResolvedSettings, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedSettings), args.Error(1)
}

type MockAdUsecase struct {
	mock.Mock
}

func (m *MockAdUsecase) CreateAd(ctx context.Context, userID int64, data *domain.AdData) (*domain.Ad, error) {
	args := m.Called(ctx, userID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ad), args.Error(1)
}

func (m *MockAdUsecase) GetAd(ctx context.Context, id int64) (*domain.AdWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdWithAuthor), args.Error(1)
}

func (m *MockAdUsecase) ListAds(ctx context.Context, page, pageSize int) ([]domain.AdWithAuthor, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AdWithAuthor), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdUsecase) ListAdsForUser(ctx context.Context, userID int64) ([]domain.AdWithAuthor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdWithAuthor), args.Error(1)
}

func (m *MockAdUsecase) CreateAnswer(ctx context.Context, userID, adID int64, message string) (*domain.Answer, error) {
	args := m.Called(ctx, userID, adID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Answer), args.Error(1)
}

type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) AddContact(ctx context.Context, fromUserID, toUserID int64, card *domain.BusinessCard) (*domain.Contact, error) {
	args := m.Called(ctx, fromUserID, toUserID, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

type MockCatalogUsecase struct {
	mock.Mock
}

func (m *MockCatalogUsecase) PositionTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogUsecase) DomainTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPhotoUsecase struct {
	mock.Mock
}

func (m *MockPhotoUsecase) UpdatePhoto(ctx context.Context, userID int64, upload []byte, crop *image.Rectangle) (*domain.Profile, error) {
	args := m.Called(ctx, userID, upload, crop)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
