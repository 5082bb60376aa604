package usecase_test

import (
	"context"

	"tradenomi-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Fetch(ctx context.Context, filter domain.ProfileFilter, limit *int, offset int) ([]domain.Profile, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so in-place sorting never touches the fixture.
	return append([]domain.Profile(nil), args.Get(0).([]domain.Profile)...), args.Error(1)
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) MergeData(ctx context.Context, id int64, patch []byte) (*domain.Profile, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) MergeSettings(ctx context.Context, id int64, patch []byte) (*domain.Profile, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) FetchByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) FetchSubscribers(ctx context.Context, setting string) ([]domain.Profile, error) {
	args := m.Called(ctx, setting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

type MockAdRepo struct {
	mock.Mock
}

func (m *MockAdRepo) Create(ctx context.Context, ad *domain.Ad) error {
	return m.Called(ctx, ad).Error(0)
}

func (m *MockAdRepo) GetByID(ctx context.Context, id int64) (*domain.AdWithAuthor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdWithAuthor), args.Error(1)
}

func (m *MockAdRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.AdWithAuthor, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.AdWithAuthor), args.Get(1).(int64), args.Error(2)
}

func (m *MockAdRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.AdWithAuthor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdWithAuthor), args.Error(1)
}

func (m *MockAdRepo) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	return m.Called(ctx, answer).Error(0)
}

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}

func (m *MockNotifier) NotifyNewAd(ctx context.Context, to string, ad *domain.Ad, authorName string) error {
	return m.Called(ctx, to, ad, authorName).Error(0)
}

func (m *MockNotifier) NotifyAnswer(ctx context.Context, to string, ad *domain.Ad, answer *domain.Answer, answererName string) error {
	return m.Called(ctx, to, ad, answer, answererName).Error(0)
}

func (m *MockNotifier) SendBusinessCard(ctx context.Context, to string, card *domain.BusinessCard) error {
	return m.Called(ctx, to, card).Error(0)
}

type MockTitleSource struct {
	mock.Mock
}

func (m *MockTitleSource) PositionTitles(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockTitleSource) DomainTitles(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
func intPtr(v int) *int { return &v }

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, key, contentType, body)
	return args.String(0), args.Error(1)
}
