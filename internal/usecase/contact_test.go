package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCard() *domain.BusinessCard {
	return &domain.BusinessCard{
		Name:    " Tradenomi Testinen ",
		Title:   "Controller",
		Email:   "testinen@example.com",
		Phone:   "+358401234567",
		Message: "Tavataanko?",
	}
}

func TestAddContactMailsCard(t *testing.T) {
	contacts := new(MockContactRepo)
	profiles := new(MockProfileRepo)
	notifier := new(MockNotifier)

	profiles.On("GetByID", mock.Anything, int64(2)).Return(&domain.Profile{ID: 2, Settings: domain.Settings{EmailAddress: strPtr("matti@example.com")}}, nil)
	contacts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).Return(nil)
	notifier.On("IsConfigured").Return(true)
	notifier.On("SendBusinessCard", mock.Anything, "matti@example.com", mock.MatchedBy(func(c *domain.BusinessCard) bool {
		return c.Name == "Tradenomi Testinen"
	})).Return(nil)

	contact, err := usecase.NewContactUsecase(contacts, profiles, notifier).AddContact(context.Background(), 1, 2, validCard())

	require.NoError(t, err)
	assert.Equal(t, int64(1), contact.FromUserID)
	assert.Equal(t, int64(2), contact.ToUserID)
	notifier.AssertExpectations(t)
}

func TestAddContactRespectsOptOut(t *testing.T) {
	contacts := new(MockContactRepo)
	profiles := new(MockProfileRepo)
	notifier := new(MockNotifier)

	profiles.On("GetByID", mock.Anything, int64(2)).Return(&domain.Profile{ID: 2, Settings: domain.Settings{
		EmailsForBusinessCards: boolPtr(false),
		EmailAddress:           strPtr("matti@example.com"),
	}}, nil)
	contacts.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := usecase.NewContactUsecase(contacts, profiles, notifier).AddContact(context.Background(), 1, 2, validCard())

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "SendBusinessCard", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddContactErrors(t *testing.T) {
	contacts := new(MockContactRepo)
	profiles := new(MockProfileRepo)
	notifier := new(MockNotifier)

	profiles.On("GetByID", mock.Anything, int64(2)).Return(&domain.Profile{ID: 2, Settings: domain.Settings{EmailAddress: strPtr("matti@example.com")}}, nil)
	profiles.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)
	contacts.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("IsConfigured").Return(true)
	uc := usecase.NewContactUsecase(contacts, profiles, notifier)
	ctx := context.Background()

	_, err := uc.AddContact(ctx, 1, 1, validCard())
	assertCode(t, err, http.StatusBadRequest)

	_, err = uc.AddContact(ctx, 1, 9, validCard())
	assertCode(t, err, http.StatusNotFound)

	bad := validCard()
	bad.Email = "ei-osoite"
	_, err = uc.AddContact(ctx, 1, 2, bad)
	assertCode(t, err, http.StatusBadRequest)
	contacts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddContactMailFailureKeepsContact(t *testing.T) {
	contacts := new(MockContactRepo)
	profiles := new(MockProfileRepo)
	notifier := new(MockNotifier)

	profiles.On("GetByID", mock.Anything, int64(2)).Return(&domain.Profile{ID: 2, Settings: domain.Settings{EmailAddress: strPtr("matti@example.com")}}, nil)
	contacts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("IsConfigured").Return(true)
	notifier.On("SendBusinessCard", mock.Anything, "matti@example.com", mock.Anything).Return(errors.New("smtp down")).Once()

	contact, err := usecase.NewContactUsecase(contacts, profiles, notifier).AddContact(context.Background(), 1, 2, validCard())

	require.NoError(t, err)
	assert.Equal(t, int64(2), contact.ToUserID)
	contacts.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
