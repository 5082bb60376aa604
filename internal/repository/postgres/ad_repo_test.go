package postgres_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/internal/repository/postgres"
	"tradenomi-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdLifecycle(t *testing.T) {
	pool := resetStore(t)
	repo := postgres.NewAdRepository(pool, 5*time.Second)
	ctx := context.Background()

	first := &domain.Ad{UserID: 1, Data: domain.AdData{Heading: "Kirjanpitäjä", Description: "Etsin tekijää"}, CreatedAt: day1}
	second := &domain.Ad{UserID: 2, Data: domain.AdData{Heading: "Myyjä", Description: "Kesätöihin"}, CreatedAt: day2}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotZero(t, first.ID)

	answer := &domain.Answer{AdID: first.ID, UserID: 2, Message: "Kiinnostaa", CreatedAt: aDate}
	require.NoError(t, repo.CreateAnswer(ctx, answer))
	assert.NotZero(t, answer.ID)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kirjanpitäjä", got.Data.Heading)
	assert.Equal(t, "Tradenomi Testinen", got.AuthorName)
	assert.Equal(t, "Controller", got.AuthorTitle)
	assert.Equal(t, int64(1), got.AnswerCount)

	list, total, err := repo.Fetch(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	mine, err := repo.FetchByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactCreate(t *testing.T) {
	repo := postgres.NewContactRepository(resetStore(t), 5*time.Second)
	ctx := context.Background()

	c := &domain.Contact{FromUserID: 1, ToUserID: 2, Card: domain.BusinessCard{Name: "Tradenomi Testinen", Email: "testinen@example.com"}, CreatedAt: aDate}
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	err := repo.Create(ctx, &domain.Contact{FromUserID: 1, ToUserID: 77, Card: c.Card, CreatedAt: aDate})
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}
