package domain

import (
	"context"
	"time"
)

// AdData holds the known keys of ads.data.
type AdData struct {
	Heading     string `json:"heading" binding:"required,max=200,no_emoji"`
	Description string `json:"description" binding:"required,max=8000"`
	Domain      string `json:"domain,omitempty" binding:"omitempty,max=200"`
	Title       string `json:"title,omitempty" binding:"omitempty,max=200"`
	Location    string `json:"location,omitempty" binding:"omitempty,max=120"`
}

type Ad struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Data      AdData    `json:"data"`
	CreatedAt time.Time `json:"created_at"`
}

// AdWithAuthor is an ad joined with the display fields of its author.
type AdWithAuthor struct {
	Ad
	AuthorName  string `json:"author_name"`
	AuthorTitle string `json:"author_title"`
	AnswerCount int64  `json:"answer_count"`
}

type Answer struct {
	ID        int64     `json:"id"`
	AdID      int64     `json:"ad_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type AdRepository interface {
	Create(ctx context.Context, ad *Ad) error
	GetByID(ctx context.Context, id int64) (*AdWithAuthor, error)
	Fetch(ctx context.Context, limit, offset int) ([]AdWithAuthor, int64, error)
	FetchByUserID(ctx context.Context, userID int64) ([]AdWithAuthor, error)
	CreateAnswer(ctx context.Context, answer *Answer) error
}

type AdUsecase interface {
	CreateAd(ctx context.Context, userID int64, data *AdData) (*Ad, error)
	GetAd(ctx context.Context, id int64) (*AdWithAuthor, error)
	ListAds(ctx context.Context, page, pageSize int) ([]AdWithAuthor, int64, error)
	ListAdsForUser(ctx context.Context, userID int64) ([]AdWithAuthor, error)
	CreateAnswer(ctx context.Context, userID, adID int64, message string) (*Answer, error)
}
