package domain

import "context"

// Notifier sends the transactional emails of the marketplace.
type Notifier interface {
	IsConfigured() bool
	NotifyNewAd(ctx context.Context, to string, ad *Ad, authorName string) error
	NotifyAnswer(ctx context.Context, to string, ad *Ad, answer *Answer, answererName string) error
	SendBusinessCard(ctx context.Context, to string, card *BusinessCard) error
}
