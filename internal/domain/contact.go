package domain

import (
	"context"
	"time"
)

// BusinessCard is what a user sends to another user when making contact.
type BusinessCard struct {
	Name    string `json:"name" binding:"required,max=120,valid_name"`
	Title   string `json:"title" binding:"omitempty,max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,valid_phone"`
	Message string `json:"message" binding:"omitempty,max=2000"`
}

type Contact struct {
	ID         int64        `json:"id"`
	FromUserID int64        `json:"from_user_id"`
	ToUserID   int64        `json:"to_user_id"`
	Card       BusinessCard `json:"card"`
	CreatedAt  time.Time    `json:"created_at"`
}

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
}

// ContactUsecase defines business card delivery between users
type ContactUsecase interface {
	AddContact(ctx context.Context, fromUserID, toUserID int64, card *BusinessCard) (*Contact, error)
}
