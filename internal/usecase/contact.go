package usecase

import (
	"context"
	"strings"
	"time"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/logger"
	"tradenomi-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	contactRepo domain.ContactRepository
	profileRepo domain.ProfileRepository
	notifier    domain.Notifier
	validate    *validator.Validate
	now         func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(contactRepo domain.ContactRepository, profileRepo domain.ProfileRepository, notifier domain.Notifier) domain.ContactUsecase {
	return &contactUsecase{
		contactRepo: contactRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		validate:    validation.New(),
		now:         time.Now,
	}
}

// AddContact records the contact and mails the business card to the target
// when they accept business cards and have an address. Mail failures do not
// fail the request.
func (uc *contactUsecase) AddContact(ctx context.Context, fromUserID, toUserID int64, card *domain.BusinessCard) (*domain.Contact, error) {
	if fromUserID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if fromUserID == toUserID {
		return nil, apperror.BadRequest("You cannot contact yourself")
	}

	card.Name = strings.TrimSpace(card.Name)
	card.Title = strings.TrimSpace(card.Title)
	card.Email = strings.TrimSpace(card.Email)
	card.Phone = strings.TrimSpace(card.Phone)
	card.Message = strings.TrimSpace(card.Message)
	if err := uc.validate.Struct(card); err != nil {
		return nil, validationError(err)
	}

	target, err := uc.profileRepo.GetByID(ctx, toUserID)
	if err != nil {
		return nil, repoError(err, "User not found")
	}

	contact := &domain.Contact{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Card:       *card,
		CreatedAt:  uc.now(),
	}
	if err := uc.contactRepo.Create(ctx, contact); err != nil {
		return nil, repoError(err, "User not found")
	}

	settings := target.Settings.Resolve()
	if !settings.EmailsForBusinessCards || settings.EmailAddress == "" {
		return contact, nil
	}
	if !uc.notifier.IsConfigured() {
		logger.Log.Warn("Business card not mailed, email service is not configured", "contact_id", contact.ID)
		return contact, nil
	}
	// The contact is already recorded; a retry would duplicate it, so a
	// failed mail is logged and not returned.
	if err := uc.notifier.SendBusinessCard(ctx, settings.EmailAddress, card); err != nil {
		logger.Log.Warn("Business card mail failed", "contact_id", contact.ID, "to_user_id", toUserID, "error", err)
	}
	return contact, nil
}
