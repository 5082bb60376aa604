package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/logger"
	"tradenomi-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

const maxAnswerLength = 4000

type adUsecase struct {
	adRepo          domain.AdRepository
	profileRepo     domain.ProfileRepository
	notifier        domain.Notifier
	mailConcurrency int
	validate        *validator.Validate
	now             func() time.Time
}

func NewAdUsecase(adRepo domain.AdRepository, profileRepo domain.ProfileRepository, notifier domain.Notifier, mailConcurrency int) domain.AdUsecase {
	if mailConcurrency < 1 {
		mailConcurrency = 1
	}
	return &adUsecase{
		adRepo:          adRepo,
		profileRepo:     profileRepo,
		notifier:        notifier,
		mailConcurrency: mailConcurrency,
		validate:        validation.New(),
		now:             time.Now,
	}
}

// CreateAd stores the ad and emails every subscriber except the author.
// Mail failures are logged; the ad is created regardless.
func (u *adUsecase) CreateAd(ctx context.Context, userID int64, data *domain.AdData) (*domain.Ad, error) {
	if userID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if err := u.validate.Struct(data); err != nil {
		return nil, validationError(err)
	}

	ad := &domain.Ad{
		UserID:    userID,
		Data:      *data,
		CreatedAt: u.now(),
	}
	if err := u.adRepo.Create(ctx, ad); err != nil {
		return nil, repoError(err, "User not found")
	}

	u.notifyNewAd(ctx, ad)
	return ad, nil
}

func (u *adUsecase) notifyNewAd(ctx context.Context, ad *domain.Ad) {
	if !u.notifier.IsConfigured() {
		return
	}

	subscribers, err := u.profileRepo.FetchSubscribers(ctx, domain.SettingEmailsForNewAds)
	if err != nil {
		logger.Log.Error("Failed to load new ad subscribers", "ad_id", ad.ID, "error", err)
		return
	}

	var authorName string
	for _, s := range subscribers {
		if s.ID == ad.UserID {
			authorName = s.Data.Name
		}
	}
	if authorName == "" {
		if author, err := u.profileRepo.GetByID(ctx, ad.UserID); err == nil {
			authorName = author.Data.Name
		}
	}

	var g errgroup.Group
	g.SetLimit(u.mailConcurrency)
	for _, s := range subscribers {
		if s.ID == ad.UserID {
			continue
		}
		to := s.Settings.Resolve().EmailAddress
		recipientID := s.ID
		g.Go(func() error {
			if err := u.notifier.NotifyNewAd(ctx, to, ad, authorName); err != nil {
				logger.Log.Warn("New ad notification failed", "ad_id", ad.ID, "user_id", recipientID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (u *adUsecase) GetAd(ctx context.Context, id int64) (*domain.AdWithAuthor, error) {
	ad, err := u.adRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Ad not found")
	}
	return ad, nil
}

func (u *adUsecase) ListAds(ctx context.Context, page, pageSize int) ([]domain.AdWithAuthor, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	offset := (page - 1) * pageSize

	ads, total, err := u.adRepo.Fetch(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return ads, total, nil
}

func (u *adUsecase) ListAdsForUser(ctx context.Context, userID int64) ([]domain.AdWithAuthor, error) {
	ads, err := u.adRepo.FetchByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return ads, nil
}

// CreateAnswer stores an answer and emails the ad's author if they want
// answer notifications.
func (u *adUsecase) CreateAnswer(ctx context.Context, userID, adID int64, message string) (*domain.Answer, error) {
	if userID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperror.BadRequest("Viesti: pakollinen tieto")
	}
	if utf8.RuneCountInString(message) > maxAnswerLength {
		return nil, apperror.BadRequest("Viesti: liian pitkä")
	}

	ad, err := u.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, repoError(err, "Ad not found")
	}
	if ad.UserID == userID {
		return nil, apperror.BadRequest("You cannot answer your own ad")
	}

	answer := &domain.Answer{
		AdID:      adID,
		UserID:    userID,
		Message:   message,
		CreatedAt: u.now(),
	}
	if err := u.adRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, repoError(err, "Ad not found")
	}

	u.notifyAnswer(ctx, &ad.Ad, answer)
	return answer, nil
}

func (u *adUsecase) notifyAnswer(ctx context.Context, ad *domain.Ad, answer *domain.Answer) {
	if !u.notifier.IsConfigured() {
		return
	}

	people, err := u.profileRepo.FetchByIDs(ctx, []int64{ad.UserID, answer.UserID})
	if err != nil {
		logger.Log.Error("Failed to load answer participants", "ad_id", ad.ID, "error", err)
		return
	}

	var owner *domain.Profile
	var answererName string
	for i := range people {
		switch people[i].ID {
		case ad.UserID:
			owner = &people[i]
		case answer.UserID:
			answererName = people[i].Data.Name
		}
	}
	if owner == nil {
		return
	}

	settings := owner.Settings.Resolve()
	if !settings.EmailsForAnswers || settings.EmailAddress == "" {
		return
	}
	if err := u.notifier.NotifyAnswer(ctx, settings.EmailAddress, ad, answer, answererName); err != nil {
		logger.Log.Warn("Answer notification failed", "ad_id", ad.ID, "user_id", owner.ID, "error", err)
	}
}
