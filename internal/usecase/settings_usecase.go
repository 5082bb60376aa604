package usecase

import (
	"context"
	"encoding/json"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type settingsUsecase struct {
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

func NewSettingsUsecase(profileRepo domain.ProfileRepository) domain.SettingsUsecase {
	return &settingsUsecase{
		profileRepo: profileRepo,
		validate:    validation.New(),
	}
}

func (u *settingsUsecase) GetSettings(ctx context.Context, userID int64) (*domain.ResolvedSettings, error) {
	if userID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	profile, err := u.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, repoError(err, "User not found")
	}
	resolved := profile.Settings.Resolve()
	return &resolved, nil
}

// UpdateSettings overwrites the keys present in patch and keeps the rest.
func (u *settingsUsecase) UpdateSettings(ctx context.Context, userID int64, patch *domain.Settings) (*domain.ResolvedSettings, error) {
	if userID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if err := u.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	profile, err := u.profileRepo.MergeSettings(ctx, userID, body)
	if err != nil {
		return nil, repoError(err, "User not found")
	}
	resolved := profile.Settings.Resolve()
	return &resolved, nil
}
