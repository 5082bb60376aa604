package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/collation"
	"tradenomi-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	profileRepo domain.ProfileRepository
	sorter      *collation.Sorter
	validate    *validator.Validate
}

func NewProfileUsecase(profileRepo domain.ProfileRepository, sorter *collation.Sorter) domain.ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		sorter:      sorter,
		validate:    validation.New(),
	}
}

// ListProfiles filters, sorts, then applies offset and limit. Recent
// ordering is done by the store; alphabetic ordering needs locale-aware
// collation, so the filtered set is sorted here and paginated in memory.
func (u *profileUsecase) ListProfiles(ctx context.Context, params domain.ProfileListParams) ([]domain.Profile, error) {
	if params.Limit != nil && *params.Limit < 0 {
		return nil, apperror.BadRequest("limit must not be negative")
	}
	if params.Offset < 0 {
		return nil, apperror.BadRequest("offset must not be negative")
	}
	if !params.Sort.Valid() {
		return nil, apperror.BadRequest("unknown sort order: " + string(params.Sort))
	}
	if params.Limit != nil && *params.Limit == 0 {
		return []domain.Profile{}, nil
	}

	if !params.Sort.Alphabetic() {
		profiles, err := u.profileRepo.Fetch(ctx, params.Filter(), params.Limit, params.Offset)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return nonNil(profiles), nil
	}

	profiles, err := u.profileRepo.Fetch(ctx, params.Filter(), nil, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	collation.SortFunc(u.sorter, profiles,
		func(p domain.Profile) string { return p.Data.Name },
		func(a, b domain.Profile) bool { return a.ID < b.ID },
		params.Sort == domain.SortAlphaDesc,
	)
	return paginate(profiles, params.Limit, params.Offset), nil
}

func (u *profileUsecase) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(err, "Profile not found")
	}
	return profile, nil
}

// UpdateOwnProfile merges the present fields of patch into the stored
// profile data; absent fields keep their stored value.
func (u *profileUsecase) UpdateOwnProfile(ctx context.Context, userID int64, patch *domain.ProfileDataPatch) (*domain.Profile, error) {
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
	profile, err := u.profileRepo.MergeData(ctx, userID, body)
	if err != nil {
		return nil, repoError(err, "Profile not found")
	}
	return profile, nil
}

// ConsentToProfile makes the user's profile visible in listings.
func (u *profileUsecase) ConsentToProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	if userID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	profile, err := u.profileRepo.MergeData(ctx, userID, []byte(`{"inactive": false}`))
	if err != nil {
		return nil, repoError(err, "Profile not found")
	}
	return profile, nil
}

func paginate(profiles []domain.Profile, limit *int, offset int) []domain.Profile {
	if offset >= len(profiles) {
		return []domain.Profile{}
	}
	profiles = profiles[offset:]
	if limit != nil && *limit < len(profiles) {
		profiles = profiles[:*limit]
	}
	return profiles
}

func nonNil(profiles []domain.Profile) []domain.Profile {
	if profiles == nil {
		return []domain.Profile{}
	}
	return profiles
}

// repoError maps a repository error: misses become 404, AppErrors pass
// through, anything else is a data-access failure.
func repoError(err error, notFound string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(notFound)
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperror.Internal(err)
}
