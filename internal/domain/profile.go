package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// ProfileSort selects the ordering of a profile listing.
type ProfileSort string

const (
	SortRecent    ProfileSort = "recent"
	SortAlphaAsc  ProfileSort = "alphaAsc"
	SortAlphaDesc ProfileSort = "alphaDesc"
)

// Valid reports whether s is a known sort mode. The empty value means recent.
func (s ProfileSort) Valid() bool {
	switch s {
	case "", SortRecent, SortAlphaAsc, SortAlphaDesc:
		return true
	}
	return false
}

func (s ProfileSort) Alphabetic() bool {
	return s == SortAlphaAsc || s == SortAlphaDesc
}

// ProfileData holds the known keys of the users.data document. Keys missing
// from the document stay at their zero value.
type ProfileData struct {
	Name        string   `json:"name,omitempty"`
	Title       string   `json:"title,omitempty"`
	Domain      string   `json:"domain,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Email       string   `json:"email,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	LinkedIn    string   `json:"linkedin,omitempty"`
	Image       string   `json:"image,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Inactive    bool     `json:"inactive,omitempty"`
}

type Profile struct {
	ID         int64       `json:"id"`
	RemoteID   int64       `json:"remote_id"`
	Data       ProfileData `json:"data"`
	Settings   Settings    `json:"-"`
	ModifiedAt time.Time   `json:"modified_at"`
}

// ProfileFilter narrows a listing. Empty fields do not filter.
type ProfileFilter struct {
	IncludeInactive bool
	Categories      []string
	Title           string
	Municipality    string
}

// ProfileListParams are the inputs of a profile listing. A nil Limit means
// no limit; a zero Limit yields an empty result.
type ProfileListParams struct {
	IncludeInactive bool
	Limit           *int
	Offset          int
	Categories      []string
	Title           string
	Municipality    string
	Sort            ProfileSort
}

func (p ProfileListParams) Filter() ProfileFilter {
	return ProfileFilter{
		IncludeInactive: p.IncludeInactive,
		Categories:      p.Categories,
		Title:           p.Title,
		Municipality:    p.Municipality,
	}
}

// ProfileDataPatch is a partial update of users.data. Nil fields are left
// untouched in the stored document; a pointer to "" clears the key's value.
type ProfileDataPatch struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=120,valid_name,no_emoji"`
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Domain      *string  `json:"domain,omitempty" binding:"omitempty,max=200"`
	Location    *string  `json:"location,omitempty" binding:"omitempty,max=120"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=4000"`
	Email       *string  `json:"email,omitempty" binding:"omitempty,email_or_empty"`
	Phone       *string  `json:"phone,omitempty" binding:"omitempty,valid_phone"`
	LinkedIn    *string  `json:"linkedin,omitempty" binding:"omitempty,url_or_empty"`
	Skills      []string `json:"skills,omitempty" binding:"omitempty,max=30,dive,max=80"`
	Inactive    *bool    `json:"inactive,omitempty"`
}

type ProfileRepository interface {
	// Fetch returns filtered profiles ordered by modified_at descending,
	// ties broken by id. A nil limit returns every matching row.
	Fetch(ctx context.Context, filter ProfileFilter, limit *int, offset int) ([]Profile, error)
	GetByID(ctx context.Context, id int64) (*Profile, error)
	// MergeData shallow-merges patch (a JSON object) into users.data and
	// bumps modified_at.
	MergeData(ctx context.Context, id int64, patch []byte) (*Profile, error)
	// MergeSettings shallow-merges patch into users.settings.
	MergeSettings(ctx context.Context, id int64, patch []byte) (*Profile, error)
	FetchByIDs(ctx context.Context, ids []int64) ([]Profile, error)
	// FetchSubscribers returns users whose given notification toggle is not
	// explicitly disabled and who have an email address.
	FetchSubscribers(ctx context.Context, setting string) ([]Profile, error)
}

type ProfileUsecase interface {
	ListProfiles(ctx context.Context, params ProfileListParams) ([]Profile, error)
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	UpdateOwnProfile(ctx context.Context, userID int64, patch *ProfileDataPatch) (*Profile, error)
	ConsentToProfile(ctx context.Context, userID int64) (*Profile, error)
}
