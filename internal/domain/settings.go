package domain

import "context"

// Keys of users.settings
const (
	SettingEmailsForAnswers       = "emails_for_answers"
	SettingEmailsForBusinessCards = "emails_for_businesscards"
	SettingEmailsForNewAds        = "emails_for_new_ads"
	SettingEmailAddress           = "email_address"
)

// Settings mirrors the users.settings document. Nil means the user never
// chose a value. An empty EmailAddress is stored as is and stops all mail.
type Settings struct {
	EmailsForAnswers       *bool   `json:"emails_for_answers,omitempty"`
	EmailsForBusinessCards *bool   `json:"emails_for_businesscards,omitempty"`
	EmailsForNewAds        *bool   `json:"emails_for_new_ads,omitempty"`
	EmailAddress           *string `json:"email_address,omitempty" binding:"omitempty,email_or_empty"`
}

// ResolvedSettings is Settings with defaults applied: notifications are on
// unless turned off, and the address is empty unless set.
type ResolvedSettings struct {
	EmailsForAnswers       bool   `json:"emails_for_answers"`
	EmailsForBusinessCards bool   `json:"emails_for_businesscards"`
	EmailsForNewAds        bool   `json:"emails_for_new_ads"`
	EmailAddress           string `json:"email_address"`
}

func (s Settings) Resolve() ResolvedSettings {
	trueFallback := func(v *bool) bool {
		if v == nil {
			return true
		}
		return *v
	}
	r := ResolvedSettings{
		EmailsForAnswers:       trueFallback(s.EmailsForAnswers),
		EmailsForBusinessCards: trueFallback(s.EmailsForBusinessCards),
		EmailsForNewAds:        trueFallback(s.EmailsForNewAds),
	}
	if s.EmailAddress != nil {
		r.EmailAddress = *s.EmailAddress
	}
	return r
}

type SettingsUsecase interface {
	GetSettings(ctx context.Context, userID int64) (*ResolvedSettings, error)
	UpdateSettings(ctx context.Context, userID int64, patch *Settings) (*ResolvedSettings, error)
}
