package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// DecodeProfileData reads the known keys of a users.data document. The
// document is schema-less, so a key holding an unexpected JSON type is left
// at its zero value and returned in mistyped instead of failing the row.
// Only a document that is not a JSON object is an error.
func DecodeProfileData(raw []byte) (data ProfileData, mistyped []string, err error) {
	mistyped, err = decodeKnownKeys(raw, map[string]any{
		"name":        &data.Name,
		"title":       &data.Title,
		"domain":      &data.Domain,
		"location":    &data.Location,
		"description": &data.Description,
		"email":       &data.Email,
		"phone":       &data.Phone,
		"linkedin":    &data.LinkedIn,
		"image":       &data.Image,
		"skills":      &data.Skills,
		"inactive":    &data.Inactive,
	})
	return data, mistyped, err
}

// DecodeSettings is DecodeProfileData for users.settings.
func DecodeSettings(raw []byte) (settings Settings, mistyped []string, err error) {
	mistyped, err = decodeKnownKeys(raw, map[string]any{
		SettingEmailsForAnswers:       &settings.EmailsForAnswers,
		SettingEmailsForBusinessCards: &settings.EmailsForBusinessCards,
		SettingEmailsForNewAds:        &settings.EmailsForNewAds,
		SettingEmailAddress:           &settings.EmailAddress,
	})
	return settings, mistyped, err
}

func decodeKnownKeys(raw []byte, targets map[string]any) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}

	var mistyped []string
	for key, value := range doc {
		target, known := targets[key]
		if !known {
			continue
		}
		if err := json.Unmarshal(value, target); err != nil {
			resetTarget(target)
			mistyped = append(mistyped, key)
		}
	}
	sort.Strings(mistyped)
	return mistyped, nil
}

// resetTarget zeroes a target after a failed unmarshal, which may have
// written part of an array or object before giving up.
func resetTarget(target any) {
	switch t := target.(type) {
	case *string:
		*t = ""
	case *bool:
		*t = false
	case *[]string:
		*t = nil
	case **bool:
		*t = nil
	case **string:
		*t = nil
	}
}
