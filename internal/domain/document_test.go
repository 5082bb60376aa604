package domain_test

import (
	"testing"

	"tradenomi-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeProfileDataSkipsMistypedKeys(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     domain.ProfileData
		mistyped []string
	}{
		{
			name: "well formed",
			raw:  `{"name":"Aino","skills":["Excel","SAP"],"inactive":true,"extra":{"x":1}}`,
			want: domain.ProfileData{Name: "Aino", Skills: []string{"Excel", "SAP"}, Inactive: true},
		},
		{
			name:     "skills as string",
			raw:      `{"name":"A","skills":"Excel"}`,
			want:     domain.ProfileData{Name: "A"},
			mistyped: []string{"skills"},
		},
		{
			name:     "inactive as string",
			raw:      `{"name":"A","inactive":"false"}`,
			want:     domain.ProfileData{Name: "A"},
			mistyped: []string{"inactive"},
		},
		{
			name:     "numeric phone and mixed skills",
			raw:      `{"name":"A","phone":358401234567,"skills":["Excel",3]}`,
			want:     domain.ProfileData{Name: "A"},
			mistyped: []string{"phone", "skills"},
		},
		{
			name: "null values",
			raw:  `{"name":null,"skills":null}`,
			want: domain.ProfileData{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mistyped, err := domain.DecodeProfileData([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
			assert.Equal(t, tt.mistyped, mistyped)
		})
	}
}

func TestDecodeProfileDataRejectsNonObject(t *testing.T) {
	_, _, err := domain.DecodeProfileData([]byte(`["not","an","object"]`))
	assert.Error(t, err)
}

func TestDecodeSettingsSkipsMistypedKeys(t *testing.T) {
	s, mistyped, err := domain.DecodeSettings([]byte(`{"emails_for_answers":"no","emails_for_new_ads":false,"email_address":42}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"email_address", "emails_for_answers"}, mistyped)
	assert.Nil(t, s.EmailsForAnswers)
	assert.Nil(t, s.EmailAddress)
	require.NotNil(t, s.EmailsForNewAds)
	assert.False(t, *s.EmailsForNewAds)
	assert.True(t, s.Resolve().EmailsForAnswers)
}
