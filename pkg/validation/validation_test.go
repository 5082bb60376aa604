package validation_test

import (
	"testing"

	"tradenomi-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	Name  string  `binding:"required,valid_name"`
	Phone string  `binding:"omitempty,valid_phone"`
	Note  *string `binding:"omitempty,no_emoji"`
}

func TestCustomRules(t *testing.T) {
	v := validation.New()
	emoji := "moi 🙂"
	plain := "moi"

	tests := []struct {
		name  string
		input card
		ok    bool
	}{
		{"finnish letters", card{Name: "Äijä Öhman-Ström"}, true},
		{"digits in name", card{Name: "R2D2"}, false},
		{"international phone", card{Name: "Aino", Phone: "+358 40 123 4567"}, true},
		{"short phone", card{Name: "Aino", Phone: "12345"}, false},
		{"emoji", card{Name: "Aino", Note: &emoji}, false},
		{"plain note", card{Name: "Aino", Note: &plain}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

type contactInfo struct {
	Email    *string `binding:"omitempty,email_or_empty"`
	LinkedIn *string `binding:"omitempty,url_or_empty"`
}

func TestOrEmptyRules(t *testing.T) {
	v := validation.New()
	empty := ""
	email := "aino@example.com"
	link := "https://www.linkedin.com/in/aino"
	bad := "ei osoite"

	assert.NoError(t, v.Struct(contactInfo{}))
	assert.NoError(t, v.Struct(contactInfo{Email: &empty, LinkedIn: &empty}))
	assert.NoError(t, v.Struct(contactInfo{Email: &email, LinkedIn: &link}))

	err := v.Struct(contactInfo{Email: &bad, LinkedIn: &bad})
	require.Error(t, err)
	assert.Equal(t, []string{
		"Sähköposti: virheellinen sähköpostiosoite",
		"LinkedIn-osoite: virheellinen osoite",
	}, validation.FormatValidationErrors(err))
}

func TestFormatValidationErrors(t *testing.T) {
	err := validation.New().Struct(card{})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Equal(t, []string{"Nimi: pakollinen tieto"}, messages)
}
