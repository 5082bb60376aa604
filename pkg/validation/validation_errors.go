package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing Finnish labels
var FieldLabels = map[string]string{
	// Profile fields
	"Name":        "Nimi",
	"Title":       "Tehtävänimike",
	"Domain":      "Toimiala",
	"Location":    "Paikkakunta",
	"Description": "Kuvaus",
	"Email":       "Sähköposti",
	"Phone":       "Puhelinnumero",
	"LinkedIn":    "LinkedIn-osoite",
	"Skills":      "Osaaminen",

	// Settings fields
	"EmailAddress": "Sähköpostiosoite",

	// Ad fields
	"Heading": "Otsikko",
	"Message": "Viesti",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: pakollinen tieto", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: vähintään %s merkkiä", label, param)
		}
		return fmt.Sprintf("%s: vähintään %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: enintään %s merkkiä", label, param)
		}
		return fmt.Sprintf("%s: enintään %s", label, param)

	case "email", "email_or_empty":
		return fmt.Sprintf("%s: virheellinen sähköpostiosoite", label)

	case "url", "url_or_empty":
		return fmt.Sprintf("%s: virheellinen osoite", label)

	case "valid_name":
		return fmt.Sprintf("%s: vain kirjaimia, välilyöntejä ja tavallisia välimerkkejä", label)

	case "valid_phone":
		return fmt.Sprintf("%s: virheellinen puhelinnumero (7-15 numeroa, alussa voi olla +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: ei saa sisältää emojeja tai erikoissymboleita", label)

	default:
		return fmt.Sprintf("%s: virheellinen arvo (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-facing label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
