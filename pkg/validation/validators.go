package validation

import (
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Letters (any script), spaces and the punctuation found in names and
	// company names: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L} .'/&(),-]+$`)

	// E164-like phone: optional +, then 7-15 digits, spaces allowed between groups
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 ]{5,18}[0-9]$`)
)

// builtin checks single values against the stock rules for the *_or_empty tags.
var builtin = validator.New()

// New returns a validator that reads the same `binding` tags gin does, with
// the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("email_or_empty", EmailOrEmpty)
	_ = v.RegisterValidation("url_or_empty", URLOrEmpty)
}

func stringValue(fl validator.FieldLevel) string {
	field := fl.Field()
	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return ""
		}
		field = field.Elem()
	}
	if field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}

// ValidName rejects digits and most special symbols
func ValidName(fl validator.FieldLevel) bool {
	val := stringValue(fl)
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := stringValue(fl)
	if val == "" {
		return true
	}
	digits := 0
	for _, r := range val {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 7 && digits <= 15 && phoneRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range stringValue(fl) {
		// Supplementary planes are mostly emoji/symbols
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) { // Symbol, other / Symbol, modifier
			return false
		}
	}
	return true
}

// EmailOrEmpty accepts a valid address or "", which clears a stored one.
func EmailOrEmpty(fl validator.FieldLevel) bool {
	val := stringValue(fl)
	return val == "" || builtin.Var(val, "email") == nil
}

// URLOrEmpty accepts a valid URL or "".
func URLOrEmpty(fl validator.FieldLevel) bool {
	val := stringValue(fl)
	return val == "" || builtin.Var(val, "url") == nil
}
