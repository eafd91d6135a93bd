package auth

import (
	"strings"

	"github.com/Uilsaun/GitResaHotel/internal/model"
	"github.com/Uilsaun/GitResaHotel/internal/validator"
)

// NormalizeEmail lowercases and trims an email before any comparison or
// storage. Uniqueness is enforced on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) error {
	switch {
	case email == "":
		return model.E(model.CodeInvalidEmail, "email is required")
	case !validator.Matches(email, validator.RgxEmail):
		return model.E(model.CodeInvalidEmail, "invalid email format")
	case !validator.MaxRunes(email, 255):
		return model.E(model.CodeInvalidEmail, "email too long")
	}
	return nil
}

func ValidatePassword(password string) error {
	switch {
	case password == "":
		return model.E(model.CodeInvalidPassword, "password is required")
	case len(password) < 8:
		return model.E(model.CodeWeakPassword, "password must contain at least 8 characters")
	case len(password) > 128:
		return model.E(model.CodeInvalidPassword, "password too long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return model.E(model.CodeWeakPassword,
			"password must contain at least an uppercase letter, a lowercase letter and a digit")
	}

	return nil
}

// RegisterData carries the registration fields before validation.
type RegisterData struct {
	Nom             string
	Email           string
	Telephone       string
	NombrePersonnes int
	Password        string
}

// ValidateClientData aggregates every field failure into one
// VALIDATION_ERROR, collect-all rather than fail-fast.
func ValidateClientData(data RegisterData, requirePassword bool) error {
	var v validator.Validator

	if err := ValidateEmail(data.Email); err != nil {
		v.AddError(err.Error())
	}

	v.Check(validator.NotBlank(data.Nom), "name is required")
	if validator.NotBlank(data.Nom) {
		v.Check(validator.MaxRunes(data.Nom, 255), "name too long")
	}

	v.Check(validator.NotBlank(data.Telephone), "phone is required")
	if validator.NotBlank(data.Telephone) {
		v.Check(validator.MaxRunes(data.Telephone, 20), "phone number too long")
	}

	v.Check(data.NombrePersonnes != 0, "party size is required")
	if data.NombrePersonnes != 0 {
		v.Check(validator.Between(data.NombrePersonnes, 1, 20), "party size must be between 1 and 20")
	}

	if requirePassword {
		if err := ValidatePassword(data.Password); err != nil {
			v.AddError(err.Error())
		}
	}

	if v.HasErrors() {
		return model.E(model.CodeValidation, v.Joined())
	}

	return nil
}
