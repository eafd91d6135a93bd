package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator collects failures instead of stopping at the first one, so an
// aggregate check can report every broken field at once.
type Validator struct {
	Errors      []string          `json:"errors,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

func (v Validator) HasErrors() bool {
	return len(v.Errors) != 0 || len(v.FieldErrors) != 0
}

func (v *Validator) AddError(message string) {
	if v.Errors == nil {
		v.Errors = []string{}
	}
	v.Errors = append(v.Errors, message)
}

func (v *Validator) AddFieldError(key, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = map[string]string{}
	}
	if _, exists := v.FieldErrors[key]; !exists {
		v.FieldErrors[key] = message
	}
}

func (v *Validator) Check(ok bool, message string) {
	if !ok {
		v.AddError(message)
	}
}

func (v *Validator) CheckField(ok bool, key, message string) {
	if !ok {
		v.AddFieldError(key, message)
	}
}

// Joined returns all collected messages as a single ", "-separated string.
func (v Validator) Joined() string {
	messages := make([]string, 0, len(v.Errors)+len(v.FieldErrors))
	messages = append(messages, v.Errors...)
	for _, msg := range v.FieldErrors {
		messages = append(messages, msg)
	}
	return strings.Join(messages, ", ")
}

var RgxEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

func Between[T int | float64](value, min, max T) bool {
	return value >= min && value <= max
}

func Matches(value string, rgx *regexp.Regexp) bool {
	return rgx.MatchString(value)
}
