package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"shareit/internal/pkg/errs"
)

const MaxNameLength = 255

var (
	ErrInvalidEmail = errs.Wrap(errs.ErrValidation, "invalid email format")
	ErrInvalidName  = errs.Wrap(errs.ErrValidation, "name must be 1-255 characters")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// ReconstructEmail and ReconstructName skip validation for values read back from storage.
func ReconstructEmail(s string) Email { return Email{value: s} }

func ReconstructName(s string) Name { return Name{value: s} }
