package password

import (
	"errors"

	"shareit/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const MinLength = 8

var (
	ErrTooShort        = errs.Wrap(errs.ErrValidation, "password must be at least 8 characters long")
	ErrMismatch        = errs.Wrap(errs.ErrUnauthorized, "password does not match")
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrInvalidPassword = errs.Wrap(errs.ErrValidation, "password is empty")
)

// Hasher wraps bcrypt with a configurable cost; tests use bcrypt.MinCost.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

func (h *Hasher) Compare(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
