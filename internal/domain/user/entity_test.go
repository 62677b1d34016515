//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/user"
	"shareit/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "valid", in: "owner@example.com", want: "owner@example.com"},
		{name: "normalized", in: "  Owner@Example.COM ", want: "owner@example.com"},
		{name: "empty", in: "", errIs: errs.ErrValidation},
		{name: "no at sign", in: "ownerexample.com", errIs: errs.ErrValidation},
		{name: "no domain", in: "owner@", errIs: errs.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := user.NewEmail(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	_, err := user.NewName("   ")
	assert.ErrorIs(t, err, user.ErrInvalidName)

	_, err = user.NewName(strings.Repeat("a", user.MaxNameLength+1))
	assert.ErrorIs(t, err, user.ErrInvalidName)

	n, err := user.NewName(" Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", n.Value())
}

func TestUser_Update(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	name, _ := user.NewName("Alice")
	email, _ := user.NewEmail("alice@example.com")
	u := user.NewUser(name, email, "hash", created)
	require.NotEqual(t, uuid.Nil, u.ID())

	t.Run("nil fields keep values", func(t *testing.T) {
		u.Update(nil, nil, later)
		assert.Equal(t, "Alice", u.Name().Value())
		assert.Equal(t, created, u.UpdatedAt())
	})

	t.Run("partial update", func(t *testing.T) {
		newEmail, _ := user.NewEmail("alice@work.example.com")
		u.Update(nil, &newEmail, later)

		got := []string{u.Name().Value(), u.Email().Value()}
		want := []string{"Alice", "alice@work.example.com"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("user fields mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, later, u.UpdatedAt())
		assert.Equal(t, "hash", u.PasswordHash())
	})
}
