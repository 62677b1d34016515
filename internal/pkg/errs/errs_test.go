//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "wrapped not found", err: errs.Wrap(errs.ErrNotFound, "booking not found"), want: errs.ErrNotFound},
		{name: "double wrapped invalid state", err: errs.Wrap(errs.Wrap(errs.ErrInvalidState, "already approved"), "decide"), want: errs.ErrInvalidState},
		{name: "marked conflict", err: errs.Mark(errors.New("dup"), errs.ErrConflict), want: errs.ErrConflict},
		{name: "plain error", err: errors.New("boom"), want: nil},
		{name: "nil", err: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.Kind(tt.err))
		})
	}
}

func TestWrap_StdlibIs(t *testing.T) {
	err := errs.Wrap(errs.ErrUnsupportedFilter, "Unknown state: UNSUPPORTED_STATUS")

	assert.True(t, errors.Is(err, errs.ErrUnsupportedFilter))
	assert.Contains(t, err.Error(), "Unknown state: UNSUPPORTED_STATUS")
	assert.Nil(t, errs.Wrap(nil, "ignored"))
}

func TestMark_NilErrReturnsMarker(t *testing.T) {
	assert.Equal(t, errs.ErrConflict, errs.Mark(nil, errs.ErrConflict))
}
