//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	duration, err := h.cfg.AccessTTL()
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock()).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// signs the token an hour in the past so it is already expired
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	clk := clock.NewMockClock(time.Now().Add(-time.Hour))
	token, err := jwt.NewService(h.cfg.Secret, time.Minute, clk).GenerateToken(userID)
	require.NoError(t, err)
	return token
}
