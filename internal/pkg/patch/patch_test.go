//go:build unit

package patch_test

import (
	"testing"

	"shareit/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := false
	assert.False(t, patch.Coalesce(&v, true))
	assert.True(t, patch.Coalesce[bool](nil, true))
}

func TestCoalesceText(t *testing.T) {
	name := "Drill"
	blank := "   "
	assert.Equal(t, "Drill", patch.CoalesceText(&name, "Saw"))
	assert.Equal(t, "Saw", patch.CoalesceText(&blank, "Saw"))
	assert.Equal(t, "Saw", patch.CoalesceText(nil, "Saw"))
}
