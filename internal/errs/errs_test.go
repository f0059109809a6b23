package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Spok95/stone-inventory/internal/errs"
)

func TestIsMatchesByKind(t *testing.T) {
	t.Parallel()

	err := errs.Invalid("Color is empty")
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	assert.False(t, errors.Is(err, errs.ErrNotFound))
	assert.Equal(t, "Color is empty", err.Error())
}

func TestUnknownStatusIsInvalidInput(t *testing.T) {
	t.Parallel()

	err := errs.UnknownStatus("bogus")
	assert.True(t, errors.Is(err, errs.ErrUnknownStatus))
	assert.True(t, errors.Is(err, errs.ErrInvalidInput))
	assert.False(t, errors.Is(errs.Invalid("x"), errs.ErrUnknownStatus))
	assert.Equal(t, "unknown status: bogus", err.Error())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("update slab: %w", errs.NotFound("Slab", "42"))
	assert.Equal(t, errs.KindNotFound, errs.KindOf(wrapped))
	assert.Equal(t, errs.KindAlreadyExists, errs.KindOf(errs.AlreadyExists("Sample Slab", "type & color", "Quartz,White")))
	assert.Equal(t, errs.KindInternal, errs.KindOf(errors.New("connection reset")))
	assert.Equal(t, errs.KindInternal, errs.KindOf(nil))
}
