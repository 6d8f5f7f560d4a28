package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationUnwrapsToKind(t *testing.T) {
	err := Validation("name is required")
	assert.EqualError(t, err, "name is required")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestWrappedKindsStillMatch(t *testing.T) {
	err := fmt.Errorf("%w: product 7", ErrNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "not found: product 7", err.Error())
}
