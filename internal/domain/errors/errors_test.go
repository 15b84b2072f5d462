package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_BecauseKeepsBothIdentities(t *testing.T) {
	cause := errors.New("FOREIGN KEY constraint failed")

	err := errors.Wrap(ErrConstraintViolation.Because(cause), "insert bill")

	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrPartialAggregateWrite)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
}

func TestBaseError_NestedCauses(t *testing.T) {
	constraint := ErrConstraintViolation.Because(errors.New("UNIQUE constraint failed"))

	err := ErrPartialAggregateWrite.Because(constraint)

	assert.ErrorIs(t, err, ErrPartialAggregateWrite)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestBaseError_BecauseNil(t *testing.T) {
	assert.Same(t, ErrValidationFailed, ErrValidationFailed.Because(nil))
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("name is required")

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "input validation failed: name is required", err.Error())
}

func TestDecodeError(t *testing.T) {
	err := errors.Wrap(NewDecodeError("shareholders", "share_value_type", "fraction", "unknown discriminator"), "load shareholders")

	assert.True(t, IsDecodeError(err))
	assert.False(t, IsDecodeError(ErrPropertyNotFound))

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "share_value_type", decodeErr.Column)
	assert.Equal(t, "DECODE_FAILED", decodeErr.ErrorCode())
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("disk I/O error")

	err := NewDatabaseExecuteError(cause, "insert property")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "insert property", err.Details())
}
