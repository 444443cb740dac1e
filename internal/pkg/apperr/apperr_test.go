package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("Guest not found.")))
	assert.Equal(t, KindConflict, KindOf(Conflict("slot taken")))
	assert.Equal(t, KindInvalidRequest, KindOf(InvalidRequest("bad input")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestKindOf_WrappedError(t *testing.T) {
	err := fmt.Errorf("booking: %w", NotFound("Schedule not found."))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("saving reservation", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "saving reservation")
	assert.Contains(t, err.Error(), "connection reset")
}
