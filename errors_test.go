package coursetoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pbialon/coursetoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := coursetoc.Errorf(coursetoc.ENOTFOUND, "the file %q does not exist", "input.html")

	assert.Equal(t, coursetoc.ENOTFOUND, coursetoc.ErrorCode(err))
	assert.Equal(t, "the file \"input.html\" does not exist", coursetoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, coursetoc.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("load: %w", coursetoc.Errorf(coursetoc.ENOTFOUND, "missing"))

	assert.Equal(t, coursetoc.ENOTFOUND, coursetoc.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, coursetoc.EINTERNAL, coursetoc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, coursetoc.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", coursetoc.ErrorMessage(errors.New("boom")))
}
