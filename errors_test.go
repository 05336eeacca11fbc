package stash_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/stash"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := stash.Errorf(stash.ENOTFOUND, "no match for selector %q", ".missing")

	assert.Equal(t, stash.ENOTFOUND, stash.ErrorCode(err))
	assert.Equal(t, "no match for selector \".missing\"", stash.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stash.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, stash.EINTERNAL, stash.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stash.ErrorMessage(nil))
}
