package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		err  error
		want Category
	}{
		{nil, CategoryNone},
		{errors.New("boom"), CategoryNone},
		{fmt.Errorf("%w: bad", ErrValidation), CategoryValidation},
		{fmt.Errorf("%w: id 4", ErrAlreadyExists), CategoryAlreadyExists},
		{fmt.Errorf("%w: id 4", ErrNotFound), CategoryNotFound},
		{fmt.Errorf("%w: leg 1", ErrLegFailure), CategoryLegFailure},
		{fmt.Errorf("wrapped: %w", ErrTransientConflict), CategoryConflict},
		{fmt.Errorf("%w after 3 attempts", ErrRetryLimit), CategoryRetryLimit},
		{fmt.Errorf("%w: dial tcp", ErrStoreUnavailable), CategoryStoreUnavailable},
		{fmt.Errorf("begin: %w", context.Canceled), CategoryCanceled},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(tt.err), "error: %v", tt.err)
	}

	assert.True(t, IsConflict(fmt.Errorf("x: %w", ErrTransientConflict)))
	assert.False(t, IsConflict(ErrLegFailure))
}
