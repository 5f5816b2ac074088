package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/listenupapp/nameflags/internal/errors"
)

func TestCode_HTTPStatus(t *testing.T) {
	tests := []struct {
		code errors.Code
		want int
	}{
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeAlreadyExists, http.StatusConflict},
		{errors.CodeValidation, http.StatusBadRequest},
		{errors.CodeRateLimited, http.StatusTooManyRequests},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.Code("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.HTTPStatus())
		})
	}
}

func TestError_IsMatchesCode(t *testing.T) {
	err := errors.NotFoundf("flag %s not found", "flag-x")

	assert.True(t, errors.Is(err, errors.ErrNotFound))
	assert.False(t, errors.Is(err, errors.ErrValidation))
	assert.Equal(t, "flag flag-x not found", err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := stderrors.New("input is empty")
	err := errors.Wrap(cause, errors.CodeValidation, "invalid name")

	assert.Equal(t, "invalid name: input is empty", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, errors.ErrValidation)

	wrapped := fmt.Errorf("service: %w", err)
	var domainErr *errors.Error
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
}

func TestWithDetails(t *testing.T) {
	base := errors.Validation("validation failed")
	detailed := base.WithDetails(map[string]string{"name": "is required"})

	assert.Nil(t, base.Details)
	assert.Equal(t, map[string]string{"name": "is required"}, detailed.Details)
	assert.Equal(t, errors.CodeValidation, detailed.Code)
}

func TestRateLimited(t *testing.T) {
	err := errors.RateLimited("slow down")
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus())
	assert.ErrorIs(t, err, errors.ErrRateLimited)
}
