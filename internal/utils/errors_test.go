package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid", E(CodeInvalidArgument, "op", "bad", nil), http.StatusBadRequest},
		{"unauthorized", E(CodeUnauthorized, "op", "no", nil), http.StatusUnauthorized},
		{"not found", E(CodeNotFound, "op", MsgProfileNotFound, ErrNotFound), http.StatusNotFound},
		{"conflict", E(CodeConflict, "op", "dup", ErrConflict), http.StatusConflict},
		{"internal", E(CodeInternal, "op", "boom", nil), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("outer: %w", E(CodeNotFound, "op", "x", nil)), http.StatusNotFound},
		{"bare not found", ErrNotFound, http.StatusNotFound},
		{"bare conflict", fmt.Errorf("create: %w", ErrConflict), http.StatusConflict},
		{"unknown", errors.New("?"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("cause")
	assert.Equal(t, "Op: msg: cause", E(CodeInternal, "Op", "msg", cause).Error())
	assert.Equal(t, "Op: msg", E(CodeInternal, "Op", "msg", nil).Error())
	assert.Equal(t, "Op: cause", E(CodeInternal, "Op", "", cause).Error())
	assert.Equal(t, "msg", E(CodeInternal, "", "msg", nil).Error())
	assert.Equal(t, "cause", E(CodeInternal, "", "", cause).Error())
	assert.Equal(t, "error", E(CodeInternal, "", "", nil).Error())

	var nilErr *AppError
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestIsCodeAndUnwrap(t *testing.T) {
	err := E(CodeNotFound, "ProfileService.Get", MsgProfileNotFound, ErrNotFound)
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(ErrNotFound, CodeNotFound))
	assert.ErrorIs(t, err, ErrNotFound)
}
