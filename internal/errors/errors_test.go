package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	ierr "shop/internal/errors"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", ierr.NewValidation("name is blank"), http.StatusBadRequest},
		{"not found", ierr.NewNotFound("product %s not found", "p-1"), http.StatusNotFound},
		{"conflict", ierr.NewConflict("username taken"), http.StatusConflict},
		{"unauthorized", ierr.NewUnauthorized("invalid credentials"), http.StatusUnauthorized},
		{"storage", ierr.WrapStorage(fmt.Errorf("disk full"), "commit"), http.StatusInternalServerError},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ierr.HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_MultipleClassesIsStable(t *testing.T) {
	both := errors.Mark(ierr.NewValidation("coupon expired"), ierr.ErrNotFound)
	storage := errors.Mark(ierr.NewConflict("duplicate code"), ierr.ErrStorage)

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusNotFound, ierr.HTTPStatus(both))
		assert.Equal(t, http.StatusInternalServerError, ierr.HTTPStatus(storage))
	}
}

func TestWrapStorage_SurvivesWrapping(t *testing.T) {
	err := ierr.WrapStorage(fmt.Errorf("UNIQUE constraint failed"), "failed to commit")
	wrapped := errors.Wrap(err, "create product")

	assert.True(t, ierr.IsStorage(wrapped))
	assert.False(t, ierr.IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "UNIQUE constraint failed")
	assert.Nil(t, ierr.WrapStorage(nil, "noop"))
}
