package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound(DOCTOR_NOT_FOUND), http.StatusNotFound},
		{"invalid credentials", InvalidCredentials(INVALID_CREDENTIALS), http.StatusBadRequest},
		{"already exists", AlreadyExists(USER_ALREADY_EXISTS), http.StatusBadRequest},
		{"bad request", BadRequest(INVALID_DATE), http.StatusBadRequest},
		{"unauthorized", NewError(ErrUnauthorized, NO_TOKEN_PROVIDED), http.StatusUnauthorized},
		{"forbidden", NewError(ErrForbidden, ACCESS_DENIED), http.StatusForbidden},
		{"delivery", NewError(ErrDelivery, FAILED_TO_SEND_OTP), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound(USER_NOT_FOUND)), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestMessageForHidesUnconvertedErrors(t *testing.T) {
	assert.Equal(t, SERVER_ERROR, MessageFor(errors.New("mongo: connection refused")))
	assert.Equal(t, SLOT_NOT_AVAILABLE, MessageFor(NotFound(SLOT_NOT_AVAILABLE)))
}

func TestSuccessResponseOmitsEmptyData(t *testing.T) {
	resp := SuccessResponse(OTP_SENT, nil)
	_, ok := resp["data"]
	assert.False(t, ok)
	assert.Equal(t, OTP_SENT, resp["message"])
}
