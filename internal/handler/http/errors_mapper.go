package http

import (
	"errors"
	"net/http"

	"github.com/dchernov/weightkeeper/internal/service"
	"github.com/dchernov/weightkeeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoSecurityQuestion:      http.StatusConflict,
	service.ErrWrongAnswer:             http.StatusForbidden,
	service.ErrRecoverySequence:        http.StatusConflict,
	service.ErrPasswordMismatch:        http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,

	store.ErrDuplicateUsername: http.StatusConflict,
	store.ErrDuplicateEmail:    http.StatusConflict,
	store.ErrUnknownAccount:    http.StatusNotFound,
	store.ErrAccountNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
