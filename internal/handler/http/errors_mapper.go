package http

import (
	"errors"
	"net/http"

	"github.com/avolkov/nutrisync/internal/service"
	"github.com/avolkov/nutrisync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoDeviceID:        http.StatusBadRequest,
	service.ErrNoOwnerID:         http.StatusUnauthorized,
	service.ErrUnknownEntityType: http.StatusBadRequest,

	store.ErrRecordNotFound:    http.StatusNotFound,
	store.ErrWatermarkNotFound: http.StatusNotFound,

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
