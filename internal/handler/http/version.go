package http

import (
	"net/http"

	"github.com/avolkov/nutrisync/internal/utils"
	"github.com/avolkov/nutrisync/models"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.AppBuildInfo{
		Version: h.buildInfo.Version,
		Date:    h.buildInfo.Date,
		Commit:  h.buildInfo.Commit,
	}, http.StatusOK)
}
